package captions

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"legenda/internal/core/domain"
)

// Render formats entries in the requested output format.
func Render(format domain.Format, entries []domain.CaptionEntry) string {
	if format == domain.FormatTXT {
		return ToPlainText(entries)
	}
	return ToSRT(entries)
}

// ToSRT renders entries as SubRip blocks numbered from 1, separated by a
// blank line. Numbering follows slice order, not the timing fields.
func ToSRT(entries []domain.CaptionEntry) string {
	var b strings.Builder
	for i, entry := range entries {
		if i > 0 {
			b.WriteString("\n\n")
		}
		end := entry.Start + entry.Duration
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteByte('\n')
		b.WriteString(FormatTimestamp(entry.Start))
		b.WriteString(" --> ")
		b.WriteString(FormatTimestamp(end))
		b.WriteByte('\n')
		b.WriteString(entry.Text)
	}
	return b.String()
}

// ToPlainText joins the caption texts with single spaces.
func ToPlainText(entries []domain.CaptionEntry) string {
	texts := make([]string, len(entries))
	for i, entry := range entries {
		texts[i] = entry.Text
	}
	return strings.Join(texts, " ")
}

// FormatTimestamp converts seconds to HH:MM:SS,mmm. Hours are not wrapped at
// 24 and negative or non-finite input renders as zero.
func FormatTimestamp(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		seconds = 0
	}
	totalMs := int64(math.Round(seconds * 1000))
	hours := totalMs / 3_600_000
	minutes := (totalMs / 60_000) % 60
	secs := (totalMs / 1000) % 60
	millis := totalMs % 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, millis)
}
