package ytdlp

import (
	"context"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"math"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"legenda/internal/core/domain"
)

var markupTag = regexp.MustCompile(`<[^>]*>`)

type timedText struct {
	XMLName xml.Name        `xml:"transcript"`
	Texts   []timedTextLine `xml:"text"`
}

type timedTextLine struct {
	Start string `xml:"start,attr"`
	Dur   string `xml:"dur,attr"`
	Body  string `xml:",chardata"`
}

func (a *ytDlpAdapter) download(ctx context.Context, trackURL string) ([]domain.CaptionEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, trackURL, nil)
	if err != nil {
		return nil, fmt.Errorf("yt-dlp: build track request: %w", err)
	}

	resp, err := a.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yt-dlp: track request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("yt-dlp: track download failed (%s): %s", resp.Status, strings.TrimSpace(string(body)))
	}

	return parseTimedText(resp.Body)
}

// parseTimedText decodes a timedtext XML document into caption entries.
// Missing dur attributes count as zero; text is entity-decoded and stripped
// of inline markup.
func parseTimedText(r io.Reader) ([]domain.CaptionEntry, error) {
	var doc timedText
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode timedtext: %w", err)
	}

	entries := make([]domain.CaptionEntry, 0, len(doc.Texts))
	for i, line := range doc.Texts {
		start, err := parseSeconds(line.Start)
		if err != nil {
			return nil, fmt.Errorf("timedtext line %d: start: %w", i+1, err)
		}
		dur, err := parseSeconds(line.Dur)
		if err != nil {
			return nil, fmt.Errorf("timedtext line %d: dur: %w", i+1, err)
		}
		text := markupTag.ReplaceAllString(html.UnescapeString(line.Body), "")
		entries = append(entries, domain.CaptionEntry{
			Start:    start,
			Duration: dur,
			Text:     text,
		})
	}
	return entries, nil
}

func parseSeconds(value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	seconds, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return 0, fmt.Errorf("non-finite value %q", value)
	}
	return seconds, nil
}
