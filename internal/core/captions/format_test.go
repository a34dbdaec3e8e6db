package captions

import (
	"math"
	"strings"
	"testing"

	"legenda/internal/core/domain"
)

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00:00,000"},
		{2.5, "00:00:02,500"},
		{1.001, "00:00:01,001"},
		{4.35, "00:00:04,350"},
		{61.123, "00:01:01,123"},
		{3661.999, "01:01:01,999"},
		{86400, "24:00:00,000"},
		{360000.25, "100:00:00,250"},
		{-3, "00:00:00,000"},
		{math.Inf(1), "00:00:00,000"},
		{math.Inf(-1), "00:00:00,000"},
		{math.NaN(), "00:00:00,000"},
	}

	for _, tt := range tests {
		if got := FormatTimestamp(tt.seconds); got != tt.want {
			t.Errorf("FormatTimestamp(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestToSRTEmpty(t *testing.T) {
	if got := ToSRT(nil); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
	if got := ToSRT([]domain.CaptionEntry{}); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}

func TestToSRTSingleEntry(t *testing.T) {
	got := ToSRT([]domain.CaptionEntry{{Start: 0, Duration: 2.5, Text: "Hi"}})
	want := "1\n00:00:00,000 --> 00:00:02,500\nHi"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestToSRTNumbersBlocksInSliceOrder(t *testing.T) {
	entries := []domain.CaptionEntry{
		{Start: 10, Duration: 1, Text: "later"},
		{Start: 1.2, Duration: 0.8, Text: "earlier"},
	}
	got := ToSRT(entries)
	want := "1\n00:00:10,000 --> 00:00:11,000\nlater\n\n2\n00:00:01,200 --> 00:00:02,000\nearlier"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if strings.Count(got, "\n\n") != 1 {
		t.Fatalf("expected exactly one blank line between blocks: %q", got)
	}
	if strings.HasSuffix(got, "\n") {
		t.Fatalf("unexpected trailing separator: %q", got)
	}
}

func TestToSRTKeepsMultilineText(t *testing.T) {
	got := ToSRT([]domain.CaptionEntry{{Start: 3600, Duration: 1.5, Text: "line one\nline two"}})
	want := "1\n01:00:00,000 --> 01:00:01,500\nline one\nline two"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestToPlainText(t *testing.T) {
	tests := []struct {
		name    string
		entries []domain.CaptionEntry
		want    string
	}{
		{"empty", nil, ""},
		{"two entries", []domain.CaptionEntry{{Text: "a"}, {Text: "b"}}, "a b"},
		{"no dedup", []domain.CaptionEntry{{Text: "la"}, {Text: "la"}}, "la la"},
		{"no whitespace normalization", []domain.CaptionEntry{{Text: " a "}, {Text: "b\n"}}, " a  b\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToPlainText(tt.entries); got != tt.want {
				t.Fatalf("ToPlainText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderDispatchesOnFormat(t *testing.T) {
	entries := []domain.CaptionEntry{{Start: 0, Duration: 1, Text: "la"}}
	if got := Render(domain.FormatTXT, entries); got != "la" {
		t.Fatalf("txt render = %q", got)
	}
	if got := Render(domain.FormatSRT, entries); got != "1\n00:00:00,000 --> 00:00:01,000\nla" {
		t.Fatalf("srt render = %q", got)
	}
}
