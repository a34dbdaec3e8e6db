package domain

import "errors"

var (
	ErrInvalidVideoURL     = errors.New("invalid youtube url")
	ErrCaptionsUnavailable = errors.New("no captions available")
)

// CaptionEntry is one timed caption line. Start and Duration are seconds.
type CaptionEntry struct {
	Start    float64 `json:"start"`
	Duration float64 `json:"dur"`
	Text     string  `json:"text"`
}

type Format string

const (
	FormatSRT Format = "srt"
	FormatTXT Format = "txt"
)

// ParseFormat maps the request token to a Format. Only an exact "txt" selects
// plain text; anything else falls back to SubRip.
func ParseFormat(value string) Format {
	if value == string(FormatTXT) {
		return FormatTXT
	}
	return FormatSRT
}

func (f Format) Extension() string {
	return string(f)
}

type DownloadRequest struct {
	URL    string `json:"url"`
	Format string `json:"format"` // "srt" or "txt"
}

type FormattedOutput struct {
	VideoID     string
	Content     string
	Filename    string
	ContentType string
}

type ErrorResponse struct {
	Error string `json:"error"`
}
