package youtube

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"legenda/internal/core/domain"
	"legenda/internal/core/ports"

	"github.com/kkdai/youtube/v2"
)

// transcriptClient is the subset of youtube.Client the repository calls.
type transcriptClient interface {
	GetVideoContext(ctx context.Context, url string) (*youtube.Video, error)
	GetTranscriptCtx(ctx context.Context, video *youtube.Video, lang string) (youtube.VideoTranscript, error)
}

type captionRepo struct {
	client transcriptClient
}

// NewCaptionRepository fetches transcripts through YouTube's InnerTube API.
// A nil httpClient falls back to http.DefaultClient.
func NewCaptionRepository(httpClient *http.Client) ports.CaptionFetcher {
	return &captionRepo{
		client: &youtube.Client{HTTPClient: httpClient},
	}
}

func (r *captionRepo) FetchCaptions(ctx context.Context, videoID, language string) ([]domain.CaptionEntry, error) {
	video, err := r.client.GetVideoContext(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("youtube: get video %s: %w", videoID, err)
	}

	transcript, err := r.client.GetTranscriptCtx(ctx, video, language)
	if err != nil {
		if errors.Is(err, youtube.ErrTranscriptDisabled) {
			return nil, fmt.Errorf("youtube: %s: %w", videoID, domain.ErrCaptionsUnavailable)
		}
		return nil, fmt.Errorf("youtube: get transcript %s/%s: %w", videoID, language, err)
	}
	if len(transcript) == 0 {
		return nil, fmt.Errorf("youtube: %s has an empty %s transcript: %w", videoID, language, domain.ErrCaptionsUnavailable)
	}

	return toEntries(transcript), nil
}

// toEntries converts millisecond transcript segments into caption entries.
func toEntries(transcript youtube.VideoTranscript) []domain.CaptionEntry {
	entries := make([]domain.CaptionEntry, 0, len(transcript))
	for _, segment := range transcript {
		entries = append(entries, domain.CaptionEntry{
			Start:    float64(segment.StartMs) / 1000,
			Duration: float64(segment.Duration) / 1000,
			Text:     segment.Text,
		})
	}
	return entries
}
