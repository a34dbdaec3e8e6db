package ports

import (
	"context"
	"legenda/internal/core/domain"
)

type SubtitleService interface {
	Export(ctx context.Context, req domain.DownloadRequest) (*domain.FormattedOutput, error)
}

// CaptionFetcher retrieves the ordered caption track of a video in one language.
type CaptionFetcher interface {
	FetchCaptions(ctx context.Context, videoID, language string) ([]domain.CaptionEntry, error)
}
