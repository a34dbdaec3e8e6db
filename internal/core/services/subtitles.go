package services

import (
	"context"
	"fmt"
	"log/slog"

	"legenda/internal/core/captions"
	"legenda/internal/core/domain"
	"legenda/internal/core/ports"
	"legenda/internal/logging"
)

const contentTypePlainText = "text/plain; charset=utf-8"

type subtitleService struct {
	fetcher  ports.CaptionFetcher
	language string
	logger   *slog.Logger
}

// NewSubtitleService wires a caption fetcher to the formatting pipeline.
// language is the fixed caption track requested for every video.
func NewSubtitleService(fetcher ports.CaptionFetcher, language string, logger *slog.Logger) ports.SubtitleService {
	return &subtitleService{
		fetcher:  fetcher,
		language: language,
		logger:   logging.NewComponentLogger(logger, "subtitles"),
	}
}

func (s *subtitleService) Export(ctx context.Context, req domain.DownloadRequest) (*domain.FormattedOutput, error) {
	format := domain.ParseFormat(req.Format)

	videoID, ok := captions.ExtractVideoID(req.URL)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidVideoURL, req.URL)
	}

	log := logging.WithContext(ctx, s.logger).With(logging.String(logging.FieldVideoID, videoID))
	log.Debug("fetching captions", logging.String("language", s.language), logging.String("format", string(format)))

	entries, err := s.fetcher.FetchCaptions(ctx, videoID, s.language)
	if err != nil {
		return nil, fmt.Errorf("fetch captions for %s: %w", videoID, err)
	}

	log.Debug("captions fetched", logging.Int("entries", len(entries)))

	return &domain.FormattedOutput{
		VideoID:     videoID,
		Content:     captions.Render(format, entries),
		Filename:    fmt.Sprintf("%s.%s", videoID, format.Extension()),
		ContentType: contentTypePlainText,
	}, nil
}
