package main

import (
	"log/slog"
	"net/http"

	"legenda/internal/adapters/youtube"
	"legenda/internal/adapters/ytdlp"
	"legenda/internal/config"
	"legenda/internal/core/ports"
	"legenda/internal/core/services"
)

// newCaptionFetcher is a variable so command tests can avoid the network.
var newCaptionFetcher = func(cfg config.Captions) ports.CaptionFetcher {
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout()}
	if cfg.Backend == config.BackendYtDlp {
		return ytdlp.NewCaptionAdapter(ytdlp.Options{
			Binary:     cfg.YtDlpBinary,
			HTTPClient: httpClient,
		})
	}
	return youtube.NewCaptionRepository(httpClient)
}

func newSubtitleService(cfg *config.Config, logger *slog.Logger) ports.SubtitleService {
	return services.NewSubtitleService(newCaptionFetcher(cfg.Captions), cfg.Captions.Language, logger)
}
