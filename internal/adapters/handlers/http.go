package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"legenda/internal/core/domain"
	"legenda/internal/core/ports"
	"legenda/internal/logging"
)

const (
	msgInvalidURL  = "Invalid YouTube URL"
	msgFetchFailed = "Failed to fetch subtitles."
	msgInvalidBody = "Invalid request body"
	msgNotAllowed  = "Method not allowed"
)

type HTTPHandler struct {
	service ports.SubtitleService
	logger  *slog.Logger
}

func NewHTTPHandler(s ports.SubtitleService, logger *slog.Logger) *HTTPHandler {
	return &HTTPHandler{
		service: s,
		logger:  logging.NewComponentLogger(logger, "http"),
	}
}

// HandleDownload answers POST /download with the caption file as an
// attachment. Failures collapse into a 400 for unusable URLs and a 500 for
// everything else.
func (h *HTTPHandler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		h.writeError(w, http.StatusMethodNotAllowed, msgNotAllowed)
		return
	}

	log := logging.WithContext(r.Context(), h.logger)

	var req domain.DownloadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Info("rejecting malformed request body", logging.Error(err))
		h.writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	out, err := h.service.Export(r.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidVideoURL) {
			log.Info("rejecting request", logging.Error(err))
			h.writeError(w, http.StatusBadRequest, msgInvalidURL)
			return
		}
		log.Error("failed to fetch subtitles", logging.Error(err))
		h.writeError(w, http.StatusInternalServerError, msgFetchFailed)
		return
	}

	w.Header().Set("Content-Disposition", "attachment; filename="+out.Filename)
	w.Header().Set("Content-Type", out.ContentType)
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, out.Content); err != nil {
		log.Warn("error writing response", logging.Error(err))
	}
}

func (h *HTTPHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		h.writeError(w, http.StatusMethodNotAllowed, msgNotAllowed)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HTTPHandler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response", logging.Error(err))
	}
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, domain.ErrorResponse{Error: message})
}
