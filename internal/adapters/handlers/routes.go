package handlers

import (
	"net/http"
	"strings"

	"legenda/internal/logging"

	"github.com/google/uuid"
	"github.com/rs/cors"
)

const (
	headerRequestID    = "X-Request-ID"
	maxRequestIDLength = 128
)

// RouteOptions carries the process-wide HTTP policy applied around every route.
type RouteOptions struct {
	AllowedOrigins []string
	MaxBodyBytes   int64
}

// Routes mounts the handlers on a mux and wraps it with request ids, CORS and
// the request body limit.
func (h *HTTPHandler) Routes(opts RouteOptions) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/download", h.HandleDownload)
	mux.HandleFunc("/healthz", h.HandleHealth)

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"Content-Disposition", headerRequestID},
	})

	var handler http.Handler = mux
	handler = limitBody(handler, opts.MaxBodyBytes)
	handler = c.Handler(handler)
	return withRequestID(handler)
}

func limitBody(next http.Handler, limit int64) http.Handler {
	if limit <= 0 {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, limit)
		next.ServeHTTP(w, r)
	})
}

// withRequestID reuses a caller supplied X-Request-ID or mints one, echoes it
// on the response and stores it in the request context for logging.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(headerRequestID))
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}
		w.Header().Set(headerRequestID, id)
		next.ServeHTTP(w, r.WithContext(logging.WithRequestID(r.Context(), id)))
	})
}
