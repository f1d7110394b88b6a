package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-news-chat/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// withLogging writes one access log line per request. Client errors are
// logged at warn level and server errors at error level; the line carries
// the matched route, the session id from the path and the API error text.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()

		rec := &responseRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)

		status := rec.statusCode()
		event := log.WithLevel(accessLogLevel(status)).
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", status).
			Int("size", rec.size).
			Dur("duration", time.Since(start))

		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				event = event.Str("route", pattern)
			}
			if sessionID := rctx.URLParam(sessionIDParam); sessionID != "" {
				event = event.Str(logger.SessionIDField, sessionID)
			}
		}
		if msg := rec.errorMessage(); msg != "" {
			event = event.Str("error", msg)
		}

		event.Send()
	})
}

func accessLogLevel(status int) zerolog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zerolog.ErrorLevel
	case status >= http.StatusBadRequest:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
