package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const sessionIDParam = "sessionID"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	// recovery sits inside the access log so a panic is logged as a 500
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)

	router.Post("/api/sessions", h.createSession)
	router.Delete("/api/sessions/{"+sessionIDParam+"}", h.deleteSession)
	router.Get("/api/sessions/{"+sessionIDParam+"}/history", h.getHistory)

	router.Post("/api/chat", h.chat)

	router.Get("/api/status", h.getStatus)

	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	return router
}
