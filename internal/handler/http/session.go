package http

import (
	"net/http"

	"github.com/MKhiriev/go-news-chat/internal/logger"
	"github.com/MKhiriev/go-news-chat/internal/utils"
	"github.com/MKhiriev/go-news-chat/models"
	"github.com/go-chi/chi/v5"
)

const sessionDeletedMessage = "Session deleted"

func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	session, err := h.services.SessionService.CreateSession(r.Context())
	if err != nil {
		writeServiceError(w, log, err, "session creation failed")
		return
	}

	log.Debug().Str("session_id", session.SessionID).Msg("session created")
	utils.WriteJSON(w, models.CreateSessionResponse{SessionID: session.SessionID}, http.StatusCreated)
}

func (h *Handler) deleteSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	sessionID := chi.URLParam(r, sessionIDParam)

	if err := h.services.SessionService.DeleteSession(r.Context(), sessionID); err != nil {
		writeServiceError(w, log, err, "session deletion failed")
		return
	}

	utils.WriteJSON(w, models.DeleteSessionResponse{Message: sessionDeletedMessage}, http.StatusOK)
}

func (h *Handler) getHistory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	sessionID := chi.URLParam(r, sessionIDParam)

	messages, err := h.services.SessionService.GetHistory(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, log, err, "history lookup failed")
		return
	}
	if messages == nil {
		messages = []models.Message{}
	}

	utils.WriteJSON(w, models.HistoryResponse{SessionID: sessionID, Messages: messages}, http.StatusOK)
}
