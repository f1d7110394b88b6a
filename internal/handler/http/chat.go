package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-news-chat/internal/logger"
	"github.com/MKhiriev/go-news-chat/internal/utils"
	"github.com/MKhiriev/go-news-chat/models"
)

const (
	invalidJSONMessage  = "Invalid JSON was passed"
	bodyTooLargeMessage = "Request body is too large"
)

func (h *Handler) chat(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	r.Body = http.MaxBytesReader(w, r.Body, h.maxChatBodyBytes)

	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			log.Warn().Int64("limit", tooLarge.Limit).Msg(bodyTooLargeMessage)
			utils.WriteError(w, bodyTooLargeMessage, http.StatusRequestEntityTooLarge)
			return
		}

		log.Err(err).Msg(invalidJSONMessage)
		utils.WriteError(w, invalidJSONMessage, http.StatusBadRequest)
		return
	}

	resp, err := h.services.ChatService.Chat(r.Context(), req)
	if err != nil {
		writeServiceError(w, log, err, "chat failed")
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
