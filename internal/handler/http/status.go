package http

import (
	"net/http"

	"github.com/MKhiriev/go-news-chat/internal/logger"
	"github.com/MKhiriev/go-news-chat/internal/utils"
)

func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.services.StatusService.Status(r.Context())
	if err != nil {
		writeServiceError(w, logger.FromRequest(r), err, "status check failed")
		return
	}

	utils.WriteJSON(w, status, http.StatusOK)
}
