package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-news-chat/internal/logger"
	"github.com/MKhiriev/go-news-chat/internal/service"
	"github.com/MKhiriev/go-news-chat/internal/store"
	"github.com/MKhiriev/go-news-chat/internal/utils"
	"github.com/MKhiriev/go-news-chat/internal/validators"
)

const internalErrorMessage = "Internal server error"

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is checked in order; the first match wins.
var errorResponses = []errorResponse{
	{validators.ErrEmptyMessage, http.StatusBadRequest, "Message is required"},
	{validators.ErrEmptySessionID, http.StatusBadRequest, "Session ID is required"},
	{validators.ErrMessageTooLong, http.StatusBadRequest, "Message is too long"},
	{validators.ErrInvalidEncoding, http.StatusBadRequest, "Message must be valid UTF-8"},

	{service.ErrSessionNotFound, http.StatusNotFound, "Session not found"},
	{store.ErrSessionNotFound, http.StatusNotFound, "Session not found"},
	{store.ErrSessionAlreadyExists, http.StatusConflict, "Session already exists"},

	{service.ErrEmptyReply, http.StatusBadGateway, "Assistant produced no answer"},
	{service.ErrStorageUnavailable, http.StatusServiceUnavailable, "Storage is unavailable"},
}

func responseFromError(err error) (int, string) {
	for _, r := range errorResponses {
		if errors.Is(err, r.target) {
			return r.status, r.message
		}
	}
	return http.StatusInternalServerError, internalErrorMessage
}

func writeServiceError(w http.ResponseWriter, log *logger.Logger, err error, msg string) {
	status, message := responseFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(msg)
	} else {
		log.Debug().Err(err).Int("status", status).Msg(msg)
	}

	utils.WriteError(w, message, status)
}
