package http

import (
	"github.com/MKhiriev/go-news-chat/internal/logger"
	"github.com/MKhiriev/go-news-chat/internal/service"
)

// defaultMaxChatBodyBytes bounds a chat request body. It leaves room for a
// message at the validator limit written entirely in escaped JSON.
const defaultMaxChatBodyBytes = 64 << 10

// Handler serves the chat API on top of the server services.
type Handler struct {
	services *service.Services

	maxChatBodyBytes int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("chat api handler created")
	return &Handler{
		services:         services,
		maxChatBodyBytes: defaultMaxChatBodyBytes,
		logger:           logger,
	}
}
