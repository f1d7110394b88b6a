package service

import (
	"github.com/MKhiriev/go-news-chat/internal/adapter"
	"github.com/MKhiriev/go-news-chat/internal/logger"
)

type ClientServices struct {
	ChatService ClientChatService
}

func NewClientServices(assistantAdapter adapter.AssistantAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		ChatService: NewClientChatService(assistantAdapter, logger),
	}
}
