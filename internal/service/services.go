package service

import (
	"github.com/MKhiriev/go-news-chat/internal/config"
	"github.com/MKhiriev/go-news-chat/internal/logger"
	"github.com/MKhiriev/go-news-chat/internal/store"
)

type Services struct {
	SessionService SessionService
	ChatService    ChatService
	StatusService  StatusService
}

func NewServices(storages *store.Storages, cfg *config.ServerConfig, logger *logger.Logger) (*Services, error) {
	statusService, err := NewStatusService(cfg.App, storages, logger)
	if err != nil {
		return nil, err
	}

	chatService := NewChatService(storages.SessionRepository, storages.MessageRepository, NewNewsDeskResponder(logger), logger)

	return &Services{
		SessionService: NewSessionService(storages.SessionRepository, storages.MessageRepository, cfg.Workers, logger),
		ChatService:    NewChatValidationService().Wrap(chatService),
		StatusService:  statusService,
	}, nil
}
