package service

import (
	"context"

	"github.com/MKhiriev/go-news-chat/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SessionService provisions and tears down sessions of the development
// assistant server.
type SessionService interface {
	CreateSession(ctx context.Context) (models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetHistory(ctx context.Context, sessionID string) ([]models.Message, error)
	// PurgeIdleSessions removes sessions idle longer than the configured TTL
	// and reports how many were removed.
	PurgeIdleSessions(ctx context.Context) (int64, error)
}

// ChatService answers a single chat message within an existing session.
type ChatService interface {
	Chat(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error)
}

// StatusService describes the running server and checks its storage.
type StatusService interface {
	Status(ctx context.Context) (models.ServerStatus, error)
}

// Responder produces the assistant answer for message given the earlier
// turns of the session.
type Responder interface {
	Reply(ctx context.Context, history []models.Message, message string) (models.ChatResponse, error)
}

// ChatServiceWrapper defines middleware composition for ChatService.
// Implementations wrap an existing ChatService to add behavior such as
// validating.
type ChatServiceWrapper interface {
	Wrap(ChatService) ChatService // returns a decorated ChatService applying additional behavior
}
