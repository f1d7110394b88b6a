package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-news-chat/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/repository_mock.go -package=mock

// SessionRepository persists chat sessions of the development server.
type SessionRepository interface {
	// CreateSession stores a new session. A duplicate id yields
	// [ErrSessionAlreadyExists].
	CreateSession(ctx context.Context, session models.Session) error
	// GetSession returns [ErrSessionNotFound] for unknown ids.
	GetSession(ctx context.Context, sessionID string) (models.Session, error)
	// TouchSession moves LastActiveAt to at.
	TouchSession(ctx context.Context, sessionID string, at time.Time) error
	// DeleteSession removes the session together with its messages.
	DeleteSession(ctx context.Context, sessionID string) error
	// DeleteIdleSessions removes every session last active before idleSince
	// and reports how many were removed.
	DeleteIdleSessions(ctx context.Context, idleSince time.Time) (int64, error)
}

// MessageRepository persists the turns exchanged within a session.
type MessageRepository interface {
	// SaveMessage appends message to its session and returns it with the
	// assigned sequence number.
	SaveMessage(ctx context.Context, message models.Message) (models.Message, error)
	// ListMessages returns the messages of a session ordered by sequence
	// number.
	ListMessages(ctx context.Context, sessionID string) ([]models.Message, error)
}
