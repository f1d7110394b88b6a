package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-news-chat/internal/config"
	"github.com/MKhiriev/go-news-chat/internal/logger"
	"github.com/MKhiriev/go-news-chat/internal/store"
	"github.com/MKhiriev/go-news-chat/internal/utils"
	"github.com/MKhiriev/go-news-chat/models"
)

// maxSessionIDAttempts bounds how many fresh ids are tried when the store
// reports a collision.
const maxSessionIDAttempts = 3

type idGenerator interface {
	Generate() string
}

type sessionService struct {
	sessions store.SessionRepository
	messages store.MessageRepository
	ids      idGenerator
	ttl      time.Duration
	now      func() time.Time

	logger *logger.Logger
}

func NewSessionService(sessions store.SessionRepository, messages store.MessageRepository, cfg config.Workers, logger *logger.Logger) SessionService {
	return &sessionService{
		sessions: sessions,
		messages: messages,
		ids:      utils.NewUUIDGenerator(),
		ttl:      cfg.SessionTTL,
		now:      time.Now,
		logger:   logger,
	}
}

func (s *sessionService) CreateSession(ctx context.Context) (models.Session, error) {
	log := logger.FromContext(ctx)

	now := s.now()
	for attempt := 1; attempt <= maxSessionIDAttempts; attempt++ {
		session := models.Session{
			SessionID:    s.ids.Generate(),
			CreatedAt:    now,
			LastActiveAt: now,
		}

		err := s.sessions.CreateSession(ctx, session)
		if err == nil {
			log.Info().Str("session_id", session.SessionID).Msg("session created")
			return session, nil
		}
		if !errors.Is(err, store.ErrSessionAlreadyExists) {
			log.Err(err).Str("func", "*sessionService.CreateSession").Msg("failed to create session")
			return models.Session{}, fmt.Errorf("create session: %w", err)
		}

		log.Warn().Int("attempt", attempt).Msg("session id collision, generating a new one")
	}

	return models.Session{}, fmt.Errorf("create session: %w", store.ErrSessionAlreadyExists)
}

func (s *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	log := logger.FromContext(ctx)

	err := s.sessions.DeleteSession(ctx, sessionID)
	if errors.Is(err, store.ErrSessionNotFound) {
		return ErrSessionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*sessionService.DeleteSession").Str("session_id", sessionID).Msg("failed to delete session")
		return fmt.Errorf("delete session: %w", err)
	}

	log.Info().Str("session_id", sessionID).Msg("session deleted")
	return nil
}

// GetHistory returns the stored turns of the session in order. Unknown
// sessions yield [ErrSessionNotFound] rather than an empty history.
func (s *sessionService) GetHistory(ctx context.Context, sessionID string) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	if _, err := s.sessions.GetSession(ctx, sessionID); err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		log.Err(err).Str("func", "*sessionService.GetHistory").Str("session_id", sessionID).Msg("failed to get session")
		return nil, fmt.Errorf("get session: %w", err)
	}

	messages, err := s.messages.ListMessages(ctx, sessionID)
	if err != nil {
		log.Err(err).Str("func", "*sessionService.GetHistory").Str("session_id", sessionID).Msg("failed to list messages")
		return nil, fmt.Errorf("list messages: %w", err)
	}

	return messages, nil
}

func (s *sessionService) PurgeIdleSessions(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	cutoff := s.now().Add(-s.ttl)
	deleted, err := s.sessions.DeleteIdleSessions(ctx, cutoff)
	if err != nil {
		log.Err(err).Str("func", "*sessionService.PurgeIdleSessions").Msg("failed to purge idle sessions")
		return 0, fmt.Errorf("purge idle sessions: %w", err)
	}

	if deleted > 0 {
		log.Info().Int64("deleted", deleted).Time("idle_since", cutoff).Msg("idle sessions purged")
	}
	return deleted, nil
}
