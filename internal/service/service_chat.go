package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-news-chat/internal/logger"
	"github.com/MKhiriev/go-news-chat/internal/store"
	"github.com/MKhiriev/go-news-chat/models"
)

type chatService struct {
	sessions  store.SessionRepository
	messages  store.MessageRepository
	responder Responder
	now       func() time.Time

	logger *logger.Logger
}

func NewChatService(sessions store.SessionRepository, messages store.MessageRepository, responder Responder, logger *logger.Logger) ChatService {
	return &chatService{
		sessions:  sessions,
		messages:  messages,
		responder: responder,
		now:       time.Now,
		logger:    logger,
	}
}

// Chat records the user message, asks the responder for an answer given the
// earlier turns and records the answer. The returned timestamp is the
// server clock at the moment the answer was produced.
func (s *chatService) Chat(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error) {
	log := logger.FromContext(ctx).ForSession(req.SessionID)

	if _, err := s.sessions.GetSession(ctx, req.SessionID); err != nil {
		return models.ChatResponse{}, s.mapStoreError(log, "failed to get session", err)
	}

	userMessage, err := s.messages.SaveMessage(ctx, models.Message{
		SessionID: req.SessionID,
		Role:      models.RoleUser,
		Content:   req.Message,
		Timestamp: s.now().UnixMilli(),
	})
	if err != nil {
		return models.ChatResponse{}, s.mapStoreError(log, "failed to save user message", err)
	}

	history, err := s.messages.ListMessages(ctx, req.SessionID)
	if err != nil {
		return models.ChatResponse{}, s.mapStoreError(log, "failed to list messages", err)
	}
	history = earlierThan(history, userMessage.Seq)

	reply, err := s.responder.Reply(ctx, history, req.Message)
	if err != nil {
		log.Err(err).Str("func", "*chatService.Chat").Msg("responder failed")
		return models.ChatResponse{}, fmt.Errorf("reply: %w", err)
	}
	if strings.TrimSpace(reply.Response) == "" {
		return models.ChatResponse{}, ErrEmptyReply
	}

	now := s.now()
	reply.Timestamp = now.UnixMilli()

	if _, err = s.messages.SaveMessage(ctx, models.Message{
		SessionID: req.SessionID,
		Role:      models.RoleAssistant,
		Content:   reply.Response,
		Sources:   reply.Sources,
		Timestamp: reply.Timestamp,
	}); err != nil {
		return models.ChatResponse{}, s.mapStoreError(log, "failed to save reply", err)
	}

	if err = s.sessions.TouchSession(ctx, req.SessionID, now); err != nil {
		return models.ChatResponse{}, s.mapStoreError(log, "failed to touch session", err)
	}

	log.Debug().Int("sources", len(reply.Sources)).Msg("chat answered")
	return reply, nil
}

func (s *chatService) mapStoreError(log *logger.Logger, msg string, err error) error {
	if errors.Is(err, store.ErrSessionNotFound) {
		return ErrSessionNotFound
	}
	log.Err(err).Str("func", "*chatService.Chat").Msg(msg)
	return fmt.Errorf("chat: %w", err)
}

// earlierThan drops the messages with seq >= seq, keeping the order.
func earlierThan(messages []models.Message, seq int64) []models.Message {
	out := make([]models.Message, 0, len(messages))
	for _, m := range messages {
		if m.Seq < seq {
			out = append(out, m)
		}
	}
	return out
}
