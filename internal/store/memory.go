// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-news-chat/models"
)

// MemoryStorage keeps sessions and their messages in process memory. It
// implements both [SessionRepository] and [MessageRepository] and is used
// when no database is configured.
type MemoryStorage struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
	messages map[string][]models.Message
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		sessions: make(map[string]models.Session),
		messages: make(map[string][]models.Message),
	}
}

func (s *MemoryStorage) CreateSession(_ context.Context, session models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[session.SessionID]; ok {
		return ErrSessionAlreadyExists
	}
	s.sessions[session.SessionID] = session
	return nil
}

func (s *MemoryStorage) GetSession(_ context.Context, sessionID string) (models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return models.Session{}, ErrSessionNotFound
	}
	return session, nil
}

func (s *MemoryStorage) TouchSession(_ context.Context, sessionID string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return ErrSessionNotFound
	}
	session.LastActiveAt = at
	s.sessions[sessionID] = session
	return nil
}

func (s *MemoryStorage) DeleteSession(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, sessionID)
	delete(s.messages, sessionID)
	return nil
}

func (s *MemoryStorage) DeleteIdleSessions(_ context.Context, idleSince time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var deleted int64
	for id, session := range s.sessions {
		if session.LastActiveAt.Before(idleSince) {
			delete(s.sessions, id)
			delete(s.messages, id)
			deleted++
		}
	}
	return deleted, nil
}

func (s *MemoryStorage) SaveMessage(_ context.Context, message models.Message) (models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[message.SessionID]; !ok {
		return models.Message{}, ErrSessionNotFound
	}

	history := s.messages[message.SessionID]
	message.Seq = int64(len(history)) + 1
	message.Sources = cloneSources(message.Sources)
	s.messages[message.SessionID] = append(history, message)

	return message, nil
}

func (s *MemoryStorage) ListMessages(_ context.Context, sessionID string) ([]models.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := s.messages[sessionID]
	copied := make([]models.Message, len(history))
	for i, msg := range history {
		copied[i] = msg
		copied[i].Sources = cloneSources(msg.Sources)
	}
	return copied, nil
}

func cloneSources(sources []models.Source) []models.Source {
	if len(sources) == 0 {
		return nil
	}
	copied := make([]models.Source, len(sources))
	copy(copied, sources)
	return copied
}
