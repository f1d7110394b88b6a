// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-news-chat/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedSession(t *testing.T, s *MemoryStorage, id string, lastActive time.Time) {
	t.Helper()
	require.NoError(t, s.CreateSession(context.Background(), models.Session{
		SessionID:    id,
		CreatedAt:    lastActive,
		LastActiveAt: lastActive,
	}))
}

func TestMemoryStorage_SessionLifecycle(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()
	seedSession(t, s, "s-1", testCreatedAt)

	err := s.CreateSession(ctx, models.Session{SessionID: "s-1"})
	assert.ErrorIs(t, err, ErrSessionAlreadyExists)

	got, err := s.GetSession(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, testCreatedAt, got.CreatedAt)

	require.NoError(t, s.TouchSession(ctx, "s-1", testLastActiveAt))
	got, _ = s.GetSession(ctx, "s-1")
	assert.Equal(t, testLastActiveAt, got.LastActiveAt)

	require.NoError(t, s.DeleteSession(ctx, "s-1"))
	_, err = s.GetSession(ctx, "s-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStorage_UnknownSession(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()

	assert.ErrorIs(t, s.TouchSession(ctx, "missing", time.Now()), ErrSessionNotFound)
	assert.ErrorIs(t, s.DeleteSession(ctx, "missing"), ErrSessionNotFound)

	_, err := s.SaveMessage(ctx, models.Message{SessionID: "missing"})
	assert.ErrorIs(t, err, ErrSessionNotFound)

	messages, err := s.ListMessages(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestMemoryStorage_MessagesAreSequencedAndCopied(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()
	seedSession(t, s, "s-1", testCreatedAt)

	first, err := s.SaveMessage(ctx, models.Message{SessionID: "s-1", Role: models.RoleUser, Content: "hi"})
	require.NoError(t, err)
	sources := []models.Source{{Title: "BBC", Link: "https://bbc.co.uk"}}
	second, err := s.SaveMessage(ctx, models.Message{SessionID: "s-1", Role: models.RoleAssistant, Content: "hello", Sources: sources})
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.Seq)
	assert.Equal(t, int64(2), second.Seq)

	// caller mutations must not leak into the store
	sources[0].Title = "changed"

	messages, err := s.ListMessages(ctx, "s-1")
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "BBC", messages[1].Sources[0].Title)

	messages[1].Sources[0].Title = "mutated"
	again, _ := s.ListMessages(ctx, "s-1")
	assert.Equal(t, "BBC", again[1].Sources[0].Title)
}

func TestMemoryStorage_DeleteSessionDropsMessages(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()
	seedSession(t, s, "s-1", testCreatedAt)

	_, err := s.SaveMessage(ctx, models.Message{SessionID: "s-1", Content: "hi"})
	require.NoError(t, err)
	require.NoError(t, s.DeleteSession(ctx, "s-1"))

	seedSession(t, s, "s-1", testCreatedAt)
	messages, err := s.ListMessages(ctx, "s-1")
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestMemoryStorage_DeleteIdleSessions(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()
	cutoff := time.UnixMilli(1_700_000_000_000)

	seedSession(t, s, "idle-1", cutoff.Add(-time.Hour))
	seedSession(t, s, "idle-2", cutoff.Add(-time.Millisecond))
	seedSession(t, s, "boundary", cutoff)
	seedSession(t, s, "active", cutoff.Add(time.Minute))

	deleted, err := s.DeleteIdleSessions(ctx, cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	for _, id := range []string{"boundary", "active"} {
		_, err = s.GetSession(ctx, id)
		assert.NoError(t, err, id)
	}
	for _, id := range []string{"idle-1", "idle-2"} {
		_, err = s.GetSession(ctx, id)
		assert.ErrorIs(t, err, ErrSessionNotFound, id)
	}
}

func TestMemoryStorage_ConcurrentSaves(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()
	seedSession(t, s, "s-1", testCreatedAt)

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.SaveMessage(ctx, models.Message{SessionID: "s-1", Content: fmt.Sprintf("m-%d", i)})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	messages, err := s.ListMessages(ctx, "s-1")
	require.NoError(t, err)
	require.Len(t, messages, n)
	for i, msg := range messages {
		assert.Equal(t, int64(i+1), msg.Seq)
	}
}
