// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-news-chat/internal/adapter"
	"github.com/MKhiriev/go-news-chat/internal/logger"
	"github.com/MKhiriev/go-news-chat/internal/mock"
	"github.com/MKhiriev/go-news-chat/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.UnixMilli(1_699_999_000_000)

// newTestChatSvc builds a clientChatService with a mocked adapter and a
// fixed clock.
func newTestChatSvc(t *testing.T, ctrl *gomock.Controller) (*clientChatService, *mock.MockAssistantAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockAssistantAdapter(ctrl)

	svc := NewClientChatService(mockAdapter, logger.Nop()).(*clientChatService)
	svc.now = func() time.Time { return fixedNow }

	return svc, mockAdapter
}

// initializedChatSvc returns a controller that already holds sessionID.
func initializedChatSvc(t *testing.T, ctrl *gomock.Controller, sessionID string) (*clientChatService, *mock.MockAssistantAdapter) {
	t.Helper()
	svc, mockAdapter := newTestChatSvc(t, ctrl)

	mockAdapter.EXPECT().CreateSession(gomock.Any()).Return(sessionID, nil)
	require.NoError(t, svc.Initialize(context.Background()))

	return svc, mockAdapter
}

func greetingTurn() models.Turn {
	return models.Turn{Role: models.RoleAssistant, Content: MsgGreeting, Timestamp: fixedNow.UnixMilli()}
}

func rateLimitedErr() error {
	return &adapter.ResponseError{StatusCode: http.StatusTooManyRequests, Message: "rate limited"}
}

// ── Initialize ───────────────────────────────────────────────────────────────

func TestClientChatService_Initialize_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestChatSvc(t, ctrl)
	mockAdapter.EXPECT().CreateSession(gomock.Any()).Return("abc123", nil)

	err := svc.Initialize(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "abc123", svc.SessionID())
	assert.Equal(t, models.Transcript{greetingTurn()}, svc.Transcript())
	assert.Empty(t, svc.LastError())
	assert.False(t, svc.Busy())
}

func TestClientChatService_Initialize_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestChatSvc(t, ctrl)
	mockAdapter.EXPECT().CreateSession(gomock.Any()).Return("", errors.New("connection refused"))

	err := svc.Initialize(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConnectivity)
	assert.Empty(t, svc.SessionID())
	assert.Empty(t, svc.Transcript())
	assert.Equal(t, MsgConnectivity, svc.LastError())
}

func TestClientChatService_Initialize_RetryAfterFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestChatSvc(t, ctrl)
	gomock.InOrder(
		mockAdapter.EXPECT().CreateSession(gomock.Any()).Return("", errors.New("connection refused")),
		mockAdapter.EXPECT().CreateSession(gomock.Any()).Return("abc123", nil),
	)

	require.Error(t, svc.Initialize(context.Background()))
	require.NoError(t, svc.Initialize(context.Background()))

	assert.Equal(t, "abc123", svc.SessionID())
	assert.Len(t, svc.Transcript(), 1)
	assert.Empty(t, svc.LastError())
}

// ── Send ─────────────────────────────────────────────────────────────────────

func TestClientChatService_Send_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := initializedChatSvc(t, ctrl, "abc123")
	sources := []models.Source{{Title: "Reuters", Link: "https://reuters.com/world"}}

	mockAdapter.EXPECT().
		SendChat(gomock.Any(), models.ChatRequest{Message: "latest on elections", SessionID: "abc123"}).
		Return(models.ChatResponse{Response: "Here's what's happening", Sources: sources, Timestamp: 1700000000000}, nil)

	accepted, err := svc.Send(context.Background(), "  latest on elections  ")

	require.NoError(t, err)
	assert.True(t, accepted)

	want := models.Transcript{
		greetingTurn(),
		{Role: models.RoleUser, Content: "latest on elections", Timestamp: fixedNow.UnixMilli()},
		{Role: models.RoleAssistant, Content: "Here's what's happening", Sources: sources, Timestamp: 1700000000000},
	}
	assert.Equal(t, want, svc.Transcript())
	assert.False(t, svc.Busy())
	assert.Empty(t, svc.LastError())
}

func TestClientChatService_Send_FailureWithServerMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := initializedChatSvc(t, ctrl, "abc123")
	mockAdapter.EXPECT().SendChat(gomock.Any(), gomock.Any()).
		Return(models.ChatResponse{}, fmt.Errorf("wrapped: %w", rateLimitedErr()))

	accepted, err := svc.Send(context.Background(), "x")

	assert.True(t, accepted)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrChatRequest)

	transcript := svc.Transcript()
	require.Len(t, transcript, 3)
	assert.Equal(t, models.Turn{Role: models.RoleUser, Content: "x", Timestamp: fixedNow.UnixMilli()}, transcript[1])
	assert.Equal(t, models.Turn{Role: models.RoleAssistant, Content: MsgApology, Timestamp: fixedNow.UnixMilli(), Error: true}, transcript[2])
	assert.Equal(t, "rate limited", svc.LastError())
	assert.False(t, svc.Busy())
}

func TestClientChatService_Send_FailureWithoutServerMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "network error", err: errors.New("dial tcp: connection refused")},
		{name: "status without body", err: &adapter.ResponseError{StatusCode: http.StatusBadGateway}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mockAdapter := initializedChatSvc(t, ctrl, "abc123")
			mockAdapter.EXPECT().SendChat(gomock.Any(), gomock.Any()).Return(models.ChatResponse{}, tt.err)

			accepted, err := svc.Send(context.Background(), "x")

			assert.True(t, accepted)
			assert.ErrorIs(t, err, ErrChatRequest)
			assert.Equal(t, MsgChatFailed, svc.LastError())
			assert.True(t, svc.Transcript()[2].Error)
		})
	}
}

func TestClientChatService_Send_KeepsServerTimestamp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := initializedChatSvc(t, ctrl, "abc123")
	mockAdapter.EXPECT().SendChat(gomock.Any(), gomock.Any()).
		Return(models.ChatResponse{Response: "answer"}, nil)

	_, err := svc.Send(context.Background(), "x")

	require.NoError(t, err)
	assert.Zero(t, svc.Transcript()[2].Timestamp)
}

func TestClientChatService_Send_Rejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("whitespace only", func(t *testing.T) {
		svc, _ := initializedChatSvc(t, ctrl, "abc123")

		accepted, err := svc.Send(context.Background(), " \t\n ")

		assert.False(t, accepted)
		assert.NoError(t, err)
		assert.Len(t, svc.Transcript(), 1)
	})

	t.Run("no session", func(t *testing.T) {
		svc, _ := newTestChatSvc(t, ctrl)

		accepted, err := svc.Send(context.Background(), "hello")

		assert.False(t, accepted)
		assert.NoError(t, err)
		assert.Empty(t, svc.Transcript())
		assert.False(t, svc.Busy())
	})

	t.Run("busy", func(t *testing.T) {
		svc, mockAdapter := initializedChatSvc(t, ctrl, "abc123")
		mockAdapter.EXPECT().SendChat(gomock.Any(), gomock.Any()).
			Return(models.ChatResponse{Response: "first answer", Timestamp: 1}, nil)

		dispatch, accepted := svc.Submit("first")
		require.True(t, accepted)
		require.True(t, svc.Busy())

		before := svc.Transcript()
		lastErr := svc.LastError()

		second, err := svc.Send(context.Background(), "second")

		assert.False(t, second)
		assert.NoError(t, err)
		assert.Equal(t, before, svc.Transcript())
		assert.Equal(t, lastErr, svc.LastError())

		require.NoError(t, dispatch(context.Background()))
		assert.False(t, svc.Busy())
	})
}

func TestClientChatService_Submit_OptimisticAppend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := initializedChatSvc(t, ctrl, "abc123")
	svc.lastError = "stale error"

	dispatch, accepted := svc.Submit("hello")

	require.True(t, accepted)
	transcript := svc.Transcript()
	require.Len(t, transcript, 2)
	assert.Equal(t, models.RoleUser, transcript[1].Role)
	assert.True(t, svc.Busy())
	assert.Empty(t, svc.LastError())

	mockAdapter.EXPECT().SendChat(gomock.Any(), gomock.Any()).
		Return(models.ChatResponse{Response: "hi", Timestamp: 5}, nil)
	require.NoError(t, dispatch(context.Background()))

	// a second call of the same dispatch is ignored
	require.NoError(t, dispatch(context.Background()))
	assert.Len(t, svc.Transcript(), 3)
}

func TestClientChatService_Send_PanicReleasesBusy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := initializedChatSvc(t, ctrl, "abc123")
	mockAdapter.EXPECT().SendChat(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.ChatRequest) (models.ChatResponse, error) {
			panic("decoder exploded")
		})

	accepted, err := svc.Send(context.Background(), "x")

	assert.True(t, accepted)
	assert.ErrorIs(t, err, ErrChatRequest)
	assert.False(t, svc.Busy())

	transcript := svc.Transcript()
	require.Len(t, transcript, 3)
	assert.True(t, transcript[2].Error)
	assert.Equal(t, MsgChatFailed, svc.LastError())
}

func TestClientChatService_Send_Ordering(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := initializedChatSvc(t, ctrl, "abc123")

	const n = 5
	want := models.Transcript{greetingTurn()}
	for i := 1; i <= n; i++ {
		question := fmt.Sprintf("question %d", i)
		answer := fmt.Sprintf("answer %d", i)

		mockAdapter.EXPECT().
			SendChat(gomock.Any(), models.ChatRequest{Message: question, SessionID: "abc123"}).
			Return(models.ChatResponse{Response: answer, Timestamp: int64(1700000000000 + i)}, nil)

		want = append(want,
			models.Turn{Role: models.RoleUser, Content: question, Timestamp: fixedNow.UnixMilli()},
			models.Turn{Role: models.RoleAssistant, Content: answer, Timestamp: int64(1700000000000 + i)},
		)
	}

	for i := 1; i <= n; i++ {
		accepted, err := svc.Send(context.Background(), fmt.Sprintf("question %d", i))
		require.True(t, accepted)
		require.NoError(t, err)
	}

	assert.Equal(t, want, svc.Transcript())
}

func TestClientChatService_Send_TwoTurnsRegardlessOfOutcome(t *testing.T) {
	outcomes := []error{nil, errors.New("boom"), rateLimitedErr()}

	for _, outcome := range outcomes {
		t.Run(fmt.Sprintf("%v", outcome), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mockAdapter := initializedChatSvc(t, ctrl, "abc123")
			mockAdapter.EXPECT().SendChat(gomock.Any(), gomock.Any()).
				Return(models.ChatResponse{Response: "ok", Timestamp: 1}, outcome)

			before := len(svc.Transcript())
			_, _ = svc.Send(context.Background(), "question")

			assert.Equal(t, before+2, len(svc.Transcript()))
		})
	}
}

// ── Reset ────────────────────────────────────────────────────────────────────

func TestClientChatService_Reset_WithSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := initializedChatSvc(t, ctrl, "abc123")
	mockAdapter.EXPECT().SendChat(gomock.Any(), gomock.Any()).
		Return(models.ChatResponse{Response: "ok", Timestamp: 1}, nil)
	_, _ = svc.Send(context.Background(), "hello")

	gomock.InOrder(
		mockAdapter.EXPECT().DeleteSession(gomock.Any(), "abc123").Return(nil),
		mockAdapter.EXPECT().CreateSession(gomock.Any()).Return("def456", nil),
	)

	err := svc.Reset(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "def456", svc.SessionID())
	assert.Equal(t, models.Transcript{greetingTurn()}, svc.Transcript())
}

func TestClientChatService_Reset_RelinquishFailureIsAbsorbed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := initializedChatSvc(t, ctrl, "abc123")
	gomock.InOrder(
		mockAdapter.EXPECT().DeleteSession(gomock.Any(), "abc123").Return(errors.New("404")),
		mockAdapter.EXPECT().CreateSession(gomock.Any()).Return("def456", nil),
	)

	err := svc.Reset(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "def456", svc.SessionID())
	assert.Len(t, svc.Transcript(), 1)
	assert.Empty(t, svc.LastError())
}

func TestClientChatService_Reset_WithoutSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestChatSvc(t, ctrl)
	mockAdapter.EXPECT().DeleteSession(gomock.Any(), gomock.Any()).Times(0)
	mockAdapter.EXPECT().CreateSession(gomock.Any()).Return("abc123", nil)

	err := svc.Reset(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.Transcript{greetingTurn()}, svc.Transcript())
}

func TestClientChatService_Reset_InitializeFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := initializedChatSvc(t, ctrl, "abc123")
	before := svc.Transcript()

	gomock.InOrder(
		mockAdapter.EXPECT().DeleteSession(gomock.Any(), "abc123").Return(nil),
		mockAdapter.EXPECT().CreateSession(gomock.Any()).Return("", errors.New("down")),
	)

	err := svc.Reset(context.Background())

	assert.ErrorIs(t, err, ErrConnectivity)
	assert.Empty(t, svc.SessionID())
	assert.Equal(t, before, svc.Transcript())
	assert.Equal(t, MsgConnectivity, svc.LastError())

	accepted, err := svc.Send(context.Background(), "anyone there?")
	assert.False(t, accepted)
	assert.NoError(t, err)
}

func TestClientChatService_Reset_DropsPendingReply(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := initializedChatSvc(t, ctrl, "abc123")

	dispatch, accepted := svc.Submit("slow question")
	require.True(t, accepted)

	gomock.InOrder(
		mockAdapter.EXPECT().DeleteSession(gomock.Any(), "abc123").Return(nil),
		mockAdapter.EXPECT().CreateSession(gomock.Any()).Return("def456", nil),
	)
	require.NoError(t, svc.Reset(context.Background()))

	mockAdapter.EXPECT().SendChat(gomock.Any(), gomock.Any()).
		Return(models.ChatResponse{Response: "late answer", Timestamp: 1}, nil)
	require.NoError(t, dispatch(context.Background()))

	assert.Equal(t, models.Transcript{greetingTurn()}, svc.Transcript())
	assert.False(t, svc.Busy())
}

func TestClientChatService_Reset_InitializeFailsWhilePending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := initializedChatSvc(t, ctrl, "abc123")

	dispatch, accepted := svc.Submit("slow question")
	require.True(t, accepted)

	gomock.InOrder(
		mockAdapter.EXPECT().DeleteSession(gomock.Any(), "abc123").Return(nil),
		mockAdapter.EXPECT().CreateSession(gomock.Any()).Return("", errors.New("down")),
	)
	assert.ErrorIs(t, svc.Reset(context.Background()), ErrConnectivity)

	mockAdapter.EXPECT().SendChat(gomock.Any(), gomock.Any()).
		Return(models.ChatResponse{Response: "late answer", Timestamp: 1}, nil)
	require.NoError(t, dispatch(context.Background()))

	transcript := svc.Transcript()
	require.Len(t, transcript, 3)
	assert.Equal(t, models.RoleUser, transcript[1].Role)
	assert.Equal(t, models.Turn{Role: models.RoleAssistant, Content: MsgApology, Timestamp: fixedNow.UnixMilli(), Error: true}, transcript[2])
	assert.Equal(t, MsgConnectivity, svc.LastError())
	assert.False(t, svc.Busy())
}

func TestClientChatService_Close_WhilePendingAnswersUserTurn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := initializedChatSvc(t, ctrl, "abc123")

	dispatch, accepted := svc.Submit("slow question")
	require.True(t, accepted)

	mockAdapter.EXPECT().DeleteSession(gomock.Any(), "abc123").Return(nil)
	svc.Close(context.Background())

	mockAdapter.EXPECT().SendChat(gomock.Any(), gomock.Any()).
		Return(models.ChatResponse{}, errors.New("context canceled"))
	require.Error(t, dispatch(context.Background()))

	transcript := svc.Transcript()
	require.Len(t, transcript, 3)
	assert.True(t, transcript[2].Error)
}

// ── Close / snapshots ────────────────────────────────────────────────────────

func TestClientChatService_Close(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := initializedChatSvc(t, ctrl, "abc123")
	mockAdapter.EXPECT().DeleteSession(gomock.Any(), "abc123").Return(nil)

	svc.Close(context.Background())

	assert.Empty(t, svc.SessionID())

	// nothing left to relinquish
	svc.Close(context.Background())
}

func TestClientChatService_TranscriptIsSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := initializedChatSvc(t, ctrl, "abc123")
	mockAdapter.EXPECT().SendChat(gomock.Any(), gomock.Any()).
		Return(models.ChatResponse{Response: "a", Sources: []models.Source{{Title: "AP", Link: "https://apnews.com"}}, Timestamp: 1}, nil)
	_, _ = svc.Send(context.Background(), "q")

	snapshot := svc.Transcript()
	snapshot[0].Content = "tampered"
	snapshot[2].Sources[0].Title = "tampered"

	fresh := svc.Transcript()
	assert.Equal(t, MsgGreeting, fresh[0].Content)
	assert.Equal(t, "AP", fresh[2].Sources[0].Title)
}

func TestChatErrorMessage(t *testing.T) {
	assert.Equal(t, "rate limited", chatErrorMessage(rateLimitedErr()))
	assert.Equal(t, MsgChatFailed, chatErrorMessage(errors.New("boom")))
	assert.Equal(t, MsgChatFailed, chatErrorMessage(&adapter.ResponseError{StatusCode: 500, Message: ""}))
	assert.Equal(t, MsgChatFailed, chatErrorMessage(&adapter.ResponseError{StatusCode: 502}))
}
