package http

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-news-chat/internal/logger"
	"github.com/MKhiriev/go-news-chat/internal/service"
	"github.com/MKhiriev/go-news-chat/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Fakes
// ─────────────────────────────────────────────

type fakeSessionService struct {
	createFn  func(ctx context.Context) (models.Session, error)
	deleteFn  func(ctx context.Context, sessionID string) error
	historyFn func(ctx context.Context, sessionID string) ([]models.Message, error)
}

func (f *fakeSessionService) CreateSession(ctx context.Context) (models.Session, error) {
	if f.createFn != nil {
		return f.createFn(ctx)
	}
	return models.Session{SessionID: "s-1"}, nil
}

func (f *fakeSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, sessionID)
	}
	return nil
}

func (f *fakeSessionService) GetHistory(ctx context.Context, sessionID string) ([]models.Message, error) {
	if f.historyFn != nil {
		return f.historyFn(ctx, sessionID)
	}
	return nil, nil
}

func (f *fakeSessionService) PurgeIdleSessions(_ context.Context) (int64, error) {
	return 0, nil
}

type fakeChatService struct {
	chatFn func(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error)
}

func (f *fakeChatService) Chat(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error) {
	if f.chatFn != nil {
		return f.chatFn(ctx, req)
	}
	return models.ChatResponse{Response: "ok"}, nil
}

// newTestAPI returns a handler over the given fakes; nil fakes are replaced
// with zero-value ones.
func newTestAPI(sessions *fakeSessionService, chat *fakeChatService) *Handler {
	if sessions == nil {
		sessions = &fakeSessionService{}
	}
	if chat == nil {
		chat = &fakeChatService{}
	}

	return NewHandler(&service.Services{
		SessionService: sessions,
		ChatService:    chat,
		StatusService:  &fakeStatusService{status: models.ServerStatus{Version: "test-version", Storage: "memory"}},
	}, logger.Nop())
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_ReturnsNonNil(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())

	require.NotNil(t, h)
}

func TestNewHandler_StoresServices(t *testing.T) {
	svc := &service.Services{}
	h := NewHandler(svc, logger.Nop())

	assert.Equal(t, svc, h.services)
}

func TestNewHandler_StoresLogger(t *testing.T) {
	log := logger.Nop()
	h := NewHandler(&service.Services{}, log)

	assert.Equal(t, log, h.logger)
}

func TestNewHandler_BoundsChatBody(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())

	assert.Equal(t, int64(defaultMaxChatBodyBytes), h.maxChatBodyBytes)
}
