package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-news-chat/internal/logger"
	"github.com/MKhiriev/go-news-chat/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// accessLogAPI returns a router over the given fakes whose log lines are
// written to the returned buffer.
func accessLogAPI(sessions *fakeSessionService, chat *fakeChatService) (http.Handler, *bytes.Buffer) {
	var buf bytes.Buffer
	h := newTestAPI(sessions, chat)
	h.logger = &logger.Logger{Logger: zerolog.New(&buf)}
	return h.Init(), &buf
}

// accessLine returns the single access log entry in buf.
func accessLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var found map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		if _, ok := entry["status"]; ok && entry["method"] != nil {
			require.Nil(t, found, "more than one access log line")
			found = entry
		}
	}
	require.NotNil(t, found, "no access log line in %q", buf.String())
	return found
}

func TestWithLogging_ChatRequest(t *testing.T) {
	router, buf := accessLogAPI(nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message":"hi","sessionId":"s-1"}`))
	req.Header.Set(traceIDHeader, "trace-1")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	entry := accessLine(t, buf)
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, http.MethodPost, entry["method"])
	assert.Equal(t, "/api/chat", entry["uri"])
	assert.Equal(t, "/api/chat", entry["route"])
	assert.Equal(t, float64(http.StatusOK), entry["status"])
	assert.Equal(t, float64(rr.Body.Len()), entry["size"])
	assert.Equal(t, "trace-1", entry["trace_id"])
	assert.Contains(t, entry, "duration")
	assert.NotContains(t, entry, "error")
}

func TestWithLogging_SessionRouteCarriesSessionID(t *testing.T) {
	sessions := &fakeSessionService{historyFn: func(ctx context.Context, sessionID string) ([]models.Message, error) {
		return nil, nil
	}}
	router, buf := accessLogAPI(sessions, nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/sessions/0193a1b2/history", nil))

	entry := accessLine(t, buf)
	assert.Equal(t, "/api/sessions/{sessionID}/history", entry["route"])
	assert.Equal(t, "0193a1b2", entry["session_id"])
}

func TestWithLogging_Levels(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		path      string
		body      string
		chat      *fakeChatService
		wantLevel string
		wantCode  int
		wantError string
	}{
		{
			name:      "validation failure is a warning",
			method:    http.MethodPost,
			path:      "/api/chat",
			body:      `{"message":`,
			wantLevel: "warn",
			wantCode:  http.StatusBadRequest,
			wantError: invalidJSONMessage,
		},
		{
			name:      "unknown route is a warning",
			method:    http.MethodGet,
			path:      "/api/nowhere",
			wantLevel: "warn",
			wantCode:  http.StatusNotFound,
			wantError: notFoundMessage,
		},
		{
			name:   "service failure is an error",
			method: http.MethodPost,
			path:   "/api/chat",
			body:   `{"message":"hi","sessionId":"s-1"}`,
			chat: &fakeChatService{chatFn: func(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error) {
				return models.ChatResponse{}, assert.AnError
			}},
			wantLevel: "error",
			wantCode:  http.StatusInternalServerError,
			wantError: internalErrorMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, buf := accessLogAPI(nil, tt.chat)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body)))
			require.Equal(t, tt.wantCode, rr.Code)

			entry := accessLine(t, buf)
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, float64(tt.wantCode), entry["status"])
			assert.Equal(t, tt.wantError, entry["error"])
		})
	}
}

func TestWithLogging_PanicIsLoggedAsServerError(t *testing.T) {
	chat := &fakeChatService{chatFn: func(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error) {
		panic("responder exploded")
	}}
	router, buf := accessLogAPI(nil, chat)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message":"hi","sessionId":"s-1"}`)))

	entry := accessLine(t, buf)
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, float64(http.StatusInternalServerError), entry["status"])
}

func TestAccessLogLevel(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, accessLogLevel(http.StatusOK))
	assert.Equal(t, zerolog.InfoLevel, accessLogLevel(http.StatusCreated))
	assert.Equal(t, zerolog.WarnLevel, accessLogLevel(http.StatusNotFound))
	assert.Equal(t, zerolog.WarnLevel, accessLogLevel(http.StatusRequestEntityTooLarge))
	assert.Equal(t, zerolog.ErrorLevel, accessLogLevel(http.StatusBadGateway))
}
