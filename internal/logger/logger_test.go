package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, raw []byte) []map[string]any {
	t.Helper()

	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(string(raw)), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		entries = append(entries, entry)
	}
	return entries
}

func TestNewLogger_ServerEntryShape(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("server")
	l.Logger = l.Output(&buf)

	l.Info().Msg("assistant server started")

	entries := decodeLines(t, buf.Bytes())
	require.Len(t, entries, 1)
	assert.Equal(t, "server", entries[0][RoleField])
	assert.Equal(t, "assistant server started", entries[0]["message"])
	assert.Contains(t, entries[0], "time")
	assert.NotEmpty(t, entries[0]["func"])
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNewClientLogger(t *testing.T) {
	t.Run("appends to the log file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "chat.log")
		require.NoError(t, os.WriteFile(path, []byte(`{"message":"previous run"}`+"\n"), 0o644))

		l, closeLog := NewClientLogger("client", path)
		l.ForSession("0193a1b2").Info().Msg("session initialized")
		require.NoError(t, closeLog())

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		entries := decodeLines(t, data)
		require.Len(t, entries, 2)
		assert.Equal(t, "previous run", entries[0]["message"])
		assert.Equal(t, "client", entries[1][RoleField])
		assert.Equal(t, "0193a1b2", entries[1][SessionIDField])
	})

	t.Run("unwritable path falls back to stderr", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "no-such-dir", "chat.log")

		l, closeLog := NewClientLogger("client", path)

		require.NotNil(t, l)
		assert.NoError(t, closeLog())
		_, err := os.Stat(path)
		assert.True(t, os.IsNotExist(err))
	})
}

func TestNop(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Error().Msg("chat request failed")

	assert.Zero(t, buf.Len())
}

func TestForSession_DoesNotLeakIntoParent(t *testing.T) {
	var buf bytes.Buffer
	parent := &Logger{zerolog.New(&buf).With().Str(RoleField, "server").Logger()}

	parent.ForSession("s-1").Info().Msg("answer recorded")
	parent.Info().Msg("sweep finished")

	entries := decodeLines(t, buf.Bytes())
	require.Len(t, entries, 2)
	assert.Equal(t, "s-1", entries[0][SessionIDField])
	assert.Equal(t, "server", entries[0][RoleField])
	assert.NotContains(t, entries[1], SessionIDField)
}

func TestGetChildLogger_UpdateContextStaysLocal(t *testing.T) {
	var buf bytes.Buffer
	parent := &Logger{zerolog.New(&buf)}

	child := parent.GetChildLogger()
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str(TraceIDField, "trace-1")
	})

	child.Info().Msg("child")
	parent.Info().Msg("parent")

	entries := decodeLines(t, buf.Bytes())
	require.Len(t, entries, 2)
	assert.Equal(t, "trace-1", entries[0][TraceIDField])
	assert.NotContains(t, entries[1], TraceIDField)
}

func TestFromContext(t *testing.T) {
	t.Run("no logger attached", func(t *testing.T) {
		l := FromContext(context.Background())
		require.NotNil(t, l)
		assert.Equal(t, zerolog.Disabled, l.GetLevel())
	})

	t.Run("attached logger", func(t *testing.T) {
		var buf bytes.Buffer
		attached := zerolog.New(&buf).With().Str(TraceIDField, "trace-2").Logger()
		req := httptest.NewRequest(http.MethodPost, "/api/chat", nil)
		req = req.WithContext(attached.WithContext(req.Context()))

		FromRequest(req).Info().Msg("chat")

		entries := decodeLines(t, buf.Bytes())
		require.Len(t, entries, 1)
		assert.Equal(t, "trace-2", entries[0][TraceIDField])
	})
}
