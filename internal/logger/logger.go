// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the chat client and the assistant server.
//
// The server writes JSON lines to stdout and carries a request-scoped logger
// in the request context. The terminal client owns stdout, so its entries go
// to a file next to the working directory instead.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Field keys shared by every component that logs about a chat.
const (
	SessionIDField = "session_id"
	TraceIDField   = "trace_id"
	RoleField      = "role"
)

type Logger struct {
	zerolog.Logger
}

// NewLogger builds the server logger. Entries carry role, time and the
// calling function under "func".
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role)
}

// NewClientLogger appends entries to logPath. If the file cannot be opened
// the logger writes to stderr and the returned closer does nothing.
func NewClientLogger(role, logPath string) (*Logger, func() error) {
	logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return newLogger(os.Stderr, role), func() error { return nil }
	}

	return newLogger(logFile, role), logFile.Close
}

func newLogger(w io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		if fn := runtime.FuncForPC(pc); fn != nil {
			return fn.Name()
		}
		return "unknown"
	}

	return &Logger{zerolog.New(w).With().Str(RoleField, role).Timestamp().Caller().Logger()}
}

// Nop discards everything. Tests use it.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger copies the receiver so callers can add fields without
// touching the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// ForSession returns a child logger bound to one chat session.
func (l *Logger) ForSession(sessionID string) *Logger {
	return &Logger{l.With().Str(SessionIDField, sessionID).Logger()}
}

// FromRequest returns the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx, or zerolog's default
// (disabled) logger when none is attached. It never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
