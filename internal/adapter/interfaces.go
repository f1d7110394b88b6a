// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the remote news assistant service.
//
// The primary abstraction is [AssistantAdapter], which decouples the session
// controller from the underlying protocol. The package ships a JSON over HTTP
// implementation ([NewHTTPAssistantAdapter]) built on resty.
//
// Non-2xx responses are mapped by mapHTTPError into a [*ResponseError] that
// carries the server-supplied message and unwraps to the status sentinels in
// errors.go, so callers can use [errors.Is] (e.g. [ErrNotFound] for 404) and
// [errors.As] to read the message.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-news-chat/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/assistant_adapter_mock.go -package=mock

// AssistantAdapter defines transport-agnostic communication with the remote
// assistant service. Implementations are responsible for serialisation and
// for mapping transport-level errors to the values defined in this package.
type AssistantAdapter interface {
	// CreateSession asks the service for a new conversation and returns the
	// server-issued session identifier.
	CreateSession(ctx context.Context) (string, error)

	// SendChat sends one user message within the session named in req and
	// returns the assistant's reply.
	SendChat(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error)

	// DeleteSession asks the service to forget sessionID. The acknowledgement
	// body is ignored.
	DeleteSession(ctx context.Context, sessionID string) error
}
