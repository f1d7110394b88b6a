// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CreateSessionResponse is the body returned by POST /api/sessions.
type CreateSessionResponse struct {
	// SessionID is the opaque identifier issued by the assistant service.
	SessionID string `json:"sessionId"`
}

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	// Message is the trimmed user text.
	Message string `json:"message"`
	// SessionID references the conversation the message belongs to.
	SessionID string `json:"sessionId"`
}

// ChatResponse is the body returned by POST /api/chat on success.
type ChatResponse struct {
	// Response is the assistant answer, possibly markdown.
	Response string `json:"response"`
	// Sources lists the citations used for the answer.
	Sources []Source `json:"sources,omitempty"`
	// Timestamp is the server time of the answer in milliseconds since the
	// Unix epoch.
	Timestamp int64 `json:"timestamp"`
}

// ErrorResponse is the body the assistant service sends with non-2xx
// statuses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// DeleteSessionResponse acknowledges DELETE /api/sessions/{sessionID}.
type DeleteSessionResponse struct {
	Message string `json:"message"`
}

// HistoryResponse is the body returned by
// GET /api/sessions/{sessionID}/history.
type HistoryResponse struct {
	SessionID string    `json:"sessionId"`
	Messages  []Message `json:"messages"`
}
