// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is the server-side record of a conversation kept by the
// development assistant server.
type Session struct {
	// SessionID is the identifier handed out to the client.
	SessionID string `json:"sessionId"`
	// CreatedAt is the moment the session was provisioned.
	CreatedAt time.Time `json:"createdAt"`
	// LastActiveAt is refreshed on every chat turn and drives idle expiry.
	LastActiveAt time.Time `json:"lastActiveAt"`
}

// Message is a persisted turn of a server-side session.
type Message struct {
	SessionID string   `json:"sessionId"`
	Seq       int64    `json:"seq"`
	Role      Role     `json:"role"`
	Content   string   `json:"content"`
	Sources   []Source `json:"sources,omitempty"`
	Timestamp int64    `json:"timestamp"`
}
