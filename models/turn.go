// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Role identifies the author of a [Turn].
type Role string

const (
	// RoleUser marks a turn typed by the person using the client.
	RoleUser Role = "user"
	// RoleAssistant marks a turn produced by the news assistant, including
	// the greeting and failure placeholders.
	RoleAssistant Role = "assistant"
)

// Source is a single citation attached to an assistant answer.
type Source struct {
	// Title is the human-readable name of the cited article or outlet.
	Title string `json:"title"`
	// Link is the URL of the cited article.
	Link string `json:"link"`
}

// Turn is one entry of the chat transcript.
type Turn struct {
	// Role is the author of the turn.
	Role Role `json:"role"`

	// Content is the text of the turn. Assistant content may contain
	// markdown.
	Content string `json:"content"`

	// Timestamp is the instant of the turn in milliseconds since the Unix
	// epoch. User turns and failure placeholders use the client clock,
	// assistant answers use the server timestamp.
	Timestamp int64 `json:"timestamp"`

	// Sources lists the citations of an assistant answer in server order.
	// Always empty on user turns.
	Sources []Source `json:"sources,omitempty"`

	// Error marks the turn as a failure placeholder appended instead of an
	// assistant answer.
	Error bool `json:"error,omitempty"`
}

// Time converts Timestamp into a [time.Time] in the local time zone.
func (t Turn) Time() time.Time {
	return time.UnixMilli(t.Timestamp)
}

// Clone returns a copy of t that shares no memory with the original.
func (t Turn) Clone() Turn {
	if t.Sources != nil {
		sources := make([]Source, len(t.Sources))
		copy(sources, t.Sources)
		t.Sources = sources
	}
	return t
}

// Transcript is an ordered history of turns of the current session.
type Transcript []Turn

// Clone returns a deep copy of the transcript.
func (tr Transcript) Clone() Transcript {
	if tr == nil {
		return nil
	}

	copied := make(Transcript, len(tr))
	for i, turn := range tr {
		copied[i] = turn.Clone()
	}
	return copied
}

// LastAssistant returns the most recent assistant turn that is not a failure
// placeholder.
func (tr Transcript) LastAssistant() (Turn, bool) {
	for i := len(tr) - 1; i >= 0; i-- {
		if tr[i].Role == RoleAssistant && !tr[i].Error {
			return tr[i], true
		}
	}
	return Turn{}, false
}
