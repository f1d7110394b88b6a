package service

import (
	"context"

	"github.com/MKhiriev/go-news-chat/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientChatService is the session controller of the chat client. It owns
// the session identifier, the transcript, the busy flag and the last
// user-visible error; callers only read snapshots and invoke the command
// methods.
type ClientChatService interface {
	// Initialize requests a new session. On success it stores the session id,
	// replaces the transcript with the greeting turn and clears the last
	// error. On failure the session stays absent, the transcript is left
	// unchanged, the last error is set to the connectivity message and an
	// error wrapping [ErrConnectivity] is returned.
	Initialize(ctx context.Context) error

	// Submit performs the synchronous part of a send: it validates text,
	// appends the user turn, sets busy and clears the last error. It returns
	// accepted == false without touching any state when the trimmed text is
	// empty, no session is present or a dispatch is already pending.
	//
	// The returned dispatch issues the chat request and appends exactly one
	// assistant turn. It must be called exactly once. A failed turn is
	// reported as an error wrapping [ErrChatRequest].
	Submit(text string) (dispatch func(ctx context.Context) error, accepted bool)

	// Send is Submit followed by the dispatch. It blocks until the assistant
	// turn is appended.
	Send(ctx context.Context, text string) (accepted bool, err error)

	// Reset relinquishes the current session on a best-effort basis and
	// initializes a fresh one. Relinquish failures are absorbed.
	Reset(ctx context.Context) error

	// Close relinquishes the current session on a best-effort basis. It is
	// called once when the client exits.
	Close(ctx context.Context)

	// Transcript returns a copy of the current transcript.
	Transcript() models.Transcript
	// SessionID returns the current session id or "" when absent.
	SessionID() string
	// Busy reports whether a chat dispatch is pending.
	Busy() bool
	// LastError returns the current user-visible error or "" when absent.
	LastError() string
}
