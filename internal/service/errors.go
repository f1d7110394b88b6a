package service

import "errors"

// Client side.
var (
	ErrConnectivity = errors.New("assistant service unreachable")
	ErrChatRequest  = errors.New("chat request failed")
)

// Server side.
var (
	ErrSessionNotFound       = errors.New("session not found")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrEmptyReply            = errors.New("responder produced an empty reply")
	ErrStorageUnavailable    = errors.New("session storage is unavailable")
)

// Texts shown by the client. They are part of the user-visible behaviour and
// are asserted verbatim in tests.
const (
	MsgGreeting     = "Hello! I'm your news assistant. Ask me about the latest news from around the world!"
	MsgApology      = "Sorry, I encountered an error processing your request. Please try again."
	MsgConnectivity = "Failed to connect to server. Please make sure the backend is running."
	MsgChatFailed   = "Failed to get response from server"
)
