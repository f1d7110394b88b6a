package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-news-chat/models"
)

const (
	FieldMessage   = "message"
	FieldSessionID = "session_id"
)

// MaxMessageLength is the longest accepted chat message, in runes.
const MaxMessageLength = 4000

type ChatValidator struct {
	maxMessageLength int
}

func NewChatValidator() Validator {
	return &ChatValidator{maxMessageLength: MaxMessageLength}
}

// Validate accepts a [models.ChatRequest] (checked as a whole or limited to
// the given fields) or a bare session id string.
func (v *ChatValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ChatRequest:
		return v.validateChatRequest(ctx, value, fields...)
	case *models.ChatRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateChatRequest(ctx, *value, fields...)
	case string:
		return v.validateSessionID(value)
	default:
		return ErrUnsupportedType
	}
}

func (v *ChatValidator) validateChatRequest(_ context.Context, req models.ChatRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMessage, FieldSessionID}
	}

	for _, field := range fields {
		var err error
		switch field {
		case FieldMessage:
			err = v.validateMessage(req.Message)
		case FieldSessionID:
			err = v.validateSessionID(req.SessionID)
		default:
			err = fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *ChatValidator) validateMessage(message string) error {
	if strings.TrimSpace(message) == "" {
		return ErrEmptyMessage
	}
	if !utf8.ValidString(message) {
		return ErrInvalidEncoding
	}
	if utf8.RuneCountInString(message) > v.maxMessageLength {
		return fmt.Errorf("%w: limit is %d characters", ErrMessageTooLong, v.maxMessageLength)
	}
	return nil
}

func (v *ChatValidator) validateSessionID(sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return ErrEmptySessionID
	}
	return nil
}
