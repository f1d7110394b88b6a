package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyMessage    = errors.New("message is required")
	ErrEmptySessionID  = errors.New("session ID is required")
	ErrMessageTooLong  = errors.New("message is too long")
	ErrInvalidEncoding = errors.New("message is not valid UTF-8")
)
