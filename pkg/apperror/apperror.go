package apperror

import (
	"errors"
	"fmt"
)

// Error kinds. Every *Error unwraps to exactly one of them, so callers can
// branch with errors.Is without inspecting messages.
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrValidation       = errors.New("validation failed")
	ErrConflict         = errors.New("conflict")
)

// Error is a business-level failure carrying a human readable message.
type Error struct {
	Kind    error
	Message string
	Fields  map[string]string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func NotFound(format string, args ...any) error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

func InvalidOperation(format string, args ...any) error {
	return &Error{Kind: ErrInvalidOperation, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) error {
	return &Error{Kind: ErrConflict, Message: fmt.Sprintf(format, args...)}
}

// Validation wraps field level failures produced by the request validator.
func Validation(message string, fields map[string]string) error {
	return &Error{Kind: ErrValidation, Message: message, Fields: fields}
}

// FieldsOf returns the field errors attached to err, if any.
func FieldsOf(err error) map[string]string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Fields
	}
	return nil
}
