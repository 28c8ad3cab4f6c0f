package services

import (
	"errors"
	"fmt"

	"github.com/sbilibin2017/poetree/internal/validation"
)

// Error kinds. Handlers map them to HTTP status codes with errors.Is.
var (
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

// Error is a client-facing failure: Kind says what went wrong, Message says it to the user.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func validationFailed(format string, args ...any) error {
	return newError(ErrValidation, format, args...)
}

func notFound(format string, args ...any) error {
	return newError(ErrNotFound, format, args...)
}

func conflict(format string, args ...any) error {
	return newError(ErrConflict, format, args...)
}

func forbidden(format string, args ...any) error {
	return newError(ErrForbidden, format, args...)
}

// validate runs the struct validators and wraps the first failure as ErrValidation.
func validate(req any) error {
	if err := validation.Struct(req); err != nil {
		return &Error{Kind: ErrValidation, Message: err.Error()}
	}
	return nil
}
