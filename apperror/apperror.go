// Package apperror carries the failure kinds that services raise and the HTTP
// boundary translates into status codes.
package apperror

import (
	"errors"
	"fmt"
)

type Kind string

const (
	Unexpected           Kind = "UNEXPECTED"
	NotFound             Kind = "NOT_FOUND"
	AuthenticationFailed Kind = "AUTHENTICATION_FAILED"
	ValidationFailed     Kind = "VALIDATION_FAILED"
	Unauthorized         Kind = "UNAUTHORIZED"
)

// Error is a typed service failure. Message is safe to show to clients.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches another *Error by kind so errors.Is(err, apperror.New(kind, "")) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func NewNotFound(message string) *Error             { return New(NotFound, message) }
func NewAuthenticationFailed(message string) *Error { return New(AuthenticationFailed, message) }
func NewValidationFailed(message string) *Error     { return New(ValidationFailed, message) }
func NewUnauthorized(message string) *Error         { return New(Unauthorized, message) }

// NewUnexpected wraps an error that has no better classification.
func NewUnexpected(message string, err error) *Error {
	return Wrap(Unexpected, message, err)
}

// KindOf returns the kind of the first *Error in err's chain, or Unexpected.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return Unexpected
}

// MessageOf returns the client-facing message of err, hiding details of unclassified errors.
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Kind != Unexpected {
		return appErr.Message
	}
	return "Something went wrong!"
}
