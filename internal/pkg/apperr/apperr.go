// Package apperr defines the request-level error taxonomy shared by the
// usecase and handler layers. Every failure is terminal for the request;
// nothing here implies a retry.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Kind classifies an error for HTTP status mapping.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindUnauthorized
	KindForbidden
)

// Error is a classified application error. Message is safe to return to
// the caller; the wrapped cause is for logs only.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// HTTPStatus maps the error kind to an HTTP status code.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// Validation reports missing or malformed input.
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// NotFound reports an absent referenced entity.
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// Conflict reports a state collision such as an occupied seat.
func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

// Unauthorized reports a missing or invalid session.
func Unauthorized(msg string) *Error {
	return &Error{Kind: KindUnauthorized, Message: msg}
}

// Forbidden reports a valid session lacking the required role.
func Forbidden(msg string) *Error {
	return &Error{Kind: KindForbidden, Message: msg}
}

// Internal wraps an unexpected failure. The caller sees only msg; err is
// preserved for logging via Unwrap.
func Internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Message: msg, cause: err}
}

// From extracts an *Error from err's chain. Unclassified errors come back
// as KindInternal with a generic message so the cause never leaks to the
// caller.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return &Error{Kind: KindInternal, Message: "internal server error", cause: err}
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// SeatUnavailableError is the Conflict raised by ticket issuance when the
// requested seat is still inside another ticket's occupancy window.
// AvailableAfter is computed from the rejected request's own clock and is
// a hint only; the real availability moment is governed by the conflicting
// ticket's end time.
type SeatUnavailableError struct {
	Seat           string
	AvailableAfter time.Time
}

func (e *SeatUnavailableError) Error() string {
	return fmt.Sprintf("seat %s is not available, it will be available after %s",
		e.Seat, e.AvailableAfter.UTC().Format(time.RFC3339))
}

// AsAppError exposes the seat conflict through the shared taxonomy.
func (e *SeatUnavailableError) AsAppError() *Error {
	return &Error{Kind: KindConflict, Message: e.Error(), cause: e}
}
