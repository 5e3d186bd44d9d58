package errors

import (
	"fmt"
	bugsnagerrors "github.com/bugsnag/bugsnag-go/v2/errors"
)

var (
	// ErrInvalidInput marks malformed or missing configuration, detected before any external call.
	ErrInvalidInput = NewSentinelError("invalid input")
	// ErrPermissionDenied marks calls rejected because the caller lacks rights.
	ErrPermissionDenied = NewSentinelError("permission denied")
	// ErrNotFound marks a referenced project or dependent resource that does not exist.
	ErrNotFound = NewSentinelError("not found")
	// ErrConflict marks a resource owned by someone else, or a write that lost a race.
	ErrConflict = NewSentinelError("conflict")
	// ErrTransient marks provider-side rate limiting and timeouts. Safe to retry with backoff.
	ErrTransient = NewSentinelError("transient")
)

var kinds = []error{ErrInvalidInput, ErrPermissionDenied, ErrNotFound, ErrConflict, ErrTransient}

type kindError struct {
	kind  error
	cause error
}

func (e *kindError) Error() string {
	if e.cause == nil {
		return e.kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.kind.Error(), e.cause.Error())
}

func (e *kindError) Unwrap() []error {
	if e.cause == nil {
		return []error{e.kind}
	}
	return []error{e.kind, e.cause}
}

// WithKind classifies err as kind while keeping err reachable through Is and As.
func WithKind(kind error, err error) error {
	if err == nil {
		return nil
	}
	return bugsnagerrors.New(&kindError{kind: kind, cause: err}, 1)
}

// KindErrorf builds a new error of the given kind with a formatted message.
func KindErrorf(kind error, format string, a ...any) error {
	return bugsnagerrors.New(&kindError{kind: kind, cause: fmt.Errorf(format, a...)}, 1)
}

// KindOf returns the taxonomy sentinel err was classified with, or nil if it was never classified.
func KindOf(err error) error {
	for _, kind := range kinds {
		if Is(err, kind) {
			return kind
		}
	}
	return nil
}

func IsInvalidInput(err error) bool {
	return Is(err, ErrInvalidInput)
}

func IsPermissionDenied(err error) bool {
	return Is(err, ErrPermissionDenied)
}

func IsNotFound(err error) bool {
	return Is(err, ErrNotFound)
}

func IsConflict(err error) bool {
	return Is(err, ErrConflict)
}

func IsTransient(err error) bool {
	return Is(err, ErrTransient)
}
