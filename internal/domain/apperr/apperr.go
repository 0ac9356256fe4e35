// Package apperr defines the error taxonomy every store and handler speaks.
//
// Failures are tagged with a Kind instead of being ad-hoc sentinel values so
// callers must handle every case and the HTTP layer can map kinds to status
// codes in one place. Errors wrap cleanly: use errors.As / KindOf to inspect,
// and %w to add context without losing the kind.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application failure.
type Kind int

const (
	// KindInternal is the zero value: an unexpected failure (store error,
	// encoding bug). Never returned for anticipated conditions.
	KindInternal Kind = iota
	// KindNotFound: a referenced id/name/email/username does not resolve,
	// or a composite-key lookup (rating id + user id) has no match.
	KindNotFound
	// KindConflict: a uniqueness rule was violated (duplicate username,
	// email, or ingredient name).
	KindConflict
	// KindBadRequest: a state precondition failed (account not fully
	// registered, recipe already in favorites) or the input is malformed.
	KindBadRequest
)

// String returns the canonical name used in error envelopes.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "Not Found"
	case KindConflict:
		return "Conflict"
	case KindBadRequest:
		return "Bad Request"
	default:
		return "Internal Server Error"
	}
}

// HTTPStatus maps a kind to its HTTP status code.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindBadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Error is a kinded application error.
type Error struct {
	Kind    Kind
	Message string
	Err     error // wrapped cause, may be nil
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is match two apperr values by kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

// NotFound builds a not-found error.
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflict builds a conflict error.
func Conflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// BadRequest builds a bad-request error.
func BadRequest(format string, args ...any) *Error {
	return &Error{Kind: KindBadRequest, Message: fmt.Sprintf(format, args...)}
}

// Internal wraps an unexpected failure.
func Internal(err error, format string, args ...any) *Error {
	return &Error{Kind: KindInternal, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf extracts the kind from any error chain. Untagged errors are internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// IsNotFound reports whether err is tagged KindNotFound.
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

// IsConflict reports whether err is tagged KindConflict.
func IsConflict(err error) bool { return KindOf(err) == KindConflict }

// IsBadRequest reports whether err is tagged KindBadRequest.
func IsBadRequest(err error) bool { return KindOf(err) == KindBadRequest }
