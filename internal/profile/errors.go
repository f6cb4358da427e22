package profile

import (
	"errors"
	"fmt"
	"time"
)

// ErrorKind classifies a failed analysis request.
type ErrorKind string

const (
	// KindInvalidInput means the query could not be turned into a handle.
	KindInvalidInput ErrorKind = "invalid_input"
	// KindNotFound means GitHub reports no such account.
	KindNotFound ErrorKind = "not_found"
	// KindRateLimited means the API quota is exhausted until ResetAt.
	KindRateLimited ErrorKind = "rate_limited"
	// KindUpstream covers transport failures, timeouts, and unexpected
	// non-2xx responses from GitHub.
	KindUpstream ErrorKind = "upstream_error"
	// KindInternal means upstream data violated the expected shape.
	KindInternal ErrorKind = "internal_error"
)

// Error is the typed error crossing the analysis boundary. Reason is safe
// to show to users; Err keeps the underlying cause for logs.
type Error struct {
	Kind    ErrorKind
	Reason  string
	ResetAt time.Time // set for KindRateLimited
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}

func (e *Error) Unwrap() error { return e.Err }

// NewError builds an Error with a formatted reason.
func NewError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}

// WrapError attaches a cause to a new Error.
func WrapError(kind ErrorKind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Reason: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the kind of err, or KindInternal when err is not a
// profile error.
func KindOf(err error) ErrorKind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return KindInternal
}
