// Package errs classifies failures crossing the repository boundary so
// the HTTP layer can map them to status codes without inspecting error
// text. Every classified error carries a client-safe detail message;
// the internal cause is wrapped for logging and never leaves the
// process.
package errs

import (
	"errors"
	"fmt"
)

// Kind partitions failures by how the boundary responds to them.
type Kind int

const (
	// KindInternal is an unexpected store or runtime failure (HTTP 500).
	KindInternal Kind = iota
	// KindNotFound means the requested entity does not exist (HTTP 404).
	KindNotFound
	// KindInvalid means client-supplied data failed a constraint or
	// referenced a nonexistent related entity (HTTP 400).
	KindInvalid
)

// String returns the kind's wire-safe label.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindInvalid:
		return "invalid"
	default:
		return "internal"
	}
}

// Error pairs a client-safe detail with the wrapped internal cause.
type Error struct {
	Kind   Kind
	Detail string // safe to send to a client
	Err    error  // internal cause, log only
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Detail, e.Err)
	}
	return e.Detail
}

func (e *Error) Unwrap() error { return e.Err }

// NotFound reports that the named entity does not exist.
func NotFound(detail string) *Error {
	return &Error{Kind: KindNotFound, Detail: detail}
}

// Invalid reports a constraint violation or a reference to a
// nonexistent related entity. err may be nil when the detail says it
// all.
func Invalid(detail string, err error) *Error {
	return &Error{Kind: KindInvalid, Detail: detail, Err: err}
}

// Internal wraps an unexpected failure behind a generic detail.
func Internal(detail string, err error) *Error {
	return &Error{Kind: KindInternal, Detail: detail, Err: err}
}

// KindOf extracts the classification from err. Unclassified errors are
// internal: the boundary must never map them to anything the client
// could mistake for its own fault.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// DetailOf returns the client-safe detail carried by err, or fallback
// when err is unclassified.
func DetailOf(err error, fallback string) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Detail
	}
	return fallback
}
