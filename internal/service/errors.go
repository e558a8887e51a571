// Package service implements the domain services of the administrative
// API: validation rules, the cascading save orchestration (bombero ->
// credencial -> rol), credential verification with failed-attempt tracking
// and relation assignment. Services own no in-memory state; all shared
// state lives in the database behind the repository contracts.
package service

import "errors"

// Kind classifies a service failure so the HTTP layer can pick a status
// code without parsing messages.
type Kind int

const (
	// KindInvalid marks a request that violates a bound, nullability or
	// positivity rule. Maps to HTTP 400.
	KindInvalid Kind = iota + 1
	// KindNotFound marks a reference to an id that resolved to nothing.
	// Maps to HTTP 404.
	KindNotFound
	// KindConflict marks a uniqueness violation (correo, run, telefono).
	// Maps to HTTP 400, same as KindInvalid.
	KindConflict
	// KindInternal marks any other failure. Maps to HTTP 500.
	KindInternal
)

// Error is the tagged error returned by every service operation. Message
// holds the Spanish text surfaced to API clients.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Invalid builds a validation error.
func Invalid(msg string) error { return &Error{Kind: KindInvalid, Message: msg} }

// NotFound builds a missing-entity error.
func NotFound(msg string) error { return &Error{Kind: KindNotFound, Message: msg} }

// Conflict builds a uniqueness-violation error.
func Conflict(msg string) error { return &Error{Kind: KindConflict, Message: msg} }

// Internal wraps an unexpected failure, keeping the underlying error.
func Internal(err error) error {
	return &Error{Kind: KindInternal, Message: "Error inesperado: " + err.Error(), Err: err}
}

// KindOf extracts the Kind from err. Unclassified errors count as internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
