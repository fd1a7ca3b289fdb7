package nexus

import (
	"errors"
	"fmt"
)

// Sentinel errors for common engine error conditions.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrInvalidFilter indicates a caller-supplied filter is malformed,
	// most commonly a filter expression that does not compile.
	ErrInvalidFilter = errors.New("invalid filter")

	// ErrRiskNotFound indicates the requested risk is not in the
	// knowledge base.
	ErrRiskNotFound = errors.New("risk not found")

	// ErrLoadCancelled indicates the knowledge base load was interrupted
	// by context cancellation before a snapshot was produced.
	ErrLoadCancelled = errors.New("load cancelled")
)

// Error kinds categorize errors by their type.
const (
	// KindValidation represents caller contract violations.
	KindValidation = "validation"

	// KindNotFound represents lookups of entities absent from the
	// knowledge base.
	KindNotFound = "not_found"

	// KindInternal represents internal engine errors.
	KindInternal = "internal"
)

// Error is a structured error wrapping an underlying cause with the
// operation that failed and the category of failure. It implements the
// error interface and supports unwrapping, so it composes with
// errors.Is() and errors.As().
type Error struct {
	// Op is the operation that failed (e.g. "Engine.ListRisks").
	Op string

	// Kind categorizes the error (e.g. KindValidation).
	Kind string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("nexus: %s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("nexus: %s (%s): %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches either another *Error by kind (and op, when specified) or the
// underlying error chain.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	if t, ok := target.(*Error); ok {
		if t.Kind != "" && e.Kind == t.Kind {
			if t.Op == "" || e.Op == t.Op {
				return true
			}
		}
	}
	return errors.Is(e.Err, target)
}

// newValidationError creates an Error with KindValidation.
func newValidationError(op string, err error) *Error {
	return &Error{Op: op, Kind: KindValidation, Err: err}
}

// newNotFoundError creates an Error with KindNotFound.
func newNotFoundError(op string, err error) *Error {
	return &Error{Op: op, Kind: KindNotFound, Err: err}
}
