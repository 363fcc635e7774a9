// Package hexerr defines the error-kind taxonomy used across the engine.
//
// core/builder.go mixes two recovery styles: panics for programmer bugs
// that cannot be recovered from (its `panic("Need at least 4 directions")`)
// and returned errors for anything a caller could plausibly get wrong.
// hexerr follows the same split: Kind InvariantViolation is raised with
// Raise, a panic, because it always signals a bug in this engine's own
// bookkeeping; the other three kinds are ordinary error values returned to
// the caller.
package hexerr

import (
	"errors"
	"fmt"
)

// Kind tags the category of an Error.
type Kind int

const (
	// InvariantViolation means an internal check on the VC store's own
	// bookkeeping failed. Fatal; never returned as an error value --
	// raised via Raise, which panics, since the engine cannot continue.
	InvariantViolation Kind = iota
	// BadInput means the caller supplied an inconsistent position or
	// parameters.
	BadInput
	// FileFormat means a pattern file could not be parsed at load time.
	FileFormat
	// ResourceLimit means the requested board size exceeds the
	// compile-time cell capacity.
	ResourceLimit
)

func (k Kind) String() string {
	switch k {
	case InvariantViolation:
		return "InvariantViolation"
	case BadInput:
		return "BadInput"
	case FileFormat:
		return "FileFormat"
	case ResourceLimit:
		return "ResourceLimit"
	default:
		return "Unknown"
	}
}

// Error is the error type returned (or, for InvariantViolation, panicked)
// by this module. It carries enough context to reproduce the failure.
type Error struct {
	Kind    Kind
	Message string
	// Context holds reproduction details: for InvariantViolation, the
	// offending pair/list state/operation; for BadInput, the bad field.
	Context map[string]any
}

func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s %v", e.Kind, e.Message, e.Context)
}

// Is supports errors.Is(err, hexerr.BadInput) style checks by comparing
// Kind via a sentinel wrapper; see KindOf for the common case.
func (e *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) {
		return e.Kind == other.Kind
	}
	return false
}

// New builds an *Error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf builds an *Error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// BadInputf builds a BadInput error.
func BadInputf(format string, args ...any) *Error {
	return Newf(BadInput, format, args...)
}

// FileFormatf builds a FileFormat error.
func FileFormatf(format string, args ...any) *Error {
	return Newf(FileFormat, format, args...)
}

// ResourceLimitf builds a ResourceLimit error.
func ResourceLimitf(format string, args ...any) *Error {
	return Newf(ResourceLimit, format, args...)
}

// Raise panics with an InvariantViolation error carrying ctx for
// reproduction: InvariantViolation is a programming bug; it is reported,
// not recovered from, and aborts the current operation.
func Raise(message string, ctx map[string]any) {
	panic(&Error{Kind: InvariantViolation, Message: message, Context: ctx})
}

// KindOf returns the Kind of err if it is (or wraps) a *Error, and ok=false
// otherwise.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
