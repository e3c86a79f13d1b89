// Package apperr defines the error taxonomy shared by services and
// controllers. Lifecycle and validation errors are raised synchronously;
// analyzer errors are caught at the interview-service boundary and turned
// into a partial-success result instead of failing the whole submission.
package apperr

import (
	"errors"
	"fmt"
	"time"
)

// ValidationError marks user-correctable bad input (shape or range).
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func Validationf(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// InvalidStateError marks an operation that is illegal for the current
// lifecycle state. The message always names the current and the required
// state so a caller can tell "already completed" apart from "not started".
type InvalidStateError struct {
	Op       string
	Current  string
	Required string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("cannot %s: interview is %q, requires %q", e.Op, e.Current, e.Required)
}

// NotFoundError marks an unknown interview, question or user.
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

// AnalyzerError wraps a failure of the external response analyzer. It is
// surfaced to the caller but non-fatal to the submission itself.
type AnalyzerError struct {
	Err error
}

func (e *AnalyzerError) Error() string { return fmt.Sprintf("analyzer: %v", e.Err) }
func (e *AnalyzerError) Unwrap() error { return e.Err }

// TimeoutError marks an analyzer call that exceeded its deadline.
type TimeoutError struct {
	After time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("analyzer timed out after %s", e.After)
}

// PersistenceError marks a storage-layer failure. Fatal to the request, but
// the conditional-update pattern in the repositories keeps documents from
// being half-written.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string { return fmt.Sprintf("persistence: %v", e.Err) }
func (e *PersistenceError) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var t *ValidationError
	return errors.As(err, &t)
}

func IsInvalidState(err error) bool {
	var t *InvalidStateError
	return errors.As(err, &t)
}

func IsNotFound(err error) bool {
	var t *NotFoundError
	return errors.As(err, &t)
}

// IsAnalyzer reports whether err came from the response analyzer, timeouts
// included.
func IsAnalyzer(err error) bool {
	var a *AnalyzerError
	var t *TimeoutError
	return errors.As(err, &a) || errors.As(err, &t)
}
