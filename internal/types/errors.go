package types

import (
	"errors"
	"fmt"
)

// ErrMissingCredentials signals that the optional AI refinement path was
// requested but no API key is configured. The deterministic render path
// never depends on credentials.
var ErrMissingCredentials = errors.New("OPENAI_API_KEY is not configured")

// ValidationError reports a malformed or missing top-level request
// structure (e.g. an absent sections/blocks array). It maps to a 4xx
// response and is never retried.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewValidationError builds a ValidationError with a machine-readable
// code and a human-readable message.
func NewValidationError(code, message string) *ValidationError {
	return &ValidationError{Code: code, Message: message}
}

// RenderSectionError reports a failure while rendering a single section.
// It is contained to that section: the renderer replaces the section
// with an inline error block and keeps going.
type RenderSectionError struct {
	Section string
	Err     error
}

func (e *RenderSectionError) Error() string {
	return fmt.Sprintf("render section %q: %v", e.Section, e.Err)
}

func (e *RenderSectionError) Unwrap() error { return e.Err }

// RefinementError reports a failed LLM refinement call (network error,
// non-JSON response, ...). It is fully recovered by keeping the
// heuristic draft and is surfaced only as a diagnostic note.
type RefinementError struct {
	Reason string
	Err    error
}

func (e *RefinementError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("refinement failed (%s): %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("refinement failed (%s)", e.Reason)
}

func (e *RefinementError) Unwrap() error { return e.Err }
