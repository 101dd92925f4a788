package errors

import (
	"fmt"
)

// ParseError represents a layout file that could not be read or decoded,
// with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures a layout that decoded but is not usable.
type ValidationError struct {
	Field   string
	Message string
	// Suggestion is a close valid value, when one exists.
	Suggestion string
	Err        error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

// NewValidationErrorWithSuggestion constructs a ValidationError that proposes
// a replacement value.
func NewValidationErrorWithSuggestion(field, message, suggestion string) error {
	return &ValidationError{Field: field, Message: message, Suggestion: suggestion}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Message
	if e.Suggestion != "" {
		msg = fmt.Sprintf("%s (did you mean %q?)", msg, e.Suggestion)
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, msg)
	}
	return fmt.Sprintf("validation error: %s", msg)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
