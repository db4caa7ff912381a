package errors

import (
	"fmt"
	"strings"
)

// ParseError represents a document that could not be decoded, with optional
// line metadata.
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

// ValidationError captures a single configuration problem.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationErrors groups every problem found in one document.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	switch len(e) {
	case 0:
		return ""
	case 1:
		return e[0].Error()
	}

	lines := make([]string, len(e))
	for i, v := range e {
		lines[i] = "  " + v.Error()
	}
	return fmt.Sprintf("%d validation errors:\n%s", len(e), strings.Join(lines, "\n"))
}

// Unwrap exposes each grouped error to errors.Is and errors.As.
func (e ValidationErrors) Unwrap() []error {
	errs := make([]error, len(e))
	for i, v := range e {
		errs[i] = v
	}
	return errs
}

// SourceError indicates that an option source could not produce options.
type SourceError struct {
	Source  string
	Message string
	Err     error
}

// NewSourceError constructs a SourceError for the named source.
func NewSourceError(source string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &SourceError{Source: source, Message: message, Err: err}
}

func (e *SourceError) Error() string {
	if e == nil {
		return ""
	}
	if e.Source != "" {
		return fmt.Sprintf("source error [%s]: %s", e.Source, e.Message)
	}
	return fmt.Sprintf("source error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *SourceError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
