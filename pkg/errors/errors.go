package errors

import (
	stdErrors "errors"
	"fmt"
)

// Sentinel causes carried by resolver validation failures. Match them with errors.Is.
var (
	// ErrShapeLength reports a radius list with more than four corners.
	ErrShapeLength = stdErrors.New("radius has more than 4 corner values")
	// ErrMaskLength reports a corner mask that does not have exactly four flags.
	ErrMaskLength = stdErrors.New("mask must have exactly 4 corner flags")
	// ErrUnsupportedRadius reports a value that cannot be used as a radius.
	ErrUnsupportedRadius = stdErrors.New("radius is not supported")
)

// ParseError represents a YAML or JSON parsing failure with optional line metadata.
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

// ValidationError captures configuration and radius validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

// NewShapeLengthError reports a radius list longer than four corners.
func NewShapeLengthError(field string, length int) error {
	return NewValidationError(field, fmt.Sprintf("%v (got %d)", ErrShapeLength, length), ErrShapeLength)
}

// NewMaskLengthError reports a mask that is not four flags long.
func NewMaskLengthError(field string, length int) error {
	return NewValidationError(field, fmt.Sprintf("%v (got %d)", ErrMaskLength, length), ErrMaskLength)
}

// NewUnsupportedRadiusError reports a value that is neither a category, a
// non-percentage length, nor a var()/calc() expression.
func NewUnsupportedRadiusError(field, value string) error {
	return NewValidationError(field, fmt.Sprintf("%v: %q", ErrUnsupportedRadius, value), ErrUnsupportedRadius)
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

// DriftError reports a generated stylesheet that no longer matches the file on disk.
type DriftError struct {
	Path string
	Diff string
}

// NewDriftError constructs a DriftError for the given stylesheet path.
func NewDriftError(path, diff string) error {
	return &DriftError{Path: path, Diff: diff}
}

func (e *DriftError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("stylesheet %s is out of date", e.Path)
}
