package errors

import (
	"fmt"
	"strings"
)

// ParseError represents a YAML or TOML parsing failure with optional line metadata.
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

// ValidationError captures catalog and variant-table validation issues.
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

// InvalidVariantError reports a selection naming an undeclared axis or option.
// It is a programming error on the caller's side and is never recovered locally.
type InvalidVariantError struct {
	Component string
	Axis      string
	Value     string
	// Allowed lists the declared options of Axis; empty when the axis itself is unknown.
	Allowed []string
}

// NewInvalidVariantError constructs an InvalidVariantError.
func NewInvalidVariantError(component, axis, value string, allowed []string) error {
	return &InvalidVariantError{
		Component: component,
		Axis:      axis,
		Value:     value,
		Allowed:   append([]string(nil), allowed...),
	}
}

func (e *InvalidVariantError) Error() string {
	if e == nil {
		return ""
	}

	subject := e.Component
	if subject == "" {
		subject = "variant"
	}

	if len(e.Allowed) == 0 {
		return fmt.Sprintf("invalid variant: %s: unknown axis %q", subject, e.Axis)
	}
	return fmt.Sprintf("invalid variant: %s: %s=%q is not one of [%s]", subject, e.Axis, e.Value, strings.Join(e.Allowed, ", "))
}

// UnknownAxis reports whether the error refers to an undeclared axis rather than an undeclared option.
func (e *InvalidVariantError) UnknownAxis() bool {
	return e != nil && len(e.Allowed) == 0
}
