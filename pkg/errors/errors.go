package errors

import (
	"fmt"
)

// ParseError represents a configuration parsing failure with optional line metadata.
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

// ValidationError captures configuration validation issues.
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

// ThemeError reports a theme name that does not resolve to a layout.
type ThemeError struct {
	Name   string
	Reason string
}

// NewThemeError constructs a ThemeError for the given theme name.
func NewThemeError(name, reason string) error {
	return &ThemeError{Name: name, Reason: reason}
}

func (e *ThemeError) Error() string {
	if e == nil {
		return ""
	}
	if e.Reason != "" {
		return fmt.Sprintf("theme error [%s]: %s", e.Name, e.Reason)
	}
	return fmt.Sprintf("theme error [%s]", e.Name)
}

// RenderError wraps a failure recovered inside a layout renderer.
type RenderError struct {
	Layout string
	Err    error
}

// NewRenderError constructs a RenderError. Non-error panic values are
// converted so they can still be inspected with errors.As.
func NewRenderError(layout string, recovered any) error {
	var err error
	switch v := recovered.(type) {
	case nil:
		err = nil
	case error:
		err = v
	default:
		err = fmt.Errorf("%v", v)
	}
	return &RenderError{Layout: layout, Err: err}
}

func (e *RenderError) Error() string {
	if e == nil {
		return ""
	}
	if e.Layout != "" {
		return fmt.Sprintf("render error on layout %s: %v", e.Layout, e.Err)
	}
	return fmt.Sprintf("render error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *RenderError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
