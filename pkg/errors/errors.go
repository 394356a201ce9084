// Package errors defines the typed errors returned while loading and
// resolving stylesheet documents.
package errors

import (
	"fmt"
)

// ParseError reports a stylesheet document that is not valid YAML or does
// not have the expected shape.
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

// ValidationError reports a well-formed document with invalid content.
// Field is a dotted path such as "components.button.className".
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

// ResolveError reports a failure while resolving a component's styles.
type ResolveError struct {
	Component string
	Err       error
}

// NewResolveError constructs a ResolveError.
func NewResolveError(component string, err error) error {
	return &ResolveError{Component: component, Err: err}
}

func (e *ResolveError) Error() string {
	if e == nil {
		return ""
	}
	if e.Component != "" {
		return fmt.Sprintf("resolve error [%s]: %v", e.Component, e.Err)
	}
	return fmt.Sprintf("resolve error: %v", e.Err)
}

// Unwrap exposes the underlying error.
func (e *ResolveError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NotFoundError reports a reference to a component the document does not
// declare.
type NotFoundError struct {
	Component string
	Known     []string
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return ""
	}
	if len(e.Known) == 0 {
		return fmt.Sprintf("component %q not found", e.Component)
	}
	return fmt.Sprintf("component %q not found\nHint: known components are %v", e.Component, e.Known)
}
