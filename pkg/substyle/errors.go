package substyle

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSelector is returned when a selector is not a string, a list
	// of strings or a key→bool mapping.
	ErrInvalidSelector = errors.New("invalid selector")
	// ErrInvalidDefaultStyle is returned when a default style is not a Tree.
	ErrInvalidDefaultStyle = errors.New("invalid default style")
)

// UsageError reports a misuse of Resolver.Select.
type UsageError struct {
	Kind  error
	Value any
}

func (e *UsageError) Error() string {
	if e == nil {
		return ""
	}
	switch e.Kind {
	case ErrInvalidSelector:
		return fmt.Sprintf("%v: got %T\nHint: pass a string, a []string, Toggles, a map[string]bool or nil", e.Kind, e.Value)
	case ErrInvalidDefaultStyle:
		return fmt.Sprintf("%v: got %T\nHint: pass a substyle.Tree or nil", e.Kind, e.Value)
	default:
		return fmt.Sprintf("%v: got %T", e.Kind, e.Value)
	}
}

// Unwrap exposes the error kind for errors.Is.
func (e *UsageError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Kind
}
