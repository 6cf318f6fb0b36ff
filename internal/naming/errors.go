// Package naming validates user-supplied identifiers and derives the
// generated class names for ingredients.
package naming

import (
	"errors"
	"fmt"
)

// ErrInvalidName indicates a name failed its character-class check.
var ErrInvalidName = errors.New("invalid name")

// NameError describes a rejected name.
type NameError struct {
	Kind       string // "Name", "Slice", "Ingredient", "Column"
	Value      string
	Allowed    string // human-readable character class
	Suggestion string // valid alternative spelling, empty if none
}

// Error implements the error interface.
func (e *NameError) Error() string {
	msg := fmt.Sprintf("%s must be a valid Python module name. Please use only %s.", e.Kind, e.Allowed)
	if e.Suggestion != "" && e.Suggestion != e.Value {
		msg += fmt.Sprintf(" Did you mean %q?", e.Suggestion)
	}
	return msg
}

// Unwrap returns ErrInvalidName so callers can use errors.Is.
func (e *NameError) Unwrap() error {
	return ErrInvalidName
}
