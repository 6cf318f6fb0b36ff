// Package project scaffolds vertical-slice Flask projects: new projects,
// feature slices inside them, and ingredients (model, route and service
// modules) inside slices.
package project

import (
	"errors"
	"fmt"
)

// Sentinel errors for the project package.
var (
	// ErrProjectExists indicates the project destination is already present.
	ErrProjectExists = errors.New("project already exists")

	// ErrSliceExists indicates the slice directory is already present.
	ErrSliceExists = errors.New("slice already exists")

	// ErrSliceNotFound indicates an ingredient targets a missing slice.
	ErrSliceNotFound = errors.New("slice not found")

	// ErrNotInProject indicates no project root was found above a directory.
	ErrNotInProject = errors.New("not in a vslice project")

	// ErrIngredientExists indicates an ingredient file would be overwritten.
	ErrIngredientExists = errors.New("ingredient already exists")

	// ErrInvalidColumn indicates a column spec is not of the form name:type.
	ErrInvalidColumn = errors.New("invalid column")

	// ErrUnknownColumnType indicates a column type hint with no mapping.
	ErrUnknownColumnType = errors.New("unknown column type")
)

// ExistsError reports a scaffolding target that is already on disk.
type ExistsError struct {
	Kind string // "project" or "slice"
	Name string
	Path string
}

// Error implements the error interface.
func (e *ExistsError) Error() string {
	if e.Kind == "slice" {
		return fmt.Sprintf("Cannot slice %q as it already exists.", e.Name)
	}
	return fmt.Sprintf("Cannot pour %q into existing directory (%s).", e.Name, e.Path)
}

// Unwrap returns ErrSliceExists or ErrProjectExists.
func (e *ExistsError) Unwrap() error {
	if e.Kind == "slice" {
		return ErrSliceExists
	}
	return ErrProjectExists
}

// SliceNotFoundError reports an ingredient whose slice has not been created.
type SliceNotFoundError struct {
	Slice string
}

// Error implements the error interface.
func (e *SliceNotFoundError) Error() string {
	return fmt.Sprintf("slice %q does not exist. Please create the slice first.", e.Slice)
}

// Unwrap returns ErrSliceNotFound.
func (e *SliceNotFoundError) Unwrap() error {
	return ErrSliceNotFound
}
