// Package template renders the embedded project and ingredient templates
// and writes the results into generated projects.
package template

import "errors"

// Sentinel errors for the template package.
var (
	// ErrTemplateNotFound indicates a template could not be read.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrTemplateParse indicates a template could not be parsed.
	ErrTemplateParse = errors.New("template parse failed")

	// ErrTemplateExecute indicates a template failed while executing for a
	// reason other than an undefined variable.
	ErrTemplateExecute = errors.New("template execution failed")

	// ErrMissingTemplateKey indicates a template referenced an undefined variable.
	ErrMissingTemplateKey = errors.New("template references undefined variable")

	// ErrUnexpandedToken indicates template markers survived rendering.
	ErrUnexpandedToken = errors.New("unexpanded template token in output")

	// ErrPathTraversal indicates a template path escapes the destination root.
	ErrPathTraversal = errors.New("path escapes destination root")
)
