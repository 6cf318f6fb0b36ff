package ui

import "errors"

var (
	// ErrCancelled indicates the user aborted an interactive form.
	ErrCancelled = errors.New("cancelled by user")

	// ErrHeadless indicates an interactive form was requested without a terminal.
	ErrHeadless = errors.New("interactive input requires a terminal")
)
