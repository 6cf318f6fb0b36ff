// Package depmgr drives an external dependency manager (poetry by default)
// through project initialization and package installation.
package depmgr

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the depmgr package.
var (
	// ErrToolNotFound indicates the dependency manager binary is not on PATH.
	ErrToolNotFound = errors.New("dependency manager not found")

	// ErrCommandFailed indicates a dependency manager invocation exited non-zero.
	ErrCommandFailed = errors.New("dependency manager command failed")

	// ErrNoStdin indicates the scripted session could not attach to stdin.
	ErrNoStdin = errors.New("no stdin, cannot initialize project")
)

// CommandError describes a failed subprocess.
type CommandError struct {
	Tool    string
	Args    []string
	Package string // empty for init/install
	Stderr  string
	Err     error
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", e.Tool, strings.Join(e.Args, " "))
	if e.Package != "" {
		fmt.Fprintf(&b, " (package %q)", e.Package)
	}
	fmt.Fprintf(&b, ": %v", e.Err)
	if e.Stderr != "" {
		fmt.Fprintf(&b, ": %s", e.Stderr)
	}
	return b.String()
}

// Unwrap exposes both ErrCommandFailed and the underlying cause.
func (e *CommandError) Unwrap() []error {
	return []error{ErrCommandFailed, e.Err}
}
