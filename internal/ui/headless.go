package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// HeadlessManager decides whether animated and interactive output is allowed.
type HeadlessManager struct {
	forced *bool
	fd     uintptr
}

// NewHeadlessManager creates a HeadlessManager that detects headless mode
// from the TTY state of os.Stdout.
func NewHeadlessManager() *HeadlessManager {
	return &HeadlessManager{fd: os.Stdout.Fd()}
}

// IsHeadless returns true when the UI should operate in headless mode.
// ForceHeadless overrides TTY detection.
func (h *HeadlessManager) IsHeadless() bool {
	if h.forced != nil {
		return *h.forced
	}
	return !isatty.IsTerminal(h.fd) && !isatty.IsCygwinTerminal(h.fd)
}

// ForceHeadless overrides TTY detection. Pass true to force headless mode,
// or false to force interactive mode regardless of TTY state.
func (h *HeadlessManager) ForceHeadless(force bool) {
	h.forced = &force
}
