package depmgr

import (
	"fmt"
	"io"
)

// Script is a prompt-independent sequence of answers fed to an interactive
// command, one per line.
type Script interface {
	Responses() []string
}

// StaticScript is a Script backed by a fixed slice.
type StaticScript []string

// Responses returns the script lines.
func (s StaticScript) Responses() []string {
	return s
}

// poetryMetadataPrompts is the number of metadata prompts poetry init asks
// before the dependency questions (name, version, description, author,
// license, python).
const poetryMetadataPrompts = 6

// PoetryInitScript answers poetry init: accept every metadata default,
// decline interactive main and dev dependency selection, confirm generation.
// The order is positional and assumes poetry's prompt order.
type PoetryInitScript struct{}

// Responses returns the poetry init answers.
func (PoetryInitScript) Responses() []string {
	lines := make([]string, 0, poetryMetadataPrompts+3)
	for range poetryMetadataPrompts {
		lines = append(lines, "")
	}
	lines = append(lines, "no", "no", "")
	return lines
}

// writeScript writes each response followed by a newline.
func writeScript(w io.Writer, s Script) error {
	for i, line := range s.Responses() {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return fmt.Errorf("write response %d: %w", i+1, err)
		}
	}
	return nil
}
