package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// NextSteps renders markdown hints shown after a command succeeds.
type NextSteps struct {
	theme    *Theme
	headless *HeadlessManager
}

// NewNextSteps creates a NextSteps renderer.
func NewNextSteps(theme *Theme, hm *HeadlessManager) *NextSteps {
	return &NextSteps{theme: theme, headless: hm}
}

// ProjectMarkdown lists what to run after creating a project.
func ProjectMarkdown(name, tool string, skippedInstall bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## 🍹 %s is ready\n\n", name)
	fmt.Fprintf(&b, "1. `cd %s`\n", name)
	if skippedInstall {
		fmt.Fprintf(&b, "1. `%s install`\n", tool)
	}
	b.WriteString("1. `vslice slice <name>` to add a feature slice\n")
	fmt.Fprintf(&b, "1. `%s run flask run` to start the server\n", tool)
	return b.String()
}

// IngredientMarkdown lists what to do after adding an ingredient.
func IngredientMarkdown(slice, name string) string {
	return fmt.Sprintf("Route `/%ss` is served by `app/features/%s/routes/%s.py`.\n", name, slice, name)
}

// Render returns md styled for the terminal, or unchanged when headless.
func (n *NextSteps) Render(md string) (string, error) {
	if n.headless.IsHeadless() || n.theme.NoColor {
		return md, nil
	}

	style := "dark"
	if n.theme.Mode == "light" {
		style = "light"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
