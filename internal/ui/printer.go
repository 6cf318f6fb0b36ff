package ui

import (
	"fmt"
	"io"
	"sync"
)

// Printer writes scaffolding progress. It satisfies both the project
// progress sink and the dependency installer's reporter.
type Printer struct {
	mu       sync.Mutex
	w        io.Writer
	theme    *Theme
	progress Progress
	active   Spinner
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(theme *Theme, hm *HeadlessManager, w io.Writer) *Printer {
	return newPrinter(theme, newProgressImpl(theme, hm, w), w)
}

func newPrinter(theme *Theme, progress Progress, w io.Writer) *Printer {
	return &Printer{w: w, theme: theme, progress: progress}
}

// Step prints a phase header preceded by a blank line.
func (p *Printer) Step(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
	_, _ = fmt.Fprintf(p.w, "\n%s\n", p.theme.Step.Render(msg))
}

// FileWritten acknowledges one generated file.
func (p *Printer) FileWritten(rel string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = fmt.Fprintf(p.w, "\t%s\n", p.theme.Success.Render("✅ "+rel))
}

// Installing shows a spinner while pkg installs.
func (p *Printer) Installing(pkg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
	p.active = p.progress.Spinner(fmt.Sprintf("Installing `%s`", pkg))
}

// Installed replaces the spinner with an acknowledgment.
func (p *Printer) Installed(pkg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
	_, _ = fmt.Fprintf(p.w, "\t%s\n", p.theme.Success.Render(fmt.Sprintf("✅ Installed `%s`", pkg)))
}

// Warn prints a non-fatal warning.
func (p *Printer) Warn(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
	_, _ = fmt.Fprintf(p.w, "%s\n", p.theme.Warning.Render("⚠️  "+msg))
}

// Done stops any running spinner. It is safe to call more than once.
func (p *Printer) Done() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

func (p *Printer) stopLocked() {
	if p.active != nil {
		p.active.Stop()
		p.active = nil
	}
}
