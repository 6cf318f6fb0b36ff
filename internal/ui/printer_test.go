package ui

import (
	"strings"
	"testing"
)

// recordingProgress hands out spinners that remember being stopped.
type recordingProgress struct {
	spinners []*recordingSpinner
}

type recordingSpinner struct {
	title   string
	stopped int
}

func (s *recordingSpinner) SetTitle(title string) { s.title = title }
func (s *recordingSpinner) Stop()                 { s.stopped++ }

func (p *recordingProgress) Spinner(title string) Spinner {
	s := &recordingSpinner{title: title}
	p.spinners = append(p.spinners, s)
	return s
}

func TestPrinterOutput(t *testing.T) {
	var buf strings.Builder
	progress := &recordingProgress{}
	p := newPrinter(testTheme(), progress, &buf)

	p.Step(`🫗 Pouring "blog"`)
	p.Step("⏳ Resolving dependencies")
	p.Installing("flask")
	p.Installed("flask")
	p.Step("⏳ Scaffolding app")
	p.FileWritten("app/__init__.py")
	p.Warn("python 3.6.9 does not satisfy >= 3.8")
	p.Done()

	want := "\n🫗 Pouring \"blog\"\n" +
		"\n⏳ Resolving dependencies\n" +
		"\t✅ Installed `flask`\n" +
		"\n⏳ Scaffolding app\n" +
		"\t✅ app/__init__.py\n" +
		"⚠️  python 3.6.9 does not satisfy >= 3.8\n"
	if got := buf.String(); got != want {
		t.Errorf("output =\n%q\nwant\n%q", got, want)
	}

	if len(progress.spinners) != 1 {
		t.Fatalf("spinners = %d, want 1", len(progress.spinners))
	}
	if s := progress.spinners[0]; s.title != "Installing `flask`" || s.stopped != 1 {
		t.Errorf("spinner = %+v", s)
	}
}

func TestPrinterStopsSpinnerOnFailure(t *testing.T) {
	var buf strings.Builder
	progress := &recordingProgress{}
	p := newPrinter(testTheme(), progress, &buf)

	p.Installing("psycopg2")
	p.Done()
	p.Done()

	if got := progress.spinners[0].stopped; got != 1 {
		t.Errorf("spinner stopped %d times, want 1", got)
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected output %q", buf.String())
	}
}
