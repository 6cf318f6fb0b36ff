package project

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/vslice-dev/vslice/internal/defs"
	"github.com/vslice-dev/vslice/internal/depmgr"
	"github.com/vslice-dev/vslice/internal/pyruntime"
)

// fakeInstaller records the options it was run with.
type fakeInstaller struct {
	calls []depmgr.Options
	err   error
}

func (f *fakeInstaller) Run(_ context.Context, opts depmgr.Options) (*depmgr.Result, error) {
	f.calls = append(f.calls, opts)
	if f.err != nil {
		return nil, f.err
	}
	installed := append([]string{}, opts.RuntimePackages...)
	installed = append(installed, opts.DevPackages...)
	return &depmgr.Result{Installed: installed}, nil
}

// fakeVCS records initialized directories.
type fakeVCS struct {
	dirs []string
}

func (f *fakeVCS) Init(_ context.Context, dir string) error {
	f.dirs = append(f.dirs, dir)
	return nil
}

type fixedVersion string

func (v fixedVersion) Detect(context.Context) *pyruntime.Detection {
	return &pyruntime.Detection{Version: string(v), Detected: true}
}

// recordingProgress keeps every notification in order.
type recordingProgress struct {
	steps []string
	files []string
}

func (r *recordingProgress) Step(msg string)        { r.steps = append(r.steps, msg) }
func (r *recordingProgress) FileWritten(rel string) { r.files = append(r.files, rel) }

// makeProject creates a minimal marked project with the given slices.
func makeProject(t *testing.T, slices ...string) string {
	t.Helper()
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, defs.ProjectFile), []byte("name: demo\n"), 0o644); err != nil {
		t.Fatalf("write marker: %v", err)
	}
	for _, s := range slices {
		for _, sub := range defs.SliceDirs {
			if err := os.MkdirAll(filepath.Join(SlicePath(root, s), sub), 0o755); err != nil {
				t.Fatalf("mkdir slice: %v", err)
			}
		}
	}
	return root
}

// countFiles returns the number of regular files below dir.
func countFiles(t *testing.T, dir string) int {
	t.Helper()
	n := 0
	err := filepath.WalkDir(dir, func(_ string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			n++
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk %s: %v", dir, err)
	}
	return n
}
