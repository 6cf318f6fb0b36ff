package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFindProjectRoot(t *testing.T) {
	t.Parallel()

	t.Run("marker_in_start_dir", func(t *testing.T) {
		t.Parallel()
		root := makeProject(t)
		got, err := FindProjectRoot(root)
		if err != nil {
			t.Fatalf("FindProjectRoot error: %v", err)
		}
		if got != root {
			t.Errorf("root = %q, want %q", got, root)
		}
	})

	t.Run("marker_in_ancestor", func(t *testing.T) {
		t.Parallel()
		root := makeProject(t, "users")
		start := filepath.Join(SlicePath(root, "users"), "models")
		got, err := FindProjectRoot(start)
		if err != nil {
			t.Fatalf("FindProjectRoot error: %v", err)
		}
		if got != root {
			t.Errorf("root = %q, want %q", got, root)
		}
	})

	t.Run("legacy_layout", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		if err := os.MkdirAll(filepath.Join(root, "app", "features"), 0o755); err != nil {
			t.Fatal(err)
		}
		got, err := FindProjectRoot(root)
		if err != nil {
			t.Fatalf("FindProjectRoot error: %v", err)
		}
		if got != root {
			t.Errorf("root = %q, want %q", got, root)
		}
	})

	t.Run("not_in_project", func(t *testing.T) {
		t.Parallel()
		_, err := FindProjectRoot(t.TempDir())
		if !errors.Is(err, ErrNotInProject) {
			t.Errorf("error = %v, want ErrNotInProject", err)
		}
	})
}
