package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vslice-dev/vslice/internal/defs"
)

// FindProjectRoot searches dir and its parents for a project. A directory
// qualifies when it holds the .vslice.yaml marker; projects created without
// the marker are recognized by their app/features directory, but only when no
// marked ancestor exists.
func FindProjectRoot(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}

	var legacy string
	for cur := absDir; ; {
		if isFile(filepath.Join(cur, defs.ProjectFile)) {
			return cur, nil
		}
		if legacy == "" && isDir(filepath.Join(cur, filepath.FromSlash(defs.FeaturesDir))) {
			legacy = cur
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			break
		}
		cur = parent
	}

	if legacy != "" {
		return legacy, nil
	}
	return "", fmt.Errorf("%w: no %s found in %s or any parent directory", ErrNotInProject, defs.ProjectFile, absDir)
}

// SlicePath returns the directory of the named slice below root.
func SlicePath(root, slice string) string {
	return filepath.Join(root, filepath.FromSlash(defs.FeaturesDir), slice)
}

func isDir(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}

func isFile(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}

// exists reports whether anything is present at p, following no symlinks.
func exists(p string) (bool, error) {
	_, err := os.Lstat(p)
	switch {
	case err == nil:
		return true, nil
	case os.IsNotExist(err):
		return false, nil
	default:
		return false, fmt.Errorf("stat %s: %w", p, err)
	}
}
