package template

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/vslice-dev/vslice/internal/defs"
)

// TemplateSuffix is stripped from destination file names.
const TemplateSuffix = ".tmpl"

// TreeResult summarizes a RenderTree call.
type TreeResult struct {
	// Files lists destination paths relative to dest, in render order.
	Files []string
	// Dirs lists directories created under dest, relative to dest.
	Dirs []string
}

// FileHook is called after each file has been written.
type FileHook func(relPath string)

// Walker mirrors a template directory into a destination directory,
// rendering every file on the way.
type Walker interface {
	// RenderTree renders every file below root (a directory in the walker's
	// filesystem) into dest, preserving relative paths. Files are visited in
	// lexical order so repeated runs produce identical trees.
	RenderTree(ctx context.Context, root, dest string, vars map[string]any) (*TreeResult, error)
}

type walker struct {
	fsys     fs.FS
	renderer Renderer
	onFile   FileHook
}

// WalkerOption configures a Walker.
type WalkerOption func(*walker)

// WithFileHook registers a callback invoked after each written file.
func WithFileHook(fn FileHook) WalkerOption {
	return func(w *walker) {
		w.onFile = fn
	}
}

// NewWalker creates a Walker that reads and renders templates from fsys.
// In production the fs.FS comes from go:embed; in tests use testing/fstest.MapFS.
func NewWalker(fsys fs.FS, opts ...WalkerOption) Walker {
	w := &walker{fsys: fsys, renderer: NewRenderer(fsys)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// RenderTree walks root and writes each rendered file below dest.
func (w *walker) RenderTree(ctx context.Context, root, dest string, vars map[string]any) (*TreeResult, error) {
	dest = filepath.Clean(dest)
	root = path.Clean(root)
	result := &TreeResult{}

	walkErr := fs.WalkDir(w.fsys, root, func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrTemplateNotFound, p, err)
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		rel := relativeTo(root, p)
		if rel == "." {
			return nil
		}

		if err := validateDestPath(dest, rel); err != nil {
			return err
		}

		if entry.IsDir() {
			dirPath := filepath.Join(dest, filepath.FromSlash(rel))
			if err := os.MkdirAll(dirPath, defs.DirPerm); err != nil {
				return fmt.Errorf("template mkdir %q: %w", dirPath, err)
			}
			result.Dirs = append(result.Dirs, rel)
			return nil
		}

		content, err := w.renderer.Render(p, vars)
		if err != nil {
			return fmt.Errorf("render %q: %w", p, err)
		}

		destRel := strings.TrimSuffix(rel, TemplateSuffix)
		destPath := filepath.Join(dest, filepath.FromSlash(destRel))

		// Parent exists already for walked dirs; MkdirAll covers a root that
		// points straight at nested files.
		if err := os.MkdirAll(filepath.Dir(destPath), defs.DirPerm); err != nil {
			return fmt.Errorf("template mkdir %q: %w", filepath.Dir(destPath), err)
		}

		if err := WriteFileAtomic(destPath, content, defs.FilePerm); err != nil {
			return fmt.Errorf("template write %q: %w", destPath, err)
		}

		result.Files = append(result.Files, destRel)
		if w.onFile != nil {
			w.onFile(destRel)
		}
		return nil
	})
	if walkErr != nil {
		return result, walkErr
	}

	return result, nil
}

// relativeTo returns p relative to root using slash-separated fs paths.
func relativeTo(root, p string) string {
	if root == "." {
		return p
	}
	if p == root {
		return "."
	}
	return strings.TrimPrefix(p, root+"/")
}

// validateDestPath ensures a template path does not escape dest.
func validateDestPath(dest, relPath string) error {
	cleaned := filepath.Clean(filepath.FromSlash(relPath))

	if filepath.IsAbs(cleaned) {
		return fmt.Errorf("%w: absolute path %q", ErrPathTraversal, relPath)
	}

	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: parent reference in %q", ErrPathTraversal, relPath)
	}

	absDest, err := filepath.Abs(dest)
	if err != nil {
		return fmt.Errorf("resolve destination root: %w", err)
	}

	absPath := filepath.Join(absDest, cleaned)
	if !strings.HasPrefix(absPath, absDest+string(filepath.Separator)) && absPath != absDest {
		return fmt.Errorf("%w: %q escapes destination root", ErrPathTraversal, relPath)
	}

	return nil
}
