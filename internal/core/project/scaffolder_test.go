package project

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/joho/godotenv"

	"github.com/vslice-dev/vslice/internal/defs"
	"github.com/vslice-dev/vslice/internal/depmgr"
	"github.com/vslice-dev/vslice/internal/naming"
	"github.com/vslice-dev/vslice/internal/template"
)

func newTestScaffolder(inst *fakeInstaller, repo *fakeVCS, progress *recordingProgress) *Scaffolder {
	return NewScaffolder(template.Templates(),
		WithInstaller(inst),
		WithVCS(repo),
		WithVersionDetector(fixedVersion("3.11.4")),
		WithProgress(progress),
		WithClock(func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }),
	)
}

func TestNewProject(t *testing.T) {
	t.Parallel()

	parent := t.TempDir()
	inst := &fakeInstaller{}
	repo := &fakeVCS{}
	progress := &recordingProgress{}
	s := newTestScaffolder(inst, repo, progress)

	result, err := s.NewProject(context.Background(), ProjectOptions{
		Name:            "blog",
		ParentDir:       parent,
		RuntimePackages: depmgr.DefaultRuntimePackages,
		DevPackages:     depmgr.DefaultDevPackages,
		DatabaseURL:     "postgresql://localhost/blog",
	})
	if err != nil {
		t.Fatalf("NewProject error: %v", err)
	}

	root := filepath.Join(parent, "blog")
	if result.Root != root {
		t.Errorf("Root = %q, want %q", result.Root, root)
	}
	if result.PythonVersion != "3.11.4" {
		t.Errorf("PythonVersion = %q", result.PythonVersion)
	}

	if len(inst.calls) != 1 {
		t.Fatalf("installer calls = %d, want 1", len(inst.calls))
	}
	if got := inst.calls[0]; got.Dir != root || got.ProjectName != "blog" {
		t.Errorf("installer options = %+v", got)
	}
	if !slices.Equal(repo.dirs, []string{root}) {
		t.Errorf("vcs dirs = %v, want [%s]", repo.dirs, root)
	}

	wantSteps := []string{
		`🫗 Pouring "blog"`,
		"⏳ Resolving dependencies",
		"⏳ Initializing git repository",
		"⏳ Scaffolding app",
	}
	if !slices.Equal(progress.steps, wantSteps) {
		t.Errorf("steps = %q, want %q", progress.steps, wantSteps)
	}

	for _, rel := range []string{"app/__init__.py", "app/registry.py", "wsgi.py", ".python-version", defs.EnvFile, defs.ProjectFile} {
		if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel))); err != nil {
			t.Errorf("expected %s: %v", rel, err)
		}
	}
	if !slices.Contains(progress.files, defs.EnvFile) || !slices.Contains(progress.files, "wsgi.py") {
		t.Errorf("acknowledged files = %v", progress.files)
	}

	initPy, err := os.ReadFile(filepath.Join(root, "app", "__init__.py"))
	if err != nil {
		t.Fatalf("read __init__.py: %v", err)
	}
	if !strings.Contains(string(initPy), "blog") {
		t.Errorf("__init__.py not rendered with name:\n%s", initPy)
	}

	env, err := godotenv.Read(filepath.Join(root, defs.EnvFile))
	if err != nil {
		t.Fatalf("read .env: %v", err)
	}
	if env["DATABASE_URL"] != "postgresql://localhost/blog" || env["FLASK_APP"] != "wsgi.py" {
		t.Errorf(".env = %v", env)
	}

	marker, err := ReadMarker(root)
	if err != nil {
		t.Fatalf("ReadMarker error: %v", err)
	}
	if marker.Name != "blog" || marker.PythonVersion != "3.11.4" {
		t.Errorf("marker = %+v", marker)
	}
	if marker.CreatedAt != "2026-01-02T03:04:05Z" {
		t.Errorf("CreatedAt = %q", marker.CreatedAt)
	}
	if marker.FeaturesDir != defs.FeaturesDir {
		t.Errorf("FeaturesDir = %q", marker.FeaturesDir)
	}
}

func TestNewProjectSkips(t *testing.T) {
	t.Parallel()

	inst := &fakeInstaller{}
	repo := &fakeVCS{}
	progress := &recordingProgress{}
	s := newTestScaffolder(inst, repo, progress)

	_, err := s.NewProject(context.Background(), ProjectOptions{
		Name:        "shop",
		ParentDir:   t.TempDir(),
		SkipInstall: true,
		SkipGit:     true,
	})
	if err != nil {
		t.Fatalf("NewProject error: %v", err)
	}
	if len(inst.calls) != 0 {
		t.Error("installer ran with SkipInstall")
	}
	if len(repo.dirs) != 0 {
		t.Error("vcs ran with SkipGit")
	}
	if slices.Contains(progress.steps, "⏳ Resolving dependencies") {
		t.Error("dependency step announced with SkipInstall")
	}
}

func TestNewProjectTwice(t *testing.T) {
	t.Parallel()

	parent := t.TempDir()
	inst := &fakeInstaller{}
	s := newTestScaffolder(inst, &fakeVCS{}, &recordingProgress{})
	opts := ProjectOptions{Name: "foo", ParentDir: parent}

	if _, err := s.NewProject(context.Background(), opts); err != nil {
		t.Fatalf("first NewProject error: %v", err)
	}
	root := filepath.Join(parent, "foo")
	before := countFiles(t, root)

	_, err := s.NewProject(context.Background(), opts)
	if !errors.Is(err, ErrProjectExists) {
		t.Fatalf("second NewProject error = %v, want ErrProjectExists", err)
	}
	want := `Cannot pour "foo" into existing directory (` + root + `).`
	if err.Error() != want {
		t.Errorf("message = %q, want %q", err.Error(), want)
	}
	if len(inst.calls) != 1 {
		t.Errorf("installer ran %d times, want 1", len(inst.calls))
	}
	if after := countFiles(t, root); after != before {
		t.Errorf("second run mutated project: %d files before, %d after", before, after)
	}
}

func TestNewProjectInvalidName(t *testing.T) {
	t.Parallel()

	parent := t.TempDir()
	s := newTestScaffolder(&fakeInstaller{}, &fakeVCS{}, &recordingProgress{})

	for _, name := range []string{"my-app", "my app", ""} {
		_, err := s.NewProject(context.Background(), ProjectOptions{Name: name, ParentDir: parent})
		if !errors.Is(err, naming.ErrInvalidName) {
			t.Errorf("NewProject(%q) error = %v, want ErrInvalidName", name, err)
		}
	}

	entries, err := os.ReadDir(parent)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("invalid names created %d entries", len(entries))
	}
}

func TestNewProjectInstallFailure(t *testing.T) {
	t.Parallel()

	installErr := &depmgr.CommandError{Tool: "poetry", Args: []string{"add", "psycopg2"}, Package: "psycopg2", Err: errors.New("exit status 1")}
	repo := &fakeVCS{}
	s := newTestScaffolder(&fakeInstaller{err: installErr}, repo, &recordingProgress{})

	_, err := s.NewProject(context.Background(), ProjectOptions{Name: "api", ParentDir: t.TempDir()})
	if !errors.Is(err, depmgr.ErrCommandFailed) {
		t.Fatalf("error = %v, want ErrCommandFailed", err)
	}
	if len(repo.dirs) != 0 {
		t.Error("repository initialized after failed install")
	}
}

func TestNewSlice(t *testing.T) {
	t.Parallel()

	root := makeProject(t)
	progress := &recordingProgress{}
	s := newTestScaffolder(&fakeInstaller{}, &fakeVCS{}, progress)

	result, err := s.NewSlice(context.Background(), SliceOptions{Name: "users", Dir: root})
	if err != nil {
		t.Fatalf("NewSlice error: %v", err)
	}
	if result.ProjectRoot != root {
		t.Errorf("ProjectRoot = %q, want %q", result.ProjectRoot, root)
	}
	for _, sub := range defs.SliceDirs {
		if !isDir(filepath.Join(root, "app", "features", "users", sub)) {
			t.Errorf("missing %s directory", sub)
		}
	}
	if len(progress.steps) != 1 || progress.steps[0] != `🫗 Adding slice "users"` {
		t.Errorf("steps = %q", progress.steps)
	}
}

func TestNewSliceFromSubdirectory(t *testing.T) {
	t.Parallel()

	root := makeProject(t, "users")
	s := newTestScaffolder(&fakeInstaller{}, &fakeVCS{}, &recordingProgress{})

	result, err := s.NewSlice(context.Background(), SliceOptions{
		Name: "orders",
		Dir:  filepath.Join(SlicePath(root, "users"), "routes"),
	})
	if err != nil {
		t.Fatalf("NewSlice error: %v", err)
	}
	if result.Path != SlicePath(root, "orders") {
		t.Errorf("Path = %q", result.Path)
	}
}

func TestNewSliceErrors(t *testing.T) {
	t.Parallel()

	newScaffolder := func() *Scaffolder {
		return newTestScaffolder(&fakeInstaller{}, &fakeVCS{}, &recordingProgress{})
	}

	t.Run("exists", func(t *testing.T) {
		t.Parallel()
		root := makeProject(t, "users")
		_, err := newScaffolder().NewSlice(context.Background(), SliceOptions{Name: "users", Dir: root})
		if !errors.Is(err, ErrSliceExists) {
			t.Fatalf("error = %v, want ErrSliceExists", err)
		}
		if err.Error() != `Cannot slice "users" as it already exists.` {
			t.Errorf("message = %q", err.Error())
		}
	})

	t.Run("uppercase_name", func(t *testing.T) {
		t.Parallel()
		root := makeProject(t)
		_, err := newScaffolder().NewSlice(context.Background(), SliceOptions{Name: "Users", Dir: root})
		var nameErr *naming.NameError
		if !errors.As(err, &nameErr) {
			t.Fatalf("error = %v, want *naming.NameError", err)
		}
		if nameErr.Kind != "Slice" {
			t.Errorf("Kind = %q, want Slice", nameErr.Kind)
		}
	})

	t.Run("outside_project", func(t *testing.T) {
		t.Parallel()
		_, err := newScaffolder().NewSlice(context.Background(), SliceOptions{Name: "users", Dir: t.TempDir()})
		if !errors.Is(err, ErrNotInProject) {
			t.Errorf("error = %v, want ErrNotInProject", err)
		}
	})
}

func TestRenderingIsDeterministic(t *testing.T) {
	t.Parallel()

	s := newTestScaffolder(&fakeInstaller{}, &fakeVCS{}, &recordingProgress{})
	var trees [2]map[string]string

	for i := range trees {
		result, err := s.NewProject(context.Background(), ProjectOptions{
			Name:        "same",
			ParentDir:   t.TempDir(),
			SkipInstall: true,
			SkipGit:     true,
		})
		if err != nil {
			t.Fatalf("NewProject error: %v", err)
		}
		trees[i] = map[string]string{}
		for _, rel := range result.Files {
			data, err := os.ReadFile(filepath.Join(result.Root, filepath.FromSlash(rel)))
			if err != nil {
				t.Fatalf("read %s: %v", rel, err)
			}
			trees[i][rel] = string(data)
		}
	}

	if len(trees[0]) != len(trees[1]) {
		t.Fatalf("file counts differ: %d vs %d", len(trees[0]), len(trees[1]))
	}
	for rel, content := range trees[0] {
		if trees[1][rel] != content {
			t.Errorf("%s differs between runs", rel)
		}
	}
}
