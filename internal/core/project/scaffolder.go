package project

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/vslice-dev/vslice/internal/defs"
	"github.com/vslice-dev/vslice/internal/depmgr"
	"github.com/vslice-dev/vslice/internal/naming"
	"github.com/vslice-dev/vslice/internal/pyruntime"
	"github.com/vslice-dev/vslice/internal/template"
	"github.com/vslice-dev/vslice/internal/vcs"
	"github.com/vslice-dev/vslice/pkg/models"
	"github.com/vslice-dev/vslice/pkg/version"
)

// DependencyInstaller bootstraps a manifest and installs packages.
type DependencyInstaller interface {
	Run(ctx context.Context, opts depmgr.Options) (*depmgr.Result, error)
}

// VersionDetector reports the Python version recorded in generated files.
type VersionDetector interface {
	Detect(ctx context.Context) *pyruntime.Detection
}

// ProjectOptions configures NewProject.
type ProjectOptions struct {
	Name      string
	ParentDir string // the project is created at ParentDir/Name

	SkipInstall bool
	SkipGit     bool

	RuntimePackages []string
	DevGroup        string
	DevPackages     []string

	DatabaseURL string
}

// ProjectResult summarizes a created project.
type ProjectResult struct {
	Root          string
	PythonVersion string
	Installed     []string
	Files         []string // relative to Root
	Warnings      []string
}

// SliceOptions configures NewSlice.
type SliceOptions struct {
	Name string
	Dir  string // any directory inside the project
}

// SliceResult summarizes a created slice.
type SliceResult struct {
	ProjectRoot string
	Path        string
	Dirs        []string
}

// Scaffolder creates projects and slices.
type Scaffolder struct {
	templates fs.FS
	installer DependencyInstaller
	vcs       vcs.Initializer
	python    VersionDetector
	progress  Progress
	logger    *slog.Logger
	now       func() time.Time
}

// Option configures a Scaffolder.
type Option func(*Scaffolder)

// WithInstaller sets the dependency installer.
func WithInstaller(i DependencyInstaller) Option {
	return func(s *Scaffolder) { s.installer = i }
}

// WithVCS sets the repository initializer.
func WithVCS(v vcs.Initializer) Option {
	return func(s *Scaffolder) { s.vcs = v }
}

// WithVersionDetector sets the Python version detector.
func WithVersionDetector(d VersionDetector) Option {
	return func(s *Scaffolder) { s.python = d }
}

// WithProgress sets the progress sink.
func WithProgress(p Progress) Option {
	return func(s *Scaffolder) { s.progress = p }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scaffolder) { s.logger = l }
}

// WithClock overrides the timestamp source (used for testing).
func WithClock(now func() time.Time) Option {
	return func(s *Scaffolder) { s.now = now }
}

// staticVersion always reports the default Python version.
type staticVersion struct{}

func (staticVersion) Detect(context.Context) *pyruntime.Detection {
	return &pyruntime.Detection{Version: pyruntime.DefaultVersion}
}

// NewScaffolder creates a Scaffolder reading templates from fsys, which must
// contain the app template set.
func NewScaffolder(fsys fs.FS, opts ...Option) *Scaffolder {
	s := &Scaffolder{
		templates: fsys,
		vcs:       vcs.Noop{},
		python:    staticVersion{},
		progress:  nopProgress{},
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.installer == nil {
		s.installer = depmgr.NewInstaller(depmgr.WithLogger(s.logger))
	}
	return s
}

// NewProject creates ParentDir/Name, installs dependencies, initializes a
// repository and renders the app template set into it. An existing
// destination is refused before anything is touched.
func (s *Scaffolder) NewProject(ctx context.Context, opts ProjectOptions) (*ProjectResult, error) {
	if err := naming.Validate(opts.Name, naming.ProjectRule); err != nil {
		return nil, err
	}

	parent := opts.ParentDir
	if parent == "" {
		parent = "."
	}
	parent, err := filepath.Abs(parent)
	if err != nil {
		return nil, fmt.Errorf("resolve parent directory: %w", err)
	}
	root := filepath.Join(parent, opts.Name)

	found, err := exists(root)
	if err != nil {
		return nil, err
	}
	if found {
		return nil, &ExistsError{Kind: "project", Name: opts.Name, Path: root}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.progress.Step(fmt.Sprintf("🫗 Pouring %q", opts.Name))
	s.logger.Info("creating project", "name", opts.Name, "root", root)

	// Mkdir rather than MkdirAll: a concurrent creator makes this fail.
	if err := os.Mkdir(root, defs.DirPerm); err != nil {
		if os.IsExist(err) {
			return nil, &ExistsError{Kind: "project", Name: opts.Name, Path: root}
		}
		return nil, fmt.Errorf("create project directory: %w", err)
	}

	result := &ProjectResult{Root: root}

	detection := s.python.Detect(ctx)
	result.PythonVersion = detection.Version
	for _, w := range detection.Warnings {
		s.logger.Warn("python version", "warning", w)
	}
	result.Warnings = append(result.Warnings, detection.Warnings...)

	if !opts.SkipInstall {
		s.progress.Step("⏳ Resolving dependencies")
		installed, err := s.installer.Run(ctx, depmgr.Options{
			Dir:             root,
			ProjectName:     opts.Name,
			RuntimePackages: opts.RuntimePackages,
			DevGroup:        opts.DevGroup,
			DevPackages:     opts.DevPackages,
		})
		if err != nil {
			return result, fmt.Errorf("install dependencies: %w", err)
		}
		result.Installed = installed.Installed
	}

	if !opts.SkipGit {
		s.progress.Step("⏳ Initializing git repository")
		if err := s.vcs.Init(ctx, root); err != nil {
			return result, fmt.Errorf("initialize repository: %w", err)
		}
	}

	s.progress.Step("⏳ Scaffolding app")
	walker := template.NewWalker(s.templates, template.WithFileHook(s.progress.FileWritten))
	tree, err := walker.RenderTree(ctx, defs.AppTemplates, root, map[string]any{
		"Name":          opts.Name,
		"PythonVersion": result.PythonVersion,
	})
	if tree != nil {
		result.Files = append(result.Files, tree.Files...)
	}
	if err != nil {
		return result, fmt.Errorf("scaffold app: %w", err)
	}

	if err := s.writeEnv(root, opts); err != nil {
		return result, err
	}
	result.Files = append(result.Files, defs.EnvFile)
	s.progress.FileWritten(defs.EnvFile)

	if err := s.writeMarker(root, opts.Name, result.PythonVersion); err != nil {
		return result, err
	}
	result.Files = append(result.Files, defs.ProjectFile)

	s.logger.Info("project created", "root", root, "files", len(result.Files))
	return result, nil
}

// writeEnv writes the .env file loaded by the generated app.
func (s *Scaffolder) writeEnv(root string, opts ProjectOptions) error {
	env := map[string]string{
		"FLASK_APP": "wsgi.py",
	}
	if opts.DatabaseURL != "" {
		env["DATABASE_URL"] = opts.DatabaseURL
	}

	content, err := godotenv.Marshal(env)
	if err != nil {
		return fmt.Errorf("encode %s: %w", defs.EnvFile, err)
	}
	path := filepath.Join(root, defs.EnvFile)
	if err := template.WriteFileAtomic(path, []byte(content+"\n"), defs.FilePerm); err != nil {
		return fmt.Errorf("write %s: %w", defs.EnvFile, err)
	}
	return nil
}

// writeMarker records the project in .vslice.yaml.
func (s *Scaffolder) writeMarker(root, name, pythonVersion string) error {
	data, err := yaml.Marshal(models.ProjectConfig{
		Name:          name,
		PythonVersion: pythonVersion,
		ToolVersion:   version.GetVersion(),
		CreatedAt:     s.now().UTC().Format(time.RFC3339),
		FeaturesDir:   defs.FeaturesDir,
	})
	if err != nil {
		return fmt.Errorf("encode %s: %w", defs.ProjectFile, err)
	}
	path := filepath.Join(root, defs.ProjectFile)
	if err := template.WriteFileAtomic(path, data, defs.FilePerm); err != nil {
		return fmt.Errorf("write %s: %w", defs.ProjectFile, err)
	}
	return nil
}

// ReadMarker loads the .vslice.yaml marker of the project at root.
func ReadMarker(root string) (*models.ProjectConfig, error) {
	data, err := os.ReadFile(filepath.Join(root, defs.ProjectFile))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", defs.ProjectFile, err)
	}
	var cfg models.ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", defs.ProjectFile, err)
	}
	return &cfg, nil
}

// NewSlice creates app/features/<name> with its routes, models and domain
// directories inside the project containing opts.Dir.
func (s *Scaffolder) NewSlice(ctx context.Context, opts SliceOptions) (*SliceResult, error) {
	if err := naming.Validate(opts.Name, naming.SliceRule); err != nil {
		return nil, err
	}

	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	root, err := FindProjectRoot(dir)
	if err != nil {
		return nil, err
	}

	slicePath := SlicePath(root, opts.Name)
	found, err := exists(slicePath)
	if err != nil {
		return nil, err
	}
	if found {
		return nil, &ExistsError{Kind: "slice", Name: opts.Name, Path: slicePath}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.progress.Step(fmt.Sprintf("🫗 Adding slice %q", opts.Name))
	s.logger.Info("creating slice", "name", opts.Name, "root", root)

	result := &SliceResult{ProjectRoot: root, Path: slicePath}
	for _, sub := range defs.SliceDirs {
		p := filepath.Join(slicePath, sub)
		if err := os.MkdirAll(p, defs.DirPerm); err != nil {
			return result, fmt.Errorf("mkdir %s: %w", p, err)
		}
		result.Dirs = append(result.Dirs, sub)
	}

	return result, nil
}
