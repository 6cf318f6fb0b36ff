package depmgr

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"
)

// DefaultTool is the dependency manager used when none is configured.
const DefaultTool = "poetry"

// DefaultRuntimePackages are installed into every new project, in order.
var DefaultRuntimePackages = []string{
	"flask",
	"Flask-SQLAlchemy",
	"Flask-Migrate",
	"python-dotenv",
	"gunicorn",
	"psycopg2",
}

// DefaultDevGroup is the dependency group for development-only packages.
const DefaultDevGroup = "dev"

// DefaultDevPackages are installed into the dev group.
var DefaultDevPackages = []string{"black"}

// Reporter receives progress notifications from an Installer.
type Reporter interface {
	Installing(pkg string)
	Installed(pkg string)
}

type nopReporter struct{}

func (nopReporter) Installing(string) {}
func (nopReporter) Installed(string)  {}

// Options describes one installation run.
type Options struct {
	Dir             string
	ProjectName     string
	RuntimePackages []string
	DevGroup        string
	DevPackages     []string
}

// Result summarizes a successful installation run.
type Result struct {
	Installed []string
	Duration  time.Duration
}

// Installer bootstraps a manifest and installs packages one at a time.
// Steps never overlap: the dependency manager rewrites a shared lock file.
type Installer struct {
	tool         string
	bootstrapper Bootstrapper
	run          RunFunc
	timeout      time.Duration
	reporter     Reporter
	logger       *slog.Logger
}

// Option configures an Installer.
type Option func(*Installer)

// WithTool sets the dependency manager binary.
func WithTool(tool string) Option {
	return func(i *Installer) { i.tool = tool }
}

// WithBootstrapper replaces the default scripted bootstrapper.
func WithBootstrapper(b Bootstrapper) Option {
	return func(i *Installer) { i.bootstrapper = b }
}

// WithRunFunc sets a custom command runner (used for testing).
func WithRunFunc(fn RunFunc) Option {
	return func(i *Installer) { i.run = fn }
}

// WithStepTimeout bounds each subprocess step. Zero disables the bound.
func WithStepTimeout(d time.Duration) Option {
	return func(i *Installer) { i.timeout = d }
}

// WithReporter sets the progress reporter.
func WithReporter(r Reporter) Option {
	return func(i *Installer) { i.reporter = r }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(i *Installer) { i.logger = l }
}

// NewInstaller creates an Installer. Without options it drives poetry through
// the scripted init session.
func NewInstaller(opts ...Option) *Installer {
	i := &Installer{
		tool:     DefaultTool,
		run:      defaultRun,
		reporter: nopReporter{},
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(i)
	}
	if i.bootstrapper == nil {
		i.bootstrapper = NewScriptedBootstrapper(i.tool, PoetryInitScript{}, nil)
	}
	return i
}

// Run bootstraps the manifest, adds runtime packages, adds dev packages to
// their group and runs a final install. The first failing step aborts the run.
func (i *Installer) Run(ctx context.Context, opts Options) (*Result, error) {
	started := time.Now()
	result := &Result{}

	i.logger.Info("bootstrapping dependency manifest", "tool", i.tool, "dir", opts.Dir)
	if err := i.step(ctx, func(ctx context.Context) error {
		return i.bootstrapper.Bootstrap(ctx, opts.Dir, opts.ProjectName)
	}); err != nil {
		return nil, fmt.Errorf("initialize manifest: %w", err)
	}

	for _, pkg := range opts.RuntimePackages {
		if err := i.add(ctx, opts.Dir, pkg); err != nil {
			return nil, err
		}
		result.Installed = append(result.Installed, pkg)
	}

	devGroup := opts.DevGroup
	if devGroup == "" {
		devGroup = DefaultDevGroup
	}
	for _, pkg := range opts.DevPackages {
		if err := i.add(ctx, opts.Dir, pkg, "--group", devGroup); err != nil {
			return nil, err
		}
		result.Installed = append(result.Installed, pkg)
	}

	i.logger.Info("resolving dependencies", "tool", i.tool)
	if err := i.exec(ctx, opts.Dir, "", "install"); err != nil {
		return nil, err
	}

	result.Duration = time.Since(started)
	i.logger.Info("dependencies installed", "count", len(result.Installed), "duration", result.Duration)
	return result, nil
}

// add installs a single package; extra args precede the package name.
func (i *Installer) add(ctx context.Context, dir, pkg string, extra ...string) error {
	i.reporter.Installing(pkg)
	i.logger.Debug("adding package", "package", pkg, "args", extra)

	args := append([]string{"add"}, extra...)
	args = append(args, pkg)
	if err := i.exec(ctx, dir, pkg, args...); err != nil {
		return err
	}

	i.reporter.Installed(pkg)
	return nil
}

// exec runs one blocking dependency manager command.
func (i *Installer) exec(ctx context.Context, dir, pkg string, args ...string) error {
	return i.step(ctx, func(ctx context.Context) error {
		stderr, err := i.run(ctx, dir, i.tool, args...)
		if err == nil {
			return nil
		}
		if errors.Is(err, ErrToolNotFound) {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		}
		return &CommandError{Tool: i.tool, Args: args, Package: pkg, Stderr: stderr, Err: err}
	})
}

// step applies the per-step timeout and refuses to start once ctx is done.
func (i *Installer) step(ctx context.Context, fn func(context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if i.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, i.timeout)
		defer cancel()
	}
	return fn(ctx)
}
