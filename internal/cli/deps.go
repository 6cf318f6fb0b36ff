// Package cli provides the Cobra command tree and dependency injection
// wiring for the vslice CLI. This file defines the Dependencies struct
// (Composition Root) that wires all domain modules together.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"github.com/vslice-dev/vslice/internal/config"
	"github.com/vslice-dev/vslice/internal/core/project"
	"github.com/vslice-dev/vslice/internal/depmgr"
	"github.com/vslice-dev/vslice/internal/pyruntime"
	"github.com/vslice-dev/vslice/internal/template"
	"github.com/vslice-dev/vslice/internal/ui"
	"github.com/vslice-dev/vslice/internal/vcs"
)

// Dependencies holds all domain-level services used by CLI commands.
// This is the Composition Root: the only place where concrete types
// are instantiated and wired together.
type Dependencies struct {
	Config     *config.Config
	Theme      *ui.Theme
	Scaffolder *project.Scaffolder
	Generator  *project.Generator
	Printer    *ui.Printer
	Columns    *ui.ColumnForm
	NextSteps  *ui.NextSteps
	Logger     *slog.Logger
}

// deps is the global dependencies instance, initialized by InitDependencies.
var deps *Dependencies

// Options are the global flag values that shape the dependencies.
type Options struct {
	ConfigFile string
	Verbose    bool
	NoColor    bool
	Out        io.Writer
}

// InitDependencies loads configuration and wires every component.
func InitDependencies(opts Options) error {
	logger := newLogger(opts.Verbose, opts.NoColor)

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Debug("configuration loaded", "tool", cfg.Tool, "init_mode", cfg.InitMode)

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	hm := ui.NewHeadlessManager()
	theme := ui.NewTheme(ui.ThemeConfig{NoColor: opts.NoColor || os.Getenv("NO_COLOR") != ""})
	printer := ui.NewPrinter(theme, hm, out)

	detector, err := pyruntime.NewDetector(cfg.MinPythonVersion,
		pyruntime.WithBinary(cfg.PythonBinary),
		pyruntime.WithDefaultVersion(cfg.DefaultPythonVersion),
		pyruntime.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	installer := depmgr.NewInstaller(
		depmgr.WithTool(cfg.Tool),
		depmgr.WithBootstrapper(newBootstrapper(cfg)),
		depmgr.WithStepTimeout(cfg.StepTimeout),
		depmgr.WithReporter(printer),
		depmgr.WithLogger(logger),
	)

	templates := template.Templates()
	deps = &Dependencies{
		Config: cfg,
		Theme:  theme,
		Scaffolder: project.NewScaffolder(templates,
			project.WithInstaller(installer),
			project.WithVCS(vcs.NewInitializer(logger)),
			project.WithVersionDetector(detector),
			project.WithProgress(printer),
			project.WithLogger(logger),
		),
		Generator: project.NewGenerator(templates,
			project.WithGeneratorProgress(printer),
			project.WithGeneratorLogger(logger),
		),
		Printer:   printer,
		Columns:   ui.NewColumnForm(theme, hm),
		NextSteps: ui.NewNextSteps(theme, hm),
		Logger:    logger,
	}
	return nil
}

// newBootstrapper picks the manifest bootstrapper for the configured mode.
func newBootstrapper(cfg *config.Config) depmgr.Bootstrapper {
	if depmgr.InitMode(cfg.InitMode) == depmgr.InitModeFlags {
		return depmgr.NewFlagBootstrapper(cfg.Tool, nil)
	}
	return depmgr.NewScriptedBootstrapper(cfg.Tool, depmgr.PoetryInitScript{}, nil)
}

// newLogger returns a colored stderr logger at debug level when verbose,
// otherwise a logger that discards everything.
func newLogger(verbose, noColor bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.Kitchen,
		NoColor:    noColor,
	}))
}

// GetDeps returns the current Dependencies instance.
// Returns nil if InitDependencies has not been called.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}
