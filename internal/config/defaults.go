package config

import (
	"slices"
	"time"

	"github.com/spf13/viper"
	"github.com/vslice-dev/vslice/internal/depmgr"
	"github.com/vslice-dev/vslice/internal/pyruntime"
)

// Default value constants.
const (
	DefaultStepTimeout = 5 * time.Minute
	DefaultDatabaseURL = "sqlite:///app.db"
)

// NewDefaultConfig returns a Config with every field set to its default.
func NewDefaultConfig() *Config {
	return &Config{
		Tool:                 depmgr.DefaultTool,
		InitMode:             string(depmgr.InitModeScripted),
		RuntimePackages:      slices.Clone(depmgr.DefaultRuntimePackages),
		DevGroup:             depmgr.DefaultDevGroup,
		DevPackages:          slices.Clone(depmgr.DefaultDevPackages),
		StepTimeout:          DefaultStepTimeout,
		PythonBinary:         pyruntime.DefaultBinary,
		DefaultPythonVersion: pyruntime.DefaultVersion,
		MinPythonVersion:     pyruntime.DefaultConstraint,
		DatabaseURL:          DefaultDatabaseURL,
	}
}

// setDefaults registers defaults with v so every key is known to viper and
// can be overridden from the environment.
func setDefaults(v *viper.Viper) {
	d := NewDefaultConfig()
	v.SetDefault("tool", d.Tool)
	v.SetDefault("init_mode", d.InitMode)
	v.SetDefault("runtime_packages", d.RuntimePackages)
	v.SetDefault("dev_group", d.DevGroup)
	v.SetDefault("dev_packages", d.DevPackages)
	v.SetDefault("step_timeout", d.StepTimeout)
	v.SetDefault("python_binary", d.PythonBinary)
	v.SetDefault("default_python_version", d.DefaultPythonVersion)
	v.SetDefault("min_python_version", d.MinPythonVersion)
	v.SetDefault("database_url", d.DatabaseURL)
}
