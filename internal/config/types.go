package config

import "time"

// Config holds every user-tunable setting.
type Config struct {
	// Tool is the dependency manager binary.
	Tool string `mapstructure:"tool" yaml:"tool" validate:"required"`

	// InitMode selects scripted stdin answers or non-interactive flags.
	InitMode string `mapstructure:"init_mode" yaml:"init_mode" validate:"required"`

	RuntimePackages []string `mapstructure:"runtime_packages" yaml:"runtime_packages" validate:"min=1,dive,required"`
	DevGroup        string   `mapstructure:"dev_group" yaml:"dev_group" validate:"required"`
	DevPackages     []string `mapstructure:"dev_packages" yaml:"dev_packages" validate:"dive,required"`

	// StepTimeout bounds each dependency manager command. Zero disables it.
	StepTimeout time.Duration `mapstructure:"step_timeout" yaml:"step_timeout" validate:"gte=0"`

	PythonBinary         string `mapstructure:"python_binary" yaml:"python_binary" validate:"required"`
	DefaultPythonVersion string `mapstructure:"default_python_version" yaml:"default_python_version" validate:"required"`
	MinPythonVersion     string `mapstructure:"min_python_version" yaml:"min_python_version" validate:"required"`

	// DatabaseURL seeds the generated .env file.
	DatabaseURL string `mapstructure:"database_url" yaml:"database_url" validate:"required"`
}
