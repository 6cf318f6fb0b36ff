package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	appName  = "vslice"
	fileName = "config"
	fileType = "yaml"

	// EnvPrefix prefixes environment overrides, e.g. VSLICE_TOOL.
	EnvPrefix = "VSLICE"
)

// Dir returns the user config directory for vslice
// ($XDG_CONFIG_HOME/vslice on Linux).
func Dir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "."+appName)
	}
	return filepath.Join(base, appName)
}

// FilePath returns the default config file location.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// Load builds the effective configuration. An empty path reads the default
// file when it exists; an explicit path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType(fileType)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	explicit := path != ""
	if !explicit {
		path = FilePath()
	}

	if _, err := os.Stat(path); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
	} else {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
