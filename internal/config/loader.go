package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Loader provides configuration loading capabilities.
type Loader interface {
	// Load loads configuration from file and environment variables.
	// Priority: defaults → config file → environment variables (env wins).
	Load() (*Config, error)
}

type loader struct {
	rootDir    string
	configFile string
}

// NewLoader creates a configuration loader for the given root directory.
func NewLoader(rootDir string) Loader {
	return &loader{rootDir: rootDir}
}

// NewFileLoader creates a loader bound to an explicit config file path.
// Unlike NewLoader, a missing file is an error: the caller asked for that
// file specifically.
func NewFileLoader(path string) Loader {
	return &loader{configFile: path}
}

// Load loads configuration with the following priority (highest to lowest):
// 1. Environment variables (SPLITGEN_*)
// 2. Config file (.splitgen/config.yml, or the explicit file)
// 3. Default values
func (l *loader) Load() (*Config, error) {
	v := viper.New()

	if l.configFile != "" {
		v.SetConfigFile(l.configFile)
	} else {
		configDir := filepath.Join(l.rootDir, ".splitgen")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(configDir)
	}

	v.SetEnvPrefix("SPLITGEN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("scoring.alpha")
	v.BindEnv("scoring.beta")
	v.BindEnv("scoring.gamma")
	v.BindEnv("scoring.delta")
	v.BindEnv("scoring.density_cap")
	v.BindEnv("scoring.density_window")
	v.BindEnv("limits.min_prefix_chars")
	v.BindEnv("limits.min_suffix_chars")
	v.BindEnv("limits.min_ratio")
	v.BindEnv("limits.max_ratio")
	v.BindEnv("limits.min_lines")
	v.BindEnv("selection.strategy")
	v.BindEnv("selection.seed")
	v.BindEnv("cache.enabled")
	v.BindEnv("cache.max_entries")
	v.BindEnv("paths.ignore")

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine in directory mode; defaults and
		// env apply. An explicitly named file must exist.
		var notFound viper.ConfigFileNotFoundError
		if l.configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// LoadFromDir is a convenience wrapper for one-shot loading.
func LoadFromDir(rootDir string) (*Config, error) {
	return NewLoader(rootDir).Load()
}

// LoadFromFile loads configuration from an explicit config file path.
func LoadFromFile(path string) (*Config, error) {
	return NewFileLoader(path).Load()
}
