// Package config provides hierarchical configuration management for chlog
// using koanf. Configuration is loaded with priority: environment variables
// > project config (.chlog/config.yml) > user config (~/.config/chlog/
// config.yml) > defaults.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration represents the chlog CLI tool configuration.
type Configuration struct {
	// StorePath is the changelog store file.
	// Can be set via CHLOG_STORE_PATH env var.
	StorePath string `koanf:"store_path"`

	// ReportPath is where the HTML report is written.
	// Can be set via CHLOG_REPORT_PATH env var.
	ReportPath string `koanf:"report_path"`

	// ReportTitle is the heading of the generated report.
	ReportTitle string `koanf:"report_title"`

	// ListLimit caps how many entries 'chlog list' shows (0 = all).
	ListLimit int `koanf:"list_limit"`

	// Plain disables colors and icons in terminal output.
	// NO_COLOR is also honored.
	Plain bool `koanf:"plain"`
}

// LoadOptions configures how configuration is loaded.
type LoadOptions struct {
	// ProjectConfigPath overrides the project config path (default: .chlog/config.yml)
	ProjectConfigPath string
}

// Load loads configuration from user, project, and environment sources.
// Priority: Environment variables > Project config > User config > Defaults
func Load(projectConfigPath string) (*Configuration, error) {
	return LoadWithOptions(LoadOptions{ProjectConfigPath: projectConfigPath})
}

// LoadWithOptions loads configuration with custom options.
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")

	loadDefaults(k)

	if err := loadUserConfig(k); err != nil {
		return nil, err
	}

	if err := loadProjectConfig(k, opts.ProjectConfigPath); err != nil {
		return nil, err
	}

	if err := loadEnvironmentConfig(k); err != nil {
		return nil, err
	}

	return finalizeConfig(k)
}

// loadDefaults applies default configuration values.
func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
}

// loadUserConfig loads the user-level config file if present.
func loadUserConfig(k *koanf.Koanf) error {
	path, err := UserConfigPath()
	if err != nil {
		return nil // No resolvable home, defaults apply
	}
	if !fileExists(path) {
		return nil
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("loading user config %s: %w", path, err)
	}
	return nil
}

// loadProjectConfig loads the project-level config file if present.
// Supports a custom path override (for the --config flag and tests).
func loadProjectConfig(k *koanf.Koanf, customPath string) error {
	path := ProjectConfigPath()
	if customPath != "" {
		path = customPath
	}
	if !fileExists(path) {
		if customPath != "" {
			return fmt.Errorf("config file not found: %s", customPath)
		}
		return nil
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("loading project config %s: %w", path, err)
	}
	return nil
}

// loadEnvironmentConfig loads environment variable overrides.
func loadEnvironmentConfig(k *koanf.Koanf) error {
	if err := k.Load(env.Provider("CHLOG_", ".", envTransform), nil); err != nil {
		return fmt.Errorf("loading environment config: %w", err)
	}
	return nil
}

// finalizeConfig unmarshals and validates the merged configuration.
func finalizeConfig(k *koanf.Koanf) (*Configuration, error) {
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if cfg.StorePath == "" {
		return nil, fmt.Errorf("config validation failed: store_path must not be empty")
	}
	if cfg.ReportPath == "" {
		return nil, fmt.Errorf("config validation failed: report_path must not be empty")
	}
	if cfg.ListLimit < 0 {
		return nil, fmt.Errorf("config validation failed: list_limit must be >= 0")
	}

	if os.Getenv("NO_COLOR") != "" {
		cfg.Plain = true
	}

	return &cfg, nil
}

// fileExists returns true if the file exists and is readable.
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// envTransform converts environment variable names to config keys.
// Example: CHLOG_STORE_PATH -> store_path
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "CHLOG_"))
}
