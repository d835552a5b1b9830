package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/sprout/pkg/mirror"
)

// DefaultConfigFile is probed in the working directory when no --config
// flag is given.
const DefaultConfigFile = "sprout.yaml"

// Config holds the user-tunable settings for the mirror flow.
type Config struct {
	// Placeholder is the hint shown in the empty input field.
	Placeholder string `yaml:"placeholder"`

	// Caption is the static line above the echoed text.
	Caption string `yaml:"caption"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Placeholder: mirror.DefaultPlaceholder,
		Caption:     mirror.DefaultCaption,
		LogLevel:    "info",
	}
}

// LoadConfig reads the config file at path. An empty path means: use
// ./sprout.yaml if it exists, defaults otherwise. An explicit path that
// cannot be read is an error; a malformed file is always an error.
// Empty fields fall back to defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	defaults := DefaultConfig()
	if cfg.Placeholder == "" {
		cfg.Placeholder = defaults.Placeholder
	}
	if cfg.Caption == "" {
		cfg.Caption = defaults.Caption
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaults.LogLevel
	}
	return cfg, nil
}
