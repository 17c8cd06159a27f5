package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultPath is read when no file is named and it exists.
const DefaultPath = "./config.yaml"

// Load reads configuration for the server: the YAML file named by
// CONFIG_PATH (or DefaultPath), then environment variables, then
// env-default tags, in decreasing priority.
func Load() (*Config, error) {
	return LoadPath("")
}

// LoadPath is Load with an explicit file, as given by mslctl --config. An
// empty path falls back to CONFIG_PATH and then DefaultPath. A file that was
// named explicitly must exist; a missing DefaultPath means ENV and defaults
// only.
func LoadPath(path string) (*Config, error) {
	explicit := true
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		path, explicit = DefaultPath, false
	}

	var cfg Config
	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit || !errors.Is(statErr, fs.ErrNotExist):
		return nil, fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}
