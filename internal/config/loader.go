package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultConfigPath = "./config.yaml"

// Load reads the configuration and validates it.
//
// Values are resolved ENV > YAML > env-default tags. The YAML file is taken
// from CONFIG_PATH, falling back to ./config.yaml. A missing fallback file is
// not an error and leaves ENV and defaults as the only sources; a missing
// explicit CONFIG_PATH is.
func Load() (*Config, error) {
	var cfg Config

	if err := read(&cfg, os.Getenv("CONFIG_PATH")); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func read(cfg *Config, path string) error {
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
	}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
	case explicit || !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("file %s: %w", path, err)
	default:
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return fmt.Errorf("read env: %w", err)
		}
	}
	return nil
}
