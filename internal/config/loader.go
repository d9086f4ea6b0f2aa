package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// defaultFiles are tried in order when CONFIG_PATH is unset. cleanenv picks
// the parser from the extension, so a .env file works the same as YAML.
var defaultFiles = []string{"./config.yaml", "./.env"}

// Load resolves configuration with priority ENV > file > env-default tags.
// CONFIG_PATH names the file explicitly and must exist; otherwise the first
// of defaultFiles that exists is used, or ENV alone when none does.
func Load() (*Config, error) {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return loadFile(path)
	}

	for _, path := range defaultFiles {
		_, err := os.Stat(path)
		if err == nil {
			return loadFile(path)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: stat %s: %w", path, err)
		}
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	return validated(&cfg)
}

func loadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return validated(&cfg)
}

func validated(cfg *Config) (*Config, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return cfg, nil
}
