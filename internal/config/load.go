package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Load reads the configuration file at path, applies environment overrides,
// and validates the result. A missing file is not an error: defaults plus
// environment overrides apply. A .env file in the working directory is
// loaded first if present, so deployments can keep overrides next to the
// binary.
func Load(path string) (*Config, error) {
	// Best effort; absent .env just means plain environment lookup.
	_ = godotenv.Load()

	var cfg *Config
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		cfg, err = Parse(data)
		if err != nil {
			return nil, err
		}
	case os.IsNotExist(err):
		cfg = &Config{}
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnvOverrides(cfg)

	if cfg.Scripts.Dir == "" {
		cfg.Scripts.Dir = DefaultScriptsDir()
	} else {
		cfg.Scripts.Dir = expandHome(cfg.Scripts.Dir)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides overlays RUNLET_PORT and RUNLET_SCRIPTS_DIR from the
// environment onto cfg. Invalid port values are ignored in favor of the
// configured or default port.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("RUNLET_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = p
		}
	}
	if v := os.Getenv("RUNLET_SCRIPTS_DIR"); v != "" {
		cfg.Scripts.Dir = v
	}
}

// EnsureScriptsDir creates the configured scripts directory if it doesn't
// exist. Returns nil if the directory already exists or was created.
func EnsureScriptsDir(cfg *Config) error {
	if err := os.MkdirAll(cfg.Scripts.Dir, 0o755); err != nil {
		return fmt.Errorf("ensure scripts dir: %w", err)
	}
	return nil
}
