package config

import (
	"fmt"
	"strings"
	"time"
)

// validLogLevels defines the allowed log level values.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks that a parsed Config contains valid values:
//   - Server.Port is within 1-65535 (when set)
//   - Scripts.Timeout parses as a positive duration (when set)
//   - Allow entries are non-empty and contain no whitespace
//   - Log.Level is one of: debug, info, warn, error (when set)
//
// Returns nil if the config is valid, or an error naming the invalid field.
func Validate(cfg *Config) error {
	if cfg.Server.Port != 0 && (cfg.Server.Port < 1 || cfg.Server.Port > 65535) {
		return fmt.Errorf("server.port: must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	if cfg.Scripts.Timeout != "" {
		d, err := time.ParseDuration(cfg.Scripts.Timeout)
		if err != nil {
			return fmt.Errorf("scripts.timeout: invalid duration %q: %w", cfg.Scripts.Timeout, err)
		}
		if d <= 0 {
			return fmt.Errorf("scripts.timeout: must be positive, got %q", cfg.Scripts.Timeout)
		}
	}

	for i, e := range cfg.Server.Allow {
		if e.IP == "" {
			return fmt.Errorf("server.allow[%d]: ip must not be empty", i)
		}
		if strings.ContainsAny(e.IP, " \t") {
			return fmt.Errorf("server.allow[%d]: ip %q must not contain whitespace", i, e.IP)
		}
	}

	if cfg.Log.Level != "" && !validLogLevels[cfg.Log.Level] {
		return fmt.Errorf("log.level: must be one of debug, info, warn, error; got %q", cfg.Log.Level)
	}

	return nil
}
