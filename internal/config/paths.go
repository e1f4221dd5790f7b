package config

import (
	"os"
	"path/filepath"
	"strings"
)

// Dir returns the runlet configuration directory path.
// By default, this is ~/.config/runlet/. If the XDG_CONFIG_HOME environment
// variable is set, it uses $XDG_CONFIG_HOME/runlet/ instead.
func Dir() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		base = "~/.config"
	}
	return filepath.Join(expandHome(base), "runlet")
}

// Path returns the full path to the configuration file: Dir() + config.yaml.
func Path() string {
	return filepath.Join(Dir(), "config.yaml")
}

// DefaultScriptsDir returns the default scripts directory: Dir() + scripts.
func DefaultScriptsDir() string {
	return filepath.Join(Dir(), "scripts")
}

// expandHome replaces a leading ~ in path with the user's home directory.
// If the home directory cannot be determined, the path is returned unchanged.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}
