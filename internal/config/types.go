// Package config provides configuration types and loading for the runlet
// agent. Configuration maps to a single YAML file, typically stored at
// ~/.config/runlet/config.yaml, with environment variable overrides for the
// most common settings.
package config

import "time"

// Config represents the top-level runlet configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server,omitempty"`
	Scripts ScriptsConfig `yaml:"scripts,omitempty"`
	Log     LogConfig     `yaml:"log,omitempty"`
}

// ServerConfig contains HTTP listener and authorization settings.
type ServerConfig struct {
	// Port is the TCP port the agent listens on. Defaults to 8080.
	Port int `yaml:"port,omitempty"`

	// Allow lists the IPs permitted to trigger execution. Entries are
	// literal IPv4/IPv6 addresses or dot-segment wildcard patterns such
	// as "192.168.1.*". Loopback is always permitted.
	Allow []AllowEntry `yaml:"allow,omitempty"`
}

// AllowEntry represents a single IP literal or wildcard pattern in the
// allow-list.
type AllowEntry struct {
	IP string `yaml:"ip,omitempty"`
}

// ScriptsConfig contains script resolution and execution settings.
type ScriptsConfig struct {
	// Dir is the directory containing executable scripts. Created at
	// startup if absent. Defaults to ~/.config/runlet/scripts.
	Dir string `yaml:"dir,omitempty"`

	// Timeout bounds each script execution (e.g. "5s"). Defaults to 5s.
	Timeout string `yaml:"timeout,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// File is the log file path. Empty disables file logging.
	File string `yaml:"file,omitempty"`

	// Level is the minimum log level ("debug", "info", "warn", "error").
	Level string `yaml:"level,omitempty"`
}

// Default configuration values.
const (
	DefaultPort    = 8080
	DefaultTimeout = 5 * time.Second
)

// Port returns the configured port, or DefaultPort when unset.
func (c *Config) Port() int {
	if c.Server.Port != 0 {
		return c.Server.Port
	}
	return DefaultPort
}

// Timeout returns the configured execution timeout, or DefaultTimeout when
// unset or unparseable.
func (c *Config) Timeout() time.Duration {
	if c.Scripts.Timeout == "" {
		return DefaultTimeout
	}
	d, err := time.ParseDuration(c.Scripts.Timeout)
	if err != nil || d <= 0 {
		return DefaultTimeout
	}
	return d
}

// AllowRules returns the configured allow-list entries as plain strings,
// skipping empty entries.
func (c *Config) AllowRules() []string {
	rules := make([]string, 0, len(c.Server.Allow))
	for _, e := range c.Server.Allow {
		if e.IP != "" {
			rules = append(rules, e.IP)
		}
	}
	return rules
}
