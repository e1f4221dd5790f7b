// Package cmd implements the CLI commands for runlet.
package cmd

import (
	"github.com/spf13/cobra"

	"runlet/internal/config"
	"runlet/internal/version"
)

// configPath is the --config flag value; empty means the default location.
var configPath string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "runlet",
	Short: "Local HTTP script trigger agent",
	Long: `Runlet is a local HTTP agent that triggers installed scripts.

It maps the first path segment of an incoming request to a script in the
configured scripts directory, executes it with the remaining path as an
argument, and returns the script's output as the response body. Callers are
authorized by source IP against a configured allow-list; loopback is always
permitted.`,
	Version: version.Version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default "+config.Path()+")")
}

// Execute runs the root command and returns any error.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig loads the configuration from --config or the default path.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		path = config.Path()
	}
	return config.Load(path)
}
