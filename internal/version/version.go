// Package version provides version information for runlet.
// The Version variable is set at build time via ldflags.
package version

// Version is the current version of runlet.
// Set at build time via: -ldflags "-X runlet/internal/version.Version=v1.0.0"
// Defaults to "dev" for development builds.
var Version = "dev"
