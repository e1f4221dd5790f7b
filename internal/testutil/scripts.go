// Package testutil provides shared test helpers for runlet tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteScript creates an executable shell script named name+".sh" in dir
// with the given body and returns its path. The body runs under /bin/sh.
func WriteScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name+".sh")
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("failed to write script %s: %v", path, err)
	}
	return path
}

// WriteEchoScript creates a script that prints its first argument.
func WriteEchoScript(t *testing.T, dir, name string) string {
	t.Helper()
	return WriteScript(t, dir, name, `printf '%s' "$1"`)
}
