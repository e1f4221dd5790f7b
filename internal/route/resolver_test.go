package route

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"runlet/internal/testutil"
)

func TestResolver_Resolve(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteEchoScript(t, dir, "echo")
	testutil.WriteEchoScript(t, dir, "notify-send_2")
	r := NewResolver(dir)

	tests := []struct {
		name     string
		path     string
		wantName string
		wantArg  string
		wantErr  error
	}{
		{
			name:     "script without argument",
			path:     "/echo",
			wantName: "echo",
			wantArg:  "",
		},
		{
			name:     "script with single argument segment",
			path:     "/echo/world",
			wantName: "echo",
			wantArg:  "world",
		},
		{
			name:     "argument segments rejoined with slash",
			path:     "/echo/a/b",
			wantName: "echo",
			wantArg:  "a/b",
		},
		{
			name:     "percent-decoded argument",
			path:     "/echo/a%20b",
			wantName: "echo",
			wantArg:  "a b",
		},
		{
			name:     "encoded slash decodes inside argument",
			path:     "/echo/a%2Fb",
			wantName: "echo",
			wantArg:  "a/b",
		},
		{
			name:     "trailing slash ignored",
			path:     "/echo/",
			wantName: "echo",
			wantArg:  "",
		},
		{
			name:     "identifier with underscore digit and dash",
			path:     "/notify-send_2/hi",
			wantName: "notify-send_2",
			wantArg:  "hi",
		},
		{
			name:    "empty path",
			path:    "/",
			wantErr: ErrNoScript,
		},
		{
			name:    "dot identifier rejected",
			path:    "/../../etc/passwd",
			wantErr: ErrInvalidName,
		},
		{
			name:    "space in identifier rejected",
			path:    "/bad name",
			wantErr: ErrInvalidName,
		},
		{
			name:    "shell metacharacters rejected",
			path:    "/rm;ls",
			wantErr: ErrInvalidName,
		},
		{
			name:    "percent-encoding in identifier rejected",
			path:    "/echo%2F",
			wantErr: ErrInvalidName,
		},
		{
			name:    "dollar sign rejected",
			path:    "/$(reboot)",
			wantErr: ErrInvalidName,
		},
		{
			name:    "valid name but missing script",
			path:    "/missing",
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc, err := r.Resolve(tt.path)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Resolve(%q): got error %v, want %v", tt.path, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q): unexpected error %v", tt.path, err)
			}
			if sc.Name != tt.wantName {
				t.Errorf("Name: got %q, want %q", sc.Name, tt.wantName)
			}
			if sc.Arg != tt.wantArg {
				t.Errorf("Arg: got %q, want %q", sc.Arg, tt.wantArg)
			}
			if sc.Path != filepath.Join(dir, sc.Name+ScriptExt) {
				t.Errorf("Path: got %q", sc.Path)
			}
		})
	}
}

// TestResolver_InvalidNameBeforeFilesystem verifies that identifier
// validation rejects bad names without touching the filesystem: resolution
// against a nonexistent directory must still report the name as invalid,
// not the directory as missing.
func TestResolver_InvalidNameBeforeFilesystem(t *testing.T) {
	r := NewResolver("/nonexistent-sentinel-dir")
	_, err := r.Resolve("/bad.name/arg")
	if !errors.Is(err, ErrInvalidName) {
		t.Fatalf("got error %v, want ErrInvalidName", err)
	}
}

func TestResolver_NotFoundCarriesName(t *testing.T) {
	r := NewResolver(t.TempDir())
	sc, err := r.Resolve("/absent")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("got error %v, want ErrNotFound", err)
	}
	if sc.Name != "absent" {
		t.Errorf("Name: got %q, want %q", sc.Name, "absent")
	}
}

func TestResolver_List(t *testing.T) {
	dir := t.TempDir()
	r := NewResolver(dir)

	// Empty directory
	scripts, err := r.List()
	if err != nil {
		t.Fatalf("List on empty dir: %v", err)
	}
	if len(scripts) != 0 {
		t.Fatalf("List on empty dir: got %v, want empty", scripts)
	}

	// Sorted names, extension stripped
	testutil.WriteEchoScript(t, dir, "zeta")
	testutil.WriteEchoScript(t, dir, "alpha")

	// Ignored: wrong extension, non-executable, subdirectory
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "plain.sh"), []byte("#!/bin/sh\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.sh"), 0o755); err != nil {
		t.Fatal(err)
	}

	scripts, err = r.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"alpha", "zeta"}
	if len(scripts) != len(want) {
		t.Fatalf("List: got %v, want %v", scripts, want)
	}
	for i := range want {
		if scripts[i] != want[i] {
			t.Errorf("List[%d]: got %q, want %q", i, scripts[i], want[i])
		}
	}
}

func TestResolver_ListMissingDir(t *testing.T) {
	r := NewResolver(filepath.Join(t.TempDir(), "never-created"))
	scripts, err := r.List()
	if err != nil {
		t.Fatalf("List on missing dir: %v", err)
	}
	if len(scripts) != 0 {
		t.Errorf("List on missing dir: got %v, want empty", scripts)
	}
}
