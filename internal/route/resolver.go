// Package route resolves HTTP request paths to scripts in the configured
// scripts directory. The first path segment names the script; everything
// after it is percent-decoded and passed to the script as a single argument.
package route

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// ScriptExt is the fixed extension appended to a script identifier when
// resolving it on disk. The extension is stripped again when listing.
const ScriptExt = ".sh"

// Resolution errors. Handlers translate these to HTTP statuses.
var (
	// ErrNoScript means the request path contained no script identifier.
	ErrNoScript = errors.New("no script specified")

	// ErrInvalidName means the identifier contained characters outside
	// [A-Za-z0-9_-]. This is the sole injection and path-traversal
	// defense: nothing else is rejected before the subprocess boundary.
	ErrInvalidName = errors.New("invalid script name")

	// ErrNotFound means the identifier was valid but no script file
	// exists for it.
	ErrNotFound = errors.New("script not found")
)

// validName matches the allowed script identifier character set.
var validName = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Script is a resolved script invocation: the identifier, the executable
// path on disk, and the argument string extracted from the request path.
type Script struct {
	Name string
	Path string
	Arg  string
}

// Resolver maps request paths to scripts under a fixed directory.
// It is immutable after construction and safe for concurrent use.
type Resolver struct {
	dir string
}

// NewResolver creates a Resolver for the given scripts directory.
func NewResolver(dir string) *Resolver {
	return &Resolver{dir: dir}
}

// Dir returns the scripts directory the resolver serves from.
func (r *Resolver) Dir() string { return r.dir }

// Resolve parses a raw (still percent-encoded) request path into a Script.
// The path is split on "/" with empty segments discarded. The first segment
// is validated against [A-Za-z0-9_-]+ before it touches the filesystem; the
// remaining segments are percent-decoded and rejoined with "/" to form the
// argument. The only filesystem interaction is a single existence check.
func (r *Resolver) Resolve(rawPath string) (Script, error) {
	segments := splitPath(rawPath)
	if len(segments) == 0 {
		return Script{}, ErrNoScript
	}

	name := segments[0]
	if !validName.MatchString(name) {
		return Script{}, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	arg := strings.Join(decodeSegments(segments[1:]), "/")

	scriptPath := filepath.Join(r.dir, name+ScriptExt)
	if _, err := os.Stat(scriptPath); err != nil {
		// Name is returned so callers can report which script is missing.
		return Script{Name: name}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	return Script{Name: name, Path: scriptPath, Arg: arg}, nil
}

// List returns the names of all executable scripts in the directory with
// ScriptExt stripped, sorted ascending. A missing directory yields an empty
// list rather than an error.
func (r *Resolver) List() ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("list scripts: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ScriptExt) {
			continue
		}
		info, err := e.Info()
		if err != nil || info.Mode().Perm()&0o111 == 0 {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ScriptExt))
	}
	sort.Strings(names)
	return names, nil
}

// splitPath splits a URL path on "/" and drops empty segments.
func splitPath(p string) []string {
	parts := strings.Split(p, "/")
	segments := make([]string, 0, len(parts))
	for _, s := range parts {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}

// decodeSegments percent-decodes each segment. Segments that fail to decode
// are passed through verbatim: the argument is opaque to the agent.
func decodeSegments(segments []string) []string {
	out := make([]string, len(segments))
	for i, s := range segments {
		decoded, err := url.PathUnescape(s)
		if err != nil {
			decoded = s
		}
		out[i] = decoded
	}
	return out
}
