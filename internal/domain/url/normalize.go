// Package url provides location normalization for recent entries and open requests.
package url

import (
	"net/url"
	"path/filepath"
	"strings"
)

const fileScheme = "file"

// Canonical returns the normalized form of a location: scheme, authority and path.
// Scheme and host are lower-cased while userinfo is kept as written. Query and
// fragment are dropped; the path is kept byte-for-byte (case-sensitive, no
// trailing slash trimming). Absolute filesystem
// paths are promoted to file:// URIs. Returns "" for blank input.
//
// Two locations are equal when their canonical forms are equal as strings. There is no
// filesystem case folding, so /Proj and /proj are different locations even on
// case-insensitive filesystems.
func Canonical(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	if isAbsPath(raw) {
		return pathToFileURI(raw)
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" {
		return raw
	}

	scheme := strings.ToLower(parsed.Scheme)
	if parsed.Opaque != "" {
		return scheme + ":" + parsed.Opaque
	}

	authority := strings.ToLower(parsed.Host)
	if parsed.User != nil {
		// Userinfo is case-sensitive; only the host folds.
		authority = parsed.User.String() + "@" + authority
	}
	return scheme + "://" + authority + parsed.EscapedPath()
}

// FromPath converts a filesystem path (relative paths are resolved against the
// working directory) or an existing URI into a canonical location.
func FromPath(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", nil
	}
	if HasScheme(input) {
		return Canonical(input), nil
	}

	abs, err := filepath.Abs(input)
	if err != nil {
		return "", err
	}
	return pathToFileURI(abs), nil
}

// ToPath returns the filesystem path of a file:// location, or the input unchanged
// for any other scheme.
func ToPath(location string) string {
	parsed, err := url.Parse(location)
	if err != nil || !strings.EqualFold(parsed.Scheme, fileScheme) {
		return location
	}
	return filepath.FromSlash(parsed.Path)
}

// HasScheme reports whether input starts with a URI scheme such as "file:" or "vscode-remote:".
func HasScheme(input string) bool {
	idx := strings.Index(input, ":")
	if idx <= 1 {
		// idx 1 would be a Windows drive letter.
		return false
	}
	for i, r := range input[:idx] {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && (r >= '0' && r <= '9' || r == '+' || r == '-' || r == '.'):
		default:
			return false
		}
	}
	return true
}

func isAbsPath(raw string) bool {
	return strings.HasPrefix(raw, "/") && !strings.HasPrefix(raw, "//")
}

func pathToFileURI(path string) string {
	u := url.URL{Scheme: fileScheme, Path: filepath.ToSlash(path)}
	// url.URL.String drops the empty authority, so build it by hand.
	return fileScheme + "://" + u.EscapedPath()
}

// Basename returns the last path segment of a location, used as a display label.
func Basename(location string) string {
	parsed, err := url.Parse(location)
	path := location
	if err == nil && parsed.Path != "" {
		path = parsed.Path
	}
	path = strings.TrimSuffix(path, "/")
	if idx := strings.LastIndex(path, "/"); idx >= 0 {
		return path[idx+1:]
	}
	return path
}
