package vault

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Rel converts a user-supplied path (absolute, or relative to the current
// directory) into a slash-separated path relative to the vault root.
// Paths outside the vault are rejected.
func (c *Context) Rel(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", p, err)
	}
	rel, err := filepath.Rel(c.Root, abs)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", p, err)
	}
	if err := validatePath(rel, p); err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}

// RelAll applies Rel to every path.
func (c *Context) RelAll(paths []string) ([]string, error) {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		rel, err := c.Rel(p)
		if err != nil {
			return nil, err
		}
		out = append(out, rel)
	}
	return out, nil
}

// validatePath ensures a path is relative and does not escape the vault.
func validatePath(p, label string) error {
	if filepath.IsAbs(p) {
		return fmt.Errorf("%s: absolute path is not allowed: %s", label, p)
	}
	cleaned := filepath.Clean(p)
	if cleaned == "." {
		return fmt.Errorf("%s: path is the vault root", label)
	}
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%s: path is outside the vault", label)
	}
	return nil
}
