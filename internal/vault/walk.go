package vault

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// ListFiles returns every file of the vault, skipping hidden directories
// (.git, .dvc, .vaultdvc, ...) and paths matched by the root .gitignore.
func (c *Context) ListFiles() ([]File, error) {
	matcher, err := loadIgnore(c.Root)
	if err != nil {
		return nil, err
	}

	var files []File
	err = filepath.WalkDir(c.Root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if p == c.Root {
			return nil
		}
		rel, err := filepath.Rel(c.Root, p)
		if err != nil {
			return err
		}
		segments := strings.Split(filepath.ToSlash(rel), "/")
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			if matcher != nil && matcher.Match(segments, true) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if matcher != nil && matcher.Match(segments, false) {
			return nil
		}
		files = append(files, NewFile(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing vault files: %w", err)
	}
	return files, nil
}

// loadIgnore parses the vault's root .gitignore. It returns nil when there
// is none.
func loadIgnore(root string) (gitignore.Matcher, error) {
	f, err := os.Open(filepath.Join(root, ".gitignore")) //nolint:gosec // fixed name inside the vault
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading .gitignore: %w", err)
	}
	defer func() { _ = f.Close() }()

	var patterns []gitignore.Pattern
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, nil))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading .gitignore: %w", err)
	}
	if len(patterns) == 0 {
		return nil, nil
	}
	return gitignore.NewMatcher(patterns), nil
}
