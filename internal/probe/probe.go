// Package probe inspects the environment vaultdvc depends on: the git and
// dvc executables and the repository state of the vault.
package probe

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/fbkclanna/vaultdvc/internal/dvc"
)

// Tool is the result of probing one executable.
type Tool struct {
	Name    string
	Path    string // empty when not found on PATH
	Version string
	Err     error
}

// OK reports whether the tool was found and answered a version query.
func (t Tool) OK() bool { return t.Path != "" && t.Err == nil }

// Check locates name on PATH and asks it for its version.
func Check(ctx context.Context, r *dvc.Runner, name string) Tool {
	t := Tool{Name: name}
	p, err := exec.LookPath(name)
	if err != nil {
		t.Err = err
		return t
	}
	t.Path = p

	out, err := r.Run(ctx, ".", name, "version")
	if err != nil {
		t.Err = err
		return t
	}
	t.Version = firstLine(out.Stdout)
	return t
}

// Repo describes which repositories are initialized at a vault root.
type Repo struct {
	Git bool
	DVC bool
}

// Initialized reports whether both repositories exist.
func (r Repo) Initialized() bool { return r.Git && r.DVC }

// RepoState inspects root for .git and .dvc directories.
func RepoState(root string) Repo {
	return Repo{
		Git: isDir(filepath.Join(root, ".git")),
		DVC: isDir(filepath.Join(root, ".dvc")),
	}
}

func isDir(p string) bool {
	info, err := os.Stat(p)
	if err != nil {
		return false
	}
	return info.IsDir()
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(s), "\n")
	return strings.TrimSpace(line)
}
