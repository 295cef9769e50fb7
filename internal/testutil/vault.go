// Package testutil provides helpers shared by tests: throwaway vaults and a
// scriptable stand-in for the dvc and git executables.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// CreateVault creates a vault directory in a temp dir populated with files
// (vault-relative path to content). Returns the vault root.
func CreateVault(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "vault")
	if err := os.MkdirAll(dir, 0755); err != nil { //nolint:gosec // test directory
		t.Fatal(err)
	}
	for rel, content := range files {
		p := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil { //nolint:gosec // test directory
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0644); err != nil { //nolint:gosec // test file
			t.Fatal(err)
		}
	}
	return dir
}

// FakeDVC is a script body emulating the dvc subcommands used by vaultdvc.
// Set FAKE_DVC_FAIL to a subcommand name to make that subcommand fail.
const FakeDVC = `
if [ -n "$FAKE_DVC_FAIL" ] && [ "$1" = "$FAKE_DVC_FAIL" ]; then
  echo "ERROR: failed to $1" >&2
  exit 1
fi
case "$1" in
  status) echo "Data and pipelines are up to date." ;;
  remote)
    if [ "$2" = "list" ]; then
      printf 'origin\t/data\nbackup\t/mnt/backup\n'
    fi ;;
  add|push|pull|remove)
    shift
    for f in "$@"; do echo "$f"; done ;;
  init) echo "Initialized DVC repository." ;;
  gc) echo "Removed 0 objects from cache." ;;
  config) ;;
  version|--version) echo "3.0.0" ;;
  *) echo "unknown command: $1" >&2; exit 2 ;;
esac
`

// FakeGit is a script body emulating `git init`.
const FakeGit = `
if [ -n "$FAKE_GIT_FAIL" ]; then
  echo "fatal: cannot init" >&2
  exit 128
fi
case "$1" in
  init) mkdir -p .git && echo "Initialized empty Git repository" ;;
  version|--version) echo "git version 2.45.0" ;;
esac
`

// FakeTool writes an executable shell script called name into a fresh temp
// directory. Every invocation appends its argv, tab-separated, as one line to
// the returned log file before running body. Returns the script path and log path.
func FakeTool(t *testing.T, name, body string) (path, log string) {
	t.Helper()
	dir := t.TempDir()
	path = filepath.Join(dir, name)
	log = filepath.Join(dir, name+".log")

	script := "#!/bin/sh\n" +
		"( printf '%s' \"$1\"; if [ $# -gt 0 ]; then shift; fi; for a in \"$@\"; do printf '\\t%s' \"$a\"; done; printf '\\n' ) >> '" + log + "'\n" +
		body
	if err := os.WriteFile(path, []byte(script), 0755); err != nil { //nolint:gosec // test executable
		t.Fatal(err)
	}
	return path, log
}

// InstallFakeTools puts fake dvc and git executables first on PATH for the
// rest of the test. Returns the dvc and git invocation logs.
func InstallFakeTools(t *testing.T) (dvcLog, gitLog string) {
	t.Helper()
	dvcPath, dvcLog := FakeTool(t, "dvc", FakeDVC)
	gitPath, gitLog := FakeTool(t, "git", FakeGit)

	bin := t.TempDir()
	for _, p := range []string{dvcPath, gitPath} {
		if err := os.Symlink(p, filepath.Join(bin, filepath.Base(p))); err != nil {
			t.Fatal(err)
		}
	}
	t.Setenv("PATH", bin+string(os.PathListSeparator)+os.Getenv("PATH"))
	return dvcLog, gitLog
}

// Invocations reads a FakeTool log: one argv per invocation.
func Invocations(t *testing.T, log string) [][]string {
	t.Helper()
	data, err := os.ReadFile(log) //nolint:gosec // test file
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		t.Fatal(err)
	}
	var calls [][]string
	for _, line := range strings.Split(strings.TrimRight(string(data), "\n"), "\n") {
		if line == "" {
			continue
		}
		calls = append(calls, strings.Split(line, "\t"))
	}
	return calls
}
