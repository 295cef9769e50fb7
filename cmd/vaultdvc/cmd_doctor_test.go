package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/fbkclanna/vaultdvc/internal/testutil"
)

func TestRunDoctor(t *testing.T) {
	testutil.InstallFakeTools(t)
	root := testutil.CreateVault(t, map[string]string{
		".git/HEAD":     "ref: refs/heads/main\n",
		".dvc/config":   "",
		"video.mp4.dvc": "",
	})

	out, _, err := execute(t, "--root", root, "doctor")
	if err != nil {
		t.Fatalf("doctor failed: %v\n%s", err, out)
	}
	for _, want := range []string{"git version 2.45.0", "3.0.0", "tracked files: 1", "All checks passed."} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunDoctor_uninitialized(t *testing.T) {
	testutil.InstallFakeTools(t)
	root := testutil.CreateVault(t, map[string]string{
		".vaultdvc/settings.yaml": "autopull: true\n",
	})

	out, _, err := execute(t, "--root", root, "doctor")
	if err == nil {
		t.Fatal("expected doctor to fail on an uninitialized vault")
	}
	if !strings.Contains(out, "vaultdvc init") {
		t.Errorf("missing init hint:\n%s", out)
	}
	if !strings.Contains(out, "autopullExtension is empty") {
		t.Errorf("missing autopull warning:\n%s", out)
	}
}

func TestRunDoctor_missingTool(t *testing.T) {
	testutil.InstallFakeTools(t)
	root := testutil.CreateVault(t, map[string]string{".git/HEAD": "", ".dvc/config": ""})

	out, _, err := execute(t, "--root", root, "--tool", filepath.Join(t.TempDir(), "dvc"), "doctor")
	if err == nil {
		t.Fatal("expected failure")
	}
	if !strings.Contains(out, "NOT FOUND") {
		t.Errorf("output:\n%s", out)
	}
}
