package main

import (
	"fmt"

	"github.com/fbkclanna/vaultdvc/internal/probe"
	"github.com/spf13/cobra"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose the environment for common issues",
		Args:  cobra.NoArgs,
		RunE:  runDoctor,
	}
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	ok := true

	for _, name := range []string{"git", a.dvc.Tool()} {
		_, _ = fmt.Fprintf(out, "Checking %s... ", name)
		t := probe.Check(cmd.Context(), a.runner, name)
		switch {
		case t.Path == "":
			_, _ = fmt.Fprintln(out, "NOT FOUND")
			ok = false
		case t.Err != nil:
			_, _ = fmt.Fprintf(out, "ERROR (%v)\n", t.Err)
			ok = false
		default:
			_, _ = fmt.Fprintf(out, "%s (%s)\n", t.Version, t.Path)
		}
	}

	repo := probe.RepoState(a.vault.Root)
	_, _ = fmt.Fprintf(out, "Vault: %s\n", a.vault.Root)
	_, _ = fmt.Fprintf(out, "  git repository: %s\n", yesNo(repo.Git))
	_, _ = fmt.Fprintf(out, "  dvc repository: %s\n", yesNo(repo.DVC))
	if !repo.Initialized() {
		_, _ = fmt.Fprintln(out, "  Run `vaultdvc init` to initialize the vault.")
		ok = false
	}

	if err := a.index.Refresh(); err != nil {
		_, _ = fmt.Fprintf(out, "  tracked files: ERROR (%v)\n", err)
		ok = false
	} else {
		_, _ = fmt.Fprintf(out, "  tracked files: %d\n", a.index.Len())
	}

	p := a.vault.Settings
	_, _ = fmt.Fprintf(out, "  autopull: %t (extensions: %d)\n", p.AutoPull, len(p.AutoPullExtensions))
	if p.AutoPull && len(p.AutoPullExtensions) == 0 {
		_, _ = fmt.Fprintln(out, "  Warning: autopull is on but autopullExtension is empty, nothing will be pulled")
	}

	if ok {
		_, _ = fmt.Fprintln(out, "\nAll checks passed.")
		return nil
	}
	_, _ = fmt.Fprintln(out, "\nSome checks failed. See above for details.")
	return fmt.Errorf("doctor checks failed")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
