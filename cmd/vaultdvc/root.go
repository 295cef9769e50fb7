package main

import (
	"github.com/fbkclanna/vaultdvc/internal/dvc"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "vaultdvc",
		Short:         "DVC companion for markdown note vaults",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	pf := cmd.PersistentFlags()
	pf.String("root", ".", "Vault root directory")
	pf.String("tool", dvc.DefaultTool, "Versioning tool executable")
	pf.Int("jobs", 1, "Maximum concurrent tool processes (0 = unbounded)")
	pf.String("log-level", "warn", "Log level (debug, info, warn, error)")
	pf.String("log-format", "console", "Log format (console, json)")
	pf.BoolP("quiet", "q", false, "Only print failures")

	cmd.AddCommand(
		newInitCmd(),
		newStatusCmd(),
		newRemoteCmd(),
		newAddCmd(),
		newPushCmd(),
		newPullCmd(),
		newRemoveCmd(),
		newGCCmd(),
		newTrackedCmd(),
		newOpenCmd(),
		newWatchCmd(),
		newConfigCmd(),
		newDoctorCmd(),
	)

	return cmd
}
