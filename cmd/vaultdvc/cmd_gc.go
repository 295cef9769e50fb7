package main

import (
	"github.com/spf13/cobra"
)

func newGCCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gc",
		Short: "Remove cached data not used by the workspace",
		Args:  cobra.NoArgs,
		RunE:  runGC,
	}
	cmd.Flags().Bool("cloud", false, "Also remove unused data from the default remote")
	return cmd
}

func runGC(cmd *cobra.Command, _ []string) error {
	cloud, _ := cmd.Flags().GetBool("cloud")

	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	if cloud {
		_, err = a.dvc.GCWorkspaceAndRemote(cmd.Context(), true)
	} else {
		_, err = a.dvc.GCWorkspace(cmd.Context(), true)
	}
	return reported(err)
}
