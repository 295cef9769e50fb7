package main

import (
	"encoding/json"

	"github.com/fbkclanna/vaultdvc/internal/ui"
	"github.com/spf13/cobra"
)

func newTrackedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tracked",
		Short: "List the .dvc marker files in the vault",
		Args:  cobra.NoArgs,
		RunE:  runTracked,
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}

func runTracked(cmd *cobra.Command, _ []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	if err := a.index.Refresh(); err != nil {
		return err
	}
	markers := a.index.Current()

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(markers)
	}

	tbl := ui.NewTable(out, "MARKER", "DATA").WhenEmpty("No tracked files.")
	for _, m := range markers {
		tbl.Row(m.Path, m.DataPath())
	}
	return tbl.Flush()
}
