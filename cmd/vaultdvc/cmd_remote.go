package main

import (
	"encoding/json"
	"fmt"

	"github.com/fbkclanna/vaultdvc/internal/ui"
	"github.com/spf13/cobra"
)

func newRemoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remote",
		Short: "Show configured DVC remotes",
		Args:  cobra.NoArgs,
		RunE:  runRemoteList,
	}
	cmd.PersistentFlags().Bool("json", false, "Output as JSON")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List configured DVC remotes",
			Args:  cobra.NoArgs,
			RunE:  runRemoteList,
		},
		&cobra.Command{
			Use:   "get <name>",
			Short: "Print the path of one DVC remote",
			Args:  cobra.ExactArgs(1),
			RunE:  runRemoteGet,
		},
	)
	return cmd
}

func runRemoteGet(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	if _, err := a.dvc.ListRemotes(cmd.Context(), false); err != nil {
		return reported(err)
	}
	rec, ok := a.dvc.Remotes().Lookup(args[0])
	if !ok {
		return fmt.Errorf("no remote named %q", args[0])
	}

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	}
	_, _ = fmt.Fprintln(out, rec.Path)
	return nil
}

func runRemoteList(cmd *cobra.Command, _ []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	remotes, err := a.dvc.ListRemotes(cmd.Context(), false)
	if err != nil {
		return reported(err)
	}

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(remotes)
	}

	tbl := ui.NewTable(out, "NAME", "PATH").WhenEmpty("No remotes configured.")
	for _, r := range remotes {
		tbl.Row(r.Name, r.Path)
	}
	return tbl.Flush()
}
