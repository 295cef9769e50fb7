package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newOpenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open <note>",
		Short: "Handle opening a note: pull the tracked attachments it embeds",
		Long: `Handle opening a note.

When autopull is enabled, every embed of the note whose link contains one of
the autopullExtension entries and matches a tracked file is pulled in a
single dvc pull.`,
		Args: cobra.ExactArgs(1),
		RunE: runOpen,
	}
	cmd.Flags().Bool("status", false, "Run dvc status before handling the note")
	return cmd
}

func runOpen(cmd *cobra.Command, args []string) error {
	withStatus, _ := cmd.Flags().GetBool("status")

	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	note, err := a.vault.Rel(args[0])
	if err != nil {
		return err
	}

	if withStatus {
		if _, err := a.dvc.Status(cmd.Context(), true); err != nil {
			return reported(err)
		}
	}

	pulled, err := a.trigger().HandleOpen(cmd.Context(), note)
	if err != nil {
		if len(pulled) > 0 {
			return reported(err)
		}
		return err
	}
	if len(pulled) > 0 {
		a.notifier.Notify(fmt.Sprintf("Pulled %s embedded in %s.", plural(len(pulled), "tracked file"), note))
	}
	return nil
}
