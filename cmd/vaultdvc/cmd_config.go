package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fbkclanna/vaultdvc/internal/settings"
	"github.com/fbkclanna/vaultdvc/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change vault settings",
		Args:  cobra.NoArgs,
		RunE:  runConfigShow,
	}
	cmd.Flags().BoolP("interactive", "i", false, "Edit settings in an interactive form")

	cmd.AddCommand(
		&cobra.Command{
			Use:       "get <key>",
			Short:     "Print one setting",
			Args:      cobra.ExactArgs(1),
			ValidArgs: settings.Keys,
			RunE:      runConfigGet,
		},
		&cobra.Command{
			Use:   "set <key> <value>...",
			Short: "Change one setting",
			Long: `Change one setting.

Keys:
  autostage          true/false (required); also runs dvc config --local core.autostage
  autopull           true/false (required)
  autopullExtension  space-separated list, e.g. "mp4 pdf" (empty clears it)`,
			Args:      cobra.MinimumNArgs(1),
			ValidArgs: settings.Keys,
			RunE:      runConfigSet,
		},
	)
	return cmd
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	interactive, _ := cmd.Flags().GetBool("interactive")

	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	if interactive {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("--interactive requires a terminal")
		}
		next, err := interactiveSettings(a.vault.Settings)
		if err != nil {
			return err
		}
		return a.updateSettings(cmd, next, false)
	}

	tbl := ui.NewTable(cmd.OutOrStdout(), "KEY", "VALUE")
	for _, k := range settings.Keys {
		v, _ := settings.Value(a.vault.Settings, k)
		tbl.Row(k, v)
	}
	return tbl.Flush()
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	v, err := settings.Value(a.vault.Settings, args[0])
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), v)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	key, value := args[0], strings.Join(args[1:], " ")

	next := *a.vault.Settings
	if err := settings.Apply(&next, key, value); err != nil {
		return err
	}
	// An explicit autostage write reaches the tool even when unchanged.
	return a.updateSettings(cmd, &next, strings.EqualFold(key, "autostage"))
}

// updateSettings saves next. A changed autostage value, or any value when
// forceStage is set, is pushed to the tool configuration.
func (a *app) updateSettings(cmd *cobra.Command, next *settings.SyncPolicy, forceStage bool) error {
	changedStage := forceStage || next.AutoStage != a.vault.Settings.AutoStage
	*a.vault.Settings = *next
	if err := a.vault.SaveSettings(); err != nil {
		return err
	}
	a.notifier.Notify("Settings saved to " + a.vault.SettingsPath)
	if changedStage {
		return reported(a.dvc.SetAutoStage(cmd.Context(), next.AutoStage))
	}
	return nil
}
