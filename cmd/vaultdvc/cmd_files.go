package main

import (
	"context"

	"github.com/fbkclanna/vaultdvc/internal/dvc"
	"github.com/spf13/cobra"
)

type fileOp func(d *dvc.Dispatcher, ctx context.Context, arg dvc.Argument, show bool) (string, error)

func newAddCmd() *cobra.Command {
	return newFileCmd("add <file>...", "Start tracking files with DVC", cobra.MinimumNArgs(1), (*dvc.Dispatcher).Add)
}

func newPushCmd() *cobra.Command {
	return newFileCmd("push [file]...", "Upload tracked data to the default remote (all data when no files are given)", cobra.ArbitraryArgs, (*dvc.Dispatcher).Push)
}

func newPullCmd() *cobra.Command {
	return newFileCmd("pull [file]...", "Download tracked data from the default remote (all data when no files are given)", cobra.ArbitraryArgs, (*dvc.Dispatcher).Pull)
}

func newRemoveCmd() *cobra.Command {
	return newFileCmd("remove <file>...", "Stop tracking files (removes their .dvc marker files)", cobra.MinimumNArgs(1), (*dvc.Dispatcher).Remove)
}

func newFileCmd(use, short string, args cobra.PositionalArgs, op fileOp) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, paths []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			arg, err := a.fileArg(paths)
			if err != nil {
				return err
			}
			_, err = op(a.dvc, cmd.Context(), arg, true)
			return reported(err)
		},
	}
}
