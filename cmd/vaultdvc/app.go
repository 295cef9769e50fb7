package main

import (
	"fmt"

	"github.com/fbkclanna/vaultdvc/internal/autosync"
	"github.com/fbkclanna/vaultdvc/internal/dvc"
	"github.com/fbkclanna/vaultdvc/internal/logging"
	"github.com/fbkclanna/vaultdvc/internal/ui"
	"github.com/fbkclanna/vaultdvc/internal/vault"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app is the per-invocation context shared by all commands.
type app struct {
	vault    *vault.Context
	log      *zap.Logger
	runner   *dvc.Runner
	index    *vault.Index
	dvc      *dvc.Dispatcher
	notifier *ui.Notifier
}

func loadApp(cmd *cobra.Command) (*app, error) {
	root, _ := cmd.Flags().GetString("root")
	tool, _ := cmd.Flags().GetString("tool")
	jobs, _ := cmd.Flags().GetInt("jobs")
	level, _ := cmd.Flags().GetString("log-level")
	format, _ := cmd.Flags().GetString("log-format")
	quiet, _ := cmd.Flags().GetBool("quiet")

	log, err := logging.NewTo(logging.Config{Level: level, Format: format}, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	vctx, err := vault.Load(root)
	if err != nil {
		return nil, err
	}
	log = log.With(zap.String("vault", vctx.Root))

	notifier := ui.NewNotifier(cmd.OutOrStdout(), cmd.ErrOrStderr(), quiet)
	runner := dvc.NewRunner(jobs, log)
	index := vault.NewIndex(vctx)
	d := dvc.New(dvc.Options{
		Tool:     tool,
		Dir:      vctx.Root,
		Runner:   runner,
		Notifier: notifier,
		Index:    index,
		Logger:   log,
	})

	return &app{
		vault:    vctx,
		log:      log,
		runner:   runner,
		index:    index,
		dvc:      d,
		notifier: notifier,
	}, nil
}

func (a *app) trigger() *autosync.Trigger {
	return autosync.New(a.vault.Settings, a.index, a.vault, a.dvc, a.log)
}

// fileArg converts command-line paths into a tool argument.
func (a *app) fileArg(paths []string) (dvc.Argument, error) {
	rel, err := a.vault.RelAll(paths)
	if err != nil {
		return nil, err
	}
	switch len(rel) {
	case 0:
		return dvc.None(), nil
	case 1:
		return dvc.File(rel[0]), nil
	default:
		return dvc.Files(rel...), nil
	}
}

// reportedError marks a failure that the notifier has already shown.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	if err == nil {
		return nil
	}
	return &reportedError{err: err}
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
