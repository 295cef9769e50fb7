package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fbkclanna/vaultdvc/internal/metrics"
	"github.com/fbkclanna/vaultdvc/internal/watch"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the vault and auto-pull attachments of notes as they change",
		Long: `Watch the vault and auto-pull attachments of notes as they change.

Every created or written note is handled like "vaultdvc open". Marker files
(*.dvc) added or removed while watching, e.g. by "vaultdvc add" or "git pull"
in another terminal, refresh the tracked file index.

Settings are read once at startup; restart watch after "vaultdvc config set".`,
		Args: cobra.NoArgs,
		RunE:  runWatch,
	}
	cmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9108)")
	return cmd
}

func runWatch(cmd *cobra.Command, _ []string) error {
	metricsAddr, _ := cmd.Flags().GetString("metrics-addr")

	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	w, err := watch.New(a.vault.Root, a.log)
	if err != nil {
		return err
	}
	trigger := a.trigger()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	if metricsAddr != "" {
		srv := &http.Server{
			Addr:              metricsAddr,
			Handler:           metricsMux(),
			ReadHeaderTimeout: 5 * time.Second,
		}
		g.Go(func() error {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
		a.log.Info("serving metrics", zap.String("addr", metricsAddr))
	}

	g.Go(func() error {
		return w.Run(ctx, func(ev watch.Event) {
			switch ev.Kind {
			case watch.MarkerChanged:
				// Refreshed in the loop so later note events see the marker.
				if err := a.index.Refresh(); err != nil {
					a.log.Warn("refreshing tracked file index", zap.String("marker", ev.Path), zap.Error(err))
				}
			case watch.NoteChanged:
				note := ev.Path
				task := a.dvc.Go(ctx, "autopull "+note, func(ctx context.Context) (string, error) {
					markers, err := trigger.HandleOpen(ctx, note)
					return plural(len(markers), "tracked file"), err
				})
				g.Go(func() error {
					// Trigger failures never end the watch.
					if _, err := task.Wait(context.WithoutCancel(ctx)); err != nil {
						a.log.Warn("auto-pull failed",
							zap.String("task_id", task.ID),
							zap.String("note", note),
							zap.Error(err),
						)
					}
					return nil
				})
			}
		})
	})

	a.log.Info("watching vault", zap.Int("dirs", w.WatchedDirs()))
	a.notifier.Notify("Watching " + a.vault.Root + " (Ctrl-C to stop)")
	return g.Wait()
}

func metricsMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	return mux
}
