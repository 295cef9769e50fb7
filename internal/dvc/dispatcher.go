package dvc

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultTool is the executable name of the versioning tool.
const DefaultTool = "dvc"

// Notifier surfaces operation results to the user. Implementations must not block.
type Notifier interface {
	Notify(text string)
	Fail(text string)
}

// Refresher rebuilds the tracked file index.
type Refresher interface {
	Refresh() error
}

// Options configures a Dispatcher.
type Options struct {
	Tool     string // defaults to DefaultTool
	Dir      string // working directory for every subprocess
	Runner   *Runner
	Notifier Notifier
	Index    Refresher // refreshed after every add; may be nil
	Logger   *zap.Logger
}

// Dispatcher exposes one method per tool operation. Every method takes a
// show flag controlling whether success output reaches the notifier;
// failures are always surfaced and also returned.
type Dispatcher struct {
	tool     string
	dir      string
	runner   *Runner
	notifier Notifier
	index    Refresher
	remotes  RemoteRegistry
	log      *zap.Logger
}

// New creates a Dispatcher.
func New(opts Options) *Dispatcher {
	if opts.Tool == "" {
		opts.Tool = DefaultTool
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Runner == nil {
		opts.Runner = NewRunner(1, opts.Logger)
	}
	if opts.Notifier == nil {
		opts.Notifier = discard{}
	}
	return &Dispatcher{
		tool:     opts.Tool,
		dir:      opts.Dir,
		runner:   opts.Runner,
		notifier: opts.Notifier,
		index:    opts.Index,
		log:      opts.Logger,
	}
}

// Tool returns the tool executable name.
func (d *Dispatcher) Tool() string { return d.tool }

// Remotes returns the registry filled by ListRemotes.
func (d *Dispatcher) Remotes() *RemoteRegistry { return &d.remotes }

// Status runs `status`.
func (d *Dispatcher) Status(ctx context.Context, show bool) (string, error) {
	return d.Run(ctx, "status", None(), show)
}

// Add runs `add` and then refreshes the tracked file index, whether or not
// the subprocess succeeded.
func (d *Dispatcher) Add(ctx context.Context, arg Argument, show bool) (string, error) {
	out, err := d.Run(ctx, "add", arg, show)
	if d.index != nil {
		if rerr := d.index.Refresh(); rerr != nil {
			d.log.Warn("refreshing tracked file index", zap.Error(rerr))
		}
	}
	return out, err
}

// Push runs `push`. An empty argument pushes all tracked data.
func (d *Dispatcher) Push(ctx context.Context, arg Argument, show bool) (string, error) {
	return d.Run(ctx, "push", arg, show)
}

// Pull runs `pull`. An empty argument pulls all tracked data.
func (d *Dispatcher) Pull(ctx context.Context, arg Argument, show bool) (string, error) {
	return d.Run(ctx, "pull", arg, show)
}

// Remove runs `remove`.
func (d *Dispatcher) Remove(ctx context.Context, arg Argument, show bool) (string, error) {
	return d.Run(ctx, "remove", arg, show)
}

// Init runs `git init` and then `<tool> init -f`. The second step runs only
// if the first succeeds.
func (d *Dispatcher) Init(ctx context.Context, show bool) (string, error) {
	gitOut, err := d.runner.Run(ctx, d.dir, "git", "init")
	if err != nil {
		d.notifier.Fail(FailureText(err))
		return gitOut.Stdout, fmt.Errorf("git init: %w", err)
	}
	cmd := Build(d.tool, "init -f", None())
	toolOut, err := d.runner.Run(ctx, d.dir, d.tool, cmd.Argv()...)
	out := gitOut.Stdout + toolOut.Stdout
	if err != nil {
		d.notifier.Fail(FailureText(err))
		return out, fmt.Errorf("%s init: %w", d.tool, err)
	}
	if show {
		d.notifier.Notify(out)
	}
	return out, nil
}

// GCWorkspace removes cached data not used by the workspace, without prompting.
func (d *Dispatcher) GCWorkspace(ctx context.Context, show bool) (string, error) {
	return d.Run(ctx, "gc -w -f", None(), show)
}

// GCWorkspaceAndRemote removes cached data not used by the workspace from
// the local cache and the default remote, without prompting.
func (d *Dispatcher) GCWorkspaceAndRemote(ctx context.Context, show bool) (string, error) {
	return d.Run(ctx, "gc -w -c -f", None(), show)
}

// ListRemotes runs `remote list`, replaces the remote registry with the
// parsed records and returns them.
func (d *Dispatcher) ListRemotes(ctx context.Context, show bool) ([]RemoteRecord, error) {
	out, err := d.Run(ctx, "remote list", None(), show)
	if err != nil {
		return nil, err
	}
	records := ParseRemoteList(out)
	d.remotes.Replace(records)
	return records, nil
}

// Config runs `config <setting>`, e.g. "--local core.autostage true".
func (d *Dispatcher) Config(ctx context.Context, setting string, show bool) (string, error) {
	return d.Run(ctx, "config "+setting, None(), show)
}

// SetAutoStage toggles the tool's core.autostage option for the local repo.
func (d *Dispatcher) SetAutoStage(ctx context.Context, on bool) error {
	_, err := d.Config(ctx, "--local core.autostage "+strconv.FormatBool(on), false)
	return err
}

// Run builds and runs an arbitrary operation.
func (d *Dispatcher) Run(ctx context.Context, operation string, arg Argument, show bool) (string, error) {
	cmd := Build(d.tool, operation, arg)
	out, err := d.runner.Run(ctx, d.dir, d.tool, cmd.Argv()...)
	if err != nil {
		d.notifier.Fail(FailureText(err))
		return out.Stdout, err
	}
	if show {
		d.notifier.Notify(out.Stdout)
	}
	return out.Stdout, nil
}

// Go runs fn in a new goroutine and returns a Task tracking it.
func (d *Dispatcher) Go(ctx context.Context, name string, fn func(context.Context) (string, error)) *Task {
	t := &Task{
		ID:   uuid.New().String(),
		Name: name,
		done: make(chan struct{}),
	}
	log := d.log.With(zap.String("task_id", t.ID), zap.String("task", name))
	log.Debug("task started")
	go func() {
		defer close(t.done)
		t.out, t.err = fn(ctx)
		if t.err != nil {
			log.Debug("task failed", zap.Error(t.err))
			return
		}
		log.Debug("task finished", zap.Int("output_bytes", len(strings.TrimSpace(t.out))))
	}()
	return t
}

type discard struct{}

func (discard) Notify(string) {}
func (discard) Fail(string)   {}
