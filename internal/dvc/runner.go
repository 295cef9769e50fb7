package dvc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/fbkclanna/vaultdvc/internal/metrics"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

// waitDelay bounds how long Run waits for output pipes after the process
// was killed, e.g. when it left children holding them open.
const waitDelay = 2 * time.Second

// Output is the captured result of a successful subprocess.
type Output struct {
	Stdout string
	Stderr string
}

// Runner executes tool subprocesses. At most jobs subprocesses run at once;
// further calls wait for a free slot.
type Runner struct {
	sem *semaphore.Weighted
	log *zap.Logger
}

// NewRunner creates a runner allowing jobs concurrent subprocesses.
// jobs <= 0 removes the bound.
func NewRunner(jobs int, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Runner{log: log}
	if jobs > 0 {
		r.sem = semaphore.NewWeighted(int64(jobs))
	}
	return r
}

// Run executes name with args in dir and returns its captured output.
// It succeeds only on exit status zero. A non-zero exit returns *ExitError
// carrying stderr; a failure to start returns *SpawnError.
func (r *Runner) Run(ctx context.Context, dir, name string, args ...string) (Output, error) {
	if r.sem != nil {
		if err := r.sem.Acquire(ctx, 1); err != nil {
			return Output{}, fmt.Errorf("waiting to run %s: %w", name, err)
		}
		defer r.sem.Release(1)
	}

	display := strings.TrimSpace(name + " " + strings.Join(args, " "))
	operation := ""
	if len(args) > 0 {
		operation = args[0]
	}

	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // argv is composed by the dispatcher, no shell involved
	cmd.Dir = dir
	cmd.WaitDelay = waitDelay
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.log.Debug("running command",
		zap.String("operation", operation),
		zap.Strings("argv", append([]string{name}, args...)),
		zap.String("dir", dir),
	)
	metrics.CommandStarted()
	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	out := Output{Stdout: stdout.String(), Stderr: stderr.String()}
	if err == nil {
		metrics.CommandFinished(name, operation, "ok", elapsed)
		r.log.Debug("command finished", zap.String("cmd", display), zap.Duration("elapsed", elapsed))
		return out, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		metrics.CommandFinished(name, operation, "canceled", elapsed)
		return out, fmt.Errorf("%s: %w", display, ctxErr)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		metrics.CommandFinished(name, operation, "exit_error", elapsed)
		r.log.Warn("command failed",
			zap.String("cmd", display),
			zap.Int("exit_code", exitErr.ExitCode()),
			zap.String("stderr", strings.TrimSpace(out.Stderr)),
		)
		return out, &ExitError{Cmd: display, Code: exitErr.ExitCode(), Stderr: out.Stderr}
	}

	metrics.CommandFinished(name, operation, "spawn_error", elapsed)
	r.log.Warn("command could not start", zap.String("cmd", display), zap.Error(err))
	return out, &SpawnError{Cmd: name, Cause: err}
}
