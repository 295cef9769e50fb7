package dvc

import (
	"context"
)

// Task is a dispatched operation running in the background.
type Task struct {
	ID   string
	Name string

	done chan struct{}
	out  string
	err  error
}

// Done is closed when the task has finished.
func (t *Task) Done() <-chan struct{} { return t.done }

// Wait blocks until the task finishes or ctx is done.
func (t *Task) Wait(ctx context.Context) (string, error) {
	select {
	case <-t.Done():
		return t.Result()
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Result returns the task outcome. It must only be called after Done is closed.
func (t *Task) Result() (string, error) {
	return t.out, t.err
}
