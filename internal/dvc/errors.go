package dvc

import (
	"errors"
	"fmt"
	"strings"
)

// SpawnError is returned when the subprocess could not be started at all,
// e.g. the tool is not installed or not executable.
type SpawnError struct {
	Cmd   string
	Cause error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("starting %s: %v", e.Cmd, e.Cause)
}

func (e *SpawnError) Unwrap() error { return e.Cause }

// ExitError is returned when the subprocess ran and exited with a non-zero status.
type ExitError struct {
	Cmd    string
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		return fmt.Sprintf("%s: exit status %d", e.Cmd, e.Code)
	}
	return fmt.Sprintf("%s: exit status %d: %s", e.Cmd, e.Code, msg)
}

// FailureText returns the text a user should see for err: the captured
// stderr of a failed subprocess, or the error text when stderr is empty.
func FailureText(err error) string {
	if err == nil {
		return ""
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) && strings.TrimSpace(exitErr.Stderr) != "" {
		return exitErr.Stderr
	}
	return err.Error()
}
