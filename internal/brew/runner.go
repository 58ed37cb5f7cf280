package brew

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// Runner executes one subprocess and captures its output. The real
// implementation shells out; tests substitute a fake.
type Runner interface {
	Run(ctx context.Context, bin string, args ...string) (Result, error)
}

// ExecRunner runs commands with os/exec. Context cancellation kills the
// child, which only happens on process shutdown; in-flight work is never
// canceled for staleness.
type ExecRunner struct{}

// Ensure ExecRunner implements Runner at compile time.
var _ Runner = ExecRunner{}

// Run executes bin with args and captures both output streams. A non-zero
// exit is reported through Result.Success, not the error value; the error
// covers spawn failures only.
func (ExecRunner) Run(ctx context.Context, bin string, args ...string) (Result, error) {
	cmd := exec.CommandContext(ctx, bin, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{
		Stdout:  stdout.String(),
		Stderr:  stderr.String(),
		Success: err == nil,
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// The command ran and exited non-zero.
			return res, nil
		}
		return res, err
	}
	return res, nil
}
