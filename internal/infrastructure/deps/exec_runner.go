// Package deps locates and runs the external tools the build depends on.
package deps

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/bnema/gstwebsrc/internal/application/port"
)

// ExecRunner implements port.CommandRunner with os/exec.
type ExecRunner struct {
	// Env is the child environment; nil inherits the current process's.
	Env []string
	Dir string
}

// NewExecRunner creates a runner that inherits the process environment.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run starts name with args and waits for it, capturing both streams.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (*port.CommandResult, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = r.Env
	cmd.Dir = r.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := &port.CommandResult{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return nil, fmt.Errorf("run %s: %w", name, err)
	}
	return result, nil
}

var _ port.CommandRunner = (*ExecRunner)(nil)
