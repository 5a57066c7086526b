package port

import "context"

//go:generate mockgen -source=command.go -destination=mocks/mock_command_runner.go -package=mocks

// CommandResult holds the captured output of a finished process.
type CommandResult struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Success reports whether the process exited with status zero.
func (r *CommandResult) Success() bool {
	return r != nil && r.ExitCode == 0
}

// CommandRunner runs an external program to completion.
// A non-nil error means the process could not be started; a process that
// ran and failed is reported through CommandResult.ExitCode instead.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (*CommandResult, error)
}
