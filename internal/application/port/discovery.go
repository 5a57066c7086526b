package port

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// DiscoveryErrorKind describes the category of a build-time discovery failure.
type DiscoveryErrorKind string

const (
	DiscoveryErrorKindToolNotFound        DiscoveryErrorKind = "tool_not_found"
	DiscoveryErrorKindToolFailed          DiscoveryErrorKind = "tool_failed"
	DiscoveryErrorKindArtifactWriteFailed DiscoveryErrorKind = "artifact_write_failed"
)

var (
	// ErrDiscoveryToolNotFound indicates no interpreter candidate answered.
	ErrDiscoveryToolNotFound = errors.New("discovery tool not found")
	// ErrDiscoveryToolFailed indicates the probing tool exited non-zero.
	ErrDiscoveryToolFailed = errors.New("discovery tool failed")
	// ErrArtifactWriteFailed indicates the generated file could not be written.
	ErrArtifactWriteFailed = errors.New("artifact write failed")
)

// DiscoveryError wraps a fatal build-time discovery failure.
type DiscoveryError struct {
	Kind DiscoveryErrorKind
	// Tried lists every interpreter name probed, in order.
	Tried    []string
	Path     string
	ExitCode int
	Stdout   string
	Stderr   string
	Err      error
}

func (e *DiscoveryError) Error() string {
	if e == nil {
		return "discovery error"
	}
	switch e.Kind {
	case DiscoveryErrorKindToolNotFound:
		return fmt.Sprintf(
			"can't find python (tried %s)! Try fixing PATH or setting the PYTHON3 env var",
			strings.Join(e.Tried, ", "),
		)
	case DiscoveryErrorKindToolFailed:
		msg := fmt.Sprintf("discovery (%s): %s: exit status %d", e.Kind, e.Path, e.ExitCode)
		if e.Err != nil {
			msg += ": " + e.Err.Error()
		}
		if e.Stdout != "" {
			msg += "\n" + e.Stdout
		}
		if e.Stderr != "" {
			msg += "\n" + e.Stderr
		}
		return msg
	}
	msg := fmt.Sprintf("discovery (%s)", e.Kind)
	if e.Path != "" {
		msg += ": " + e.Path
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is matches the kind sentinels so callers can use errors.Is.
func (e *DiscoveryError) Is(target error) bool {
	if e == nil {
		return false
	}
	switch target {
	case ErrDiscoveryToolNotFound:
		return e.Kind == DiscoveryErrorKindToolNotFound
	case ErrDiscoveryToolFailed:
		return e.Kind == DiscoveryErrorKindToolFailed
	case ErrArtifactWriteFailed:
		return e.Kind == DiscoveryErrorKindArtifactWriteFailed
	}
	return false
}

func (e *DiscoveryError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// DiscoveryTool locates an interpreter and runs the probing script.
type DiscoveryTool interface {
	FindInterpreter(ctx context.Context) (string, error)
	Discover(ctx context.Context, interpreter, script, target string) ([]byte, error)
}

// ArtifactStore persists the generated plugin list and its input stamp.
type ArtifactStore interface {
	ArtifactPath() string
	Write(ctx context.Context, artifact []byte) error
	UpToDate(stamp string) (bool, error)
	WriteStamp(stamp string) error
}
