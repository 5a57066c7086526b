package deps

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/bnema/gstwebsrc/internal/application/port"
	"github.com/bnema/gstwebsrc/internal/logging"
)

// PythonOverrideEnv names the variable that pins the interpreter used to run
// the probing script.
const PythonOverrideEnv = "PYTHON3"

// InterpreterCandidates returns the interpreter names probed, in order, when
// no override is set.
func InterpreterCandidates(goos string) []string {
	if goos == "windows" {
		return []string{"python3.8.exe", "python38.exe", "python.exe"}
	}
	return []string{"python3.8", "python3", "python"}
}

// FindInterpreter resolves the interpreter for the probing script.
//
// PYTHON3 wins unconditionally when set to valid text; it is not probed.
// Otherwise the first candidate answering `--version` with exit status 0 is
// returned.
func FindInterpreter(ctx context.Context, runner port.CommandRunner, r port.EnvReader, goos string) (string, error) {
	log := logging.FromContext(ctx)

	if override, ok := r.LookupEnv(PythonOverrideEnv); ok && utf8.ValidString(override) {
		log.Debug().Str("interpreter", override).Msg("using interpreter override")
		return override, nil
	}

	candidates := InterpreterCandidates(goos)
	for _, name := range candidates {
		res, err := runner.Run(ctx, name, "--version")
		if err != nil || !res.Success() {
			log.Debug().Str("candidate", name).Err(err).Msg("interpreter candidate rejected")
			continue
		}
		log.Debug().Str("interpreter", name).Msg("found interpreter")
		return name, nil
	}

	return "", &port.DiscoveryError{
		Kind:  port.DiscoveryErrorKindToolNotFound,
		Tried: candidates,
	}
}

// DiscoverInput describes one probing run.
type DiscoverInput struct {
	Interpreter string
	Script      string
	Target      string
}

// Discover runs the probing script for a target and returns its standard
// output untouched. A tool that exits non-zero yields a
// DiscoveryErrorKindToolFailed error carrying both captured streams.
func Discover(ctx context.Context, runner port.CommandRunner, in DiscoverInput) ([]byte, error) {
	log := logging.FromContext(ctx)

	res, err := runner.Run(ctx, in.Interpreter, in.Script, in.Target)
	if err != nil {
		return nil, &port.DiscoveryError{
			Kind:     port.DiscoveryErrorKindToolFailed,
			Path:     in.Script,
			ExitCode: -1,
			Err:      err,
		}
	}
	if !res.Success() {
		return nil, &port.DiscoveryError{
			Kind:     port.DiscoveryErrorKindToolFailed,
			Path:     in.Script,
			ExitCode: res.ExitCode,
			Stdout:   lossy(res.Stdout),
			Stderr:   lossy(res.Stderr),
		}
	}

	log.Debug().
		Str("script", in.Script).
		Str("target", in.Target).
		Int("bytes", len(res.Stdout)).
		Msg("discovery tool finished")

	return res.Stdout, nil
}

func lossy(b []byte) string {
	return strings.ToValidUTF8(string(b), "�")
}

// Tool implements port.DiscoveryTool on top of a CommandRunner.
type Tool struct {
	runner port.CommandRunner
	env    port.EnvReader
	goos   string
}

var _ port.DiscoveryTool = (*Tool)(nil)

// NewTool creates a discovery tool. goos names the operating system the
// interpreter runs on, normally runtime.GOOS, never the build target.
func NewTool(runner port.CommandRunner, env port.EnvReader, goos string) *Tool {
	return &Tool{runner: runner, env: env, goos: goos}
}

// FindInterpreter resolves the interpreter for the tool's platform.
func (t *Tool) FindInterpreter(ctx context.Context) (string, error) {
	return FindInterpreter(ctx, t.runner, t.env, t.goos)
}

// Discover runs script for target with interpreter.
func (t *Tool) Discover(ctx context.Context, interpreter, script, target string) ([]byte, error) {
	return Discover(ctx, t.runner, DiscoverInput{
		Interpreter: interpreter,
		Script:      script,
		Target:      target,
	})
}
