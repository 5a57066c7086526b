// Command gstplugins-gen runs the plugin probing script for a build target
// and writes its output as zz_generated_gstplugins.go.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/bnema/gstwebsrc/internal/application/port"
	"github.com/bnema/gstwebsrc/internal/application/usecase"
	"github.com/bnema/gstwebsrc/internal/infrastructure/buildvars"
	"github.com/bnema/gstwebsrc/internal/infrastructure/codegen"
	"github.com/bnema/gstwebsrc/internal/infrastructure/config"
	"github.com/bnema/gstwebsrc/internal/infrastructure/deps"
	"github.com/bnema/gstwebsrc/internal/infrastructure/env"
	"github.com/bnema/gstwebsrc/internal/logging"
)

func main() {
	if err := newRootCmd(afero.NewOsFs(), os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(fs afero.Fs, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "gstplugins-gen",
		Short:         "Generate the GStreamer plugin list for a build target",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loader, err := config.NewLoader()
			if err != nil {
				return err
			}
			if err := loader.BindFlags(cmd.Flags()); err != nil {
				return err
			}
			cfg, err := loader.Load()
			if err != nil {
				fmt.Fprintln(stderr, err)
				return err
			}
			return run(cmd.Context(), fs, stderr, cfg)
		},
	}

	flags := cmd.Flags()
	flags.String("target", "", "build target as <goos>-<goarch> (env WEBSRC_TARGET, then GOOS/GOARCH)")
	flags.String("script", config.DefaultScript, "probing script (env WEBSRC_PROBE_SCRIPT)")
	flags.String("out-dir", ".", "directory receiving the generated file (env WEBSRC_OUT_DIR)")
	flags.String("gst-prefix", "", "install prefix of a non-system GStreamer (env WEBSRC_GST_PREFIX)")
	flags.Bool("force", false, "regenerate even when inputs are unchanged")
	flags.String("log-level", "info", "log level (env WEBSRC_LOG_LEVEL)")
	flags.String("log-format", "console", "log format: console or json (env WEBSRC_LOG_FORMAT)")

	cmd.SetErr(stderr)
	return cmd
}

func run(ctx context.Context, fs afero.Fs, stderr io.Writer, cfg *config.GeneratorConfig) error {
	runner := deps.NewExecRunner()
	runner.Env = deps.CommandEnvWithPrefix(cfg.GstPrefix)
	return generate(ctx, fs, stderr, cfg, env.NewOSReader(), runner)
}

func generate(
	ctx context.Context,
	fs afero.Fs,
	stderr io.Writer,
	cfg *config.GeneratorConfig,
	reader port.EnvReader,
	runner port.CommandRunner,
) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(cfg.LogLevel, logging.DefaultConfig().Level),
		Format:     cfg.LogFormat,
		TimeFormat: "15:04:05",
		Output:     stderr,
	})
	ctx = logging.WithTarget(logging.WithContext(ctx, logger), cfg.Target)
	log := logging.FromContext(ctx)

	if err := buildvars.FromEnv(reader).EmitDiagnostics(stderr); err != nil {
		return fmt.Errorf("emit diagnostics: %w", err)
	}

	source, err := afero.ReadFile(fs, cfg.Script)
	if err != nil {
		fmt.Fprintf(stderr, "cannot read probing script %s: %v\n", cfg.Script, err)
		return fmt.Errorf("read script: %w", err)
	}

	// The interpreter runs on this machine; the target only reaches the script.
	uc := usecase.NewGeneratePluginListUseCase(
		deps.NewTool(runner, reader, runtime.GOOS),
		codegen.NewWriter(fs, cfg.OutDir),
	)
	out, err := uc.Execute(ctx, usecase.GeneratePluginListInput{
		Script: cfg.Script,
		Target: cfg.Target,
		Stamp:  codegen.Stamp(source, cfg.Target),
		Force:  cfg.Force,
	})
	if err != nil {
		report(stderr, err)
		return err
	}

	if out.Skipped {
		log.Info().Str("path", out.Path).Msg("plugin list unchanged")
	}
	return nil
}

// report prints a failure the way a build step would: the tool's own output
// first, then the reason.
func report(w io.Writer, err error) {
	var derr *port.DiscoveryError
	if errors.As(err, &derr) && derr.Kind == port.DiscoveryErrorKindToolFailed {
		if derr.Stdout != "" {
			fmt.Fprintln(w, derr.Stdout)
		}
		if derr.Stderr != "" {
			fmt.Fprintln(w, derr.Stderr)
		}
		fmt.Fprintf(w, "%s exited with status %d\n", derr.Path, derr.ExitCode)
		if derr.Err != nil {
			fmt.Fprintln(w, derr.Err)
		}
		return
	}
	fmt.Fprintln(w, err)
}
