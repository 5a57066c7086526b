// Package cmd provides Cobra CLI commands for gstwebsrc.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/gstwebsrc/internal/cli"
	"github.com/bnema/gstwebsrc/internal/domain/build"
	"github.com/bnema/gstwebsrc/internal/infrastructure/env"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "gstwebsrc",
		Short: "Inspect the webkitwebsrc GStreamer plugin",
		Long: `gstwebsrc - operator tooling for the webkitwebsrc source element.

The plugin renders web pages into a video stream. These commands load it
into an in-process host and explain how it will configure the web engine.

Environment:
  WEBSRC_GST_MULTIPROCESS  run content in separate processes (default false)
  WEBSRC_GST_SANDBOX       sandbox content processes (default: host setting)

Both accept "true", "false" or an integer 0-255 where non-zero is true.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}

			app = cli.NewApp(env.NewOSReader(), cmd.OutOrStdout())
			app.BuildInfo = buildInfo
			return nil
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
