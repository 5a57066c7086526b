// Package cli holds the operator CLI's shared dependencies.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/bnema/gstwebsrc/internal/application/port"
	"github.com/bnema/gstwebsrc/internal/cli/styles"
	"github.com/bnema/gstwebsrc/internal/domain/build"
	"github.com/bnema/gstwebsrc/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Theme     *styles.Theme
	BuildInfo build.Info
	Env       port.EnvReader
	Out       io.Writer

	ctx context.Context
}

// NewApp creates the CLI application. Logs go to stderr at warn level
// unless WEBSRC_LOG_LEVEL says otherwise.
func NewApp(env port.EnvReader, out io.Writer) *App {
	level, ok := env.LookupEnv("WEBSRC_LOG_LEVEL")
	if !ok || level == "" {
		level = "warn"
	}
	format, _ := env.LookupEnv("WEBSRC_LOG_FORMAT")

	logger := logging.NewFromConfigValues(level, format)
	if out == nil {
		out = os.Stdout
	}

	return &App{
		Theme: styles.NewTheme(),
		Env:   env,
		Out:   out,
		ctx:   logging.WithContext(context.Background(), logger),
	}
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
