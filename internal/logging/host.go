package logging

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/bnema/gstwebsrc/internal/application/port"
)

// HostLogHandler routes engine log records into the host's log sink.
// The first installed sink wins for the handler's lifetime.
type HostLogHandler struct {
	once   sync.Once
	logger zerolog.Logger
}

var defaultHostHandler HostLogHandler

// InstallHostLogHandler installs sink as the process-wide destination for
// engine logs and returns the logger bound to it. Later calls return the
// logger of the first installation.
func InstallHostLogHandler(ctx context.Context, sink port.LogSink) zerolog.Logger {
	return defaultHostHandler.Install(ctx, sink)
}

// DefaultHostLogHandler returns the process-wide handler.
func DefaultHostLogHandler() *HostLogHandler {
	return &defaultHostHandler
}

// Install binds sink at debug level on first use.
func (h *HostLogHandler) Install(ctx context.Context, sink port.LogSink) zerolog.Logger {
	log := FromContext(ctx)

	h.once.Do(func() {
		h.logger = zerolog.New(sinkWriter{sink: sink}).
			Level(zerolog.DebugLevel).
			With().
			Timestamp().
			Logger()

		log.Debug().Msg("host log handler installed")
	})

	return h.logger
}

// sinkWriter adapts a port.LogSink to zerolog.LevelWriter.
type sinkWriter struct {
	sink port.LogSink
}

func (w sinkWriter) Write(p []byte) (int, error) {
	return w.WriteLevel(zerolog.NoLevel, p)
}

func (w sinkWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	w.sink.Log(level, strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
