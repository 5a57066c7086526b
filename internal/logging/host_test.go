package logging

import (
	"context"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	mu      sync.Mutex
	levels  []zerolog.Level
	records []string
}

func (s *recordingSink) Log(level zerolog.Level, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.levels = append(s.levels, level)
	s.records = append(s.records, message)
}

func TestHostLogHandler_RoutesRecordsToSink(t *testing.T) {
	var h HostLogHandler
	sink := &recordingSink{}

	logger := h.Install(context.Background(), sink)
	logger.Debug().Str("element", "webkitwebsrc").Msg("Registering plugin")

	require.Len(t, sink.records, 1)
	assert.Equal(t, zerolog.DebugLevel, sink.levels[0])
	assert.Contains(t, sink.records[0], `"message":"Registering plugin"`)
	assert.Contains(t, sink.records[0], `"element":"webkitwebsrc"`)
	assert.NotContains(t, sink.records[0], "\n")
}

func TestHostLogHandler_FirstSinkWins(t *testing.T) {
	var h HostLogHandler
	first := &recordingSink{}
	second := &recordingSink{}

	h.Install(context.Background(), first)
	logger := h.Install(context.Background(), second)
	logger.Info().Msg("hello")

	assert.Len(t, first.records, 1)
	assert.Empty(t, second.records)
}

func TestHostLogHandler_DropsTrace(t *testing.T) {
	var h HostLogHandler
	sink := &recordingSink{}

	logger := h.Install(context.Background(), sink)
	logger.Trace().Msg("too chatty")

	assert.Empty(t, sink.records)
}
