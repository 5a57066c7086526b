package gst

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/gstwebsrc/internal/application/port"
	"github.com/bnema/gstwebsrc/internal/domain/entity"
)

func TestHost_OptionsAreCopies(t *testing.T) {
	base := entity.DefaultEngineOptions()
	base.Prefs["a"] = "1"
	h := NewHost(base)

	base.Prefs["a"] = "2"
	got := h.Options()
	assert.Equal(t, "1", got.Prefs["a"])

	got.Prefs["a"] = "3"
	assert.Equal(t, "1", h.Options().Prefs["a"])

	next := h.Options()
	next.Sandbox = true
	h.SetOptions(next)
	assert.True(t, h.Options().Sandbox)
}

func TestHost_RegisterElement(t *testing.T) {
	h := NewHost(entity.DefaultEngineOptions())
	typ := port.ElementType{Name: "WebSrc", LongName: "Web source"}

	require.NoError(t, h.RegisterElement("websrc", port.RankNone, typ))
	require.NoError(t, h.RegisterElement("websrc", port.RankNone, typ))

	err := h.RegisterElement("websrc", port.RankPrimary, typ)
	require.Error(t, err)
	assert.ErrorIs(t, err, port.ErrElementConflict)

	assert.Error(t, h.RegisterElement("", port.RankNone, typ))

	require.NoError(t, h.RegisterElement("another", port.RankMarginal, typ))
	els := h.Elements()
	require.Len(t, els, 2)
	assert.Equal(t, "another", els[0].Name)
	assert.Equal(t, "websrc", els[1].Name)

	el, ok := h.Lookup("websrc")
	require.True(t, ok)
	assert.Equal(t, port.RankNone, el.Rank)
}

func TestHost_Logs(t *testing.T) {
	h := NewHost(entity.DefaultEngineOptions())
	h.Log(zerolog.DebugLevel, "one")
	h.Log(zerolog.InfoLevel, "two")

	logs := h.Logs()
	require.Len(t, logs, 2)
	assert.Equal(t, LogRecord{Category: DebugCategory, Level: zerolog.DebugLevel, Message: "one"}, logs[0])
	assert.Equal(t, "two", logs[1].Message)
}
