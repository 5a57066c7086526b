package port

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/bnema/gstwebsrc/internal/domain/entity"
)

// OptionsStore is the host engine's global option store.
type OptionsStore interface {
	// Options returns a copy of the currently installed options.
	Options() entity.EngineOptions
	// SetOptions replaces the installed options.
	SetOptions(opts entity.EngineOptions)
}

// LogSink receives formatted log records on the host's debug category.
type LogSink interface {
	Log(level zerolog.Level, message string)
}

// Rank is the autoplugging rank of a registered element.
type Rank int

const (
	RankNone      Rank = 0
	RankMarginal  Rank = 64
	RankSecondary Rank = 128
	RankPrimary   Rank = 256
)

// ElementType describes an element implementation offered to the host.
type ElementType struct {
	Name        string `json:"name"`
	LongName    string `json:"long_name"`
	Klass       string `json:"klass"`
	Description string `json:"description"`
	Author      string `json:"author"`
}

// ErrElementConflict is returned when a name is registered again with a
// different rank or type.
var ErrElementConflict = errors.New("element already registered")

// ElementRegistry registers element factories with the host.
type ElementRegistry interface {
	RegisterElement(name string, rank Rank, typ ElementType) error
}

// PluginHost is everything the plugin entrypoint needs from its host.
type PluginHost interface {
	OptionsStore
	LogSink
	ElementRegistry
}
