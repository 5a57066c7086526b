// Package gst provides an in-process stand-in for the media framework host:
// an option store, a debug log category and an element registry.
package gst

import (
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/bnema/gstwebsrc/internal/application/port"
	"github.com/bnema/gstwebsrc/internal/domain/entity"
)

// DebugCategory is the log category the plugin writes to.
const DebugCategory = "webkitwebsrc"

// LogRecord is one message received on the debug category.
type LogRecord struct {
	Category string
	Level    zerolog.Level
	Message  string
}

// Element is a registered element factory.
type Element struct {
	Name string           `json:"name"`
	Rank port.Rank        `json:"rank"`
	Type port.ElementType `json:"type"`
}

// Host implements port.PluginHost in memory.
type Host struct {
	mu       sync.RWMutex
	opts     entity.EngineOptions
	elements map[string]Element

	logMu sync.Mutex
	logs  []LogRecord
}

var _ port.PluginHost = (*Host)(nil)

// NewHost creates a host whose option store starts at baseline.
func NewHost(baseline entity.EngineOptions) *Host {
	return &Host{
		opts:     baseline.Clone(),
		elements: make(map[string]Element),
	}
}

// Options returns a copy of the installed options.
func (h *Host) Options() entity.EngineOptions {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.opts.Clone()
}

// SetOptions replaces the installed options.
func (h *Host) SetOptions(opts entity.EngineOptions) {
	h.mu.Lock()
	h.opts = opts.Clone()
	h.mu.Unlock()
}

// Log records message on DebugCategory.
func (h *Host) Log(level zerolog.Level, message string) {
	h.logMu.Lock()
	h.logs = append(h.logs, LogRecord{Category: DebugCategory, Level: level, Message: message})
	h.logMu.Unlock()
}

// Logs returns the records received so far, oldest first.
func (h *Host) Logs() []LogRecord {
	h.logMu.Lock()
	defer h.logMu.Unlock()
	out := make([]LogRecord, len(h.logs))
	copy(out, h.logs)
	return out
}

// RegisterElement adds a factory. Registering the same name again with an
// identical rank and type is a no-op.
func (h *Host) RegisterElement(name string, rank port.Rank, typ port.ElementType) error {
	if name == "" {
		return fmt.Errorf("register element: empty name")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	el := Element{Name: name, Rank: rank, Type: typ}
	if prev, ok := h.elements[name]; ok {
		if prev == el {
			return nil
		}
		return fmt.Errorf("register %q: %w", name, port.ErrElementConflict)
	}
	h.elements[name] = el
	return nil
}

// Lookup returns the element registered under name.
func (h *Host) Lookup(name string) (Element, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	el, ok := h.elements[name]
	return el, ok
}

// Elements lists registered elements sorted by name.
func (h *Host) Elements() []Element {
	h.mu.RLock()
	out := make([]Element, 0, len(h.elements))
	for _, el := range h.elements {
		out = append(out, el)
	}
	h.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
