// Package engineopts publishes the embedded engine's reconciled options
// exactly once per process.
package engineopts

import (
	"errors"
	"sync"
	"sync/atomic"
)

// State is the lifecycle of a Guard.
type State uint32

const (
	StateNotRun State = iota
	StateRunning
	StateDone
	// StatePoisoned means the first run panicked before completing.
	StatePoisoned
)

func (s State) String() string {
	switch s {
	case StateNotRun:
		return "not-run"
	case StateRunning:
		return "running"
	case StateDone:
		return "done"
	case StatePoisoned:
		return "poisoned"
	}
	return "unknown"
}

// ErrPoisoned is the panic value seen by callers of a Guard whose first run
// panicked.
var ErrPoisoned = errors.New("engineopts: initialization panicked earlier")

// Guard runs a function at most once. Unlike sync.Once it exposes its state
// and callers that arrive mid-run block on a condition variable until the
// run finishes.
//
// The zero value is ready to use.
type Guard struct {
	done  atomic.Bool
	mu    sync.Mutex
	cond  *sync.Cond
	state State
}

// Do runs fn if no call has run it yet and reports whether this call did.
// Every call returns only after the first run has completed, so effects of
// fn are visible to all returning callers.
func (g *Guard) Do(fn func()) bool {
	if g.done.Load() {
		return false
	}

	g.mu.Lock()
	if g.cond == nil {
		g.cond = sync.NewCond(&g.mu)
	}
	for g.state == StateRunning {
		g.cond.Wait()
	}
	switch g.state {
	case StateDone:
		g.mu.Unlock()
		return false
	case StatePoisoned:
		g.mu.Unlock()
		panic(ErrPoisoned)
	}
	g.state = StateRunning
	g.mu.Unlock()

	completed := false
	defer func() {
		g.mu.Lock()
		if completed {
			g.state = StateDone
			g.done.Store(true)
		} else {
			g.state = StatePoisoned
		}
		g.cond.Broadcast()
		g.mu.Unlock()
	}()

	fn()
	completed = true
	return true
}

// State returns the guard's current state.
func (g *Guard) State() State {
	if g.done.Load() {
		return StateDone
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}
