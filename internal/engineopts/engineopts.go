package engineopts

import (
	"context"
	"sync/atomic"

	"github.com/bnema/gstwebsrc/internal/application/port"
	"github.com/bnema/gstwebsrc/internal/application/usecase"
	"github.com/bnema/gstwebsrc/internal/domain/entity"
	"github.com/bnema/gstwebsrc/internal/logging"
)

// Initializer owns one published option set and the guard protecting it.
type Initializer struct {
	guard     Guard
	published atomic.Pointer[entity.EngineOptions]
	publishes atomic.Int32
}

var process Initializer

// Init reconciles the store's options with the environment and installs the
// result, once per Initializer. It returns true for the single call that
// published; every caller returns after publication is complete.
func (i *Initializer) Init(ctx context.Context, store port.OptionsStore, r port.EnvReader) bool {
	return i.guard.Do(func() {
		log := logging.FromContext(ctx)

		original := store.Options()
		log.Debug().Interface("options", original).Msg("original engine options")

		cfg := usecase.ReconcileOptions(original, r)
		log.Info().Interface("options", cfg).Msg("reconfigured engine options")

		store.SetOptions(cfg.Clone())
		i.published.Store(&cfg)
		i.publishes.Add(1)
	})
}

// Current returns a copy of the published options. ok is false until the
// first Init has completed.
func (i *Initializer) Current() (opts entity.EngineOptions, ok bool) {
	p := i.published.Load()
	if p == nil {
		return entity.EngineOptions{}, false
	}
	return p.Clone(), true
}

// Publishes reports how many times options were published. It never
// exceeds one.
func (i *Initializer) Publishes() int {
	return int(i.publishes.Load())
}

// State exposes the guard's lifecycle.
func (i *Initializer) State() State {
	return i.guard.State()
}

// Process returns the process-wide initializer.
func Process() *Initializer {
	return &process
}
