package engineopts_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/gstwebsrc/internal/application/usecase"
	"github.com/bnema/gstwebsrc/internal/domain/entity"
	"github.com/bnema/gstwebsrc/internal/engineopts"
	"github.com/bnema/gstwebsrc/internal/infrastructure/env"
)

type countingStore struct {
	mu   sync.Mutex
	opts entity.EngineOptions
	sets int
}

func (s *countingStore) Options() entity.EngineOptions {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opts.Clone()
}

func (s *countingStore) SetOptions(opts entity.EngineOptions) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opts = opts
	s.sets++
}

func (s *countingStore) snapshot() (entity.EngineOptions, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opts.Clone(), s.sets
}

func newStore() *countingStore {
	opts := entity.DefaultEngineOptions()
	opts.Sandbox = true
	opts.ExitAfterLoad = true
	return &countingStore{opts: opts}
}

func TestInitializer_PublishesOnce(t *testing.T) {
	var ini engineopts.Initializer
	store := newStore()
	r := env.MapReader{usecase.EnvMultiprocess: "1"}

	_, ok := ini.Current()
	assert.False(t, ok)
	assert.Equal(t, engineopts.StateNotRun, ini.State())

	assert.True(t, ini.Init(context.Background(), store, r))
	assert.False(t, ini.Init(context.Background(), store, env.MapReader{usecase.EnvMultiprocess: "0"}))

	got, ok := ini.Current()
	require.True(t, ok)
	assert.True(t, got.Multiprocess)
	assert.True(t, got.Sandbox)
	assert.False(t, got.ExitAfterLoad)

	stored, sets := store.snapshot()
	assert.Equal(t, 1, sets)
	assert.Equal(t, got, stored)
	assert.Equal(t, 1, ini.Publishes())
	assert.Equal(t, engineopts.StateDone, ini.State())
}

func TestInitializer_ConcurrentCallers(t *testing.T) {
	var ini engineopts.Initializer
	store := newStore()
	r := env.MapReader{usecase.EnvSandbox: "0"}

	const callers = 64
	var published sync.Map
	g, ctx := errgroup.WithContext(context.Background())
	for i := range callers {
		g.Go(func() error {
			ran := ini.Init(ctx, store, r)
			published.Store(i, ran)

			// Every caller sees the published value on return.
			opts, ok := ini.Current()
			if !ok || opts.Sandbox {
				t.Errorf("caller %d returned before publication", i)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	var winners int
	published.Range(func(_, v any) bool {
		if v.(bool) {
			winners++
		}
		return true
	})
	assert.Equal(t, 1, winners)
	assert.Equal(t, 1, ini.Publishes())

	_, sets := store.snapshot()
	assert.Equal(t, 1, sets)
}

func TestInitializer_CurrentReturnsCopy(t *testing.T) {
	var ini engineopts.Initializer
	store := newStore()
	ini.Init(context.Background(), store, env.MapReader{})

	a, _ := ini.Current()
	a.Prefs["mutated"] = "yes"

	b, _ := ini.Current()
	assert.NotContains(t, b.Prefs, "mutated")
}
