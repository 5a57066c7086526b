package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/gstwebsrc/internal/application/port"
	"github.com/bnema/gstwebsrc/internal/application/usecase"
	"github.com/bnema/gstwebsrc/internal/domain/entity"
	"github.com/bnema/gstwebsrc/internal/infrastructure/env"
)

func baselineWith(mutate func(*entity.EngineOptions)) entity.EngineOptions {
	opts := entity.DefaultEngineOptions()
	opts.URL = "https://example.org"
	opts.UserAgent = "host-agent"
	opts.UserStylesheets = []string{"host.css"}
	opts.Prefs["layout.css.devPixelsPerPx"] = "2"
	if mutate != nil {
		mutate(&opts)
	}
	return opts
}

func TestReconcileOptions_MultiprocessOverrideKeepsSandbox(t *testing.T) {
	baseline := baselineWith(func(o *entity.EngineOptions) { o.Sandbox = true })

	got := usecase.ReconcileOptions(baseline, env.MapReader{usecase.EnvMultiprocess: "1"})

	assert.True(t, got.Multiprocess)
	assert.True(t, got.Sandbox)
	assert.False(t, got.ExitAfterLoad)
}

func TestReconcileOptions_Defaults(t *testing.T) {
	tests := []struct {
		name     string
		baseline entity.EngineOptions
		env      env.MapReader
		wantMP   bool
		wantSB   bool
	}{
		{
			name:     "unset env resets multiprocess",
			baseline: baselineWith(func(o *entity.EngineOptions) { o.Multiprocess = true }),
			env:      env.MapReader{},
			wantMP:   false,
			wantSB:   false,
		},
		{
			name:     "unset env keeps host sandbox",
			baseline: baselineWith(func(o *entity.EngineOptions) { o.Sandbox = true }),
			env:      env.MapReader{},
			wantMP:   false,
			wantSB:   true,
		},
		{
			name:     "sandbox disabled by env",
			baseline: baselineWith(func(o *entity.EngineOptions) { o.Sandbox = true }),
			env:      env.MapReader{usecase.EnvSandbox: "false"},
			wantMP:   false,
			wantSB:   false,
		},
		{
			name:     "malformed sandbox falls back to host value",
			baseline: baselineWith(func(o *entity.EngineOptions) { o.Sandbox = true }),
			env:      env.MapReader{usecase.EnvSandbox: "nope"},
			wantMP:   false,
			wantSB:   true,
		},
		{
			name:     "malformed multiprocess falls back to false",
			baseline: baselineWith(nil),
			env:      env.MapReader{usecase.EnvMultiprocess: "256"},
			wantMP:   false,
			wantSB:   false,
		},
		{
			name:     "both enabled",
			baseline: baselineWith(nil),
			env:      env.MapReader{usecase.EnvMultiprocess: "true", usecase.EnvSandbox: "7"},
			wantMP:   true,
			wantSB:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := usecase.ReconcileOptions(tt.baseline, tt.env)
			assert.Equal(t, tt.wantMP, got.Multiprocess)
			assert.Equal(t, tt.wantSB, got.Sandbox)
			assert.False(t, got.ExitAfterLoad)
		})
	}
}

func TestReconcileOptions_ExitAfterLoadAlwaysFalse(t *testing.T) {
	envs := []env.MapReader{
		{},
		{usecase.EnvMultiprocess: "1", usecase.EnvSandbox: "1"},
		{"WEBSRC_GST_EXIT_AFTER_LOAD": "1", "EXIT_AFTER_LOAD": "true"},
	}

	for _, e := range envs {
		for _, exit := range []bool{true, false} {
			baseline := baselineWith(func(o *entity.EngineOptions) { o.ExitAfterLoad = exit })
			assert.False(t, usecase.ReconcileOptions(baseline, e).ExitAfterLoad)
		}
	}
}

func TestReconcileOptions_PassThroughAndNoAliasing(t *testing.T) {
	baseline := baselineWith(func(o *entity.EngineOptions) { o.ExitAfterLoad = true })

	got := usecase.ReconcileOptions(baseline, env.MapReader{usecase.EnvMultiprocess: "1"})

	assert.Equal(t, baseline.URL, got.URL)
	assert.Equal(t, baseline.UserAgent, got.UserAgent)
	assert.Equal(t, baseline.WindowSize, got.WindowSize)
	assert.Equal(t, baseline.UserStylesheets, got.UserStylesheets)
	assert.Equal(t, baseline.Prefs, got.Prefs)

	got.Prefs["layout.css.devPixelsPerPx"] = "3"
	got.UserStylesheets[0] = "other.css"
	assert.Equal(t, "2", baseline.Prefs["layout.css.devPixelsPerPx"])
	assert.Equal(t, "host.css", baseline.UserStylesheets[0])
	assert.True(t, baseline.ExitAfterLoad, "baseline must not be mutated")
}

func TestReconcileOptions_Idempotent(t *testing.T) {
	baseline := baselineWith(func(o *entity.EngineOptions) { o.Sandbox = true })
	e := env.MapReader{usecase.EnvMultiprocess: "1"}

	assert.Equal(t, usecase.ReconcileOptions(baseline, e), usecase.ReconcileOptions(baseline, e))
}

func TestReconcileOptionsUseCase_Execute(t *testing.T) {
	baseline := baselineWith(func(o *entity.EngineOptions) { o.Sandbox = true })
	uc := usecase.NewReconcileOptionsUseCase(env.MapReader{
		usecase.EnvMultiprocess: "yes",
	})

	out, err := uc.Execute(context.Background(), usecase.ReconcileOptionsInput{Baseline: baseline})
	require.NoError(t, err)
	require.Len(t, out.Overrides, 2)

	mp := out.Overrides[0]
	assert.Equal(t, usecase.EnvMultiprocess, mp.Variable)
	assert.True(t, mp.Set)
	assert.Equal(t, "yes", mp.Raw)
	assert.False(t, mp.Value)
	assert.True(t, errors.Is(mp.Err, port.ErrEnvParse))

	sb := out.Overrides[1]
	assert.Equal(t, usecase.EnvSandbox, sb.Variable)
	assert.False(t, sb.Set)
	assert.True(t, sb.Default)
	assert.True(t, sb.Value)
	assert.NoError(t, sb.Err)

	assert.False(t, out.Reconciled.Multiprocess)
	assert.True(t, out.Reconciled.Sandbox)
	assert.Equal(t, baseline, out.Baseline)
}
