package env_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/gstwebsrc/internal/infrastructure/env"
)

func TestMapReader(t *testing.T) {
	r := env.MapReader{"A": "1", "B": "x=y"}

	v, ok := r.LookupEnv("A")
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	_, ok = r.LookupEnv("C")
	assert.False(t, ok)

	assert.ElementsMatch(t, []string{"A=1", "B=x=y"}, r.Environ())
}

func TestSnapshot(t *testing.T) {
	t.Setenv("WEBSRC_SNAPSHOT_TEST", "a=b")

	snap := env.Snapshot(env.NewOSReader())
	assert.Equal(t, "a=b", snap["WEBSRC_SNAPSHOT_TEST"])

	round := env.Snapshot(env.MapReader{"K": "v=w"})
	assert.Equal(t, env.MapReader{"K": "v=w"}, round)
}
