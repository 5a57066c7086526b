package config

import (
	"runtime"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("target", "", "")
	fs.String("script", DefaultScript, "")
	fs.String("out-dir", ".", "")
	fs.String("gst-prefix", "", "")
	fs.Bool("force", false, "")
	return fs
}

func TestLoader_Defaults(t *testing.T) {
	t.Setenv("WEBSRC_TARGET", "")
	t.Setenv("GOOS", "")
	t.Setenv("GOARCH", "")

	l, err := NewLoader()
	require.NoError(t, err)
	require.NoError(t, l.BindFlags(newFlags()))

	cfg, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, runtime.GOOS+"-"+runtime.GOARCH, cfg.Target)
	assert.Equal(t, DefaultScript, cfg.Script)
	assert.Equal(t, ".", cfg.OutDir)
	assert.False(t, cfg.Force)
}

func TestLoader_GoGenerateEnv(t *testing.T) {
	t.Setenv("WEBSRC_TARGET", "")
	t.Setenv("GOOS", "windows")
	t.Setenv("GOARCH", "arm64")

	l, err := NewLoader()
	require.NoError(t, err)

	cfg, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, "windows-arm64", cfg.Target)
}

func TestLoader_EnvAndFlagPrecedence(t *testing.T) {
	t.Setenv("WEBSRC_TARGET", "linux-riscv64")
	t.Setenv("WEBSRC_OUT_DIR", "/tmp/out")
	t.Setenv("WEBSRC_PROBE_SCRIPT", "/opt/probe.py")

	l, err := NewLoader()
	require.NoError(t, err)
	fs := newFlags()
	require.NoError(t, l.BindFlags(fs))

	cfg, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, "linux-riscv64", cfg.Target)
	assert.Equal(t, "/tmp/out", cfg.OutDir)
	assert.Equal(t, "/opt/probe.py", cfg.Script)

	require.NoError(t, fs.Parse([]string{"--target", "darwin-arm64", "--force"}))
	cfg, err = l.Load()
	require.NoError(t, err)
	assert.Equal(t, "darwin-arm64", cfg.Target)
	assert.True(t, cfg.Force)
}

func TestGeneratorConfig_Validate(t *testing.T) {
	cfg := GeneratorConfig{Target: "linux", Script: "", OutDir: "."}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "script must not be empty")
	assert.Contains(t, err.Error(), "<goos>-<goarch>")
}

func TestDefaultTarget(t *testing.T) {
	assert.Equal(t, "linux-amd64", DefaultTarget("linux", "amd64"))
	assert.Equal(t, runtime.GOOS+"-arm", DefaultTarget("", "arm"))
}
