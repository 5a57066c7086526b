// Package config resolves build-time generator settings from flags and the
// environment.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the environment prefix for every generator setting.
const EnvPrefix = "WEBSRC"

// Setting keys.
const (
	KeyTarget    = "target"
	KeyScript    = "script"
	KeyOutDir    = "out_dir"
	KeyGstPrefix = "gst_prefix"
	KeyForce     = "force"
	KeyLogLevel  = "log_level"
	KeyLogFormat = "log_format"
)

// DefaultScript is the probing tool path relative to the package that runs
// go generate.
const DefaultScript = "../../scripts/gstplugins.py"

// GeneratorConfig is the resolved configuration of one generator run.
type GeneratorConfig struct {
	Target    string `mapstructure:"target"`
	Script    string `mapstructure:"script"`
	OutDir    string `mapstructure:"out_dir"`
	GstPrefix string `mapstructure:"gst_prefix"`
	Force     bool   `mapstructure:"force"`
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// Loader binds flags and environment variables through viper.
type Loader struct {
	viper *viper.Viper
}

// NewLoader creates a loader with defaults and WEBSRC_* environment bindings.
func NewLoader() (*Loader, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyScript, DefaultScript)
	v.SetDefault(KeyOutDir, ".")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")

	// The target falls back to what go generate exports.
	if err := v.BindEnv(KeyTarget, EnvPrefix+"_TARGET"); err != nil {
		return nil, fmt.Errorf("failed to bind %s_TARGET: %w", EnvPrefix, err)
	}
	if err := v.BindEnv(KeyScript, EnvPrefix+"_PROBE_SCRIPT"); err != nil {
		return nil, fmt.Errorf("failed to bind %s_PROBE_SCRIPT: %w", EnvPrefix, err)
	}
	if err := v.BindEnv("goos", "GOOS"); err != nil {
		return nil, fmt.Errorf("failed to bind GOOS: %w", err)
	}
	if err := v.BindEnv("goarch", "GOARCH"); err != nil {
		return nil, fmt.Errorf("failed to bind GOARCH: %w", err)
	}

	return &Loader{viper: v}, nil
}

// BindFlags lets command-line flags take precedence over the environment.
// Flag names use dashes; keys use underscores.
func (l *Loader) BindFlags(flags *pflag.FlagSet) error {
	var errs []error
	flags.VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if err := l.viper.BindPFlag(key, f); err != nil {
			errs = append(errs, fmt.Errorf("bind flag %s: %w", f.Name, err))
		}
	})
	return errors.Join(errs...)
}

// Load returns the resolved configuration.
func (l *Loader) Load() (*GeneratorConfig, error) {
	var cfg GeneratorConfig
	if err := l.viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal generator config: %w", err)
	}

	if cfg.Target == "" {
		cfg.Target = DefaultTarget(l.viper.GetString("goos"), l.viper.GetString("goarch"))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DefaultTarget formats "<goos>-<goarch>", filling blanks from the running
// platform.
func DefaultTarget(goos, goarch string) string {
	if goos == "" {
		goos = runtime.GOOS
	}
	if goarch == "" {
		goarch = runtime.GOARCH
	}
	return goos + "-" + goarch
}

// Validate checks required fields.
func (c *GeneratorConfig) Validate() error {
	var errs []string
	if strings.TrimSpace(c.Script) == "" {
		errs = append(errs, "script must not be empty")
	}
	if strings.TrimSpace(c.OutDir) == "" {
		errs = append(errs, "out_dir must not be empty")
	}
	if _, arch, ok := strings.Cut(c.Target, "-"); !ok || arch == "" {
		errs = append(errs, fmt.Sprintf("target %q must be <goos>-<goarch>", c.Target))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid generator config: %s", strings.Join(errs, "; "))
	}
	return nil
}
