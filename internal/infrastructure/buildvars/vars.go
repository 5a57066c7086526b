// Package buildvars inspects the build environment for variables that follow
// the project's build-flag naming convention.
//
// Every build variable starts with Prefix. Feature switches additionally
// carry the FEATURE_ segment followed by the uppercased feature name with
// hyphens replaced by underscores, e.g. WEBSRC_BUILD_FEATURE_MEDIA_GSTREAMER.
package buildvars

import (
	"fmt"
	"io"
	"strings"

	"github.com/bnema/gstwebsrc/internal/application/port"
)

const (
	Prefix        = "WEBSRC_BUILD_"
	FeaturePrefix = Prefix + "FEATURE_"
)

// Var is a single name/value pair from the environment.
type Var struct {
	Key   string
	Value string
}

// Vars is the set of prefixed variables captured from an environment.
// Enumeration order is unspecified.
type Vars map[string]string

// FromEnv collects every variable carrying Prefix.
func FromEnv(r port.EnvReader) Vars {
	vars := Vars{}
	for _, kv := range r.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(k, Prefix) {
			continue
		}
		vars[k] = v
	}
	return vars
}

// All returns every prefixed variable.
func (vs Vars) All() []Var {
	out := make([]Var, 0, len(vs))
	for k, v := range vs {
		out = append(out, Var{Key: k, Value: v})
	}
	return out
}

// Features returns only the feature switches. It is recomputed on each call.
func (vs Vars) Features() []Var {
	var out []Var
	for k, v := range vs {
		if strings.HasPrefix(k, FeaturePrefix) {
			out = append(out, Var{Key: k, Value: v})
		}
	}
	return out
}

// HasFeature reports whether the named feature is switched on.
func (vs Vars) HasFeature(name string) bool {
	_, ok := vs[FeatureKey(name)]
	return ok
}

// FeatureKey returns the environment variable name for a feature.
func FeatureKey(name string) string {
	return FeaturePrefix + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}

// FeatureName strips FeaturePrefix from a feature variable key.
func FeatureName(key string) string {
	return strings.TrimPrefix(key, FeaturePrefix)
}

// EmitDiagnostics writes one warning line per feature switch, or a single
// "no features found" line, followed by one line per prefixed variable name.
func (vs Vars) EmitDiagnostics(w io.Writer) error {
	features := vs.Features()
	if len(features) == 0 {
		if _, err := fmt.Fprintln(w, "warning: no features found"); err != nil {
			return err
		}
	}
	for _, f := range features {
		if _, err := fmt.Fprintf(w, "warning: %s=%s\n", f.Key, f.Value); err != nil {
			return err
		}
	}
	for k := range vs {
		if _, err := fmt.Fprintf(w, "warning: %s\n", k); err != nil {
			return err
		}
	}
	return nil
}
