// Package env exposes the process environment behind port.EnvReader.
package env

import (
	"os"
	"strings"

	"github.com/bnema/gstwebsrc/internal/application/port"
)

// OSReader reads the live process environment.
type OSReader struct{}

// NewOSReader creates a reader over os.LookupEnv.
func NewOSReader() OSReader {
	return OSReader{}
}

func (OSReader) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

func (OSReader) Environ() []string {
	return os.Environ()
}

// MapReader is a fixed environment snapshot.
type MapReader map[string]string

func (m MapReader) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m MapReader) Environ() []string {
	out := make([]string, 0, len(m))
	for k, v := range m {
		out = append(out, k+"="+v)
	}
	return out
}

// Snapshot copies the reader's environment into a MapReader.
func Snapshot(r port.EnvReader) MapReader {
	environ := r.Environ()
	m := make(MapReader, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if ok {
			m[k] = v
		}
	}
	return m
}

var (
	_ port.EnvReader = OSReader{}
	_ port.EnvReader = MapReader{}
)
