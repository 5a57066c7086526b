// Package resources serves the engine's embedded resource files.
package resources

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/tidwall/gjson"
)

//go:embed data
var embedded embed.FS

// Resource names an embedded file.
type Resource string

const (
	Preferences  Resource = "prefs.json"
	NetErrorHTML Resource = "neterror.html"
)

// Reader resolves resources from a filesystem rooted at the resource dir.
type Reader struct {
	fsys  fs.FS
	prefs []byte
}

var (
	initOnce sync.Once
	initErr  error
	current  atomic.Pointer[Reader]
)

// Init installs the embedded resource reader. It is safe to call more than
// once; every call returns the first call's result.
func Init() error {
	initOnce.Do(func() {
		sub, err := fs.Sub(embedded, "data")
		if err != nil {
			initErr = fmt.Errorf("resources: %w", err)
			return
		}
		r, err := NewReader(sub)
		if err != nil {
			initErr = err
			return
		}
		current.Store(r)
	})
	return initErr
}

// Current returns the reader installed by Init, or nil until a successful
// Init has finished. It may be called concurrently with Init.
func Current() *Reader {
	return current.Load()
}

// NewReader loads and validates the preferences file from fsys.
func NewReader(fsys fs.FS) (*Reader, error) {
	prefs, err := fs.ReadFile(fsys, string(Preferences))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", Preferences, err)
	}
	if !gjson.ValidBytes(prefs) {
		return nil, fmt.Errorf("parse %s: invalid JSON", Preferences)
	}
	return &Reader{fsys: fsys, prefs: prefs}, nil
}

// Read returns the raw bytes of res.
func (r *Reader) Read(res Resource) ([]byte, error) {
	if res == Preferences {
		return r.prefs, nil
	}
	b, err := fs.ReadFile(r.fsys, string(res))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", res, err)
	}
	return b, nil
}

// Pref looks up a dotted preference path, e.g. "dom.webgl.enabled".
// Path segments containing dots or dashes must be escaped per gjson syntax.
func (r *Reader) Pref(path string) gjson.Result {
	return gjson.GetBytes(r.prefs, path)
}

// FlatPrefs returns every leaf preference keyed by its dotted path.
func (r *Reader) FlatPrefs() map[string]string {
	out := make(map[string]string)
	flatten("", gjson.ParseBytes(r.prefs), out)
	return out
}

// Keys returns the flattened preference keys in sorted order.
func (r *Reader) Keys() []string {
	flat := r.FlatPrefs()
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func flatten(prefix string, v gjson.Result, out map[string]string) {
	if !v.IsObject() {
		out[prefix] = v.String()
		return
	}
	v.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		if prefix != "" {
			name = prefix + "." + name
		}
		flatten(name, value, out)
		return true
	})
}
