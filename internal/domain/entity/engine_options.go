package entity

import "maps"

// Size is a width/height pair in device-independent pixels.
type Size struct {
	Width  int `json:"width" jsonschema:"minimum=1"`
	Height int `json:"height" jsonschema:"minimum=1"`
}

// EngineOptions is the web engine's process-wide option set.
// The host owns the baseline value; the plugin only ever publishes a clone.
type EngineOptions struct {
	// Multiprocess runs each page's content in a separate process.
	Multiprocess bool `json:"multiprocess" jsonschema:"description=Run content in separate processes"`
	// Sandbox confines content processes. Only meaningful with Multiprocess.
	Sandbox bool `json:"sandbox" jsonschema:"description=Sandbox content processes"`
	// ExitAfterLoad terminates the engine once the first page has loaded.
	ExitAfterLoad bool `json:"exit_after_load" jsonschema:"description=Exit after the first load (always false when embedded)"`

	URL              string            `json:"url,omitempty" jsonschema:"description=Initial URL"`
	UserAgent        string            `json:"user_agent,omitempty"`
	WindowSize       Size              `json:"window_size"`
	DevicePixelRatio float64           `json:"device_pixel_ratio,omitempty" jsonschema:"minimum=0"`
	Headless         bool              `json:"headless"`
	UserStylesheets  []string          `json:"user_stylesheets,omitempty"`
	Prefs            map[string]string `json:"prefs,omitempty"`
}

// Default engine window size for an offscreen source element.
const (
	DefaultWindowWidth  = 1024
	DefaultWindowHeight = 740
)

// DefaultEngineOptions returns the engine's built-in defaults, as an
// unconfigured host would hold them before any plugin runs.
func DefaultEngineOptions() EngineOptions {
	return EngineOptions{
		Multiprocess:     false,
		Sandbox:          false,
		ExitAfterLoad:    false,
		URL:              "about:blank",
		WindowSize:       Size{Width: DefaultWindowWidth, Height: DefaultWindowHeight},
		DevicePixelRatio: 1.0,
		Headless:         true,
		Prefs:            map[string]string{},
	}
}

// Clone returns a deep copy so callers can modify the result without
// touching the receiver's slices or maps.
func (o EngineOptions) Clone() EngineOptions {
	out := o
	if o.UserStylesheets != nil {
		out.UserStylesheets = append([]string(nil), o.UserStylesheets...)
	}
	if o.Prefs != nil {
		out.Prefs = maps.Clone(o.Prefs)
	}
	return out
}
