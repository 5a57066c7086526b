// Package gstplugins exposes the plugin list generated for the build target.
package gstplugins

//go:generate go run ../../cmd/gstplugins-gen --script ../../scripts/gstplugins.py --out-dir .

import "sort"

// Plugin is one required GStreamer plugin.
type Plugin struct {
	Name    string `json:"name"`
	Library string `json:"library"`
}

// Required returns a copy of the generated list.
func Required() []Plugin {
	out := make([]Plugin, len(Plugins))
	copy(out, Plugins)
	return out
}

// Names returns the plugin names in sorted order.
func Names() []string {
	names := make([]string, 0, len(Plugins))
	for _, p := range Plugins {
		names = append(names, p.Name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether name is in the generated list.
func Has(name string) bool {
	for _, p := range Plugins {
		if p.Name == name {
			return true
		}
	}
	return false
}
