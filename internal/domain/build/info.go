// Package build provides domain entities for build information.
package build

const (
	// Name is the plugin and package name.
	Name = "gstwebsrc"
	// Description is the one-line plugin description.
	Description = "A GStreamer source element that renders web pages"
)

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// Contributors returns the list of project contributors.
func Contributors() []string {
	return []string{"bnema"}
}

// RepoURL returns the GitHub repository URL.
func RepoURL() string {
	return "https://github.com/bnema/gstwebsrc"
}
