// Package plugin is the host-facing entrypoint: it describes the plugin and
// registers its element.
package plugin

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bnema/gstwebsrc/internal/application/port"
	"github.com/bnema/gstwebsrc/internal/domain/build"
	"github.com/bnema/gstwebsrc/internal/engineopts"
	"github.com/bnema/gstwebsrc/internal/logging"
	"github.com/bnema/gstwebsrc/internal/resources"
)

// ElementName is the factory name the source element registers under.
const ElementName = "webkitwebsrc"

// License is the license string reported to the host.
const License = "MPL"

// ElementType is the source element implementation.
var ElementType = port.ElementType{
	Name:        "WebKitWebSrc",
	LongName:    "Web page source",
	Klass:       "Source/Video",
	Description: "Renders a web page into a video stream",
	Author:      "gstwebsrc contributors",
}

// Descriptor is the metadata a host reads before calling Init.
type Descriptor struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Version     string `json:"version"`
	License     string `json:"license"`
	Source      string `json:"source"`
	Package     string `json:"package"`
	Origin      string `json:"origin"`
	ReleaseDate string `json:"release_date"`
}

// Describe builds the descriptor for info. The version is "<version>-<commit>".
func Describe(info build.Info) Descriptor {
	return Descriptor{
		Name:        build.Name,
		Description: build.Description,
		Version:     info.Version + "-" + info.Commit,
		License:     License,
		Source:      build.Name,
		Package:     build.Name,
		Origin:      build.RepoURL(),
		ReleaseDate: info.BuildDate,
	}
}

// Plugin binds the once-only pieces of initialization together.
type Plugin struct {
	options *engineopts.Initializer
	logs    *logging.HostLogHandler
}

// New returns a plugin with its own initializer and log handler.
func New() *Plugin {
	return &Plugin{
		options: &engineopts.Initializer{},
		logs:    &logging.HostLogHandler{},
	}
}

var process = &Plugin{
	options: engineopts.Process(),
	logs:    logging.DefaultHostLogHandler(),
}

// Init is the process-wide entrypoint invoked by the host on plugin load.
func Init(ctx context.Context, host port.PluginHost, r port.EnvReader) error {
	return process.Init(ctx, host, r)
}

// Options exposes the plugin's option initializer.
func (p *Plugin) Options() *engineopts.Initializer {
	return p.options
}

// Init reconciles engine options, routes engine logs to the host, loads
// resources and registers the element, in that order. Only the first call
// touches the option store; every call re-registers the element.
func (p *Plugin) Init(ctx context.Context, host port.PluginHost, r port.EnvReader) error {
	ctx = logging.WithComponent(ctx, "plugin")
	p.options.Init(ctx, host, r)

	host.Log(zerolog.DebugLevel, "Initializing logging")
	log := p.logs.Install(ctx, host)

	log.Debug().Msg("Initializing resources")
	if err := resources.Init(); err != nil {
		return fmt.Errorf("initialize resources: %w", err)
	}

	log.Debug().Msg("Registering plugin")
	if err := host.RegisterElement(ElementName, port.RankNone, ElementType); err != nil {
		return fmt.Errorf("register %s: %w", ElementName, err)
	}
	return nil
}
