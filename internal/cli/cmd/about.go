package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/gstwebsrc/internal/cli/styles"
	"github.com/bnema/gstwebsrc/internal/gstplugins"
	"github.com/bnema/gstwebsrc/internal/plugin"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show version and build information",
	Long:  `Display the plugin descriptor, build info, repository URL, and contributors.`,
	RunE:  runAbout,
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}

func runAbout(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	desc := plugin.Describe(app.BuildInfo)
	renderer := styles.NewAboutRenderer(app.Theme)
	fmt.Fprintln(app.Out, renderer.Render(styles.AboutInfo{
		Build:   app.BuildInfo,
		Version: desc.Version,
		License: desc.License,
		Element: plugin.ElementName,
		Target:  gstplugins.Target,
	}))
	return nil
}
