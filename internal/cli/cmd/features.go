package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/gstwebsrc/internal/cli/styles"
	"github.com/bnema/gstwebsrc/internal/infrastructure/buildvars"
)

var featuresRaw bool

var featuresCmd = &cobra.Command{
	Use:   "features",
	Short: "List build feature switches and build variables",
	Long: `Features lists WEBSRC_BUILD_FEATURE_* switches and every WEBSRC_BUILD_*
variable in the current environment.

With --raw it prints the same warning lines the generator emits.`,
	RunE: runFeatures,
}

func init() {
	rootCmd.AddCommand(featuresCmd)
	featuresCmd.Flags().BoolVar(&featuresRaw, "raw", false, "Print generator-style warning lines")
}

func runFeatures(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	vars := buildvars.FromEnv(app.Env)
	if featuresRaw {
		return vars.EmitDiagnostics(app.Out)
	}

	all := vars.All()
	sort.Slice(all, func(i, j int) bool { return all[i].Key < all[j].Key })

	rows := make([]styles.FeatureRow, 0, len(all))
	for _, v := range all {
		rows = append(rows, styles.FeatureRow{
			Key:     v.Key,
			Value:   v.Value,
			Feature: strings.HasPrefix(v.Key, buildvars.FeaturePrefix),
		})
	}

	fmt.Fprintln(app.Out, styles.NewOverridesRenderer(app.Theme).RenderFeatures(buildvars.Prefix, rows))
	return nil
}
