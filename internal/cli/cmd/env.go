package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/gstwebsrc/internal/application/usecase"
	"github.com/bnema/gstwebsrc/internal/cli/styles"
	"github.com/bnema/gstwebsrc/internal/domain/entity"
)

var (
	envBaselineSandbox bool
	envStrict          bool
)

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Explain how the runtime override variables resolve",
	Long: `Env reads WEBSRC_GST_MULTIPROCESS and WEBSRC_GST_SANDBOX the way the
plugin does and shows the resulting value of each.

Malformed values are ignored by the plugin. Use --strict to fail instead.

Examples:
  gstwebsrc env
  WEBSRC_GST_SANDBOX=1 gstwebsrc env --baseline-sandbox=false`,
	RunE: runEnv,
}

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolVar(&envBaselineSandbox, "baseline-sandbox", false, "Host's sandbox setting before overrides")
	envCmd.Flags().BoolVar(&envStrict, "strict", false, "Exit non-zero when an override is malformed")
}

func runEnv(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	baseline := entity.DefaultEngineOptions()
	baseline.Sandbox = envBaselineSandbox

	out, err := usecase.NewReconcileOptionsUseCase(app.Env).Execute(app.Ctx(), usecase.ReconcileOptionsInput{
		Baseline: baseline,
	})
	if err != nil {
		return err
	}

	rows := make([]styles.OverrideRow, 0, len(out.Overrides))
	var firstErr error
	for _, o := range out.Overrides {
		row := styles.OverrideRow{
			Variable: o.Variable,
			Set:      o.Set,
			Raw:      o.Raw,
			Default:  o.Default,
			Value:    o.Value,
		}
		if o.Err != nil {
			row.Error = o.Err.Error()
			if firstErr == nil {
				firstErr = o.Err
			}
		}
		rows = append(rows, row)
	}

	fmt.Fprintln(app.Out, styles.NewOverridesRenderer(app.Theme).RenderOverrides(rows))

	if envStrict && firstErr != nil {
		return firstErr
	}
	return nil
}
