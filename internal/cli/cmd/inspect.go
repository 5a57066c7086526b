package cmd

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/gstwebsrc/internal/cli"
	"github.com/bnema/gstwebsrc/internal/cli/styles"
	"github.com/bnema/gstwebsrc/internal/domain/entity"
	"github.com/bnema/gstwebsrc/internal/gstplugins"
	"github.com/bnema/gstwebsrc/internal/infrastructure/gst"
	"github.com/bnema/gstwebsrc/internal/plugin"
	"github.com/bnema/gstwebsrc/internal/resources"
)

var (
	inspectCallers int
	inspectJSON    bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Load the plugin into an in-process host and report the result",
	Long: `Inspect loads the plugin the way a media framework host would, from
one or more concurrent callers, then shows the engine options it published,
the elements it registered and the plugins the build target requires.

Examples:
  gstwebsrc inspect
  gstwebsrc inspect --callers 16
  WEBSRC_GST_MULTIPROCESS=1 gstwebsrc inspect --json`,
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().IntVar(&inspectCallers, "callers", 1, "Number of concurrent plugin loads")
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "Print the report as JSON")
}

// inspectResult is the JSON form of an inspect run.
type inspectResult struct {
	Descriptor plugin.Descriptor    `json:"descriptor"`
	Baseline   entity.EngineOptions `json:"baseline"`
	Reconciled entity.EngineOptions `json:"reconciled"`
	Callers    int                  `json:"callers"`
	Publishes  int                  `json:"publishes"`
	GuardState string               `json:"guard_state"`
	Failures   []string             `json:"failures,omitempty"`
	Elements   []gst.Element        `json:"elements"`
	Target     string               `json:"target"`
	Plugins    []gstplugins.Plugin  `json:"plugins"`
}

func runInspect(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	if inspectCallers < 1 {
		return fmt.Errorf("--callers must be at least 1")
	}

	res, err := inspect(app, inspectCallers)
	if err != nil {
		return err
	}

	if inspectJSON {
		enc := json.NewEncoder(app.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	els := make([]styles.InspectElement, 0, len(res.Elements))
	for _, el := range res.Elements {
		els = append(els, styles.InspectElement{
			Name:     el.Name,
			Rank:     int(el.Rank),
			LongName: el.Type.LongName,
			Klass:    el.Type.Klass,
		})
	}

	fmt.Fprintln(app.Out, styles.NewInspectRenderer(app.Theme).Render(styles.InspectReport{
		Baseline:   res.Baseline,
		Reconciled: res.Reconciled,
		Callers:    res.Callers,
		Failures:   res.Failures,
		Publishes:  res.Publishes,
		GuardState: res.GuardState,
		Elements:   els,
		Target:     res.Target,
		Plugins:    gstplugins.Names(),
	}))
	return nil
}

func inspect(app *cli.App, callers int) (*inspectResult, error) {
	ctx := app.Ctx()

	if err := resources.Init(); err != nil {
		return nil, err
	}
	baseline := entity.DefaultEngineOptions()
	prefs := resources.Current()
	baseline.Prefs = prefs.FlatPrefs()
	baseline.UserAgent = prefs.Pref("shell.user-agent").String()

	host := gst.NewHost(baseline)
	p := plugin.New()

	var (
		mu       sync.Mutex
		failures []string
		g        errgroup.Group
	)
	for range callers {
		g.Go(func() error {
			if err := p.Init(ctx, host, app.Env); err != nil {
				mu.Lock()
				failures = append(failures, err.Error())
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	return &inspectResult{
		Descriptor: plugin.Describe(app.BuildInfo),
		Baseline:   baseline,
		Reconciled: host.Options(),
		Callers:    callers,
		Publishes:  p.Options().Publishes(),
		GuardState: p.Options().State().String(),
		Failures:   failures,
		Elements:   host.Elements(),
		Target:     gstplugins.Target,
		Plugins:    gstplugins.Required(),
	}, nil
}
