package styles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/gstwebsrc/internal/cli/styles"
	"github.com/bnema/gstwebsrc/internal/domain/build"
	"github.com/bnema/gstwebsrc/internal/domain/entity"
)

func TestAboutRenderer_Render(t *testing.T) {
	r := styles.NewAboutRenderer(styles.NewTheme())

	out := r.Render(styles.AboutInfo{
		Build:   build.Info{Version: "1.2.0", Commit: "deadbeef", BuildDate: "2024-05-01", GoVersion: "go1.25"},
		Version: "1.2.0-deadbeef",
		License: "MPL",
		Element: "webkitwebsrc",
		Target:  "linux-amd64",
	})

	for _, want := range []string{"1.2.0-deadbeef", "deadbeef", "MPL", "webkitwebsrc", "linux-amd64", build.RepoURL()} {
		assert.Contains(t, out, want)
	}
}

func TestInspectRenderer_Render(t *testing.T) {
	before := entity.DefaultEngineOptions()
	before.ExitAfterLoad = true
	after := before.Clone()
	after.ExitAfterLoad = false
	after.Multiprocess = true

	out := styles.NewInspectRenderer(styles.NewTheme()).Render(styles.InspectReport{
		Baseline:   before,
		Reconciled: after,
		Callers:    8,
		Publishes:  1,
		GuardState: "done",
		Elements:   []styles.InspectElement{{Name: "webkitwebsrc", Rank: 0, LongName: "Web page source", Klass: "Source/Video"}},
		Target:     "linux-amd64",
		Plugins:    []string{"app", "coreelements"},
	})

	assert.Contains(t, out, "OK")
	assert.Contains(t, out, "8 callers, 1 publish, guard done")
	assert.Contains(t, out, "multiprocess")
	assert.Contains(t, out, "webkitwebsrc")
	assert.Contains(t, out, "rank 0")
	assert.Contains(t, out, "app, coreelements")
	assert.NotContains(t, out, "Failures")
}

func TestInspectRenderer_Failures(t *testing.T) {
	out := styles.NewInspectRenderer(styles.NewTheme()).Render(styles.InspectReport{
		Callers:   2,
		Publishes: 1,
		Failures:  []string{"register webkitwebsrc: element already registered"},
	})

	assert.Contains(t, out, "Needs attention")
	assert.Contains(t, out, "Failures")
	assert.Contains(t, out, "none registered")
}

func TestOverridesRenderer(t *testing.T) {
	r := styles.NewOverridesRenderer(styles.NewTheme())

	out := r.RenderOverrides([]styles.OverrideRow{
		{Variable: "WEBSRC_GST_MULTIPROCESS", Set: true, Raw: "1", Value: true},
		{Variable: "WEBSRC_GST_SANDBOX", Set: true, Raw: "yes", Default: true, Value: true, Error: "failed to parse boolean"},
	})
	assert.Contains(t, out, "WEBSRC_GST_MULTIPROCESS")
	assert.Contains(t, out, "ignored")
	assert.Contains(t, out, `"yes"`)

	out = r.RenderFeatures("WEBSRC_BUILD_", nil)
	assert.Contains(t, out, "no features found")
	assert.Contains(t, out, "no WEBSRC_BUILD_* variables")

	out = r.RenderFeatures("WEBSRC_BUILD_", []styles.FeatureRow{
		{Key: "WEBSRC_BUILD_FEATURE_WEBGL", Value: "1", Feature: true},
		{Key: "WEBSRC_BUILD_PROFILE", Value: "release"},
	})
	require.Contains(t, out, "WEBSRC_BUILD_FEATURE_WEBGL=1")
	assert.Contains(t, out, "WEBSRC_BUILD_PROFILE")
}
