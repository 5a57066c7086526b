package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// OverridesRenderer explains runtime override variables and build flags.
type OverridesRenderer struct {
	theme *Theme
}

func NewOverridesRenderer(theme *Theme) *OverridesRenderer {
	return &OverridesRenderer{theme: theme}
}

// OverrideRow is one environment override and what it resolved to.
type OverrideRow struct {
	Variable string
	Set      bool
	Raw      string
	Default  bool
	Value    bool
	Error    string
}

// FeatureRow is one build variable.
type FeatureRow struct {
	Key     string
	Value   string
	Feature bool
}

func (r *OverridesRenderer) RenderOverrides(rows []OverrideRow) string {
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, r.renderOverride(row))
	}
	return r.theme.section(IconConfig, "Runtime overrides", strings.Join(lines, "\n"))
}

func (r *OverridesRenderer) renderOverride(row OverrideRow) string {
	name := r.theme.Normal.Render(row.Variable)
	var detail string
	var status string

	switch {
	case !row.Set:
		status = r.theme.status(true, false, "unset")
		detail = fmt.Sprintf("default %t", row.Default)
	case row.Error != "":
		status = r.theme.status(false, true, "ignored")
		detail = fmt.Sprintf("%q: %s; using default %t", row.Raw, row.Error, row.Default)
	default:
		status = r.theme.status(true, false, fmt.Sprintf("%t", row.Value))
		detail = fmt.Sprintf("%q", row.Raw)
	}

	return fmt.Sprintf("%s %s\n  %s", name, r.theme.BadgeMuted.Render(status), r.theme.Subtle.Render(detail))
}

func (r *OverridesRenderer) RenderFeatures(prefix string, rows []FeatureRow) string {
	var features, vars []string
	for _, row := range rows {
		if row.Feature {
			features = append(features, fmt.Sprintf("%s %s=%s",
				r.theme.Highlight.Render(IconCheck),
				r.theme.Normal.Render(row.Key),
				r.theme.Subtle.Render(row.Value),
			))
		}
		vars = append(vars, r.theme.Normal.Render(row.Key))
	}
	if len(features) == 0 {
		features = []string{r.theme.Subtle.Render("no features found")}
	}
	if len(vars) == 0 {
		vars = []string{r.theme.Subtle.Render(fmt.Sprintf("no %s* variables", prefix))}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		r.theme.section(IconFilter, "Features", strings.Join(features, "\n")),
		r.theme.section(IconInfo, "Build variables", strings.Join(vars, "\n")),
	)
}
