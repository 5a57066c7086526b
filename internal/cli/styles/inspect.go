package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/gstwebsrc/internal/domain/entity"
)

// InspectRenderer renders the result of a simulated plugin load.
type InspectRenderer struct {
	theme *Theme
}

func NewInspectRenderer(theme *Theme) *InspectRenderer {
	return &InspectRenderer{theme: theme}
}

type InspectReport struct {
	Baseline   entity.EngineOptions
	Reconciled entity.EngineOptions
	Callers    int
	Failures   []string
	Publishes  int
	GuardState string
	Elements   []InspectElement
	Target     string
	Plugins    []string
}

type InspectElement struct {
	Name     string
	Rank     int
	LongName string
	Klass    string
}

func (r *InspectRenderer) Render(rep InspectReport) string {
	sections := []string{
		r.renderHeader(rep),
		r.renderOptions(rep.Baseline, rep.Reconciled),
		r.renderElements(rep.Elements),
		r.renderPlugins(rep.Target, rep.Plugins),
	}
	if len(rep.Failures) > 0 {
		sections = append(sections, r.renderFailures(rep.Failures))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (r *InspectRenderer) renderHeader(rep InspectReport) string {
	ok := rep.Publishes == 1 && len(rep.Failures) == 0
	statusText := "OK"
	statusStyle := r.theme.SuccessStyle
	if !ok {
		statusText = "Needs attention"
		statusStyle = r.theme.WarningStyle
	}

	title := fmt.Sprintf("%s %s", r.theme.Highlight.Render(IconWrench), r.theme.Title.Render("Plugin load"))
	badge := r.theme.BadgeMuted.Render(statusStyle.Render(statusText))
	detail := r.theme.Subtle.Render(fmt.Sprintf(
		"%d callers, %d publish, guard %s",
		rep.Callers, rep.Publishes, rep.GuardState,
	))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, " ", badge, "  ", detail)
}

func (r *InspectRenderer) renderOptions(before, after entity.EngineOptions) string {
	row := func(name string, a, b bool) string {
		val := r.theme.Normal.Render(fmt.Sprintf("%t", b))
		if a != b {
			val = r.theme.Highlight.Render(fmt.Sprintf("%t", b))
		}
		return fmt.Sprintf(
			"%s %s %s %s",
			r.theme.Subtle.Render(fmt.Sprintf("%-16s", name)),
			r.theme.Normal.Render(fmt.Sprintf("%-5t", a)),
			r.theme.Subtle.Render(IconArrow),
			val,
		)
	}

	lines := []string{
		row("multiprocess", before.Multiprocess, after.Multiprocess),
		row("sandbox", before.Sandbox, after.Sandbox),
		row("exit_after_load", before.ExitAfterLoad, after.ExitAfterLoad),
		"",
		fmt.Sprintf("%s %s", r.theme.Subtle.Render(fmt.Sprintf("%-16s", "url")), r.theme.Normal.Render(after.URL)),
		fmt.Sprintf(
			"%s %s",
			r.theme.Subtle.Render(fmt.Sprintf("%-16s", "window_size")),
			r.theme.Normal.Render(fmt.Sprintf("%dx%d", after.WindowSize.Width, after.WindowSize.Height)),
		),
	}
	return r.theme.section(IconConfig, "Engine options", strings.Join(lines, "\n"))
}

func (r *InspectRenderer) renderElements(els []InspectElement) string {
	if len(els) == 0 {
		return r.theme.section(IconVideo, "Elements", r.theme.ErrorStyle.Render("none registered"))
	}
	lines := make([]string, 0, len(els))
	for _, el := range els {
		lines = append(lines, fmt.Sprintf(
			"%s %s %s\n  %s",
			r.theme.SuccessStyle.Render(IconCheck),
			r.theme.Normal.Render(el.Name),
			r.theme.BadgeMuted.Render(fmt.Sprintf("rank %d", el.Rank)),
			r.theme.Subtle.Render(el.LongName+" ("+el.Klass+")"),
		))
	}
	return r.theme.section(IconVideo, "Elements", strings.Join(lines, "\n"))
}

func (r *InspectRenderer) renderPlugins(target string, plugins []string) string {
	body := fmt.Sprintf("%s %s\n%s",
		r.theme.Subtle.Render("Target"),
		r.theme.Normal.Render(target),
		r.theme.Normal.Render(strings.Join(plugins, ", ")),
	)
	return r.theme.section(IconPackage, fmt.Sprintf("Required plugins (%d)", len(plugins)), body)
}

func (r *InspectRenderer) renderFailures(failures []string) string {
	lines := make([]string, 0, len(failures))
	for _, f := range failures {
		lines = append(lines, r.theme.status(false, false, f))
	}
	return r.theme.section(IconWarning, "Failures", strings.Join(lines, "\n"))
}
