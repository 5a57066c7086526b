package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/gstwebsrc/internal/domain/build"
)

// AboutRenderer renders build info in fastfetch style.
type AboutRenderer struct {
	theme *Theme
}

// NewAboutRenderer creates a new about renderer with the given theme.
func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

// AboutInfo is what the about screen shows.
type AboutInfo struct {
	Build   build.Info
	Version string
	License string
	Element string
	Target  string
}

// Render renders build info with ASCII logo and styled info lines.
func (r *AboutRenderer) Render(info AboutInfo) string {
	logo := r.renderLogo()
	lines := r.renderInfoLines(info)

	return lipgloss.JoinHorizontal(lipgloss.Top, logo, "   ", lines)
}

func (r *AboutRenderer) renderLogo() string {
	logoStyle := lipgloss.NewStyle().Foreground(r.theme.Accent).Bold(true)

	logo := `██     ██
██     ██
██  █  ██
██ ███ ██
 ███ ███ `

	return logoStyle.MarginTop(1).MarginLeft(2).Render(logo)
}

func (r *AboutRenderer) renderInfoLines(info AboutInfo) string {
	keyStyle := r.theme.Subtle
	valStyle := r.theme.Highlight
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	line := func(icon, key, val string) string {
		return fmt.Sprintf("%s %s %s", iconStyle.Render(icon), keyStyle.Render(key), valStyle.Render(val))
	}

	lines := []string{
		r.theme.Title.Render(build.Name) + " " + keyStyle.Render(build.Description),
		"",
		line(IconVersion, "Version", info.Version),
		line(IconGitBranch, "Commit", info.Build.Commit),
		line(IconCalendar, "Built", info.Build.BuildDate),
		line(IconGo, "Go", info.Build.GoVersion),
		line(IconVideo, "Element", info.Element),
		line(IconPackage, "Target", info.Target),
		line(IconScale, "License", info.License),
		"",
		fmt.Sprintf("%s %s", iconStyle.Render(IconGithub), keyStyle.Render(build.RepoURL())),
		fmt.Sprintf(
			"%s %s",
			keyStyle.Render("Contributors"),
			valStyle.Render(strings.Join(build.Contributors(), ", ")),
		),
	}

	return strings.Join(lines, "\n")
}
