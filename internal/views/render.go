package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/sandeepkv93/focusboard/internal/model"
)

type AppData struct {
	Header     string
	LeftPane   string
	RightPane  string
	StatusLine string
	Banner     string
	Footer     string
	Theme      model.Theme
}

// Styles holds the per-theme lipgloss styles. Both palettes keep the same
// layout; only colors change when the theme toggles.
type Styles struct {
	Header lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
	Panel  lipgloss.Style
	Banner lipgloss.Style
	Footer lipgloss.Style
}

func StylesFor(theme model.Theme) Styles {
	if theme == model.ThemeDark {
		return Styles{
			Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
			Panel:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).BorderForeground(lipgloss.Color("8")),
			Banner: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			Footer: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		}
	}
	return Styles{
		Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Panel:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		Banner: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Footer: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	}
}

func RenderApp(data AppData) string {
	styles := StylesFor(data.Theme)

	left := styles.Panel.Width(58).Render(data.LeftPane)
	right := styles.Panel.Width(58).Render(data.RightPane)
	row := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	status := styles.Status.Render(data.StatusLine)
	if strings.Contains(strings.ToLower(data.StatusLine), "error") {
		status = styles.Error.Render(data.StatusLine)
	}

	lines := []string{
		styles.Header.Render(data.Header),
		row,
		status,
	}
	if data.Banner != "" {
		lines = append(lines, styles.Banner.Render(data.Banner))
	}
	if data.Footer != "" {
		lines = append(lines, styles.Footer.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

func RenderMarkdown(md string, theme model.Theme) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	style := "light"
	if theme == model.ThemeDark {
		style = "dark"
	}
	out, err := glamour.Render(md, style)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
