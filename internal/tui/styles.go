package tui

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

type AppTheme struct {
	Primary    string
	Secondary  string
	Accent     string
	Text       string
	Subtle     string
	Error      string
	Warning    string
	Success    string
	Background string
	Surface    string
}

func TealTheme() AppTheme {
	return AppTheme{
		Primary:    "#8fd9d0",
		Secondary:  "#2e5e58",
		Accent:     "#d2f5f0",
		Text:       "#e3e8e7",
		Subtle:     "#aebdbb",
		Error:      "#ffb4ab",
		Warning:    "#eecfa0",
		Success:    "#8fd9d0",
		Background: "#121716",
		Surface:    "#1c2322",
	}
}

func NewStyles(theme AppTheme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Primary)).
			Bold(true).
			MarginLeft(1).
			MarginBottom(1),

		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Text)),

		Bold: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Text)).
			Bold(true),

		Subtle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Error)),

		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Warning)),

		Key: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Accent)).
			Bold(true),

		SpinnerStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Primary)),

		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Success)).
			Bold(true),

		SelectedOption: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Accent)).
			Bold(true),
	}
}

type Styles struct {
	Title          lipgloss.Style
	Normal         lipgloss.Style
	Bold           lipgloss.Style
	Subtle         lipgloss.Style
	Warning        lipgloss.Style
	Error          lipgloss.Style
	Key            lipgloss.Style
	SpinnerStyle   lipgloss.Style
	Success        lipgloss.Style
	SelectedOption lipgloss.Style
}

func (s Styles) NewThemedProgress(width int) progress.Model {
	theme := TealTheme()
	prog := progress.New(
		progress.WithGradient(theme.Secondary, theme.Primary),
	)

	prog.Width = width
	prog.ShowPercentage = true
	prog.PercentFormat = "%.0f%%"
	prog.PercentageStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Text)).
		Bold(true)

	return prog
}
