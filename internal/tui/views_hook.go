package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) viewHookPrompt() string {
	var b strings.Builder

	b.WriteString(m.renderBanner())
	b.WriteString("\n")

	title := m.styles.Title.Render("Pre-commit hook")
	b.WriteString(title)
	b.WriteString("\n\n")

	if m.installingHook {
		b.WriteString(fmt.Sprintf("%s %s", m.spinner.View(), m.styles.Normal.Render("Installing pre-commit hook...")))
		b.WriteString("\n")
		return b.String()
	}

	question := "Install a git pre-commit hook that runs golangci-lint before each commit?\n"
	question += "Any existing pre-commit hook will be replaced.\n"
	b.WriteString(m.styles.Normal.Render(question))
	b.WriteString("\n\n")

	yes := m.styles.Key.Render("y")
	no := m.styles.Key.Render("n")
	b.WriteString(m.styles.Subtle.Render(fmt.Sprintf("Press %s to install the hook, %s to skip", yes, no)))

	return b.String()
}

func (m Model) updateHookPromptState(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.installingHook {
		return m, nil
	}

	switch msg.String() {
	case "y", "Y", "enter":
		m.installingHook = true
		return m, m.startHookInstall()
	case "n", "N", "esc":
		m.hookSkipped = true
		m.state = StateComplete
		return m, nil
	}
	return m, nil
}
