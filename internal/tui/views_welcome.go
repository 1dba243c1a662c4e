package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lintstrap/lintstrap/internal/platform"
)

func (m Model) viewWelcome() string {
	var b strings.Builder

	b.WriteString(m.renderBanner())
	b.WriteString("\n")

	title := m.styles.Title.Render("lintstrap installer")
	b.WriteString(title)
	b.WriteString("\n")

	system := fmt.Sprintf("System: %s", m.info.OS)
	if m.info.OS == platform.TagLinux || m.info.OS == platform.TagWSL {
		if m.info.PrettyName != "" {
			system = fmt.Sprintf("System: %s (%s)", m.info.PrettyName, m.info.OS)
		} else {
			system = fmt.Sprintf("System: %s/%s", m.info.OS, m.info.Distro)
		}
	}
	b.WriteString(m.styles.Normal.Render(system + "\n"))
	b.WriteString(m.styles.Normal.Render(fmt.Sprintf("Project: %s\n", m.projectRoot)))
	b.WriteString("\n")

	overview := "This will install golangci-lint with the best available package manager,\n"
	overview += "drop a .golangci.yml into your project, and wire up lint targets.\n"
	b.WriteString(m.styles.Normal.Render(overview))
	b.WriteString("\n\n")

	help := m.styles.Subtle.Render("Press Enter to install, Ctrl+C to quit")
	b.WriteString(help)

	return b.String()
}

func (m Model) updateWelcomeState(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.state = StateInstallingLinter
		return m, m.startLinterInstall()
	case "q", "esc":
		return m, tea.Quit
	}
	return m, nil
}
