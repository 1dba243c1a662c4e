package tui

import (
	"fmt"
	"strings"
)

func (m Model) viewInstallingLinter() string {
	var b strings.Builder

	b.WriteString(m.renderBanner())
	b.WriteString("\n")

	title := m.styles.Title.Render("Installing golangci-lint")
	b.WriteString(title)
	b.WriteString("\n\n")

	step := m.installProgress.step
	if step == "" {
		step = "Preparing installation..."
	}
	b.WriteString(fmt.Sprintf("%s %s", m.spinner.View(), m.styles.Normal.Render(step)))
	b.WriteString("\n\n")

	progressBar := fmt.Sprintf("[%s%s] %.0f%%",
		strings.Repeat("█", int(m.installProgress.progress*30)),
		strings.Repeat("░", 30-int(m.installProgress.progress*30)),
		m.installProgress.progress*100)
	b.WriteString(m.styles.Normal.Render(progressBar))
	b.WriteString("\n")

	if m.installProgress.backend != "" {
		backendInfo := m.styles.Subtle.Render("backend: " + m.installProgress.backend)
		b.WriteString(backendInfo)
		b.WriteString("\n")
	}

	b.WriteString(m.renderRecentLogs(8))

	return b.String()
}

func (m Model) viewInstallingConfig() string {
	var b strings.Builder

	b.WriteString(m.renderBanner())
	b.WriteString("\n")

	title := m.styles.Title.Render("Installing configuration")
	b.WriteString(title)
	b.WriteString("\n\n")

	success := m.styles.Success.Render(fmt.Sprintf("✓ golangci-lint installed via %s", m.installedVia))
	b.WriteString(success)
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%s %s", m.spinner.View(), m.styles.Normal.Render("Writing .golangci.yml and Makefile targets...")))
	b.WriteString("\n")

	b.WriteString(m.renderRecentLogs(6))

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	b.WriteString(m.renderBanner())
	b.WriteString("\n")

	title := m.styles.Success.Render("Setup Complete!")
	b.WriteString(title)
	b.WriteString("\n\n")

	results := []string{
		fmt.Sprintf("• golangci-lint installed via %s", m.installedVia),
		fmt.Sprintf("• Lint configuration written to %s", m.configPath),
	}
	if m.makefileUpdated {
		results = append(results, "• lint and lint-fix targets added to Makefile")
	}
	if m.hookPath != "" {
		results = append(results, fmt.Sprintf("• Pre-commit hook installed at %s", m.hookPath))
	} else if m.hookSkipped {
		results = append(results, "• Pre-commit hook skipped")
	}

	for _, item := range results {
		b.WriteString(m.styles.Subtle.Render(item))
		b.WriteString("\n")
	}

	if m.hookWarning != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Warning.Render("⚠ Hook not installed: " + m.hookWarning))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	info := m.styles.Normal.Render("Run `make lint` or `golangci-lint run` to lint your project.\n\nPress Enter to exit.")
	b.WriteString(info)

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(m.renderBanner())
	b.WriteString("\n")

	title := m.styles.Error.Render("Installation failed")
	b.WriteString(title)
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(m.styles.Error.Render("✗ " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(m.renderRecentLogs(10))

	b.WriteString("\n")
	b.WriteString(m.styles.Subtle.Render("Press Enter to exit."))

	return b.String()
}

func (m Model) renderRecentLogs(maxLines int) string {
	if len(m.logs) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(m.styles.Subtle.Render("Output:"))
	b.WriteString("\n")

	startIdx := 0
	if len(m.logs) > maxLines {
		startIdx = len(m.logs) - maxLines
	}

	for i := startIdx; i < len(m.logs); i++ {
		if m.logs[i] != "" {
			b.WriteString(m.styles.Subtle.Render("  " + m.logs[i]))
			b.WriteString("\n")
		}
	}

	return b.String()
}
