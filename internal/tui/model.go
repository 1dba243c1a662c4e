package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"

	"github.com/lintstrap/lintstrap/internal/backend"
	"github.com/lintstrap/lintstrap/internal/platform"
	"github.com/lintstrap/lintstrap/internal/project"
	"github.com/lintstrap/lintstrap/internal/settings"
)

type progressInfo struct {
	backend  string
	step     string
	progress float64
}

type Model struct {
	version     string
	projectRoot string
	info        *platform.Info
	cfg         *settings.Settings

	state  ApplicationState
	styles Styles

	spinner spinner.Model

	logChan      chan string
	progressChan chan installProgressMsg
	logs         []string

	installProgress progressInfo
	installedVia    string
	configPath      string
	makefileUpdated bool
	hookPath        string
	hookSkipped     bool
	hookWarning     string
	installingHook  bool

	err    error
	width  int
	height int
}

func NewModel(version, projectRoot string, info *platform.Info, cfg *settings.Settings) Model {
	styles := NewStyles(TealTheme())

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.SpinnerStyle

	return Model{
		version:      version,
		projectRoot:  projectRoot,
		info:         info,
		cfg:          cfg,
		state:        StateWelcome,
		styles:       styles,
		spinner:      sp,
		logChan:      make(chan string, 100),
		progressChan: make(chan installProgressMsg, 100),
	}
}

// Err reports the failure the run ended with, if any. The caller turns it
// into the process exit code.
func (m Model) Err() error {
	return m.err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listenForLogs(), m.listenForProgress())
}

func (m Model) listenForLogs() tea.Cmd {
	return func() tea.Msg {
		return logMsg{message: <-m.logChan}
	}
}

func (m Model) listenForProgress() tea.Cmd {
	return func() tea.Msg {
		return <-m.progressChan
	}
}

func (m Model) startLinterInstall() tea.Cmd {
	logChan := m.logChan
	progressChan := m.progressChan
	info := m.info
	cfg := m.cfg

	return func() tea.Msg {
		var chain []backend.Backend
		if len(cfg.Backends) > 0 {
			chain = backend.ChainFromNames(cfg.Backends, logChan)
		} else {
			chain = backend.ChainFor(info, logChan)
		}

		if cfg.Version != "" {
			for _, b := range chain {
				if sb, ok := b.(*backend.ScriptBackend); ok {
					sb.Version = cfg.Version
				}
			}
		}

		name, err := backend.Run(context.Background(), chain, func(backendName, step string, progress float64) {
			select {
			case progressChan <- installProgressMsg{backend: backendName, step: step, progress: progress}:
			default:
			}
		})
		return linterInstalledMsg{backend: name, err: err}
	}
}

func (m Model) startConfigInstall() tea.Cmd {
	logChan := m.logChan
	projectRoot := m.projectRoot
	skipMakefile := m.cfg.SkipMakefile

	return func() tea.Msg {
		fs := afero.NewOsFs()

		configPath, err := project.NewConfigInstaller(fs, logChan).Install(projectRoot, "")
		if err != nil {
			return configInstalledMsg{err: err}
		}

		updated := false
		if !skipMakefile {
			updated, err = project.NewMakefileAugmenter(fs, logChan).Augment(projectRoot)
			if err != nil {
				return configInstalledMsg{path: configPath, err: err}
			}
		}

		return configInstalledMsg{path: configPath, makefileUpdated: updated}
	}
}

func (m Model) startHookInstall() tea.Cmd {
	logChan := m.logChan
	projectRoot := m.projectRoot

	return func() tea.Msg {
		path, err := project.NewHookInstaller(logChan).Install(projectRoot)
		return hookInstalledMsg{path: path, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case logMsg:
		m.logs = append(m.logs, msg.message)
		if len(m.logs) > 200 {
			m.logs = m.logs[len(m.logs)-200:]
		}
		return m, m.listenForLogs()

	case installProgressMsg:
		m.installProgress = progressInfo{backend: msg.backend, step: msg.step, progress: msg.progress}
		return m, m.listenForProgress()

	case linterInstalledMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = StateError
			return m, nil
		}
		m.installedVia = msg.backend
		m.state = StateInstallingConfig
		return m, m.startConfigInstall()

	case configInstalledMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = StateError
			return m, nil
		}
		m.configPath = msg.path
		m.makefileUpdated = msg.makefileUpdated
		if m.cfg.Hook {
			m.installingHook = true
			m.state = StateHookPrompt
			return m, m.startHookInstall()
		}
		m.state = StateHookPrompt
		return m, nil

	case hookInstalledMsg:
		m.installingHook = false
		if msg.err != nil {
			// A failed hook install is not fatal, the linter and config
			// are already in place.
			m.hookWarning = msg.err.Error()
		} else {
			m.hookPath = msg.path
		}
		m.state = StateComplete
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.state {
		case StateWelcome:
			return m.updateWelcomeState(msg)
		case StateHookPrompt:
			return m.updateHookPromptState(msg)
		case StateComplete, StateError:
			switch msg.String() {
			case "enter", "q", "esc":
				return m, tea.Quit
			}
		}
	}

	return m, nil
}

func (m Model) View() string {
	switch m.state {
	case StateWelcome:
		return m.viewWelcome()
	case StateInstallingLinter:
		return m.viewInstallingLinter()
	case StateInstallingConfig:
		return m.viewInstallingConfig()
	case StateHookPrompt:
		return m.viewHookPrompt()
	case StateComplete:
		return m.viewComplete()
	case StateError:
		return m.viewError()
	default:
		return m.viewWelcome()
	}
}
