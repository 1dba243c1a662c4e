package tui

type ApplicationState int

const (
	StateWelcome ApplicationState = iota
	StateInstallingLinter
	StateInstallingConfig
	StateHookPrompt
	StateComplete
	StateError
)
