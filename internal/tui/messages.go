package tui

type logMsg struct {
	message string
}

type installProgressMsg struct {
	backend  string
	step     string
	progress float64
}

type linterInstalledMsg struct {
	backend string
	err     error
}

type configInstalledMsg struct {
	path            string
	makefileUpdated bool
	err             error
}

type hookInstalledMsg struct {
	path string
	err  error
}
