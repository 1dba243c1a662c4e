package backend

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

const installScriptURL = "https://raw.githubusercontent.com/golangci/golangci-lint/master/install.sh"

// ScriptBackend fetches the official golangci-lint install script and pipes
// it through sh. It is the universal fallback and works on any platform
// with curl or wget available.
type ScriptBackend struct {
	logChan chan<- string

	// Version pins the release to install; empty means latest.
	Version string

	// BinDir is where the binary lands; defaults to ~/.local/bin.
	BinDir string
}

func NewScriptBackend(logChan chan<- string) *ScriptBackend {
	return &ScriptBackend{logChan: logChan}
}

func (s *ScriptBackend) Name() string { return "script" }

func (s *ScriptBackend) Available() bool {
	if !commandExists("sh") {
		return false
	}
	return commandExists("curl") || commandExists("wget")
}

func (s *ScriptBackend) Install(ctx context.Context) error {
	binDir := s.BinDir
	if binDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("cannot determine home directory: %w", err)
		}
		binDir = filepath.Join(home, ".local", "bin")
	}

	fetch := fmt.Sprintf("curl -sSfL %s", installScriptURL)
	if !commandExists("curl") {
		fetch = fmt.Sprintf("wget -qO- %s", installScriptURL)
	}

	pipeline := fmt.Sprintf("%s | sh -s -- -b %s", fetch, binDir)
	if s.Version != "" {
		pipeline = fmt.Sprintf("%s %s", pipeline, s.Version)
	}

	log(s.logChan, fmt.Sprintf("Running install script into %s...", binDir))
	if output, err := runCommand(ctx, "sh", "-c", pipeline); err != nil {
		log(s.logChan, fmt.Sprintf("install script failed: %s", string(output)))
		return fmt.Errorf("install script failed: %w", err)
	}

	log(s.logChan, fmt.Sprintf("Install script completed, binary placed in %s", binDir))
	return nil
}
