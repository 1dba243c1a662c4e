package backend

import (
	"context"
	"fmt"
)

type PacmanBackend struct {
	logChan chan<- string
}

func NewPacmanBackend(logChan chan<- string) *PacmanBackend {
	return &PacmanBackend{logChan: logChan}
}

func (p *PacmanBackend) Name() string { return "pacman" }

func (p *PacmanBackend) Available() bool {
	return commandExists("pacman")
}

func (p *PacmanBackend) Install(ctx context.Context) error {
	log(p.logChan, fmt.Sprintf("Installing %s via pacman...", LinterPackage))

	install := elevate("pacman", "-S", "--noconfirm", LinterPackage)
	if output, err := runCommand(ctx, install[0], install[1:]...); err != nil {
		log(p.logChan, fmt.Sprintf("pacman install failed: %s", string(output)))
		return fmt.Errorf("pacman install failed: %w", err)
	}

	log(p.logChan, "pacman installation completed successfully")
	return nil
}
