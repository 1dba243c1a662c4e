package backend

import (
	"context"
	"fmt"
)

type SnapBackend struct {
	logChan chan<- string
}

func NewSnapBackend(logChan chan<- string) *SnapBackend {
	return &SnapBackend{logChan: logChan}
}

func (s *SnapBackend) Name() string { return "snap" }

func (s *SnapBackend) Available() bool {
	return commandExists("snap")
}

func (s *SnapBackend) Install(ctx context.Context) error {
	log(s.logChan, fmt.Sprintf("Installing %s via snap...", LinterPackage))

	install := elevate("snap", "install", LinterPackage, "--classic")
	if output, err := runCommand(ctx, install[0], install[1:]...); err != nil {
		log(s.logChan, fmt.Sprintf("snap install failed: %s", string(output)))
		return fmt.Errorf("snap install failed: %w", err)
	}

	log(s.logChan, "snap installation completed successfully")
	return nil
}
