package backend

import (
	"context"
	"fmt"
)

type BrewBackend struct {
	logChan chan<- string
}

func NewBrewBackend(logChan chan<- string) *BrewBackend {
	return &BrewBackend{logChan: logChan}
}

func (b *BrewBackend) Name() string { return "brew" }

func (b *BrewBackend) Available() bool {
	return commandExists("brew")
}

func (b *BrewBackend) Install(ctx context.Context) error {
	log(b.logChan, fmt.Sprintf("Installing %s via Homebrew...", LinterPackage))

	// brew refuses to run under sudo, never elevate
	if output, err := runCommand(ctx, "brew", "install", LinterPackage); err != nil {
		log(b.logChan, fmt.Sprintf("brew install failed: %s", string(output)))
		return fmt.Errorf("brew install failed: %w", err)
	}

	log(b.logChan, "Homebrew installation completed successfully")
	return nil
}
