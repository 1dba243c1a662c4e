package backend

import (
	"context"
	"fmt"
)

type AptBackend struct {
	logChan chan<- string
}

func NewAptBackend(logChan chan<- string) *AptBackend {
	return &AptBackend{logChan: logChan}
}

func (a *AptBackend) Name() string { return "apt" }

func (a *AptBackend) Available() bool {
	return commandExists("apt-get")
}

func (a *AptBackend) Install(ctx context.Context) error {
	log(a.logChan, "Updating apt package lists...")

	update := elevate("apt-get", "update")
	if output, err := runCommand(ctx, update[0], update[1:]...); err != nil {
		log(a.logChan, fmt.Sprintf("apt-get update failed: %s", string(output)))
		return fmt.Errorf("apt-get update failed: %w", err)
	}

	log(a.logChan, fmt.Sprintf("Installing %s via apt...", LinterPackage))
	install := elevate("apt-get", "install", "-y", LinterPackage)
	if output, err := runCommand(ctx, install[0], install[1:]...); err != nil {
		log(a.logChan, fmt.Sprintf("apt-get install failed: %s", string(output)))
		return fmt.Errorf("apt-get install failed: %w", err)
	}

	log(a.logChan, "apt installation completed successfully")
	return nil
}
