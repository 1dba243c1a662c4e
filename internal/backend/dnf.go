package backend

import (
	"context"
	"fmt"
)

type DNFBackend struct {
	logChan chan<- string
}

func NewDNFBackend(logChan chan<- string) *DNFBackend {
	return &DNFBackend{logChan: logChan}
}

func (d *DNFBackend) Name() string { return "dnf" }

func (d *DNFBackend) Available() bool {
	return commandExists("dnf")
}

func (d *DNFBackend) Install(ctx context.Context) error {
	log(d.logChan, fmt.Sprintf("Installing %s via dnf...", LinterPackage))

	install := elevate("dnf", "install", "-y", LinterPackage)
	if output, err := runCommand(ctx, install[0], install[1:]...); err != nil {
		log(d.logChan, fmt.Sprintf("dnf install failed: %s", string(output)))
		return fmt.Errorf("dnf install failed: %w", err)
	}

	log(d.logChan, "dnf installation completed successfully")
	return nil
}
