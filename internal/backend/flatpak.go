package backend

import (
	"context"
	"fmt"
)

type FlatpakBackend struct {
	logChan chan<- string
}

func NewFlatpakBackend(logChan chan<- string) *FlatpakBackend {
	return &FlatpakBackend{logChan: logChan}
}

func (f *FlatpakBackend) Name() string { return "flatpak" }

func (f *FlatpakBackend) Available() bool {
	return commandExists("flatpak")
}

func (f *FlatpakBackend) Install(ctx context.Context) error {
	log(f.logChan, fmt.Sprintf("Installing %s via flatpak...", LinterPackage))

	install := []string{"flatpak", "install", "-y", LinterPackage}
	if output, err := runCommand(ctx, install[0], install[1:]...); err != nil {
		log(f.logChan, fmt.Sprintf("flatpak install failed: %s", string(output)))
		return fmt.Errorf("flatpak install failed: %w", err)
	}

	log(f.logChan, "flatpak installation completed successfully")
	return nil
}
