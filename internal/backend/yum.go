package backend

import (
	"context"
	"fmt"
)

type YumBackend struct {
	logChan chan<- string
}

func NewYumBackend(logChan chan<- string) *YumBackend {
	return &YumBackend{logChan: logChan}
}

func (y *YumBackend) Name() string { return "yum" }

func (y *YumBackend) Available() bool {
	return commandExists("yum")
}

func (y *YumBackend) Install(ctx context.Context) error {
	log(y.logChan, fmt.Sprintf("Installing %s via yum...", LinterPackage))

	install := elevate("yum", "install", "-y", LinterPackage)
	if output, err := runCommand(ctx, install[0], install[1:]...); err != nil {
		log(y.logChan, fmt.Sprintf("yum install failed: %s", string(output)))
		return fmt.Errorf("yum install failed: %w", err)
	}

	log(y.logChan, "yum installation completed successfully")
	return nil
}
