package backend

import (
	"context"
	"os"
	"os/exec"
)

// LinterPackage is the package name used by every package-manager backend.
const LinterPackage = "golangci-lint"

// ProgressFunc reports progress while the chain works through its backends.
type ProgressFunc func(backend string, step string, progress float64)

// Backend is a single installation strategy for the linter.
type Backend interface {
	Name() string
	Available() bool
	Install(ctx context.Context) error
}

var runCommand = func(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

var lookPathFunc = exec.LookPath
var geteuidFunc = os.Geteuid

func log(logChan chan<- string, message string) {
	if logChan != nil {
		logChan <- message
	}
}

func commandExists(cmd string) bool {
	_, err := lookPathFunc(cmd)
	return err == nil
}

// elevate prefixes args with sudo when the process is not root and sudo is
// on PATH. Without sudo the unprivileged form is returned and allowed to
// fail on its own.
func elevate(args ...string) []string {
	if geteuidFunc() == 0 {
		return args
	}
	if commandExists("sudo") {
		return append([]string{"sudo"}, args...)
	}
	return args
}
