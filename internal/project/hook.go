package project

import (
	"fmt"
	"os"
	"path/filepath"

	git "github.com/go-git/go-git/v6"

	"github.com/lintstrap/lintstrap/internal/errdefs"
)

// HookInstaller writes the pre-commit hook into a git repository. It is
// only ever invoked after the user confirmed the install.
type HookInstaller struct {
	logChan chan<- string
}

func NewHookInstaller(logChan chan<- string) *HookInstaller {
	return &HookInstaller{logChan: logChan}
}

func (h *HookInstaller) log(message string) {
	if h.logChan != nil {
		h.logChan <- message
	}
}

// Install writes an executable .git/hooks/pre-commit, overwriting any
// existing hook. The project root must be a git repository.
func (h *HookInstaller) Install(projectRoot string) (string, error) {
	if _, err := git.PlainOpen(projectRoot); err != nil {
		return "", errdefs.NewCustomError(errdefs.ErrTypeNotGitRepo,
			fmt.Sprintf("%s is not a git repository: %v", projectRoot, err))
	}

	hooksDir := filepath.Join(projectRoot, ".git", "hooks")
	if err := os.MkdirAll(hooksDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create hooks directory: %w", err)
	}

	hookPath := filepath.Join(hooksDir, "pre-commit")
	if _, err := os.Stat(hookPath); err == nil {
		h.log("Replacing existing pre-commit hook")
	}

	if err := os.WriteFile(hookPath, []byte(PreCommitHook), 0755); err != nil {
		return "", fmt.Errorf("failed to write pre-commit hook: %w", err)
	}

	h.log(fmt.Sprintf("Installed pre-commit hook at %s", hookPath))
	return hookPath, nil
}
