package project

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/afero"
)

var lintTargetRegex = regexp.MustCompile(`(?m)^lint:`)

// MakefileAugmenter appends lint targets to an existing Makefile.
type MakefileAugmenter struct {
	fs      afero.Fs
	logChan chan<- string
}

func NewMakefileAugmenter(fs afero.Fs, logChan chan<- string) *MakefileAugmenter {
	return &MakefileAugmenter{
		fs:      fs,
		logChan: logChan,
	}
}

func (m *MakefileAugmenter) log(message string) {
	if m.logChan != nil {
		m.logChan <- message
	}
}

// Augment appends lint and lint-fix targets to <projectRoot>/Makefile.
// Running it twice is a no-op: an existing lint target is the idempotence
// guard. A missing Makefile is not an error and nothing is created.
func (m *MakefileAugmenter) Augment(projectRoot string) (bool, error) {
	path := filepath.Join(projectRoot, "Makefile")

	exists, err := afero.Exists(m.fs, path)
	if err != nil {
		return false, fmt.Errorf("failed to check for Makefile: %w", err)
	}
	if !exists {
		m.log("No Makefile found, skipping lint target setup")
		return false, nil
	}

	data, err := afero.ReadFile(m.fs, path)
	if err != nil {
		return false, fmt.Errorf("failed to read Makefile: %w", err)
	}

	if lintTargetRegex.Match(data) {
		m.log("Makefile already has a lint target, leaving it alone")
		return false, nil
	}

	content := string(data)
	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	content += MakefileTargets

	if err := afero.WriteFile(m.fs, path, []byte(content), 0644); err != nil {
		return false, fmt.Errorf("failed to update Makefile: %w", err)
	}

	m.log("Added lint and lint-fix targets to Makefile")
	return true, nil
}
