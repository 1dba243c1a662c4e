package project

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/lintstrap/lintstrap/internal/errdefs"
)

// ConfigFileName is the dotfile written into the target project.
const ConfigFileName = ".golangci.yml"

// ConfigInstaller writes the lint configuration into a project directory.
type ConfigInstaller struct {
	fs      afero.Fs
	logChan chan<- string
}

func NewConfigInstaller(fs afero.Fs, logChan chan<- string) *ConfigInstaller {
	return &ConfigInstaller{
		fs:      fs,
		logChan: logChan,
	}
}

func (c *ConfigInstaller) log(message string) {
	if c.logChan != nil {
		c.logChan <- message
	}
}

// Install writes the bundled configuration template to
// <projectRoot>/.golangci.yml, overwriting any existing file. When
// templatePath is non-empty that file is used instead of the bundled
// template; if it cannot be read the install fails before touching the
// target directory.
func (c *ConfigInstaller) Install(projectRoot, templatePath string) (string, error) {
	data := []byte(GolangciConfigTemplate)

	if templatePath != "" {
		custom, err := afero.ReadFile(c.fs, templatePath)
		if err != nil {
			return "", errdefs.NewCustomError(errdefs.ErrTypeTemplateMissing,
				fmt.Sprintf("configuration template %s is missing or unreadable: %v", templatePath, err))
		}
		data = custom
		c.log(fmt.Sprintf("Using configuration template from %s", templatePath))
	}

	dest := filepath.Join(projectRoot, ConfigFileName)
	if err := afero.WriteFile(c.fs, dest, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", dest, err)
	}

	c.log(fmt.Sprintf("Installed lint configuration to %s", dest))
	return dest, nil
}
