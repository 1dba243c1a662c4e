package settings

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/lintstrap/lintstrap/internal/errdefs"
)

// Settings is the optional .lintstrap.yaml file. Everything has a sane
// default so the file is never required.
type Settings struct {
	// Backends overrides the platform-derived backend order.
	Backends []string `mapstructure:"backends"`

	// Version pins the golangci-lint release for the script backend.
	Version string `mapstructure:"version"`

	// Hook installs the pre-commit hook without prompting.
	Hook bool `mapstructure:"hook"`

	// SkipMakefile disables Makefile augmentation.
	SkipMakefile bool `mapstructure:"skip_makefile"`
}

func Default() *Settings {
	return &Settings{}
}

// Load reads .lintstrap.yaml from the project root, falling back to the
// home directory. A missing file yields defaults; a malformed one is an
// error.
func Load(projectRoot string) (*Settings, error) {
	v := viper.New()
	v.SetConfigName(".lintstrap")
	v.SetConfigType("yaml")
	v.AddConfigPath(projectRoot)
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return Default(), nil
		}
		return nil, errdefs.NewCustomError(errdefs.ErrTypeInvalidSettings,
			fmt.Sprintf("failed to read settings: %v", err))
	}

	s := Default()
	if err := v.Unmarshal(s); err != nil {
		return nil, errdefs.NewCustomError(errdefs.ErrTypeInvalidSettings,
			fmt.Sprintf("failed to parse settings: %v", err))
	}

	return s, nil
}
