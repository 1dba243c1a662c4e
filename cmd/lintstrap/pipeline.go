package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/lintstrap/lintstrap/internal/backend"
	"github.com/lintstrap/lintstrap/internal/errdefs"
	"github.com/lintstrap/lintstrap/internal/log"
	"github.com/lintstrap/lintstrap/internal/platform"
	"github.com/lintstrap/lintstrap/internal/project"
	"github.com/lintstrap/lintstrap/internal/settings"
)

func runInstall(cmd *cobra.Command, args []string) {
	projectRoot := resolveProjectRoot(args)

	yesHook, _ := cmd.Flags().GetBool("yes-hook")
	noHook, _ := cmd.Flags().GetBool("no-hook")
	templatePath, _ := cmd.Flags().GetString("config")
	versionPin, _ := cmd.Flags().GetString("version-pin")
	skipMakefile, _ := cmd.Flags().GetBool("skip-makefile")

	cfg, err := settings.Load(projectRoot)
	if err != nil {
		log.Fatalf("Error loading settings: %v", err)
	}
	if versionPin != "" {
		cfg.Version = versionPin
	}
	if skipMakefile {
		cfg.SkipMakefile = true
	}

	info := platform.Detect()
	log.Infof("Detected platform: %s/%s (%s)", info.OS, info.Distro, info.Architecture)

	logChan := make(chan string, 100)
	done := drainLogs(logChan)

	installedVia, err := installLinter(context.Background(), info, cfg, logChan)
	if err != nil {
		close(logChan)
		<-done
		log.Errorf("%v", err)
		os.Exit(1)
	}
	log.Infof("golangci-lint installed via %s", installedVia)

	fs := afero.NewOsFs()

	configPath, err := project.NewConfigInstaller(fs, logChan).Install(projectRoot, templatePath)
	if err != nil {
		close(logChan)
		<-done
		log.Errorf("%v", err)
		os.Exit(1)
	}
	log.Infof("Lint configuration written to %s", configPath)

	if !cfg.SkipMakefile {
		if _, err := project.NewMakefileAugmenter(fs, logChan).Augment(projectRoot); err != nil {
			log.Warnf("Makefile not updated: %v", err)
		}
	}

	installHook := cfg.Hook || yesHook
	if !noHook && !installHook {
		installHook = confirmHook(os.Stdin)
	}

	if installHook {
		path, err := project.NewHookInstaller(logChan).Install(projectRoot)
		if err != nil {
			if errdefs.IsType(err, errdefs.ErrTypeNotGitRepo) {
				log.Warnf("Skipping hook: %v", err)
			} else {
				log.Warnf("Hook not installed: %v", err)
			}
		} else {
			log.Infof("Pre-commit hook installed at %s", path)
		}
	}

	close(logChan)
	<-done
	log.Info("Setup complete")
}

func installLinter(ctx context.Context, info *platform.Info, cfg *settings.Settings, logChan chan<- string) (string, error) {
	var chain []backend.Backend
	if len(cfg.Backends) > 0 {
		chain = backend.ChainFromNames(cfg.Backends, logChan)
	} else {
		chain = backend.ChainFor(info, logChan)
	}

	if cfg.Version != "" {
		for _, b := range chain {
			if sb, ok := b.(*backend.ScriptBackend); ok {
				sb.Version = cfg.Version
			}
		}
	}

	return backend.Run(ctx, chain, func(name, step string, progress float64) {
		log.Debugf("[%s] %s", name, step)
	})
}

func confirmHook(in *os.File) bool {
	fmt.Print("Install a git pre-commit hook that runs golangci-lint? [y/N]: ")
	reader := bufio.NewReader(in)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
