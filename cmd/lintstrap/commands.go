package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/lintstrap/lintstrap/internal/log"
	"github.com/lintstrap/lintstrap/internal/platform"
	"github.com/lintstrap/lintstrap/internal/project"
	"github.com/lintstrap/lintstrap/internal/settings"
	"github.com/lintstrap/lintstrap/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "lintstrap [project-root]",
	Short: "Set up golangci-lint for a Go project",
	Long: "lintstrap installs golangci-lint with the best available package manager,\n" +
		"writes a .golangci.yml into your project, adds lint targets to an existing\n" +
		"Makefile, and can wire up a pre-commit hook.",
	Args: cobra.MaximumNArgs(1),
	Run:  runInteractiveMode,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run:   runVersion,
}

var installCmd = &cobra.Command{
	Use:   "install [project-root]",
	Short: "Install without the interactive interface",
	Long:  "Run the full setup non-interactively. Suitable for scripts and CI.",
	Args:  cobra.MaximumNArgs(1),
	Run:   runInstall,
}

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Show the detected platform classification",
	Run:   runDetect,
}

var hookCmd = &cobra.Command{
	Use:   "hook [project-root]",
	Short: "Install only the pre-commit hook",
	Args:  cobra.MaximumNArgs(1),
	Run:   runHook,
}

func resolveProjectRoot(args []string) string {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		log.Fatalf("Cannot resolve project root %s: %v", root, err)
	}
	return abs
}

func runInteractiveMode(cmd *cobra.Command, args []string) {
	projectRoot := resolveProjectRoot(args)

	cfg, err := settings.Load(projectRoot)
	if err != nil {
		log.Fatalf("Error loading settings: %v", err)
	}

	info := platform.Detect()

	model := tui.NewModel(Version, projectRoot, info, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	if m, ok := finalModel.(tui.Model); ok && m.Err() != nil {
		log.Errorf("%v", m.Err())
		os.Exit(1)
	}
}

func runVersion(cmd *cobra.Command, args []string) {
	printASCII()
	fmt.Printf("lintstrap v%s\n", Version)
}

func runDetect(cmd *cobra.Command, args []string) {
	info := platform.Detect()
	fmt.Printf("os: %s\n", info.OS)
	fmt.Printf("distro: %s\n", info.Distro)
	if info.PrettyName != "" {
		fmt.Printf("name: %s\n", info.PrettyName)
	}
	if info.VersionID != "" {
		fmt.Printf("version: %s\n", info.VersionID)
	}
	fmt.Printf("arch: %s\n", info.Architecture)
}

func runHook(cmd *cobra.Command, args []string) {
	projectRoot := resolveProjectRoot(args)

	logChan := make(chan string, 100)
	done := drainLogs(logChan)

	path, err := project.NewHookInstaller(logChan).Install(projectRoot)
	close(logChan)
	<-done

	if err != nil {
		log.Fatalf("%v", err)
	}
	log.Infof("Pre-commit hook installed at %s", path)
}

func printASCII() {
	fmt.Println(`
██╗     ██╗███╗   ██╗████████╗
██║     ██║████╗  ██║╚══██╔══╝
██║     ██║██╔██╗ ██║   ██║
██║     ██║██║╚██╗██║   ██║
███████╗██║██║ ╚████║   ██║
╚══════╝╚═╝╚═╝  ╚═══╝   ╚═╝`)
}

func drainLogs(logChan <-chan string) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		for msg := range logChan {
			log.Info(msg)
		}
		close(done)
	}()
	return done
}
