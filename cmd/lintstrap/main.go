package main

import (
	"github.com/lintstrap/lintstrap/internal/log"
)

var Version = "dev"

func init() {
	installCmd.Flags().Bool("yes-hook", false, "Install the pre-commit hook without prompting")
	installCmd.Flags().Bool("no-hook", false, "Skip the pre-commit hook entirely")
	installCmd.Flags().String("config", "", "Path to a custom .golangci.yml template")
	installCmd.Flags().String("version-pin", "", "Pin the golangci-lint version for the script backend")
	installCmd.Flags().Bool("skip-makefile", false, "Do not add lint targets to the Makefile")

	rootCmd.AddCommand(versionCmd, installCmd, detectCmd, hookCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
