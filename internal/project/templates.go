package project

// GolangciConfigTemplate is the bundled lint configuration written into the
// target project as .golangci.yml.
const GolangciConfigTemplate = `run:
  timeout: 5m
  tests: true

linters:
  enable:
    - errcheck
    - govet
    - staticcheck
    - unused
    - ineffassign
    - gosimple
    - gofmt
    - goimports
    - misspell
    - revive

linters-settings:
  goimports:
    local-prefixes: ""
  revive:
    rules:
      - name: exported
        disabled: true

issues:
  exclude-rules:
    - path: _test\.go
      linters:
        - errcheck
  max-issues-per-linter: 0
  max-same-issues: 0
`

// MakefileTargets is appended to an existing Makefile when it has no lint
// target yet.
const MakefileTargets = `
lint:
	golangci-lint run ./...

lint-fix:
	golangci-lint run --fix ./...

.PHONY: lint lint-fix
`

// PreCommitHook runs the linter against staged code before every commit.
const PreCommitHook = `#!/bin/sh
# Installed by lintstrap. Runs golangci-lint before each commit.

if ! command -v golangci-lint >/dev/null 2>&1; then
    echo "pre-commit: golangci-lint not found in PATH, skipping lint"
    exit 0
fi

golangci-lint run ./...
`
