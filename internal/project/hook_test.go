package project

import (
	"os"
	"path/filepath"
	"testing"

	git "github.com/go-git/go-git/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lintstrap/lintstrap/internal/errdefs"
)

func initRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	return dir
}

func TestHookInstall(t *testing.T) {
	dir := initRepo(t)

	installer := NewHookInstaller(nil)
	path, err := installer.Install(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".git", "hooks", "pre-commit"), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&0111, "hook must be executable")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "golangci-lint run")
}

func TestHookInstallOverwritesExisting(t *testing.T) {
	dir := initRepo(t)
	hooksDir := filepath.Join(dir, ".git", "hooks")
	require.NoError(t, os.MkdirAll(hooksDir, 0755))
	hookPath := filepath.Join(hooksDir, "pre-commit")
	require.NoError(t, os.WriteFile(hookPath, []byte("#!/bin/sh\necho old\n"), 0755))

	installer := NewHookInstaller(nil)
	path, err := installer.Install(dir)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "echo old")
	assert.Contains(t, string(data), "golangci-lint")
}

func TestHookInstallRequiresGitRepo(t *testing.T) {
	dir := t.TempDir()

	installer := NewHookInstaller(nil)
	_, err := installer.Install(dir)
	require.Error(t, err)
	assert.True(t, errdefs.IsType(err, errdefs.ErrTypeNotGitRepo))

	// Declining-or-failing must not leave a hook behind.
	_, statErr := os.Stat(filepath.Join(dir, ".git", "hooks", "pre-commit"))
	assert.True(t, os.IsNotExist(statErr))
}
