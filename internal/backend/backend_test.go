package backend

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubExec(t *testing.T, euid int, pathCommands map[string]bool, fail map[string]bool) *[][]string {
	t.Helper()

	origRun := runCommand
	origLook := lookPathFunc
	origEuid := geteuidFunc

	var calls [][]string
	runCommand = func(ctx context.Context, name string, args ...string) ([]byte, error) {
		call := append([]string{name}, args...)
		calls = append(calls, call)
		if fail[strings.Join(call, " ")] {
			return []byte("simulated failure"), errors.New("exit status 1")
		}
		return nil, nil
	}
	lookPathFunc = func(cmd string) (string, error) {
		if pathCommands[cmd] {
			return "/usr/bin/" + cmd, nil
		}
		return "", fmt.Errorf("%s not found", cmd)
	}
	geteuidFunc = func() int { return euid }

	t.Cleanup(func() {
		runCommand = origRun
		lookPathFunc = origLook
		geteuidFunc = origEuid
	})

	return &calls
}

func TestElevateAsRoot(t *testing.T) {
	stubExec(t, 0, map[string]bool{"sudo": true}, nil)
	assert.Equal(t, []string{"apt-get", "update"}, elevate("apt-get", "update"))
}

func TestElevateWithSudo(t *testing.T) {
	stubExec(t, 1000, map[string]bool{"sudo": true}, nil)
	assert.Equal(t, []string{"sudo", "apt-get", "update"}, elevate("apt-get", "update"))
}

func TestElevateWithoutSudo(t *testing.T) {
	stubExec(t, 1000, map[string]bool{}, nil)
	assert.Equal(t, []string{"apt-get", "update"}, elevate("apt-get", "update"))
}

func TestAptInstallRunsUpdateThenInstall(t *testing.T) {
	calls := stubExec(t, 0, map[string]bool{"apt-get": true}, nil)

	apt := NewAptBackend(nil)
	require.True(t, apt.Available())
	require.NoError(t, apt.Install(context.Background()))

	require.Len(t, *calls, 2)
	assert.Equal(t, []string{"apt-get", "update"}, (*calls)[0])
	assert.Equal(t, []string{"apt-get", "install", "-y", LinterPackage}, (*calls)[1])
}

func TestAptInstallFailurePropagates(t *testing.T) {
	stubExec(t, 0, map[string]bool{"apt-get": true}, map[string]bool{
		"apt-get install -y " + LinterPackage: true,
	})

	apt := NewAptBackend(nil)
	err := apt.Install(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "apt-get install failed")
}

func TestBrewNeverElevates(t *testing.T) {
	calls := stubExec(t, 1000, map[string]bool{"brew": true, "sudo": true}, nil)

	brew := NewBrewBackend(nil)
	require.NoError(t, brew.Install(context.Background()))

	require.Len(t, *calls, 1)
	assert.Equal(t, "brew", (*calls)[0][0])
}

func TestPacmanInstallCommand(t *testing.T) {
	calls := stubExec(t, 0, map[string]bool{"pacman": true}, nil)

	pac := NewPacmanBackend(nil)
	require.NoError(t, pac.Install(context.Background()))

	require.Len(t, *calls, 1)
	assert.Equal(t, []string{"pacman", "-S", "--noconfirm", LinterPackage}, (*calls)[0])
}

func TestScriptBackendAvailability(t *testing.T) {
	t.Run("needs sh", func(t *testing.T) {
		stubExec(t, 1000, map[string]bool{"curl": true}, nil)
		assert.False(t, NewScriptBackend(nil).Available())
	})

	t.Run("curl works", func(t *testing.T) {
		stubExec(t, 1000, map[string]bool{"sh": true, "curl": true}, nil)
		assert.True(t, NewScriptBackend(nil).Available())
	})

	t.Run("wget works", func(t *testing.T) {
		stubExec(t, 1000, map[string]bool{"sh": true, "wget": true}, nil)
		assert.True(t, NewScriptBackend(nil).Available())
	})
}

func TestScriptBackendPinsVersion(t *testing.T) {
	calls := stubExec(t, 1000, map[string]bool{"sh": true, "curl": true}, nil)

	sb := NewScriptBackend(nil)
	sb.Version = "v1.64.8"
	sb.BinDir = "/tmp/bin"
	require.NoError(t, sb.Install(context.Background()))

	require.Len(t, *calls, 1)
	pipeline := (*calls)[0][2]
	assert.Contains(t, pipeline, "curl -sSfL")
	assert.Contains(t, pipeline, "-b /tmp/bin")
	assert.True(t, strings.HasSuffix(pipeline, "v1.64.8"))
}
