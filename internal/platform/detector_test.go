package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetProbes points every probe at locations that do not exist so each
// test opts in to exactly the signals it wants.
func resetProbes(t *testing.T) {
	t.Helper()

	tmp := t.TempDir()
	origProc := procVersionPath
	origOSRelease := osReleasePath
	origRedhat := redhatReleasePath
	origArch := archReleasePath
	origGoos := getOsFunc
	origGetenv := getenvFunc

	procVersionPath = filepath.Join(tmp, "proc-version")
	osReleasePath = filepath.Join(tmp, "os-release")
	redhatReleasePath = filepath.Join(tmp, "redhat-release")
	archReleasePath = filepath.Join(tmp, "arch-release")
	getenvFunc = func(string) string { return "" }

	t.Cleanup(func() {
		procVersionPath = origProc
		osReleasePath = origOSRelease
		redhatReleasePath = origRedhat
		archReleasePath = origArch
		getOsFunc = origGoos
		getenvFunc = origGetenv
	})
}

func writeProbe(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestDetectMacOS(t *testing.T) {
	resetProbes(t)
	getOsFunc = func() string { return "darwin" }

	info := Detect()
	assert.Equal(t, TagMacOS, info.OS)
	assert.Equal(t, DistroUnknown, info.Distro)
}

func TestDetectWindows(t *testing.T) {
	resetProbes(t)
	getOsFunc = func() string { return "windows" }

	info := Detect()
	assert.Equal(t, TagWindows, info.OS)
}

func TestDetectUnknownOS(t *testing.T) {
	resetProbes(t)
	getOsFunc = func() string { return "plan9" }

	info := Detect()
	assert.Equal(t, TagUnknown, info.OS)
	assert.Equal(t, DistroUnknown, info.Distro)
}

func TestDetectNativeLinux(t *testing.T) {
	resetProbes(t)
	getOsFunc = func() string { return "linux" }
	writeProbe(t, procVersionPath, "Linux version 6.8.0-45-generic (buildd@lcy02) ...")
	writeProbe(t, osReleasePath, "ID=ubuntu\nVERSION_ID=\"24.04\"\nPRETTY_NAME=\"Ubuntu 24.04 LTS\"\n")

	info := Detect()
	assert.Equal(t, TagLinux, info.OS)
	assert.Equal(t, DistroUbuntu, info.Distro)
	assert.Equal(t, "24.04", info.VersionID)
	assert.Equal(t, "Ubuntu 24.04 LTS", info.PrettyName)
}

func TestDetectWSLViaEnv(t *testing.T) {
	resetProbes(t)
	getOsFunc = func() string { return "linux" }
	getenvFunc = func(key string) string {
		if key == "WSL_DISTRO_NAME" {
			return "Ubuntu"
		}
		return ""
	}
	writeProbe(t, osReleasePath, "ID=ubuntu\nVERSION_ID=\"24.04\"\n")

	info := Detect()
	assert.Equal(t, TagWSL, info.OS)
	assert.Equal(t, DistroUbuntu, info.Distro)
}

func TestDetectWSLViaProcVersion(t *testing.T) {
	resetProbes(t)
	getOsFunc = func() string { return "linux" }
	writeProbe(t, procVersionPath, "Linux version 5.15.167.4-microsoft-standard-WSL2 ...")
	writeProbe(t, osReleasePath, "ID=debian\n")

	info := Detect()
	assert.Equal(t, TagWSL, info.OS)
	assert.Equal(t, DistroDebian, info.Distro)
}

func TestDetectWSLNeverReportsLinux(t *testing.T) {
	resetProbes(t)
	getOsFunc = func() string { return "linux" }
	writeProbe(t, procVersionPath, "Linux version 4.4.0-19041-Microsoft ...")

	info := Detect()
	assert.NotEqual(t, TagLinux, info.OS)
	assert.Equal(t, TagWSL, info.OS)
}
