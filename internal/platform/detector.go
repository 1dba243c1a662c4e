package platform

import (
	"os"
	"runtime"
	"strings"
)

// Tag classifies the host operating system.
type Tag string

const (
	TagMacOS   Tag = "macos"
	TagLinux   Tag = "linux"
	TagWSL     Tag = "wsl"
	TagWindows Tag = "windows"
	TagUnknown Tag = "unknown"
)

// DistroTag classifies a Linux distribution family.
type DistroTag string

const (
	DistroUbuntu  DistroTag = "ubuntu"
	DistroDebian  DistroTag = "debian"
	DistroFedora  DistroTag = "fedora"
	DistroRHEL    DistroTag = "rhel"
	DistroCentOS  DistroTag = "centos"
	DistroArch    DistroTag = "arch"
	DistroManjaro DistroTag = "manjaro"
	DistroUnknown DistroTag = "unknown"
)

// Info describes the detected host platform.
type Info struct {
	OS           Tag
	Distro       DistroTag
	Version      string
	VersionID    string
	PrettyName   string
	Architecture string
}

var getOsFunc = getGoos
var getArchFunc = getGoarch
var getenvFunc = os.Getenv

func getGoos() string {
	return runtime.GOOS
}

func getGoarch() string {
	return runtime.GOARCH
}

// Detect classifies the current host. It never fails; anything it cannot
// identify is tagged unknown.
func Detect() *Info {
	info := &Info{
		OS:           TagUnknown,
		Distro:       DistroUnknown,
		Architecture: getArchFunc(),
	}

	switch getOsFunc() {
	case "darwin":
		info.OS = TagMacOS
	case "windows":
		info.OS = TagWindows
	case "linux":
		if isWSL() {
			info.OS = TagWSL
		} else {
			info.OS = TagLinux
		}
		detectLinuxDistro(info)
	}

	return info
}

// isWSL reports whether the kernel is running under Windows Subsystem for
// Linux. WSL sets WSL_DISTRO_NAME for every session; older releases are
// caught by the Microsoft marker in /proc/version.
func isWSL() bool {
	if getenvFunc("WSL_DISTRO_NAME") != "" {
		return true
	}

	data, err := readFileFunc(procVersionPath)
	if err != nil {
		return false
	}

	version := strings.ToLower(string(data))
	return strings.Contains(version, "microsoft") || strings.Contains(version, "wsl")
}
