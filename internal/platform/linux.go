package platform

import (
	"bufio"
	"os"
	"strings"
)

var osOpen = os.Open
var readFileFunc = os.ReadFile
var statFunc = os.Stat

var (
	procVersionPath   = "/proc/version"
	osReleasePath     = "/etc/os-release"
	redhatReleasePath = "/etc/redhat-release"
	archReleasePath   = "/etc/arch-release"
)

func detectLinuxDistro(info *Info) {
	if err := readOSRelease(info); err == nil && info.Distro != DistroUnknown {
		return
	}

	if readRedHatRelease(info) {
		return
	}

	if _, err := statFunc(archReleasePath); err == nil {
		info.Distro = DistroArch
	}
}

func readOSRelease(info *Info) error {
	file, err := osOpen(osReleasePath)
	if err != nil {
		return err
	}
	defer file.Close()

	var idLike string

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := parts[0]
		value := strings.Trim(parts[1], "\"")

		switch key {
		case "ID":
			info.Distro = classifyID(strings.ToLower(value))
		case "ID_LIKE":
			idLike = strings.ToLower(value)
		case "VERSION_ID":
			info.VersionID = value
		case "VERSION":
			info.Version = value
		case "PRETTY_NAME":
			info.PrettyName = value
		}
	}

	// Derivatives advertise their parent family via ID_LIKE.
	if info.Distro == DistroUnknown {
		for _, id := range strings.Fields(idLike) {
			if tag := classifyID(id); tag != DistroUnknown {
				info.Distro = tag
				break
			}
		}
	}

	return scanner.Err()
}

func classifyID(id string) DistroTag {
	switch id {
	case "ubuntu":
		return DistroUbuntu
	case "debian":
		return DistroDebian
	case "fedora":
		return DistroFedora
	case "rhel":
		return DistroRHEL
	case "centos":
		return DistroCentOS
	case "arch":
		return DistroArch
	case "manjaro":
		return DistroManjaro
	}
	return DistroUnknown
}

func readRedHatRelease(info *Info) bool {
	data, err := readFileFunc(redhatReleasePath)
	if err != nil {
		return false
	}

	release := strings.ToLower(string(data))
	switch {
	case strings.Contains(release, "centos"):
		info.Distro = DistroCentOS
	case strings.Contains(release, "fedora"):
		info.Distro = DistroFedora
	case strings.Contains(release, "red hat"):
		info.Distro = DistroRHEL
	default:
		return false
	}

	if info.PrettyName == "" {
		info.PrettyName = strings.TrimSpace(string(data))
	}
	return true
}
