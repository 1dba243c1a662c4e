package platform

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOSReleaseIDs(t *testing.T) {
	tests := []struct {
		id   string
		want DistroTag
	}{
		{"ubuntu", DistroUbuntu},
		{"debian", DistroDebian},
		{"fedora", DistroFedora},
		{"rhel", DistroRHEL},
		{"centos", DistroCentOS},
		{"arch", DistroArch},
		{"manjaro", DistroManjaro},
		{"gentoo", DistroUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			resetProbes(t)
			writeProbe(t, osReleasePath, fmt.Sprintf("ID=%s\n", tt.id))

			info := &Info{Distro: DistroUnknown}
			detectLinuxDistro(info)
			assert.Equal(t, tt.want, info.Distro)
		})
	}
}

func TestOSReleaseQuotedID(t *testing.T) {
	resetProbes(t)
	writeProbe(t, osReleasePath, "ID=\"centos\"\nVERSION_ID=\"7\"\n")

	info := &Info{Distro: DistroUnknown}
	detectLinuxDistro(info)
	assert.Equal(t, DistroCentOS, info.Distro)
	assert.Equal(t, "7", info.VersionID)
}

func TestOSReleaseIDLikeFallback(t *testing.T) {
	resetProbes(t)
	writeProbe(t, osReleasePath, "ID=linuxmint\nID_LIKE=\"ubuntu debian\"\nPRETTY_NAME=\"Linux Mint 22\"\n")

	info := &Info{Distro: DistroUnknown}
	detectLinuxDistro(info)
	assert.Equal(t, DistroUbuntu, info.Distro)
}

func TestMissingOSReleaseFallsBackToUnknown(t *testing.T) {
	resetProbes(t)

	info := &Info{Distro: DistroUnknown}
	detectLinuxDistro(info)
	assert.Equal(t, DistroUnknown, info.Distro)
}

func TestRedHatReleaseFallback(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    DistroTag
	}{
		{"centos", "CentOS Linux release 7.9.2009 (Core)\n", DistroCentOS},
		{"rhel", "Red Hat Enterprise Linux release 8.10 (Ootpa)\n", DistroRHEL},
		{"fedora", "Fedora release 40 (Forty)\n", DistroFedora},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetProbes(t)
			writeProbe(t, redhatReleasePath, tt.content)

			info := &Info{Distro: DistroUnknown}
			detectLinuxDistro(info)
			assert.Equal(t, tt.want, info.Distro)
		})
	}
}

func TestArchReleaseFallback(t *testing.T) {
	resetProbes(t)
	writeProbe(t, archReleasePath, "")

	info := &Info{Distro: DistroUnknown}
	detectLinuxDistro(info)
	assert.Equal(t, DistroArch, info.Distro)
}

func TestOSReleaseTakesPrecedenceOverFallbacks(t *testing.T) {
	resetProbes(t)
	writeProbe(t, osReleasePath, "ID=fedora\n")
	writeProbe(t, redhatReleasePath, "CentOS Linux release 7.9.2009 (Core)\n")
	writeProbe(t, archReleasePath, "")

	info := &Info{Distro: DistroUnknown}
	detectLinuxDistro(info)
	assert.Equal(t, DistroFedora, info.Distro)
}
