package backend

import (
	"context"
	"fmt"

	"github.com/lintstrap/lintstrap/internal/errdefs"
	"github.com/lintstrap/lintstrap/internal/platform"
)

// genericOrder is tried when the platform gives us nothing to go on.
var genericOrder = []string{"brew", "apt", "dnf", "yum", "pacman", "snap", "flatpak", "script"}

// orderFor returns the backend names to try for a platform, best fit first.
func orderFor(info *platform.Info) []string {
	switch info.OS {
	case platform.TagMacOS:
		return []string{"brew", "script"}
	case platform.TagLinux, platform.TagWSL:
		switch info.Distro {
		case platform.DistroUbuntu, platform.DistroDebian:
			return []string{"apt", "snap", "flatpak", "script"}
		case platform.DistroFedora:
			return []string{"dnf", "snap", "flatpak", "script"}
		case platform.DistroRHEL, platform.DistroCentOS:
			return []string{"dnf", "yum", "snap", "flatpak", "script"}
		case platform.DistroArch, platform.DistroManjaro:
			return []string{"pacman", "script"}
		}
	}
	return genericOrder
}

// New creates a backend by name.
func New(name string, logChan chan<- string) (Backend, error) {
	switch name {
	case "brew":
		return NewBrewBackend(logChan), nil
	case "apt":
		return NewAptBackend(logChan), nil
	case "dnf":
		return NewDNFBackend(logChan), nil
	case "yum":
		return NewYumBackend(logChan), nil
	case "pacman":
		return NewPacmanBackend(logChan), nil
	case "snap":
		return NewSnapBackend(logChan), nil
	case "flatpak":
		return NewFlatpakBackend(logChan), nil
	case "script":
		return NewScriptBackend(logChan), nil
	default:
		return nil, fmt.Errorf("unknown backend: %s", name)
	}
}

// ChainFor builds the ordered backend chain for the detected platform.
func ChainFor(info *platform.Info, logChan chan<- string) []Backend {
	return chainFromNames(orderFor(info), logChan)
}

// ChainFromNames builds a chain from an explicit order, skipping names it
// does not recognize. Used for user-supplied backend overrides.
func ChainFromNames(names []string, logChan chan<- string) []Backend {
	return chainFromNames(names, logChan)
}

func chainFromNames(names []string, logChan chan<- string) []Backend {
	var chain []Backend
	for _, name := range names {
		b, err := New(name, logChan)
		if err != nil {
			log(logChan, fmt.Sprintf("Skipping %v", err))
			continue
		}
		chain = append(chain, b)
	}
	return chain
}

// Run attempts each backend in order and stops at the first success,
// returning the name of the backend that worked. Failed attempts fall
// through; they are never retried. When every backend fails the error is
// fatal to the caller.
func Run(ctx context.Context, chain []Backend, progress ProgressFunc) (string, error) {
	if len(chain) == 0 {
		return "", errdefs.NewCustomError(errdefs.ErrTypeInstallFailed, "no installation backends configured")
	}

	for i, b := range chain {
		if progress != nil {
			progress(b.Name(), fmt.Sprintf("Trying %s...", b.Name()), float64(i)/float64(len(chain)))
		}

		if !b.Available() {
			if progress != nil {
				progress(b.Name(), fmt.Sprintf("%s not available, skipping", b.Name()), float64(i+1)/float64(len(chain)))
			}
			continue
		}

		if err := b.Install(ctx); err != nil {
			if progress != nil {
				progress(b.Name(), fmt.Sprintf("%s failed, falling back", b.Name()), float64(i+1)/float64(len(chain)))
			}
			continue
		}

		if progress != nil {
			progress(b.Name(), fmt.Sprintf("Installed via %s", b.Name()), 1.0)
		}
		return b.Name(), nil
	}

	return "", errdefs.NewCustomError(errdefs.ErrTypeInstallFailed,
		fmt.Sprintf("could not install %s: all %d backends failed or were unavailable", LinterPackage, len(chain)))
}
