package platform

import "runtime"

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// Family groups operating systems that share the same opener programs
type Family string

const (
	FamilyLinux   Family = "linux"
	FamilyMac     Family = "mac"
	FamilyWindows Family = "windows"
	FamilyUnknown Family = "unknown"
)

// Current returns the family of the running operating system
func Current() Family {
	return FamilyOf(runtime.GOOS)
}

// FamilyOf maps a GOOS value to its Family
func FamilyOf(goos string) Family {
	switch goos {
	case OSLinux, "freebsd", "openbsd", "netbsd", "dragonfly":
		return FamilyLinux
	case OSDarwin:
		return FamilyMac
	case OSWindows:
		return FamilyWindows
	default:
		return FamilyUnknown
	}
}

