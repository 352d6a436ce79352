// Package osinfo resolves the host OS family once at startup.
//
// Exactly two families are recognized. Anything that is not macOS is
// treated as the Linux server/container family.
package osinfo

import (
	"fmt"
	"runtime"
	"strings"
)

// Family selects which package manager and path conventions apply
type Family string

const (
	MacOS Family = "macos"
	Linux Family = "linux"
)

// Families lists the recognized families in a stable order
var Families = []Family{MacOS, Linux}

// Host is the process-wide platform value threaded into install planning
type Host struct {
	Family Family
	Arch   string // "arm64" or "x86_64"
}

// FromGOOS maps a GOOS value to a family
func FromGOOS(goos string) Family {
	if goos == "darwin" {
		return MacOS
	}
	return Linux
}

// ArchFromGOARCH maps a GOARCH value to the naming used by vendor installers
func ArchFromGOARCH(goarch string) string {
	if goarch == "arm64" {
		return "arm64"
	}
	return "x86_64"
}

// Detect returns the host the process is running on
func Detect() Host {
	return Host{
		Family: FromGOOS(runtime.GOOS),
		Arch:   ArchFromGOARCH(runtime.GOARCH),
	}
}

// Resolve returns the detected host, with the family replaced when override
// names one. An empty override or "auto" keeps the detected family.
func Resolve(override string) (Host, error) {
	host := Detect()
	switch strings.ToLower(strings.TrimSpace(override)) {
	case "", "auto":
		return host, nil
	case string(MacOS), "darwin":
		host.Family = MacOS
	case string(Linux):
		host.Family = Linux
	default:
		return Host{}, fmt.Errorf("unknown os family %q (want auto, macos or linux)", override)
	}
	return host, nil
}

func (f Family) String() string { return string(f) }
