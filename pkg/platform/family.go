// SPDX-License-Identifier: MPL-2.0

package platform

import "runtime"

// Family constants group operating systems by their process-launch
// conventions.
const (
	// FamilyUnix covers POSIX-like systems (Linux, the BSDs, macOS, ...).
	FamilyUnix Family = "unix"
	// FamilyWindows covers the Windows family.
	FamilyWindows Family = "windows"
	// FamilyOther covers everything else (js, wasip1, plan9, ...).
	FamilyOther Family = "other"
)

// Family identifies the platform family a GOOS value belongs to.
type Family string

// families maps runtime.GOOS values to their platform family.
// GOOS values absent from the table resolve to FamilyOther.
var families = map[string]Family{
	"aix":       FamilyUnix,
	"android":   FamilyUnix,
	Darwin:      FamilyUnix,
	"dragonfly": FamilyUnix,
	"freebsd":   FamilyUnix,
	"illumos":   FamilyUnix,
	"ios":       FamilyUnix,
	Linux:       FamilyUnix,
	"netbsd":    FamilyUnix,
	"openbsd":   FamilyUnix,
	"solaris":   FamilyUnix,
	Windows:     FamilyWindows,
}

// defaultShells maps each platform family to its default shell executable.
// Families without an entry have no default shell; callers treat that as
// direct invocation.
var defaultShells = map[Family]string{
	FamilyUnix:    "/bin/sh",
	FamilyWindows: "powershell",
}

// CurrentFamily returns the platform family of the running system.
func CurrentFamily() Family {
	return FamilyOf(runtime.GOOS)
}

// FamilyOf returns the platform family for a GOOS value.
func FamilyOf(goos string) Family {
	if f, ok := families[goos]; ok {
		return f
	}
	return FamilyOther
}

// DefaultShell returns the default shell executable for a platform family
// and whether the family has one.
func DefaultShell(f Family) (string, bool) {
	shell, ok := defaultShells[f]
	return shell, ok
}
