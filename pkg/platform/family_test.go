// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"runtime"
	"testing"
)

func TestFamilyOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		goos string
		want Family
	}{
		{goos: "linux", want: FamilyUnix},
		{goos: "darwin", want: FamilyUnix},
		{goos: "freebsd", want: FamilyUnix},
		{goos: "openbsd", want: FamilyUnix},
		{goos: "windows", want: FamilyWindows},
		{goos: "js", want: FamilyOther},
		{goos: "wasip1", want: FamilyOther},
		{goos: "plan9", want: FamilyOther},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			t.Parallel()
			if got := FamilyOf(tt.goos); got != tt.want {
				t.Errorf("FamilyOf(%q) = %q, want %q", tt.goos, got, tt.want)
			}
		})
	}
}

func TestDefaultShell(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		family Family
		want   string
		wantOK bool
	}{
		{name: "unix", family: FamilyUnix, want: "/bin/sh", wantOK: true},
		{name: "windows", family: FamilyWindows, want: "powershell", wantOK: true},
		{name: "other has no default", family: FamilyOther, want: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := DefaultShell(tt.family)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("DefaultShell(%q) = (%q, %v), want (%q, %v)", tt.family, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestCurrentFamily_MatchesRuntime(t *testing.T) {
	t.Parallel()

	if got, want := CurrentFamily(), FamilyOf(runtime.GOOS); got != want {
		t.Errorf("CurrentFamily() = %q, want %q", got, want)
	}
}
