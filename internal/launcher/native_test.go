// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"spawnkit/internal/spawn"
)

// requireShell skips tests that need a POSIX shell on the host.
func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("no 'sh' on PATH")
	}
}

// shellDescriptor builds a shell-wrapped descriptor for a command line.
func shellDescriptor(t *testing.T, line string, mutate func(*spawn.Options)) spawn.Descriptor {
	t.Helper()
	opts := &spawn.Options{Shell: "sh"}
	if mutate != nil {
		mutate(opts)
	}
	return opts.Descriptor(line, nil)
}

func TestNew(t *testing.T) {
	t.Parallel()

	if l, err := New(TypeNative); err != nil || l.Name() != "native" {
		t.Errorf("New(TypeNative) = (%v, %v), want native launcher", l, err)
	}
	if l, err := New(TypeVirtual); err != nil || l.Name() != "virtual" {
		t.Errorf("New(TypeVirtual) = (%v, %v), want virtual launcher", l, err)
	}
	if _, err := New(Type("container")); !errors.Is(err, ErrUnknownLauncher) {
		t.Errorf("New(container) error = %v, want ErrUnknownLauncher", err)
	}
}

func TestRun_RejectsInvalidDescriptor(t *testing.T) {
	t.Parallel()

	result := Run(context.Background(), NewNativeLauncher(), spawn.Descriptor{}, IOStreams{})
	if result.Error == nil || result.ExitCode != 1 {
		t.Errorf("Run with empty program = %+v, want validation error", result)
	}
}

func TestNativeLauncher_CapturesOutputByDefault(t *testing.T) {
	t.Parallel()
	requireShell(t)

	d := shellDescriptor(t, "printf hello", nil)
	result := NewNativeLauncher().Launch(context.Background(), d, IOStreams{})

	if result.Error != nil {
		t.Fatalf("Launch unexpected error: %v", result.Error)
	}
	if result.ExitCode != 0 {
		t.Fatalf("ExitCode = %d, want 0", result.ExitCode)
	}
	if result.Output != "hello" {
		t.Errorf("Output = %q, want %q", result.Output, "hello")
	}
}

func TestNativeLauncher_ReportsExitCode(t *testing.T) {
	t.Parallel()
	requireShell(t)

	d := shellDescriptor(t, "exit 3", nil)
	result := NewNativeLauncher().Launch(context.Background(), d, IOStreams{})

	if result.Error != nil {
		t.Fatalf("non-zero exit should not be an Error: %v", result.Error)
	}
	if result.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", result.ExitCode)
	}
}

func TestNativeLauncher_EnvOverlayIsAdditive(t *testing.T) {
	t.Parallel()
	requireShell(t)

	l := &NativeLauncher{
		Environ: func() []string { return []string{"PATH=" + os.Getenv("PATH"), "BASE=from-host"} },
	}
	d := shellDescriptor(t, `printf "$BASE:$EXTRA"`, func(o *spawn.Options) {
		o.Env = map[string]string{"EXTRA": "from-overlay"}
	})

	result := l.Launch(context.Background(), d, IOStreams{})
	if result.Error != nil {
		t.Fatalf("Launch unexpected error: %v", result.Error)
	}
	if want := "from-host:from-overlay"; result.Output != want {
		t.Errorf("Output = %q, want %q", result.Output, want)
	}
}

func TestNativeLauncher_StdinPayload(t *testing.T) {
	t.Parallel()
	requireShell(t)

	d := shellDescriptor(t, "cat", func(o *spawn.Options) {
		o.Stdio = &StdioSpec{Stdin: "payload"}
	})

	result := NewNativeLauncher().Launch(context.Background(), d, IOStreams{})
	if result.Error != nil {
		t.Fatalf("Launch unexpected error: %v", result.Error)
	}
	if result.Output != "payload" {
		t.Errorf("Output = %q, want %q", result.Output, "payload")
	}
}

func TestNativeLauncher_StdioNoneDiscards(t *testing.T) {
	t.Parallel()
	requireShell(t)

	d := shellDescriptor(t, "printf hello; printf oops >&2", func(o *spawn.Options) {
		o.Stdio = &StdioSpec{Stdout: StdioNone, Stderr: StdioNone}
	})

	result := NewNativeLauncher().Launch(context.Background(), d, IOStreams{})
	if result.Error != nil {
		t.Fatalf("Launch unexpected error: %v", result.Error)
	}
	if result.Output != "" || result.ErrOutput != "" {
		t.Errorf("discarded streams should capture nothing, got (%q, %q)", result.Output, result.ErrOutput)
	}
}

func TestNativeLauncher_StdioForwardStreamsAndCaptures(t *testing.T) {
	t.Parallel()
	requireShell(t)

	var forwarded strings.Builder
	d := shellDescriptor(t, "printf hello", func(o *spawn.Options) {
		o.Stdio = &StdioSpec{Stdout: StdioForward}
	})

	result := NewNativeLauncher().Launch(context.Background(), d, IOStreams{Out: &forwarded})
	if result.Error != nil {
		t.Fatalf("Launch unexpected error: %v", result.Error)
	}
	if forwarded.String() != "hello" {
		t.Errorf("forwarded = %q, want %q", forwarded.String(), "hello")
	}
	if result.Output != "hello" {
		t.Errorf("Output = %q, want %q", result.Output, "hello")
	}
}

func TestNativeLauncher_AppliesWorkingDirectory(t *testing.T) {
	t.Parallel()
	requireShell(t)

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "marker.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	d := shellDescriptor(t, "ls", func(o *spawn.Options) {
		o.Cwd = dir
	})

	result := NewNativeLauncher().Launch(context.Background(), d, IOStreams{})
	if result.Error != nil {
		t.Fatalf("Launch unexpected error: %v", result.Error)
	}
	if !strings.Contains(result.Output, "marker.txt") {
		t.Errorf("Output = %q, want listing containing marker.txt", result.Output)
	}
}

func TestNativeLauncher_LaunchFailureIsError(t *testing.T) {
	t.Parallel()

	d := (&spawn.Options{}).Descriptor("spawnkit-test-no-such-binary", nil)
	result := NewNativeLauncher().Launch(context.Background(), d, IOStreams{})

	if result.Error == nil {
		t.Error("launching a missing program should set Result.Error")
	}
	if result.ExitCode != 1 {
		t.Errorf("ExitCode = %d, want 1", result.ExitCode)
	}
}
