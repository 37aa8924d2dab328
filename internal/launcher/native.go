// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"spawnkit/internal/spawn"
)

// NativeLauncher runs descriptors as real OS processes via os/exec.
type NativeLauncher struct {
	// Environ supplies the host environment used as the overlay base.
	// When nil, os.Environ() is used.
	Environ func() []string
}

// NewNativeLauncher creates a new native launcher.
func NewNativeLauncher() *NativeLauncher {
	return &NativeLauncher{}
}

// Name returns the launcher name.
func (l *NativeLauncher) Name() string {
	return string(TypeNative)
}

// Available returns whether this launcher is available.
func (l *NativeLauncher) Available() bool {
	// Launching OS processes needs nothing beyond the OS itself.
	return true
}

// Validate checks whether the descriptor can be launched.
func (l *NativeLauncher) Validate(d spawn.Descriptor) error {
	if d.Program == "" {
		return fmt.Errorf("descriptor has no program to launch")
	}
	if _, err := stdioSpecOf(d); err != nil {
		return err
	}
	return nil
}

// Launch runs the descriptor to completion.
func (l *NativeLauncher) Launch(ctx context.Context, d spawn.Descriptor, streams IOStreams) *Result {
	stdio, err := stdioSpecOf(d)
	if err != nil {
		return NewErrorResult(1, err)
	}

	streams = streams.fill()
	cmd := l.buildCmd(ctx, d)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdin = stdinReader(stdio, streams)
	cmd.Stdout = outputWriter(stdio.Stdout, streams.Out, &stdoutBuf)
	cmd.Stderr = outputWriter(stdio.Stderr, streams.Err, &stderrBuf)

	slog.Debug("launching process",
		"program", d.Program,
		"args", d.Args,
		"dir", d.Dir,
		"env_overlay", len(d.Env))

	result := &Result{}
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.ExitCode = 1
			result.Error = fmt.Errorf("failed to launch '%s': %w", d.Program, err)
		}
	}

	result.Output = stdoutBuf.String()
	result.ErrOutput = stderrBuf.String()
	return result
}

// buildCmd translates a descriptor into an exec.Cmd with the working
// directory and the additive environment overlay applied. Stdio is left for
// the caller, which differs between plain and interactive launches.
func (l *NativeLauncher) buildCmd(ctx context.Context, d spawn.Descriptor) *exec.Cmd {
	cmd := exec.CommandContext(ctx, d.Program, d.Args...)
	if d.Dir != "" {
		cmd.Dir = d.Dir
	}
	if len(d.Env) > 0 {
		cmd.Env = OverlayEnv(l.environ(), d.Env)
	}
	return cmd
}

func (l *NativeLauncher) environ() []string {
	if l.Environ != nil {
		return l.Environ()
	}
	return os.Environ()
}

// stdinReader selects the child's standard input: a configured payload wins
// over the caller's stream.
func stdinReader(stdio *StdioSpec, streams IOStreams) io.Reader {
	if stdio.Stdin != "" {
		return strings.NewReader(stdio.Stdin)
	}
	return streams.In
}

// outputWriter wires one output stream according to its kind. A nil return
// lets os/exec discard the stream.
func outputWriter(kind StdioKind, stream io.Writer, capture *bytes.Buffer) io.Writer {
	switch kind.orDefault() {
	case StdioInherit:
		return stream
	case StdioForward:
		return io.MultiWriter(stream, capture)
	case StdioNone:
		return nil
	default:
		return capture
	}
}
