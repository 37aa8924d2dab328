// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"spawnkit/internal/spawn"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// ErrNotShellWrapped is returned when the virtual launcher receives a
// descriptor that was synthesized for direct invocation.
var ErrNotShellWrapped = errors.New("descriptor is not shell-wrapped")

// VirtualLauncher interprets shell-wrapped descriptors in-process with the
// embedded mvdan/sh shell instead of spawning an external shell executable.
// The shell name in the descriptor is ignored; the command string is what
// gets interpreted.
type VirtualLauncher struct{}

// NewVirtualLauncher creates a new virtual launcher.
func NewVirtualLauncher() *VirtualLauncher {
	return &VirtualLauncher{}
}

// Name returns the launcher name.
func (l *VirtualLauncher) Name() string {
	return string(TypeVirtual)
}

// Available returns whether this launcher is available.
func (l *VirtualLauncher) Available() bool {
	// The interpreter is compiled in.
	return true
}

// Validate checks that the descriptor is shell-wrapped and that its command
// string parses as shell syntax.
func (l *VirtualLauncher) Validate(d spawn.Descriptor) error {
	line, err := commandLineOf(d)
	if err != nil {
		return err
	}
	if _, err := syntax.NewParser().Parse(strings.NewReader(line), "command"); err != nil {
		return fmt.Errorf("command syntax error: %w", err)
	}
	if _, err := stdioSpecOf(d); err != nil {
		return err
	}
	return nil
}

// Launch interprets the descriptor's command string to completion.
func (l *VirtualLauncher) Launch(ctx context.Context, d spawn.Descriptor, streams IOStreams) *Result {
	line, err := commandLineOf(d)
	if err != nil {
		return NewErrorResult(1, err)
	}

	prog, err := syntax.NewParser().Parse(strings.NewReader(line), "command")
	if err != nil {
		return NewErrorResult(1, fmt.Errorf("failed to parse command: %w", err))
	}

	stdio, err := stdioSpecOf(d)
	if err != nil {
		return NewErrorResult(1, err)
	}

	streams = streams.fill()

	var stdoutBuf, stderrBuf bytes.Buffer
	opts := []interp.RunnerOption{
		interp.Env(expand.ListEnviron(OverlayEnv(os.Environ(), d.Env)...)),
		interp.StdIO(
			stdinReader(stdio, streams),
			outputWriter(stdio.Stdout, streams.Out, &stdoutBuf),
			outputWriter(stdio.Stderr, streams.Err, &stderrBuf),
		),
	}
	if d.Dir != "" {
		opts = append(opts, interp.Dir(d.Dir))
	}

	runner, err := interp.New(opts...)
	if err != nil {
		return NewErrorResult(1, fmt.Errorf("failed to create interpreter: %w", err))
	}

	slog.Debug("interpreting command in-process", "command", line, "dir", d.Dir)

	result := &Result{}
	if err := runner.Run(ctx, prog); err != nil {
		var exitStatus interp.ExitStatus
		if errors.As(err, &exitStatus) {
			result.ExitCode = int(exitStatus)
		} else {
			result.ExitCode = 1
			result.Error = fmt.Errorf("command execution failed: %w", err)
		}
	}

	result.Output = stdoutBuf.String()
	result.ErrOutput = stderrBuf.String()
	return result
}

// commandLineOf extracts the shell command string from a shell-wrapped
// descriptor.
func commandLineOf(d spawn.Descriptor) (string, error) {
	if len(d.Args) != 2 || d.Args[0] != spawn.ShellCommandFlag {
		return "", fmt.Errorf("%w: the virtual launcher requires options with a shell set", ErrNotShellWrapped)
	}
	return d.Args[1], nil
}
