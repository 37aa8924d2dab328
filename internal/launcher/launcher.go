// SPDX-License-Identifier: MPL-2.0

// Package launcher executes command descriptors produced by the spawn
// package. It is the process-launch collaborator: descriptors arrive
// finalized and immutable, and the launcher only interprets them.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"spawnkit/internal/spawn"
)

// Launcher type constants for the available execution strategies.
const (
	// TypeNative launches descriptors as OS processes via os/exec.
	TypeNative Type = "native"
	// TypeVirtual interprets shell-wrapped descriptors in-process with
	// the embedded mvdan/sh shell.
	TypeVirtual Type = "virtual"
)

var (
	// ErrUnknownLauncher is returned by New for unrecognized launcher types.
	ErrUnknownLauncher = errors.New("unknown launcher")

	// ErrLauncherUnavailable is wrapped into Run's result when the selected
	// launcher cannot run on this system.
	ErrLauncherUnavailable = errors.New("launcher not available")
)

type (
	// Type identifies a launcher implementation.
	Type string

	// IOStreams groups the standard streams a launched process may attach
	// to. Nil fields fall back to the corresponding os.Std* stream.
	IOStreams struct {
		In  io.Reader
		Out io.Writer
		Err io.Writer
	}

	// Result contains the outcome of one launch.
	Result struct {
		// ExitCode is the exit code of the process.
		ExitCode int
		// Error contains any infrastructure error that occurred. A non-zero
		// exit from a process that ran normally is not an Error.
		Error error
		// Output contains captured stdout, when the stdio configuration
		// captures it.
		Output string
		// ErrOutput contains captured stderr, when captured.
		ErrOutput string
	}

	// Launcher is the interface for executing a command descriptor.
	Launcher interface {
		// Name returns the launcher name.
		Name() string
		// Available returns whether this launcher can run on this system.
		Available() bool
		// Validate checks whether the descriptor can be launched.
		Validate(d spawn.Descriptor) error
		// Launch runs the descriptor to completion.
		Launch(ctx context.Context, d spawn.Descriptor, streams IOStreams) *Result
	}

	// InteractiveLauncher is implemented by launchers that support PTY
	// attachment for full terminal interaction.
	InteractiveLauncher interface {
		Launcher

		// SupportsInteractive returns whether interactive launch is possible
		// on this system.
		SupportsInteractive() bool

		// LaunchInteractive runs the descriptor attached to a pseudo-terminal
		// wired to the caller's terminal.
		LaunchInteractive(ctx context.Context, d spawn.Descriptor) *Result
	}
)

// New creates a launcher of the given type.
func New(t Type) (Launcher, error) {
	switch t {
	case TypeNative:
		return NewNativeLauncher(), nil
	case TypeVirtual:
		return NewVirtualLauncher(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLauncher, t)
	}
}

// Run validates availability and the descriptor before launching.
func Run(ctx context.Context, l Launcher, d spawn.Descriptor, streams IOStreams) *Result {
	if !l.Available() {
		return &Result{
			ExitCode: 1,
			Error:    fmt.Errorf("%w: '%s' cannot run on this system", ErrLauncherUnavailable, l.Name()),
		}
	}

	if err := l.Validate(d); err != nil {
		return &Result{ExitCode: 1, Error: err}
	}

	return l.Launch(ctx, d, streams)
}

// NewErrorResult creates a Result with the given exit code and error.
func NewErrorResult(code int, err error) *Result {
	return &Result{ExitCode: code, Error: err}
}

// fill replaces nil streams with the process's own standard streams.
func (s IOStreams) fill() IOStreams {
	if s.In == nil {
		s.In = os.Stdin
	}
	if s.Out == nil {
		s.Out = os.Stdout
	}
	if s.Err == nil {
		s.Err = os.Stderr
	}
	return s
}
