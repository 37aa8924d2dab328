// SPDX-License-Identifier: MPL-2.0

//go:build !windows

package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"spawnkit/internal/spawn"

	"github.com/creack/pty"
)

// SupportsInteractive returns whether interactive launch is possible.
func (l *NativeLauncher) SupportsInteractive() bool {
	return true
}

// LaunchInteractive runs the descriptor attached to a pseudo-terminal wired
// to the caller's terminal. The descriptor's stdio configuration is ignored;
// a PTY replaces all three streams.
func (l *NativeLauncher) LaunchInteractive(ctx context.Context, d spawn.Descriptor) *Result {
	cmd := l.buildCmd(ctx, d)

	ptmx, err := pty.Start(cmd)
	if err != nil {
		return NewErrorResult(1, fmt.Errorf("failed to start pty for '%s': %w", d.Program, err))
	}
	defer func() { _ = ptmx.Close() }()

	go func() {
		_, _ = io.Copy(ptmx, os.Stdin)
	}()
	_, _ = io.Copy(os.Stdout, ptmx)

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &Result{ExitCode: exitErr.ExitCode()}
		}
		return NewErrorResult(1, fmt.Errorf("interactive launch failed: %w", err))
	}

	return &Result{}
}
