// SPDX-License-Identifier: MPL-2.0

//go:build windows

package launcher

import (
	"context"
	"errors"

	"spawnkit/internal/spawn"
)

// SupportsInteractive returns whether interactive launch is possible.
func (l *NativeLauncher) SupportsInteractive() bool {
	return false
}

// LaunchInteractive is not supported on Windows; there is no Unix PTY to
// attach.
func (l *NativeLauncher) LaunchInteractive(_ context.Context, _ spawn.Descriptor) *Result {
	return NewErrorResult(1, errors.New("interactive launch is not supported on windows"))
}
