// SPDX-License-Identifier: MPL-2.0

// Package platform provides cross-platform compatibility utilities.
//
// This package centralizes the mapping from operating systems to the
// process-launch conventions spawnkit cares about: which platform family a
// GOOS value belongs to, and which shell executable is the default for that
// family. New platforms are added to the lookup tables here rather than as
// conditional branches at call sites.
package platform
