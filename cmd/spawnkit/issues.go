// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"

	"spawnkit/internal/config"
	"spawnkit/internal/issue"
	"spawnkit/internal/launcher"
	"spawnkit/internal/spawn"
)

// hintIssue prints the rendered catalog entry for a known failure mode to
// stderr, after the error itself has been reported. Rendering failures fall
// back to the raw markdown.
func hintIssue(id issue.Id) {
	iss := issue.Lookup(id)
	if iss == nil {
		return
	}

	rendered, err := iss.Render(issueStylePath())
	if err != nil {
		rendered = iss.MarkdownMsg()
	}
	fmt.Fprintln(os.Stderr, rendered)
}

// issueStylePath maps the configured color scheme onto a glamour style name.
func issueStylePath() string {
	if cfg, err := config.Load(); err == nil && cfg != nil {
		return string(cfg.UI.ColorScheme)
	}
	return string(config.ColorSchemeAuto)
}

// spawnfileIssueID classifies a spawn document load failure: the file is
// either missing or unreadable as a document.
func spawnfileIssueID(err error) issue.Id {
	if errors.Is(err, fs.ErrNotExist) {
		return issue.SpawnfileNotFoundId
	}
	return issue.SpawnfileParseErrorId
}

// optionIssueID classifies option-parse failures that have a catalog entry.
func optionIssueID(err error) (issue.Id, bool) {
	if errors.Is(err, spawn.ErrHomeDirectoryUnavailable) {
		return issue.HomeDirectoryUnavailableId, true
	}
	return 0, false
}

// launchIssueID classifies launch failures that have a catalog entry. A
// missing executable only maps to the shell entry when the descriptor was
// shell-wrapped, since then the missing program is the shell itself.
func launchIssueID(err error, d spawn.Descriptor) (issue.Id, bool) {
	switch {
	case errors.Is(err, launcher.ErrLauncherUnavailable):
		return issue.LauncherNotAvailableId, true
	case shellWrapped(d) && (errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist)):
		return issue.ShellNotFoundId, true
	default:
		return 0, false
	}
}

// shellWrapped reports whether the descriptor runs a shell with a single
// command string instead of invoking the program directly.
func shellWrapped(d spawn.Descriptor) bool {
	return len(d.Args) == 2 && d.Args[0] == spawn.ShellCommandFlag
}
