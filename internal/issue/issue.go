// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Id identifies a known issue in the catalog.
type Id int

const (
	SpawnfileNotFoundId Id = iota + 1
	SpawnfileParseErrorId
	ConfigLoadFailedId
	ShellNotFoundId
	HomeDirectoryUnavailableId
	LauncherNotAvailableId
)

// Issue is a known failure mode with a rendered explanation and pointers for
// fixing it.
type Issue struct {
	id    Id
	mdMsg string // Markdown text that will be rendered
}

// Id returns the issue identifier.
func (i *Issue) Id() Id {
	return i.id
}

// MarkdownMsg returns the raw markdown message.
func (i *Issue) MarkdownMsg() string {
	return i.mdMsg
}

// Render renders the issue's markdown for terminal display.
func (i *Issue) Render(stylePath string) (string, error) {
	return render(i.mdMsg, stylePath)
}

// render is swappable in tests to avoid terminal-dependent output.
var render = glamour.Render

var catalog = map[Id]*Issue{
	SpawnfileNotFoundId: {
		id: SpawnfileNotFoundId,
		mdMsg: `
# No spawnfile found!

The path you passed to ` + "`--file`" + ` does not exist.

## Things you can try:
- Check the path for typos
- Create a spawn document:
~~~cue
program: "echo"
args: ["hello"]
options: {shell: true}
~~~`,
	},

	SpawnfileParseErrorId: {
		id: SpawnfileParseErrorId,
		mdMsg: `
# The spawnfile could not be parsed.

Spawn documents are CUE (validated against the #Spawnfile schema) or TOML.

## Things you can try:
- Check the error's CUE path to find the offending field
- Make sure ` + "`program`" + ` is a non-empty string and ` + "`args`" + ` is a list of strings`,
	},

	ConfigLoadFailedId: {
		id: ConfigLoadFailedId,
		mdMsg: `
# Your configuration file could not be loaded.

spawnkit reads ` + "`config.cue`" + ` from its configuration directory.

## Things you can try:
- Run ` + "`spawnkit config path`" + ` to see which file is being read
- Validate the file against the config schema shown by ` + "`spawnkit config show`" + ``,
	},

	ShellNotFoundId: {
		id: ShellNotFoundId,
		mdMsg: `
# The requested shell could not be launched.

The ` + "`shell`" + ` option names a shell executable; it must be on PATH or
be an absolute path.

## Things you can try:
- Pass ` + "`shell: true`" + ` to use the platform default shell
- Use the virtual launcher, which needs no shell executable:
~~~
$ spawnkit run --launcher virtual --shell -- echo hello
~~~`,
	},

	HomeDirectoryUnavailableId: {
		id: HomeDirectoryUnavailableId,
		mdMsg: `
# The '~' in your working directory could not be expanded.

Tilde expansion needs a resolvable home directory.

## Things you can try:
- Set the HOME environment variable (USERPROFILE on Windows)
- Pass an absolute path for ` + "`cwd`" + ` instead`,
	},

	LauncherNotAvailableId: {
		id: LauncherNotAvailableId,
		mdMsg: `
# The selected launcher cannot run on this system.

## Things you can try:
- Use ` + "`--launcher native`" + ` (available everywhere)
- Check ` + "`spawnkit config show`" + ` for a configured launcher override`,
	},
}

// Lookup returns the catalog issue for an id, or nil when unknown.
func Lookup(id Id) *Issue {
	return catalog[id]
}

// Ids returns all known issue ids in ascending order.
func Ids() []Id {
	ids := maps.Keys(catalog)
	slices.Sort(ids)
	return ids
}
