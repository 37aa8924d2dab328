// SPDX-License-Identifier: MPL-2.0

package spawn

import (
	"maps"
	"strings"
)

// ShellCommandFlag is the flag passed to a shell to run a command string and
// exit. Both POSIX shells and PowerShell accept -c.
const ShellCommandFlag = "-c"

// Descriptor is the finalized, immutable launch specification handed to a
// launcher. It is produced once per Options and never mutated afterward.
type Descriptor struct {
	// Program is the executable path or name to launch.
	Program string
	// Args is the ordered argument list, not including the program itself.
	Args []string
	// Dir is the working directory. Empty means the launched process
	// inherits the caller's working directory.
	Dir string
	// Env contains environment variables overlaid onto the inherited
	// environment. Nil means inherit unchanged.
	Env map[string]string
	// Stdio is the launcher-facing stdio configuration, set by the
	// StdioConfig capability. Nil means default handling.
	Stdio any
}

// Descriptor synthesizes the final command descriptor for a program and its
// argument list.
//
// With a shell set, the program and arguments are joined into a single
// command string — one space between each pair, with no quoting or escaping —
// and the shell is invoked with exactly [ShellCommandFlag, commandString].
// Arguments containing whitespace or shell metacharacters will therefore be
// re-parsed by the shell; callers rely on the exact space-joined form, so it
// is preserved rather than quoted.
func (o *Options) Descriptor(program string, args []string) Descriptor {
	d := Descriptor{
		Program: program,
		Args:    append([]string(nil), args...),
	}

	if o.Shell != "" {
		d.Program = o.Shell
		d.Args = []string{ShellCommandFlag, JoinCommandLine(program, args)}
	}

	if o.Cwd != "" {
		d.Dir = o.Cwd
	}
	if len(o.Env) > 0 {
		d.Env = maps.Clone(o.Env)
	}
	if o.Stdio != nil {
		o.Stdio.ApplyTo(&d)
	}

	return d
}

// JoinCommandLine concatenates a program and its arguments into the single
// command string handed to a shell: each element separated by exactly one
// space, no quoting applied.
func JoinCommandLine(program string, args []string) string {
	var line strings.Builder
	line.WriteString(program)
	for _, arg := range args {
		line.WriteString(" ")
		line.WriteString(arg)
	}
	return line.String()
}
