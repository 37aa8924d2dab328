// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"sort"
	"strings"

	"spawnkit/internal/config"
	"spawnkit/internal/spawn"

	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render [flags] [-- program [args...]]",
	Short: "Show the command descriptor without running it",
	Long: `Show the command descriptor without running it.

render accepts the same inputs as run and prints the synthesized
descriptor: the final program, argument vector, working directory, and
environment overlay. Useful for checking what shell wrapping does to a
command line before executing it.`,
	RunE: runRender,
}

func init() {
	addSpawnFlags(renderCmd)
}

func runRender(c *cobra.Command, args []string) error {
	cfg, _ := config.Load()

	in, err := collectInputs(args)
	if err != nil {
		return err
	}

	d, err := buildDescriptor(in, cfg)
	if err != nil {
		if id, ok := optionIssueID(err); ok {
			hintIssue(id)
		}
		return err
	}

	c.Print(renderDescriptor(d))
	return nil
}

// renderDescriptor formats a descriptor as a labeled card.
func renderDescriptor(d spawn.Descriptor) string {
	var sb strings.Builder

	writeField := func(label, value string) {
		sb.WriteString(renderLabelStyle.Render(label+":") + " " + renderValueStyle.Render(value) + "\n")
	}

	sb.WriteString(TitleStyle.Render("Command descriptor") + "\n\n")
	sb.WriteString(renderLabelStyle.Render("program:") + " " + CmdStyle.Render(d.Program) + "\n")
	writeField("args", fmt.Sprintf("%q", d.Args))

	// A two-element ["-c", line] vector means the command was shell-wrapped;
	// show the joined line on its own for readability.
	if len(d.Args) == 2 && d.Args[0] == spawn.ShellCommandFlag {
		writeField("shell line", d.Args[1])
	}

	if d.Dir != "" {
		writeField("dir", d.Dir)
	}
	if len(d.Env) > 0 {
		keys := make([]string, 0, len(d.Env))
		for k := range d.Env {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			writeField("env", k+"="+d.Env[k])
		}
	}

	return sb.String()
}
