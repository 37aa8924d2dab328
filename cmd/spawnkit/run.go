// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"maps"
	"os"
	"strings"

	"spawnkit/internal/config"
	"spawnkit/internal/launcher"
	"spawnkit/internal/spawn"
	"spawnkit/pkg/spawnfile"

	"github.com/spf13/cobra"
)

var (
	flagFile        string
	flagCwd         string
	flagEnv         []string
	flagEnvFile     []string
	flagShell       string
	flagLauncher    string
	flagStdin       string
	flagStdout      string
	flagStderr      string
	flagInteractive bool

	runCmd = &cobra.Command{
		Use:   "run [flags] [-- program [args...]]",
		Short: "Run a program with the given spawn options",
		Long: `Run a program with the given spawn options.

The program comes either from positional arguments (after --) or from a
spawn document passed via --file. Flags override document options.`,
		RunE: runRun,
	}
)

func init() {
	addSpawnFlags(runCmd)
	runCmd.Flags().StringVar(&flagLauncher, "launcher", "", "launcher to use: native or virtual (default from config)")
	runCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "attach the process to a pseudo-terminal")
}

// addSpawnFlags registers the flags shared by run and render.
func addSpawnFlags(c *cobra.Command) {
	c.Flags().StringVarP(&flagFile, "file", "f", "", "spawn document (.cue or .toml)")
	c.Flags().StringVar(&flagCwd, "cwd", "", "working directory ('~' expands to the home directory)")
	c.Flags().StringArrayVarP(&flagEnv, "env", "e", nil, "environment entry KEY=VALUE (repeatable)")
	c.Flags().StringArrayVar(&flagEnvFile, "env-file", nil, "dotenv file to load environment entries from (repeatable; suffix with '?' to make it optional)")
	c.Flags().StringVar(&flagShell, "shell", "", "wrap in a shell: pass a shell program, or no value for the platform default")
	// --shell with no value means "the platform default shell"
	c.Flags().Lookup("shell").NoOptDefVal = "true"
	c.Flags().StringVar(&flagStdin, "stdin", "", "text to feed the process on stdin")
	c.Flags().StringVar(&flagStdout, "stdout", "", "stdout routing: default, inherit, forward, or none")
	c.Flags().StringVar(&flagStderr, "stderr", "", "stderr routing: default, inherit, forward, or none")
}

// spawnInputs is the fully assembled input of one spawn: the program, its
// arguments, and the dynamic options mapping handed to the option parser.
type spawnInputs struct {
	Program string
	Args    []string
	Options map[string]any
}

// collectInputs merges the spawn document (when --file is given) with flag
// overrides into one set of spawn inputs. Positional arguments replace the
// document's program and args entirely.
func collectInputs(args []string) (*spawnInputs, error) {
	in := &spawnInputs{Options: map[string]any{}}

	if flagFile != "" {
		sf, err := spawnfile.Load(flagFile)
		if err != nil {
			hintIssue(spawnfileIssueID(err))
			return nil, err
		}
		in.Program = sf.Program
		in.Args = sf.Args
		if sf.Options != nil {
			in.Options = maps.Clone(sf.Options)
		}
	}

	if len(args) > 0 {
		in.Program = args[0]
		in.Args = args[1:]
	}

	if in.Program == "" {
		return nil, fmt.Errorf("no program given: pass one after '--' or use --file")
	}

	if err := applyFlagOverrides(in.Options); err != nil {
		return nil, err
	}

	return in, nil
}

// applyFlagOverrides layers command-line flags over document options.
func applyFlagOverrides(opts map[string]any) error {
	if flagCwd != "" {
		opts["cwd"] = flagCwd
	}

	// Precedence within the env mapping: document entries, then env files,
	// then individual --env flags.
	if len(flagEnvFile) > 0 || len(flagEnv) > 0 {
		env := map[string]any{}
		if existing, ok := opts["env"].(map[string]any); ok {
			env = maps.Clone(existing)
		}
		if len(flagEnvFile) > 0 {
			fileEnv := map[string]string{}
			for _, path := range flagEnvFile {
				if err := spawnfile.LoadEnvFile(fileEnv, path); err != nil {
					return err
				}
			}
			for key, value := range fileEnv {
				env[key] = value
			}
		}
		for _, entry := range flagEnv {
			key, value, ok := strings.Cut(entry, "=")
			if !ok || key == "" {
				return fmt.Errorf("invalid --env entry %q: expected KEY=VALUE", entry)
			}
			env[key] = value
		}
		opts["env"] = env
	}

	switch flagShell {
	case "":
		// flag not given, keep the document's value
	case "true":
		opts["shell"] = true
	default:
		opts["shell"] = flagShell
	}

	if flagStdin != "" || flagStdout != "" || flagStderr != "" {
		stdio := map[string]any{}
		if existing, ok := opts["stdio"].(map[string]any); ok {
			stdio = maps.Clone(existing)
		}
		if flagStdin != "" {
			stdio["stdin"] = flagStdin
		}
		if flagStdout != "" {
			stdio["stdout"] = flagStdout
		}
		if flagStderr != "" {
			stdio["stderr"] = flagStderr
		}
		opts["stdio"] = stdio
	}

	return nil
}

// buildDescriptor parses the assembled options and synthesizes the command
// descriptor. The config's default_shell replaces a bare `shell: true`
// before parsing, so the platform fallback only applies when nothing else
// names a shell.
func buildDescriptor(in *spawnInputs, cfg *config.Config) (spawn.Descriptor, error) {
	if cfg != nil && cfg.DefaultShell != "" {
		if requested, ok := in.Options["shell"].(bool); ok && requested {
			in.Options["shell"] = cfg.DefaultShell
		}
	}

	parser := &spawn.Parser{Stdio: launcher.ParseStdio}

	var value any
	if len(in.Options) > 0 {
		value = in.Options
	}
	opts, err := parser.Parse(value)
	if err != nil {
		return spawn.Descriptor{}, err
	}

	return opts.Descriptor(in.Program, in.Args), nil
}

func runRun(c *cobra.Command, args []string) error {
	cfg, _ := config.Load()

	in, err := collectInputs(args)
	if err != nil {
		return err
	}

	// CLI runs attach to the terminal unless stdio routing was requested.
	if _, ok := in.Options["stdio"]; !ok {
		in.Options["stdio"] = string(launcher.StdioInherit)
	}

	d, err := buildDescriptor(in, cfg)
	if err != nil {
		if id, ok := optionIssueID(err); ok {
			hintIssue(id)
		}
		return err
	}

	launcherType := launcher.TypeNative
	if cfg != nil && cfg.DefaultLauncher != "" {
		launcherType = launcher.Type(cfg.DefaultLauncher)
	}
	if flagLauncher != "" {
		launcherType = launcher.Type(flagLauncher)
	}

	l, err := launcher.New(launcherType)
	if err != nil {
		return err
	}

	result := launchDescriptor(c, l, d)

	// Echo captured output; with inherited streams these are empty.
	if result.Output != "" {
		fmt.Fprint(os.Stdout, result.Output)
	}
	if result.ErrOutput != "" {
		fmt.Fprint(os.Stderr, result.ErrOutput)
	}

	if result.Error != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(result.Error, verbose))
		if id, ok := launchIssueID(result.Error, d); ok {
			hintIssue(id)
		}
		return &ExitError{Code: result.ExitCode, Err: result.Error}
	}
	if result.ExitCode != 0 {
		return &ExitError{Code: result.ExitCode}
	}
	return nil
}

// launchDescriptor runs the descriptor, preferring a pseudo-terminal when
// --interactive was given and the launcher supports it.
func launchDescriptor(c *cobra.Command, l launcher.Launcher, d spawn.Descriptor) *launcher.Result {
	ctx := c.Context()

	if flagInteractive {
		if il, ok := l.(launcher.InteractiveLauncher); ok && il.SupportsInteractive() {
			return il.LaunchInteractive(ctx, d)
		}
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+
			fmt.Sprintf("launcher '%s' does not support interactive mode; running attached", l.Name()))
	}

	return launcher.Run(ctx, l, d, launcher.IOStreams{})
}
