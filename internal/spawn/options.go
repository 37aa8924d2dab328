// SPDX-License-Identifier: MPL-2.0

package spawn

import (
	"os"
	"path/filepath"
	"strings"

	"spawnkit/pkg/platform"
)

type (
	// Options is the validated form of a spawn configuration object.
	// The zero value means: inherit the working directory, add no environment
	// variables, invoke the program directly, and use default stdio handling.
	Options struct {
		// Cwd is the working directory override. Empty means inherit.
		Cwd string
		// Env contains environment variables overlaid onto the inherited
		// environment. Nil or empty means inherit unchanged.
		Env map[string]string
		// Shell names the shell executable for shell-wrapped invocation.
		// Empty means direct invocation.
		Shell string
		// Stdio is the opaque stdio configuration, attached to the descriptor
		// for the launcher to interpret.
		Stdio StdioConfig
	}

	// Parser decodes dynamic configuration values into Options. The zero
	// value is ready to use; the fields exist so tests and callers can
	// substitute the OS lookups and the stdio decoder.
	Parser struct {
		// Stdio decodes the raw "stdio" field. When nil, the raw value is
		// carried through unexamined.
		Stdio StdioParser
		// Family overrides the platform family used for the shell default.
		// Empty means platform.CurrentFamily().
		Family platform.Family
		// UserHomeDir resolves the home directory for tilde expansion.
		// When nil, os.UserHomeDir is used.
		UserHomeDir func() (string, error)
		// Stat checks working-directory existence. When nil, os.Stat is used.
		Stat func(string) (os.FileInfo, error)
	}
)

// ParseOptions decodes a dynamic configuration value into Options using the
// default parser. A nil value yields the zero Options.
func ParseOptions(v any) (*Options, error) {
	return (&Parser{}).Parse(v)
}

// Parse decodes a dynamic configuration value into Options.
//
// A nil value is not an error: it yields the zero Options. A mapping is
// decoded field by field; each field is independent and the first invalid
// field aborts the parse. Any other type fails with InvalidFieldType.
func (p *Parser) Parse(v any) (*Options, error) {
	opts := &Options{}

	var cfg map[string]any
	switch value := v.(type) {
	case nil:
		return opts, nil
	case map[string]any:
		cfg = value
	default:
		return nil, newTypeError("options", "mapping", v)
	}

	if err := p.parseCwd(cfg["cwd"], opts); err != nil {
		return nil, err
	}
	if err := p.parseEnv(cfg["env"], opts); err != nil {
		return nil, err
	}
	if err := p.parseShell(cfg["shell"], opts); err != nil {
		return nil, err
	}
	if err := p.parseStdio(cfg["stdio"], opts); err != nil {
		return nil, err
	}

	return opts, nil
}

// parseCwd handles the "cwd" field: a leading tilde component is replaced
// with the user home directory, and the resolved path must exist. The
// existence check is best effort; the path can still vanish before launch.
func (p *Parser) parseCwd(v any, opts *Options) error {
	var path string
	switch value := v.(type) {
	case nil:
		return nil
	case string:
		path = value
	default:
		return newTypeError("cwd", "string", v)
	}

	if rest, expanded := cutHomePrefix(path); expanded {
		home, err := p.userHomeDir()
		if err != nil || home == "" {
			return &OptionError{
				Field:  "cwd",
				Kind:   ErrHomeDirectoryUnavailable,
				Detail: "failed to resolve home directory for '~' expansion",
			}
		}
		path = filepath.Join(home, rest)
	}

	if _, err := p.stat(path); err != nil {
		return &OptionError{
			Field:  "cwd",
			Kind:   ErrPathNotFound,
			Detail: "path does not exist: " + path,
		}
	}

	opts.Cwd = path
	return nil
}

// parseEnv handles the "env" field: a mapping whose keys and values must all
// be strings. Later duplicate keys overwrite earlier ones; with an unordered
// source mapping the winner follows the scan order, which is unspecified.
func (p *Parser) parseEnv(v any, opts *Options) error {
	if v == nil {
		return nil
	}

	entries := make(map[string]string)

	switch m := v.(type) {
	case map[string]any:
		for k, val := range m {
			s, ok := val.(string)
			if !ok {
				return &OptionError{
					Field:  "env",
					Kind:   ErrInvalidEnvironmentEntry,
					Detail: "value for key '" + k + "' must be a string, got " + typeName(val),
				}
			}
			entries[k] = s
		}
	case map[any]any:
		for k, val := range m {
			key, ok := k.(string)
			if !ok {
				return &OptionError{
					Field:  "env",
					Kind:   ErrInvalidEnvironmentEntry,
					Detail: "keys must be strings, got " + typeName(k),
				}
			}
			s, ok := val.(string)
			if !ok {
				return &OptionError{
					Field:  "env",
					Kind:   ErrInvalidEnvironmentEntry,
					Detail: "value for key '" + key + "' must be a string, got " + typeName(val),
				}
			}
			entries[key] = s
		}
	default:
		return newTypeError("env", "mapping", v)
	}

	if len(entries) > 0 {
		opts.Env = entries
	}
	return nil
}

// parseShell handles the "shell" field: a string names the shell executable
// verbatim, boolean true selects the platform-family default. A family with
// no default shell silently falls back to direct invocation.
func (p *Parser) parseShell(v any, opts *Options) error {
	switch shell := v.(type) {
	case nil:
		return nil
	case string:
		if shell == "" {
			return &OptionError{
				Field:  "shell",
				Kind:   ErrInvalidFieldType,
				Detail: "shell executable name must not be empty",
			}
		}
		opts.Shell = shell
		return nil
	case bool:
		if !shell {
			return &OptionError{
				Field:  "shell",
				Kind:   ErrInvalidFieldType,
				Detail: "accepted values are 'true' or a string, got 'false'",
			}
		}
		if name, ok := platform.DefaultShell(p.family()); ok {
			opts.Shell = name
		}
		return nil
	default:
		return &OptionError{
			Field:  "shell",
			Kind:   ErrInvalidFieldType,
			Detail: "accepted values are 'true' or a string, got " + typeName(v),
		}
	}
}

// parseStdio threads the "stdio" field through to the configured decoder.
// The core never interprets stdio contents itself.
func (p *Parser) parseStdio(v any, opts *Options) error {
	if v == nil {
		return nil
	}

	parse := p.Stdio
	if parse == nil {
		parse = passthroughStdio
	}

	stdio, err := parse(v)
	if err != nil {
		return err
	}
	opts.Stdio = stdio
	return nil
}

// cutHomePrefix splits off a leading tilde path component. Only a bare "~" or
// a "~/" (or "~\" on Windows) prefix counts; names like "~user" pass through.
func cutHomePrefix(path string) (rest string, ok bool) {
	if path == "~" {
		return "", true
	}
	if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		return path[2:], true
	}
	return path, false
}

func (p *Parser) family() platform.Family {
	if p.Family != "" {
		return p.Family
	}
	return platform.CurrentFamily()
}

func (p *Parser) userHomeDir() (string, error) {
	if p.UserHomeDir != nil {
		return p.UserHomeDir()
	}
	return os.UserHomeDir()
}

func (p *Parser) stat(path string) (os.FileInfo, error) {
	if p.Stat != nil {
		return p.Stat(path)
	}
	return os.Stat(path)
}
