// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"spawnkit/internal/spawn"
)

// Stdio kind constants for the stdout and stderr streams of a launched
// process.
const (
	// StdioDefault pipes the stream and captures it into the Result.
	StdioDefault StdioKind = "default"
	// StdioInherit attaches the caller's stream directly, without capture.
	StdioInherit StdioKind = "inherit"
	// StdioForward streams to the caller while also capturing into the
	// Result.
	StdioForward StdioKind = "forward"
	// StdioNone discards the stream.
	StdioNone StdioKind = "none"
)

type (
	// StdioKind selects how one output stream of the process is handled.
	StdioKind string

	// StdioSpec is the launcher-side interpretation of the opaque stdio
	// value of a spawn configuration. The zero value captures both output
	// streams and attaches the caller's stdin.
	StdioSpec struct {
		// Stdin is a payload written to the process's standard input. Empty
		// means the caller's stdin is attached instead.
		Stdin string
		// Stdout selects handling for standard output. Empty means StdioDefault.
		Stdout StdioKind
		// Stderr selects handling for standard error. Empty means StdioDefault.
		Stderr StdioKind
	}
)

// ApplyTo attaches the stdio spec to a descriptor. This implements
// spawn.StdioConfig, making StdioSpec the capability threaded through the
// option parser.
func (s *StdioSpec) ApplyTo(d *spawn.Descriptor) {
	d.Stdio = s
}

// ParseStdio decodes the raw "stdio" field of a spawn configuration.
//
// Accepted shapes:
//   - a string: a kind applied to both stdout and stderr
//   - a mapping with optional "stdin" (string payload), "stdout" and
//     "stderr" (kind strings) entries
//
// ParseStdio satisfies spawn.StdioParser; wiring it into a spawn.Parser moves
// stdio validation to parse time instead of launch time.
func ParseStdio(v any) (spawn.StdioConfig, error) {
	spec, err := decodeStdio(v)
	if err != nil {
		return nil, err
	}
	return spec, nil
}

func decodeStdio(v any) (*StdioSpec, error) {
	spec := &StdioSpec{}

	switch value := v.(type) {
	case nil:
		return spec, nil
	case string:
		kind, err := parseStdioKind("stdio", value)
		if err != nil {
			return nil, err
		}
		spec.Stdout = kind
		spec.Stderr = kind
		return spec, nil
	case map[string]any:
		for key, raw := range value {
			switch key {
			case "stdin":
				payload, ok := raw.(string)
				if !ok {
					return nil, &spawn.OptionError{
						Field:  "stdio.stdin",
						Kind:   spawn.ErrInvalidFieldType,
						Detail: "expected string payload",
					}
				}
				spec.Stdin = payload
			case "stdout":
				kind, err := parseStdioKindValue("stdio.stdout", raw)
				if err != nil {
					return nil, err
				}
				spec.Stdout = kind
			case "stderr":
				kind, err := parseStdioKindValue("stdio.stderr", raw)
				if err != nil {
					return nil, err
				}
				spec.Stderr = kind
			default:
				return nil, &spawn.OptionError{
					Field:  "stdio",
					Kind:   spawn.ErrInvalidFieldType,
					Detail: "unknown key '" + key + "' (accepted: stdin, stdout, stderr)",
				}
			}
		}
		return spec, nil
	default:
		return nil, &spawn.OptionError{
			Field:  "stdio",
			Kind:   spawn.ErrInvalidFieldType,
			Detail: "expected a kind string or a mapping",
		}
	}
}

func parseStdioKindValue(field string, v any) (StdioKind, error) {
	s, ok := v.(string)
	if !ok {
		return "", &spawn.OptionError{
			Field:  field,
			Kind:   spawn.ErrInvalidFieldType,
			Detail: "expected a kind string",
		}
	}
	return parseStdioKind(field, s)
}

func parseStdioKind(field, s string) (StdioKind, error) {
	switch kind := StdioKind(s); kind {
	case StdioDefault, StdioInherit, StdioForward, StdioNone:
		return kind, nil
	default:
		return "", &spawn.OptionError{
			Field:  field,
			Kind:   spawn.ErrInvalidFieldType,
			Detail: "unknown stdio kind '" + s + "' (accepted: default, inherit, forward, none)",
		}
	}
}

// stdioSpecOf resolves the stdio configuration attached to a descriptor.
// Descriptors built with ParseStdio carry a *StdioSpec; descriptors built
// with the core's passthrough carry the raw value and are decoded here.
func stdioSpecOf(d spawn.Descriptor) (*StdioSpec, error) {
	switch v := d.Stdio.(type) {
	case nil:
		return &StdioSpec{}, nil
	case *StdioSpec:
		return v, nil
	default:
		return decodeStdio(v)
	}
}

func (k StdioKind) orDefault() StdioKind {
	if k == "" {
		return StdioDefault
	}
	return k
}
