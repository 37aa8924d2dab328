// SPDX-License-Identifier: MPL-2.0

package spawn

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"spawnkit/pkg/platform"
)

func TestParse_NilYieldsZeroOptions(t *testing.T) {
	t.Parallel()

	opts, err := ParseOptions(nil)
	if err != nil {
		t.Fatalf("ParseOptions(nil) unexpected error: %v", err)
	}
	if !reflect.DeepEqual(opts, &Options{}) {
		t.Errorf("ParseOptions(nil) = %+v, want zero Options", opts)
	}
}

func TestParse_NonMappingValueIsTypeError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
	}{
		{name: "string", value: "not options"},
		{name: "number", value: 42},
		{name: "boolean", value: true},
		{name: "list", value: []any{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseOptions(tt.value)
			if !errors.Is(err, ErrInvalidFieldType) {
				t.Errorf("ParseOptions(%v) error = %v, want ErrInvalidFieldType", tt.value, err)
			}
		})
	}
}

func TestParse_CwdExistingPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	opts, err := ParseOptions(map[string]any{"cwd": dir})
	if err != nil {
		t.Fatalf("ParseOptions unexpected error: %v", err)
	}
	if opts.Cwd != dir {
		t.Errorf("Cwd = %q, want %q", opts.Cwd, dir)
	}
}

func TestParse_CwdMissingPath(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "does-not-exist")

	_, err := ParseOptions(map[string]any{"cwd": missing})
	if !errors.Is(err, ErrPathNotFound) {
		t.Fatalf("ParseOptions error = %v, want ErrPathNotFound", err)
	}

	var oe *OptionError
	if !errors.As(err, &oe) {
		t.Fatalf("error %v is not an *OptionError", err)
	}
	if oe.Field != "cwd" {
		t.Errorf("OptionError.Field = %q, want %q", oe.Field, "cwd")
	}
}

func TestParse_CwdWrongType(t *testing.T) {
	t.Parallel()

	_, err := ParseOptions(map[string]any{"cwd": 12})
	if !errors.Is(err, ErrInvalidFieldType) {
		t.Errorf("ParseOptions error = %v, want ErrInvalidFieldType", err)
	}
}

func TestParse_CwdTildeExpansion(t *testing.T) {
	t.Parallel()

	home := t.TempDir()
	sub := filepath.Join(home, "projects")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}

	p := &Parser{
		UserHomeDir: func() (string, error) { return home, nil },
	}

	tests := []struct {
		name string
		cwd  string
		want string
	}{
		{name: "bare tilde", cwd: "~", want: home},
		{name: "tilde slash", cwd: "~/projects", want: sub},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			opts, err := p.Parse(map[string]any{"cwd": tt.cwd})
			if err != nil {
				t.Fatalf("Parse unexpected error: %v", err)
			}
			if opts.Cwd != tt.want {
				t.Errorf("Cwd = %q, want %q", opts.Cwd, tt.want)
			}
		})
	}
}

func TestParse_CwdTildeNotExpandedForUserNames(t *testing.T) {
	t.Parallel()

	// "~somebody" is not a home-directory marker; it is statted literally
	// and fails because no such path exists.
	p := &Parser{
		UserHomeDir: func() (string, error) {
			t.Error("UserHomeDir should not be called for '~somebody'")
			return "", nil
		},
	}

	_, err := p.Parse(map[string]any{"cwd": "~somebody"})
	if !errors.Is(err, ErrPathNotFound) {
		t.Errorf("Parse error = %v, want ErrPathNotFound", err)
	}
}

func TestParse_CwdHomeDirectoryUnavailable(t *testing.T) {
	t.Parallel()

	p := &Parser{
		UserHomeDir: func() (string, error) { return "", errors.New("no home") },
	}

	_, err := p.Parse(map[string]any{"cwd": "~/x"})
	if !errors.Is(err, ErrHomeDirectoryUnavailable) {
		t.Errorf("Parse error = %v, want ErrHomeDirectoryUnavailable", err)
	}
}

func TestParse_EnvStringEntries(t *testing.T) {
	t.Parallel()

	opts, err := ParseOptions(map[string]any{
		"env": map[string]any{"A": "1", "B": "2"},
	})
	if err != nil {
		t.Fatalf("ParseOptions unexpected error: %v", err)
	}

	want := map[string]string{"A": "1", "B": "2"}
	if !reflect.DeepEqual(opts.Env, want) {
		t.Errorf("Env = %v, want %v", opts.Env, want)
	}
}

func TestParse_EnvNonStringValue(t *testing.T) {
	t.Parallel()

	_, err := ParseOptions(map[string]any{
		"env": map[string]any{"A": 1},
	})
	if !errors.Is(err, ErrInvalidEnvironmentEntry) {
		t.Fatalf("ParseOptions error = %v, want ErrInvalidEnvironmentEntry", err)
	}

	var oe *OptionError
	if !errors.As(err, &oe) {
		t.Fatalf("error %v is not an *OptionError", err)
	}
	if oe.Field != "env" {
		t.Errorf("OptionError.Field = %q, want %q", oe.Field, "env")
	}
}

func TestParse_EnvNonStringKey(t *testing.T) {
	t.Parallel()

	_, err := ParseOptions(map[string]any{
		"env": map[any]any{1: "one"},
	})
	if !errors.Is(err, ErrInvalidEnvironmentEntry) {
		t.Errorf("ParseOptions error = %v, want ErrInvalidEnvironmentEntry", err)
	}
}

func TestParse_EnvWrongType(t *testing.T) {
	t.Parallel()

	_, err := ParseOptions(map[string]any{"env": "PATH=/bin"})
	if !errors.Is(err, ErrInvalidFieldType) {
		t.Errorf("ParseOptions error = %v, want ErrInvalidFieldType", err)
	}
}

func TestParse_EnvEmptyMappingLeavesEnvNil(t *testing.T) {
	t.Parallel()

	opts, err := ParseOptions(map[string]any{"env": map[string]any{}})
	if err != nil {
		t.Fatalf("ParseOptions unexpected error: %v", err)
	}
	if opts.Env != nil {
		t.Errorf("Env = %v, want nil for empty mapping", opts.Env)
	}
}

func TestParse_ShellString(t *testing.T) {
	t.Parallel()

	opts, err := ParseOptions(map[string]any{"shell": "/usr/bin/zsh"})
	if err != nil {
		t.Fatalf("ParseOptions unexpected error: %v", err)
	}
	if opts.Shell != "/usr/bin/zsh" {
		t.Errorf("Shell = %q, want %q", opts.Shell, "/usr/bin/zsh")
	}
}

func TestParse_ShellTruePlatformDefaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		family platform.Family
		want   string
	}{
		{name: "unix", family: platform.FamilyUnix, want: "/bin/sh"},
		{name: "windows", family: platform.FamilyWindows, want: "powershell"},
		{name: "other falls back to direct invocation", family: platform.FamilyOther, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := &Parser{Family: tt.family}
			opts, err := p.Parse(map[string]any{"shell": true})
			if err != nil {
				t.Fatalf("Parse unexpected error: %v", err)
			}
			if opts.Shell != tt.want {
				t.Errorf("Shell = %q, want %q", opts.Shell, tt.want)
			}
		})
	}
}

func TestParse_ShellInvalidValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
	}{
		{name: "false", value: false},
		{name: "number", value: 1},
		{name: "mapping", value: map[string]any{}},
		{name: "empty string", value: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseOptions(map[string]any{"shell": tt.value})
			if !errors.Is(err, ErrInvalidFieldType) {
				t.Errorf("ParseOptions error = %v, want ErrInvalidFieldType", err)
			}
		})
	}
}

func TestParse_StdioPassthroughKeepsRawValue(t *testing.T) {
	t.Parallel()

	raw := map[string]any{"stdout": "inherit"}
	opts, err := ParseOptions(map[string]any{"stdio": raw})
	if err != nil {
		t.Fatalf("ParseOptions unexpected error: %v", err)
	}
	if opts.Stdio == nil {
		t.Fatal("Stdio = nil, want passthrough capability")
	}

	var d Descriptor
	opts.Stdio.ApplyTo(&d)
	if !reflect.DeepEqual(d.Stdio, raw) {
		t.Errorf("descriptor Stdio = %v, want raw value %v", d.Stdio, raw)
	}
}

func TestParse_StdioParserErrorAborts(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("bad stdio")
	p := &Parser{
		Stdio: func(any) (StdioConfig, error) { return nil, wantErr },
	}

	_, err := p.Parse(map[string]any{"stdio": "nonsense"})
	if !errors.Is(err, wantErr) {
		t.Errorf("Parse error = %v, want %v", err, wantErr)
	}
}

func TestParse_Idempotent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := map[string]any{
		"cwd":   dir,
		"env":   map[string]any{"A": "1"},
		"shell": "/bin/sh",
	}

	first, err := ParseOptions(cfg)
	if err != nil {
		t.Fatalf("first ParseOptions unexpected error: %v", err)
	}
	second, err := ParseOptions(cfg)
	if err != nil {
		t.Fatalf("second ParseOptions unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("parses differ: first %+v, second %+v", first, second)
	}
}
