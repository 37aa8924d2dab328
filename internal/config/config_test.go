// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfigFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := NewProvider().Load(context.Background(), LoadOptions{
		ConfigDirPath: t.TempDir(),
	})
	if err != nil {
		t.Fatalf("Load unexpected error: %v", err)
	}

	if cfg.DefaultLauncher != LauncherNative {
		t.Errorf("DefaultLauncher = %q, want %q", cfg.DefaultLauncher, LauncherNative)
	}
	if cfg.DefaultShell != "" {
		t.Errorf("DefaultShell = %q, want empty", cfg.DefaultShell)
	}
	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("UI.ColorScheme = %q, want %q", cfg.UI.ColorScheme, ColorSchemeAuto)
	}
}

func TestLoad_FromConfigDir(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, `
default_launcher: "virtual"
default_shell: "/bin/zsh"

ui: {
	color_scheme: "dark"
	verbose: true
}
`)

	cfg, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("Load unexpected error: %v", err)
	}

	if cfg.DefaultLauncher != LauncherVirtual {
		t.Errorf("DefaultLauncher = %q, want %q", cfg.DefaultLauncher, LauncherVirtual)
	}
	if cfg.DefaultShell != "/bin/zsh" {
		t.Errorf("DefaultShell = %q, want %q", cfg.DefaultShell, "/bin/zsh")
	}
	if !cfg.UI.Verbose {
		t.Error("UI.Verbose = false, want true")
	}
	if cfg.UI.ColorScheme != ColorSchemeDark {
		t.Errorf("UI.ColorScheme = %q, want %q", cfg.UI.ColorScheme, ColorSchemeDark)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, `default_shell: "bash"`)

	cfg, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("Load unexpected error: %v", err)
	}

	if cfg.DefaultShell != "bash" {
		t.Errorf("DefaultShell = %q, want %q", cfg.DefaultShell, "bash")
	}
	if cfg.DefaultLauncher != LauncherNative {
		t.Errorf("DefaultLauncher = %q, want default %q", cfg.DefaultLauncher, LauncherNative)
	}
}

func TestLoad_ExplicitFilePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.cue")
	if err := os.WriteFile(path, []byte(`default_launcher: "virtual"`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewProvider().Load(context.Background(), LoadOptions{ConfigFilePath: path})
	if err != nil {
		t.Fatalf("Load unexpected error: %v", err)
	}
	if cfg.DefaultLauncher != LauncherVirtual {
		t.Errorf("DefaultLauncher = %q, want %q", cfg.DefaultLauncher, LauncherVirtual)
	}
}

func TestLoad_ExplicitFilePathMissing(t *testing.T) {
	_, err := NewProvider().Load(context.Background(), LoadOptions{
		ConfigFilePath: filepath.Join(t.TempDir(), "absent.cue"),
	})
	if err == nil {
		t.Fatal("Load should fail for a missing explicit config file")
	}
	if !strings.Contains(err.Error(), "load configuration") {
		t.Errorf("error %q should name the operation", err)
	}
}

func TestLoad_RejectsSchemaViolation(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, `default_launcher: "container"`)

	_, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err == nil {
		t.Fatal("Load should reject an unknown launcher mode")
	}
}

func TestLoad_RejectsInvalidCUESyntax(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, `default_launcher: {{{`)

	_, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err == nil {
		t.Fatal("Load should reject malformed CUE")
	}
}

func TestLoad_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewProvider().Load(ctx, LoadOptions{ConfigDirPath: t.TempDir()})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Load error = %v, want context.Canceled", err)
	}
}

func TestResolvePath(t *testing.T) {
	dir := t.TempDir()

	path, err := ResolvePath(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("ResolvePath unexpected error: %v", err)
	}
	if path != "" {
		t.Errorf("ResolvePath = %q, want empty without a file", path)
	}

	want := writeConfigFile(t, dir, `default_launcher: "native"`)
	path, err = ResolvePath(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("ResolvePath unexpected error: %v", err)
	}
	if path != want {
		t.Errorf("ResolvePath = %q, want %q", path, want)
	}
}

func TestConfigDir_Override(t *testing.T) {
	t.Cleanup(Reset)

	dir := t.TempDir()
	SetConfigDirOverride(dir)

	got, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir unexpected error: %v", err)
	}
	if got != dir {
		t.Errorf("ConfigDir = %q, want override %q", got, dir)
	}
}

func TestEnsureConfigDir(t *testing.T) {
	t.Cleanup(Reset)

	dir := filepath.Join(t.TempDir(), "nested", "spawnkit")
	SetConfigDirOverride(dir)

	if err := EnsureConfigDir(); err != nil {
		t.Fatalf("EnsureConfigDir unexpected error: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Errorf("config dir not created: %v", err)
	}
}

func TestCreateDefaultConfig(t *testing.T) {
	t.Cleanup(Reset)

	dir := t.TempDir()
	SetConfigDirOverride(dir)

	if err := CreateDefaultConfig(); err != nil {
		t.Fatalf("CreateDefaultConfig unexpected error: %v", err)
	}

	cfgPath := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	if _, err := os.Stat(cfgPath); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	cfg, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("Load unexpected error: %v", err)
	}
	if cfg.DefaultLauncher != LauncherNative || cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("written defaults mismatch: %+v", cfg)
	}
}

func TestCreateDefaultConfig_KeepsExistingFile(t *testing.T) {
	t.Cleanup(Reset)

	dir := t.TempDir()
	SetConfigDirOverride(dir)
	path := writeConfigFile(t, dir, `default_launcher: "virtual"`)

	if err := CreateDefaultConfig(); err != nil {
		t.Fatalf("CreateDefaultConfig unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"virtual"`) {
		t.Errorf("existing config was overwritten:\n%s", data)
	}
}

func TestGenerateCUE_RoundTrip(t *testing.T) {
	t.Cleanup(Reset)
	SetConfigDirOverride(t.TempDir())

	in := &Config{
		DefaultLauncher: LauncherVirtual,
		DefaultShell:    "bash",
		UI:              UIConfig{ColorScheme: ColorSchemeLight, Verbose: true},
	}
	if err := Save(in); err != nil {
		t.Fatalf("Save unexpected error: %v", err)
	}

	out, err := NewProvider().Load(context.Background(), LoadOptions{})
	if err != nil {
		t.Fatalf("Load unexpected error: %v", err)
	}
	if out.DefaultLauncher != in.DefaultLauncher ||
		out.DefaultShell != in.DefaultShell ||
		out.UI != in.UI {
		t.Errorf("round trip mismatch: got %+v, want %+v", out, in)
	}
}
