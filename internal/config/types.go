// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// LauncherNative runs processes on the host via os/exec.
	LauncherNative LauncherMode = "native"
	// LauncherVirtual runs shell-wrapped processes in the embedded
	// mvdan/sh interpreter.
	LauncherVirtual LauncherMode = "virtual"

	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidLauncherMode is returned when a LauncherMode value is not recognized.
	ErrInvalidLauncherMode = errors.New("invalid launcher mode")
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidDefaultShell is returned when a DefaultShell value is whitespace-only.
	ErrInvalidDefaultShell = errors.New("invalid default shell")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// LauncherMode selects how spawned processes are executed.
	LauncherMode string

	// InvalidLauncherModeError is returned when a LauncherMode value is not
	// recognized. It wraps ErrInvalidLauncherMode for errors.Is() compatibility.
	InvalidLauncherModeError struct {
		Value LauncherMode
	}

	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not
	// recognized. It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// DefaultLauncher sets the launcher used when no --launcher flag is given.
		DefaultLauncher LauncherMode `json:"default_launcher" mapstructure:"default_launcher"`
		// DefaultShell overrides the platform default shell used when a
		// spawn document requests `shell: true`. Empty means the platform
		// default.
		DefaultShell string `json:"default_shell" mapstructure:"default_shell"`
		// UI configures the user interface.
		UI UIConfig `json:"ui" mapstructure:"ui"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme sets the color scheme.
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables verbose output.
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}
)

// DefaultConfig returns the built-in configuration defaults.
func DefaultConfig() *Config {
	return &Config{
		DefaultLauncher: LauncherNative,
		DefaultShell:    "",
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
	}
}

// IsValid returns whether the LauncherMode is a recognized value.
func (m LauncherMode) IsValid() (bool, []error) {
	switch m {
	case LauncherNative, LauncherVirtual:
		return true, nil
	default:
		return false, []error{&InvalidLauncherModeError{Value: m}}
	}
}

// Error implements the error interface for InvalidLauncherModeError.
func (e *InvalidLauncherModeError) Error() string {
	return fmt.Sprintf("invalid launcher mode %q (must be %q or %q)",
		e.Value, LauncherNative, LauncherVirtual)
}

// Unwrap returns ErrInvalidLauncherMode for errors.Is() compatibility.
func (e *InvalidLauncherModeError) Unwrap() error { return ErrInvalidLauncherMode }

// IsValid returns whether the ColorScheme is a recognized value.
func (s ColorScheme) IsValid() (bool, []error) {
	switch s {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: s}}
	}
}

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (must be %q, %q, or %q)",
		e.Value, ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// IsValid returns whether the UIConfig has valid fields.
func (c UIConfig) IsValid() (bool, []error) {
	return c.ColorScheme.IsValid()
}

// IsValid returns whether the Config has valid fields. Field errors from all
// sub-components are collected into a single InvalidConfigError.
func (c *Config) IsValid() (bool, []error) {
	var errs []error

	if valid, fieldErrs := c.DefaultLauncher.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if c.DefaultShell != "" && strings.TrimSpace(c.DefaultShell) == "" {
		errs = append(errs, fmt.Errorf("%w: whitespace-only value", ErrInvalidDefaultShell))
	}
	if valid, fieldErrs := c.UI.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}

	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("invalid config: %s", strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }
