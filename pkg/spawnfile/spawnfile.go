// SPDX-License-Identifier: MPL-2.0

package spawnfile

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"spawnkit/pkg/cueutil"

	"github.com/pelletier/go-toml/v2"
)

//go:embed spawnfile_schema.cue
var schemaBytes []byte

// ErrUnsupportedFormat is returned by Load for file extensions other than
// .cue and .toml.
var ErrUnsupportedFormat = errors.New("unsupported spawnfile format")

// Spawnfile describes one process invocation.
type Spawnfile struct {
	// Program is the executable path or name to launch.
	Program string `json:"program" toml:"program"`
	// Args is the ordered argument list.
	Args []string `json:"args,omitempty" toml:"args,omitempty"`
	// Options is the dynamic spawn configuration, handed to the option
	// parser unvalidated.
	Options map[string]any `json:"options,omitempty" toml:"options,omitempty"`

	// FilePath is the path the document was loaded from (not serialized).
	FilePath string `json:"-" toml:"-"`
}

// Load reads and parses a spawn document, selecting the format by file
// extension.
func Load(path string) (*Spawnfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read spawnfile '%s': %w", path, err)
	}

	var sf *Spawnfile
	switch ext := filepath.Ext(path); ext {
	case ".cue":
		sf, err = ParseCUE(data, path)
	case ".toml":
		sf, err = ParseTOML(data, path)
	default:
		return nil, fmt.Errorf("%w: %q (expected .cue or .toml)", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, err
	}

	sf.FilePath = path
	return sf, nil
}

// ParseCUE parses a CUE spawn document, validating it against the embedded
// #Spawnfile schema. The filename only appears in error messages.
func ParseCUE(data []byte, filename string) (*Spawnfile, error) {
	result, err := cueutil.ParseAndDecode[Spawnfile](
		schemaBytes,
		data,
		"#Spawnfile",
		cueutil.WithFilename(filename),
	)
	if err != nil {
		return nil, err
	}
	return result.Value, nil
}

// ParseTOML parses a TOML spawn document. TOML has no schema layer, so the
// outer shape is checked here; the options block stays dynamic either way.
func ParseTOML(data []byte, filename string) (*Spawnfile, error) {
	var sf Spawnfile
	if err := toml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	if strings.TrimSpace(sf.Program) == "" {
		return nil, fmt.Errorf("%s: program must be a non-empty string", filename)
	}
	return &sf, nil
}
