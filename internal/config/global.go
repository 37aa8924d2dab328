// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"sync"
)

var (
	// configDirOverride allows tests to override the config directory.
	// This is necessary because os.UserHomeDir() doesn't reliably respect
	// the HOME environment variable on all platforms (e.g., macOS in CI).
	configDirOverride string

	// configFilePathOverride forces loading from a specific config file,
	// set from the --config flag before the first Load call.
	configFilePathOverride string

	loadMu     sync.Mutex
	cachedCfg  *Config
	cachedPath string
	loaded     bool
)

// Reset clears test overrides and the load cache. Call from test cleanup to
// restore defaults.
func Reset() {
	loadMu.Lock()
	defer loadMu.Unlock()

	configDirOverride = ""
	configFilePathOverride = ""
	cachedCfg = nil
	cachedPath = ""
	loaded = false
}

// SetConfigDirOverride sets a custom config directory path.
// This is primarily intended for testing to bypass os.UserHomeDir() which
// doesn't reliably respect the HOME env var on all platforms (e.g., macOS in CI).
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}

// SetConfigFilePathOverride forces the global Load to read a specific file.
// Must be called before the first Load.
func SetConfigFilePathOverride(path string) {
	loadMu.Lock()
	defer loadMu.Unlock()

	configFilePathOverride = path
	loaded = false
}

// Load returns the process-wide configuration, loading it on first use and
// caching the result. CLI code paths share one configuration; code that
// needs explicit inputs should use a Provider instead.
func Load() (*Config, error) {
	loadMu.Lock()
	defer loadMu.Unlock()

	if loaded {
		return cachedCfg, nil
	}

	cfg, path, err := loadWithOptions(context.Background(), LoadOptions{
		ConfigFilePath: configFilePathOverride,
	})
	if err != nil {
		return nil, err
	}

	cachedCfg = cfg
	cachedPath = path
	loaded = true
	return cfg, nil
}

// LoadedPath returns the path of the config file the cached Load read, or ""
// when defaults apply or Load has not run.
func LoadedPath() string {
	loadMu.Lock()
	defer loadMu.Unlock()
	return cachedPath
}
