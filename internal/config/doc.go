// SPDX-License-Identifier: MPL-2.0

// Package config loads and validates spawnkit's configuration from a CUE
// file, layering it over built-in defaults via Viper.
package config
