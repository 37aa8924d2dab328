// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"path/filepath"

	"spawnkit/internal/config"

	"github.com/spf13/cobra"
)

var (
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Inspect spawnkit configuration",
	}

	configShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			c.Print(config.GenerateCUE(cfg))
			return nil
		},
	}

	configInitCmd = &cobra.Command{
		Use:   "init",
		Short: "Create a default config file",
		RunE: func(c *cobra.Command, _ []string) error {
			if err := config.EnsureConfigDir(); err != nil {
				return err
			}
			if err := config.CreateDefaultConfig(); err != nil {
				return err
			}

			cfgDir, err := config.ConfigDir()
			if err != nil {
				return err
			}
			cfgPath := filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt)
			c.Println(SuccessStyle.Render("Config ready: ") + cfgPath)
			return nil
		},
	}

	configPathCmd = &cobra.Command{
		Use:   "path",
		Short: "Show which config file is in effect",
		RunE: func(c *cobra.Command, _ []string) error {
			if _, err := config.Load(); err != nil {
				return err
			}

			if path := config.LoadedPath(); path != "" {
				c.Println(path)
				return nil
			}

			// No file loaded: show where one would be read from.
			cfgDir, err := config.ConfigDir()
			if err != nil {
				return err
			}
			defaultPath := filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt)
			c.Println(SubtitleStyle.Render(fmt.Sprintf("(defaults in effect; would read %s)", defaultPath)))
			return nil
		},
	}
)

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}
