// ABOUTME: Config command for the local client settings.
// ABOUTME: Provides show, set, and path subcommands.

package main

import (
	"fmt"

	"github.com/harper/tempmail/internal/config"
	"github.com/harper/tempmail/internal/ui"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage client settings",
	Long:  `Show or change the settings stored in the config file. Environment variables override the file.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, key := range config.Keys {
			val, err := cfg.Get(key)
			if err != nil {
				return err
			}
			fmt.Printf("%-20s %s\n", key, val)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Save what the file holds, not the env or flag overrides.
		stored := config.DefaultConfig()
		if config.Exists() {
			loaded, err := config.LoadFile()
			if err != nil {
				return err
			}
			stored = loaded
		}

		if err := stored.Set(args[0], args[1]); err != nil {
			return err
		}
		if err := config.Save(stored); err != nil {
			return err
		}

		fmt.Println(ui.Success(fmt.Sprintf("Set %s", args[0])))
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(config.Path())
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}
