package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ShayCichocki/lapwatch/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Manage configuration",
	Args:  cobra.MaximumNArgs(2),
	Long: `View or modify lapwatch configuration.

Without arguments, displays current configuration.
With one argument (key), displays the value for that key.
With two arguments (key value), sets the configuration value.

Configuration is stored at ~/.config/lapwatch/config.yaml
Project-specific overrides can be placed in .lapwatch.yaml
Environment variables such as LAPWATCH_UI_TITLE override both.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		switch len(args) {
		case 0:
			return displayAllConfig(cfg)
		case 1:
			return displayConfigKey(cfg, args[0])
		default:
			return setConfigKey(args[0], args[1])
		}
	},
}

// displayAllConfig prints all configuration values.
func displayAllConfig(cfg *config.Config) error {
	for _, key := range config.Keys() {
		value, err := config.Get(cfg, key)
		if err != nil {
			return err
		}
		if value == "" {
			value = "(not set)"
		}
		fmt.Printf("%s: %s\n", key, value)
	}
	return nil
}

// displayConfigKey prints a single configuration value.
func displayConfigKey(cfg *config.Config, key string) error {
	value, err := config.Get(cfg, key)
	if err != nil {
		return err
	}
	fmt.Println(value)
	return nil
}

// setConfigKey sets a configuration value in the user config file.
func setConfigKey(key, value string) error {
	if err := config.SaveKey(key, value); err != nil {
		printStatus("✗", fmt.Sprintf("Failed to set %s", key), color.FgRed)
		return err
	}

	printStatus("✓", fmt.Sprintf("Set %s = %s", key, value), color.FgGreen)
	if project := config.GetProjectConfigPath(); project != "" {
		printStatus("!", fmt.Sprintf("%s may override this value", project), color.FgYellow)
	}
	return nil
}
