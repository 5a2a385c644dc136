package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ShayCichocki/lapwatch/internal/config"
	"github.com/ShayCichocki/lapwatch/internal/control"
)

var signalDir string

var signalCmd = &cobra.Command{
	Use:       "signal <start_stop|reset_or_lap>",
	Short:     "Press a control of a running lapwatch",
	ValidArgs: []string{"start_stop", "reset_or_lap"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Long: `Press a control of a lapwatch started with --control-dir (or control.dir).

  start_stop     start or pause the timer
  reset_or_lap   record a lap while running, reset while paused

The signal is written to the control directory from --dir, falling back to
the control.dir configuration value.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := signalDir
		if dir == "" {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			dir = cfg.Control.Dir
		}
		if dir == "" {
			return fmt.Errorf("no control directory: pass --dir or set control.dir")
		}

		if err := control.SendName(dir, args[0]); err != nil {
			return err
		}
		printStatus("✓", fmt.Sprintf("Sent %s to %s", args[0], dir), color.FgGreen)
		return nil
	},
}

func init() {
	signalCmd.Flags().StringVar(&signalDir, "dir", "", "Control directory (default: control.dir from config)")
}

// printStatus prints a colored status symbol followed by a message.
func printStatus(symbol, message string, colorAttr color.Attribute) {
	c := color.New(colorAttr)
	fmt.Printf("%s %s\n", c.Sprint(symbol), message)
}
