package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ShayCichocki/lapwatch/internal/config"
	"github.com/ShayCichocki/lapwatch/internal/control"
	"github.com/ShayCichocki/lapwatch/internal/logger"
	"github.com/ShayCichocki/lapwatch/internal/report"
	"github.com/ShayCichocki/lapwatch/internal/stopwatch"
	"github.com/ShayCichocki/lapwatch/internal/tui"
)

// flagKeys maps root command flags to the configuration keys they override.
var flagKeys = map[string]string{
	"title":       "ui.title",
	"report":      "report.format",
	"control-dir": "control.dir",
	"log-file":    "log.file",
	"log-level":   "log.level",
}

var rootCmd = &cobra.Command{
	Use:   "lapwatch",
	Short: "Terminal stopwatch with laps",
	Long: `lapwatch is a single-screen stopwatch for the terminal.

One control starts and pauses the timer. The other records a lap while
the timer runs and resets it while paused.

Keys:
  space, s        start / pause
  enter, l, r     lap / reset
  ?               toggle help
  q, ctrl+c       quit

With --control-dir set, creating a file named start_stop or reset_or_lap
in that directory presses the matching control (see 'lapwatch signal').`,
	SilenceUsage: true,
	RunE:         runStopwatch,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().String("title", "", "Title shown above the timer")
	rootCmd.Flags().String("report", "", "Print a session report on exit: none, text or yaml")
	rootCmd.Flags().String("control-dir", "", "Directory watched for start_stop and reset_or_lap signal files")
	rootCmd.Flags().String("log-file", "", "Append logs to this file (logs are discarded when empty)")
	rootCmd.Flags().String("log-level", "", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(signalCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads configuration and applies any flags the user set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	for flag, key := range flagKeys {
		f := cmd.Flags().Lookup(flag)
		if f == nil || !f.Changed {
			continue
		}
		if err := config.Set(cfg, key, f.Value.String()); err != nil {
			return nil, fmt.Errorf("--%s: %w", flag, err)
		}
	}
	return cfg, nil
}

func runStopwatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	format, err := report.ParseFormat(cfg.Report.Format)
	if err != nil {
		return err
	}

	level, _ := logger.ParseLogLevel(cfg.Log.Level)
	log, closeLog, err := logger.NewFile(cfg.Log.File, level)
	if err != nil {
		return err
	}
	defer closeLog()

	sessionID := uuid.NewString()
	startedAt := time.Now()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.ToContext(ctx, log)
	ctx = logger.WithKV(ctx, "session", sessionID)

	program, app := tui.NewProgram(ctx, tui.Options{
		Title: cfg.UI.Title,
		Labels: tui.Labels{
			Start: cfg.UI.Labels.Start,
			Pause: cfg.UI.Labels.Pause,
			Lap:   cfg.UI.Labels.Lap,
			Reset: cfg.UI.Labels.Reset,
		},
	})
	defer app.Close()

	if cfg.Control.Dir != "" {
		watcher, err := watchControl(ctx, cfg.Control.Dir, program.Send)
		if err != nil {
			return err
		}
		defer watcher.Close()
	}

	logger.InfoKV(ctx, "session started")
	if _, err := program.Run(); err != nil && !isShutdown(ctx, err) {
		return fmt.Errorf("run stopwatch: %w", err)
	}
	app.Close()

	final := app.Snapshot()
	logger.InfoKV(ctx, "session ended",
		"elapsed", stopwatch.FormatTime(final.ElapsedSeconds),
		"laps", len(final.Laps))

	return report.Write(os.Stdout, format, report.New(sessionID, startedAt, final))
}

// watchControl forwards control signals from dir into the program through
// send. It must not block before the program runs: program.Send waits for
// the event loop, so leftover signals are consumed on the watcher goroutine.
func watchControl(ctx context.Context, dir string, send func(tea.Msg)) (*control.Watcher, error) {
	watcher, err := control.NewWatcher(ctx, dir, func(action stopwatch.Action) {
		send(tui.ActionMsg{Action: action})
	})
	if err != nil {
		return nil, err
	}
	logger.InfoKV(ctx, "watching control directory", "dir", watcher.Dir())
	return watcher, nil
}

// isShutdown reports whether err only means the program was stopped by a
// signal cancelling ctx.
func isShutdown(ctx context.Context, err error) bool {
	return ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled)
}
