// Package config handles configuration loading and management for lapwatch.
// It supports XDG config paths, project-level overrides, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/ShayCichocki/lapwatch/internal/logger"
	"github.com/ShayCichocki/lapwatch/internal/report"
)

// EnvPrefix is the prefix for environment variable overrides,
// e.g. LAPWATCH_UI_TITLE overrides ui.title.
const EnvPrefix = "LAPWATCH"

// ProjectConfigName is the file name searched for in the working directory
// and its parents.
const ProjectConfigName = ".lapwatch.yaml"

// Config holds all configuration for lapwatch.
type Config struct {
	UI      UIConfig      `mapstructure:"ui"`
	Log     LogConfig     `mapstructure:"log"`
	Control ControlConfig `mapstructure:"control"`
	Report  ReportConfig  `mapstructure:"report"`
}

// UIConfig holds display settings.
type UIConfig struct {
	Title  string       `mapstructure:"title"`
	Labels LabelsConfig `mapstructure:"labels"`
}

// LabelsConfig holds the text shown on the two controls.
// Start/Pause label the start-stop control, Lap/Reset the reset-or-lap control.
type LabelsConfig struct {
	Start string `mapstructure:"start"`
	Pause string `mapstructure:"pause"`
	Lap   string `mapstructure:"lap"`
	Reset string `mapstructure:"reset"`
}

// LogConfig holds logging settings. An empty File discards logs.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// ControlConfig holds the signal directory watched for external actions.
// An empty Dir disables it.
type ControlConfig struct {
	Dir string `mapstructure:"dir"`
}

// ReportConfig holds the format of the summary printed on exit.
type ReportConfig struct {
	Format string `mapstructure:"format"`
}

// Load loads configuration from XDG paths, project overrides, and environment variables.
// Precedence (highest to lowest):
// 1. Environment variables (LAPWATCH_UI_TITLE, LAPWATCH_LOG_LEVEL, ...)
// 2. Project config (.lapwatch.yaml in current directory or parent)
// 3. User config (~/.config/lapwatch/config.yaml)
// 4. Built-in defaults
func Load() (*Config, error) {
	v := newViper()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(getUserConfigDir())

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading user config: %w", err)
		}
	}

	if projectConfig := findProjectConfig(); projectConfig != "" {
		projectViper := viper.New()
		projectViper.SetConfigFile(projectConfig)
		if err := projectViper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading project config %s: %w", projectConfig, err)
		}
		if err := v.MergeConfigMap(projectViper.AllSettings()); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	return unmarshal(v)
}

// LoadFromPath loads configuration from a specific path (for testing).
func LoadFromPath(path string) (*Config, error) {
	v := newViper()

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}

	return unmarshal(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

func unmarshal(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.Log.File = expandPath(cfg.Log.File)
	cfg.Control.Dir = expandPath(cfg.Control.Dir)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that cannot be caught by unmarshaling.
func (c *Config) Validate() error {
	if _, ok := logger.ParseLogLevel(c.Log.Level); !ok {
		return fmt.Errorf("log.level: unknown level %q", c.Log.Level)
	}
	if _, err := report.ParseFormat(c.Report.Format); err != nil {
		return fmt.Errorf("report.format: %w", err)
	}
	for key, label := range map[string]string{
		"ui.labels.start": c.UI.Labels.Start,
		"ui.labels.pause": c.UI.Labels.Pause,
		"ui.labels.lap":   c.UI.Labels.Lap,
		"ui.labels.reset": c.UI.Labels.Reset,
	} {
		if strings.TrimSpace(label) == "" {
			return fmt.Errorf("%s: label must not be empty", key)
		}
	}
	return nil
}

// SaveKey sets a single key in the user config file.
func SaveKey(key, value string) error {
	return SaveKeyToPath(GetUserConfigPath(), key, value)
}

// SaveKeyToPath sets key in the config file at path, creating it and its
// parent directories if needed. Only values already in that file and the
// new key are written; defaults, project overrides and environment
// variables are not copied into it.
func SaveKeyToPath(path, key, value string) error {
	f, err := checkValue(key, value)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	v.Set(f.key, value)
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

// GetUserConfigPath returns the path to the user config file.
func GetUserConfigPath() string {
	return filepath.Join(getUserConfigDir(), "config.yaml")
}

// GetProjectConfigPath returns the path to the project config file if it exists.
func GetProjectConfigPath() string {
	return findProjectConfig()
}

// setDefaults configures default values.
func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("ui.title", d.UI.Title)
	v.SetDefault("ui.labels.start", d.UI.Labels.Start)
	v.SetDefault("ui.labels.pause", d.UI.Labels.Pause)
	v.SetDefault("ui.labels.lap", d.UI.Labels.Lap)
	v.SetDefault("ui.labels.reset", d.UI.Labels.Reset)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)

	v.SetDefault("control.dir", d.Control.Dir)

	v.SetDefault("report.format", d.Report.Format)
}

// getUserConfigDir returns the XDG config directory for lapwatch.
func getUserConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "lapwatch")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "lapwatch")
	}
	return filepath.Join(home, ".config", "lapwatch")
}

// findProjectConfig searches for .lapwatch.yaml in the current directory and parents.
func findProjectConfig() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		configPath := filepath.Join(cwd, ProjectConfigName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(cwd)
		if parent == cwd {
			break
		}
		cwd = parent
	}

	return ""
}

// expandPath expands ${VAR} references and a leading ~/.
func expandPath(p string) string {
	p = os.ExpandEnv(p)
	if strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, p[2:])
		}
	}
	return p
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			Title: "Stopwatch",
			Labels: LabelsConfig{
				Start: "Start",
				Pause: "Pause",
				Lap:   "Lap",
				Reset: "Reset",
			},
		},
		Log: LogConfig{
			Level: "info",
		},
		Report: ReportConfig{
			Format: string(report.FormatNone),
		},
	}
}
