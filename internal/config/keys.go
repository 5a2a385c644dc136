package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ShayCichocki/lapwatch/internal/logger"
	"github.com/ShayCichocki/lapwatch/internal/report"
)

// ErrUnknownKey is returned for a dot-notation key that is not a config field.
var ErrUnknownKey = errors.New("unknown configuration key")

// field binds a dot-notation key to a string field of Config.
type field struct {
	key      string
	ptr      func(*Config) *string
	validate func(string) error
}

var fields = []field{
	{key: "ui.title", ptr: func(c *Config) *string { return &c.UI.Title }},
	{key: "ui.labels.start", ptr: func(c *Config) *string { return &c.UI.Labels.Start }, validate: nonEmpty},
	{key: "ui.labels.pause", ptr: func(c *Config) *string { return &c.UI.Labels.Pause }, validate: nonEmpty},
	{key: "ui.labels.lap", ptr: func(c *Config) *string { return &c.UI.Labels.Lap }, validate: nonEmpty},
	{key: "ui.labels.reset", ptr: func(c *Config) *string { return &c.UI.Labels.Reset }, validate: nonEmpty},
	{key: "log.level", ptr: func(c *Config) *string { return &c.Log.Level }, validate: validLevel},
	{key: "log.file", ptr: func(c *Config) *string { return &c.Log.File }},
	{key: "control.dir", ptr: func(c *Config) *string { return &c.Control.Dir }},
	{key: "report.format", ptr: func(c *Config) *string { return &c.Report.Format }, validate: validFormat},
}

// Keys returns all configuration keys in display order.
func Keys() []string {
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.key
	}
	return keys
}

// Get retrieves a configuration value by dot-notation key.
func Get(cfg *Config, key string) (string, error) {
	f, err := lookup(key)
	if err != nil {
		return "", err
	}
	return *f.ptr(cfg), nil
}

// Set sets a configuration value by dot-notation key.
func Set(cfg *Config, key, value string) error {
	f, err := checkValue(key, value)
	if err != nil {
		return err
	}
	*f.ptr(cfg) = value
	return nil
}

// checkValue looks up key and validates value for it.
func checkValue(key, value string) (field, error) {
	f, err := lookup(key)
	if err != nil {
		return field{}, err
	}
	if f.validate != nil {
		if err := f.validate(value); err != nil {
			return field{}, fmt.Errorf("invalid value for %s: %w", f.key, err)
		}
	}
	return f, nil
}

func lookup(key string) (field, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	for _, f := range fields {
		if f.key == key {
			return f, nil
		}
	}
	return field{}, fmt.Errorf("%w: %s", ErrUnknownKey, key)
}

func nonEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("must not be empty")
	}
	return nil
}

func validLevel(s string) error {
	if _, ok := logger.ParseLogLevel(s); !ok {
		return fmt.Errorf("unknown level %q", s)
	}
	return nil
}

func validFormat(s string) error {
	_, err := report.ParseFormat(s)
	return err
}
