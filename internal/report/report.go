// Package report renders the end-of-session summary printed when lapwatch
// exits. Reports go to a writer only; nothing is stored.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"go.yaml.in/yaml/v3"

	"github.com/ShayCichocki/lapwatch/internal/stopwatch"
)

// Format selects how a report is rendered.
type Format string

const (
	// FormatNone prints nothing.
	FormatNone Format = "none"
	// FormatText prints a short human-readable summary.
	FormatText Format = "text"
	// FormatYAML prints the report as a YAML document.
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for a format name that is not supported.
var ErrUnknownFormat = errors.New("unknown report format")

// ParseFormat converts a format name to a Format. The empty string means none.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatNone:
		return FormatNone, nil
	case FormatText:
		return FormatText, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q (want none, text or yaml)", ErrUnknownFormat, s)
	}
}

// Lap is one recorded lap.
type Lap struct {
	Number  int    `yaml:"number"`
	Time    string `yaml:"time"`
	Seconds int    `yaml:"seconds"`
}

// Report summarizes a stopwatch session.
type Report struct {
	SessionID      string    `yaml:"session_id"`
	StartedAt      time.Time `yaml:"started_at"`
	Running        bool      `yaml:"running"`
	Elapsed        string    `yaml:"elapsed"`
	ElapsedSeconds int       `yaml:"elapsed_seconds"`
	Laps           []Lap     `yaml:"laps"`
}

// New builds a report from a stopwatch snapshot.
func New(sessionID string, startedAt time.Time, s stopwatch.State) Report {
	r := Report{
		SessionID:      sessionID,
		StartedAt:      startedAt.UTC().Truncate(time.Second),
		Running:        s.Running,
		Elapsed:        stopwatch.FormatTime(s.ElapsedSeconds),
		ElapsedSeconds: s.ElapsedSeconds,
		Laps:           make([]Lap, 0, len(s.Laps)),
	}
	for i, secs := range s.Laps {
		r.Laps = append(r.Laps, Lap{
			Number:  i + 1,
			Time:    stopwatch.FormatTime(secs),
			Seconds: secs,
		})
	}
	return r
}

// Write renders r to w in the given format.
func Write(w io.Writer, format Format, r Report) error {
	switch format {
	case FormatNone, "":
		return nil
	case FormatText:
		return writeText(w, r)
	case FormatYAML:
		return writeYAML(w, r)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}

func writeText(w io.Writer, r Report) error {
	title := color.New(color.FgCyan, color.Bold)
	dim := color.New(color.FgHiBlack)

	var b strings.Builder
	b.WriteString(title.Sprintf("Session %s", shortID(r.SessionID)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Elapsed %s\n", r.Elapsed)

	if len(r.Laps) == 0 {
		b.WriteString(dim.Sprint("No laps recorded"))
		b.WriteString("\n")
	}
	for _, lap := range r.Laps {
		b.WriteString(stopwatch.LapLine(lap.Number-1, lap.Seconds))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeYAML(w io.Writer, r Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return enc.Close()
}

// shortID trims a UUID to its first block for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
