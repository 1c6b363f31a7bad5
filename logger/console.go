package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"
)

// Console wraps the rich slog logger with the handful of message verbs the
// tool speaks, plus constructors for the interactive widgets.
type Console struct {
	Logger    *slog.Logger
	out       io.Writer
	colorized bool
}

func NewConsole(opts *Options) *Console {
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	return &Console{
		Logger:    NewRichLogger(opts),
		out:       opts.Output,
		colorized: opts.EnableColors,
	}
}

func (c *Console) paint(color, msg string) string {
	if !c.colorized {
		return msg
	}
	return color + msg + Reset
}

func (c *Console) Success(format string, args ...any) {
	c.Logger.Info(c.paint(Green+Bold, "✓ "+fmt.Sprintf(format, args...)))
}

func (c *Console) Info(format string, args ...any) {
	c.Logger.Info(c.paint(Blue+Bold, "ℹ "+fmt.Sprintf(format, args...)))
}

func (c *Console) Warn(format string, args ...any) {
	c.Logger.Warn(c.paint(Yellow+Bold, "⚠ "+fmt.Sprintf(format, args...)))
}

func (c *Console) Error(format string, args ...any) {
	c.Logger.Error(c.paint(Red+Bold, "✖ "+fmt.Sprintf(format, args...)))
}

func (c *Console) Fatal(format string, args ...any) {
	c.Logger.Error(c.paint(BgRed+White+Bold, "✖ "+fmt.Sprintf(format, args...)))
	os.Exit(1)
}

func (c *Console) StartTimer(name string) *Timer {
	return &Timer{name: name, start: time.Now(), console: c}
}

func (c *Console) StartSpinner(message string) *Spinner {
	s := newSpinner(message, c)
	s.start()
	return s
}

func (c *Console) NewProgressBar(total int64, label string) *ProgressBar {
	return NewProgressBar(total, label, c.out)
}

func (c *Console) NewTable(headers []string) *Table {
	return NewTable(headers, c.out)
}

// Timer reports a named duration when ended.
type Timer struct {
	name    string
	start   time.Time
	console *Console
}

func (t *Timer) End() time.Duration {
	duration := time.Since(t.start)
	t.console.Info("%s completed in %v", t.name, duration.Round(time.Millisecond))
	return duration
}
