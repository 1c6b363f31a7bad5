package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"sync"
)

const (
	Reset   = "\033[0m"
	Bold    = "\033[1m"
	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	White   = "\033[37m"
	BgRed   = "\033[41m"
)

type Options struct {
	Output       io.Writer
	Level        slog.Level
	TimeFormat   string
	EnableColors bool
	AddSource    bool
}

func DefaultOptions() *Options {
	return &Options{
		Output:       os.Stdout,
		Level:        slog.LevelInfo,
		TimeFormat:   "15:04:05.000",
		EnableColors: true,
	}
}

// RichHandler is a single-line text slog handler with ANSI level colors.
type RichHandler struct {
	opts  *Options
	mu    *sync.Mutex
	attrs []slog.Attr
}

func NewRichHandler(opts *Options) *RichHandler {
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	return &RichHandler{opts: opts, mu: &sync.Mutex{}}
}

func (h *RichHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level
}

func (h *RichHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h2 := *h
	h2.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &h2
}

func (h *RichHandler) WithGroup(string) slog.Handler {
	// Group nesting is not rendered; attrs stay flat.
	return h
}

func (h *RichHandler) Handle(_ context.Context, record slog.Record) error {
	var sb strings.Builder

	h.writeColored(&sb, Blue, record.Time.Format(h.opts.TimeFormat))
	sb.WriteByte(' ')

	level := fmt.Sprintf("%-5s", strings.ToUpper(record.Level.String()))
	h.writeColored(&sb, levelColor(record.Level)+Bold, level)
	sb.WriteByte(' ')

	if h.opts.AddSource && record.PC != 0 {
		frames := runtime.CallersFrames([]uintptr{record.PC})
		frame, _ := frames.Next()
		file := frame.File
		if idx := strings.LastIndexByte(file, '/'); idx >= 0 {
			file = file[idx+1:]
		}
		h.writeColored(&sb, Magenta, fmt.Sprintf("%s:%d", file, frame.Line))
		sb.WriteByte(' ')
	}

	h.writeColored(&sb, White+Bold, record.Message)

	appendAttr := func(a slog.Attr) bool {
		sb.WriteByte(' ')
		h.writeColored(&sb, Magenta, a.Key+"="+a.Value.String())
		return true
	}
	for _, a := range h.attrs {
		appendAttr(a)
	}
	record.Attrs(appendAttr)

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := fmt.Fprintln(h.opts.Output, sb.String())
	return err
}

func (h *RichHandler) writeColored(sb *strings.Builder, color, text string) {
	if h.opts.EnableColors {
		sb.WriteString(color)
	}
	sb.WriteString(text)
	if h.opts.EnableColors {
		sb.WriteString(Reset)
	}
}

func levelColor(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return Red
	case level >= slog.LevelWarn:
		return Yellow
	case level >= slog.LevelInfo:
		return Green
	default:
		return Magenta
	}
}

func NewRichLogger(opts *Options) *slog.Logger {
	return slog.New(NewRichHandler(opts))
}
