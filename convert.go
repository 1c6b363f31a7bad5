package main

import (
	"context"
	"os/exec"

	"ppmconv/logger"
)

// Request describes one unit of work for a Converter: either a single
// image-to-image conversion, or the assembly of an ordered frame sequence
// into one looping animation.
type Request struct {
	Inputs  []string // ordered; exactly one entry unless Animate is set
	Output  string
	Delay   int // centiseconds per frame, animation only
	Loop    int // 0 means loop forever, animation only
	Animate bool
}

// Converter is the external conversion capability. The phase components
// depend only on this interface so tests can substitute a recording fake.
type Converter interface {
	Convert(ctx context.Context, req Request) error
}

// DetectConverter prefers the ImageMagick convert binary and falls back to
// the in-process encoder when it is not installed.
func DetectConverter(cfg *Config, console *logger.Console) Converter {
	if path, err := exec.LookPath(magickBinary); err == nil {
		return &MagickConverter{Binary: path}
	}

	console.Warn("%s not found on PATH, using built-in encoder", magickBinary)
	return NewBuiltinConverter(cfg)
}
