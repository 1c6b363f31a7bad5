package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"ppmconv/logger"
)

// AnimationAssembler turns the frame sequence in the frames subdirectory
// into a single looping animation. The subdirectory's absence is a silent
// no-op; a failed assembly is fatal for the run.
type AnimationAssembler struct {
	Config  *Config
	Convert Converter
	Console *logger.Console
}

func (a *AnimationAssembler) Run(ctx context.Context) error {
	frames, err := a.collectFrames()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("listing frames in %s: %w", a.Config.FramesDir, err)
	}

	if len(frames) == 0 {
		a.Console.Warn("Frames directory %s is empty, skipping animation", a.Config.FramesDir)
		return nil
	}

	output := filepath.Join(a.Config.DestDir, a.Config.AnimationName)
	a.Console.Info("Assembling %d frames into %s", len(frames), output)

	timer := a.Console.StartTimer("Animation assembly")
	spinner := a.Console.StartSpinner("Assembling animation")

	err = a.Convert.Convert(ctx, Request{
		Inputs:  frames,
		Output:  output,
		Delay:   a.Config.FrameDelay,
		Loop:    a.Config.LoopCount,
		Animate: true,
	})
	if err != nil {
		spinner.Stop(false, fmt.Sprintf("Animation assembly failed: %v", err))
		return fmt.Errorf("assembling %s: %w", output, err)
	}

	spinner.Stop(true, "Animation assembled: "+output)
	timer.End()

	return nil
}

// collectFrames returns the full frame paths in playback order. Ordering is
// an explicit natural sort rather than raw directory-listing order, so both
// clock_00009/clock_00010 and frame9/frame10 play back as intended.
func (a *AnimationAssembler) collectFrames() ([]string, error) {
	dirEntries, err := os.ReadDir(a.Config.FramesDir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(dirEntries))
	for _, e := range dirEntries {
		if !e.Type().IsRegular() {
			continue
		}
		names = append(names, e.Name())
	}

	sort.Slice(names, func(i, j int) bool { return naturalLess(names[i], names[j]) })

	frames := make([]string, len(names))
	for i, name := range names {
		frames[i] = filepath.Join(a.Config.FramesDir, name)
	}

	return frames, nil
}

// naturalLess orders strings with embedded digit runs numerically:
// "frame2" sorts before "frame10". Non-digit sections compare bytewise.
func naturalLess(a, b string) bool {
	for len(a) > 0 && len(b) > 0 {
		if isDigit(a[0]) && isDigit(b[0]) {
			da, restA := splitDigits(a)
			db, restB := splitDigits(b)

			na := trimLeadingZeros(da)
			nb := trimLeadingZeros(db)
			if len(na) != len(nb) {
				return len(na) < len(nb)
			}
			if na != nb {
				return na < nb
			}
			// Numerically equal, e.g. "007" vs "7": shorter run first.
			if da != db {
				return len(da) < len(db)
			}

			a, b = restA, restB
			continue
		}

		if a[0] != b[0] {
			return a[0] < b[0]
		}
		a, b = a[1:], b[1:]
	}

	return len(a) < len(b)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func splitDigits(s string) (digits, rest string) {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return s[:i], s[i:]
}

func trimLeadingZeros(s string) string {
	i := 0
	for i < len(s)-1 && s[i] == '0' {
		i++
	}
	return s[i:]
}
