package main

import (
	"fmt"
	"image"
	"runtime"

	"github.com/gen2brain/avif"
)

// Config carries every knob the run depends on. The command line takes no
// flags or arguments; behavior is fully determined by these defaults, and
// tests redirect the directories to temporary locations.
type Config struct {
	SourceDir     string
	FramesDir     string
	DestDir       string
	InputExt      string
	TargetExt     string
	AnimationName string
	FrameDelay    int // centiseconds per frame
	LoopCount     int // 0 means loop forever
	Workers       int
	QueueSize     int
	Quality       int
	QualityAlpha  int
	Speed         int
}

var (
	Version    = "dev"
	BuildDate  = "unknown"
	GitCommit  = "unknown"
	QueueRatio = 3
)

func DefaultConfig() *Config {
	cpu := runtime.NumCPU()

	return &Config{
		SourceDir:     "output",
		FramesDir:     "output/clockframes",
		DestDir:       "images",
		InputExt:      ".ppm",
		TargetExt:     "png",
		AnimationName: "clock.gif",
		FrameDelay:    20,
		LoopCount:     0,
		Workers:       cpu,
		QueueSize:     cpu * QueueRatio,
		Quality:       80,
		QualityAlpha:  80,
		Speed:         6,
	}
}

func ParseConfig(args []string) (*Config, error) {
	if len(args) > 0 {
		return nil, fmt.Errorf("error: no arguments expected, got %q", args[0])
	}

	cfg := DefaultConfig()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.Workers < 1 {
		return fmt.Errorf("error: workers must be at least 1")
	}
	if cfg.FrameDelay < 0 {
		return fmt.Errorf("error: frame delay must not be negative")
	}
	if cfg.LoopCount < 0 {
		return fmt.Errorf("error: loop count must not be negative")
	}
	if cfg.TargetExt == "" {
		return fmt.Errorf("error: target extension must not be empty")
	}
	if cfg.Quality < 0 || cfg.Quality > 100 {
		return fmt.Errorf("error: quality must be in range 0-100")
	}
	if cfg.Speed < 0 || cfg.Speed > 10 {
		return fmt.Errorf("error: encoding speed must be in range 0-10")
	}
	return nil
}

func (cfg *Config) GetEncodingOptions() avif.Options {
	return avif.Options{
		Quality:           cfg.Quality,
		QualityAlpha:      cfg.QualityAlpha,
		Speed:             cfg.Speed,
		ChromaSubsampling: image.YCbCrSubsampleRatio420,
	}
}
