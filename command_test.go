package main

import "testing"

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(nil)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}

	if cfg.SourceDir != "output" {
		t.Errorf("SourceDir = %q, want %q", cfg.SourceDir, "output")
	}
	if cfg.FramesDir != "output/clockframes" {
		t.Errorf("FramesDir = %q, want %q", cfg.FramesDir, "output/clockframes")
	}
	if cfg.DestDir != "images" {
		t.Errorf("DestDir = %q, want %q", cfg.DestDir, "images")
	}
	if cfg.InputExt != ".ppm" || cfg.TargetExt != "png" {
		t.Errorf("extensions = %q/%q, want .ppm/png", cfg.InputExt, cfg.TargetExt)
	}
	if cfg.AnimationName != "clock.gif" {
		t.Errorf("AnimationName = %q, want clock.gif", cfg.AnimationName)
	}
	if cfg.FrameDelay != 20 || cfg.LoopCount != 0 {
		t.Errorf("delay/loop = %d/%d, want 20/0", cfg.FrameDelay, cfg.LoopCount)
	}
	if cfg.Workers < 1 {
		t.Errorf("Workers = %d, want at least 1", cfg.Workers)
	}
}

func TestParseConfigRejectsArguments(t *testing.T) {
	if _, err := ParseConfig([]string{"./somewhere"}); err == nil {
		t.Fatal("expected an error for stray arguments")
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero workers", func(c *Config) { c.Workers = 0 }},
		{"negative delay", func(c *Config) { c.FrameDelay = -1 }},
		{"negative loop", func(c *Config) { c.LoopCount = -1 }},
		{"empty target ext", func(c *Config) { c.TargetExt = "" }},
		{"quality too high", func(c *Config) { c.Quality = 101 }},
		{"speed too high", func(c *Config) { c.Speed = 11 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			if err := cfg.validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}

	if err := DefaultConfig().validate(); err != nil {
		t.Errorf("default config must validate, got %v", err)
	}
}
