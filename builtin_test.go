package main

import (
	"context"
	"image/color"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePPM(t *testing.T, path, body string) {
	t.Helper()

	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestBuiltinSingleConversionToPNG(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "a.ppm")
	output := filepath.Join(dir, "a.ppm.png")
	writePPM(t, input, "P3\n2 1\n255\n255 0 0  0 255 0\n")

	b := NewBuiltinConverter(DefaultConfig())
	err := b.Convert(context.Background(), Request{Inputs: []string{input}, Output: output})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	f, err := os.Open(output)
	if err != nil {
		t.Fatalf("opening output: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	checkPixel(t, img, 0, 0, color.NRGBA{R: 255, A: 255})
	checkPixel(t, img, 1, 0, color.NRGBA{G: 255, A: 255})
}

func TestBuiltinAssembleGIF(t *testing.T) {
	dir := t.TempDir()
	frames := make([]string, 0, 3)
	for _, body := range []string{
		"P3\n1 1\n255\n0 0 0\n",
		"P3\n1 1\n255\n255 255 255\n",
		"P3\n1 1\n255\n0 0 0\n",
	} {
		path := filepath.Join(dir, "frame"+string(rune('a'+len(frames)))+".ppm")
		writePPM(t, path, body)
		frames = append(frames, path)
	}
	output := filepath.Join(dir, "clock.gif")

	b := NewBuiltinConverter(DefaultConfig())
	err := b.Convert(context.Background(), Request{
		Inputs:  frames,
		Output:  output,
		Delay:   20,
		Loop:    0,
		Animate: true,
	})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	f, err := os.Open(output)
	if err != nil {
		t.Fatalf("opening output: %v", err)
	}
	defer f.Close()

	anim, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatalf("decoding animation: %v", err)
	}
	if len(anim.Image) != 3 {
		t.Errorf("got %d frames, want 3", len(anim.Image))
	}
	if anim.LoopCount != 0 {
		t.Errorf("LoopCount = %d, want 0 (infinite)", anim.LoopCount)
	}
	for i, delay := range anim.Delay {
		if delay != 20 {
			t.Errorf("Delay[%d] = %d, want 20", i, delay)
		}
	}
}

func TestBuiltinUnsupportedOutputFormat(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "a.ppm")
	writePPM(t, input, "P3\n1 1\n255\n0 0 0\n")

	b := NewBuiltinConverter(DefaultConfig())
	err := b.Convert(context.Background(), Request{
		Inputs: []string{input},
		Output: filepath.Join(dir, "a.ppm.tiff"),
	})
	if err == nil {
		t.Fatal("expected an error for an unsupported output format")
	}
	if _, statErr := os.Stat(filepath.Join(dir, "a.ppm.tiff")); !os.IsNotExist(statErr) {
		t.Error("partial output file left behind")
	}
}

func TestBuiltinMissingInput(t *testing.T) {
	b := NewBuiltinConverter(DefaultConfig())

	err := b.Convert(context.Background(), Request{
		Inputs: []string{filepath.Join(t.TempDir(), "missing.ppm")},
		Output: "out.png",
	})
	if err == nil {
		t.Fatal("expected an error for a missing input file")
	}

	if err := b.Convert(context.Background(), Request{Output: "out.png"}); err == nil {
		t.Fatal("expected an error for a request with no inputs")
	}
}
