package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/gen2brain/avif"
	_ "golang.org/x/image/webp"
)

// BuiltinConverter is the in-process fallback capability. It decodes PPM
// (see ppm.go), PNG, JPEG and WebP inputs and encodes by output extension.
// No resampling or color correction is performed.
type BuiltinConverter struct {
	Options avif.Options
}

func NewBuiltinConverter(cfg *Config) *BuiltinConverter {
	return &BuiltinConverter{Options: cfg.GetEncodingOptions()}
}

func (b *BuiltinConverter) Convert(ctx context.Context, req Request) error {
	if len(req.Inputs) == 0 {
		return errors.New("no input files")
	}
	if req.Animate {
		return b.assembleGIF(ctx, req)
	}
	return b.convertSingle(req.Inputs[0], req.Output)
}

func (b *BuiltinConverter) convertSingle(input, output string) error {
	img, err := decodeImageFile(input)
	if err != nil {
		return err
	}

	out, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}

	if err := b.encode(out, img, output); err != nil {
		out.Close()
		os.Remove(output)
		return err
	}

	return out.Close()
}

func (b *BuiltinConverter) encode(out *os.File, img image.Image, output string) error {
	switch strings.ToLower(filepath.Ext(output)) {
	case ".png":
		return png.Encode(out, img)
	case ".jpg", ".jpeg":
		return jpeg.Encode(out, img, nil)
	case ".gif":
		return gif.Encode(out, img, nil)
	case ".avif":
		return avif.Encode(out, img, b.Options)
	default:
		return fmt.Errorf("unsupported output format %q", filepath.Ext(output))
	}
}

func (b *BuiltinConverter) assembleGIF(ctx context.Context, req Request) error {
	anim := &gif.GIF{LoopCount: req.Loop}

	for _, frame := range req.Inputs {
		if err := ctx.Err(); err != nil {
			return err
		}

		img, err := decodeImageFile(frame)
		if err != nil {
			return err
		}

		bounds := img.Bounds()
		paletted := image.NewPaletted(bounds, palette.Plan9)
		draw.FloydSteinberg.Draw(paletted, bounds, img, bounds.Min)

		anim.Image = append(anim.Image, paletted)
		anim.Delay = append(anim.Delay, req.Delay)
	}

	out, err := os.Create(req.Output)
	if err != nil {
		return fmt.Errorf("error creating animation file: %w", err)
	}

	if err := gif.EncodeAll(out, anim); err != nil {
		out.Close()
		os.Remove(req.Output)
		return fmt.Errorf("error encoding animation: %w", err)
	}

	return out.Close()
}

func decodeImageFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", filepath.Base(path), err)
	}

	return img, nil
}
