package main

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
)

// Netpbm PPM decoder covering the two pixmap variants: P3 (ASCII) and
// P6 (binary). The upstream renderer emits P3 with a maxval of 255, but
// both forms and 16-bit maxvals are accepted. Registered with the image
// package so image.Decode picks it up alongside PNG/JPEG/WebP.

func init() {
	image.RegisterFormat("ppm", "P3", decodePPM, decodePPMConfig)
	image.RegisterFormat("ppm", "P6", decodePPM, decodePPMConfig)
}

type ppmHeader struct {
	format string
	width  int
	height int
	maxVal int
}

func decodePPMHeader(r *bufio.Reader) (ppmHeader, error) {
	var h ppmHeader

	magic, err := readPPMToken(r)
	if err != nil {
		return h, fmt.Errorf("reading ppm magic: %w", err)
	}
	if magic != "P3" && magic != "P6" {
		return h, fmt.Errorf("unsupported ppm format %q", magic)
	}
	h.format = magic

	for _, field := range []*int{&h.width, &h.height, &h.maxVal} {
		tok, err := readPPMToken(r)
		if err != nil {
			return h, fmt.Errorf("reading ppm header: %w", err)
		}
		n, err := parsePPMInt(tok)
		if err != nil {
			return h, err
		}
		*field = n
	}

	if h.width <= 0 || h.height <= 0 {
		return h, fmt.Errorf("invalid ppm dimensions %dx%d", h.width, h.height)
	}
	if h.maxVal <= 0 || h.maxVal > 65535 {
		return h, fmt.Errorf("invalid ppm maxval %d", h.maxVal)
	}

	return h, nil
}

// readPPMToken returns the next whitespace-delimited token, skipping
// comment lines introduced by '#'.
func readPPMToken(r *bufio.Reader) (string, error) {
	tok := make([]byte, 0, 8)

	for {
		b, err := r.ReadByte()
		if err != nil {
			if err == io.EOF && len(tok) > 0 {
				return string(tok), nil
			}
			return "", err
		}

		switch {
		case b == '#' && len(tok) == 0:
			if _, err := r.ReadString('\n'); err != nil && err != io.EOF {
				return "", err
			}
		case isPPMSpace(b):
			if len(tok) > 0 {
				return string(tok), nil
			}
		default:
			tok = append(tok, b)
		}
	}
}

func isPPMSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f' || b == '\v'
}

func parsePPMInt(tok string) (int, error) {
	n := 0
	for i := 0; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return 0, fmt.Errorf("invalid ppm integer %q", tok)
		}
		n = n*10 + int(tok[i]-'0')
		if n > 1<<24 {
			return 0, fmt.Errorf("ppm integer %q out of range", tok)
		}
	}
	if len(tok) == 0 {
		return 0, fmt.Errorf("empty ppm integer")
	}
	return n, nil
}

func decodePPM(r io.Reader) (image.Image, error) {
	br := bufio.NewReader(r)

	h, err := decodePPMHeader(br)
	if err != nil {
		return nil, err
	}

	img := image.NewNRGBA(image.Rect(0, 0, h.width, h.height))

	var next func() (int, error)
	if h.format == "P3" {
		next = func() (int, error) {
			tok, err := readPPMToken(br)
			if err != nil {
				return 0, err
			}
			return parsePPMInt(tok)
		}
	} else {
		next = binarySampleReader(br, h.maxVal)
	}

	for y := 0; y < h.height; y++ {
		for x := 0; x < h.width; x++ {
			var rgb [3]int
			for i := range rgb {
				v, err := next()
				if err != nil {
					return nil, fmt.Errorf("reading ppm pixel (%d,%d): %w", x, y, err)
				}
				if v > h.maxVal {
					return nil, fmt.Errorf("ppm sample %d exceeds maxval %d", v, h.maxVal)
				}
				rgb[i] = v * 255 / h.maxVal
			}
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(rgb[0]),
				G: uint8(rgb[1]),
				B: uint8(rgb[2]),
				A: 255,
			})
		}
	}

	return img, nil
}

// binarySampleReader yields P6 samples. The header's single whitespace
// separator has already been consumed by the token scanner; samples are one
// byte each, or two big-endian bytes when maxval exceeds 255.
func binarySampleReader(br *bufio.Reader, maxVal int) func() (int, error) {
	wide := maxVal > 255

	return func() (int, error) {
		b, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		if !wide {
			return int(b), nil
		}
		lo, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		return int(b)<<8 | int(lo), nil
	}
}

func decodePPMConfig(r io.Reader) (image.Config, error) {
	h, err := decodePPMHeader(bufio.NewReader(r))
	if err != nil {
		return image.Config{}, err
	}

	return image.Config{
		ColorModel: color.NRGBAModel,
		Width:      h.width,
		Height:     h.height,
	}, nil
}
