package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

const magickBinary = "convert"

// MagickConverter shells out to the ImageMagick convert binary. Single
// conversions run as `convert input output`; animations run as
// `convert -delay D -loop N frame... output`.
type MagickConverter struct {
	Binary string
}

func (m *MagickConverter) Convert(ctx context.Context, req Request) error {
	if len(req.Inputs) == 0 {
		return errors.New("no input files")
	}

	cmd := exec.CommandContext(ctx, m.Binary, m.args(req)...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && stderr.Len() > 0 {
			return fmt.Errorf("%s exited with code %d: %s",
				magickBinary, exitErr.ExitCode(), strings.TrimSpace(stderr.String()))
		}
		return fmt.Errorf("running %s: %w", magickBinary, err)
	}

	return nil
}

func (m *MagickConverter) args(req Request) []string {
	if !req.Animate {
		return []string{req.Inputs[0], req.Output}
	}

	args := make([]string, 0, len(req.Inputs)+5)
	args = append(args, "-delay", strconv.Itoa(req.Delay), "-loop", strconv.Itoa(req.Loop))
	args = append(args, req.Inputs...)
	return append(args, req.Output)
}
