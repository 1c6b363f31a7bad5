package main

import (
	"context"
	"os"

	"ppmconv/logger"
)

func main() {
	console := logger.NewConsole(logger.DefaultOptions())

	cfg, err := ParseConfig(os.Args[1:])
	if err != nil {
		os.Stderr.WriteString("Configuration error: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx := context.Background()
	conv := DetectConverter(cfg, console)

	batch := &BatchConverter{Config: cfg, Convert: conv, Console: console}
	if err := batch.Run(ctx); err != nil {
		console.Error("Image conversion failed: %v", err)
		os.Exit(1)
	}

	assembler := &AnimationAssembler{Config: cfg, Convert: conv, Console: console}
	if err := assembler.Run(ctx); err != nil {
		console.Error("Animation assembly failed: %v", err)
		os.Exit(1)
	}

	console.Success("All processing completed successfully")
}
