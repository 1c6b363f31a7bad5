package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"ppmconv/logger"
)

// BatchConverter converts every matching file directly inside the source
// directory into the target format inside the destination directory. Entries
// are independent units of work: a failed conversion is logged and counted
// but never aborts the remaining entries.
type BatchConverter struct {
	Config  *Config
	Convert Converter
	Console *logger.Console
}

type batchStats struct {
	mu        sync.Mutex
	Total     int
	Processed int
	Succeeded int
	Failed    int
}

func (b *BatchConverter) Run(ctx context.Context) error {
	entries, err := b.collectEntries()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			b.Console.Warn("Source directory %s does not exist, nothing to convert", b.Config.SourceDir)
			return nil
		}
		return fmt.Errorf("scanning %s: %w", b.Config.SourceDir, err)
	}

	total := len(entries)
	if total == 0 {
		b.Console.Warn("No %s files found in %s", b.Config.InputExt, b.Config.SourceDir)
		return nil
	}

	b.Console.Info("Converting %d files from %s to %s (workers: %d)",
		total, b.Config.SourceDir, b.Config.DestDir, b.Config.Workers)

	timer := b.Console.StartTimer("Image conversion")

	stats := &batchStats{Total: total}
	b.convertParallel(ctx, entries, stats)

	duration := timer.End()
	b.summarize(stats, duration.String())

	return nil
}

// collectEntries lists direct children only; subdirectories (including the
// frames directory) belong to the assembler, not this phase.
func (b *BatchConverter) collectEntries() ([]string, error) {
	dirEntries, err := os.ReadDir(b.Config.SourceDir)
	if err != nil {
		return nil, err
	}

	entries := make([]string, 0, len(dirEntries))
	for _, e := range dirEntries {
		if !e.Type().IsRegular() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(e.Name()), b.Config.InputExt) {
			continue
		}
		entries = append(entries, e.Name())
	}

	return entries, nil
}

// outputPath appends the target extension to the full original filename.
// `a.ppm` becomes `<dest>/a.ppm.png`; downstream consumers rely on the
// original extension surviving in the name.
func (b *BatchConverter) outputPath(name string) string {
	return filepath.Join(b.Config.DestDir, name+"."+b.Config.TargetExt)
}

func (b *BatchConverter) convertParallel(ctx context.Context, entries []string, stats *batchStats) {
	queueSize := b.Config.QueueSize
	if queueSize > len(entries) {
		queueSize = len(entries)
	}

	jobs := make(chan string, queueSize)
	bar := b.Console.NewProgressBar(int64(len(entries)), "Converting images")

	var wg sync.WaitGroup
	for w := 0; w < b.Config.Workers; w++ {
		wg.Add(1)
		go b.worker(ctx, jobs, stats, &wg, bar)
	}

	go func() {
		defer close(jobs)
		for _, name := range entries {
			select {
			case <-ctx.Done():
				return
			case jobs <- name:
			}
		}
	}()

	wg.Wait()
	bar.Complete()
}

func (b *BatchConverter) worker(ctx context.Context, jobs <-chan string, stats *batchStats,
	wg *sync.WaitGroup, bar *logger.ProgressBar) {
	defer wg.Done()

	for name := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
		}

		b.Console.Info("Converting %s", name)

		err := b.Convert.Convert(ctx, Request{
			Inputs: []string{filepath.Join(b.Config.SourceDir, name)},
			Output: b.outputPath(name),
		})

		stats.mu.Lock()
		stats.Processed++
		if err != nil {
			stats.Failed++
			progress := float64(stats.Processed) / float64(stats.Total) * 100
			b.Console.Error("Error converting %s: %v (%.1f%% complete)", name, err, progress)
		} else {
			stats.Succeeded++
		}
		stats.mu.Unlock()

		bar.Increment(1)
	}
}

func (b *BatchConverter) summarize(stats *batchStats, duration string) {
	table := b.Console.NewTable([]string{"Metric", "Value"})
	table.AddRow("Converted files", fmt.Sprintf("%d/%d", stats.Succeeded, stats.Total))
	table.AddRow("Failed files", fmt.Sprintf("%d", stats.Failed))
	table.AddRow("Duration", duration)

	b.Console.Info("Conversion summary:")
	table.Print()
}
