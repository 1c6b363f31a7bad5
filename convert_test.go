package main

import (
	"context"
	"io"
	"path/filepath"
	"sync"

	"ppmconv/logger"
)

// fakeConverter records every request and optionally fails for specific
// input base names.
type fakeConverter struct {
	mu    sync.Mutex
	calls []Request
	fail  map[string]error
}

func (f *fakeConverter) Convert(_ context.Context, req Request) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, req)

	if len(req.Inputs) > 0 {
		if err, ok := f.fail[filepath.Base(req.Inputs[0])]; ok {
			return err
		}
	}
	return nil
}

func (f *fakeConverter) recorded() []Request {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]Request, len(f.calls))
	copy(out, f.calls)
	return out
}

func quietConsole() *logger.Console {
	return logger.NewConsole(&logger.Options{Output: io.Discard, EnableColors: false})
}
