package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// ProgressBar renders an in-place terminal bar. Safe for concurrent
// Increment calls from worker goroutines.
type ProgressBar struct {
	mu      sync.Mutex
	out     io.Writer
	label   string
	total   int64
	current int64
	width   int
	started time.Time
	done    bool
}

func NewProgressBar(total int64, label string, out io.Writer) *ProgressBar {
	return &ProgressBar{
		out:     out,
		label:   label,
		total:   total,
		width:   40,
		started: time.Now(),
	}
}

func (p *ProgressBar) Increment(amount int64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.current += amount
	if p.current > p.total {
		p.current = p.total
	}
	p.render()
}

func (p *ProgressBar) Complete() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.done {
		return
	}
	p.current = p.total
	p.render()
	p.done = true
	fmt.Fprintln(p.out)
}

func (p *ProgressBar) render() {
	if p.done || p.total <= 0 {
		return
	}

	ratio := float64(p.current) / float64(p.total)
	filled := int(float64(p.width) * ratio)

	remaining := "?"
	if p.current > 0 {
		elapsed := time.Since(p.started)
		eta := time.Duration(float64(elapsed) / float64(p.current) * float64(p.total-p.current))
		remaining = eta.Round(time.Second).String()
	}

	fmt.Fprintf(p.out, "\r%s [%s%s] %3.0f%% %d/%d ETA %s ",
		p.label,
		strings.Repeat("█", filled),
		strings.Repeat("░", p.width-filled),
		ratio*100,
		p.current,
		p.total,
		remaining,
	)
}
