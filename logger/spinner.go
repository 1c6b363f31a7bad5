package logger

import (
	"fmt"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner animates a waiting indicator until Stop is called.
type Spinner struct {
	message string
	console *Console
	quit    chan struct{}
	stopped sync.Once
}

func newSpinner(message string, console *Console) *Spinner {
	return &Spinner{
		message: message,
		console: console,
		quit:    make(chan struct{}),
	}
}

func (s *Spinner) start() {
	go func() {
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()

		for i := 0; ; i++ {
			select {
			case <-s.quit:
				fmt.Fprint(s.console.out, "\r")
				return
			case <-ticker.C:
				fmt.Fprintf(s.console.out, "\r%s %s ", spinnerFrames[i%len(spinnerFrames)], s.message)
			}
		}
	}()
}

func (s *Spinner) Stop(success bool, message string) {
	s.stopped.Do(func() { close(s.quit) })

	if success {
		s.console.Success("%s", message)
	} else {
		s.console.Error("%s", message)
	}
}
