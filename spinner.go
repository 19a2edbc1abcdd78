package main

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

const fetchSpinnerDelay = 150 * time.Millisecond

func newSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4"))
	return s
}

// startDelayedSpinner animates on stderr once delay has passed, so quick
// operations stay silent. The returned func stops and clears the line.
func startDelayedSpinner(message string, delay time.Duration) func() {
	if strings.TrimSpace(message) == "" {
		message = "Working..."
	}
	if delay < 0 {
		delay = 0
	}
	if !stderrIsTTY() {
		return func() {}
	}

	done := make(chan struct{})
	stopped := make(chan struct{})
	var once sync.Once
	go func() {
		defer close(stopped)
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-done:
			return
		case <-timer.C:
		}

		s := newSpinner()
		frames := s.Spinner.Frames
		interval := s.Spinner.FPS
		if interval <= 0 {
			interval = 90 * time.Millisecond
		}
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		i := 0
		for {
			frame := s.Style.Render(frames[i%len(frames)])
			fmt.Fprintf(os.Stderr, "\r%s %s", frame, message)
			i++
			select {
			case <-done:
				fmt.Fprint(os.Stderr, "\r\033[2K")
				return
			case <-ticker.C:
			}
		}
	}()
	return func() {
		once.Do(func() {
			close(done)
			<-stopped
		})
	}
}

func stderrIsTTY() bool {
	return isCharDevice(os.Stderr)
}

func stdinIsTTY() bool {
	return isCharDevice(os.Stdin)
}

func stdoutIsTTY() bool {
	return isCharDevice(os.Stdout)
}

func isCharDevice(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
