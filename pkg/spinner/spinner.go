// Package spinner provides terminal activity indicators for long-running
// operations: an animated spinner for work of unknown length and a progress
// bar for counted work. Both degrade to plain line output when the writer is
// not a terminal.
package spinner

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/term"
)

// ANSI escape sequences for terminal control.
const (
	hideCursor     = "\033[?25l"
	showCursor     = "\033[?25h"
	carriageReturn = "\r"

	colorGreen = "\033[32m"
	colorRed   = "\033[31m"
	colorReset = "\033[0m"

	symbolSuccess = "✓"
	symbolFailure = "✗"
)

// frames is the braille animation cycle.
var frames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const refreshRate = 80 * time.Millisecond

// Spinner displays an animated activity indicator while an operation runs.
// On non-terminal writers it prints the message once and stays silent until
// the final status line.
type Spinner struct {
	mu sync.Mutex

	message    string
	writer     io.Writer
	isTTY      bool
	active     bool
	startTime  time.Time
	frame      int
	lastOutput int
	stopCh     chan struct{}
	doneCh     chan struct{}
}

// New creates a spinner writing to stderr.
func New(message string) *Spinner {
	return NewWithWriter(message, os.Stderr, isTerminalWriter(os.Stderr))
}

// NewWithWriter creates a spinner with an explicit writer and TTY flag.
// Tests pass a buffer with isTTY false.
func NewWithWriter(message string, w io.Writer, isTTY bool) *Spinner {
	return &Spinner{
		message: message,
		writer:  w,
		isTTY:   isTTY,
	}
}

// isTerminalWriter checks if the given writer is a terminal.
func isTerminalWriter(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// IsActive returns true while the spinner is running.
func (s *Spinner) IsActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Update changes the message shown beside the spinner.
func (s *Spinner) Update(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = message
}

// Start begins the animation. Starting a running spinner is a no-op.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active {
		return
	}
	s.active = true
	s.startTime = time.Now()
	s.frame = 0

	if !s.isTTY {
		fmt.Fprintf(s.writer, "%s...\n", s.message)
		return
	}

	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})
	fmt.Fprint(s.writer, hideCursor)
	go s.spin()
}

// Succeed stops the spinner with a green check and the given message.
// An empty message keeps the spinner's current one.
func (s *Spinner) Succeed(message string) {
	s.finish(message, symbolSuccess, colorGreen)
}

// Fail stops the spinner with a red cross and the given message.
func (s *Spinner) Fail(message string) {
	s.finish(message, symbolFailure, colorRed)
}

// Stop halts the animation without printing a status line. Stopping an idle
// spinner is a no-op.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return
	}
	s.active = false
	if !s.isTTY {
		s.mu.Unlock()
		return
	}
	stopCh, doneCh := s.stopCh, s.doneCh
	s.mu.Unlock()

	close(stopCh)
	<-doneCh

	s.mu.Lock()
	s.clearLine()
	fmt.Fprint(s.writer, showCursor)
	s.mu.Unlock()
}

// spin renders frames until stopped.
func (s *Spinner) spin() {
	ticker := time.NewTicker(refreshRate)
	defer ticker.Stop()

	s.render()
	for {
		select {
		case <-s.stopCh:
			close(s.doneCh)
			return
		case <-ticker.C:
			s.render()
		}
	}
}

func (s *Spinner) render() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return
	}
	char := frames[s.frame%len(frames)]
	s.frame++

	s.clearLine()
	out := fmt.Sprintf("%s %s %s", char, s.message, formatElapsed(time.Since(s.startTime)))
	fmt.Fprint(s.writer, out)
	s.lastOutput = len(out)
}

// clearLine wipes the spinner's line. Caller must hold the mutex.
func (s *Spinner) clearLine() {
	if s.lastOutput > 0 {
		fmt.Fprint(s.writer, carriageReturn+strings.Repeat(" ", s.lastOutput)+carriageReturn)
		s.lastOutput = 0
	}
}

// finish stops the spinner and prints a final status line.
func (s *Spinner) finish(message, symbol, color string) {
	s.mu.Lock()
	if message == "" {
		message = s.message
	}
	var elapsed time.Duration
	if !s.startTime.IsZero() {
		elapsed = time.Since(s.startTime)
	}
	wasActive := s.active
	s.active = false

	if !s.isTTY {
		fmt.Fprintf(s.writer, "%s %s %s\n", symbol, message, formatElapsed(elapsed))
		s.mu.Unlock()
		return
	}

	if !wasActive {
		fmt.Fprintf(s.writer, "%s%s%s %s\n", color, symbol, colorReset, message)
		s.mu.Unlock()
		return
	}

	stopCh, doneCh := s.stopCh, s.doneCh
	s.mu.Unlock()

	close(stopCh)
	<-doneCh

	s.mu.Lock()
	s.clearLine()
	fmt.Fprint(s.writer, showCursor)
	fmt.Fprintf(s.writer, "%s%s%s %s %s\n", color, symbol, colorReset, message, formatElapsed(elapsed))
	s.mu.Unlock()
}

// formatElapsed renders a duration as "(1.2s)" or "(1m 30s)".
func formatElapsed(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("(%.1fs)", d.Seconds())
	}
	return fmt.Sprintf("(%dm %ds)", int(d.Minutes()), int(d.Seconds())%60)
}
