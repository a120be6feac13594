package spinner

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Unicode box-drawing characters for the progress bar.
const (
	barFilled = "█"
	barEmpty  = "░"
	barWidth  = 20
)

// ProgressBar tracks counted work, such as a batch report run. In TTY mode it
// redraws a bar in place; otherwise it prints one line per step.
type ProgressBar struct {
	mu sync.Mutex

	message    string
	total      int
	current    int
	writer     io.Writer
	isTTY      bool
	active     bool
	startTime  time.Time
	lastOutput int
}

// NewProgress creates a progress bar for total steps, writing to stderr.
func NewProgress(total int, message string) *ProgressBar {
	return NewProgressWithWriter(total, message, os.Stderr, isTerminalWriter(os.Stderr))
}

// NewProgressWithWriter creates a progress bar with an explicit writer and
// TTY flag.
func NewProgressWithWriter(total int, message string, w io.Writer, isTTY bool) *ProgressBar {
	if total <= 0 {
		total = 1
	}
	return &ProgressBar{
		message: message,
		total:   total,
		writer:  w,
		isTTY:   isTTY,
	}
}

// Current returns the completed step count.
func (p *ProgressBar) Current() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Total returns the step count the bar was created with.
func (p *ProgressBar) Total() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.total
}

// IsActive returns true between Start and Complete/Fail.
func (p *ProgressBar) IsActive() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active
}

// Start begins tracking and draws the empty bar.
func (p *ProgressBar) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.active {
		return
	}
	p.active = true
	p.startTime = time.Now()
	p.current = 0

	if p.isTTY {
		fmt.Fprint(p.writer, hideCursor)
	}
	p.draw()
}

// Step advances the bar by one completed unit, annotated with what just
// finished.
func (p *ProgressBar) Step(label string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.active {
		return
	}
	if p.current < p.total {
		p.current++
	}
	if label != "" {
		p.message = label
	}
	p.draw()
}

// Complete stops the bar with a green check and the given message.
func (p *ProgressBar) Complete(message string) {
	p.finish(message, symbolSuccess, colorGreen)
}

// Fail stops the bar with a red cross and the given message.
func (p *ProgressBar) Fail(message string) {
	p.finish(message, symbolFailure, colorRed)
}

// draw renders the current state. Caller must hold the mutex.
func (p *ProgressBar) draw() {
	line := fmt.Sprintf("%s %s %d%% (%d/%d)",
		p.message, p.bar(), p.current*100/p.total, p.current, p.total)

	if !p.isTTY {
		fmt.Fprintln(p.writer, line)
		return
	}
	if p.lastOutput > 0 {
		fmt.Fprint(p.writer, carriageReturn+strings.Repeat(" ", p.lastOutput)+carriageReturn)
	}
	fmt.Fprint(p.writer, line)
	p.lastOutput = len(line)
}

// bar renders the filled/empty segment string. Caller must hold the mutex.
func (p *ProgressBar) bar() string {
	filled := p.current * barWidth / p.total
	return "[" + strings.Repeat(barFilled, filled) + strings.Repeat(barEmpty, barWidth-filled) + "]"
}

// finish stops the bar and prints a final status line.
func (p *ProgressBar) finish(message, symbol, color string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.active {
		return
	}
	p.active = false
	if message == "" {
		message = p.message
	}
	elapsed := formatElapsed(time.Since(p.startTime))

	if !p.isTTY {
		fmt.Fprintf(p.writer, "%s %s %s\n", symbol, message, elapsed)
		return
	}

	if p.lastOutput > 0 {
		fmt.Fprint(p.writer, carriageReturn+strings.Repeat(" ", p.lastOutput)+carriageReturn)
		p.lastOutput = 0
	}
	fmt.Fprint(p.writer, showCursor)
	fmt.Fprintf(p.writer, "%s%s%s %s %s\n", color, symbol, colorReset, message, elapsed)
}
