// Package progressbar implements functionality of printing a progress
// bar to the terminal window
package progressbar

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// ManualProgressBar implement progress bar functionality that must
// be manually managed. That is, the Display() function must be called
// whenever an updated progress bar should be printed.
//
// A status line, such as the current episode score, can be shown after
// the bar with SetStatus. ManualProgressBar does not use concurrency.
type ManualProgressBar struct {
	out             io.Writer
	width           float64
	maxProgress     float64
	currentProgress float64
	status          string
	bar             strings.Builder
	startTime       time.Time
}

// NewManualProgressBar returns a new ManualProgressBar printing to
// out, which is width characters wide and full after max increments.
func NewManualProgressBar(out io.Writer, width, max int) *ManualProgressBar {
	if width <= 0 || max <= 0 {
		panic(fmt.Sprintf("newManualProgressBar: width and max must be "+
			"positive, have %d and %d", width, max))
	}

	return &ManualProgressBar{
		out:         out,
		width:       float64(width),
		maxProgress: float64(max),
		startTime:   time.Now(),
	}
}

// Increment increments the interal progress counter. Each time an
// iteration is performed, Increment should be called.
func (p *ManualProgressBar) Increment() {
	if p.currentProgress < p.maxProgress {
		p.currentProgress++
	}
}

// Progress returns the fraction of the bar that is full
func (p *ManualProgressBar) Progress() float64 {
	return p.currentProgress / p.maxProgress
}

// SetStatus sets the text displayed after the bar
func (p *ManualProgressBar) SetStatus(format string, a ...interface{}) {
	p.status = fmt.Sprintf(format, a...)
}

// String returns the current bar without terminal control characters
func (p *ManualProgressBar) String() string {
	p.bar.Reset()
	p.bar.WriteString("|")

	full := int(p.Progress() * p.width)
	p.bar.WriteString(strings.Repeat("█", full))
	p.bar.WriteString(strings.Repeat(" ", int(p.width)-full))

	fmt.Fprintf(&p.bar, "| [%.2f%% | elapsed: %v]", p.Progress()*100,
		time.Since(p.startTime).Truncate(time.Second))
	if p.status != "" {
		fmt.Fprintf(&p.bar, " %v", p.status)
	}
	return p.bar.String()
}

// Display redraws the progress bar over the current terminal line
func (p *ManualProgressBar) Display() {
	fmt.Fprintf(p.out, "\r\033[K%v", p.String())
}

// Finish displays the final bar and moves to the next line
func (p *ManualProgressBar) Finish() {
	p.Display()
	fmt.Fprintln(p.out)
}
