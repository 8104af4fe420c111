// Package progress draws a single-line progress bar for sequential batches.
package progress

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

const (
	barFull  = "█"
	barEmpty = "░"

	defaultWidth = 80
	minBarWidth  = 10
)

// Bar renders "<desc>: 42%|████░░░░| 33/78" and redraws it in place.
type Bar struct {
	out     io.Writer
	desc    string
	total   int
	current int
	width   int
}

// New creates a bar writing to out. The line width follows the terminal when
// out is one.
func New(out io.Writer, desc string, total int) *Bar {
	return &Bar{
		out:   out,
		desc:  desc,
		total: total,
		width: terminalWidth(out),
	}
}

func terminalWidth(out io.Writer) int {
	f, ok := out.(*os.File)
	if !ok {
		return defaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

// Start draws the empty bar
func (b *Bar) Start() {
	b.draw()
}

// Increment advances the bar by one item
func (b *Bar) Increment() {
	if b.current < b.total {
		b.current++
	}
	b.draw()
}

// Finish terminates the progress line
func (b *Bar) Finish() {
	fmt.Fprintln(b.out)
}

// String returns the current bar line, without carriage return
func (b *Bar) String() string {
	percent := 100
	if b.total > 0 {
		percent = b.current * 100 / b.total
	}

	prefix := fmt.Sprintf("%s: %3d%%|", b.desc, percent)
	suffix := fmt.Sprintf("| %d/%d", b.current, b.total)

	barWidth := b.width - len(prefix) - len(suffix) - 1
	if barWidth < minBarWidth {
		barWidth = minBarWidth
	}

	filled := barWidth
	if b.total > 0 {
		filled = barWidth * b.current / b.total
	}

	return prefix +
		color.GreenString(strings.Repeat(barFull, filled)) +
		strings.Repeat(barEmpty, barWidth-filled) +
		suffix
}

func (b *Bar) draw() {
	fmt.Fprint(b.out, "\r"+b.String())
}
