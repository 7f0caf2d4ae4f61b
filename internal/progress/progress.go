package progress

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Unit selects how a meter formats its running count.
type Unit int

const (
	// Count renders plain item counts.
	Count Unit = iota
	// Bytes renders binary-scaled byte counts (KiB, MiB, ...).
	Bytes
)

// redrawInterval limits how often an interactive meter repaints.
const redrawInterval = 100 * time.Millisecond

// Meter is a single-line progress indicator. On a terminal it redraws
// in place as the count advances; anywhere else it stays quiet until
// Finish prints one summary line.
type Meter struct {
	out      io.Writer
	label    string
	unit     Unit
	total    int64
	count    int64
	tty      bool
	width    int
	lastDraw time.Time
}

// New returns a meter labeled label writing to w. A total of 0 leaves
// the meter indeterminate (count only, no bar) until SetTotal is
// called.
func New(w io.Writer, label string, total int64, unit Unit) *Meter {
	m := &Meter{out: w, label: label, total: total, unit: unit, width: 80}

	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		m.tty = true
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 {
			m.width = cols
		}
	}

	return m
}

// SetTotal sets the expected final count, turning an indeterminate
// meter into a bounded one.
func (m *Meter) SetTotal(total int64) {
	m.total = total
}

// Add advances the meter by n units.
func (m *Meter) Add(n int) {
	m.count += int64(n)

	if !m.tty || time.Since(m.lastDraw) < redrawInterval {
		return
	}
	m.draw()
}

// Finish paints the final state and moves off the progress line.
func (m *Meter) Finish() {
	if m.tty {
		m.draw()
		fmt.Fprintln(m.out)
		return
	}
	fmt.Fprintf(m.out, "%s: %s\n", m.label, m.progress())
}

func (m *Meter) draw() {
	m.lastDraw = time.Now()
	line := color.CyanString(m.label) + " " + m.bar() + m.progress()
	// Clear to end of line so a shrinking count leaves no residue.
	fmt.Fprintf(m.out, "\r%s\x1b[K", line)
}

// bar renders the filled portion of a bounded meter, sized down on
// narrow terminals.
func (m *Meter) bar() string {
	if m.total <= 0 {
		return ""
	}

	barWidth := 30
	if m.width < 60 {
		barWidth = 10
	}

	done := int(float64(barWidth) * float64(m.count) / float64(m.total))
	if done > barWidth {
		done = barWidth
	}

	return "[" + strings.Repeat("=", done) + strings.Repeat(" ", barWidth-done) + "] "
}

func (m *Meter) progress() string {
	switch {
	case m.total > 0 && m.unit == Bytes:
		return fmt.Sprintf("%s / %s", formatBytes(m.count), formatBytes(m.total))
	case m.total > 0:
		return fmt.Sprintf("%d / %d", m.count, m.total)
	case m.unit == Bytes:
		return formatBytes(m.count)
	default:
		return fmt.Sprintf("%d", m.count)
	}
}

// formatBytes renders n with binary prefixes.
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}

	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
