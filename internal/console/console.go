// Package console prints the status lines generators show while they work.
//
// Every line starts with a marker: ✓ for a completed operation, ✗ for a
// failed one and ⚠ for something that failed but does not matter.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	okColor   = color.New(color.FgGreen)
	failColor = color.New(color.FgRed)
	warnColor = color.New(color.FgYellow)
	headColor = color.New(color.FgCyan, color.Bold)
)

// Printer writes status lines to an output stream.
type Printer struct {
	w io.Writer
}

// New returns a Printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Line prints an unmarked line.
func (p *Printer) Line(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// OK prints a success line.
func (p *Printer) OK(format string, args ...any) {
	okColor.Fprint(p.w, "✓ ")
	fmt.Fprintf(p.w, format+"\n", args...)
}

// Fail prints a failure line.
func (p *Printer) Fail(format string, args ...any) {
	failColor.Fprint(p.w, "✗ ")
	fmt.Fprintf(p.w, format+"\n", args...)
}

// Warn prints a non-critical failure line.
func (p *Printer) Warn(format string, args ...any) {
	warnColor.Fprint(p.w, "⚠ ")
	fmt.Fprintf(p.w, format+"\n", args...)
}

// Banner prints a title between two rules.
func (p *Printer) Banner(title string) {
	rule := strings.Repeat("=", 36)
	headColor.Fprintln(p.w, rule)
	headColor.Fprintln(p.w, title)
	headColor.Fprintln(p.w, rule)
}
