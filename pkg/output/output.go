// Package output renders diagnostic results for a terminal.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/jwalton/go-supportscolor"

	"github.com/vertti/devdoctor/pkg/check"
)

const (
	green  = "\033[32m"
	red    = "\033[31m"
	yellow = "\033[33m"
	dim    = "\033[2m"
	reset  = "\033[0m"
)

const (
	glyphOK   = "✓"
	glyphFail = "✗"
	glyphWarn = "⚠"
)

var separator = strings.Repeat("=", 50)

// ColorSupported reports whether stdout supports ANSI colors.
func ColorSupported() bool {
	return supportscolor.Stdout().SupportsColor
}

// Counts summarizes a finished run.
type Counts struct {
	Passed   int // checks that passed
	Failed   int // required checks that failed
	Warnings int // advisory checks that failed
}

// Printer writes line-oriented results to w.
type Printer struct {
	w     io.Writer
	color bool
}

// NewPrinter returns a Printer writing to w, with ANSI colors when color is true.
func NewPrinter(w io.Writer, color bool) *Printer {
	return &Printer{w: w, color: color}
}

func (p *Printer) paint(color, s string) string {
	if !p.color {
		return s
	}
	return color + s + reset
}

// PrintHeader prints the opening line of a run.
func (p *Printer) PrintHeader(title string) {
	fmt.Fprintf(p.w, "%s\n\n", title)
}

// PrintResult prints one check as "<glyph> <name>: <message>", followed by
// an indented fix line on failure. Failed advisory checks get a warning glyph.
func (p *Printer) PrintResult(name string, required bool, r check.Result) {
	switch {
	case r.OK():
		fmt.Fprintf(p.w, "%s %s: %s\n", p.paint(green, glyphOK), name, r.Message)
	case required:
		fmt.Fprintf(p.w, "%s %s: %s\n", p.paint(red, glyphFail), name, r.Message)
	default:
		fmt.Fprintf(p.w, "%s %s: %s\n", p.paint(yellow, glyphWarn), name, r.Message)
	}
	if !r.OK() && r.Fix != "" {
		fmt.Fprintf(p.w, "  %s %s\n", p.paint(dim, "Fix:"), r.Fix)
	}
}

// PrintSuccess prints the closing banner for a run with no blocking failure.
func (p *Printer) PrintSuccess(c Counts, quickStart []string) {
	fmt.Fprintf(p.w, "\n%s\n", separator)
	fmt.Fprintf(p.w, "%s All required checks passed (%s)\n", p.paint(green, glyphOK), c)
	if len(quickStart) > 0 {
		fmt.Fprintf(p.w, "\nQuick start:\n")
		for _, line := range quickStart {
			fmt.Fprintf(p.w, "  %s\n", line)
		}
	}
}

// PrintFailure prints the closing banner for a run with a blocking failure.
func (p *Printer) PrintFailure(c Counts, rerun string) {
	fmt.Fprintf(p.w, "\n%s\n", separator)
	fmt.Fprintf(p.w, "%s Some required checks failed (%s)\n", p.paint(red, glyphWarn), c)
	fmt.Fprintf(p.w, "Address the fixes above, then run %s again.\n", rerun)
}

// String renders the counts as "3 passed, 1 failed, 2 warnings".
func (c Counts) String() string {
	parts := []string{fmt.Sprintf("%d passed", c.Passed)}
	if c.Failed > 0 {
		parts = append(parts, fmt.Sprintf("%d failed", c.Failed))
	}
	switch c.Warnings {
	case 0:
	case 1:
		parts = append(parts, "1 warning")
	default:
		parts = append(parts, fmt.Sprintf("%d warnings", c.Warnings))
	}
	return strings.Join(parts, ", ")
}
