package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// printer outputs results, highlighting them with colors if the output is an
// interactive terminal.
type printer struct {
	w      io.Writer
	yes    *color.Color
	no     *color.Color
	label  *color.Color
	number *color.Color
}

func newPrinter(w io.Writer, opts *options) *printer {
	p := &printer{
		w:      w,
		yes:    color.New(color.FgGreen),
		no:     color.New(color.FgRed),
		label:  color.New(color.Bold),
		number: color.New(color.FgBlue),
	}
	if opts.noColor || !isTerminal(w) {
		for _, c := range []*color.Color{p.yes, p.no, p.label, p.number} {
			c.DisableColor()
		}
	}
	return p
}

// isTerminal checks whether w is stdout or stderr of an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// YesNo prints “Yes” or “No” on a line of its own.
func (p *printer) YesNo(b bool) {
	if b {
		p.yes.Fprintln(p.w, "Yes")
		return
	}
	p.no.Fprintln(p.w, "No")
}

// Value prints a value on a line of its own.
func (p *printer) Value(v any) {
	p.number.Fprintln(p.w, v)
}

// Labeled prints a label, followed by a value.
func (p *printer) Labeled(label string, v any) {
	p.label.Fprintf(p.w, "%s: ", label)
	fmt.Fprintln(p.w, v)
}
