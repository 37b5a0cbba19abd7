package main

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/casualarcade/arcade/engine"
)

// printer writes coloured lines; colours drop out when w is not a terminal.
type printer struct {
	w   io.Writer
	out *termenv.Output
}

func newPrinter(w io.Writer) *printer {
	return &printer{w: w, out: termenv.NewOutput(w)}
}

func (p *printer) line(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) heading(s string) {
	p.line("%s", p.out.String(s).Bold().Underline())
}

func (p *printer) paint(s, color string) string {
	return p.out.String(s).Foreground(p.out.Color(color)).String()
}

func (p *printer) good(s string) string { return p.paint(s, "2") }
func (p *printer) bad(s string) string  { return p.paint(s, "1") }
func (p *printer) warn(s string) string { return p.paint(s, "3") }
func (p *printer) dim(s string) string  { return p.out.String(s).Faint().String() }

// outcome renders a result from the player's side.
func (p *printer) outcome(o engine.Outcome, status string) string {
	switch o {
	case engine.WinSideOne:
		return p.good("WIN ") + " " + status
	case engine.WinSideTwo:
		return p.bad("LOSS") + " " + status
	case engine.Draw:
		return p.warn("DRAW") + " " + status
	}
	return p.dim("----") + " " + status
}
