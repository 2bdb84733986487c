package main

import (
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/zephyrtronium/shunt"
)

// stepPrinter draws token sequences as a row of boxed cells.
type stepPrinter struct {
	w     io.Writer
	frame *color.Color
	cell  *color.Color
}

func newStepPrinter(w io.Writer, noColor bool) *stepPrinter {
	s := &stepPrinter{
		w:     w,
		frame: color.New(color.FgCyan, color.Bold),
		cell:  color.New(color.FgWhite, color.Bold),
	}
	if noColor {
		s.frame.DisableColor()
		s.cell.DisableColor()
	}
	return s
}

// print writes a title line and the boxed tokens.
func (s *stepPrinter) print(title string, toks []shunt.Token) {
	s.frame.Fprintln(s.w, title+":")
	if len(toks) == 0 {
		s.frame.Fprintln(s.w, "╭╮")
		s.frame.Fprintln(s.w, "╰╯")
		return
	}
	width := len(toks) - 1
	for _, tok := range toks {
		width += len(tok.Text) + 2
	}
	bar := strings.Repeat("─", width)
	s.frame.Fprintln(s.w, "╭"+bar+"╮")
	s.frame.Fprint(s.w, "│")
	for _, tok := range toks {
		s.cell.Fprint(s.w, " "+tok.Text+" ")
		s.frame.Fprint(s.w, "│")
	}
	io.WriteString(s.w, "\n")
	s.frame.Fprintln(s.w, "╰"+bar+"╯")
}
