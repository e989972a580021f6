package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"zinc/internal/diag"
	"zinc/internal/source"
)

// palette держит раскраску одного вызова Pretty; глобальный color.NoColor не трогаем.
type palette struct {
	err, warn, info, code, gutter, caret, note, fix *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		code:   color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgGreen, color.Bold),
		note:   color.New(color.FgCyan),
		fix:    color.New(color.FgGreen),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.code, p.gutter, p.caret, p.note, p.fix} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	}
	return p.info
}

// Pretty renders every diagnostic of bag as
//
//	path:line:col: ERROR SYN2003: message
//	   3 | constraint x > 0
//	     |            ^^^^^
//
// followed by notes and fixes when requested.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	pal := newPalette(opts.Color)
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		prettyOne(w, d, fs, opts, pal)
	}
	if n := bag.Dropped(); n > 0 {
		fmt.Fprintf(w, "\n%d more diagnostic(s) not shown\n", n)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, pal palette) {
	f := fs.Get(d.Primary.File)
	if f == nil {
		fmt.Fprintf(w, "%s %s: %s\n", pal.severity(d.Severity).Sprint(d.Severity.String()), pal.code.Sprint(d.Code.ID()), d.Message)
		return
	}
	start, end := fs.Resolve(d.Primary)
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		formatPath(f, fs, opts.PathMode), start.Line, start.Col,
		pal.severity(d.Severity).Sprint(d.Severity.String()),
		pal.code.Sprint(d.Code.ID()),
		d.Message)

	gutterWidth := len(fmt.Sprint(start.Line))
	from := start.Line
	if ctx := uint32(max(opts.Context, 0)); ctx > 0 {
		from = 1
		if start.Line > ctx {
			from = start.Line - ctx
		}
	}
	for ln := from; ln < start.Line; ln++ {
		writeSourceLine(w, ln, f.GetLine(ln), gutterWidth, opts, pal)
	}
	line := f.GetLine(start.Line)
	writeSourceLine(w, start.Line, line, gutterWidth, opts, pal)

	// подчёркиваем до конца строки, если спан многострочный
	startCol := int(start.Col) - 1
	endCol := len(line)
	if end.Line == start.Line {
		endCol = int(end.Col) - 1
	}
	fmt.Fprintf(w, "%s %s %s\n",
		strings.Repeat(" ", gutterWidth),
		pal.gutter.Sprint("|"),
		pal.caret.Sprint(caretLine(line, startCol, endCol)))

	if opts.ShowNotes {
		for _, n := range d.Notes {
			fmt.Fprintf(w, "  %s %s: %s\n", pal.note.Sprint("note:"), locationOf(n.Span, fs, opts.PathMode), n.Msg)
		}
	}
	if opts.ShowFixes {
		for i, fx := range d.Fixes {
			fmt.Fprintf(w, "  %s %s\n", pal.fix.Sprintf("fix #%d:", i+1), fx.Title)
			for _, e := range fx.Edits {
				fmt.Fprintf(w, "    %s apply=%q\n", locationOf(e.Span, fs, opts.PathMode), e.NewText)
				if !opts.ShowPreview {
					continue
				}
				pv, err := buildFixEditPreview(fs, e)
				if err != nil {
					continue
				}
				fmt.Fprintln(w, "    preview:")
				for _, l := range pv.before {
					fmt.Fprintf(w, "      - %s\n", l)
				}
				for _, l := range pv.after {
					fmt.Fprintf(w, "      + %s\n", l)
				}
			}
		}
	}
}

func writeSourceLine(w io.Writer, num uint32, text string, gutterWidth int, opts PrettyOpts, pal palette) {
	if opts.Width > 0 {
		text = runewidth.Truncate(text, int(opts.Width), "…")
	}
	fmt.Fprintf(w, "%*d %s %s\n", gutterWidth, num, pal.gutter.Sprint("|"), text)
}

// caretLine builds the underline for line[startCol:endCol] (byte columns).
// Отступ повторяет табы исходной строки, а широкие руны дают несколько кареток.
func caretLine(line string, startCol, endCol int) string {
	startCol = min(max(startCol, 0), len(line))
	endCol = min(max(endCol, startCol), len(line))
	var b strings.Builder
	for _, r := range line[:startCol] {
		if r == '\t' {
			b.WriteByte('\t')
			continue
		}
		b.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	b.WriteString(strings.Repeat("^", max(1, runewidth.StringWidth(line[startCol:endCol]))))
	return b.String()
}

func locationOf(sp source.Span, fs *source.FileSet, mode PathMode) string {
	f := fs.Get(sp.File)
	if f == nil {
		return sp.String()
	}
	pos := f.Position(sp.Start)
	return fmt.Sprintf("%s:%d:%d", formatPath(f, fs, mode), pos.Line, pos.Col)
}
