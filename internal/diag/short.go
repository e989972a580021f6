package diag

import (
	"fmt"
	"path/filepath"
	"strings"

	"zinc/internal/source"
)

// FormatShort renders diagnostics one per line as
// "<severity> <ID> <path>:<line>:<col> <message>", in bag order.
// Notes follow their diagnostic when includeNotes is set.
func FormatShort(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	if fs == nil || len(diags) == 0 {
		return ""
	}
	var b strings.Builder
	line := func(sev, id string, sp source.Span, msg string) {
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		path := "<unknown>"
		var pos source.LineCol
		if f := fs.Get(sp.File); f != nil {
			path = filepath.ToSlash(f.FormatPath("relative", fs.BaseDir()))
			pos = f.Position(sp.Start)
		}
		fmt.Fprintf(&b, "%s %s %s:%d:%d %s", sev, id, path, pos.Line, pos.Col, sanitizeMessage(msg))
	}
	for _, d := range diags {
		line(d.Severity.Label(), d.Code.ID(), d.Primary, d.Message)
		if includeNotes {
			for _, n := range d.Notes {
				line("note", d.Code.ID(), n.Span, n.Msg)
			}
		}
	}
	return b.String()
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
