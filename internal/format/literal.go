package format

import (
	"strconv"
	"strings"

	"zinc/internal/lexer"
)

// formatFloat всегда содержит '.' или 'e', иначе лексер прочитает целое.
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if strings.ContainsAny(s, ".eIN") {
		return s
	}
	return s + ".0"
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

func quoteString(s string) string {
	return `"` + lexer.Escape(s) + `"`
}

// name returns an identifier as it must be written: bare when it scans back
// as the same identifier, single-quoted otherwise.
func name(n string) string {
	if lexer.IsPlainName(n) {
		return n
	}
	return "'" + n + "'"
}
