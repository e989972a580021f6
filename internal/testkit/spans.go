// Package testkit holds checks shared by parser, driver and fuzz tests.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"zinc/internal/ast"
	"zinc/internal/source"
)

// CheckPositions runs a minimal set of position invariants on a parsed model:
// 1) every node that came from source has a start token inside sf
// 2) the token's Line/Col agree with its byte offset
// 3) items start in strictly increasing order
// 4) every node starts between its item's start and the next item's start
func CheckPositions(m *ast.Model, sf *source.File) error {
	if m == nil || sf == nil {
		return fmt.Errorf("nil model or file")
	}
	size, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	for i, it := range m.Items {
		lo := it.Base().Start.Span.Start
		hi := size
		if i+1 < len(m.Items) {
			hi = m.Items[i+1].Base().Start.Span.Start
			if hi <= lo {
				return fmt.Errorf("item %d starts at %d, not after item %d at %d", i+1, hi, i, lo)
			}
		}

		var bad error
		ast.Inspect(it, func(n ast.Syntax) bool {
			if bad != nil {
				return false
			}
			tok := n.Base().Start
			if tok.Line == 0 {
				// синтезированный узел
				return true
			}
			sp := tok.Span
			switch {
			case sp.File != sf.ID:
				bad = fmt.Errorf("%T points to file %d, want %d", n, sp.File, sf.ID)
			case sp.End < sp.Start || sp.End > size:
				bad = fmt.Errorf("%T span %d..%d outside content of %d bytes", n, sp.Start, sp.End, size)
			case sp.Start < lo || sp.Start > hi:
				bad = fmt.Errorf("%T at %d is outside item %d range %d..%d", n, sp.Start, i, lo, hi)
			}
			if bad == nil {
				if pos := sf.Position(sp.Start); pos.Line != tok.Line || pos.Col != tok.Col {
					bad = fmt.Errorf("%T at %d reports %d:%d, offset maps to %d:%d", n, sp.Start, tok.Line, tok.Col, pos.Line, pos.Col)
				}
			}
			return bad == nil
		})
		if bad != nil {
			return bad
		}
	}
	return nil
}
