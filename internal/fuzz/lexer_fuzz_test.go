package fuzztests

import (
	"testing"

	"zinc/internal/diag"
	"zinc/internal/lexer"
	"zinc/internal/source"
	"zinc/internal/token"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		content, flags := source.Normalize(input)
		file := fs.Get(fs.Add("fuzz.mzn", content, flags))

		bag := diag.NewBag(64)
		lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}, KeepComments: true})
		toks := lx.All()

		last := toks[len(toks)-1]
		if last.Kind != token.EOF && last.Kind != token.Invalid {
			t.Fatalf("stream ends with %v", last.Kind)
		}
		if (last.Kind == token.Invalid) != bag.HasErrors() {
			t.Fatalf("invalid token %v but %d diagnostics", last.Kind == token.Invalid, bag.Len())
		}
		size := uint32(len(content))
		prevEnd := uint32(0)
		for _, tok := range toks {
			if tok.Span.Start < prevEnd || tok.Span.End < tok.Span.Start || tok.Span.End > size {
				t.Fatalf("bad span %+v after %d (len %d)", tok.Span, prevEnd, size)
			}
			prevEnd = tok.Span.End
		}
	})
}
