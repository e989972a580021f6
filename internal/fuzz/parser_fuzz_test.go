package fuzztests

import (
	"context"
	"testing"
	"time"

	"zinc/internal/diag"
	"zinc/internal/format"
	"zinc/internal/parser"
	"zinc/internal/source"
	"zinc/internal/testkit"
)

// parseTimeout is the maximum time allowed for parsing a single input.
// If parsing takes longer, it indicates a potential infinite loop.
const parseTimeout = 5 * time.Second

// FuzzParserNoHang checks that the parser stops on any input and reports
// exactly one diagnostic when it fails.
func FuzzParserNoHang(f *testing.F) {
	addCorpusSeeds(f)
	f.Add([]byte("constraint ((((((((((x))))))))));"))
	f.Add([]byte("constraint [ [ [ [ [ [ 1 ] ] ] ] ] ];"))
	f.Add([]byte("var int: x = let { let { } in 1;"))
	f.Add([]byte("solve :: :: satisfy;"))

	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		ctx, cancel := context.WithTimeout(context.Background(), parseTimeout)
		defer cancel()

		type outcome struct {
			err   error
			diags int
			spans error
		}
		done := make(chan outcome, 1)
		go func() {
			fs := source.NewFileSet()
			file := fs.Get(fs.AddVirtual("fuzz.mzn", input))
			bag := diag.NewBag(0)
			m, err := parser.ParseModel(file, parser.Options{Reporter: diag.BagReporter{Bag: bag}, KeepComments: true})
			out := outcome{err: err, diags: bag.Len()}
			if err == nil {
				out.spans = testkit.CheckPositions(m, file)
			}
			done <- out
		}()

		select {
		case out := <-done:
			if out.err != nil && out.diags != 1 {
				t.Fatalf("parse failed with %d diagnostics: %v", out.diags, out.err)
			}
			if out.err == nil && out.diags != 0 {
				t.Fatalf("parse succeeded with %d diagnostics", out.diags)
			}
			if out.spans != nil {
				t.Fatalf("positions: %v", out.spans)
			}
		case <-ctx.Done():
			t.Fatalf("parser hang detected: parsing took longer than %v\ninput (%d bytes): %q",
				parseTimeout, len(input), truncateForLog(input, 200))
		}
	})
}

// FuzzFormatRoundTrip checks that every parsable model and data file
// survives formatting in all writer modes.
func FuzzFormatRoundTrip(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)
		for _, opt := range []format.Options{{}, {Minify: true}, {Prettify: true, Indent: 4}} {
			if _, err := format.CheckRoundTrip("fuzz.mzn", input, opt); err != nil && !isInitialParseError(input, false) {
				t.Fatalf("model %+v: %v\ninput: %q", opt, err, truncateForLog(input, 200))
			}
			if _, err := format.CheckDataRoundTrip("fuzz.dzn", input, opt); err != nil && !isInitialParseError(input, true) {
				t.Fatalf("data %+v: %v\ninput: %q", opt, err, truncateForLog(input, 200))
			}
		}
	})
}

func isInitialParseError(input []byte, data bool) bool {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("fuzz", input))
	var err error
	if data {
		_, err = parser.ParseData(file, parser.Options{})
	} else {
		_, err = parser.ParseModel(file, parser.Options{KeepComments: true})
	}
	return err != nil
}

func truncateForLog(b []byte, n int) []byte {
	if len(b) <= n {
		return b
	}
	return b[:n]
}
