package format

import (
	"errors"
	"fmt"

	"zinc/internal/ast"
	"zinc/internal/lexer"
	"zinc/internal/parser"
	"zinc/internal/source"
	"zinc/internal/token"
)

// ErrRoundTrip reports that formatted output parses to a different tree.
var ErrRoundTrip = errors.New("round trip changed the program")

// ErrCommentsDropped reports that formatted output lost comments of the input.
var ErrCommentsDropped = errors.New("formatting would drop comments")

// comments lexes f keeping comments, up to the end of input or the first
// lexical error.
func comments(f *source.File) []token.Trivia {
	var out []token.Trivia
	for _, tok := range lexer.New(f, lexer.Options{KeepComments: true}).All() {
		out = append(out, tok.Leading...)
	}
	return out
}

// LostComments returns the comments of src whose text no longer appears in
// out, in source order. The writer keeps comments before items and at the
// end of input only, so a comment inside an expression shows up here.
func LostComments(src *source.File, out string) []token.Trivia {
	fs := source.NewFileSet()
	kept := make(map[string]int)
	for _, c := range comments(fs.Get(fs.AddVirtual(src.Path+"#formatted", []byte(out)))) {
		kept[c.Text]++
	}
	var lost []token.Trivia
	for _, c := range comments(src) {
		if kept[c.Text] > 0 {
			kept[c.Text]--
			continue
		}
		lost = append(lost, c)
	}
	return lost
}

// CheckRoundTrip parses src, writes it with opt, parses the output again and
// compares both trees with ast.Equal. It returns the formatted text.
func CheckRoundTrip(path string, src []byte, opt Options) (string, error) {
	fs := source.NewFileSet()
	orig, err := parser.ParseModel(fs.Get(fs.AddVirtual(path, src)), parser.Options{KeepComments: true})
	if err != nil {
		return "", fmt.Errorf("fmt-check: initial parse: %w", err)
	}
	out := WriteModel(orig, opt)
	return out, VerifyModel(path, orig, out, opt)
}

// VerifyModel re-parses out and compares it with orig. With Prettify the
// comparison is against orig's items in prettified order.
func VerifyModel(path string, orig *ast.Model, out string, opt Options) error {
	fs := source.NewFileSet()
	again, err := parser.ParseModel(fs.Get(fs.AddVirtual(path+"#formatted", []byte(out))), parser.Options{})
	if err != nil {
		return fmt.Errorf("fmt-check: reparse: %w", err)
	}
	if opt.Prettify {
		// порядок элементов меняется намеренно; сравниваем с упорядоченным оригиналом
		orig = &ast.Model{Items: sortedItems(orig.Items)}
	}
	if !ast.EqualModels(orig, again) {
		return fmt.Errorf("fmt-check: %s: %w", path, ErrRoundTrip)
	}
	return nil
}

// CheckDataRoundTrip is CheckRoundTrip for assignment-only data text.
func CheckDataRoundTrip(path string, src []byte, opt Options) (string, error) {
	fs := source.NewFileSet()
	orig, err := parser.ParseData(fs.Get(fs.AddVirtual(path, src)), parser.Options{})
	if err != nil {
		return "", fmt.Errorf("fmt-check: initial parse: %w", err)
	}
	out := WriteData(orig, opt)
	return out, VerifyData(path, orig, out)
}

// VerifyData re-parses out as data and compares the dictionaries.
func VerifyData(path string, orig *ast.Data, out string) error {
	fs := source.NewFileSet()
	again, err := parser.ParseData(fs.Get(fs.AddVirtual(path+"#formatted", []byte(out))), parser.Options{})
	if err != nil {
		return fmt.Errorf("fmt-check: reparse: %w", err)
	}
	if !orig.Equal(again) {
		return fmt.Errorf("fmt-check: %s: %w", path, ErrRoundTrip)
	}
	return nil
}
