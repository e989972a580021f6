package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"zinc/internal/token"
)

// TokenOutput is one token of `zinc tokenize --format json`.
type TokenOutput struct {
	Kind    string         `json:"kind"`
	Text    string         `json:"text,omitempty"`
	Line    uint32         `json:"line"`
	Col     uint32         `json:"col"`
	Start   uint32         `json:"start"`
	End     uint32         `json:"end"`
	Value   any            `json:"value,omitempty"`
	Leading []TriviaOutput `json:"leading,omitempty"`
}

type TriviaOutput struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

// tokenValue returns the decoded payload worth showing next to the lexeme.
func tokenValue(tok token.Token) any {
	switch tok.Kind {
	case token.IntLit, token.TupleAccess:
		return tok.Int
	case token.FloatLit:
		return tok.Float
	case token.Ident, token.StringLit, token.StringInterpStart, token.StringInterpMid, token.StringInterpEnd,
		token.RecordAccess, token.Invalid:
		if tok.Str != tok.Text {
			return tok.Str
		}
	}
	return nil
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token) error {
	for i, tok := range tokens {
		if _, err := fmt.Fprintf(w, "%3d: %-18s %4d:%-3d", i+1, tok.Kind.String(), tok.Line, tok.Col); err != nil {
			return err
		}
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		if v := tokenValue(tok); v != nil {
			fmt.Fprintf(w, " = %v", v)
		}
		if len(tok.Leading) > 0 {
			kinds := make([]string, 0, len(tok.Leading))
			for _, tr := range tok.Leading {
				kinds = append(kinds, tr.Kind.String())
			}
			fmt.Fprintf(w, " (leading: %s)", strings.Join(kinds, ", "))
		}
		fmt.Fprintln(w)
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		out := TokenOutput{
			Kind:  tok.Kind.String(),
			Text:  tok.Text,
			Line:  tok.Line,
			Col:   tok.Col,
			Start: tok.Span.Start,
			End:   tok.Span.End,
			Value: tokenValue(tok),
		}
		for _, tr := range tok.Leading {
			out.Leading = append(out.Leading, TriviaOutput{Kind: tr.Kind.String(), Text: tr.Text})
		}
		output = append(output, out)
		if tok.Kind == token.EOF {
			break
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
