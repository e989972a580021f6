package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"zinc/internal/diag"
	"zinc/internal/lexer"
	"zinc/internal/source"
	"zinc/internal/token"
)

// testReporter собирает все диагностики, полученные от лексера
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note, fixes []diag.Fix) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev, Code: code, Message: msg,
		Primary: primary, Notes: notes, Fixes: fixes,
	})
}

func makeTestLexer(input string, keepComments bool) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.mzn", []byte(input)))
	reporter := &testReporter{}
	return lexer.New(file, lexer.Options{Reporter: reporter, KeepComments: keepComments}), reporter
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, 0, len(toks))
	for _, t := range toks {
		out = append(out, t.Kind)
	}
	return out
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(%q)", tok.Kind, tok.Text)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func expectKinds(t *testing.T, input string, want ...token.Kind) []token.Token {
	t.Helper()
	lx, rep := makeTestLexer(input, false)
	toks := lx.All()
	want = append(want, token.EOF)
	if diff := cmp.Diff(want, kinds(toks)); diff != "" {
		t.Fatalf("%q: kinds mismatch (-want +got):\n%s\ntokens: %s\ndiags: %v", input, diff, tokensToString(toks), rep.diagnostics)
	}
	return toks
}

func TestIdentifiersAndKeywords(t *testing.T) {
	toks := expectKinds(t, "var int: x_1; _abc constraint forall",
		token.KwVar, token.KwInt, token.Colon, token.Ident, token.Semicolon,
		token.Ident, token.KwConstraint, token.Ident)
	if toks[3].Str != "x_1" || toks[5].Str != "_abc" || toks[7].Str != "forall" {
		t.Fatalf("identifier payloads: %q %q %q", toks[3].Str, toks[5].Str, toks[7].Str)
	}
	expectKinds(t, "_ _1", token.Underscore, token.Underscore, token.IntLit)
}

func TestQuotedIdentifiers(t *testing.T) {
	toks := expectKinds(t, "'my var' '+'", token.Ident, token.Ident)
	if toks[0].Str != "my var" || toks[0].Text != "'my var'" || toks[1].Str != "+" {
		t.Fatalf("unexpected quoted ident payloads %+v", toks)
	}
	toks = expectKinds(t, "a `union2` b", token.Ident, token.InfixIdent, token.Ident)
	if toks[1].Str != "union2" {
		t.Fatalf("infix payload %q", toks[1].Str)
	}
	toks = expectKinds(t, "$T $$E", token.PolyIdent, token.EnumPolyIdent)
	if toks[0].Str != "T" || toks[1].Str != "E" {
		t.Fatalf("poly payloads %q %q", toks[0].Str, toks[1].Str)
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		in    string
		kind  token.Kind
		int   int64
		float float64
	}{
		{"0x1F", token.IntLit, 31, 0},
		{"0o17", token.IntLit, 15, 0},
		{"42", token.IntLit, 42, 0},
		{"0", token.IntLit, 0, 0},
		{"1.5e2", token.FloatLit, 0, 150},
		{"2.25", token.FloatLit, 0, 2.25},
		{"3E-1", token.FloatLit, 0, 0.3},
		{"9223372036854775807", token.IntLit, 9223372036854775807, 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			lx, _ := makeTestLexer(tt.in, false)
			tok := lx.Next()
			if tok.Kind != tt.kind || tok.Int != tt.int || tok.Float != tt.float || tok.Text != tt.in {
				t.Fatalf("got %v int=%d float=%g text=%q", tok.Kind, tok.Int, tok.Float, tok.Text)
			}
		})
	}
	toks := expectKinds(t, "1..10", token.IntLit, token.DotDot, token.IntLit)
	if toks[0].Int != 1 || toks[2].Int != 10 {
		t.Fatalf("range bounds %d %d", toks[0].Int, toks[2].Int)
	}
}

func TestOperators(t *testing.T) {
	expectKinds(t, `<-> -> <- \/ /\ <> ++ .. :: == = != <= >= < > + - * / ^ |`,
		token.Equiv, token.Impl, token.RevImpl, token.Or, token.And, token.Absent,
		token.PlusPlus, token.DotDot, token.ColonColon, token.EqEq, token.Assign,
		token.NotEq, token.LtEq, token.GtEq, token.Lt, token.Gt, token.Plus,
		token.Minus, token.Star, token.Slash, token.Caret, token.Pipe)
	expectKinds(t, "~+ ~- ~* ~/ ~div ~= ~!=",
		token.TildePlus, token.TildeMinus, token.TildeStar, token.TildeSlash,
		token.TildeDiv, token.TildeEq, token.TildeNotEq)
	expectKinds(t, "[|1|]", token.LBracket, token.Pipe, token.IntLit, token.Pipe, token.RBracket)
}

func TestTupleAndRecordAccess(t *testing.T) {
	toks := expectKinds(t, "t.1.2 r.name",
		token.Ident, token.TupleAccess, token.TupleAccess, token.Ident, token.RecordAccess)
	if toks[1].Int != 1 || toks[2].Int != 2 || toks[4].Str != "name" {
		t.Fatalf("access payloads: %d %d %q", toks[1].Int, toks[2].Int, toks[4].Str)
	}
}

func TestStrings(t *testing.T) {
	lx, _ := makeTestLexer(`"a\tb\n\"q\"\\ \'"`, false)
	tok := lx.Next()
	if tok.Kind != token.StringLit || tok.Str != "a\tb\n\"q\"\\ '" {
		t.Fatalf("got %v %q", tok.Kind, tok.Str)
	}
}

func TestStringInterpolation(t *testing.T) {
	toks := expectKinds(t, `"x=\(f(x)) y=\(y)!"`,
		token.StringInterpStart, token.Ident, token.LParen, token.Ident, token.RParen,
		token.StringInterpMid, token.Ident, token.StringInterpEnd)
	parts := []string{toks[0].Str, toks[5].Str, toks[7].Str}
	if diff := cmp.Diff([]string{"x=", " y=", "!"}, parts); diff != "" {
		t.Fatalf("interpolation parts (-want +got):\n%s", diff)
	}
	if toks[0].Text != `"x=\(` || toks[5].Text != `) y=\(` || toks[7].Text != `)!"` {
		t.Fatalf("interpolation texts %q %q %q", toks[0].Text, toks[5].Text, toks[7].Text)
	}
}

func TestCommentsDroppedOrKept(t *testing.T) {
	src := "% head\nvar int: x; /* block */ x"
	expectKinds(t, src, token.KwVar, token.KwInt, token.Colon, token.Ident, token.Semicolon, token.Ident)

	lx, _ := makeTestLexer(src, true)
	toks := lx.All()
	if len(toks[0].Leading) != 1 || toks[0].Leading[0].Kind != token.TriviaLineComment || toks[0].Leading[0].Text != "% head" {
		t.Fatalf("leading of first token: %+v", toks[0].Leading)
	}
	last := toks[5]
	if len(last.Leading) != 1 || last.Leading[0].Text != "/* block */" {
		t.Fatalf("leading of last token: %+v", last.Leading)
	}
}

func TestPositions(t *testing.T) {
	lx, _ := makeTestLexer("a\n  bc", false)
	a, bc := lx.Next(), lx.Next()
	if a.Line != 1 || a.Col != 1 || bc.Line != 2 || bc.Col != 3 {
		t.Fatalf("positions: a=%d:%d bc=%d:%d", a.Line, a.Col, bc.Line, bc.Col)
	}
	if bc.Span.Start != 4 || bc.Len() != 2 {
		t.Fatalf("bc span %v", bc.Span)
	}
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		in   string
		code diag.Code
	}{
		{"'abc", diag.LexBadQuotedIdent},
		{"'a\\b'", diag.LexBadQuotedIdent},
		{"''", diag.LexBadQuotedIdent},
		{"``", diag.LexBadInfixIdent},
		{"`a", diag.LexBadInfixIdent},
		{"`1x`", diag.LexBadInfixIdent},
		{"$1", diag.LexBadPolyIdent},
		{`"abc`, diag.LexUnterminatedString},
		{"\"ab\ncd\"", diag.LexUnterminatedString},
		{`"a\qb"`, diag.LexBadEscape},
		{"/* never closed", diag.LexUnterminatedBlockComment},
		{"99999999999999999999", diag.LexBadNumber},
		{"0x", diag.LexBadNumber},
		{"1e+", diag.LexBadNumber},
		{"#", diag.LexUnknownChar},
		{`"\(x`, diag.LexUnbalancedInterp},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			lx, rep := makeTestLexer(tt.in, false)
			toks := lx.All()
			last := toks[len(toks)-1]
			if last.Kind != token.Invalid || last.Str == "" {
				t.Fatalf("expected Invalid token with message, got %s", tokensToString(toks))
			}
			if len(rep.diagnostics) != 1 || rep.diagnostics[0].Code != tt.code {
				t.Fatalf("diagnostics = %+v, want one %s", rep.diagnostics, tt.code.ID())
			}
		})
	}
}

func TestErrorLatches(t *testing.T) {
	lx, rep := makeTestLexer("x # y z", false)
	if lx.Next().Kind != token.Ident {
		t.Fatalf("expected identifier first")
	}
	first := lx.Next()
	for range 3 {
		again := lx.Next()
		if diff := cmp.Diff(first, again, cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("lexer did not latch (-first +again):\n%s", diff)
		}
	}
	if len(rep.diagnostics) != 1 {
		t.Fatalf("error reported %d times", len(rep.diagnostics))
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer("a b", false)
	if p := lx.Peek(); p.Str != "a" {
		t.Fatalf("Peek = %q", p.Str)
	}
	if n := lx.Next(); n.Str != "a" {
		t.Fatalf("Next after Peek = %q", n.Str)
	}
	if n := lx.Next(); n.Str != "b" {
		t.Fatalf("second Next = %q", n.Str)
	}
	if lx.Next().Kind != token.EOF || lx.Next().Kind != token.EOF {
		t.Fatalf("EOF must repeat")
	}
}

func TestEscapeRoundTrip(t *testing.T) {
	in := "tab\there \"q\" back\\slash\n"
	lx, _ := makeTestLexer(`"`+lexer.Escape(in)+`"`, false)
	if tok := lx.Next(); tok.Kind != token.StringLit || tok.Str != in {
		t.Fatalf("round trip: %v %q", tok.Kind, tok.Str)
	}
}
