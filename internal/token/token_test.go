package token

import (
	"testing"

	"zinc/internal/source"
)

func TestTokenEqualIgnoresPosition(t *testing.T) {
	a := Token{Kind: IntLit, Int: 31, Text: "0x1F", Span: source.Span{Start: 0, End: 4}, Line: 1, Col: 1}
	b := Token{Kind: IntLit, Int: 31, Text: "31", Span: source.Span{Start: 10, End: 12}, Line: 3, Col: 7}
	if !a.Equal(b) {
		t.Fatalf("expected %v == %v", a, b)
	}
	c := b
	c.Int = 32
	if a.Equal(c) {
		t.Fatalf("expected payload mismatch to be unequal")
	}
	d := a
	d.Kind = FloatLit
	if a.Equal(d) {
		t.Fatalf("expected kind mismatch to be unequal")
	}
}

func TestKindClassification(t *testing.T) {
	tests := []struct {
		kind    Kind
		keyword bool
		op      bool
	}{
		{KwAnn, true, false},
		{KwXor, true, false},
		{LParen, false, true},
		{TildeNotEq, false, true},
		{Ident, false, false},
		{Absent, false, false},
		{EOF, false, false},
	}
	for _, tt := range tests {
		if got := tt.kind.IsKeyword(); got != tt.keyword {
			t.Errorf("%v.IsKeyword() = %v", tt.kind, got)
		}
		if got := tt.kind.IsOperator(); got != tt.op {
			t.Errorf("%v.IsOperator() = %v", tt.kind, got)
		}
	}
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		Ident:  "Ident",
		EOF:    "EOF",
		KwLet:  "'let'",
		Equiv:  "'<->'",
		Or:     `'\/'`,
		Absent: "Absent",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
