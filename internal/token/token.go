package token

import (
	"zinc/internal/source"
)

// Token represents a single source token with its location, payload and trivia.
type Token struct {
	Kind Kind
	Span source.Span
	Line uint32
	Col  uint32
	Text string

	Int   int64   // IntLit, TupleAccess
	Float float64 // FloatLit
	Str   string  // identifiers, strings, RecordAccess, Invalid (diagnostic)

	Leading []Trivia
}

// Offset returns the byte offset of the token start.
func (t Token) Offset() uint32 { return t.Span.Start }

// Len returns the length of the lexeme in bytes.
func (t Token) Len() uint32 { return t.Span.Len() }

// Equal reports structural equality: kind and payloads, position excluded.
func (t Token) Equal(o Token) bool {
	return t.Kind == o.Kind && t.Int == o.Int && t.Float == o.Float && t.Str == o.Str
}

// IsLiteral reports whether the token is a numeric, boolean, string or absent literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit, StringInterpStart, KwTrue, KwFalse, Absent:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a reserved word.
func (t Token) IsKeyword() bool {
	return t.Kind > kwBegin && t.Kind < kwEnd
}

// IsPunctOrOp reports whether the token is punctuation or a symbolic operator.
func (t Token) IsPunctOrOp() bool {
	return t.Kind > opBegin && t.Kind < opEnd
}

// IsIdent reports whether the token names something (plain or quoted identifier).
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsError reports whether the token is a lexical error.
func (t Token) IsError() bool { return t.Kind == Invalid }

// String renders the token for traces and diagnostics.
func (t Token) String() string {
	if t.Kind == EOF {
		return "<EOF>"
	}
	if t.Text != "" {
		return t.Text
	}
	return t.Kind.String()
}
