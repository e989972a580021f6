package parser

import (
	"fmt"
	"strings"

	"zinc/internal/diag"
	"zinc/internal/lexer"
	"zinc/internal/source"
	"zinc/internal/token"
)

// Error is the first lexical or syntax error of a parse.
type Error struct {
	Code    diag.Code
	Message string
	Line    uint32
	Col     uint32
	Span    source.Span
	// Trace is the text of every token consumed before the failure, space separated.
	Trace string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Col, e.Message)
}

// fail records the first error; it always returns false so callers can write
// `return nil, p.fail(...)`. When the offending token is a lexer error, the
// lexer's code and message win.
func (p *Parser) fail(code diag.Code, msg string) bool {
	return p.failAt(p.peek(), code, msg)
}

// failAt is fail positioned at tok instead of the next token.
func (p *Parser) failAt(tok token.Token, code diag.Code, msg string, fixes ...diag.Fix) bool {
	if p.err != nil {
		return false
	}
	if tok.Kind == token.Invalid {
		if c, ok := p.lexCodes[tok.Span.Start]; ok {
			code = c
		}
		msg = tok.Str
		fixes = nil
	}
	p.err = &Error{
		Code:    code,
		Message: msg,
		Line:    tok.Line,
		Col:     tok.Col,
		Span:    tok.Span,
		Trace:   p.trace(),
	}
	if p.opts.Reporter != nil {
		b := diag.ReportError(p.opts.Reporter, code, tok.Span, msg)
		for _, f := range fixes {
			b.WithFix(f.Title, f.Edits...)
		}
		b.Emit()
	}
	return false
}

// failMissing reports a missing token and suggests inserting text right after
// the last consumed token.
func (p *Parser) failMissing(code diag.Code, msg, text string) bool {
	at := source.Span{File: p.last.Span.File, Start: p.last.Span.End}
	return p.failAt(p.peek(), code, msg, diag.InsertFix(at, text))
}

// trace re-lexes the file up to the last consumed token. Rebuilding it on
// failure keeps successful parses free of bookkeeping.
func (p *Parser) trace() string {
	if p.last.Kind == token.Invalid && p.last.Span.End == 0 {
		return ""
	}
	end := p.last.Span.End
	lx := lexer.New(p.file, lexer.Options{})
	var b strings.Builder
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF || tok.Kind == token.Invalid || tok.Span.End > end {
			break
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.Text)
	}
	return b.String()
}

// describe renders a token for "found ..." messages.
func describe(tok token.Token) string {
	switch tok.Kind {
	case token.EOF:
		return "end of input"
	case token.Invalid:
		return tok.Str
	case token.Ident:
		return "identifier " + tok.Text
	case token.IntLit, token.FloatLit:
		return "number " + tok.Text
	case token.StringLit, token.StringInterpStart:
		return "string " + tok.Text
	}
	return "'" + tok.Text + "'"
}
