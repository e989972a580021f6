package parser

import (
	"slices"

	"zinc/internal/diag"
	"zinc/internal/token"
)

func (p *Parser) peek() token.Token { return p.ring.peek(0) }

func (p *Parser) peekN(i int) token.Token { return p.ring.peek(i) }

func (p *Parser) at(k token.Kind) bool { return p.ring.peek(0).Kind == k }

func (p *Parser) atN(i int, k token.Kind) bool { return p.ring.peek(i).Kind == k }

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.ring.peek(0).Kind)
}

// failed reports whether an error has already been recorded; every parse
// routine checks it first and gives up immediately.
func (p *Parser) failed() bool { return p.err != nil }

// advance: съедает следующий токен.
func (p *Parser) advance() token.Token {
	tok := p.ring.next()
	if tok.Kind != token.EOF && tok.Kind != token.Invalid {
		p.last = tok
	}
	return tok
}

// accept съедает токен k, если он следующий.
func (p *Parser) accept(k token.Kind) bool {
	if p.at(k) {
		p.advance()
		return true
	}
	return false
}

// expect: ожидаем конкретный токен; what описывает его для сообщения.
func (p *Parser) expect(k token.Kind, code diag.Code, what string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	return token.Token{}, p.fail(code, "expected "+what+", found "+describe(p.peek()))
}

// expectIdent съедает идентификатор и возвращает его имя.
func (p *Parser) expectIdent(what string) (token.Token, string, bool) {
	tok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, what)
	return tok, tok.Str, ok
}

// canStartExpr reports whether k may begin an expression.
func canStartExpr(k token.Kind) bool {
	switch k {
	case token.IntLit, token.FloatLit, token.StringLit, token.StringInterpStart,
		token.KwTrue, token.KwFalse, token.Absent, token.Underscore,
		token.Ident, token.PolyIdent, token.EnumPolyIdent,
		token.LParen, token.LBracket, token.LBrace,
		token.KwIf, token.KwLet, token.KwNot, token.Minus, token.Plus, token.DotDot:
		return true
	}
	return false
}
