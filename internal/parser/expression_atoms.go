package parser

import (
	"zinc/internal/ast"
	"zinc/internal/diag"
	"zinc/internal/token"
)

// parseAtom разбирает первичное выражение без постфиксов.
func (p *Parser) parseAtom() (ast.Expr, bool) {
	if p.failed() {
		return nil, false
	}
	tok := p.peek()
	switch tok.Kind {
	case token.IntLit:
		p.advance()
		e := &ast.IntLit{Value: tok.Int}
		e.Start = tok
		return e, true
	case token.FloatLit:
		p.advance()
		e := &ast.FloatLit{Value: tok.Float}
		e.Start = tok
		return e, true
	case token.KwTrue, token.KwFalse:
		p.advance()
		e := &ast.BoolLit{Value: tok.Kind == token.KwTrue}
		e.Start = tok
		return e, true
	case token.StringLit:
		p.advance()
		e := &ast.StringLit{Value: tok.Str}
		e.Start = tok
		return e, true
	case token.StringInterpStart:
		return p.parseStringInterp()
	case token.Absent:
		p.advance()
		e := &ast.Absent{}
		e.Start = tok
		return e, true
	case token.Underscore:
		p.advance()
		e := &ast.Wildcard{}
		e.Start = tok
		return e, true
	case token.PolyIdent, token.EnumPolyIdent:
		p.advance()
		e := &ast.Ident{Name: tok.Str, Kind: ast.IdentPoly}
		if tok.Kind == token.EnumPolyIdent {
			e.Kind = ast.IdentEnumPoly
		}
		e.Start = tok
		return e, true
	case token.Ident:
		if p.atN(1, token.LParen) {
			return p.parseCallOrGeneratorCall()
		}
		p.advance()
		e := &ast.Ident{Name: tok.Str}
		e.Start = tok
		return e, true
	case token.LParen:
		return p.parseParenTupleOrRecord()
	case token.LBracket:
		return p.parseArrayLiteral()
	case token.LBrace:
		return p.parseSetLiteral()
	case token.KwIf:
		return p.parseIf()
	case token.KwLet:
		return p.parseLet()
	}
	return nil, p.fail(diag.SynExpectExpression, "expected expression, found "+describe(tok))
}

// "a\(x)b\(y)c" → Parts [a b c], Exprs [x y]
func (p *Parser) parseStringInterp() (ast.Expr, bool) {
	start := p.advance()
	s := &ast.StringInterp{Parts: []string{start.Str}}
	s.Start = start
	for {
		e, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		s.Exprs = append(s.Exprs, e)
		tok := p.peek()
		switch tok.Kind {
		case token.StringInterpMid:
			p.advance()
			s.Parts = append(s.Parts, tok.Str)
		case token.StringInterpEnd:
			p.advance()
			s.Parts = append(s.Parts, tok.Str)
			return s, true
		default:
			return nil, p.fail(diag.SynUnclosedParen, "expected ')' closing string interpolation, found "+describe(tok))
		}
	}
}

// parseParenTupleOrRecord:
//
//	(e)           → e без обёртки
//	(e,) (e, f)   → кортеж
//	(a: e, b: f)  → запись; первый ':' после идентификатора фиксирует запись
func (p *Parser) parseParenTupleOrRecord() (ast.Expr, bool) {
	open := p.advance()
	if p.at(token.RParen) {
		return nil, p.fail(diag.SynExpectExpression, "empty parentheses are not an expression")
	}
	first, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	switch {
	case p.at(token.Colon):
		name, isName := first.(*ast.Ident)
		if !isName || name.Kind != ast.IdentPlain || len(name.Anns) > 0 {
			return nil, p.fail(diag.SynMixedTupleRecord, "record field name must be an identifier")
		}
		p.advance()
		return p.parseRecordRest(open, name.Name)
	case p.at(token.Comma):
		p.advance()
		tup := &ast.TupleLit{Elems: []ast.Expr{first}}
		tup.Start = open
		for !p.at(token.RParen) {
			e, ok := p.parseExpr()
			if !ok {
				return nil, false
			}
			if p.at(token.Colon) {
				return nil, p.fail(diag.SynMixedTupleRecord, "cannot mix tuple elements and record fields")
			}
			tup.Elems = append(tup.Elems, e)
			if !p.accept(token.Comma) {
				break
			}
		}
		if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "')' closing tuple"); !ok {
			return nil, false
		}
		return tup, true
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "')'"); !ok {
		return nil, false
	}
	return first, true
}

func (p *Parser) parseRecordRest(open token.Token, firstName string) (ast.Expr, bool) {
	rec := &ast.RecordLit{}
	rec.Start = open
	name := firstName
	for {
		v, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		rec.Fields = append(rec.Fields, ast.RecordField{Name: name, Value: v})
		if !p.accept(token.Comma) || p.at(token.RParen) {
			break
		}
		_, n, ok := p.expectIdent("record field name")
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.Colon, diag.SynMixedTupleRecord, "':' after record field name"); !ok {
			return nil, false
		}
		name = n
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "')' closing record"); !ok {
		return nil, false
	}
	return rec, true
}

// { } | {e, ...} | {e | generators}
func (p *Parser) parseSetLiteral() (ast.Expr, bool) {
	open := p.advance()
	if p.accept(token.RBrace) {
		s := &ast.SetLit{}
		s.Start = open
		return s, true
	}
	first, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	if p.accept(token.Pipe) {
		gens, ok := p.parseGenerators()
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "'}' closing set comprehension"); !ok {
			return nil, false
		}
		c := &ast.Comprehension{Set: true, Body: first, Gens: gens}
		c.Start = open
		return c, true
	}
	s := &ast.SetLit{Elems: []ast.Expr{first}}
	s.Start = open
	if p.accept(token.Comma) {
		rest, ok := p.parseExprList(token.RBrace)
		if !ok {
			return nil, false
		}
		s.Elems = append(s.Elems, rest...)
	}
	if _, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "'}'"); !ok {
		return nil, false
	}
	return s, true
}

// if c then e {elseif c then e} [else e] endif
func (p *Parser) parseIf() (ast.Expr, bool) {
	start := p.advance()
	ite := &ast.IfThenElse{}
	ite.Start = start
	for {
		cond, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.KwThen, diag.SynUnexpectedToken, "'then'"); !ok {
			return nil, false
		}
		then, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		ite.Cases = append(ite.Cases, ast.IfCase{Cond: cond, Then: then})
		if !p.accept(token.KwElseif) {
			break
		}
	}
	if p.accept(token.KwElse) {
		e, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		ite.Else = e
	}
	if _, ok := p.expect(token.KwEndif, diag.SynExpectEndif, "'endif'"); !ok {
		return nil, false
	}
	return ite, true
}

// let { locals } in body; locals: объявления и constraint, разделённые ';' или ','.
func (p *Parser) parseLet() (ast.Expr, bool) {
	start := p.advance()
	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "'{' after 'let'"); !ok {
		return nil, false
	}
	let := &ast.Let{}
	let.Start = start
	for !p.at(token.RBrace) {
		var local ast.Item
		var ok bool
		if p.at(token.KwConstraint) {
			local, ok = p.parseConstraint()
		} else {
			local, ok = p.parseVarDecl()
		}
		if !ok {
			return nil, false
		}
		let.Locals = append(let.Locals, local)
		if !p.accept(token.Semicolon) && !p.accept(token.Comma) {
			break
		}
	}
	if _, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "'}' closing let"); !ok {
		return nil, false
	}
	if _, ok := p.expect(token.KwIn, diag.SynUnexpectedToken, "'in' after let locals"); !ok {
		return nil, false
	}
	body, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	let.Body = body
	return let, true
}
