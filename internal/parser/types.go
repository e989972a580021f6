package parser

import (
	"zinc/internal/ast"
	"zinc/internal/diag"
	"zinc/internal/token"
)

// parseType: [var|par] [opt] тело, затем `++` для составных record/tuple.
func (p *Parser) parseType() (ast.Type, bool) {
	if p.failed() {
		return nil, false
	}
	start := p.peek()
	var ti ast.TypeInst
	switch {
	case p.accept(token.KwVar):
		ti.Var = true
	case p.accept(token.KwPar):
	}
	if p.accept(token.KwOpt) {
		ti.Opt = true
	}
	t, ok := p.parseTypeBody()
	if !ok {
		return nil, false
	}
	if isRecordOrTuple(t) && p.at(token.PlusPlus) {
		comp := &ast.CompositeType{Parts: []ast.Type{t}}
		for p.accept(token.PlusPlus) {
			part, ok := p.parseTypeBody()
			if !ok {
				return nil, false
			}
			comp.Parts = append(comp.Parts, part)
		}
		t = comp
	}
	*t.Inst() = ti
	t.Base().Start = start
	return t, true
}

func isRecordOrTuple(t ast.Type) bool {
	switch t.(type) {
	case *ast.TupleType, *ast.RecordType:
		return true
	}
	return false
}

func (p *Parser) parseTypeBody() (ast.Type, bool) {
	tok := p.peek()
	base := func(k ast.BaseKind) (ast.Type, bool) {
		p.advance()
		t := &ast.BaseType{Kind: k}
		t.Start = tok
		return t, true
	}
	switch tok.Kind {
	case token.KwInt:
		return base(ast.BaseInt)
	case token.KwBool:
		return base(ast.BaseBool)
	case token.KwFloat:
		return base(ast.BaseFloat)
	case token.KwString:
		return base(ast.BaseString)
	case token.KwAnn:
		return base(ast.BaseAnn)
	case token.KwAny:
		return base(ast.BaseAny)
	case token.KwArray:
		return p.parseArrayType()
	case token.KwSet, token.KwList:
		p.advance()
		if _, ok := p.expect(token.KwOf, diag.SynExpectType, "'of' after '"+tok.Text+"'"); !ok {
			return nil, false
		}
		elem, ok := p.parseType()
		if !ok {
			return nil, false
		}
		if tok.Kind == token.KwSet {
			t := &ast.SetType{Elem: elem}
			t.Start = tok
			return t, true
		}
		t := &ast.ListType{Elem: elem}
		t.Start = tok
		return t, true
	case token.KwTuple:
		return p.parseTupleType()
	case token.KwRecord:
		return p.parseRecordType()
	}
	if !canStartExpr(tok.Kind) {
		return nil, p.fail(diag.SynExpectType, "expected type, found "+describe(tok))
	}
	x, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	t := &ast.ExprType{X: x}
	t.Start = tok
	return t, true
}

// array[dims] of T
func (p *Parser) parseArrayType() (ast.Type, bool) {
	start := p.advance()
	if _, ok := p.expect(token.LBracket, diag.SynExpectType, "'[' after 'array'"); !ok {
		return nil, false
	}
	t := &ast.ArrayType{}
	t.Start = start
	for {
		d, ok := p.parseType()
		if !ok {
			return nil, false
		}
		t.Dims = append(t.Dims, d)
		if !p.accept(token.Comma) {
			break
		}
	}
	if _, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "']' closing array dimensions"); !ok {
		return nil, false
	}
	if _, ok := p.expect(token.KwOf, diag.SynExpectType, "'of' after array dimensions"); !ok {
		return nil, false
	}
	elem, ok := p.parseType()
	if !ok {
		return nil, false
	}
	t.Elem = elem
	return t, true
}

// tuple(T1, T2, ...)
func (p *Parser) parseTupleType() (ast.Type, bool) {
	start := p.advance()
	if _, ok := p.expect(token.LParen, diag.SynExpectType, "'(' after 'tuple'"); !ok {
		return nil, false
	}
	t := &ast.TupleType{}
	t.Start = start
	for !p.at(token.RParen) {
		f, ok := p.parseType()
		if !ok {
			return nil, false
		}
		t.Fields = append(t.Fields, f)
		if !p.accept(token.Comma) {
			break
		}
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "')' closing tuple type"); !ok {
		return nil, false
	}
	return t, true
}

// record(T1: a, T2: b, ...)
func (p *Parser) parseRecordType() (ast.Type, bool) {
	start := p.advance()
	if _, ok := p.expect(token.LParen, diag.SynExpectType, "'(' after 'record'"); !ok {
		return nil, false
	}
	t := &ast.RecordType{}
	t.Start = start
	for !p.at(token.RParen) {
		fieldStart := p.peek()
		ft, ok := p.parseType()
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.Colon, diag.SynUnexpectedToken, "':' after record field type"); !ok {
			return nil, false
		}
		_, name, ok := p.expectIdent("record field name")
		if !ok {
			return nil, false
		}
		f := &ast.Declare{Kind: ast.DeclVar, Type: ft, Name: name}
		f.Start = fieldStart
		t.Fields = append(t.Fields, f)
		if !p.accept(token.Comma) {
			break
		}
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "')' closing record type"); !ok {
		return nil, false
	}
	return t, true
}
