package parser

import (
	"zinc/internal/ast"
	"zinc/internal/diag"
	"zinc/internal/token"
)

// parseGenerators: gen {, gen}, где gen = name {, name} in expr [where expr].
func (p *Parser) parseGenerators() ([]ast.Generator, bool) {
	var gens []ast.Generator
	for {
		var g ast.Generator
		for {
			_, name, ok := p.expectIdent("generator variable")
			if !ok {
				return nil, false
			}
			g.Names = append(g.Names, name)
			if !p.accept(token.Comma) {
				break
			}
		}
		if _, ok := p.expect(token.KwIn, diag.SynBadGenerator, "'in' after generator variables"); !ok {
			return nil, false
		}
		src, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		g.Source = src
		if p.accept(token.KwWhere) {
			if g.Where, ok = p.parseExpr(); !ok {
				return nil, false
			}
		}
		gens = append(gens, g)
		if !p.accept(token.Comma) {
			return gens, true
		}
	}
}

// provisionalArg: аргумент вызова до решения "вызов или генераторный вызов".
type provisionalArg struct {
	expr ast.Expr
	// binding: expr имеет вид `ident in source`
	binding bool
	// where подтверждает генератор
	where ast.Expr
}

// parseCallOrGeneratorCall разбирает name(...) в две фазы.
//
// Фаза 1 собирает аргументы как обычные выражения, помечая формы
// `x in S` (и `x in S where c`) как кандидатов в генераторы.
// Фаза 2 смотрит на один токен после ')': если там '(', это f(gens)(body),
// и кандидаты перегруппировываются в генераторы (голые идентификаторы перед
// кандидатом становятся дополнительными именами); иначе обычный вызов.
func (p *Parser) parseCallOrGeneratorCall() (ast.Expr, bool) {
	nameTok := p.advance()
	p.advance() // '('

	// фаза 1
	var args []provisionalArg
	for !p.at(token.RParen) {
		e, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		arg := provisionalArg{expr: e}
		if b, isBin := e.(*ast.Binary); isBin && b.Op == ast.OpIn && len(b.Anns) == 0 {
			if id, isID := b.X.(*ast.Ident); isID && id.Kind == ast.IdentPlain && len(id.Anns) == 0 {
				arg.binding = true
			}
		}
		if p.at(token.KwWhere) {
			if !arg.binding {
				return nil, p.fail(diag.SynBadGenerator, "'where' must follow a generator 'x in S'")
			}
			p.advance()
			if arg.where, ok = p.parseExpr(); !ok {
				return nil, false
			}
		}
		args = append(args, arg)
		if !p.accept(token.Comma) {
			break
		}
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "')' closing call arguments"); !ok {
		return nil, false
	}

	// фаза 2
	if !p.at(token.LParen) {
		call := &ast.Call{Name: nameTok.Str}
		call.Start = nameTok
		for _, a := range args {
			if a.where != nil {
				return nil, p.failAt(a.expr.Base().Start, diag.SynBadGenerator,
					"generator with 'where' requires a body: "+nameTok.Str+"(...)(body)")
			}
			call.Args = append(call.Args, a.expr)
		}
		return call, true
	}
	gens, ok := p.commitGenerators(nameTok, args)
	if !ok {
		return nil, false
	}
	p.advance() // '('
	body, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "')' closing generator call body"); !ok {
		return nil, false
	}
	gc := &ast.GeneratorCall{Name: nameTok.Str, Gens: gens, Body: body}
	gc.Start = nameTok
	return gc, true
}

func (p *Parser) commitGenerators(nameTok token.Token, args []provisionalArg) ([]ast.Generator, bool) {
	if len(args) == 0 {
		return nil, p.failAt(nameTok, diag.SynBadGenerator, "generator call "+nameTok.Str+" has no generators")
	}
	var gens []ast.Generator
	var pending []string
	for _, a := range args {
		if a.binding {
			b := a.expr.(*ast.Binary)
			names := append(pending, b.X.(*ast.Ident).Name)
			gens = append(gens, ast.Generator{Names: names, Source: b.Y, Where: a.where})
			pending = nil
			continue
		}
		if id, ok := a.expr.(*ast.Ident); ok && id.Kind == ast.IdentPlain && len(id.Anns) == 0 {
			pending = append(pending, id.Name)
			continue
		}
		return nil, p.failAt(a.expr.Base().Start, diag.SynBadGenerator, "expected generator 'x in S' in "+nameTok.Str+"(...)")
	}
	if len(pending) > 0 {
		return nil, p.failAt(nameTok, diag.SynBadGenerator, "generator variables without 'in' in "+nameTok.Str+"(...)")
	}
	return gens, true
}
