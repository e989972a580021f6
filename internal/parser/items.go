package parser

import (
	"zinc/internal/ast"
	"zinc/internal/diag"
	"zinc/internal/token"
)

// parseItem разбирает один элемент верхнего уровня без завершающей ';'.
func (p *Parser) parseItem() (ast.Item, bool) {
	if p.failed() {
		return nil, false
	}
	tok := p.peek()
	switch tok.Kind {
	case token.KwInclude:
		p.advance()
		path, ok := p.expect(token.StringLit, diag.SynUnexpectedToken, "string after 'include'")
		if !ok {
			return nil, false
		}
		it := &ast.Include{Path: path.Str}
		it.Start = tok
		return it, true
	case token.KwConstraint:
		return p.parseConstraint()
	case token.KwSolve:
		return p.parseSolve()
	case token.KwOutput:
		p.advance()
		anns, ok := p.parseAnnotations()
		if !ok {
			return nil, false
		}
		x, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		it := &ast.Output{X: x}
		it.Start = tok
		it.Annotate(anns...)
		return it, true
	case token.KwEnum:
		return p.parseEnum()
	case token.KwType:
		return p.parseTypeAlias()
	case token.KwFunction:
		p.advance()
		return p.parseFunctionDecl(tok, ast.DeclFunction, true)
	case token.KwPredicate, token.KwTest:
		p.advance()
		kind := ast.DeclPredicate
		if tok.Kind == token.KwTest {
			kind = ast.DeclTest
		}
		return p.parseFunctionDecl(tok, kind, false)
	case token.KwAnnotation:
		return p.parseAnnotationDecl()
	case token.Ident:
		if p.atN(1, token.Assign) {
			return p.parseAssign()
		}
	}
	return p.parseVarDecl()
}

func (p *Parser) parseAssign() (ast.Item, bool) {
	tok := p.advance()
	p.advance() // '='
	v, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	it := &ast.Assign{Name: tok.Str, Value: v}
	it.Start = tok
	return it, true
}

// constraint [:: anns] e
func (p *Parser) parseConstraint() (ast.Item, bool) {
	tok := p.advance()
	anns, ok := p.parseAnnotations()
	if !ok {
		return nil, false
	}
	x, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	it := &ast.Constraint{X: x}
	it.Start = tok
	it.Annotate(anns...)
	return it, true
}

// solve [:: anns] satisfy | minimize e | maximize e
func (p *Parser) parseSolve() (ast.Item, bool) {
	tok := p.advance()
	anns, ok := p.parseAnnotations()
	if !ok {
		return nil, false
	}
	it := &ast.Solve{}
	it.Start = tok
	it.Annotate(anns...)
	switch p.peek().Kind {
	case token.KwSatisfy:
		p.advance()
		it.Goal = ast.Satisfy
		return it, true
	case token.KwMinimize:
		it.Goal = ast.Minimize
	case token.KwMaximize:
		it.Goal = ast.Maximize
	default:
		return nil, p.fail(diag.SynBadSolveGoal, "expected 'satisfy', 'minimize' or 'maximize', found "+describe(p.peek()))
	}
	p.advance()
	if it.Objective, ok = p.parseExpr(); !ok {
		return nil, false
	}
	return it, true
}

// enum E [:: anns] [= e]
func (p *Parser) parseEnum() (ast.Item, bool) {
	tok := p.advance()
	_, name, ok := p.expectIdent("enum name")
	if !ok {
		return nil, false
	}
	d := &ast.Declare{Kind: ast.DeclEnum, Name: name}
	d.Start = tok
	if !p.parseDeclTail(d) {
		return nil, false
	}
	return d, true
}

// type T [:: anns] = <type>
func (p *Parser) parseTypeAlias() (ast.Item, bool) {
	tok := p.advance()
	_, name, ok := p.expectIdent("type alias name")
	if !ok {
		return nil, false
	}
	anns, ok := p.parseAnnotations()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.Assign, diag.SynUnexpectedToken, "'=' after type alias name"); !ok {
		return nil, false
	}
	t, ok := p.parseType()
	if !ok {
		return nil, false
	}
	d := &ast.Declare{Kind: ast.DeclTypeAlias, Name: name, Type: t}
	d.Start = tok
	d.Annotate(anns...)
	return d, true
}

// function <type>: f(params) ..., predicate p(params) ..., test t(params) ...
// typed=false: без типа результата.
func (p *Parser) parseFunctionDecl(start token.Token, kind ast.DeclKind, typed bool) (ast.Item, bool) {
	d := &ast.Declare{Kind: kind}
	d.Start = start
	if typed {
		t, ok := p.parseType()
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.Colon, diag.SynUnexpectedToken, "':' after function result type"); !ok {
			return nil, false
		}
		d.Type = t
	}
	_, name, ok := p.expectIdent(kind.String() + " name")
	if !ok {
		return nil, false
	}
	d.Name = name
	if !p.at(token.LParen) {
		return nil, p.fail(diag.SynUnexpectedToken, "expected '(' after "+kind.String()+" name, found "+describe(p.peek()))
	}
	if d.Params, ok = p.parseParams(); !ok {
		return nil, false
	}
	if !p.parseDeclTail(d) {
		return nil, false
	}
	return d, true
}

// annotation a[(params)] [= e]
func (p *Parser) parseAnnotationDecl() (ast.Item, bool) {
	tok := p.advance()
	_, name, ok := p.expectIdent("annotation name")
	if !ok {
		return nil, false
	}
	d := &ast.Declare{Kind: ast.DeclAnnotation, Name: name}
	d.Start = tok
	if p.at(token.LParen) {
		if d.Params, ok = p.parseParams(); !ok {
			return nil, false
		}
	}
	if !p.parseDeclTail(d) {
		return nil, false
	}
	return d, true
}

// parseVarDecl: <type>: name [(params)] [:: anns] [= e]. Список параметров
// после имени делает объявление функцией без ключевого слова.
func (p *Parser) parseVarDecl() (ast.Item, bool) {
	start := p.peek()
	t, ok := p.parseType()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.Colon, diag.SynUnexpectedToken, "':' after type in declaration"); !ok {
		return nil, false
	}
	_, name, ok := p.expectIdent("declared name")
	if !ok {
		return nil, false
	}
	d := &ast.Declare{Kind: ast.DeclVar, Type: t, Name: name}
	d.Start = start
	if p.at(token.LParen) {
		d.Kind = ast.DeclFunction
		if d.Params, ok = p.parseParams(); !ok {
			return nil, false
		}
	}
	if !p.parseDeclTail(d) {
		return nil, false
	}
	return d, true
}

// parseDeclTail: [:: anns] [= body]
func (p *Parser) parseDeclTail(d *ast.Declare) bool {
	anns, ok := p.parseAnnotations()
	if !ok {
		return false
	}
	d.Annotate(anns...)
	if p.accept(token.Assign) {
		if d.Body, ok = p.parseExpr(); !ok {
			return false
		}
	}
	return true
}

// parseParams: ( [<type> [: name] [:: anns] {, ...}] ). Пустой список: не nil.
func (p *Parser) parseParams() ([]*ast.Declare, bool) {
	p.advance() // '('
	params := []*ast.Declare{}
	for !p.at(token.RParen) {
		start := p.peek()
		t, ok := p.parseType()
		if !ok {
			return nil, false
		}
		prm := &ast.Declare{Kind: ast.DeclVar, Type: t}
		prm.Start = start
		if p.accept(token.Colon) {
			if _, prm.Name, ok = p.expectIdent("parameter name"); !ok {
				return nil, false
			}
		}
		anns, ok := p.parseAnnotations()
		if !ok {
			return nil, false
		}
		prm.Annotate(anns...)
		params = append(params, prm)
		if !p.accept(token.Comma) {
			break
		}
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "')' closing parameter list"); !ok {
		return nil, false
	}
	return params, true
}
