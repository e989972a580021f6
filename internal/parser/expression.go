package parser

import (
	"zinc/internal/ast"
	"zinc/internal/diag"
	"zinc/internal/token"
)

// parseExpr - главная точка входа для парсинга выражений.
func (p *Parser) parseExpr() (ast.Expr, bool) {
	return p.parseBinary(ast.MaxPrec)
}

// parseBinary: precedence climbing. Большее число связывает слабее, поэтому
// цикл съедает операторы с prec <= maxPrec; правый операнд разбирается с
// prec-1 (левая и неассоциативные) или prec (правая ассоциативность).
// Неассоциативные операторы одного уровня подряд дают синтаксическую ошибку.
func (p *Parser) parseBinary(maxPrec int) (ast.Expr, bool) {
	if p.failed() {
		return nil, false
	}
	lhs, ok := p.parseUnary()
	if !ok {
		return nil, false
	}
	lastNonAssoc := 0
	for {
		opTok := p.peek()
		var info ast.OpInfo
		isRange := opTok.Kind == token.DotDot
		if isRange {
			info = ast.OpInfo{Prec: ast.RangePrec, Assoc: ast.AssocNone, Spelling: ".."}
		} else {
			var isOp bool
			info, isOp = ast.Ops().ByToken(opTok.Kind)
			if !isOp {
				break
			}
		}
		if info.Prec > maxPrec {
			break
		}
		if info.Prec == lastNonAssoc {
			return nil, p.fail(diag.SynNonAssocChain,
				"operator '"+opTok.Text+"' cannot be chained with another operator of the same precedence; add parentheses")
		}
		p.advance()

		if isRange {
			r := &ast.Range{Lo: lhs}
			r.Start = lhs.Base().Start
			if canStartExpr(p.peek().Kind) {
				if r.Hi, ok = p.parseBinary(ast.RangePrec - 1); !ok {
					return nil, false
				}
			}
			lhs = r
			lastNonAssoc = ast.RangePrec
			continue
		}

		rhsMax := info.Prec - 1
		if info.Assoc == ast.AssocRight {
			rhsMax = info.Prec
		}
		rhs, ok := p.parseBinary(rhsMax)
		if !ok {
			return nil, false
		}
		b := &ast.Binary{Op: info.Op, X: lhs, Y: rhs}
		b.Start = lhs.Base().Start
		if info.Op == ast.OpInfix {
			b.Infix = opTok.Str
		}
		lhs = b
		lastNonAssoc = 0
		if info.Assoc == ast.AssocNone {
			lastNonAssoc = info.Prec
		}
	}
	return lhs, true
}

// parseUnary: not / - / + применяются к постфиксному атому и связывают
// сильнее любого бинарного оператора. Также здесь открытый слева диапазон `..b`.
func (p *Parser) parseUnary() (ast.Expr, bool) {
	if p.failed() {
		return nil, false
	}
	tok := p.peek()
	var op ast.UnaryOp
	switch tok.Kind {
	case token.KwNot:
		op = ast.OpNot
	case token.Minus:
		op = ast.OpNeg
	case token.Plus:
		op = ast.OpPos
	case token.DotDot:
		p.advance()
		r := &ast.Range{}
		r.Start = tok
		if canStartExpr(p.peek().Kind) {
			var ok bool
			if r.Hi, ok = p.parseBinary(ast.RangePrec - 1); !ok {
				return nil, false
			}
		}
		return r, true
	default:
		return p.parsePostfix()
	}
	p.advance()
	x, ok := p.parseUnary()
	if !ok {
		return nil, false
	}
	u := &ast.Unary{Op: op, X: x}
	u.Start = tok
	return u, true
}

// parsePostfix: атом, затем [i,j], .1, .name и аннотации `:: ann`.
func (p *Parser) parsePostfix() (ast.Expr, bool) {
	x, ok := p.parsePostfixNoAnn()
	if !ok {
		return nil, false
	}
	anns, ok := p.parseAnnotations()
	if !ok {
		return nil, false
	}
	x.Base().Annotate(anns...)
	return x, true
}

func (p *Parser) parsePostfixNoAnn() (ast.Expr, bool) {
	x, ok := p.parseAtom()
	if !ok {
		return nil, false
	}
	for {
		tok := p.peek()
		switch tok.Kind {
		case token.LBracket:
			if _, isStr := x.(*ast.StringLit); isStr {
				return x, true
			}
			p.advance()
			idx, ok := p.parseExprList(token.RBracket)
			if !ok {
				return nil, false
			}
			if _, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "']'"); !ok {
				return nil, false
			}
			acc := &ast.ArrayAccess{X: x, Index: idx}
			acc.Start = x.Base().Start
			x = acc
		case token.TupleAccess:
			p.advance()
			acc := &ast.TupleAccess{X: x, Field: tok.Int}
			acc.Start = x.Base().Start
			x = acc
		case token.RecordAccess:
			p.advance()
			acc := &ast.RecordAccess{X: x, Field: tok.Str}
			acc.Start = x.Base().Start
			x = acc
		default:
			return x, true
		}
	}
}

// parseAnnotations разбирает ноль или более `:: ann`.
func (p *Parser) parseAnnotations() ([]ast.Expr, bool) {
	var anns []ast.Expr
	for p.at(token.ColonColon) {
		p.advance()
		// `:: output` называет аннотацию ключевым словом
		if tok := p.peek(); tok.Kind == token.KwOutput {
			p.advance()
			ann := &ast.Ident{Name: "output"}
			ann.Start = tok
			anns = append(anns, ann)
			continue
		}
		ann, ok := p.parsePostfixNoAnn()
		if !ok {
			return nil, false
		}
		anns = append(anns, ann)
	}
	return anns, true
}

// parseExprList разбирает выражения через запятую до закрывающего токена
// (не съедая его). Висячая запятая допускается.
func (p *Parser) parseExprList(closing token.Kind) ([]ast.Expr, bool) {
	var out []ast.Expr
	for !p.at(closing) {
		e, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		out = append(out, e)
		if !p.accept(token.Comma) {
			break
		}
	}
	return out, true
}
