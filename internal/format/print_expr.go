package format

import (
	"strconv"

	"zinc/internal/ast"
	"zinc/internal/lexer"
)

// expr пишет выражение с его аннотациями. Аннотированное не-атомарное
// выражение берётся в скобки, иначе `::` прилипнет к последнему операнду.
func (p *printer) expr(e ast.Expr) {
	anns := e.Base().Anns
	if len(anns) > 0 && !ast.IsAtom(e) {
		p.w.Token("(")
		p.bare(e)
		p.w.Token(")")
	} else {
		p.bare(e)
	}
	p.anns(anns)
}

func (p *printer) bare(e ast.Expr) {
	switch e := e.(type) {
	case *ast.IntLit:
		p.w.Token(formatInt(e.Value))
	case *ast.FloatLit:
		p.w.Token(formatFloat(e.Value))
	case *ast.BoolLit:
		p.w.Token(strconv.FormatBool(e.Value))
	case *ast.StringLit:
		p.w.Token(quoteString(e.Value))
	case *ast.StringInterp:
		p.stringInterp(e)
	case *ast.Absent:
		p.w.Token("<>")
	case *ast.Wildcard:
		p.w.Token("_")
	case *ast.Ident:
		switch e.Kind {
		case ast.IdentPoly:
			p.w.Token("$" + e.Name)
		case ast.IdentEnumPoly:
			p.w.Token("$$" + e.Name)
		default:
			p.w.Token(name(e.Name))
		}
	case *ast.Unary:
		p.w.Token(e.Op.String())
		if e.Op == ast.OpNot {
			p.space()
		}
		if _, nested := e.X.(*ast.Unary); nested || ast.IsAtom(e.X) {
			p.expr(e.X)
		} else {
			p.paren(e.X)
		}
	case *ast.Binary:
		info := ast.Ops().Info(e.Op)
		p.operand(e.X, info.Prec, info.Assoc, true)
		if e.Op == ast.OpInfix {
			p.op("`" + e.Infix + "`")
		} else {
			p.op(info.Spelling)
		}
		p.operand(e.Y, info.Prec, info.Assoc, false)
	case *ast.Range:
		if e.Lo != nil {
			p.operand(e.Lo, ast.RangePrec, ast.AssocNone, true)
		}
		p.w.Token("..")
		if e.Hi != nil {
			p.operand(e.Hi, ast.RangePrec, ast.AssocNone, false)
		}
	case *ast.ArrayLit:
		p.arrayLit(e)
	case *ast.ArrayAccess:
		p.postfixOperand(e.X)
		p.w.Token("[")
		p.exprList(e.Index)
		p.w.Token("]")
	case *ast.SetLit:
		p.w.Token("{")
		p.exprList(e.Elems)
		p.w.Token("}")
	case *ast.TupleLit:
		p.w.Token("(")
		p.exprList(e.Elems)
		if len(e.Elems) == 1 {
			p.w.Token(",")
		}
		p.w.Token(")")
	case *ast.RecordLit:
		p.w.Token("(")
		for i, f := range e.Fields {
			if i > 0 {
				p.comma()
			}
			p.w.Token(name(f.Name))
			p.w.Token(":")
			p.space()
			p.expr(f.Value)
		}
		p.w.Token(")")
	case *ast.TupleAccess:
		p.postfixOperand(e.X)
		p.w.Token("." + strconv.FormatInt(e.Field, 10))
	case *ast.RecordAccess:
		p.postfixOperand(e.X)
		p.w.Token("." + e.Field)
	case *ast.Call:
		p.w.Token(name(e.Name))
		p.w.Token("(")
		p.exprList(e.Args)
		p.w.Token(")")
	case *ast.GeneratorCall:
		p.w.Token(name(e.Name))
		p.w.Token("(")
		p.generators(e.Gens)
		p.w.Token(")")
		p.w.Token("(")
		p.expr(e.Body)
		p.w.Token(")")
	case *ast.Comprehension:
		open, closing := "[", "]"
		if e.Set {
			open, closing = "{", "}"
		}
		p.w.Token(open)
		if e.Index != nil {
			p.expr(e.Index)
			p.w.Token(":")
			p.space()
		}
		p.expr(e.Body)
		p.op("|")
		p.generators(e.Gens)
		p.w.Token(closing)
	case *ast.IfThenElse:
		for i, c := range e.Cases {
			if i == 0 {
				p.w.Token("if")
			} else {
				p.space()
				p.w.Token("elseif")
			}
			p.space()
			p.expr(c.Cond)
			p.space()
			p.w.Token("then")
			p.space()
			p.expr(c.Then)
		}
		if e.Else != nil {
			p.space()
			p.w.Token("else")
			p.space()
			p.expr(e.Else)
		}
		p.space()
		p.w.Token("endif")
	case *ast.Let:
		p.let(e)
	}
}

// let: в pretty-режиме при нескольких локальных объявлениях каждое пишется
// на своей строке с отступом.
func (p *printer) let(e *ast.Let) {
	p.w.Token("let")
	p.space()
	p.w.Token("{")
	if p.pretty() && len(e.Locals) > 1 {
		p.w.IndentPush()
		for _, local := range e.Locals {
			p.w.Newline()
			p.item(local)
			p.w.Token(";")
		}
		p.w.IndentPop()
		p.w.Newline()
	} else {
		p.space()
		for i, local := range e.Locals {
			if i > 0 {
				p.w.Token(";")
				p.space()
			}
			p.item(local)
		}
		p.space()
	}
	p.w.Token("}")
	p.space()
	p.w.Token("in")
	p.space()
	p.expr(e.Body)
}

// operand пишет операнд бинарного оператора с приоритетом prec.
// Скобки нужны, если операнд связывает слабее, или связывает так же, а
// ассоциативность не в его сторону. let и открытые диапазоны тянутся вправо
// до конца выражения, поэтому их операндами всегда берём в скобки.
func (p *printer) operand(child ast.Expr, prec int, assoc ast.Assoc, left bool) {
	if needsParens(child, prec, assoc, left) {
		p.paren(child)
		return
	}
	p.expr(child)
}

func needsParens(child ast.Expr, prec int, assoc ast.Assoc, left bool) bool {
	switch c := child.(type) {
	case *ast.Let:
		return true
	case *ast.Range:
		if c.Lo == nil || c.Hi == nil {
			return true
		}
	}
	cp := ast.Precedence(child)
	switch {
	case cp > prec:
		return true
	case cp == prec:
		return !(assoc == ast.AssocLeft && left) && !(assoc == ast.AssocRight && !left)
	}
	return false
}

// isPostfixOperand: e можно написать перед `[..]`, `.N`, `.name` или после
// `::` без скобок.
func isPostfixOperand(e ast.Expr) bool {
	if !ast.IsAtom(e) || len(e.Base().Anns) > 0 {
		return false
	}
	switch e.(type) {
	case *ast.IntLit, *ast.FloatLit, *ast.StringLit:
		// 1.1 прочиталось бы как float, "s"[i] не индексируется
		return false
	}
	return true
}

func (p *printer) postfixOperand(x ast.Expr) {
	if isPostfixOperand(x) {
		p.expr(x)
		return
	}
	p.paren(x)
}

func (p *printer) exprList(es []ast.Expr) {
	for i, e := range es {
		if i > 0 {
			p.comma()
		}
		p.expr(e)
	}
}

// generators: `i, j in S where c, k in T`. Источник внутри вызова разбирается
// как правый операнд `in`, поэтому всё, что связывает не сильнее `in`, в скобках.
func (p *printer) generators(gens []ast.Generator) {
	in := ast.Ops().Info(ast.OpIn)
	for i, g := range gens {
		if i > 0 {
			p.comma()
		}
		for j, n := range g.Names {
			if j > 0 {
				p.comma()
			}
			p.w.Token(name(n))
		}
		p.op("in")
		p.operand(g.Source, in.Prec, in.Assoc, false)
		if g.Where != nil {
			p.op("where")
			p.expr(g.Where)
		}
	}
}

func (p *printer) stringInterp(s *ast.StringInterp) {
	for i, part := range s.Parts {
		switch {
		case len(s.Parts) == 1:
			p.w.Token(quoteString(part))
			return
		case i == 0:
			p.w.Token(`"` + lexer.Escape(part) + `\(`)
		case i == len(s.Parts)-1:
			p.w.Token(`)` + lexer.Escape(part) + `"`)
			return
		default:
			p.w.Token(`)` + lexer.Escape(part) + `\(`)
		}
		if i < len(s.Exprs) {
			p.expr(s.Exprs[i])
		}
	}
}
