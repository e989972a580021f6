package format

import "zinc/internal/ast"

func (p *printer) arrayLit(a *ast.ArrayLit) {
	switch a.Dims {
	case 2:
		p.array2D(a)
	case 3:
		p.array3D(a)
	default:
		p.array1D(a)
	}
}

func (p *printer) array1D(a *ast.ArrayLit) {
	p.w.Token("[")
	for i, e := range a.Elems {
		if i > 0 {
			p.comma()
		}
		if i < len(a.Indices) && a.Indices[i] != nil {
			p.expr(a.Indices[i])
			p.w.Token(":")
			p.space()
		}
		p.expr(e)
	}
	p.w.Token("]")
}

// array2D: `[| A: B: | X: 1, 2 | Y: 3, 4 |]`. В pretty-режиме каждая строка
// начинается с новой строки, '|' выровнены под первым.
func (p *printer) array2D(a *ast.ArrayLit) {
	if a.I == 0 && len(a.ColIndex) == 0 {
		p.w.Token("[||]")
		return
	}
	p.w.Token("[|")
	pipeCol := p.w.Column() - 1
	rows := 0
	if len(a.ColIndex) > 0 {
		for _, c := range a.ColIndex {
			p.space()
			p.expr(c)
			p.w.Token(":")
		}
		rows++
	}
	for i := range a.I {
		if rows > 0 {
			p.rowBreak(pipeCol)
			p.w.Token("|")
		}
		p.space()
		if i < len(a.RowIndex) {
			p.expr(a.RowIndex[i])
			p.w.Token(":")
			p.space()
		}
		p.exprList(a.Elems[i*a.J : (i+1)*a.J])
		rows++
	}
	p.rowBreak(pipeCol)
	p.w.Token("|]")
}

// array3D: `[| |1, 2|3, 4|, |5, 6|7, 8| |]`: группы по I, строки по J.
func (p *printer) array3D(a *ast.ArrayLit) {
	p.w.Token("[|")
	pipeCol := p.w.Column() - 1
	per := a.J * a.K
	for g := range a.I {
		if g > 0 {
			p.w.Token(",")
			p.rowBreak(pipeCol + 2)
		} else {
			p.space()
		}
		p.w.Token("|")
		for r := range a.J {
			p.space()
			start := g*per + r*a.K
			p.exprList(a.Elems[start : start+a.K])
			p.space()
			p.w.Token("|")
		}
	}
	p.rowBreak(pipeCol)
	p.w.Token("|]")
}

// rowBreak переносит строку массива в pretty-режиме.
func (p *printer) rowBreak(col int) {
	if p.pretty() {
		p.w.AlignTo(col)
	}
}
