package parser

import (
	"fmt"

	"zinc/internal/ast"
	"zinc/internal/diag"
	"zinc/internal/token"
)

// parseArrayLiteral выбирает форму по токенам после '[':
//
//	[ ... ]         одномерный массив или генератор [e | gens]
//	[| ... |]       двумерный, с возможной индексацией строк/столбцов
//	[| | ... | |]   трёхмерный
func (p *Parser) parseArrayLiteral() (ast.Expr, bool) {
	open := p.advance()
	if !p.at(token.Pipe) {
		return p.parseArray1D(open)
	}
	p.advance() // первый '|'
	if p.at(token.Pipe) {
		if p.atN(1, token.RBracket) {
			p.advance()
			p.advance()
			arr := &ast.ArrayLit{Dims: 2}
			arr.Start = open
			return arr, true
		}
		return p.parseArray3D(open)
	}
	return p.parseArray2D(open)
}

func (p *Parser) parseArray1D(open token.Token) (ast.Expr, bool) {
	arr := &ast.ArrayLit{Dims: 1}
	arr.Start = open
	if p.accept(token.RBracket) {
		return arr, true
	}
	hasIndex := false
	for {
		e, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		var idx ast.Expr
		if p.accept(token.Colon) {
			idx = e
			hasIndex = true
			if e, ok = p.parseExpr(); !ok {
				return nil, false
			}
		}
		if len(arr.Elems) == 0 && p.at(token.Pipe) {
			p.advance()
			gens, ok := p.parseGenerators()
			if !ok {
				return nil, false
			}
			if _, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "']' closing comprehension"); !ok {
				return nil, false
			}
			c := &ast.Comprehension{Index: idx, Body: e, Gens: gens}
			c.Start = open
			return c, true
		}
		arr.Elems = append(arr.Elems, e)
		arr.Indices = append(arr.Indices, idx)
		if !p.accept(token.Comma) || p.at(token.RBracket) {
			break
		}
	}
	if _, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "']'"); !ok {
		return nil, false
	}
	arr.I = len(arr.Elems)
	if !hasIndex {
		arr.Indices = nil
	}
	return arr, true
}

// rowEntry: значение строки 2-D литерала; label=true, если за ним шёл ':'.
type rowEntry struct {
	e     ast.Expr
	label bool
}

// parseRow2D читает одну строку до '|' (не съедая его).
// Метки (`x:`) не разделяются запятыми, значения разделяются.
func (p *Parser) parseRow2D() ([]rowEntry, bool) {
	var row []rowEntry
	for !p.at(token.Pipe) {
		e, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		if p.accept(token.Colon) {
			row = append(row, rowEntry{e: e, label: true})
			continue
		}
		row = append(row, rowEntry{e: e})
		if !p.accept(token.Comma) {
			break
		}
	}
	return row, true
}

// parseArray2D: после "[|". Строки разделены '|', литерал закрывается "|]".
// Первая строка из одних меток: заголовок столбцов; метка в начале строки:
// индекс строки (тогда он обязателен для всех строк).
func (p *Parser) parseArray2D(open token.Token) (ast.Expr, bool) {
	arr := &ast.ArrayLit{Dims: 2}
	arr.Start = open
	rowIndexed := -1 // -1: ещё неизвестно
	first := true
	for {
		rowTok := p.peek()
		row, ok := p.parseRow2D()
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.Pipe, diag.SynBadArrayShape, "'|' ending array row"); !ok {
			return nil, false
		}
		labels := 0
		for _, r := range row {
			if r.label {
				labels++
			}
		}
		switch {
		case first && len(row) > 0 && labels == len(row):
			arr.ColIndex = make([]ast.Expr, 0, len(row))
			for _, r := range row {
				arr.ColIndex = append(arr.ColIndex, r.e)
			}
		case labels == 0 || (labels == 1 && row[0].label):
			isIndexed := labels == 1
			if rowIndexed == -1 {
				rowIndexed = boolInt(isIndexed)
			} else if rowIndexed != boolInt(isIndexed) {
				return nil, p.failAt(rowTok, diag.SynBadArrayShape, "either all rows or no rows of a 2-D array must be indexed")
			}
			vals := row
			if isIndexed {
				arr.RowIndex = append(arr.RowIndex, row[0].e)
				vals = row[1:]
			}
			if arr.I > 0 && len(vals) != arr.J {
				return nil, p.failAt(rowTok, diag.SynBadArrayShape,
					fmt.Sprintf("row %d has %d elements, expected %d", arr.I+1, len(vals), arr.J))
			}
			arr.J = len(vals)
			arr.I++
			for _, v := range vals {
				arr.Elems = append(arr.Elems, v.e)
			}
		default:
			return nil, p.failAt(rowTok, diag.SynBadArrayShape, "misplaced index label in 2-D array row")
		}
		first = false
		if p.accept(token.RBracket) {
			break
		}
	}
	if arr.ColIndex != nil {
		if arr.I == 0 {
			arr.J = len(arr.ColIndex)
		} else if len(arr.ColIndex) != arr.J {
			return nil, p.fail(diag.SynBadArrayShape,
				fmt.Sprintf("%d column labels for %d columns", len(arr.ColIndex), arr.J))
		}
	}
	return arr, true
}

// parseArray3D: после "[|", текущий токен: '|' первой группы.
// [| |1,2|3,4|, |5,6|7,8| |]: группы → I, строки → J, значения → K.
func (p *Parser) parseArray3D(open token.Token) (ast.Expr, bool) {
	arr := &ast.ArrayLit{Dims: 3}
	arr.Start = open
	for {
		groupTok, ok := p.expect(token.Pipe, diag.SynBadArrayShape, "'|' opening 3-D array group")
		if !ok {
			return nil, false
		}
		rows := 0
		for {
			row, ok := p.parseExprListUntilPipe()
			if !ok {
				return nil, false
			}
			if _, ok := p.expect(token.Pipe, diag.SynBadArrayShape, "'|' ending array row"); !ok {
				return nil, false
			}
			if arr.I == 0 && rows == 0 {
				arr.K = len(row)
			} else if len(row) != arr.K {
				return nil, p.failAt(groupTok, diag.SynBadArrayShape, "3-D array rows must have equal length")
			}
			arr.Elems = append(arr.Elems, row...)
			rows++
			if p.atOr(token.Comma, token.Pipe) {
				break
			}
		}
		if arr.I == 0 {
			arr.J = rows
		} else if rows != arr.J {
			return nil, p.failAt(groupTok, diag.SynBadArrayShape, "3-D array groups must have equal row counts")
		}
		arr.I++
		if p.accept(token.Comma) {
			continue
		}
		p.advance() // закрывающий '|'
		break
	}
	if _, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "']' closing 3-D array"); !ok {
		return nil, false
	}
	return arr, true
}

func (p *Parser) parseExprListUntilPipe() ([]ast.Expr, bool) {
	var out []ast.Expr
	for !p.at(token.Pipe) {
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

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
