package parser

import (
	"errors"

	"zinc/internal/ast"
	"zinc/internal/diag"
	"zinc/internal/source"
	"zinc/internal/token"
)

// ParseData разбирает текст вида `x = e; y = e;` в словарь данных.
// Допускаются только присваивания со значениями-данными.
func ParseData(file *source.File, opts Options) (*ast.Data, error) {
	p := newParser(file, opts)
	d, ok := p.parseData()
	if !ok {
		return nil, p.err
	}
	return d, nil
}

func (p *Parser) parseData() (*ast.Data, bool) {
	data := ast.NewData()
	for !p.at(token.EOF) {
		tok := p.peek()
		if tok.Kind != token.Ident || !p.atN(1, token.Assign) {
			return nil, p.fail(diag.SynDataItemNotAllowed, "only assignments 'name = value' are allowed in data, found "+describe(tok))
		}
		it, ok := p.parseAssign()
		if !ok {
			return nil, false
		}
		as := it.(*ast.Assign)
		if bad := ast.FirstNonData(as.Value); bad != nil {
			return nil, p.failAt(bad.Base().Start, diag.SynNotDataExpression,
				"value of '"+as.Name+"' is not a data expression")
		}
		if err := data.Set(as.Name, as.Value); err != nil {
			if errors.Is(err, ast.ErrDuplicateKey) {
				return nil, p.failAt(tok, diag.SynDuplicateDataKey, "duplicate assignment to '"+as.Name+"'")
			}
			return nil, p.failAt(tok, diag.SynUnexpectedToken, err.Error())
		}
		data.SetComments(as.Name, tok.Leading)
		if p.accept(token.Semicolon) {
			continue
		}
		if !p.at(token.EOF) {
			return nil, p.failMissing(diag.SynExpectSemicolon, "expected ';' after assignment, found "+describe(p.peek()), ";")
		}
	}
	data.Trailing = p.peek().Leading
	return data, true
}
