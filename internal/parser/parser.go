package parser

import (
	"zinc/internal/ast"
	"zinc/internal/diag"
	"zinc/internal/lexer"
	"zinc/internal/source"
	"zinc/internal/token"
)

type Options struct {
	// Reporter получает ровно одну диагностику: первую ошибку разбора.
	Reporter diag.Reporter
	// KeepComments attaches comments to the following token (see token.Trivia).
	KeepComments bool
}

// Parser: состояние парсера на один файл. Не переиспользуется.
type Parser struct {
	file     *source.File
	ring     tokenRing
	opts     Options
	lexCodes lexSink
	last     token.Token // последний съеденный токен
	err      *Error
}

func newParser(file *source.File, opts Options) *Parser {
	p := &Parser{file: file, opts: opts}
	p.lexCodes = lexSink{}
	p.ring.src = lexer.New(file, lexer.Options{Reporter: p.lexCodes, KeepComments: opts.KeepComments})
	return p
}

// ParseModel разбирает программу целиком.
func ParseModel(file *source.File, opts Options) (*ast.Model, error) {
	p := newParser(file, opts)
	m, ok := p.parseModel()
	if !ok {
		return nil, p.err
	}
	return m, nil
}

// ParseItem разбирает ровно один элемент верхнего уровня (точка с запятой в конце необязательна).
func ParseItem(file *source.File, opts Options) (ast.Item, error) {
	p := newParser(file, opts)
	it, ok := p.parseItem()
	if ok && p.at(token.Semicolon) {
		p.advance()
	}
	if ok {
		ok = p.expectEOF()
	}
	if !ok {
		return nil, p.err
	}
	return it, nil
}

// ParseExpr разбирает одно выражение, занимающее весь вход.
func ParseExpr(file *source.File, opts Options) (ast.Expr, error) {
	p := newParser(file, opts)
	e, ok := p.parseExpr()
	if ok {
		ok = p.expectEOF()
	}
	if !ok {
		return nil, p.err
	}
	return e, nil
}

// ParseType разбирает одно type-inst выражение, занимающее весь вход.
func ParseType(file *source.File, opts Options) (ast.Type, error) {
	p := newParser(file, opts)
	t, ok := p.parseType()
	if ok {
		ok = p.expectEOF()
	}
	if !ok {
		return nil, p.err
	}
	return t, nil
}

func (p *Parser) parseModel() (*ast.Model, bool) {
	m := &ast.Model{}
	for !p.at(token.EOF) {
		it, ok := p.parseItem()
		if !ok {
			return nil, false
		}
		m.Items = append(m.Items, it)
		if p.at(token.Semicolon) {
			p.advance()
			continue
		}
		if !p.at(token.EOF) {
			return nil, p.failMissing(diag.SynExpectSemicolon, "expected ';' after item, found "+describe(p.peek()), ";")
		}
	}
	m.Trailing = p.peek().Leading
	return m, true
}

func (p *Parser) expectEOF() bool {
	if p.at(token.EOF) {
		return true
	}
	return p.fail(diag.SynTrailingInput, "expected end of input, found "+describe(p.peek()))
}

// lexSink remembers lexical diagnostic codes by error offset so the parser can
// surface a lexer failure as its single error with the right code.
type lexSink map[uint32]diag.Code

func (s lexSink) Report(code diag.Code, _ diag.Severity, primary source.Span, _ string, _ []diag.Note, _ []diag.Fix) {
	s[primary.Start] = code
}
