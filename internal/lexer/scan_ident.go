package lexer

import (
	"zinc/internal/diag"
	"zinc/internal/token"
)

// scanIdentOrKeyword сканирует [A-Za-z_][A-Za-z0-9_]* и проверяет через LookupKeyword.
// Ключевые слова регистрозависимые. Token.Text: ровно исходный срез.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	tok := lx.make(token.Ident, start)
	if k, ok := token.LookupKeyword(tok.Text); ok {
		tok.Kind = k
		return tok
	}
	tok.Str = tok.Text
	return tok
}

// scanQuotedIdent сканирует 'any text' до закрывающей кавычки.
// Str получает имя без кавычек.
func (lx *Lexer) scanQuotedIdent() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '
	for {
		if lx.cursor.EOF() {
			return lx.fail(diag.LexBadQuotedIdent, start, "unterminated quoted identifier")
		}
		switch lx.cursor.Peek() {
		case '\'':
			lx.cursor.Bump()
			tok := lx.make(token.Ident, start)
			tok.Str = tok.Text[1 : len(tok.Text)-1]
			if tok.Str == "" {
				return lx.fail(diag.LexBadQuotedIdent, start, "empty quoted identifier")
			}
			return tok
		case '\n':
			return lx.fail(diag.LexBadQuotedIdent, start, "newline in quoted identifier")
		case '\\', '"':
			lx.cursor.Bump()
			return lx.fail(diag.LexBadQuotedIdent, start, "quoted identifier may not contain '\\' or '\"'")
		}
		lx.cursor.Bump()
	}
}

// scanInfixIdent сканирует `name`, используемый как бинарный оператор.
func (lx *Lexer) scanInfixIdent() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening `
	if !isLetter(lx.cursor.Peek()) {
		if lx.cursor.Peek() == '`' {
			lx.cursor.Bump()
		}
		return lx.fail(diag.LexBadInfixIdent, start, "backtick identifier must start with a letter")
	}
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if !lx.cursor.Eat('`') {
		return lx.fail(diag.LexBadInfixIdent, start, "unterminated backtick identifier")
	}
	tok := lx.make(token.InfixIdent, start)
	tok.Str = tok.Text[1 : len(tok.Text)-1]
	return tok
}

// scanPolyIdent сканирует $T и $$E.
func (lx *Lexer) scanPolyIdent() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // $
	kind := token.PolyIdent
	if lx.cursor.Eat('$') {
		kind = token.EnumPolyIdent
	}
	if !isLetter(lx.cursor.Peek()) {
		return lx.fail(diag.LexBadPolyIdent, start, "expected a letter after '$'")
	}
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	tok := lx.make(kind, start)
	tok.Str = tok.Text[1:]
	if kind == token.EnumPolyIdent {
		tok.Str = tok.Text[2:]
	}
	return tok
}
