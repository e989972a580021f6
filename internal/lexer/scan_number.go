package lexer

import (
	"strconv"

	"zinc/internal/diag"
	"zinc/internal/token"
)

// scanNumber поддерживает: 123, 0x1F, 0o17, 1.5, 1.5e-3, 2E10.
// "1..2": это int, '..', int: точка без цифры после неё не входит в число.
// Переполнение и неполные формы дают Invalid токен с исходным текстом.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	if lx.cursor.Peek() == '0' {
		switch lx.cursor.PeekAt(1) {
		case 'x':
			return lx.scanRadix(start, 16, isHex)
		case 'o':
			return lx.scanRadix(start, 8, isOct)
		}
	}

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	isFloat := false
	if lx.cursor.Peek() == '.' && isDec(lx.cursor.PeekAt(1)) {
		isFloat = true
		lx.cursor.Bump()
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		n := uint32(1)
		if s := lx.cursor.PeekAt(1); s == '+' || s == '-' {
			n = 2
		}
		if !isDec(lx.cursor.PeekAt(n)) {
			for range n {
				lx.cursor.Bump()
			}
			return lx.fail(diag.LexBadNumber, start, "expected digits in exponent of "+lx.lexeme(start))
		}
		isFloat = true
		for range n {
			lx.cursor.Bump()
		}
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	text := lx.lexeme(start)
	if isFloat {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return lx.fail(diag.LexBadNumber, start, "invalid float literal "+text)
		}
		tok := lx.make(token.FloatLit, start)
		tok.Float = v
		return tok
	}
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return lx.fail(diag.LexBadNumber, start, "integer literal out of range: "+text)
	}
	tok := lx.make(token.IntLit, start)
	tok.Int = v
	return tok
}

func (lx *Lexer) scanRadix(start Mark, base int, digit func(byte) bool) token.Token {
	lx.cursor.Bump() // 0
	lx.cursor.Bump() // x / o
	from := lx.cursor.Off
	for digit(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if lx.cursor.Off == from {
		return lx.fail(diag.LexBadNumber, start, "expected digits after "+lx.lexeme(start))
	}
	text := string(lx.file.Content[from:lx.cursor.Off])
	v, err := strconv.ParseInt(text, base, 64)
	if err != nil {
		return lx.fail(diag.LexBadNumber, start, "integer literal out of range: "+lx.lexeme(start))
	}
	tok := lx.make(token.IntLit, start)
	tok.Int = v
	return tok
}

func (lx *Lexer) lexeme(start Mark) string {
	return string(lx.file.Content[start:lx.cursor.Off])
}
