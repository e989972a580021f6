package lexer

import (
	"zinc/internal/diag"
	"zinc/internal/token"
)

// scanDot: '..', '.1' (доступ к кортежу), '.name' (доступ к записи).
func (lx *Lexer) scanDot() token.Token {
	start := lx.cursor.Mark()
	if lx.try2('.', '.') {
		return lx.make(token.DotDot, start)
	}
	lx.cursor.Bump() // '.'
	switch next := lx.cursor.Peek(); {
	case isDec(next):
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		tok := lx.make(token.TupleAccess, start)
		v, ok := parseSmallInt(tok.Text[1:])
		if !ok {
			return lx.fail(diag.LexBadNumber, start, "tuple index out of range: "+tok.Text)
		}
		tok.Int = v
		return tok
	case isLetter(next) || next == '_':
		for isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		tok := lx.make(token.RecordAccess, start)
		tok.Str = tok.Text[1:]
		return tok
	}
	return lx.fail(diag.LexUnknownChar, start, "unexpected '.'")
}

func parseSmallInt(s string) (int64, bool) {
	if len(s) > 18 {
		return 0, false
	}
	var v int64
	for i := 0; i < len(s); i++ {
		v = v*10 + int64(s[i]-'0')
	}
	return v, true
}

// Жадность: сначала 3-символьные, затем 2-символьные, затем 1-символьные.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		return lx.make(k, start)
	}

	switch {
	case lx.try3('<', '-', '>'):
		return emit(token.Equiv)
	case lx.try3('~', '!', '='):
		return emit(token.TildeNotEq)
	case lx.tryTildeDiv():
		return emit(token.TildeDiv)
	case lx.try2('<', '-'):
		return emit(token.RevImpl)
	case lx.try2('<', '='):
		return emit(token.LtEq)
	case lx.try2('<', '>'):
		return emit(token.Absent)
	case lx.try2('-', '>'):
		return emit(token.Impl)
	case lx.try2('>', '='):
		return emit(token.GtEq)
	case lx.try2('=', '='):
		return emit(token.EqEq)
	case lx.try2('!', '='):
		return emit(token.NotEq)
	case lx.try2('\\', '/'):
		return emit(token.Or)
	case lx.try2('/', '\\'):
		return emit(token.And)
	case lx.try2('+', '+'):
		return emit(token.PlusPlus)
	case lx.try2(':', ':'):
		return emit(token.ColonColon)
	case lx.try2('~', '+'):
		return emit(token.TildePlus)
	case lx.try2('~', '-'):
		return emit(token.TildeMinus)
	case lx.try2('~', '*'):
		return emit(token.TildeStar)
	case lx.try2('~', '/'):
		return emit(token.TildeSlash)
	case lx.try2('~', '='):
		return emit(token.TildeEq)
	}

	ch := lx.cursor.Peek()
	var k token.Kind
	switch ch {
	case '+':
		k = token.Plus
	case '-':
		k = token.Minus
	case '*':
		k = token.Star
	case '/':
		k = token.Slash
	case '^':
		k = token.Caret
	case '=':
		k = token.Assign
	case '<':
		k = token.Lt
	case '>':
		k = token.Gt
	case '|':
		k = token.Pipe
	case ':':
		k = token.Colon
	case ';':
		k = token.Semicolon
	case ',':
		k = token.Comma
	case '(':
		k = token.LParen
		if n := len(lx.interp); n > 0 {
			lx.interp[n-1]++
		}
	case ')':
		k = token.RParen
		if n := len(lx.interp); n > 0 {
			lx.interp[n-1]--
		}
	case '{':
		k = token.LBrace
	case '}':
		k = token.RBrace
	case '[':
		k = token.LBracket
	case ']':
		k = token.RBracket
	default:
		msg := "unknown character " + lx.describeChar()
		lx.bumpRune()
		return lx.fail(diag.LexUnknownChar, start, msg)
	}
	lx.cursor.Bump()
	return emit(k)
}

// tryTildeDiv съедает "~div", если за ним не продолжается идентификатор.
func (lx *Lexer) tryTildeDiv() bool {
	if !lx.cursor.At(0, '~') || !lx.cursor.At(1, 'd') || !lx.cursor.At(2, 'i') || !lx.cursor.At(3, 'v') {
		return false
	}
	if isIdentContinueByte(lx.cursor.PeekAt(4)) {
		return false
	}
	for range 4 {
		lx.cursor.Bump()
	}
	return true
}
