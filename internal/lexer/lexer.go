package lexer

import (
	"zinc/internal/diag"
	"zinc/internal/source"
	"zinc/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token   // 1 элементный буфер для токена
	hold   []token.Trivia // накопленные комментарии
	// interp holds, for every open string interpolation, the number of
	// unmatched '(' seen inside it. A ')' at depth 0 resumes the string.
	interp []int
	failed *token.Token
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next возвращает следующий значимый токен с уже собранным Leading.
// После EOF всегда возвращает EOF; после ошибки всегда возвращает тот же Invalid токен.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}
	if lx.failed != nil {
		return *lx.failed
	}

	if bad, ok := lx.skipTrivia(); !ok {
		return bad
	}

	if lx.cursor.EOF() {
		if len(lx.interp) > 0 {
			lx.interp = nil
			return lx.fail(diag.LexUnbalancedInterp, lx.cursor.Mark(), "string interpolation is not closed")
		}
		tok := lx.make(token.EOF, lx.cursor.Mark())
		tok.Leading = lx.takeHold()
		return tok
	}

	tok := lx.scan()
	if tok.Kind != token.Invalid {
		tok.Leading = lx.takeHold()
	}
	return tok
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// All drains the lexer. The result ends with EOF or with the first Invalid token.
func (lx *Lexer) All() []token.Token {
	var out []token.Token
	for {
		tok := lx.Next()
		out = append(out, tok)
		if tok.Kind == token.EOF || tok.Kind == token.Invalid {
			return out
		}
	}
}

func (lx *Lexer) scan() token.Token {
	ch := lx.cursor.Peek()
	switch {
	case isLetter(ch):
		return lx.scanIdentOrKeyword()
	case ch == '_':
		if isLetter(lx.cursor.PeekAt(1)) {
			return lx.scanIdentOrKeyword()
		}
		start := lx.cursor.Mark()
		lx.cursor.Bump()
		return lx.make(token.Underscore, start)
	case isDec(ch):
		return lx.scanNumber()
	case ch == '"':
		return lx.scanString(lx.cursor.Mark(), true)
	case ch == ')' && len(lx.interp) > 0 && lx.interp[len(lx.interp)-1] == 0:
		lx.interp = lx.interp[:len(lx.interp)-1]
		return lx.scanString(lx.cursor.Mark(), false)
	case ch == '\'':
		return lx.scanQuotedIdent()
	case ch == '`':
		return lx.scanInfixIdent()
	case ch == '$':
		return lx.scanPolyIdent()
	case ch == '.':
		return lx.scanDot()
	default:
		return lx.scanOperatorOrPunct()
	}
}

func (lx *Lexer) takeHold() []token.Trivia {
	h := lx.hold
	lx.hold = nil
	return h
}

// make builds a token of kind k spanning from start to the cursor.
func (lx *Lexer) make(k token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	pos := lx.file.Position(sp.Start)
	return token.Token{
		Kind: k,
		Span: sp,
		Line: pos.Line,
		Col:  pos.Col,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}

// fail reports a lexical error, builds the Invalid token and latches the lexer on it.
func (lx *Lexer) fail(code diag.Code, start Mark, msg string) token.Token {
	tok := lx.make(token.Invalid, start)
	tok.Str = msg
	lx.report(code, tok.Span, msg)
	lx.failed = &tok
	lx.hold = nil
	return tok
}
