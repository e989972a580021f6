package lexer

import (
	"zinc/internal/diag"
	"zinc/internal/token"
)

// skipTrivia пропускает пробелы и комментарии перед значимым токеном.
//   - % ... до \n -> TriviaLineComment
//   - /* ... */ -> TriviaBlockComment (без вложенности)
//
// Комментарии попадают в lx.hold только при Options.KeepComments.
// Незакрытый блочный комментарий возвращает Invalid токен и ok=false.
func (lx *Lexer) skipTrivia() (bad token.Token, ok bool) {
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		switch b := lx.cursor.Peek(); {
		case b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f' || b == '\v':
			lx.cursor.Bump()

		case b == '%':
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
			lx.keep(token.TriviaLineComment, start)

		case b == '/' && lx.cursor.At(1, '*'):
			lx.cursor.Bump()
			lx.cursor.Bump()
			closed := false
			for !lx.cursor.EOF() {
				if lx.try2('*', '/') {
					closed = true
					break
				}
				lx.cursor.Bump()
			}
			if !closed {
				return lx.fail(diag.LexUnterminatedBlockComment, start, "unterminated block comment"), false
			}
			lx.keep(token.TriviaBlockComment, start)

		default:
			return token.Token{}, true
		}
	}
	return token.Token{}, true
}

func (lx *Lexer) keep(kind token.TriviaKind, start Mark) {
	if !lx.opts.KeepComments {
		return
	}
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	})
}
