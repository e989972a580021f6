package lexer

import (
	"strings"

	"zinc/internal/diag"
	"zinc/internal/token"
)

// scanString сканирует строковый литерал или его часть.
// opening=true: начинаем с '"'; иначе продолжаем строку после ')' интерполяции.
// Конец части: '"' (StringLit / StringInterpEnd) или '\(' (StringInterpStart / StringInterpMid).
// Str содержит декодированный текст без кавычек и escape-последовательностей.
func (lx *Lexer) scanString(start Mark, opening bool) token.Token {
	lx.cursor.Bump() // '"' или ')'
	var sb strings.Builder
	for {
		if lx.cursor.EOF() {
			return lx.fail(diag.LexUnterminatedString, start, "unterminated string literal")
		}
		b := lx.cursor.Peek()
		switch b {
		case '\n':
			return lx.fail(diag.LexUnterminatedString, start, "newline in string literal")
		case '"':
			lx.cursor.Bump()
			kind := token.StringLit
			if !opening {
				kind = token.StringInterpEnd
			}
			tok := lx.make(kind, start)
			tok.Str = sb.String()
			return tok
		case '\\':
			lx.cursor.Bump()
			esc := lx.cursor.Peek()
			switch esc {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case '\'', '"', '\\':
				sb.WriteByte(esc)
			case '(':
				lx.cursor.Bump()
				lx.interp = append(lx.interp, 0)
				kind := token.StringInterpStart
				if !opening {
					kind = token.StringInterpMid
				}
				tok := lx.make(kind, start)
				tok.Str = sb.String()
				return tok
			default:
				if !lx.cursor.EOF() && esc != '\n' {
					lx.bumpRune()
				}
				return lx.fail(diag.LexBadEscape, start, "invalid escape sequence in string literal")
			}
			lx.cursor.Bump()
		default:
			sb.WriteByte(b)
			lx.cursor.Bump()
		}
	}
}

// Escape renders s as the body of a string literal (without the quotes).
func Escape(s string) string {
	if !strings.ContainsAny(s, "\n\t\"\\") {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s) + 4)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}
