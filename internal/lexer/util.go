package lexer

import (
	"fmt"
	"unicode/utf8"

	"zinc/internal/token"
)

// ===== Классификаторы =====

func isLetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentContinueByte(b byte) bool {
	return isLetter(b) || isDec(b) || b == '_'
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isOct(b byte) bool { return b >= '0' && b <= '7' }

func isHex(b byte) bool {
	return (b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'f') ||
		(b >= 'A' && b <= 'F')
}

// describeChar renders the rune at the cursor for error messages.
func (lx *Lexer) describeChar() string {
	r, _ := utf8.DecodeRune(lx.file.Content[lx.cursor.Off:])
	if r == utf8.RuneError {
		return fmt.Sprintf("byte 0x%02x", lx.cursor.Peek())
	}
	return fmt.Sprintf("%q", r)
}

// bumpRune перемещает курсор на размер текущей руны (минимум один байт).
func (lx *Lexer) bumpRune() {
	_, sz := utf8.DecodeRune(lx.file.Content[lx.cursor.Off:])
	for i := 0; i < max(sz, 1); i++ {
		lx.cursor.Bump()
	}
}

// ===== Матчеры последовательностей операторов (жадность) =====

// try2/try3 пробуют "съесть" 2/3 байта, если совпадает.
func (lx *Lexer) try3(a, b, c byte) bool {
	b0, b1, b2, ok := lx.cursor.Peek3()
	if !ok || b0 != a || b1 != b || b2 != c {
		return false
	}
	lx.cursor.Bump()
	lx.cursor.Bump()
	lx.cursor.Bump()
	return true
}

func (lx *Lexer) try2(a, b byte) bool {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != a || b1 != b {
		return false
	}
	lx.cursor.Bump()
	lx.cursor.Bump()
	return true
}

// IsPlainName reports whether name can be written as a bare identifier:
// it scans back as a single Ident token and is not a keyword.
func IsPlainName(name string) bool {
	if name == "" {
		return false
	}
	if !isLetter(name[0]) && (name[0] != '_' || len(name) < 2 || !isLetter(name[1])) {
		return false
	}
	for i := 1; i < len(name); i++ {
		if !isIdentContinueByte(name[i]) {
			return false
		}
	}
	return !token.Tables().IsReserved(name)
}
