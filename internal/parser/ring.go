package parser

import (
	"zinc/internal/lexer"
	"zinc/internal/token"
)

const ringSize = 16

// tokenRing is a fixed-size lookahead window over the lexer. It refills in
// batches so peek and next stay O(1) without per-token allocation.
type tokenRing struct {
	buf  [ringSize]token.Token
	head int
	n    int
	src  *lexer.Lexer
}

func (r *tokenRing) fill() {
	for r.n < ringSize {
		tok := r.src.Next()
		r.buf[(r.head+r.n)%ringSize] = tok
		r.n++
		// lexer repeats EOF/Invalid forever; no need to buffer copies
		if tok.Kind == token.EOF || tok.Kind == token.Invalid {
			return
		}
	}
}

// peek returns the i-th upcoming token (0 = next); i must be < ringSize.
func (r *tokenRing) peek(i int) token.Token {
	if i >= r.n {
		r.fill()
		if i >= r.n {
			// stream ended before i: the last buffered token is EOF or Invalid
			return r.buf[(r.head+r.n-1)%ringSize]
		}
	}
	return r.buf[(r.head+i)%ringSize]
}

func (r *tokenRing) next() token.Token {
	tok := r.peek(0)
	if tok.Kind == token.EOF || tok.Kind == token.Invalid {
		return tok
	}
	r.head = (r.head + 1) % ringSize
	r.n--
	return tok
}
