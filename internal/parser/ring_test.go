package parser

import (
	"strings"
	"testing"

	"zinc/internal/lexer"
	"zinc/internal/source"
	"zinc/internal/token"
)

func newTestRing(src string) *tokenRing {
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("ring.mzn", []byte(src)))
	return &tokenRing{src: lexer.New(f, lexer.Options{})}
}

func TestRingWrapsAround(t *testing.T) {
	// больше токенов, чем вмещает кольцо
	src := strings.Repeat("a ", ringSize*3)
	r := newTestRing(src)
	for i := range ringSize * 3 {
		if got := r.peek(1).Kind; i < ringSize*3-1 && got != token.Ident {
			t.Fatalf("peek(1) at %d = %v", i, got)
		}
		if tok := r.next(); tok.Kind != token.Ident {
			t.Fatalf("token %d = %v", i, tok.Kind)
		}
	}
	if k := r.next().Kind; k != token.EOF {
		t.Fatalf("after input: %v", k)
	}
	if k := r.next().Kind; k != token.EOF {
		t.Fatalf("EOF must repeat, got %v", k)
	}
}

func TestRingPeekPastEnd(t *testing.T) {
	r := newTestRing("x")
	if k := r.peek(5).Kind; k != token.EOF {
		t.Fatalf("peek past end = %v", k)
	}
	if k := r.peek(0).Kind; k != token.Ident {
		t.Fatalf("peek(0) = %v", k)
	}
}

func TestRingStopsAtInvalid(t *testing.T) {
	r := newTestRing("x # y")
	r.next()
	if k := r.next().Kind; k != token.Invalid {
		t.Fatalf("got %v", k)
	}
	if k := r.peek(3).Kind; k != token.Invalid {
		t.Fatalf("invalid must latch, got %v", k)
	}
}
