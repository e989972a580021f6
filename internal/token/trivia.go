package token

import "zinc/internal/source"

type TriviaKind uint8

const (
	// TriviaLineComment is a '%' comment up to (not including) the newline.
	TriviaLineComment TriviaKind = iota + 1
	// TriviaBlockComment is a '/* ... */' comment.
	TriviaBlockComment
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaLineComment:
		return "LineComment"
	case TriviaBlockComment:
		return "BlockComment"
	}
	return "Trivia?"
}

type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
