package ast

import "zinc/internal/token"

// Node is embedded by every syntax node.
type Node struct {
	// Start is the first token of the node; zero for synthesized nodes.
	Start token.Token
	// Anns are the `:: ann` annotations in source order.
	Anns []Expr
}

// Base returns the shared header.
func (n *Node) Base() *Node { return n }

// Annotate appends annotations.
func (n *Node) Annotate(anns ...Expr) { n.Anns = append(n.Anns, anns...) }

// Syntax is anything carrying a Node header: Expr, Item or Type.
type Syntax interface {
	Base() *Node
}

// Expr is an expression node.
type Expr interface {
	Syntax
	exprNode()
}

// Item is a top-level statement or a let-local.
type Item interface {
	Syntax
	itemNode()
}

// Type is a type-inst expression.
type Type interface {
	Syntax
	Inst() *TypeInst
	typeNode()
}

// Model is a parsed program.
type Model struct {
	Items []Item
	// Trailing holds comments after the last item when the lexer kept them.
	Trailing []token.Trivia
}
