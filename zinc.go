// Package zinc is the entry point for tools that embed the front end: it
// parses model and data text into the AST and writes the AST back to text.
//
// Errors returned by the Parse functions are *parser.Error values carrying
// the message, 1-based line and column, and the trace of consumed tokens.
package zinc

import (
	"zinc/internal/ast"
	"zinc/internal/format"
	"zinc/internal/parser"
	"zinc/internal/source"
)

// WriteOptions selects minified or pretty output and item ordering.
type WriteOptions = format.Options

// Error is the structured parse failure.
type Error = parser.Error

func virtual(name, text string) *source.File {
	fs := source.NewFileSet()
	return fs.Get(fs.AddVirtual(name, []byte(text)))
}

// ParseModel parses a whole program.
func ParseModel(text string) (*ast.Model, error) {
	return parser.ParseModel(virtual("model.mzn", text), parser.Options{})
}

// ParseData parses assignment-only data text into a dictionary.
func ParseData(text string) (*ast.Data, error) {
	return parser.ParseData(virtual("data.dzn", text), parser.Options{})
}

// ParseItem parses exactly one top-level item.
func ParseItem(text string) (ast.Item, error) {
	return parser.ParseItem(virtual("item.mzn", text), parser.Options{})
}

// ParseExpr parses exactly one expression.
func ParseExpr(text string) (ast.Expr, error) {
	return parser.ParseExpr(virtual("expr.mzn", text), parser.Options{})
}

// Write renders an expression, item or type.
func Write(node ast.Syntax, opt WriteOptions) string {
	return format.Write(node, opt)
}

// WriteModel renders a program, one item per line unless minified.
func WriteModel(m *ast.Model, opt WriteOptions) string {
	return format.WriteModel(m, opt)
}

// WriteData renders a data dictionary in insertion order.
func WriteData(d *ast.Data, opt WriteOptions) string {
	return format.WriteData(d, opt)
}
