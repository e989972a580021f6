// Package ast defines the syntax tree produced by internal/parser and consumed by
// internal/format.
//
// Three closed families share the Node header (start token + annotations):
//
//   - Expr: literals, identifiers, operators, arrays, sets, tuples, records,
//     calls, comprehensions, if/let.
//   - Item: top-level statements (include, declarations, assignments,
//     constraint, solve, output).
//   - Type: type-inst syntax (base, array, set, list, tuple, record,
//     composite, expression domains).
//
// Each family is an interface with an unexported marker method, so only this
// package can add variants and consumers may switch over the concrete types.
// Nodes are built during one parse and treated as immutable afterwards.
package ast
