package ast

import (
	"errors"
	"fmt"
	"iter"

	"zinc/internal/token"
)

// ErrDuplicateKey is returned by Data.Set for a name that is already assigned.
var ErrDuplicateKey = errors.New("duplicate data assignment")

// Data is an assignment-only document: unique names mapped to value expressions.
// Iteration follows insertion order; Equal ignores it and the comments.
type Data struct {
	keys []string
	vals map[string]Expr
	// comments before an assignment, by name
	notes map[string][]token.Trivia
	// Trailing holds comments after the last assignment.
	Trailing []token.Trivia
}

func NewData() *Data {
	return &Data{vals: make(map[string]Expr)}
}

// Set adds name = v.
func (d *Data) Set(name string, v Expr) error {
	if _, dup := d.vals[name]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicateKey, name)
	}
	d.keys = append(d.keys, name)
	d.vals[name] = v
	return nil
}

// SetComments attaches the comments written before the assignment to name.
func (d *Data) SetComments(name string, cs []token.Trivia) {
	if len(cs) == 0 {
		return
	}
	if d.notes == nil {
		d.notes = make(map[string][]token.Trivia)
	}
	d.notes[name] = cs
}

func (d *Data) Comments(name string) []token.Trivia { return d.notes[name] }

func (d *Data) Get(name string) (Expr, bool) {
	v, ok := d.vals[name]
	return v, ok
}

func (d *Data) Len() int { return len(d.keys) }

// Keys returns the names in insertion order.
func (d *Data) Keys() []string {
	return append([]string(nil), d.keys...)
}

// All yields name/value pairs in insertion order.
func (d *Data) All() iter.Seq2[string, Expr] {
	return func(yield func(string, Expr) bool) {
		for _, k := range d.keys {
			if !yield(k, d.vals[k]) {
				return
			}
		}
	}
}

// Equal reports whether both dictionaries hold the same names bound to
// structurally equal values, regardless of order.
func (d *Data) Equal(o *Data) bool {
	if d == nil || o == nil {
		return d == o
	}
	if len(d.vals) != len(o.vals) {
		return false
	}
	for k, v := range d.vals {
		w, ok := o.vals[k]
		if !ok || !Equal(v, w) {
			return false
		}
	}
	return true
}

// FirstNonData returns the first sub-expression of e that may not appear in
// data, or nil when e is a pure value. Allowed: literals, identifiers, signed
// numbers, ranges, arrays, sets, tuples, records, plain calls and ++.
func FirstNonData(e Expr) Expr {
	var bad Expr
	Inspect(e, func(n Syntax) bool {
		if bad != nil {
			return false
		}
		switch n := n.(type) {
		case *IntLit, *FloatLit, *BoolLit, *StringLit, *Absent, *Ident,
			*Range, *ArrayLit, *SetLit, *TupleLit, *RecordLit, *Call:
			return true
		case *Unary:
			if n.Op == OpNeg || n.Op == OpPos {
				return true
			}
		case *Binary:
			if n.Op == OpConcat {
				return true
			}
		}
		if x, ok := n.(Expr); ok {
			bad = x
		}
		return false
	})
	return bad
}
