package ast

// Inspect traverses the tree rooted at n depth-first, calling f for every
// node before its children. If f returns false the children are skipped.
// Annotations are visited after the node's own children.
func Inspect(n Syntax, f func(Syntax) bool) {
	if n == nil || !f(n) {
		return
	}
	expr := func(e Expr) {
		if e != nil {
			Inspect(e, f)
		}
	}
	exprs := func(es []Expr) {
		for _, e := range es {
			expr(e)
		}
	}
	typ := func(t Type) {
		if t != nil {
			Inspect(t, f)
		}
	}
	gens := func(gs []Generator) {
		for _, g := range gs {
			expr(g.Source)
			expr(g.Where)
		}
	}

	switch n := n.(type) {
	case *StringInterp:
		exprs(n.Exprs)
	case *Unary:
		expr(n.X)
	case *Binary:
		expr(n.X)
		expr(n.Y)
	case *Range:
		expr(n.Lo)
		expr(n.Hi)
	case *ArrayLit:
		exprs(n.RowIndex)
		exprs(n.ColIndex)
		for i, e := range n.Elems {
			if i < len(n.Indices) {
				expr(n.Indices[i])
			}
			expr(e)
		}
	case *ArrayAccess:
		expr(n.X)
		exprs(n.Index)
	case *SetLit:
		exprs(n.Elems)
	case *TupleLit:
		exprs(n.Elems)
	case *RecordLit:
		for _, fld := range n.Fields {
			expr(fld.Value)
		}
	case *TupleAccess:
		expr(n.X)
	case *RecordAccess:
		expr(n.X)
	case *Call:
		exprs(n.Args)
	case *GeneratorCall:
		gens(n.Gens)
		expr(n.Body)
	case *Comprehension:
		gens(n.Gens)
		expr(n.Index)
		expr(n.Body)
	case *IfThenElse:
		for _, c := range n.Cases {
			expr(c.Cond)
			expr(c.Then)
		}
		expr(n.Else)
	case *Let:
		for _, it := range n.Locals {
			Inspect(it, f)
		}
		expr(n.Body)

	case *ArrayType:
		for _, d := range n.Dims {
			typ(d)
		}
		typ(n.Elem)
	case *SetType:
		typ(n.Elem)
	case *ListType:
		typ(n.Elem)
	case *TupleType:
		for _, t := range n.Fields {
			typ(t)
		}
	case *RecordType:
		for _, d := range n.Fields {
			Inspect(d, f)
		}
	case *CompositeType:
		for _, t := range n.Parts {
			typ(t)
		}
	case *ExprType:
		expr(n.X)

	case *Declare:
		typ(n.Type)
		for _, p := range n.Params {
			Inspect(p, f)
		}
		expr(n.Body)
	case *Assign:
		expr(n.Value)
	case *Constraint:
		expr(n.X)
	case *Solve:
		expr(n.Objective)
	case *Output:
		expr(n.X)
	}
	exprs(n.Base().Anns)
}

// InspectModel calls Inspect for every item of m.
func InspectModel(m *Model, f func(Syntax) bool) {
	for _, it := range m.Items {
		Inspect(it, f)
	}
}
