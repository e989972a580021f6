package ast

// Equal reports structural equality of two syntax nodes. Source positions are
// ignored; annotations are compared in order. Nil equals only nil.
func Equal(a, b Syntax) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if !equalExprs(a.Base().Anns, b.Base().Anns) {
		return false
	}
	switch a := a.(type) {
	case Expr:
		bx, ok := b.(Expr)
		return ok && equalExpr(a, bx)
	case Type:
		bt, ok := b.(Type)
		return ok && equalType(a, bt)
	case Item:
		bi, ok := b.(Item)
		return ok && equalItem(a, bi)
	}
	return false
}

// EqualModels compares item lists pairwise.
func EqualModels(a, b *Model) bool {
	if a == nil || b == nil {
		return a == b
	}
	if len(a.Items) != len(b.Items) {
		return false
	}
	for i := range a.Items {
		if !Equal(a.Items[i], b.Items[i]) {
			return false
		}
	}
	return true
}

func eqExpr(a, b Expr) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return Equal(a, b)
}

func eqType(a, b Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return Equal(a, b)
}

func equalExprs(a, b []Expr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !eqExpr(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalTypes(a, b []Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !eqType(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalDecls(a, b []*Declare) bool {
	if (a == nil) != (b == nil) || len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalGens(a, b []Generator) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equalStrings(a[i].Names, b[i].Names) ||
			!eqExpr(a[i].Source, b[i].Source) ||
			!eqExpr(a[i].Where, b[i].Where) {
			return false
		}
	}
	return true
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalExpr(a, b Expr) bool {
	switch a := a.(type) {
	case *IntLit:
		b, ok := b.(*IntLit)
		return ok && a.Value == b.Value
	case *FloatLit:
		b, ok := b.(*FloatLit)
		return ok && a.Value == b.Value
	case *BoolLit:
		b, ok := b.(*BoolLit)
		return ok && a.Value == b.Value
	case *StringLit:
		b, ok := b.(*StringLit)
		return ok && a.Value == b.Value
	case *StringInterp:
		b, ok := b.(*StringInterp)
		return ok && equalStrings(a.Parts, b.Parts) && equalExprs(a.Exprs, b.Exprs)
	case *Absent:
		_, ok := b.(*Absent)
		return ok
	case *Ident:
		b, ok := b.(*Ident)
		return ok && a.Name == b.Name && a.Kind == b.Kind
	case *Wildcard:
		_, ok := b.(*Wildcard)
		return ok
	case *Unary:
		b, ok := b.(*Unary)
		return ok && a.Op == b.Op && eqExpr(a.X, b.X)
	case *Binary:
		b, ok := b.(*Binary)
		return ok && a.Op == b.Op && a.Infix == b.Infix && eqExpr(a.X, b.X) && eqExpr(a.Y, b.Y)
	case *Range:
		b, ok := b.(*Range)
		return ok && eqExpr(a.Lo, b.Lo) && eqExpr(a.Hi, b.Hi)
	case *ArrayLit:
		b, ok := b.(*ArrayLit)
		return ok && a.Dims == b.Dims && a.I == b.I && a.J == b.J && a.K == b.K &&
			equalExprs(a.Elems, b.Elems) && equalExprs(a.Indices, b.Indices) &&
			equalExprs(a.RowIndex, b.RowIndex) && equalExprs(a.ColIndex, b.ColIndex)
	case *ArrayAccess:
		b, ok := b.(*ArrayAccess)
		return ok && eqExpr(a.X, b.X) && equalExprs(a.Index, b.Index)
	case *SetLit:
		b, ok := b.(*SetLit)
		return ok && equalExprs(a.Elems, b.Elems)
	case *TupleLit:
		b, ok := b.(*TupleLit)
		return ok && equalExprs(a.Elems, b.Elems)
	case *RecordLit:
		b, ok := b.(*RecordLit)
		if !ok || len(a.Fields) != len(b.Fields) {
			return false
		}
		for i := range a.Fields {
			if a.Fields[i].Name != b.Fields[i].Name || !eqExpr(a.Fields[i].Value, b.Fields[i].Value) {
				return false
			}
		}
		return true
	case *TupleAccess:
		b, ok := b.(*TupleAccess)
		return ok && a.Field == b.Field && eqExpr(a.X, b.X)
	case *RecordAccess:
		b, ok := b.(*RecordAccess)
		return ok && a.Field == b.Field && eqExpr(a.X, b.X)
	case *Call:
		b, ok := b.(*Call)
		return ok && a.Name == b.Name && equalExprs(a.Args, b.Args)
	case *GeneratorCall:
		b, ok := b.(*GeneratorCall)
		return ok && a.Name == b.Name && equalGens(a.Gens, b.Gens) && eqExpr(a.Body, b.Body)
	case *Comprehension:
		b, ok := b.(*Comprehension)
		return ok && a.Set == b.Set && eqExpr(a.Index, b.Index) && eqExpr(a.Body, b.Body) && equalGens(a.Gens, b.Gens)
	case *IfThenElse:
		b, ok := b.(*IfThenElse)
		if !ok || len(a.Cases) != len(b.Cases) {
			return false
		}
		for i := range a.Cases {
			if !eqExpr(a.Cases[i].Cond, b.Cases[i].Cond) || !eqExpr(a.Cases[i].Then, b.Cases[i].Then) {
				return false
			}
		}
		return eqExpr(a.Else, b.Else)
	case *Let:
		b, ok := b.(*Let)
		if !ok || len(a.Locals) != len(b.Locals) {
			return false
		}
		for i := range a.Locals {
			if !Equal(a.Locals[i], b.Locals[i]) {
				return false
			}
		}
		return eqExpr(a.Body, b.Body)
	}
	return false
}

func equalType(a, b Type) bool {
	if *a.Inst() != *b.Inst() {
		return false
	}
	switch a := a.(type) {
	case *BaseType:
		b, ok := b.(*BaseType)
		return ok && a.Kind == b.Kind
	case *ArrayType:
		b, ok := b.(*ArrayType)
		return ok && equalTypes(a.Dims, b.Dims) && eqType(a.Elem, b.Elem)
	case *SetType:
		b, ok := b.(*SetType)
		return ok && eqType(a.Elem, b.Elem)
	case *ListType:
		b, ok := b.(*ListType)
		return ok && eqType(a.Elem, b.Elem)
	case *TupleType:
		b, ok := b.(*TupleType)
		return ok && equalTypes(a.Fields, b.Fields)
	case *RecordType:
		b, ok := b.(*RecordType)
		return ok && equalDecls(a.Fields, b.Fields)
	case *CompositeType:
		b, ok := b.(*CompositeType)
		return ok && equalTypes(a.Parts, b.Parts)
	case *ExprType:
		b, ok := b.(*ExprType)
		return ok && eqExpr(a.X, b.X)
	}
	return false
}

func equalItem(a, b Item) bool {
	switch a := a.(type) {
	case *Include:
		b, ok := b.(*Include)
		return ok && a.Path == b.Path
	case *Declare:
		b, ok := b.(*Declare)
		return ok && a.Kind == b.Kind && a.Name == b.Name && eqType(a.Type, b.Type) &&
			equalDecls(a.Params, b.Params) && eqExpr(a.Body, b.Body)
	case *Assign:
		b, ok := b.(*Assign)
		return ok && a.Name == b.Name && eqExpr(a.Value, b.Value)
	case *Constraint:
		b, ok := b.(*Constraint)
		return ok && eqExpr(a.X, b.X)
	case *Solve:
		b, ok := b.(*Solve)
		return ok && a.Goal == b.Goal && eqExpr(a.Objective, b.Objective)
	case *Output:
		b, ok := b.(*Output)
		return ok && eqExpr(a.X, b.X)
	}
	return false
}
