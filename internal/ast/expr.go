package ast

type IdentKind uint8

const (
	// IdentPlain is a regular or single-quoted name.
	IdentPlain IdentKind = iota
	// IdentPoly is a type-inst variable ($T).
	IdentPoly
	// IdentEnumPoly is an enum type-inst variable ($$E).
	IdentEnumPoly
)

type (
	IntLit struct {
		Node
		Value int64
	}

	FloatLit struct {
		Node
		Value float64
	}

	BoolLit struct {
		Node
		Value bool
	}

	StringLit struct {
		Node
		Value string
	}

	// StringInterp is "p0\(e0)p1\(e1)p2": len(Parts) == len(Exprs)+1.
	StringInterp struct {
		Node
		Parts []string
		Exprs []Expr
	}

	// Absent is the <> literal.
	Absent struct {
		Node
	}

	Ident struct {
		Node
		Name string
		Kind IdentKind
	}

	// Wildcard is `_`.
	Wildcard struct {
		Node
	}

	Unary struct {
		Node
		Op UnaryOp
		X  Expr
	}

	Binary struct {
		Node
		Op BinaryOp
		// Infix is the function name for OpInfix (`name`).
		Infix string
		X, Y  Expr
	}

	// Range is lo..hi; a nil bound is an open end (a.., ..b, ..).
	Range struct {
		Node
		Lo, Hi Expr
	}

	// ArrayLit covers the 1-D, 2-D and 3-D literal forms.
	// Elems are stored row-major; I, J, K are the extents of the used dimensions.
	ArrayLit struct {
		Node
		Dims    int
		I, J, K int
		Elems   []Expr
		// Indices (1-D only) has one entry per element, nil where no index was given.
		Indices []Expr
		// RowIndex/ColIndex (2-D only) are nil or hold I / J labels.
		RowIndex []Expr
		ColIndex []Expr
	}

	ArrayAccess struct {
		Node
		X     Expr
		Index []Expr
	}

	SetLit struct {
		Node
		Elems []Expr
	}

	TupleLit struct {
		Node
		Elems []Expr
	}

	RecordField struct {
		Name  string
		Value Expr
	}

	RecordLit struct {
		Node
		Fields []RecordField
	}

	TupleAccess struct {
		Node
		X     Expr
		Field int64
	}

	RecordAccess struct {
		Node
		X     Expr
		Field string
	}

	Call struct {
		Node
		Name string
		Args []Expr
	}

	// GeneratorCall is name(generators)(body).
	GeneratorCall struct {
		Node
		Name string
		Gens []Generator
		Body Expr
	}

	// Comprehension is [body | gens] or {body | gens}; Index is the optional
	// `idx: body` form of indexed array comprehensions.
	Comprehension struct {
		Node
		Set   bool
		Index Expr
		Body  Expr
		Gens  []Generator
	}

	IfCase struct {
		Cond Expr
		Then Expr
	}

	// IfThenElse is if c0 then t0 elseif c1 then t1 ... [else e] endif.
	IfThenElse struct {
		Node
		Cases []IfCase
		Else  Expr
	}

	// Let locals are *Declare or *Constraint items.
	Let struct {
		Node
		Locals []Item
		Body   Expr
	}
)

// Generator binds Names to each element of Source, filtered by the optional Where.
type Generator struct {
	Names  []string
	Source Expr
	Where  Expr
}

func (*IntLit) exprNode()        {}
func (*FloatLit) exprNode()      {}
func (*BoolLit) exprNode()       {}
func (*StringLit) exprNode()     {}
func (*StringInterp) exprNode()  {}
func (*Absent) exprNode()        {}
func (*Ident) exprNode()         {}
func (*Wildcard) exprNode()      {}
func (*Unary) exprNode()         {}
func (*Binary) exprNode()        {}
func (*Range) exprNode()         {}
func (*ArrayLit) exprNode()      {}
func (*ArrayAccess) exprNode()   {}
func (*SetLit) exprNode()        {}
func (*TupleLit) exprNode()      {}
func (*RecordLit) exprNode()     {}
func (*TupleAccess) exprNode()   {}
func (*RecordAccess) exprNode()  {}
func (*Call) exprNode()          {}
func (*GeneratorCall) exprNode() {}
func (*Comprehension) exprNode() {}
func (*IfThenElse) exprNode()    {}
func (*Let) exprNode()           {}

// Precedence returns the binding strength of e as an operand: the operator
// precedence for Binary and Range, 0 for everything that is self-delimiting.
// Larger values bind looser.
func Precedence(e Expr) int {
	switch e := e.(type) {
	case *Binary:
		return Ops().Info(e.Op).Prec
	case *Range:
		return RangePrec
	case *Unary:
		return UnaryPrec
	}
	return 0
}

// IsAtom reports whether e is written without any operator at its top level.
func IsAtom(e Expr) bool {
	switch e.(type) {
	case *Binary, *Range, *Unary, *Let:
		return false
	}
	return true
}
