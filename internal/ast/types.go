package ast

// TypeInst carries the var/opt modifiers shared by every type.
type TypeInst struct {
	Var bool
	Opt bool
}

func (ti *TypeInst) Inst() *TypeInst { return ti }

type BaseKind uint8

const (
	BaseInt BaseKind = iota + 1
	BaseBool
	BaseFloat
	BaseString
	BaseAnn
	BaseAny
)

func (k BaseKind) String() string {
	switch k {
	case BaseInt:
		return "int"
	case BaseBool:
		return "bool"
	case BaseFloat:
		return "float"
	case BaseString:
		return "string"
	case BaseAnn:
		return "ann"
	case BaseAny:
		return "any"
	}
	return "?"
}

type (
	BaseType struct {
		Node
		TypeInst
		Kind BaseKind
	}

	// ArrayType is array[Dims] of Elem.
	ArrayType struct {
		Node
		TypeInst
		Dims []Type
		Elem Type
	}

	SetType struct {
		Node
		TypeInst
		Elem Type
	}

	ListType struct {
		Node
		TypeInst
		Elem Type
	}

	TupleType struct {
		Node
		TypeInst
		Fields []Type
	}

	// RecordType fields are declarations without bodies.
	RecordType struct {
		Node
		TypeInst
		Fields []*Declare
	}

	// CompositeType is Parts[0] ++ Parts[1] ++ ... of record or tuple types.
	CompositeType struct {
		Node
		TypeInst
		Parts []Type
	}

	// ExprType is a domain given by an expression: 1..10, {1,3}, Color, $T.
	ExprType struct {
		Node
		TypeInst
		X Expr
	}
)

func (*BaseType) typeNode()      {}
func (*ArrayType) typeNode()     {}
func (*SetType) typeNode()       {}
func (*ListType) typeNode()      {}
func (*TupleType) typeNode()     {}
func (*RecordType) typeNode()    {}
func (*CompositeType) typeNode() {}
func (*ExprType) typeNode()      {}
