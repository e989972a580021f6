package ast

type DeclKind uint8

const (
	DeclVar DeclKind = iota + 1
	DeclFunction
	DeclPredicate
	DeclTest
	DeclAnnotation
	DeclEnum
	DeclTypeAlias
)

func (k DeclKind) String() string {
	switch k {
	case DeclVar:
		return "var"
	case DeclFunction:
		return "function"
	case DeclPredicate:
		return "predicate"
	case DeclTest:
		return "test"
	case DeclAnnotation:
		return "annotation"
	case DeclEnum:
		return "enum"
	case DeclTypeAlias:
		return "type"
	}
	return "?"
}

type SolveGoal uint8

const (
	Satisfy SolveGoal = iota + 1
	Minimize
	Maximize
)

func (g SolveGoal) String() string {
	switch g {
	case Satisfy:
		return "satisfy"
	case Minimize:
		return "minimize"
	case Maximize:
		return "maximize"
	}
	return "?"
}

type (
	Include struct {
		Node
		Path string
	}

	// Declare covers every declaration form.
	//
	//	DeclVar        Type: Name [= Body]
	//	DeclFunction   function Type: Name(Params) [= Body]
	//	DeclPredicate  predicate Name(Params) [= Body]
	//	DeclTest       test Name(Params) [= Body]
	//	DeclAnnotation annotation Name[(Params)] [= Body]
	//	DeclEnum       enum Name [= Body]
	//	DeclTypeAlias  type Name = Type
	//
	// Params is nil when no parameter list was written.
	Declare struct {
		Node
		Kind   DeclKind
		Type   Type
		Name   string
		Params []*Declare
		Body   Expr
	}

	Assign struct {
		Node
		Name  string
		Value Expr
	}

	Constraint struct {
		Node
		X Expr
	}

	// Solve objective is nil for Satisfy.
	Solve struct {
		Node
		Goal      SolveGoal
		Objective Expr
	}

	Output struct {
		Node
		X Expr
	}
)

func (*Include) itemNode()    {}
func (*Declare) itemNode()    {}
func (*Assign) itemNode()     {}
func (*Constraint) itemNode() {}
func (*Solve) itemNode()      {}
func (*Output) itemNode()     {}

// ItemRank orders items for prettified output: include, declarations and
// assignments, constraints, solve, output.
func ItemRank(it Item) int {
	switch it.(type) {
	case *Include:
		return 0
	case *Declare, *Assign:
		return 1
	case *Constraint:
		return 2
	case *Solve:
		return 3
	case *Output:
		return 4
	}
	return 5
}

// Keyword names the form of an item the way it reads in source: include,
// the declaration keyword (var for plain declarations), assign, constraint,
// solve or output.
func Keyword(it Item) string {
	switch it := it.(type) {
	case *Include:
		return "include"
	case *Declare:
		return it.Kind.String()
	case *Assign:
		return "assign"
	case *Constraint:
		return "constraint"
	case *Solve:
		return "solve"
	case *Output:
		return "output"
	}
	return "?"
}
