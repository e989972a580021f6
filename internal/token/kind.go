package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token; Str carries the diagnostic.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident is a plain or single-quoted identifier; Str holds the name.
	Ident
	// InfixIdent is a backtick identifier used as a binary operator.
	InfixIdent
	// PolyIdent is a type-inst variable such as $T.
	PolyIdent
	// EnumPolyIdent is an enum type-inst variable such as $$E.
	EnumPolyIdent

	IntLit
	FloatLit
	StringLit
	// StringInterpStart is the leading part of an interpolated string, `"abc\(`.
	StringInterpStart
	// StringInterpMid is a part between two interpolations, `)abc\(`.
	StringInterpMid
	// StringInterpEnd is the trailing part of an interpolated string, `)abc"`.
	StringInterpEnd
	// Absent is the `<>` literal.
	Absent
	// Underscore is the `_` wildcard.
	Underscore
	// TupleAccess is `.N`; Int holds N.
	TupleAccess
	// RecordAccess is `.name`; Str holds the field name.
	RecordAccess

	kwBegin
	KwAnn
	KwAnnotation
	KwAny
	KwArray
	KwBool
	KwConstraint
	KwDefault
	KwDiff
	KwDiv
	KwElse
	KwElseif
	KwEndif
	KwEnum
	KwFalse
	KwFloat
	KwFunction
	KwIf
	KwIn
	KwInclude
	KwInt
	KwIntersect
	KwLet
	KwList
	KwMaximize
	KwMinimize
	KwMod
	KwNot
	KwOf
	KwOpt
	KwOutput
	KwPar
	KwPredicate
	KwRecord
	KwSatisfy
	KwSet
	KwSolve
	KwString
	KwSubset
	KwSuperset
	KwSymdiff
	KwTest
	KwThen
	KwTrue
	KwTuple
	KwType
	KwUnion
	KwVar
	KwWhere
	KwXor
	kwEnd

	opBegin
	LParen    // (
	RParen    // )
	LBracket  // [
	RBracket  // ]
	LBrace    // {
	RBrace    // }
	Comma     // ,
	Semicolon // ;
	Colon     // :
	ColonColon
	Pipe   // |
	DotDot // ..

	Assign // =
	EqEq   // ==
	NotEq  // !=
	Lt
	Gt
	LtEq
	GtEq

	Plus
	Minus
	Star
	Slash
	Caret
	PlusPlus

	Equiv    // <->
	Impl     // ->
	RevImpl  // <-
	Or       // \/
	And      // /\
	TildePlus
	TildeMinus
	TildeStar
	TildeSlash
	TildeDiv
	TildeEq
	TildeNotEq
	opEnd
)

var kindNames = [...]string{
	Invalid:           "Invalid",
	EOF:               "EOF",
	Ident:             "Ident",
	InfixIdent:        "InfixIdent",
	PolyIdent:         "PolyIdent",
	EnumPolyIdent:     "EnumPolyIdent",
	IntLit:            "IntLit",
	FloatLit:          "FloatLit",
	StringLit:         "StringLit",
	StringInterpStart: "StringInterpStart",
	StringInterpMid:   "StringInterpMid",
	StringInterpEnd:   "StringInterpEnd",
	Absent:            "Absent",
	Underscore:        "Underscore",
	TupleAccess:       "TupleAccess",
	RecordAccess:      "RecordAccess",
}

// String returns the symbolic name for non-spelled kinds and the
// canonical spelling (quoted) for keywords and operators.
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	if s, ok := Tables().Spelling(k); ok {
		return "'" + s + "'"
	}
	return "Kind(?)"
}

// IsKeyword reports whether the kind is a reserved word.
func (k Kind) IsKeyword() bool { return k > kwBegin && k < kwEnd }

// IsOperator reports whether the kind is punctuation or a symbolic operator.
func (k Kind) IsOperator() bool { return k > opBegin && k < opEnd }
