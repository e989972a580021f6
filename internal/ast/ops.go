package ast

import (
	"sync"

	"zinc/internal/token"
)

type BinaryOp uint8

const (
	OpInvalid BinaryOp = iota
	OpEquiv            // <->
	OpImpl             // ->
	OpRevImpl          // <-
	OpOr               // \/
	OpXor              // xor
	OpAnd              // /\
	OpLt
	OpGt
	OpLe
	OpGe
	OpEqEq // ==
	OpEq   // =
	OpNe
	OpIn
	OpSubset
	OpSuperset
	OpUnion
	OpDiff
	OpSymdiff
	OpAdd
	OpSub
	OpMul
	OpDiv    // /
	OpIntDiv // div
	OpMod
	OpIntersect
	OpPow
	OpConcat // ++
	OpDefault
	OpInfix // `name`
	OpTildeAdd
	OpTildeSub
	OpTildeMul
	OpTildeDiv
	OpTildeIntDiv
	OpTildeEq
	OpTildeNe
	opCount
)

type UnaryOp uint8

const (
	OpNot UnaryOp = iota + 1
	OpNeg
	OpPos
)

func (op UnaryOp) String() string {
	switch op {
	case OpNot:
		return "not"
	case OpNeg:
		return "-"
	case OpPos:
		return "+"
	}
	return "?"
}

// Assoc describes how operators of equal precedence group.
type Assoc uint8

const (
	AssocNone Assoc = iota
	AssocLeft
	AssocRight
)

const (
	// RangePrec is the precedence of `..`, which builds Range nodes rather than Binary.
	RangePrec = 500
	// UnaryPrec is tighter than every binary operator.
	UnaryPrec = 5
	// MaxPrec is the loosest precedence; parsing a full expression starts here.
	MaxPrec = 1200
)

type OpInfo struct {
	Op       BinaryOp
	Prec     int
	Assoc    Assoc
	Spelling string
	Token    token.Kind
}

// OpTable maps binary operators to their precedence, associativity and spelling.
type OpTable struct {
	byOp    [opCount]OpInfo
	byToken map[token.Kind]BinaryOp
}

// Ops returns the shared operator table, built once.
var Ops = sync.OnceValue(func() *OpTable {
	t := &OpTable{byToken: make(map[token.Kind]BinaryOp, int(opCount))}
	add := func(op BinaryOp, prec int, assoc Assoc, tok token.Kind) {
		spell, _ := token.Tables().Spelling(tok)
		t.byOp[op] = OpInfo{Op: op, Prec: prec, Assoc: assoc, Spelling: spell, Token: tok}
		t.byToken[tok] = op
	}
	add(OpEquiv, 1200, AssocLeft, token.Equiv)
	add(OpImpl, 1100, AssocLeft, token.Impl)
	add(OpRevImpl, 1100, AssocLeft, token.RevImpl)
	add(OpOr, 1000, AssocLeft, token.Or)
	add(OpXor, 1000, AssocLeft, token.KwXor)
	add(OpAnd, 900, AssocLeft, token.And)
	add(OpLt, 800, AssocNone, token.Lt)
	add(OpGt, 800, AssocNone, token.Gt)
	add(OpLe, 800, AssocNone, token.LtEq)
	add(OpGe, 800, AssocNone, token.GtEq)
	add(OpEqEq, 800, AssocNone, token.EqEq)
	add(OpEq, 800, AssocNone, token.Assign)
	add(OpNe, 800, AssocNone, token.NotEq)
	add(OpIn, 700, AssocNone, token.KwIn)
	add(OpSubset, 700, AssocNone, token.KwSubset)
	add(OpSuperset, 700, AssocNone, token.KwSuperset)
	add(OpUnion, 600, AssocLeft, token.KwUnion)
	add(OpDiff, 600, AssocLeft, token.KwDiff)
	add(OpSymdiff, 600, AssocLeft, token.KwSymdiff)
	add(OpAdd, 400, AssocLeft, token.Plus)
	add(OpSub, 400, AssocLeft, token.Minus)
	add(OpMul, 300, AssocLeft, token.Star)
	add(OpDiv, 300, AssocLeft, token.Slash)
	add(OpIntDiv, 300, AssocLeft, token.KwDiv)
	add(OpMod, 300, AssocLeft, token.KwMod)
	add(OpIntersect, 300, AssocLeft, token.KwIntersect)
	add(OpPow, 200, AssocLeft, token.Caret)
	add(OpConcat, 100, AssocRight, token.PlusPlus)
	add(OpDefault, 70, AssocLeft, token.KwDefault)
	add(OpInfix, 50, AssocLeft, token.InfixIdent)
	add(OpTildeAdd, 10, AssocLeft, token.TildePlus)
	add(OpTildeSub, 10, AssocLeft, token.TildeMinus)
	add(OpTildeMul, 10, AssocLeft, token.TildeStar)
	add(OpTildeDiv, 10, AssocLeft, token.TildeSlash)
	add(OpTildeIntDiv, 10, AssocLeft, token.TildeDiv)
	add(OpTildeEq, 10, AssocLeft, token.TildeEq)
	add(OpTildeNe, 10, AssocLeft, token.TildeNotEq)
	return t
})

// Info returns the table entry for op; the zero OpInfo for unknown ops.
func (t *OpTable) Info(op BinaryOp) OpInfo {
	if op >= opCount {
		return OpInfo{}
	}
	return t.byOp[op]
}

// ByToken maps a token kind to its binary operator.
func (t *OpTable) ByToken(k token.Kind) (OpInfo, bool) {
	op, ok := t.byToken[k]
	if !ok {
		return OpInfo{}, false
	}
	return t.byOp[op], true
}

func (op BinaryOp) String() string {
	if op == OpInfix {
		return "`infix`"
	}
	if s := Ops().Info(op).Spelling; s != "" {
		return s
	}
	return "?"
}
