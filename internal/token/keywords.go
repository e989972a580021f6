package token

import "sync"

// Table is the immutable keyword/spelling table shared by the lexer, parser and writer.
type Table struct {
	keywords map[string]Kind
	spelling [opEnd]string
}

var keywordList = []struct {
	word string
	kind Kind
}{
	{"ann", KwAnn},
	{"annotation", KwAnnotation},
	{"any", KwAny},
	{"array", KwArray},
	{"bool", KwBool},
	{"constraint", KwConstraint},
	{"default", KwDefault},
	{"diff", KwDiff},
	{"div", KwDiv},
	{"else", KwElse},
	{"elseif", KwElseif},
	{"endif", KwEndif},
	{"enum", KwEnum},
	{"false", KwFalse},
	{"float", KwFloat},
	{"function", KwFunction},
	{"if", KwIf},
	{"in", KwIn},
	{"include", KwInclude},
	{"int", KwInt},
	{"intersect", KwIntersect},
	{"let", KwLet},
	{"list", KwList},
	{"maximize", KwMaximize},
	{"minimize", KwMinimize},
	{"mod", KwMod},
	{"not", KwNot},
	{"of", KwOf},
	{"opt", KwOpt},
	{"output", KwOutput},
	{"par", KwPar},
	{"predicate", KwPredicate},
	{"record", KwRecord},
	{"satisfy", KwSatisfy},
	{"set", KwSet},
	{"solve", KwSolve},
	{"string", KwString},
	{"subset", KwSubset},
	{"superset", KwSuperset},
	{"symdiff", KwSymdiff},
	{"test", KwTest},
	{"then", KwThen},
	{"true", KwTrue},
	{"tuple", KwTuple},
	{"type", KwType},
	{"union", KwUnion},
	{"var", KwVar},
	{"where", KwWhere},
	{"xor", KwXor},
}

var operatorList = []struct {
	text string
	kind Kind
}{
	{"(", LParen},
	{")", RParen},
	{"[", LBracket},
	{"]", RBracket},
	{"{", LBrace},
	{"}", RBrace},
	{",", Comma},
	{";", Semicolon},
	{":", Colon},
	{"::", ColonColon},
	{"|", Pipe},
	{"..", DotDot},
	{"=", Assign},
	{"==", EqEq},
	{"!=", NotEq},
	{"<", Lt},
	{">", Gt},
	{"<=", LtEq},
	{">=", GtEq},
	{"+", Plus},
	{"-", Minus},
	{"*", Star},
	{"/", Slash},
	{"^", Caret},
	{"++", PlusPlus},
	{"<->", Equiv},
	{"->", Impl},
	{"<-", RevImpl},
	{`\/`, Or},
	{`/\`, And},
	{"~+", TildePlus},
	{"~-", TildeMinus},
	{"~*", TildeStar},
	{"~/", TildeSlash},
	{"~div", TildeDiv},
	{"~=", TildeEq},
	{"~!=", TildeNotEq},
	{"<>", Absent},
	{"_", Underscore},
}

// Tables returns the process-wide keyword/spelling table. It is built on first use
// and never mutated afterwards, so it is safe for concurrent readers.
var Tables = sync.OnceValue(buildTable)

func buildTable() *Table {
	t := &Table{keywords: make(map[string]Kind, len(keywordList))}
	for _, kw := range keywordList {
		t.keywords[kw.word] = kw.kind
		t.spelling[kw.kind] = kw.word
	}
	for _, op := range operatorList {
		t.spelling[op.kind] = op.text
	}
	return t
}

// Keyword reports the keyword kind for ident.
func (t *Table) Keyword(ident string) (Kind, bool) {
	k, ok := t.keywords[ident]
	return k, ok
}

// Spelling returns the fixed source text of a keyword or operator kind.
func (t *Table) Spelling(k Kind) (string, bool) {
	if int(k) >= len(t.spelling) {
		return "", false
	}
	s := t.spelling[k]
	return s, s != ""
}

// IsReserved reports whether ident is a keyword and must be quoted to be used as a name.
func (t *Table) IsReserved(ident string) bool {
	_, ok := t.keywords[ident]
	return ok
}

// LookupKeyword is a shorthand for Tables().Keyword.
func LookupKeyword(ident string) (Kind, bool) {
	return Tables().Keyword(ident)
}
