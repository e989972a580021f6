package format

import (
	"slices"

	"zinc/internal/ast"
	"zinc/internal/token"
)

type printer struct {
	w   *Writer
	opt Options
}

func newPrinter(opt Options) *printer {
	opt = opt.withDefaults()
	return &printer{w: NewWriter(opt), opt: opt}
}

// Write renders a single expression, item or type.
func Write(n ast.Syntax, opt Options) string {
	p := newPrinter(opt)
	switch n := n.(type) {
	case ast.Expr:
		p.expr(n)
	case ast.Item:
		p.item(n)
	case ast.Type:
		p.typ(n)
	}
	return p.w.String()
}

// WriteModel renders a whole program; every item ends with ';'.
func WriteModel(m *ast.Model, opt Options) string {
	p := newPrinter(opt)
	items := m.Items
	if p.opt.Prettify {
		items = sortedItems(items)
	}
	for _, it := range items {
		p.comments(it.Base().Start.Leading)
		p.item(it)
		p.w.Token(";")
		p.newline()
	}
	p.comments(m.Trailing)
	return p.w.String()
}

func sortedItems(items []ast.Item) []ast.Item {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b ast.Item) int {
		return ast.ItemRank(a) - ast.ItemRank(b)
	})
	return out
}

// WriteData renders a data dictionary as `name = value;` lines in insertion order.
func WriteData(d *ast.Data, opt Options) string {
	p := newPrinter(opt)
	for k, v := range d.All() {
		p.comments(d.Comments(k))
		p.w.Token(name(k))
		p.op("=")
		p.expr(v)
		p.w.Token(";")
		p.newline()
	}
	p.comments(d.Trailing)
	return p.w.String()
}

func (p *printer) pretty() bool { return !p.opt.Minify }

func (p *printer) space() {
	if p.pretty() {
		p.w.Space()
	}
}

func (p *printer) newline() {
	if p.pretty() {
		p.w.Newline()
	}
}

// op writes an infix lexeme: " op " in pretty mode, bare in minified mode.
func (p *printer) op(s string) {
	p.space()
	p.w.Token(s)
	p.space()
}

func (p *printer) comma() {
	p.w.Token(",")
	p.space()
}

// comments пишет сохранённые комментарии; в minify строчный комментарий
// съел бы остаток строки, поэтому там они опускаются.
func (p *printer) comments(trivia []token.Trivia) {
	if !p.pretty() {
		return
	}
	for _, tr := range trivia {
		p.w.WriteString(tr.Text)
		p.w.Newline()
	}
}

// anns пишет `:: a :: b`. Аннотация разбирается как постфиксное выражение без
// собственных аннотаций, остальное берётся в скобки.
func (p *printer) anns(anns []ast.Expr) {
	for _, a := range anns {
		p.op("::")
		p.annotation(a)
	}
}

func (p *printer) annotation(a ast.Expr) {
	if id, ok := a.(*ast.Ident); ok && id.Kind == ast.IdentPlain && id.Name == "output" && len(id.Anns) == 0 {
		p.w.Token("output")
		return
	}
	if isPostfixOperand(a) {
		p.expr(a)
		return
	}
	p.paren(a)
}

func (p *printer) paren(e ast.Expr) {
	p.w.Token("(")
	p.expr(e)
	p.w.Token(")")
}

func (p *printer) item(it ast.Item) {
	switch it := it.(type) {
	case *ast.Include:
		p.w.Token("include")
		p.space()
		p.w.Token(quoteString(it.Path))
	case *ast.Declare:
		p.declare(it)
	case *ast.Assign:
		p.w.Token(name(it.Name))
		p.op("=")
		p.expr(it.Value)
	case *ast.Constraint:
		p.w.Token("constraint")
		p.itemBody(it.Anns, it.X)
	case *ast.Solve:
		p.w.Token("solve")
		p.anns(it.Anns)
		p.space()
		p.w.Token(it.Goal.String())
		if it.Goal != ast.Satisfy && it.Objective != nil {
			p.space()
			p.expr(it.Objective)
		}
	case *ast.Output:
		p.w.Token("output")
		p.itemBody(it.Anns, it.X)
	}
}

// itemBody пишет `[:: anns] x` после ключевого слова. Если x начинается с
// '(' или '[', последняя аннотация склеилась бы с ним в вызов или индекс,
// поэтому и она, и x берутся в скобки.
func (p *printer) itemBody(anns []ast.Expr, x ast.Expr) {
	wrap := false
	if len(anns) > 0 {
		first := Write(x, Options{Minify: true})
		wrap = first != "" && (first[0] == '(' || first[0] == '[')
	}
	for i, a := range anns {
		p.op("::")
		if wrap && i == len(anns)-1 {
			p.paren(a)
		} else {
			p.annotation(a)
		}
	}
	p.space()
	if wrap {
		p.paren(x)
		return
	}
	p.expr(x)
}

func (p *printer) declare(d *ast.Declare) {
	switch d.Kind {
	case ast.DeclVar:
		p.typ(d.Type)
		p.w.Token(":")
		p.space()
		p.w.Token(name(d.Name))
	case ast.DeclFunction:
		p.w.Token("function")
		p.space()
		p.typ(d.Type)
		p.w.Token(":")
		p.space()
		p.w.Token(name(d.Name))
		p.params(d.Params, true)
	case ast.DeclPredicate, ast.DeclTest:
		p.w.Token(d.Kind.String())
		p.space()
		p.w.Token(name(d.Name))
		p.params(d.Params, true)
	case ast.DeclAnnotation:
		p.w.Token("annotation")
		p.space()
		p.w.Token(name(d.Name))
		p.params(d.Params, false)
	case ast.DeclEnum:
		p.w.Token("enum")
		p.space()
		p.w.Token(name(d.Name))
	case ast.DeclTypeAlias:
		p.w.Token("type")
		p.space()
		p.w.Token(name(d.Name))
		p.anns(d.Anns)
		p.op("=")
		p.typ(d.Type)
		return
	}
	p.anns(d.Anns)
	if d.Body != nil {
		p.op("=")
		p.expr(d.Body)
	}
}

// params пишет список параметров; required: список обязателен по грамматике.
func (p *printer) params(params []*ast.Declare, required bool) {
	if params == nil && !required {
		return
	}
	p.w.Token("(")
	for i, prm := range params {
		if i > 0 {
			p.comma()
		}
		p.typ(prm.Type)
		if prm.Name != "" {
			p.w.Token(":")
			p.space()
			p.w.Token(name(prm.Name))
		}
		p.anns(prm.Anns)
	}
	p.w.Token(")")
}
