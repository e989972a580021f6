package format

import "zinc/internal/ast"

func (p *printer) typ(t ast.Type) {
	ti := t.Inst()
	if ti.Var {
		p.w.Token("var")
		p.space()
	}
	if ti.Opt {
		p.w.Token("opt")
		p.space()
	}
	switch t := t.(type) {
	case *ast.BaseType:
		p.w.Token(t.Kind.String())
	case *ast.ArrayType:
		p.w.Token("array")
		p.w.Token("[")
		for i, d := range t.Dims {
			if i > 0 {
				p.comma()
			}
			p.typ(d)
		}
		p.w.Token("]")
		p.space()
		p.w.Token("of")
		p.space()
		p.typ(t.Elem)
	case *ast.SetType:
		p.w.Token("set")
		p.space()
		p.w.Token("of")
		p.space()
		p.typ(t.Elem)
	case *ast.ListType:
		p.w.Token("list")
		p.space()
		p.w.Token("of")
		p.space()
		p.typ(t.Elem)
	case *ast.TupleType:
		p.w.Token("tuple")
		p.w.Token("(")
		for i, f := range t.Fields {
			if i > 0 {
				p.comma()
			}
			p.typ(f)
		}
		p.w.Token(")")
	case *ast.RecordType:
		p.w.Token("record")
		p.w.Token("(")
		for i, f := range t.Fields {
			if i > 0 {
				p.comma()
			}
			p.typ(f.Type)
			p.w.Token(":")
			p.space()
			p.w.Token(name(f.Name))
		}
		p.w.Token(")")
	case *ast.CompositeType:
		for i, part := range t.Parts {
			if i > 0 {
				p.op("++")
			}
			p.typ(part)
		}
	case *ast.ExprType:
		p.expr(t.X)
	}
}
