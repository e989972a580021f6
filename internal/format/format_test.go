package format_test

import (
	"errors"
	"strings"
	"testing"

	"zinc/internal/ast"
	"zinc/internal/format"
	"zinc/internal/parser"
	"zinc/internal/source"
)

func parseExpr(t *testing.T, src string) ast.Expr {
	t.Helper()
	fs := source.NewFileSet()
	e, err := parser.ParseExpr(fs.Get(fs.AddVirtual("e.mzn", []byte(src))), parser.Options{})
	if err != nil {
		t.Fatalf("ParseExpr(%q): %v", src, err)
	}
	return e
}

func parseModel(t *testing.T, src string) *ast.Model {
	t.Helper()
	fs := source.NewFileSet()
	m, err := parser.ParseModel(fs.Get(fs.AddVirtual("m.mzn", []byte(src))), parser.Options{KeepComments: true})
	if err != nil {
		t.Fatalf("ParseModel(%q): %v", src, err)
	}
	return m
}

var minify = format.Options{Minify: true}

func TestMinifiedExpressions(t *testing.T) {
	tests := []struct {
		src, want string
	}{
		{"1 + 2 * 3", "1+2*3"},
		{"(1 + 2) * 3", "(1+2)*3"},
		{"1 - (2 - 3)", "1-(2-3)"},
		{"(1 - 2) - 3", "1-2-3"},
		{"a ++ (b ++ c)", "a++b++c"},
		{"(a ++ b) ++ c", "(a++b)++c"},
		{"x < -1", "x< -1"},
		{"x - -1", "x- -1"},
		{"not (a \\/ b)", "not(a\\/b)"},
		{"x in S union T", "x in S union T"},
		{"x in (..5) union (7..)", "x in(..5)union(7..)"},
		{"-(x ^ 2)", "-(x^2)"},
		{"a `max` b", "a`max`b"},
		{"forall(i in 1..3)(x[i] > 0)", "forall(i in 1..3)(x[i]>0)"},
		{"exists(i, j in S where i < j)(b)", "exists(i,j in S where i<j)(b)"},
		{"sum([1, 2, 3])", "sum([1,2,3])"},
		{"(1,)", "(1,)"},
		{"(a: 1, b: (2, 3)).b.1", "(a:1,b:(2,3)).b.1"},
		{"[i: x | i in 1..n]", "[i:x|i in 1..n]"},
		{"{i | i in S}", "{i|i in S}"},
		{"if a then 1 elseif b then 2 else 3 endif", "if a then 1 elseif b then 2 else 3 endif"},
		{"let { int: y = 1; constraint y > 0 } in y", "let{int:y=1;constraint y>0}in y"},
		{"'my var' + 'int'", "'my var'+'int'"},
		{`"a\"b\n"`, `"a\"b\n"`},
		{`"x = \(x), y = \(f(y))"`, `"x = \(x), y = \(f(y))"`},
		{"1.0", "1.0"},
		{"2.5e10", "2.5e+10"},
		{"[|1, 2, 3|4, 5, 6|]", "[|1,2,3|4,5,6|]"},
		{"[| A: B: | X: 1, 2 | Y: 3, 4 |]", "[|A:B:|X:1,2|Y:3,4|]"},
		{"[| |1, 2|3, 4|, |5, 6|7, 8| |]", "[||1,2|3,4|,|5,6|7,8||]"},
		{"[||]", "[||]"},
		{"f(x) :: a :: b(1)", "f(x)::a::b(1)"},
		{"(x + y) :: bounds", "(x+y)::bounds"},
		{"<>", "<>"},
		{"$T", "$T"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			e := parseExpr(t, tt.src)
			got := format.Write(e, minify)
			if got != tt.want {
				t.Fatalf("Write = %q, want %q", got, tt.want)
			}
			if again := parseExpr(t, got); !ast.Equal(e, again) {
				t.Fatalf("%q does not parse back to the same tree", got)
			}
		})
	}
}

func TestFloatAlwaysFloat(t *testing.T) {
	for _, v := range []float64{0, 1, 100, 1e21, 1e-7, 0.5, 123456789} {
		got := format.Write(&ast.FloatLit{Value: v}, minify)
		if !strings.ContainsAny(got, ".e") {
			t.Errorf("%v written as %q", v, got)
		}
		if e, ok := parseExpr(t, got).(*ast.FloatLit); !ok || e.Value != v {
			t.Errorf("%q does not read back as %v", got, v)
		}
	}
}

func TestParenthesisationOfBuiltTrees(t *testing.T) {
	// деревья, которые парсер не строит из текста без скобок
	x, y, z := &ast.Ident{Name: "x"}, &ast.Ident{Name: "y"}, &ast.Ident{Name: "z"}
	tests := []struct {
		e    ast.Expr
		want string
	}{
		{&ast.Binary{Op: ast.OpLt, X: &ast.Binary{Op: ast.OpLt, X: x, Y: y}, Y: z}, "(x<y)<z"},
		{&ast.Binary{Op: ast.OpAdd, X: &ast.Let{Body: x}, Y: y}, "(let{}in x)+y"},
		{&ast.Binary{Op: ast.OpAdd, X: &ast.Range{Lo: x}, Y: y}, "(x..)+y"},
		{&ast.ArrayAccess{X: &ast.IntLit{Value: 1}, Index: []ast.Expr{x}}, "(1)[x]"},
		{&ast.TupleAccess{X: &ast.IntLit{Value: 1}, Field: 1}, "(1).1"},
		{&ast.Ident{Name: "constraint"}, "'constraint'"},
	}
	for _, tt := range tests {
		if got := format.Write(tt.e, minify); got != tt.want {
			t.Errorf("Write = %q, want %q", got, tt.want)
		}
	}
}

func TestPrettyModel(t *testing.T) {
	src := "% model\nint: n=3;constraint n>0;x=[|1,2|3,4|];solve satisfy;\n% end\n"
	got := format.WriteModel(parseModel(t, src), format.Options{})
	want := "% model\n" +
		"int: n = 3;\n" +
		"constraint n > 0;\n" +
		"x = [| 1, 2\n" +
		"     | 3, 4\n" +
		"     |];\n" +
		"solve satisfy;\n" +
		"% end\n"
	if got != want {
		t.Fatalf("pretty output:\n%s\nwant:\n%s", got, want)
	}
}

func TestMinifiedModelDropsComments(t *testing.T) {
	src := "% model\nint: n = 3;\nconstraint n > 0;\nsolve satisfy;\n"
	got := format.WriteModel(parseModel(t, src), minify)
	if want := "int:n=3;constraint n>0;solve satisfy;"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPrettifyOrdersItems(t *testing.T) {
	src := `output [""]; solve satisfy; constraint x > 0; int: x; include "a.mzn"; y = 1;`
	got := format.WriteModel(parseModel(t, src), format.Options{Minify: true, Prettify: true})
	want := `include"a.mzn";int:x;y=1;constraint x>0;solve satisfy;output[""];`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestLetPrettyIndent(t *testing.T) {
	e := parseExpr(t, "let { int: a = 1; int: b = 2 } in a + b")
	got := format.Write(e, format.Options{Indent: 4})
	want := "let {\n    int: a = 1;\n    int: b = 2;\n} in a + b"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

var roundTripModels = []string{
	`int: n = 3;
array[1..n] of var 1..n: q;
constraint forall(i, j in 1..n where i < j)(q[i] != q[j] /\ q[i] + i != q[j] + j);
solve satisfy;
output ["q = \(q)\n"];`,

	`include "alldifferent.mzn";
enum Color = {Red, Green, Blue};
var Color: c :: output_var;
constraint c != Red;
solve :: int_search([c], input_order, indomain_min) maximize c;`,

	`array[1..2, 1..3] of int: a = [|1, 2, 3|4, 5, 6|];
array[1..2, 1..2, 1..2] of int: b = [| |1, 2|3, 4|, |5, 6|7, 8| |];
x = [| A: B: | X: 1, 2 | Y: 3, 4 |];
y = [||];
z = [| 1: 1, 2 | 2: 3, 4 |];
arr = [1: a, 2: b];`,

	`constraint 1 - (2 - 3) = -(x ^ 2) /\ not (a \/ b) -> c <-> d;
constraint x in ..5 union 7..;
constraint let { var int: y = x + 1; constraint y > 0 } in y * 2 > z;
constraint if x > 0 then y else z endif + 1 = w;
constraint (a: 1, b: (2, 3)).b.1 = t.1 /\ (1,).1 = 1;
constraint a ~+ b ~= c /\ x ` + "`max`" + ` 2 default 0 = 1;
constraint sum([i * x[i] | i in 1..n where i mod 2 = 0]) <= 10 /\ card({i | i in S}) = 1;
constraint forall(i in S union T)(b[i]) \/ exists(i in (a \/ b))(c);
constraint :: (foo) ([1, 2] ++ xs) = ys;
constraint (x + y) :: bounds > 0 :: domain;
output [show(x), "\n", "a\(f(y))b"];`,

	`function var int: f(var int: x, array[int] of int: ys) :: promise_total = x + sum(ys);
predicate p(int: a, $T: t);
test t();
annotation ann1(int: v);
annotation ann2;
type Pair = record(int: a, float: b) ++ tuple(bool);
var opt int: o;
par set of int: S = {};
list of int: L;
int: 'my var' = 1;
x = 1.5e10;
y = 0.25;
constraint 'my var' > 0 /\ <> = o;`,
}

func TestRoundTrip(t *testing.T) {
	modes := map[string]format.Options{
		"minify":   {Minify: true},
		"pretty":   {},
		"prettify": {Prettify: true},
	}
	for i, src := range roundTripModels {
		for mode, opt := range modes {
			out, err := format.CheckRoundTrip("m.mzn", []byte(src), opt)
			if err != nil {
				t.Errorf("model %d %s: %v\noutput:\n%s", i, mode, err, out)
			}
		}
	}
}

func TestRoundTripIsIdempotent(t *testing.T) {
	for i, src := range roundTripModels {
		once := format.WriteModel(parseModel(t, src), format.Options{})
		twice := format.WriteModel(parseModel(t, once), format.Options{})
		if once != twice {
			t.Errorf("model %d: pretty output is not a fixed point:\n%s\n---\n%s", i, once, twice)
		}
	}
}

func TestCheckRoundTripReportsParseError(t *testing.T) {
	_, err := format.CheckRoundTrip("bad.mzn", []byte("constraint x <"), format.Options{})
	var perr *parser.Error
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v", err)
	}
}

func TestWriteData(t *testing.T) {
	fs := source.NewFileSet()
	d, err := parser.ParseData(fs.Get(fs.AddVirtual("d.dzn", []byte("n=3;xs=[1,-2];m=[|1,2|3,4|];"))), parser.Options{})
	if err != nil {
		t.Fatal(err)
	}
	got := format.WriteData(d, format.Options{})
	want := "n = 3;\nxs = [1, -2];\nm = [| 1, 2\n     | 3, 4\n     |];\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if out, err := format.CheckDataRoundTrip("d.dzn", []byte("a = {1, 2} ++ {3}; b = (x: 1, y: Red);"), minify); err != nil {
		t.Fatalf("%v: %q", err, out)
	}
}

func TestLostComments(t *testing.T) {
	tests := []struct {
		name string
		src  string
		lost []string
	}{
		{"before items", "% head\nint: n = 3;\n% tail\n", nil},
		{"inside expression", "constraint x > 0 % positive\n  /\\ x < 10;\n", []string{"% positive"}},
		{"inside array", "x = [1, /* one */ 2];\n", []string{"/* one */"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := source.NewFileSet()
			f := fs.Get(fs.AddVirtual("m.mzn", []byte(tt.src)))
			m, err := parser.ParseModel(f, parser.Options{KeepComments: true})
			if err != nil {
				t.Fatal(err)
			}
			var got []string
			for _, c := range format.LostComments(f, format.WriteModel(m, format.Options{})) {
				got = append(got, c.Text)
			}
			if strings.Join(got, "|") != strings.Join(tt.lost, "|") {
				t.Fatalf("lost %q, want %q", got, tt.lost)
			}
		})
	}
}

func TestDataComments(t *testing.T) {
	fs := source.NewFileSet()
	src := "% sizes\nn=3;\n% weights\nw=[1,2,3];\n% end\n"
	d, err := parser.ParseData(fs.Get(fs.AddVirtual("d.dzn", []byte(src))), parser.Options{KeepComments: true})
	if err != nil {
		t.Fatal(err)
	}
	want := "% sizes\nn = 3;\n% weights\nw = [1, 2, 3];\n% end\n"
	if got := format.WriteData(d, format.Options{}); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if got := format.WriteData(d, minify); got != "n=3;w=[1,2,3];" {
		t.Fatalf("minified data %q", got)
	}
}

func TestOutputAnnotationRoundTrip(t *testing.T) {
	src := "var int: x :: output :: add_to_output;\n"
	out, err := format.CheckRoundTrip("m.mzn", []byte(src), format.Options{})
	if err != nil {
		t.Fatalf("%v: %q", err, out)
	}
	if out != src {
		t.Fatalf("got %q, want %q", out, src)
	}
	if short, _ := format.CheckRoundTrip("m.mzn", []byte(src), minify); short != "var int:x::output::add_to_output;" {
		t.Fatalf("minified %q", short)
	}
}
