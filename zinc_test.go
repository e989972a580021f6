package zinc_test

import (
	"errors"
	"testing"

	"zinc"
	"zinc/internal/ast"
	"zinc/internal/diag"
)

func TestParseAndWrite(t *testing.T) {
	m, err := zinc.ParseModel("int: n = 3; constraint n > 0; solve satisfy;")
	if err != nil {
		t.Fatal(err)
	}
	got := zinc.WriteModel(m, zinc.WriteOptions{Minify: true})
	if got != "int:n=3;constraint n>0;solve satisfy;" {
		t.Fatalf("got %q", got)
	}
}

func TestParseErrorCarriesPosition(t *testing.T) {
	_, err := zinc.ParseModel("int: n = 3;\nconstraint n < 1 < 2;")
	var zerr *zinc.Error
	if !errors.As(err, &zerr) {
		t.Fatalf("err = %v", err)
	}
	if zerr.Line != 2 || zerr.Code != diag.SynNonAssocChain {
		t.Fatalf("got %d:%d %v", zerr.Line, zerr.Col, zerr.Code)
	}
	if zerr.Trace != "int : n = 3 ; constraint n < 1" {
		t.Fatalf("trace %q", zerr.Trace)
	}
}

func TestParseExprAndItem(t *testing.T) {
	e, err := zinc.ParseExpr("1 - 2 - 3")
	if err != nil {
		t.Fatal(err)
	}
	if got := zinc.Write(e, zinc.WriteOptions{}); got != "1 - 2 - 3" {
		t.Fatalf("got %q", got)
	}
	it, err := zinc.ParseItem("solve minimize cost")
	if err != nil {
		t.Fatal(err)
	}
	if s, ok := it.(*ast.Solve); !ok || s.Goal != ast.Minimize {
		t.Fatalf("got %#v", it)
	}
}

func TestParseDataAndWrite(t *testing.T) {
	d, err := zinc.ParseData("n = 3;\nxs = [1, 2, 3];")
	if err != nil {
		t.Fatal(err)
	}
	if got := zinc.WriteData(d, zinc.WriteOptions{Minify: true}); got != "n=3;xs=[1,2,3];" {
		t.Fatalf("got %q", got)
	}
	if _, err := zinc.ParseData("n = 3; n = 4;"); err == nil {
		t.Fatal("duplicate key accepted")
	}
}
