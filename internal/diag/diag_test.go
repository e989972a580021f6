package diag

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"zinc/internal/source"
)

func TestCodeID(t *testing.T) {
	cases := map[Code]string{
		LexBadEscape:       "LEX1005",
		SynUnexpectedToken: "SYN2001",
		FmtDroppedComment:  "FMT3001",
		IOLoadFileError:    "IO4001",
		ProjBadManifest:    "PRJ5001",
		Code(9999):         "E0000",
	}
	for c, want := range cases {
		if got := c.ID(); got != want {
			t.Errorf("Code(%d).ID() = %q, want %q", c, got, want)
		}
	}
	if Code(1234).Title() != "Unknown error" {
		t.Errorf("unexpected title fallback %q", Code(1234).Title())
	}
}

func TestBagLimitAndDropped(t *testing.T) {
	b := NewBag(2)
	for i := 0; i < 4; i++ {
		b.Add(NewError(SynUnexpectedToken, source.Span{Start: uint32(i)}, "x"))
	}
	if b.Len() != 2 || b.Dropped() != 2 {
		t.Fatalf("len=%d dropped=%d, want 2/2", b.Len(), b.Dropped())
	}
	if !b.HasErrors() {
		t.Fatalf("expected errors")
	}

	unbounded := NewBag(0)
	for i := 0; i < 100; i++ {
		unbounded.Add(New(SevWarning, LexInfo, source.Span{}, "w"))
	}
	if unbounded.Len() != 100 || unbounded.HasErrors() {
		t.Fatalf("unbounded bag: len=%d errors=%v", unbounded.Len(), unbounded.HasErrors())
	}
	if _, ok := unbounded.First(); ok {
		t.Fatalf("First() found an error in a warnings-only bag")
	}
}

func TestBagSortDedup(t *testing.T) {
	b := NewBag(0)
	b.Add(NewError(SynExpectSemicolon, source.Span{Start: 5, End: 6}, "b"))
	b.Add(NewError(LexBadNumber, source.Span{Start: 1, End: 2}, "a"))
	b.Add(NewError(SynExpectSemicolon, source.Span{Start: 5, End: 6}, "dup"))
	b.Sort()
	b.Dedup()
	items := b.Items()
	if len(items) != 2 {
		t.Fatalf("want 2 items after dedup, got %d", len(items))
	}
	if items[0].Code != LexBadNumber || items[1].Message != "b" {
		t.Fatalf("unexpected order: %+v", items)
	}
}

func TestReporters(t *testing.T) {
	b1, b2 := NewBag(0), NewBag(0)
	r := NewDedupReporter(MultiReporter{BagReporter{Bag: b1}, nil, BagReporter{Bag: b2}})
	sp := source.Span{Start: 3, End: 4}
	ReportError(r, LexUnknownChar, sp, "unknown character '#'").WithNote(sp, "here").Emit()
	ReportError(r, LexUnknownChar, sp, "unknown character '#'").Emit()
	NopReporter{}.Report(LexInfo, SevInfo, sp, "ignored", nil, nil)
	if b1.Len() != 1 || b2.Len() != 1 {
		t.Fatalf("fan-out/dedup failed: %d %d", b1.Len(), b2.Len())
	}
	if len(b1.Items()[0].Notes) != 1 {
		t.Fatalf("note lost")
	}
}

func TestFormatShort(t *testing.T) {
	fs := source.NewFileSet()
	fs.SetBaseDir("/workspace")
	id := fs.AddVirtual("/workspace/models/m.mzn", []byte("var int: x;\nconstraint x > ;\n"))
	diags := []Diagnostic{
		NewError(SynExpectExpression, source.Span{File: id, Start: 27, End: 28}, "expected expression\nfound ';'").
			WithNote(source.Span{File: id, Start: 0, End: 3}, "declared here"),
	}
	want := "error SYN2004 models/m.mzn:2:16 expected expression found ';'\n" +
		"note SYN2004 models/m.mzn:1:1 declared here"
	if got := FormatShort(diags, fs, true); got != want {
		t.Fatalf("FormatShort:\nwant %q\ngot  %q", want, got)
	}
}

func TestInsertFix(t *testing.T) {
	fix := InsertFix(source.Span{File: 2, Start: 7, End: 9}, ";")
	want := Fix{
		Title: "insert ';'",
		Edits: []FixEdit{{Span: source.Span{File: 2, Start: 7, End: 7}, NewText: ";"}},
	}
	if diff := cmp.Diff(want, fix); diff != "" {
		t.Fatalf("InsertFix mismatch (-want +got):\n%s", diff)
	}
	for sev, label := range map[Severity]string{SevError: "error", SevWarning: "warning", SevInfo: "info"} {
		if sev.Label() != label {
			t.Errorf("%v.Label() = %q, want %q", sev, sev.Label(), label)
		}
	}
}
