package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("model.mzn", []byte("int: n = 3;"), 0)
	id2 := fs.Add("model.mzn", []byte("int: n = 4;"), 0)
	if id1 == id2 {
		t.Fatalf("Add must always allocate a fresh FileID")
	}

	latest, ok := fs.GetLatest("model.mzn")
	if !ok || latest != id2 {
		t.Fatalf("GetLatest = %d,%v; want %d,true", latest, ok, id2)
	}
	if got := string(fs.Get(id1).Content); got != "int: n = 3;" {
		t.Errorf("old version lost, got %q", got)
	}
	if fs.Len() != 2 {
		t.Errorf("Len = %d, want 2", fs.Len())
	}
	if fs.Get(FileID(42)) != nil {
		t.Errorf("Get on unknown id must return nil")
	}
}

func TestResolveAndGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("m.mzn", []byte("var int: x;\nconstraint x > 0;\n"))
	f := fs.Get(id)

	start, end := fs.Resolve(Span{File: id, Start: 12, End: 22})
	if start != (LineCol{Line: 2, Col: 1}) || end != (LineCol{Line: 2, Col: 11}) {
		t.Fatalf("Resolve = %+v..%+v", start, end)
	}
	if got := f.GetLine(2); got != "constraint x > 0;" {
		t.Errorf("GetLine(2) = %q", got)
	}
	if got := f.GetLine(9); got != "" {
		t.Errorf("GetLine past end = %q, want empty", got)
	}
	if f.Flags&FileVirtual == 0 {
		t.Errorf("virtual flag missing")
	}
}

func TestLoadNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crlf.mzn")
	if err := os.WriteFile(path, []byte("\xEF\xBB\xBFint: x = 1;\r\nsolve satisfy;\r\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSetWithBase(dir)
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "int: x = 1;\nsolve satisfy;\n" {
		t.Fatalf("content not normalized: %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Errorf("flags = %b", f.Flags)
	}
	if got := f.FormatPath("relative", dir); got != "crlf.mzn" {
		t.Errorf("relative path = %q", got)
	}
	if got := f.FormatPath("basename", ""); got != "crlf.mzn" {
		t.Errorf("basename = %q", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	fs := NewFileSet()
	if _, err := fs.Load(filepath.Join(t.TempDir(), "nope.mzn")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 10, End: 20}
	b := Span{File: 1, Start: 5, End: 12}
	if got := a.Cover(b); got != (Span{File: 1, Start: 5, End: 20}) {
		t.Errorf("Cover = %v", got)
	}
	if got := a.Cover(Span{File: 2, Start: 0, End: 100}); got != a {
		t.Errorf("cross-file Cover must keep receiver, got %v", got)
	}
	if !a.Contains(10) || a.Contains(20) {
		t.Errorf("Contains is half-open")
	}
	if a.Len() != 10 || a.Empty() {
		t.Errorf("Len/Empty wrong")
	}
}
