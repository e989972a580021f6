package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRelativePathOutsideBaseFallsBackToAbsolute(t *testing.T) {
	tmp := t.TempDir()

	baseDir := filepath.Join(tmp, "base")
	otherDir := filepath.Join(tmp, "other")

	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		t.Fatalf("failed to create base dir: %v", err)
	}
	if err := os.MkdirAll(otherDir, 0o755); err != nil {
		t.Fatalf("failed to create other dir: %v", err)
	}

	target := filepath.Join(otherDir, "model.mzn")

	got, err := RelativePath(target, baseDir)
	if err != nil {
		t.Fatalf("RelativePath returned error: %v", err)
	}

	want := normalizePath(target)
	if got != want {
		t.Fatalf("expected absolute fallback %q, got %q", want, got)
	}
}

func TestRelativePathInsideBaseStaysRelative(t *testing.T) {
	tmp := t.TempDir()

	baseDir := filepath.Join(tmp, "base")
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		t.Fatalf("failed to create base dir: %v", err)
	}

	target := filepath.Join(baseDir, "nested", "model.mzn")
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		t.Fatalf("failed to create nested dir: %v", err)
	}

	got, err := RelativePath(target, baseDir)
	if err != nil {
		t.Fatalf("RelativePath returned error: %v", err)
	}

	want := normalizePath(filepath.Join("nested", "model.mzn"))
	if got != want {
		t.Fatalf("expected relative path %q, got %q", want, got)
	}
}

func TestToLineCol(t *testing.T) {
	content := []byte("int: x;\nvar 1..3: y;\n\nsolve satisfy;")
	idx := buildLineIndex(content)
	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}},
		{5, LineCol{Line: 1, Col: 6}},
		{8, LineCol{Line: 2, Col: 1}},
		{12, LineCol{Line: 2, Col: 5}},
		{7, LineCol{Line: 1, Col: 8}},
		{21, LineCol{Line: 3, Col: 1}},
		{22, LineCol{Line: 4, Col: 1}},
	}
	for _, tt := range tests {
		if got := toLineCol(idx, tt.off); got != tt.want {
			t.Errorf("toLineCol(%d) = %+v, want %+v", tt.off, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	// BOM + CRLF + decomposed "é" (e + combining acute)
	in := []byte("\xEF\xBB\xBFint: 'e\u0301';\r\n")
	out, flags := Normalize(in)
	if string(out) != "int: '\u00e9';\n" {
		t.Fatalf("unexpected normalized content %q", out)
	}
	for _, f := range []FileFlags{FileHadBOM, FileNormalizedCRLF, FileNormalizedNFC} {
		if flags&f == 0 {
			t.Errorf("flag %d not set (flags=%b)", f, flags)
		}
	}

	plain := []byte("constraint x > 0;\n")
	out, flags = Normalize(plain)
	if flags != 0 || string(out) != string(plain) {
		t.Fatalf("ASCII input must pass through untouched, got %q flags=%b", out, flags)
	}
}

func TestNormalizeLayoutKeepsCodePoints(t *testing.T) {
	in := []byte("\xEF\xBB\xBFoutput [\"e\u0301\"];\r\n")
	out, flags := NormalizeLayout(in)
	if string(out) != "output [\"e\u0301\"];\n" {
		t.Fatalf("unexpected content %q", out)
	}
	if flags != FileHadBOM|FileNormalizedCRLF {
		t.Fatalf("flags=%b", flags)
	}
}
