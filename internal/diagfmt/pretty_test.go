package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"zinc/internal/diag"
	"zinc/internal/parser"
	"zinc/internal/source"
)

// TestPathModes проверяет различные режимы форматирования путей
func TestPathModes(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("string: s = \"unterminated\n")
	fileID := fs.AddVirtual("/home/user/project/models/test.mzn", content)
	fs.SetBaseDir("/home/user/project")

	bag := diag.NewBag(10)
	bag.Add(diag.New(
		diag.SevError,
		diag.LexUnterminatedString,
		source.Span{File: fileID, Start: 12, End: 25},
		"unterminated string literal",
	))

	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{"Absolute path", PathModeAbsolute, "/home/user/project/models/test.mzn:1:13"},
		{"Relative path", PathModeRelative, "models/test.mzn:1:13"},
		{"Basename only", PathModeBasename, "test.mzn:1:13"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{PathMode: tt.mode})
			output := buf.String()

			if !strings.Contains(output, tt.contains) {
				t.Errorf("Expected output to contain %q, got:\n%s", tt.contains, output)
			}
			if !strings.Contains(output, "ERROR LEX1002: unterminated string literal") {
				t.Errorf("Expected severity, code and message, got:\n%s", output)
			}
		})
	}
}

// TestPathModeAuto проверяет авто-режим выбора пути
func TestPathModeAuto(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"Short path - as is", "test.mzn", "test.mzn:1:1"},
		{"Long absolute path - basename", "/very/long/absolute/path/to/some/nested/directory/file.mzn", "file.mzn:1:1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := source.NewFileSet()
			fileID := fs.AddVirtual(tt.path, []byte("int: x = 42;\n"))
			bag := diag.NewBag(10)
			bag.Add(diag.New(diag.SevWarning, diag.LexUnknownChar, source.Span{File: fileID, Start: 0, End: 3}, "test warning"))

			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeAuto})
			if !strings.HasPrefix(buf.String(), tt.expected) {
				t.Errorf("Expected output to start with %q, got:\n%s", tt.expected, buf.String())
			}
		})
	}
}

func TestPrettyLayout(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("m.mzn", []byte("int: n = 3\nconstraint n > 0;\n"))

	d := diag.New(diag.SevError, diag.SynExpectSemicolon,
		source.Span{File: fileID, Start: 11, End: 21},
		"expected ';' after item, found 'constraint'")
	d = d.WithFix("insert ';'", diag.FixEdit{Span: source.Span{File: fileID, Start: 10, End: 10}, NewText: ";"})
	bag := diag.NewBag(4)
	bag.Add(d)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{
		Context:     1,
		PathMode:    PathModeBasename,
		ShowFixes:   true,
		ShowPreview: true,
	})

	want := "m.mzn:2:1: ERROR SYN2003: expected ';' after item, found 'constraint'\n" +
		"1 | int: n = 3\n" +
		"2 | constraint n > 0;\n" +
		"  | ^^^^^^^^^^\n" +
		"  fix #1: insert ';'\n" +
		"    m.mzn:1:11 apply=\";\"\n" +
		"    preview:\n" +
		"      - int: n = 3\n" +
		"      + int: n = 3;\n"
	if got := buf.String(); got != want {
		t.Fatalf("Pretty output mismatch\n got:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrettyNotes(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.mzn", []byte("include \"a.mzn\" foo;\n"))

	d := diag.New(diag.SevWarning, diag.SynUnexpectedToken, source.Span{File: fileID, Start: 16, End: 19}, "unexpected token")
	d = d.WithNote(source.Span{File: fileID, Start: 8, End: 15}, "include ends here")
	bag := diag.NewBag(4)
	bag.Add(d)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename, ShowNotes: true})
	output := buf.String()
	if !strings.Contains(output, "note: test.mzn:1:9: include ends here") {
		t.Fatalf("expected note with location, got:\n%s", output)
	}
	if strings.Contains(output, "fix #") {
		t.Fatalf("fixes printed without ShowFixes:\n%s", output)
	}
}

func TestPrettyDropped(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("t.mzn", []byte("x\n"))
	bag := diag.NewBag(1)
	for range 3 {
		bag.Add(diag.New(diag.SevError, diag.SynUnexpectedToken, source.Span{File: fileID, Start: 0, End: 1}, "bad"))
	}
	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	if !strings.HasSuffix(buf.String(), "2 more diagnostic(s) not shown\n") {
		t.Fatalf("missing dropped summary:\n%s", buf.String())
	}
}

func TestPrettyColor(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("t.mzn", []byte("x\n"))
	bag := diag.NewBag(0)
	bag.Add(diag.New(diag.SevError, diag.SynUnexpectedToken, source.Span{File: fileID, Start: 0, End: 1}, "bad"))

	var plain, colored bytes.Buffer
	Pretty(&plain, bag, fs, PrettyOpts{})
	Pretty(&colored, bag, fs, PrettyOpts{Color: true})
	if strings.Contains(plain.String(), "\x1b[") {
		t.Fatalf("escape codes without Color:\n%q", plain.String())
	}
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Fatalf("no escape codes with Color:\n%q", colored.String())
	}
}

func TestCaretLine(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		start, end int
		want       string
	}{
		{"ascii", "constraint x", 11, 12, "           ^"},
		{"empty span", "x = 1", 2, 2, "  ^"},
		{"tab kept", "\tx = 1", 1, 2, "\t^"},
		{"wide runes", "s = \"日本\";", 5, 11, "     ^^^^"},
		{"clamped", "ab", 1, 99, " ^"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := caretLine(tt.line, tt.start, tt.end); got != tt.want {
				t.Fatalf("caretLine = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrettyWidthTruncates(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("t.mzn", []byte("constraint forall(i in 1..n)(x[i] > 0);\n"))
	bag := diag.NewBag(0)
	bag.Add(diag.New(diag.SevError, diag.SynUnexpectedToken, source.Span{File: fileID, Start: 0, End: 10}, "bad"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Width: 12})
	if !strings.Contains(buf.String(), "1 | constraint …\n") {
		t.Fatalf("line not truncated:\n%s", buf.String())
	}
}

func TestPrettyParserDiagnostic(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("bad.mzn", []byte("constraint x < y < z;\n"))
	bag := diag.NewBag(0)
	_, err := parser.ParseModel(fs.Get(fileID), parser.Options{Reporter: diag.BagReporter{Bag: bag}})
	if err == nil {
		t.Fatal("expected parse error")
	}

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename})
	if !strings.HasPrefix(buf.String(), "bad.mzn:1:18: ERROR SYN2010: ") {
		t.Fatalf("unexpected header:\n%s", buf.String())
	}
}
