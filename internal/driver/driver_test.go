package driver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"zinc/internal/diag"
	"zinc/internal/format"
	"zinc/internal/observ"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestCollectFiles(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"b.mzn":          "var int: x;\n",
		"a.dzn":          "n = 3;\n",
		"notes.txt":      "skip",
		"sub/c.mzn":      "solve satisfy;\n",
		".hidden/d.mzn":  "solve satisfy;\n",
		"explicit.model": "solve satisfy;\n",
	})
	got, err := CollectFiles(context.Background(), []string{
		dir,
		filepath.Join(dir, "explicit.model"),
		filepath.Join(dir, "b.mzn"),
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		filepath.Join(dir, "a.dzn"),
		filepath.Join(dir, "b.mzn"),
		filepath.Join(dir, "explicit.model"),
		filepath.Join(dir, "sub", "c.mzn"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("files mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectFilesMissing(t *testing.T) {
	_, err := CollectFiles(context.Background(), []string{filepath.Join(t.TempDir(), "nope.mzn")})
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v", err)
	}
}

func TestKeyDependsOnInputs(t *testing.T) {
	src := []byte("var int: x;")
	base := Key(src, KindModel, false, format.Options{})
	variants := map[string]CacheKey{
		"content":  Key([]byte("var int: y;"), KindModel, false, format.Options{}),
		"kind":     Key(src, KindData, false, format.Options{}),
		"comments": Key(src, KindModel, true, format.Options{}),
		"minify":   Key(src, KindModel, false, format.Options{Minify: true}),
		"prettify": Key(src, KindModel, false, format.Options{Prettify: true}),
		"indent":   Key(src, KindModel, false, format.Options{Indent: 4}),
	}
	for name, k := range variants {
		if k == base {
			t.Errorf("%s does not change the key", name)
		}
	}
	if Key(src, KindModel, false, format.Options{}) != base {
		t.Fatal("key is not deterministic")
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	c, err := OpenDiskCache(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}
	key := Key([]byte("x = 1;"), KindData, false, format.Options{})
	var got CachePayload
	if hit, err := c.Get(key, &got); err != nil || hit {
		t.Fatalf("empty cache: hit=%v err=%v", hit, err)
	}
	if err := c.Put(key, &CachePayload{Path: "a.dzn", Output: []byte("x = 1;\n")}); err != nil {
		t.Fatal(err)
	}
	hit, err := c.Get(key, &got)
	if err != nil || !hit {
		t.Fatalf("hit=%v err=%v", hit, err)
	}
	want := CachePayload{Schema: diskCacheSchemaVersion, Path: "a.dzn", Output: []byte("x = 1;\n")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}

	if err := c.DropAll(); err != nil {
		t.Fatal(err)
	}
	if hit, _ := c.Get(key, &got); hit {
		t.Fatal("entry survived DropAll")
	}
}

func TestParsePaths(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"ok.mzn":  "int: n = 3;\nconstraint n > 0;\n",
		"d.dzn":   "n = 3;\nxs = [1, 2];\n",
		"bad.mzn": "constraint 1 < 2 < 3;\n",
	})
	paths := []string{
		filepath.Join(dir, "ok.mzn"),
		filepath.Join(dir, "d.dzn"),
		filepath.Join(dir, "bad.mzn"),
		filepath.Join(dir, "missing.mzn"),
	}
	timer := observ.NewTimer()
	fs, results, err := ParsePaths(context.Background(), paths, Options{Jobs: 2, Timer: timer})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 4 {
		t.Fatalf("got %d results", len(results))
	}
	if r := results[0]; r.Err != nil || r.Model == nil || len(r.Model.Items) != 2 {
		t.Fatalf("ok.mzn: %+v", r)
	}
	if r := results[1]; r.Err != nil || r.Data == nil || r.Data.Len() != 2 || r.Kind != KindData {
		t.Fatalf("d.dzn: %+v", r)
	}
	if r := results[2]; r.Err == nil || r.Bag.Len() != 1 {
		t.Fatalf("bad.mzn: err=%v diags=%d", r.Err, r.Bag.Len())
	}
	r := results[3]
	first, ok := r.Bag.First()
	if r.Err == nil || !ok || first.Code != diag.IOLoadFileError {
		t.Fatalf("missing.mzn: err=%v diag=%+v", r.Err, first)
	}
	if f := fs.Get(first.Primary.File); f == nil || filepath.Base(f.Path) != "missing.mzn" {
		t.Fatalf("load diagnostic points at %+v", f)
	}
	if rep := timer.Report(); len(rep.Phases) != 1 || rep.Phases[0].Count != 3 {
		t.Fatalf("timer report %+v", rep)
	}
}

const messy = "int:n=3;constraint n>0;\nsolve satisfy;"

func TestFormatCheckDoesNotWrite(t *testing.T) {
	dir := writeFiles(t, map[string]string{"m.mzn": messy})
	path := filepath.Join(dir, "m.mzn")

	_, results, err := FormatPaths(context.Background(), []string{path}, FormatOptions{Check: true})
	if err != nil {
		t.Fatal(err)
	}
	if r := results[0]; r.Err != nil || !r.Changed {
		t.Fatalf("check result %+v", r)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != messy {
		t.Fatalf("check mode rewrote the file: %q", data)
	}
}

func TestFormatWritesAndIsIdempotent(t *testing.T) {
	dir := writeFiles(t, map[string]string{"m.mzn": messy})
	path := filepath.Join(dir, "m.mzn")

	_, results, err := FormatPaths(context.Background(), []string{path}, FormatOptions{})
	if err != nil || results[0].Err != nil || !results[0].Changed {
		t.Fatalf("first run: %v %+v", err, results[0])
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(first) == messy {
		t.Fatal("file was not rewritten")
	}

	_, results, err = FormatPaths(context.Background(), []string{path}, FormatOptions{})
	if err != nil || results[0].Err != nil || results[0].Changed {
		t.Fatalf("second run: %v %+v", err, results[0])
	}
}

func TestFormatCacheHit(t *testing.T) {
	dir := writeFiles(t, map[string]string{"m.mzn": messy})
	path := filepath.Join(dir, "m.mzn")
	cache, err := OpenDiskCache(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}
	opts := FormatOptions{Stdout: true, Cache: cache}

	_, cold, err := FormatPaths(context.Background(), []string{path}, opts)
	if err != nil || cold[0].Err != nil || cold[0].Cached {
		t.Fatalf("cold run: %v %+v", err, cold[0])
	}
	_, warm, err := FormatPaths(context.Background(), []string{path}, opts)
	if err != nil || warm[0].Err != nil || !warm[0].Cached {
		t.Fatalf("warm run: %v %+v", err, warm[0])
	}
	if diff := cmp.Diff(string(cold[0].Formatted), string(warm[0].Formatted)); diff != "" {
		t.Fatalf("cached output differs (-cold +warm):\n%s", diff)
	}
	if data, _ := os.ReadFile(path); string(data) != messy {
		t.Fatal("stdout mode rewrote the file")
	}
}

func TestFormatCacheSeparatesCommentModes(t *testing.T) {
	const src = "% keep me\nint: n = 3;\n"
	dir := writeFiles(t, map[string]string{"m.mzn": src})
	path := filepath.Join(dir, "m.mzn")
	cache, err := OpenDiskCache(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}

	_, stripped, err := FormatPaths(context.Background(), []string{path}, FormatOptions{
		Options: Options{KeepComments: false},
		Stdout:  true,
		Cache:   cache,
	})
	if err != nil || stripped[0].Err != nil {
		t.Fatalf("comment-free run: %v %+v", err, stripped[0])
	}
	if got := string(stripped[0].Formatted); got != "int: n = 3;\n" {
		t.Fatalf("comment-free output %q", got)
	}

	_, kept, err := FormatPaths(context.Background(), []string{path}, FormatOptions{
		Options: Options{KeepComments: true},
		Cache:   cache,
	})
	if err != nil || kept[0].Err != nil {
		t.Fatalf("keep-comments run: %v %+v", err, kept[0])
	}
	if kept[0].Cached {
		t.Fatal("keep-comments run reused output cached without comments")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != src {
		t.Fatalf("file after keep-comments run = %q, want %q", data, src)
	}
}

func TestFormatRefusesToDropComments(t *testing.T) {
	const src = "var 0..9: x;\nconstraint x > 0 % must be positive\n  /\\ x < 10;\n"
	dir := writeFiles(t, map[string]string{"m.mzn": src})
	path := filepath.Join(dir, "m.mzn")

	_, results, err := FormatPaths(context.Background(), []string{path}, FormatOptions{
		Options: Options{KeepComments: true},
	})
	if err != nil {
		t.Fatal(err)
	}
	res := results[0]
	if !errors.Is(res.Err, format.ErrCommentsDropped) {
		t.Fatalf("Err = %v, want ErrCommentsDropped", res.Err)
	}
	d, ok := res.Bag.First()
	if !ok || d.Code != diag.FmtDroppedComment {
		t.Fatalf("diagnostics %+v", res.Bag.Items())
	}
	if data, _ := os.ReadFile(path); string(data) != src {
		t.Fatalf("file rewritten to %q", data)
	}

	// minify strips comments on request
	_, results, err = FormatPaths(context.Background(), []string{path}, FormatOptions{
		Options: Options{KeepComments: true},
		Stdout:  true,
		Write:   format.Options{Minify: true},
	})
	if err != nil || results[0].Err != nil {
		t.Fatalf("minify: %v %+v", err, results[0])
	}
}

func TestFormatKeepsDataComments(t *testing.T) {
	dir := writeFiles(t, map[string]string{"d.dzn": "% sizes\nn=4;\ncapacity=5; % done\n"})
	_, results, err := FormatPaths(context.Background(), []string{filepath.Join(dir, "d.dzn")}, FormatOptions{
		Options: Options{KeepComments: true},
		Stdout:  true,
	})
	if err != nil || results[0].Err != nil {
		t.Fatalf("%v %+v", err, results[0])
	}
	want := "% sizes\nn = 4;\ncapacity = 5;\n% done\n"
	if got := string(results[0].Formatted); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFormatKeepsDecomposedText(t *testing.T) {
	// "e" + combining acute; NFC would fold it into a single code point
	const src = "output [\"caf\u0065\u0301\"];\n"
	dir := writeFiles(t, map[string]string{"m.mzn": src})
	path := filepath.Join(dir, "m.mzn")
	_, results, err := FormatPaths(context.Background(), []string{path}, FormatOptions{})
	if err != nil || results[0].Err != nil {
		t.Fatalf("%v %+v", err, results[0])
	}
	if results[0].Changed {
		t.Fatal("formatted file reported as changed")
	}
	if data, _ := os.ReadFile(path); string(data) != src {
		t.Fatalf("file = %q, want %q", data, src)
	}
}

func TestFormatEventsAndSummary(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.mzn": messy,
		"b.mzn": "constraint 1 < 2 < 3;\n",
	})
	paths := []string{filepath.Join(dir, "a.mzn"), filepath.Join(dir, "b.mzn")}
	events := make(chan Event, 64)
	_, results, err := FormatPaths(context.Background(), paths, FormatOptions{
		Options: Options{Events: events},
		Check:   true,
	})
	close(events)
	if err != nil {
		t.Fatal(err)
	}

	final := map[string]Status{}
	for ev := range events {
		final[filepath.Base(ev.File)] = ev.Status
	}
	want := map[string]Status{"a.mzn": StatusDone, "b.mzn": StatusError}
	if diff := cmp.Diff(want, final); diff != "" {
		t.Fatalf("final statuses (-want +got):\n%s", diff)
	}
	if got := Summarize(results); got != (Summary{Files: 2, Changed: 1, Failed: 1}) {
		t.Fatalf("summary %+v", got)
	}
}

func TestProgressSnapshot(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.mzn": messy,
		"b.mzn": "constraint 1 < 2 < 3;\n",
	})
	paths := []string{filepath.Join(dir, "a.mzn"), filepath.Join(dir, "b.mzn")}
	progress := NewProgress()
	if _, _, err := FormatPaths(context.Background(), paths, FormatOptions{
		Options: Options{Progress: progress},
		Check:   true,
	}); err != nil {
		t.Fatal(err)
	}
	want := map[string]string{"files": "2/2", "failed": "1"}
	if diff := cmp.Diff(want, progress.Snapshot()); diff != "" {
		t.Fatalf("snapshot mismatch (-want +got):\n%s", diff)
	}

	mid := NewProgress()
	mid.observe(Event{File: "x.mzn", Stage: StageQueued, Status: StatusQueued})
	mid.observe(Event{File: "x.mzn", Stage: StageVerify, Status: StatusWorking})
	if got := mid.Snapshot()["active"]; got != "x.mzn (verifying)" {
		t.Fatalf("active = %q", got)
	}
}

func TestTokenize(t *testing.T) {
	dir := writeFiles(t, map[string]string{"m.mzn": "% c\nvar int: x;"})
	res, err := Tokenize(filepath.Join(dir, "m.mzn"), 10, true)
	if err != nil {
		t.Fatal(err)
	}
	if n := len(res.Tokens); n != 6 {
		t.Fatalf("got %d tokens", n)
	}
	if len(res.Tokens[0].Leading) != 1 {
		t.Fatalf("comment not attached: %+v", res.Tokens[0])
	}
	if _, err := Tokenize(filepath.Join(dir, "none.mzn"), 10, false); err == nil {
		t.Fatal("missing file tokenized")
	}
}

func TestCancelledContext(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.mzn": messy})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := ParsePaths(ctx, []string{filepath.Join(dir, "a.mzn")}, Options{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v", err)
	}
}

func TestFormatTestdata(t *testing.T) {
	files, err := CollectFiles(context.Background(), []string{filepath.Join("..", "..", "testdata")})
	if err != nil {
		t.Fatal(err)
	}
	if len(files) < 3 {
		t.Fatalf("testdata has %d files", len(files))
	}
	for _, opt := range []format.Options{{}, {Minify: true}, {Prettify: true}} {
		fs, results, err := FormatPaths(context.Background(), files, FormatOptions{
			Options: Options{KeepComments: true},
			Stdout:  true,
			Write:   opt,
		})
		if err != nil {
			t.Fatal(err)
		}
		for _, r := range results {
			if r.Err != nil {
				t.Errorf("%s %+v: %v (%d diagnostics in %d files)", r.Path, opt, r.Err, r.Bag.Len(), fs.Len())
			}
		}
	}
}

func TestGrammarOverride(t *testing.T) {
	dir := writeFiles(t, map[string]string{"values.txt": "n = 3;\n"})
	_, results, err := ParsePaths(context.Background(), []string{filepath.Join(dir, "values.txt")},
		Options{Grammar: KindData})
	if err != nil {
		t.Fatal(err)
	}
	if r := results[0]; r.Err != nil || r.Data == nil || r.Kind != KindData {
		t.Fatalf("result %+v", r)
	}
}

func TestFixPathsInsertsSemicolons(t *testing.T) {
	const broken = "int: n = 3\nconstraint n > 0\nsolve satisfy;\n"
	dir := writeFiles(t, map[string]string{
		"m.mzn":   broken,
		"bad.mzn": "constraint 1 < 2 < 3;\n",
	})
	paths := []string{filepath.Join(dir, "m.mzn"), filepath.Join(dir, "bad.mzn")}

	results, err := FixPaths(context.Background(), paths, FixOptions{DryRun: true})
	if err != nil {
		t.Fatal(err)
	}
	r := results[0]
	if r.Err != nil || !r.Clean || !r.Changed || len(r.Applied) != 2 {
		t.Fatalf("m.mzn: %+v", r)
	}
	if got, want := string(r.Fixed), "int: n = 3;\nconstraint n > 0;\nsolve satisfy;\n"; got != want {
		t.Fatalf("fixed %q, want %q", got, want)
	}
	if data, _ := os.ReadFile(paths[0]); string(data) != broken {
		t.Fatal("dry run wrote the file")
	}
	if r := results[1]; r.Err == nil || r.Clean || r.Changed {
		t.Fatalf("bad.mzn: %+v", r)
	}

	results, err = FixPaths(context.Background(), paths[:1], FixOptions{})
	if err != nil || results[0].Err != nil {
		t.Fatalf("write run: %v %+v", err, results[0])
	}
	if data, _ := os.ReadFile(paths[0]); string(data) != string(results[0].Fixed) {
		t.Fatalf("file not rewritten: %q", data)
	}
}
