package driver

import (
	"context"
	"strconv"
	"time"

	"zinc/internal/ast"
	"zinc/internal/diag"
	"zinc/internal/parser"
	"zinc/internal/source"
	"zinc/internal/trace"
)

// ParseResult is the outcome for one file. Exactly one of Model and Data is
// set on success; Err is the load or parse error otherwise.
type ParseResult struct {
	Path   string
	FileID source.FileID
	Kind   Kind
	Model  *ast.Model
	Data   *ast.Data
	Bag    *diag.Bag
	Err    error
}

// ParsePaths parses every path in parallel. Results keep the order of paths.
// The returned error is set only when ctx is cancelled.
func ParsePaths(ctx context.Context, paths []string, opts Options) (*source.FileSet, []ParseResult, error) {
	sp, ctx := trace.Start(ctx, trace.ScopeDriver, "parse")
	defer sp.End("")

	fs := source.NewFileSet()
	files := loadAll(fs, paths, opts, source.Normalize)
	results := make([]ParseResult, len(files))
	err := forEach(ctx, len(files), opts.Jobs, func(ctx context.Context, i int) {
		l := files[i]
		res := ParseResult{Path: l.path, FileID: l.id, Kind: l.kind, Bag: l.bag, Err: l.err}
		if l.err == nil {
			opts.emit(Event{File: l.path, Stage: StageParse, Status: StatusWorking})
			res.Model, res.Data, res.Err = parseFile(ctx, fs.Get(l.id), l.kind, opts, l.bag)
		}
		status := StatusDone
		if res.Err != nil {
			status = StatusError
		}
		opts.emit(Event{File: l.path, Stage: StageParse, Status: status})
		results[i] = res
	})
	sp.WithExtra("files", strconv.Itoa(len(files)))
	return fs, results, err
}

func parseFile(ctx context.Context, f *source.File, kind Kind, opts Options, bag *diag.Bag) (m *ast.Model, d *ast.Data, err error) {
	fileSpan, ctx := trace.Start(ctx, trace.ScopeFile, f.Path)
	defer fileSpan.End("")
	sp, ctx := trace.Start(ctx, trace.ScopePass, "parse")

	popts := parser.Options{Reporter: diag.NewDedupReporter(diag.BagReporter{Bag: bag}), KeepComments: opts.KeepComments}
	begin := time.Now()
	if kind == KindData {
		d, err = parser.ParseData(f, popts)
	} else {
		m, err = parser.ParseModel(f, popts)
	}
	opts.Timer.Add("parse", time.Since(begin))
	if err != nil {
		sp.End("error")
		return nil, nil, err
	}

	switch {
	case m != nil:
		for _, it := range m.Items {
			trace.Point(ctx, trace.ScopeItem, ast.Keyword(it), "")
		}
		sp.WithExtra("items", strconv.Itoa(len(m.Items)))
	case d != nil:
		for name := range d.All() {
			trace.Point(ctx, trace.ScopeItem, "assign", name)
		}
		sp.WithExtra("items", strconv.Itoa(d.Len()))
	}
	sp.End("")
	return m, d, nil
}
