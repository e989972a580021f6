package driver

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"zinc/internal/diag"
	"zinc/internal/format"
	"zinc/internal/source"
	"zinc/internal/trace"
)

// FormatOptions drive FormatPaths.
type FormatOptions struct {
	Options
	// Check reports files that would change without writing them.
	Check bool
	// Stdout keeps the output in FormatResult.Formatted instead of writing files.
	Stdout bool
	Write  format.Options
	// Cache may be nil.
	Cache *DiskCache
}

// FormatResult is the outcome for one file.
type FormatResult struct {
	Path   string
	FileID source.FileID
	Kind   Kind
	// Changed is true when the output differs from the bytes on disk.
	Changed bool
	Cached  bool
	// Formatted holds the output when FormatOptions.Stdout is set.
	Formatted []byte
	Bag       *diag.Bag
	Err       error
}

// FormatPaths formats every path in parallel: cache lookup, parse, write,
// round-trip verification, cache store and finally the file write. Results
// keep the order of paths; the returned error is set only on cancellation.
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) (*source.FileSet, []FormatResult, error) {
	sp, ctx := trace.Start(ctx, trace.ScopeDriver, "fmt")
	defer sp.End("")

	fs := source.NewFileSet()
	files := loadAll(fs, paths, opts.Options, source.NormalizeLayout)
	results := make([]FormatResult, len(files))
	err := forEach(ctx, len(files), opts.Jobs, func(ctx context.Context, i int) {
		results[i] = formatOne(ctx, fs, files[i], opts)
	})

	sum := Summarize(results)
	sp.WithExtra("files", strconv.Itoa(sum.Files)).
		WithExtra("changed", strconv.Itoa(sum.Changed)).
		WithExtra("cached", strconv.Itoa(sum.Cached))
	return fs, results, err
}

func formatOne(ctx context.Context, fs *source.FileSet, l loaded, opts FormatOptions) FormatResult {
	res := FormatResult{Path: l.path, FileID: l.id, Kind: l.kind, Bag: l.bag, Err: l.err}
	fail := func(stage Stage, err error) FormatResult {
		res.Err = err
		opts.emit(Event{File: l.path, Stage: stage, Status: StatusError})
		return res
	}
	if l.err != nil {
		return fail(StageQueued, l.err)
	}
	file := fs.Get(l.id)
	span := source.Span{File: l.id}

	key := Key(file.Content, l.kind, opts.KeepComments, opts.Write)
	var out []byte
	if opts.Cache != nil {
		opts.emit(Event{File: l.path, Stage: StageCache, Status: StatusWorking})
		var payload CachePayload
		begin := time.Now()
		hit, err := opts.Cache.Get(key, &payload)
		opts.Timer.Add("cache", time.Since(begin))
		switch {
		case err != nil:
			diag.ReportWarning(diag.BagReporter{Bag: l.bag}, diag.IOCacheError, span, err.Error()).Emit()
		case hit:
			out = payload.Output
			res.Cached = true
			trace.Point(ctx, trace.ScopeFile, l.path, "cache hit")
		}
	}

	if out == nil {
		opts.emit(Event{File: l.path, Stage: StageParse, Status: StatusWorking})
		m, d, err := parseFile(ctx, file, l.kind, opts.Options, l.bag)
		if err != nil {
			return fail(StageParse, err)
		}

		opts.emit(Event{File: l.path, Stage: StageWrite, Status: StatusWorking})
		var text string
		begin := time.Now()
		if d != nil {
			text = format.WriteData(d, opts.Write)
		} else {
			text = format.WriteModel(m, opts.Write)
		}
		opts.Timer.Add("write", time.Since(begin))

		opts.emit(Event{File: l.path, Stage: StageVerify, Status: StatusWorking})
		begin = time.Now()
		if d != nil {
			err = format.VerifyData(l.path, d, text)
		} else {
			err = format.VerifyModel(l.path, m, text, opts.Write)
		}
		opts.Timer.Add("verify", time.Since(begin))
		if err != nil {
			return fail(StageVerify, err)
		}
		// minify пишет без комментариев намеренно
		if opts.KeepComments && !opts.Write.Minify {
			if lost := format.LostComments(file, text); len(lost) > 0 {
				b := diag.ReportError(diag.BagReporter{Bag: l.bag}, diag.FmtDroppedComment, lost[0].Span,
					fmt.Sprintf("formatting would drop %d comment(s); comments are kept only before items and at the end", len(lost)))
				for _, c := range lost[1:] {
					b.WithNote(c.Span, "dropped as well")
				}
				b.Emit()
				return fail(StageVerify, format.ErrCommentsDropped)
			}
		}
		out = []byte(text)

		if opts.Cache != nil {
			if err := opts.Cache.Put(key, &CachePayload{Path: l.path, Output: out}); err != nil {
				diag.ReportWarning(diag.BagReporter{Bag: l.bag}, diag.IOCacheError, span,
					fmt.Sprintf("cache store: %v", err)).Emit()
			}
		}
	}

	// сравниваем с сырыми байтами: BOM и CRLF тоже считаются изменением
	res.Changed = !bytes.Equal(out, l.raw)
	switch {
	case opts.Stdout:
		res.Formatted = out
	case opts.Check:
	case res.Changed:
		if err := writeFile(l.path, out); err != nil {
			diag.ReportError(diag.BagReporter{Bag: l.bag}, diag.IOWriteFileError, span,
				fmt.Sprintf("cannot write %s: %v", l.path, err)).Emit()
			return fail(StageWrite, err)
		}
	}

	status := StatusDone
	if !res.Changed {
		status = StatusUnchanged
	}
	opts.emit(Event{File: l.path, Stage: StageWrite, Status: status})
	return res
}

// writeFile replaces path keeping its permissions.
func writeFile(path string, data []byte) error {
	perm := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	return os.WriteFile(path, data, perm)
}

// Summary counts the outcomes of a FormatPaths run.
type Summary struct {
	Files   int
	Changed int
	Cached  int
	Failed  int
}

// Summarize folds results into a Summary.
func Summarize(results []FormatResult) Summary {
	s := Summary{Files: len(results)}
	for i := range results {
		r := &results[i]
		switch {
		case r.Err != nil:
			s.Failed++
		case r.Changed:
			s.Changed++
		}
		if r.Cached {
			s.Cached++
		}
	}
	return s
}
