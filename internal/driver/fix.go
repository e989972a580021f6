package driver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"zinc/internal/diag"
	"zinc/internal/fix"
	"zinc/internal/source"
	"zinc/internal/trace"
)

// DefaultFixRounds bounds the parse/fix loop of a single file.
const DefaultFixRounds = 32

// FixOptions drive FixPaths.
type FixOptions struct {
	Options
	// DryRun computes the fixed text without writing it.
	DryRun bool
	// MaxRounds caps reparses per file; 0 means DefaultFixRounds.
	MaxRounds int
}

// FixResult is the outcome for one file. FileSet holds the last parsed
// version of the file, which Bag refers to.
type FixResult struct {
	Path    string
	Applied []fix.AppliedFix
	// Clean is true when the final text parses without errors.
	Clean   bool
	Changed bool
	Fixed   []byte
	FileSet *source.FileSet
	Bag     *diag.Bag
	Err     error
}

// FixPaths parses every file, applies the suggested fixes of the syntax error
// and parses again until the file is clean or no fix applies. The parser
// stops at the first error, so each round repairs one place.
func FixPaths(ctx context.Context, paths []string, opts FixOptions) ([]FixResult, error) {
	sp, ctx := trace.Start(ctx, trace.ScopeDriver, "fix")
	defer sp.End("")

	rounds := opts.MaxRounds
	if rounds <= 0 {
		rounds = DefaultFixRounds
	}
	results := make([]FixResult, len(paths))
	err := forEach(ctx, len(paths), opts.Jobs, func(ctx context.Context, i int) {
		results[i] = fixOne(ctx, paths[i], rounds, opts)
	})
	return results, err
}

func fixOne(ctx context.Context, path string, rounds int, opts FixOptions) FixResult {
	fs := source.NewFileSet()
	res := FixResult{Path: path, FileSet: fs}
	files := loadAll(fs, []string{path}, opts.Options, source.NormalizeLayout)
	l := files[0]
	res.Bag = l.bag
	if l.err != nil {
		res.Err = l.err
		return res
	}

	content := fs.Get(l.id).Content
	id := l.id
	for round := 0; ; round++ {
		bag := diag.NewBag(opts.MaxDiagnostics)
		_, _, err := parseFile(ctx, fs.Get(id), l.kind, opts.Options, bag)
		res.Bag = bag
		if err == nil {
			res.Clean = true
			break
		}
		if round == rounds {
			break
		}
		begin := time.Now()
		out, ferr := fix.Apply(id, content, bag.Items())
		opts.Timer.Add("fix", time.Since(begin))
		if errors.Is(ferr, fix.ErrNoFixes) {
			break
		}
		if ferr != nil {
			res.Err = ferr
			return res
		}
		res.Applied = append(res.Applied, out.Applied...)
		content = out.Content
		id = fs.AddVirtual(path, content)
	}

	res.Changed = len(res.Applied) > 0
	res.Fixed = content
	if res.Changed && !opts.DryRun {
		if err := writeFile(path, content); err != nil {
			diag.ReportError(diag.BagReporter{Bag: res.Bag}, diag.IOWriteFileError, source.Span{File: id},
				fmt.Sprintf("cannot write %s: %v", path, err)).Emit()
			res.Err = err
		}
	}
	if !res.Clean && res.Err == nil {
		res.Err = fmt.Errorf("%s: syntax errors remain", path)
	}
	return res
}
