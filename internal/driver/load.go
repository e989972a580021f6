package driver

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"fortio.org/safecast"
	"golang.org/x/sync/errgroup"

	"zinc/internal/diag"
	"zinc/internal/observ"
	"zinc/internal/source"
)

// Options are shared by every batch operation of the driver.
type Options struct {
	// MaxDiagnostics caps each file's bag; 0 means unlimited.
	MaxDiagnostics int
	KeepComments   bool
	// Grammar overrides the extension-based choice when non-zero.
	Grammar Kind
	// Jobs limits parallel workers; 0 means GOMAXPROCS.
	Jobs uint
	// Events, when set, receives progress; it is never closed by the driver.
	Events chan<- Event
	// Progress, when set, counts the same events for the trace heartbeat.
	Progress *Progress
	Timer    *observ.Timer
}

// loaded is one input read from disk. FileSet is not safe for concurrent
// writes, so every file enters it before the workers start.
type loaded struct {
	path string
	kind Kind
	id   source.FileID
	raw  []byte
	bag  *diag.Bag
	err  error
}

// normalizer prepares raw bytes for the FileSet; see source.Normalize.
type normalizer func([]byte) ([]byte, source.FileFlags)

func loadAll(fs *source.FileSet, paths []string, opts Options, normalize normalizer) []loaded {
	out := make([]loaded, len(paths))
	for i, path := range paths {
		kind, _ := KindOf(path)
		if opts.Grammar != 0 {
			kind = opts.Grammar
		}
		l := loaded{path: path, kind: kind, bag: diag.NewBag(opts.MaxDiagnostics)}
		// #nosec G304 -- paths come from the command line
		raw, err := os.ReadFile(path)
		if err != nil {
			// пустой виртуальный файл, чтобы у диагностики было место
			l.id = fs.AddVirtual(path, nil)
			l.err = err
			diag.ReportError(diag.BagReporter{Bag: l.bag}, diag.IOLoadFileError,
				source.Span{File: l.id}, fmt.Sprintf("cannot read %s: %v", path, err)).Emit()
		} else {
			content, flags := normalize(raw)
			l.id = fs.Add(path, content, flags)
			l.raw = raw
		}
		out[i] = l
		opts.emit(Event{File: path, Stage: StageQueued, Status: StatusQueued})
	}
	return out
}

// forEach runs fn for 0..n-1 on at most jobs goroutines. fn reports
// per-file failures through its own result; only cancellation stops the batch.
func forEach(ctx context.Context, n int, jobs uint, fn func(ctx context.Context, i int)) error {
	limit, err := safecast.Conv[int](jobs)
	if err != nil {
		return fmt.Errorf("jobs: %w", err)
	}
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(limit, n)))
	for i := range n {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(gctx, i)
			return nil
		})
	}
	return g.Wait()
}
