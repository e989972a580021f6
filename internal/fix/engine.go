package fix

import (
	"errors"
	"fmt"
	"slices"

	"zinc/internal/diag"
	"zinc/internal/source"
)

// ErrNoFixes is returned when no fixes were applied.
var ErrNoFixes = errors.New("no applicable fixes found")

// AppliedFix records a successfully applied fix.
type AppliedFix struct {
	Title     string
	Code      diag.Code
	EditCount int
}

// SkippedFix captures a skipped fix with a reason.
type SkippedFix struct {
	Title  string
	Reason string
}

// Result is the rewritten content plus what happened to every fix.
type Result struct {
	Content []byte
	Applied []AppliedFix
	Skipped []SkippedFix
}

type candidate struct {
	code  diag.Code
	fix   diag.Fix
	order int
}

// Apply applies the fixes of diagnostics that target file to content. Fixes
// are taken in source order; a fix overlapping an already applied one is
// skipped as a whole.
func Apply(file source.FileID, content []byte, diagnostics []diag.Diagnostic) (*Result, error) {
	result := &Result{Content: content}
	candidates := gatherCandidates(file, diagnostics, result)
	if len(candidates) == 0 {
		return result, ErrNoFixes
	}
	sortCandidates(candidates)

	working := append([]byte(nil), content...)
	var applied []diag.FixEdit
	for _, cand := range candidates {
		next, edits, reason := applyOne(working, applied, cand.fix.Edits)
		if reason != "" {
			result.Skipped = append(result.Skipped, SkippedFix{Title: cand.fix.Title, Reason: reason})
			continue
		}
		working, applied = next, edits
		result.Applied = append(result.Applied, AppliedFix{
			Title:     cand.fix.Title,
			Code:      cand.code,
			EditCount: len(cand.fix.Edits),
		})
	}
	if len(result.Applied) == 0 {
		return result, ErrNoFixes
	}
	result.Content = working
	return result, nil
}

// gatherCandidates keeps fixes whose every edit targets file.
func gatherCandidates(file source.FileID, diagnostics []diag.Diagnostic, result *Result) []candidate {
	var cands []candidate
	order := 0
	for _, d := range diagnostics {
		for _, f := range d.Fixes {
			switch {
			case len(f.Edits) == 0:
				result.Skipped = append(result.Skipped, SkippedFix{Title: f.Title, Reason: "fix has no edits"})
			case slices.ContainsFunc(f.Edits, func(e diag.FixEdit) bool { return e.Span.File != file }):
				result.Skipped = append(result.Skipped, SkippedFix{Title: f.Title, Reason: "fix edits another file"})
			default:
				cands = append(cands, candidate{code: d.Code, fix: f, order: order})
				order++
			}
		}
	}
	return cands
}

// sortCandidates orders fixes by the start of their first edit, then by
// insertion order.
func sortCandidates(candidates []candidate) {
	slices.SortStableFunc(candidates, func(a, b candidate) int {
		as, bs := firstStart(a.fix), firstStart(b.fix)
		if as != bs {
			return int(as) - int(bs)
		}
		return a.order - b.order
	})
}

func firstStart(f diag.Fix) uint32 {
	start := f.Edits[0].Span.Start
	for _, e := range f.Edits[1:] {
		start = min(start, e.Span.Start)
	}
	return start
}

// applyOne applies edits to working. Spans refer to the original content, so
// positions are shifted by the edits applied before them.
func applyOne(working []byte, applied, edits []diag.FixEdit) ([]byte, []diag.FixEdit, string) {
	if conflictsWithExisting(applied, edits) {
		return nil, nil, "conflicts with previously applied edits"
	}
	edits = slices.Clone(edits)
	// с конца, чтобы ранние смещения не сдвигались
	slices.SortStableFunc(edits, func(a, b diag.FixEdit) int {
		if a.Span.Start != b.Span.Start {
			return int(b.Span.Start) - int(a.Span.Start)
		}
		return int(b.Span.End) - int(a.Span.End)
	})

	out := append([]byte(nil), working...)
	for _, edit := range edits {
		start := int(edit.Span.Start) + cumulativeDelta(applied, int(edit.Span.Start))
		end := int(edit.Span.End) + cumulativeDelta(applied, int(edit.Span.End))
		if start < 0 || end < start || end > len(out) {
			return nil, nil, fmt.Sprintf("edit span %d..%d out of range", edit.Span.Start, edit.Span.End)
		}
		suffix := append([]byte(nil), out[end:]...)
		out = append(append(out[:start], edit.NewText...), suffix...)
	}
	next := slices.Clone(applied)
	for _, edit := range edits {
		next = insertEditSorted(next, edit)
	}
	return out, next, ""
}

func conflictsWithExisting(existing, edits []diag.FixEdit) bool {
	for _, prev := range existing {
		for _, cand := range edits {
			if spansConflict(prev, cand) {
				return true
			}
		}
	}
	return false
}

// spansConflict reports whether two edits overlap. Spans are half-open; two
// insertions never conflict, an insertion conflicts with a span it falls into.
func spansConflict(a, b diag.FixEdit) bool {
	aStart, aEnd := a.Span.Start, a.Span.End
	bStart, bEnd := b.Span.Start, b.Span.End

	if aStart == aEnd && bStart == bEnd {
		return false
	}
	if aStart == aEnd {
		return bStart <= aStart && aStart < bEnd
	}
	if bStart == bEnd {
		return aStart <= bStart && bStart < aEnd
	}
	return aStart < bEnd && bStart < aEnd
}

// cumulativeDelta is the size change of applied edits that end at or before pos.
func cumulativeDelta(edits []diag.FixEdit, pos int) int {
	delta := 0
	for _, e := range edits {
		eStart := int(e.Span.Start)
		if eStart > pos {
			break
		}
		eEnd := int(e.Span.End)
		if eEnd <= pos {
			delta += len(e.NewText) - (eEnd - eStart)
		}
	}
	return delta
}

func insertEditSorted(edits []diag.FixEdit, edit diag.FixEdit) []diag.FixEdit {
	idx, _ := slices.BinarySearchFunc(edits, edit, func(a, b diag.FixEdit) int {
		if a.Span.Start != b.Span.Start {
			return int(a.Span.Start) - int(b.Span.Start)
		}
		return int(a.Span.End) - int(b.Span.End)
	})
	return slices.Insert(edits, idx, edit)
}
