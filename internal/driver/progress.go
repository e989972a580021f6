package driver

import (
	"slices"
	"strconv"
	"strings"
	"sync"
)

// Progress folds the events of a batch into counters. Workers update it and
// the trace heartbeat reads it, so every method locks.
type Progress struct {
	mu     sync.Mutex
	total  int
	done   int
	failed int
	active map[string]Stage
}

func NewProgress() *Progress {
	return &Progress{active: make(map[string]Stage)}
}

func (p *Progress) observe(ev Event) {
	if p == nil || ev.File == "" {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	switch ev.Status {
	case StatusQueued:
		p.total++
	case StatusWorking:
		p.active[ev.File] = ev.Stage
	case StatusDone, StatusUnchanged:
		delete(p.active, ev.File)
		p.done++
	case StatusError:
		delete(p.active, ev.File)
		p.failed++
	}
}

// Snapshot reports finished/total files, failures and the files still in
// work with their stage, e.g. {"files": "3/5", "active": "b.mzn (parsing)"}.
func (p *Progress) Snapshot() map[string]string {
	if p == nil {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	out := map[string]string{
		"files": strconv.Itoa(p.done+p.failed) + "/" + strconv.Itoa(p.total),
	}
	if p.failed > 0 {
		out["failed"] = strconv.Itoa(p.failed)
	}
	if len(p.active) > 0 {
		names := make([]string, 0, len(p.active))
		for file, stage := range p.active {
			names = append(names, file+" ("+stage.String()+")")
		}
		slices.Sort(names)
		out["active"] = strings.Join(names, ", ")
	}
	return out
}
