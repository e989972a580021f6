package trace

import (
	"fmt"
	"io"
	"sync"
)

// RingTracer keeps the last events in a fixed circular buffer. It backs the
// error level: nothing is written unless a run fails, then Dump shows how
// the run got there.
type RingTracer struct {
	mu      sync.RWMutex
	events  []Event
	next    int
	stored  int
	dropped uint64
	level   Level
}

// NewRingTracer returns a ring holding capacity events (4096 when not
// positive).
func NewRingTracer(capacity int, level Level) *RingTracer {
	if capacity <= 0 {
		capacity = 4096
	}
	return &RingTracer{events: make([]Event, capacity), level: level}
}

// Emit stores ev, overwriting the oldest event when the ring is full.
// Heartbeats pass the level filter.
func (t *RingTracer) Emit(ev *Event) {
	if ev.Kind != KindHeartbeat && !t.level.ShouldEmit(ev.Scope) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stored == len(t.events) {
		t.dropped++
	} else {
		t.stored++
	}
	t.events[t.next] = *ev
	t.next = (t.next + 1) % len(t.events)
}

// Snapshot copies the stored events, oldest first.
func (t *RingTracer) Snapshot() []Event {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Event, 0, t.stored)
	first := (t.next - t.stored + len(t.events)) % len(t.events)
	for i := range t.stored {
		out = append(out, t.events[(first+i)%len(t.events)])
	}
	return out
}

// Dropped reports how many events were overwritten.
func (t *RingTracer) Dropped() uint64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.dropped
}

// Dump writes the stored events in format. When older events were
// overwritten, a non-JSON dump starts with a line saying how many.
func (t *RingTracer) Dump(w io.Writer, format Format) error {
	if n := t.Dropped(); n > 0 && format != FormatNDJSON {
		if _, err := fmt.Fprintf(w, "... %d earlier event(s) dropped\n", n); err != nil {
			return err
		}
	}
	events := t.Snapshot()
	for i := range events {
		if _, err := w.Write(FormatEvent(&events[i], format)); err != nil {
			return err
		}
	}
	return nil
}

func (t *RingTracer) Flush() error { return nil }
func (t *RingTracer) Close() error { return nil }

// Level returns the ring's filter level.
func (t *RingTracer) Level() Level { return t.level }

// Enabled reports whether the ring accepts events.
func (t *RingTracer) Enabled() bool { return t.level > LevelOff }
