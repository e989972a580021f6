package trace

import (
	"strconv"
	"sync"
	"time"
)

// Heartbeat emits a driver-scope event every interval. Each beat carries the
// status snapshot (files done, files still open), so a stalled run names the
// file it is stuck on even when no span has ended for a while.
type Heartbeat struct {
	stop chan struct{}
	done chan struct{}
	once sync.Once
}

// StartHeartbeat starts beating; status may be nil. It returns nil when the
// tracer is off or interval is not positive, and Stop accepts nil.
func StartHeartbeat(t Tracer, interval time.Duration, status func() map[string]string) *Heartbeat {
	if t == nil || !t.Enabled() || interval <= 0 {
		return nil
	}
	h := &Heartbeat{stop: make(chan struct{}), done: make(chan struct{})}
	go h.run(t, interval, status)
	return h
}

func (h *Heartbeat) run(t Tracer, interval time.Duration, status func() map[string]string) {
	defer close(h.done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for beat := 1; ; beat++ {
		select {
		case <-h.stop:
			return
		case now := <-ticker.C:
			ev := &Event{
				Time:   now,
				Seq:    NextSeq(),
				Kind:   KindHeartbeat,
				Scope:  ScopeDriver,
				Name:   "heartbeat",
				Detail: "#" + strconv.Itoa(beat),
			}
			if status != nil {
				ev.Extra = status()
			}
			t.Emit(ev)
		}
	}
}

// Stop ends the beats and waits for the last one to be emitted.
func (h *Heartbeat) Stop() {
	if h == nil {
		return
	}
	h.once.Do(func() { close(h.stop) })
	<-h.done
}
