package observ

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Phase accumulates the time spent in one pass over all files.
type Phase struct {
	Name  string
	Dur   time.Duration
	Count int
	Note  string
}

// Timer tracks per-pass durations. Passes of different files run in
// parallel, so Timer is safe for concurrent use and sums by pass name.
type Timer struct {
	mu     sync.Mutex
	start  time.Time
	wall   time.Duration
	order  []string
	phases map[string]*Phase
}

// NewTimer creates a new empty Timer; wall-clock time starts now.
func NewTimer() *Timer {
	return &Timer{start: time.Now(), phases: make(map[string]*Phase, 8)}
}

// Add records one run of the named pass.
func (t *Timer) Add(name string, d time.Duration) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	p, ok := t.phases[name]
	if !ok {
		p = &Phase{Name: name}
		t.phases[name] = p
		t.order = append(t.order, name)
	}
	p.Dur += d
	p.Count++
}

// Measure runs fn and records its duration under name.
func (t *Timer) Measure(name string, fn func()) {
	begin := time.Now()
	fn()
	t.Add(name, time.Since(begin))
}

// Note attaches a remark to a pass.
func (t *Timer) Note(name, note string) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if p, ok := t.phases[name]; ok {
		p.Note = note
	}
}

// Stop fixes the wall-clock total.
func (t *Timer) Stop() {
	if t == nil {
		return
	}
	t.mu.Lock()
	t.wall = time.Since(t.start)
	t.mu.Unlock()
}

// Summary returns a human-readable string summarizing all tracked phases.
func (t *Timer) Summary() string {
	report := t.Report()
	var b strings.Builder
	b.WriteString("timings:\n")
	for _, p := range report.Phases {
		fmt.Fprintf(&b, "  %-10s %9.2f ms  x%d", p.Name, p.DurationMS, p.Count)
		if p.Note != "" {
			b.WriteString("  // " + p.Note)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "  %-10s %9.2f ms\n", "wall", report.WallMS)
	return b.String()
}

// PhaseReport представляет сжатую информацию о фазе таймера для сериализации.
type PhaseReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Count      int     `json:"count"`
	Note       string  `json:"note,omitempty"`
}

// Report описывает агрегированные данные таймера.
type Report struct {
	WallMS float64       `json:"wall_ms"`
	Phases []PhaseReport `json:"phases"`
}

// Report формирует срез фаз в порядке первого появления.
func (t *Timer) Report() Report {
	t.mu.Lock()
	defer t.mu.Unlock()
	wall := t.wall
	if wall == 0 {
		wall = time.Since(t.start)
	}
	report := Report{WallMS: durationToMillis(wall)}
	for _, name := range t.order {
		p := t.phases[name]
		report.Phases = append(report.Phases, PhaseReport{
			Name:       p.Name,
			DurationMS: durationToMillis(p.Dur),
			Count:      p.Count,
			Note:       p.Note,
		})
	}
	return report
}

func durationToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
