// Package observ measures pipeline phases for --timings.
package observ

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Phase is one measured stage (load, cache, scan, render).
type Phase struct {
	Name  string
	Start time.Time
	Dur   time.Duration
	Note  string
	Runs  int // сколько замеров слито в фазу; 0 читается как 1
}

// Timer is not safe for concurrent use. Directory runs keep one Timer per
// file and fold them together with Merge.
type Timer struct {
	phases []Phase
}

func NewTimer() *Timer { return &Timer{phases: make([]Phase, 0, 4)} }

// Begin opens a phase and returns the index End expects.
func (t *Timer) Begin(name string) int {
	t.phases = append(t.phases, Phase{Name: name, Start: time.Now(), Runs: 1})
	return len(t.phases) - 1
}

// End closes phase idx; unknown indexes are ignored.
func (t *Timer) End(idx int, note string) {
	if idx < 0 || idx >= len(t.phases) {
		return
	}
	t.phases[idx].Dur = time.Since(t.phases[idx].Start)
	t.phases[idx].Note = note
}

// Track opens a phase and returns its closer:
//
//	done := timer.Track("scan")
//	defer done("")
func (t *Timer) Track(name string) func(note string) {
	idx := t.Begin(name)
	return func(note string) { t.End(idx, note) }
}

// Merge adds other's durations into phases of the same name and appends
// phases t has not seen yet.
func (t *Timer) Merge(other *Timer) {
	if other == nil {
		return
	}
	for _, p := range other.phases {
		i := slices.IndexFunc(t.phases, func(q Phase) bool { return q.Name == p.Name })
		if i < 0 {
			t.phases = append(t.phases, p)
			continue
		}
		t.phases[i].Dur += p.Dur
		t.phases[i].Runs = runs(t.phases[i]) + runs(p)
	}
}

func runs(p Phase) int { return max(p.Runs, 1) }

func (t *Timer) Len() int { return len(t.phases) }

// PhaseReport is the serializable view of a Phase.
type PhaseReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Runs       int     `json:"runs"`
	Note       string  `json:"note,omitempty"`
}

// Report суммирует все фазы; Phases is nil for an empty timer.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseReport `json:"phases"`
}

func (t *Timer) Report() Report {
	var r Report
	var total time.Duration
	for _, p := range t.phases {
		total += p.Dur
		r.Phases = append(r.Phases, PhaseReport{
			Name:       p.Name,
			DurationMS: millis(p.Dur),
			Runs:       runs(p),
			Note:       p.Note,
		})
	}
	r.TotalMS = millis(total)
	return r
}

// Summary renders the report as an aligned table ending with the total.
// Merged phases show their run count.
func (t *Timer) Summary() string {
	r := t.Report()
	var b strings.Builder
	b.WriteString("timings:\n")
	for _, p := range r.Phases {
		fmt.Fprintf(&b, "  %-8s %9.2f ms", p.Name, p.DurationMS)
		if p.Runs > 1 {
			fmt.Fprintf(&b, "  x%d", p.Runs)
		}
		if p.Note != "" {
			b.WriteString("  // " + p.Note)
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "  %-8s %9.2f ms\n", "total", r.TotalMS)
	return b.String()
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
