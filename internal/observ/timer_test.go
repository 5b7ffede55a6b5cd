package observ

import (
	"strings"
	"testing"
	"time"
)

func TestTimerTrackAndReport(t *testing.T) {
	tm := NewTimer()
	end := tm.Track("load")
	end("a.c")
	tm.End(tm.Begin("scan"), "")
	tm.End(99, "ignored")

	r := tm.Report()
	if len(r.Phases) != 2 {
		t.Fatalf("expected 2 phases, got %d", len(r.Phases))
	}
	if r.Phases[0].Name != "load" || r.Phases[0].Note != "a.c" {
		t.Fatalf("unexpected first phase %+v", r.Phases[0])
	}
	s := tm.Summary()
	for _, want := range []string{"timings:", "load", "scan", "total", "// a.c"} {
		if !strings.Contains(s, want) {
			t.Errorf("summary misses %q:\n%s", want, s)
		}
	}
}

func TestTimerMerge(t *testing.T) {
	a := &Timer{phases: []Phase{{Name: "load", Dur: time.Millisecond}, {Name: "scan", Dur: 2 * time.Millisecond}}}
	b := &Timer{phases: []Phase{{Name: "scan", Dur: 3 * time.Millisecond}, {Name: "render", Dur: time.Millisecond}}}
	a.Merge(b)
	a.Merge(nil)

	r := a.Report()
	if a.Len() != 3 {
		t.Fatalf("expected 3 phases, got %d", a.Len())
	}
	if r.Phases[1].Name != "scan" || r.Phases[1].DurationMS != 5 {
		t.Fatalf("unexpected merged scan phase %+v", r.Phases[1])
	}
	if r.TotalMS != 7 {
		t.Fatalf("expected total 7ms, got %v", r.TotalMS)
	}
}

func TestEmptyTimerReport(t *testing.T) {
	if r := NewTimer().Report(); r.TotalMS != 0 || r.Phases != nil {
		t.Fatalf("unexpected report %+v", r)
	}
}

func TestSummaryShowsRuns(t *testing.T) {
	a := &Timer{phases: []Phase{{Name: "scan", Dur: time.Millisecond}}}
	a.Merge(&Timer{phases: []Phase{{Name: "scan", Dur: time.Millisecond, Runs: 2}}})
	if got := a.Report().Phases[0].Runs; got != 3 {
		t.Fatalf("expected 3 runs, got %d", got)
	}
	if s := a.Summary(); !strings.Contains(s, "x3") {
		t.Fatalf("summary misses run count:\n%s", s)
	}
}
