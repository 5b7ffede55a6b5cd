package trace

import "errors"

// MultiTracer forwards every event to several tracers. csub uses it for
// ModeBoth: a stream to the output plus a ring for the failure dump.
type MultiTracer struct {
	children []Tracer
	level    Level
}

func NewMultiTracer(level Level, children ...Tracer) *MultiTracer {
	return &MultiTracer{children: children, level: level}
}

// Emit hands each child its own copy; children restamp Seq.
func (t *MultiTracer) Emit(ev *Event) {
	for _, c := range t.children {
		dup := *ev
		c.Emit(&dup)
	}
}

func (t *MultiTracer) Flush() error { return t.each(Tracer.Flush) }
func (t *MultiTracer) Close() error { return t.each(Tracer.Close) }

func (t *MultiTracer) each(op func(Tracer) error) error {
	errs := make([]error, 0, len(t.children))
	for _, c := range t.children {
		errs = append(errs, op(c))
	}
	return errors.Join(errs...)
}

// Ring returns the first child ring, nil if there is none.
func (t *MultiTracer) Ring() *RingTracer {
	for _, c := range t.children {
		if r, ok := c.(*RingTracer); ok {
			return r
		}
	}
	return nil
}

func (t *MultiTracer) Level() Level  { return t.level }
func (t *MultiTracer) Enabled() bool { return t.level > LevelOff }
