package trace

import (
	"io"
	"os"
	"sync"
)

// StreamTracer formats and writes each event as it arrives. Write errors
// are remembered and returned from Close; they never fail the run.
type StreamTracer struct {
	mu     sync.Mutex
	out    *framer
	level  Level
	err    error
	closed bool
}

// NewStreamTracer writes events at level to w (FormatAuto means text).
func NewStreamTracer(w io.Writer, level Level, format Format) *StreamTracer {
	if format == FormatAuto {
		format = FormatText
	}
	t := &StreamTracer{out: &framer{w: w, format: format}, level: level}
	t.err = t.out.open()
	return t
}

func (t *StreamTracer) Emit(ev *Event) {
	if !accepts(t.level, ev) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed || t.err != nil {
		return
	}
	ev.Seq = NextSeq()
	t.err = t.out.write(ev)
}

func (t *StreamTracer) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if f, ok := t.out.w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// Close terminates Chrome output and closes the writer unless it is a
// standard stream. It returns the first write error, if any.
func (t *StreamTracer) Close() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.closed = true
	if t.err == nil {
		t.err = t.out.close()
	}
	err := t.err
	t.mu.Unlock()

	if ferr := t.Flush(); err == nil {
		err = ferr
	}
	w := t.out.w
	if w == os.Stdout || w == os.Stderr {
		return err
	}
	if c, ok := w.(io.Closer); ok {
		if cerr := c.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

func (t *StreamTracer) Level() Level  { return t.level }
func (t *StreamTracer) Enabled() bool { return t.level > LevelOff }
