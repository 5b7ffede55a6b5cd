package trace

import "io"

// framer writes formatted events to w. Chrome output is a JSON array, so
// framer owns the brackets and the separators between records.
type framer struct {
	w      io.Writer
	format Format
	count  int
}

func (f *framer) open() error {
	if f.format != FormatChrome {
		return nil
	}
	_, err := io.WriteString(f.w, "[\n")
	return err
}

func (f *framer) write(ev *Event) error {
	if f.format == FormatChrome && f.count > 0 {
		if _, err := io.WriteString(f.w, ",\n"); err != nil {
			return err
		}
	}
	f.count++
	_, err := f.w.Write(FormatEvent(ev, f.format))
	return err
}

func (f *framer) close() error {
	if f.format != FormatChrome {
		return nil
	}
	_, err := io.WriteString(f.w, "\n]\n")
	return err
}

// accepts reports whether a tracer at level records ev. Heartbeats pass
// any enabled level.
func accepts(level Level, ev *Event) bool {
	return ev.Kind == KindHeartbeat || level.ShouldEmit(ev.Scope)
}
