package diag

// Handler decouples producing diagnostics from reporting them. It wraps a
// sink that receives every diagnostic and answers whether scanning should
// continue. The zero Handler accepts everything and always continues.
type Handler struct {
	sink func(Diag) bool
}

// NewHandler wraps a caller-supplied sink.
func NewHandler(sink func(Diag) bool) Handler {
	return Handler{sink: sink}
}

// Emit forwards d to the sink and returns its decision.
func (h Handler) Emit(d Diag) bool {
	if h.sink == nil {
		return true
	}
	return h.sink(d)
}

// Ignoring accepts every diagnostic and always continues.
func Ignoring() Handler {
	return NewHandler(func(Diag) bool { return true })
}

// Halting asks to stop on the first diagnostic.
func Halting() Handler {
	return NewHandler(func(Diag) bool { return false })
}

// Collecting appends every diagnostic to bag and continues, even once the
// bag limit is reached.
func Collecting(bag *Bag) Handler {
	return NewHandler(func(d Diag) bool {
		if bag != nil {
			bag.Add(d)
		}
		return true
	})
}

// Fanout forwards each diagnostic to all handlers in order. Scanning
// continues only if every handler agrees.
func Fanout(hs ...Handler) Handler {
	return NewHandler(func(d Diag) bool {
		cont := true
		for _, h := range hs {
			if !h.Emit(d) {
				cont = false
			}
		}
		return cont
	})
}

// Dedup wraps next and drops diagnostics identical to one already seen;
// a dropped diagnostic never stops scanning.
func Dedup(next Handler) Handler {
	seen := make(map[Diag]struct{})
	return NewHandler(func(d Diag) bool {
		if _, ok := seen[d]; ok {
			return true
		}
		seen[d] = struct{}{}
		return next.Emit(d)
	})
}
