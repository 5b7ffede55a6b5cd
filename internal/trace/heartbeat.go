package trace

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Heartbeat emits a periodic event so a stalled run is visible in the trace:
// heartbeats without span ends mean the driver is stuck in one file.
type Heartbeat struct {
	tracer   Tracer
	interval time.Duration
	status   func() string
	stop     chan struct{}
	done     chan struct{}
	once     sync.Once
}

// StartHeartbeat starts emitting heartbeats every interval until Stop is
// called or ctx is done. status, if not nil, supplies the event detail
// (например, число обработанных файлов). Returns nil when tracing is off.
func StartHeartbeat(ctx context.Context, tracer Tracer, interval time.Duration, status func() string) *Heartbeat {
	if tracer == nil || !tracer.Enabled() || interval <= 0 {
		return nil
	}
	h := &Heartbeat{
		tracer:   tracer,
		interval: interval,
		status:   status,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go h.run(ctx)
	return h
}

func (h *Heartbeat) run(ctx context.Context) {
	defer close(h.done)

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	var beats uint64
	for {
		select {
		case <-ticker.C:
			beats++
			detail := fmt.Sprintf("#%d", beats)
			if h.status != nil {
				detail += " " + h.status()
			}
			h.tracer.Emit(&Event{
				Time:   time.Now(),
				Seq:    NextSeq(),
				Kind:   KindHeartbeat,
				Scope:  ScopeDriver,
				Name:   "heartbeat",
				Detail: detail,
			})
		case <-h.stop:
			return
		case <-ctx.Done():
			return
		}
	}
}

// Stop ends the heartbeat and waits for its goroutine. Safe to call twice
// and on a nil Heartbeat.
func (h *Heartbeat) Stop() {
	if h == nil {
		return
	}
	h.once.Do(func() { close(h.stop) })
	<-h.done
}
