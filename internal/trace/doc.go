// Package trace provides the tracing subsystem of csub.
//
// Tracing records driver runs, pipeline stages (load, scan, render), per-file
// work inside directory runs and, at the most detailed level, individual
// diagnostics. It helps find slow files and hangs in parallel runs.
//
// # Usage
//
//	csub tokenize --trace=- --trace-level=detail src/
//	csub diag --trace=trace.json --trace-mode=both src/
//
// # Architecture
//
//   - Nop: zero-overhead tracer used when tracing is off
//   - StreamTracer: immediate write to a file or stderr (text, NDJSON, Chrome)
//   - RingTracer: circular buffer dumped when a run fails
//   - MultiTracer: stream and ring together
//   - Heartbeat: periodic liveness events
//
// # Levels and scopes
//
// LevelPhase emits ScopeDriver and ScopePass events, LevelDetail adds
// ScopeFile, LevelDebug adds ScopeDiag points. LevelError records only
// driver spans in the ring.
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	ctx, span := trace.StartSpan(ctx, trace.ScopePass, "scan")
//	defer span.End("")
package trace
