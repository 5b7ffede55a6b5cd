package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"csub/internal/trace"
)

// activeRing is the in-memory ring of the current tracer, if any; it is
// dumped to stderr when a command panics.
var activeRing *trace.RingTracer

// setupTracing inspects trace-related flags and initializes the tracer.
// It returns a cleanup function and an error if initialization fails.
func setupTracing(cmd *cobra.Command) (func(), error) {
	root := cmd.Root()
	flags := root.PersistentFlags()

	var (
		traceOutput, levelStr, modeStr string
		ringSize                       int
		heartbeatInterval              time.Duration
		err                            error
	)
	for _, read := range []func() error{
		func() (e error) { traceOutput, e = flags.GetString("trace"); return },
		func() (e error) { levelStr, e = flags.GetString("trace-level"); return },
		func() (e error) { modeStr, e = flags.GetString("trace-mode"); return },
		func() (e error) { ringSize, e = flags.GetInt("trace-ring-size"); return },
		func() (e error) { heartbeatInterval, e = flags.GetDuration("trace-heartbeat"); return },
	} {
		if err = read(); err != nil {
			return nil, fmt.Errorf("trace flags: %w", err)
		}
	}

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return nil, fmt.Errorf("invalid trace level: %w", err)
	}

	// --trace без уровня включает фазы
	if level == trace.LevelOff && traceOutput != "" {
		level = trace.LevelPhase
	}
	if level == trace.LevelOff {
		cmd.SetContext(trace.WithTracer(cmd.Context(), trace.Nop))
		return func() {}, nil
	}

	mode, err := trace.ParseMode(modeStr)
	if err != nil {
		return nil, fmt.Errorf("invalid trace mode: %w", err)
	}
	// вывод в файл без явного режима: пишем потоком
	if traceOutput != "" && !flags.Changed("trace-mode") {
		mode = trace.ModeStream
	}

	tracer, err := trace.New(trace.Config{
		Level:      level,
		Mode:       mode,
		OutputPath: traceOutput,
		RingSize:   ringSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}

	switch t := tracer.(type) {
	case *trace.RingTracer:
		activeRing = t
	case *trace.MultiTracer:
		activeRing = t.Ring()
	}

	ctx := trace.WithTracer(cmd.Context(), tracer)
	cmd.SetContext(ctx)

	heartbeat := trace.StartHeartbeat(ctx, tracer, heartbeatInterval, func() string {
		return fmt.Sprintf("files=%d", filesDone.Load())
	})

	var once sync.Once
	cleanup := func() {
		once.Do(func() {
			heartbeat.Stop()
			// ring без потока: по завершении выводим буфер
			if mode == trace.ModeRing && activeRing != nil {
				if err := activeRing.Dump(os.Stderr, trace.FormatText); err != nil {
					fmt.Fprintf(os.Stderr, "trace: dump error: %v\n", err)
				}
			}
			if err := tracer.Flush(); err != nil {
				fmt.Fprintf(os.Stderr, "trace: flush error: %v\n", err)
			}
			if err := tracer.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "trace: close error: %v\n", err)
			}
			activeRing = nil
		})
	}
	return cleanup, nil
}

// dumpTraceOnPanic prints the ring buffer before re-panicking.
func dumpTraceOnPanic() {
	r := recover()
	if r == nil {
		return
	}
	if activeRing != nil {
		fmt.Fprintln(os.Stderr, "--- trace (most recent events) ---")
		_ = activeRing.Dump(os.Stderr, trace.FormatText)
	}
	panic(r)
}
