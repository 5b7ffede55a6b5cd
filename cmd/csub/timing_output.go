package main

import (
	"io"

	"csub/internal/observ"
)

// printTimings writes the --timings table to out (stderr in practice).
func printTimings(out io.Writer, timer *observ.Timer) {
	if out == nil || timer == nil || timer.Len() == 0 {
		return
	}
	_, _ = io.WriteString(out, timer.Summary())
}
