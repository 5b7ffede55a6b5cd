package main

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"

	"csub/internal/driver"
	"csub/internal/observ"
)

// filesDone counts finished files for heartbeat events.
var filesDone atomic.Int64

type countingSink struct{}

func (countingSink) OnEvent(evt driver.Event) {
	if evt.File != "" && (evt.Status == driver.StatusDone || evt.Status == driver.StatusError) {
		filesDone.Add(1)
	}
}

// scanTarget scans a file or, for a directory, every matching file below it.
// Results for a single file are returned as a one-element slice.
func scanTarget(ctx context.Context, path string, s settings, mode switchMode) ([]driver.FileResult, error) {
	opts, err := s.driverOptions()
	if err != nil {
		return nil, err
	}

	st, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat path: %w", err)
	}
	if !st.IsDir() {
		res, err := driver.Tokenize(ctx, path, opts)
		if err != nil {
			return nil, err
		}
		return []driver.FileResult{{Path: path, Result: res}}, nil
	}

	dirOpts := driver.DirOptions{
		Options:    opts,
		Jobs:       s.jobs,
		Extensions: s.extensions,
	}
	if mode.enabledFor(os.Stderr) {
		files, err := driver.ListSourceFiles(path, s.extensions)
		if err != nil {
			return nil, err
		}
		if len(files) > 0 {
			return runDirWithUI(ctx, "scanning "+path, path, files, dirOpts)
		}
	}
	return driver.TokenizeDir(ctx, path, dirOpts)
}

// mergeTimers собирает таймеры всех файлов в один для --timings.
func mergeTimers(results []driver.FileResult) *observ.Timer {
	total := observ.NewTimer()
	for _, r := range results {
		if r.Result != nil && r.Result.Timer != nil {
			total.Merge(r.Result.Timer)
		}
	}
	return total
}
