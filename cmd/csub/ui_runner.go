package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"csub/internal/driver"
	"csub/internal/ui"
)

type dirOutcome struct {
	results []driver.FileResult
	err     error
}

// runDirWithUI scans dir in the background while a Bubble Tea program
// renders per-file progress on stderr.
func runDirWithUI(ctx context.Context, title, dir string, files []string, opts driver.DirOptions) ([]driver.FileResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan dirOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.MultiSink{opts.Progress, driver.ChannelSink{Ch: events}}
		res, err := driver.TokenizeDir(ctx, dir, optsCopy)
		outcomeCh <- dirOutcome{results: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	_, uiErr := program.Run()
	if uiErr != nil {
		// UI упал: дочитываем события, чтобы сканирование не встало
		go func() {
			for range events {
			}
		}()
	}
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
