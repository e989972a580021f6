package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"zinc/internal/driver"
	"zinc/internal/source"
	"zinc/internal/ui"
)

type formatOutcome struct {
	fs      *source.FileSet
	results []driver.FormatResult
	err     error
}

func runFormatWithUI(ctx context.Context, title string, files []string, opts driver.FormatOptions) (*source.FileSet, []driver.FormatResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan formatOutcome, 1)

	go func() {
		o := opts
		o.Events = events
		fs, res, err := driver.FormatPaths(ctx, files, o)
		outcomeCh <- formatOutcome{fs: fs, results: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	// если UI закрыли раньше, воркеры не должны застрять на полном канале
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fs, outcome.results, uiErr
	}
	return outcome.fs, outcome.results, outcome.err
}
