package main

import (
	"fmt"
	"os"
	"strings"
)

type uiMode string

const (
	uiModeAuto uiMode = "auto"
	uiModeOn   uiMode = "on"
	uiModeOff  uiMode = "off"
)

func readUIMode(value string) (uiMode, error) {
	switch m := uiMode(strings.TrimSpace(strings.ToLower(value))); m {
	case "":
		return uiModeAuto, nil
	case uiModeAuto, uiModeOn, uiModeOff:
		return m, nil
	}
	return "", fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
}

// fmtRun describes what a `zinc fmt` invocation prints. The progress view
// draws on stdout, so it never runs when stdout carries formatted code.
type fmtRun struct {
	stdout bool
	quiet  bool
	files  int
}

// useProgress decides whether fmt shows the progress view. --ui on still
// loses to --stdout and --quiet; auto also skips single-file runs.
func useProgress(mode uiMode, run fmtRun) bool {
	if run.stdout || run.quiet || run.files == 0 {
		return false
	}
	switch mode {
	case uiModeOn:
		return true
	case uiModeOff:
		return false
	}
	return run.files > 1 && isTerminal(os.Stdout)
}
