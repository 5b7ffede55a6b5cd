package main

import (
	"fmt"
	"os"
	"strings"
)

// switchMode is the auto|on|off value shared by --color and --ui.
type switchMode string

const (
	switchAuto switchMode = "auto"
	switchOn   switchMode = "on"
	switchOff  switchMode = "off"
)

// parseSwitch разбирает значение флага name; пустая строка означает auto.
func parseSwitch(name, value string) (switchMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return switchAuto, nil
	case "on":
		return switchOn, nil
	case "off":
		return switchOff, nil
	default:
		return "", fmt.Errorf("invalid --%s value %q (expected auto|on|off)", name, value)
	}
}

// enabledFor resolves auto against whether f is a terminal.
func (m switchMode) enabledFor(f *os.File) bool {
	switch m {
	case switchOn:
		return true
	case switchOff:
		return false
	default:
		return isTerminal(f)
	}
}

func (s settings) useColor(f *os.File) bool {
	mode, err := parseSwitch("color", s.color)
	if err != nil {
		return false
	}
	return mode.enabledFor(f)
}
