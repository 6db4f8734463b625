package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// isTerminal reports whether a writer is a TTY.
var isTerminal = defaultIsTerminal

// resolveColor decides whether text output should carry ANSI styling.
func resolveColor(mode string, stdout io.Writer) (bool, error) {
	switch normalizeMode(mode) {
	case "auto":
		return isTerminal(stdout), nil
	case "always":
		return true, nil
	case "never":
		return false, nil
	default:
		return false, fmt.Errorf("invalid color mode %q (expected auto|always|never)", mode)
	}
}

// resolveUIMode decides whether to enable the live progress UI. The live
// UI only makes sense for multi-file batches on a real terminal.
func resolveUIMode(mode string, fileCount int, stdout io.Writer) (useLive bool, warning string, err error) {
	switch normalizeMode(mode) {
	case "auto":
		return fileCount > 1 && isTerminal(stdout), "", nil
	case "live":
		if isTerminal(stdout) {
			return true, "", nil
		}
		return false, "Live UI requested but stdout is not a TTY; falling back to plain output.", nil
	case "plain":
		return false, "", nil
	default:
		return false, "", fmt.Errorf("invalid ui mode %q (expected auto|live|plain)", mode)
	}
}

func normalizeMode(mode string) string {
	normalized := strings.ToLower(strings.TrimSpace(mode))
	if normalized == "" {
		return "auto"
	}
	return normalized
}

// defaultIsTerminal inspects stdout for TTY support.
func defaultIsTerminal(stdout io.Writer) bool {
	if stdout == nil {
		return false
	}
	if file, ok := stdout.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := stdout.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}
