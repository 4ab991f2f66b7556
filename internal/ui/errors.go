package ui

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const errorPrefix = "Error: "

// errMainWorktree is shown when the selection is the primary checkout
var errMainWorktree = errors.New("the main working directory cannot be removed")

// formatErrorForDisplay renders an error on a single status line, cut to
// the terminal width with a trailing ellipsis. Multi-line git output is
// flattened first; the full text is always in the debug log.
func formatErrorForDisplay(err error, maxWidth int) string {
	if err == nil {
		return ""
	}

	message := strings.Join(strings.Fields(err.Error()), " ")
	if message == "" {
		message = "unknown error"
	}

	line := errorPrefix + message
	if maxWidth < 20 {
		maxWidth = 20
	}
	if utf8.RuneCountInString(line) <= maxWidth {
		return line
	}

	runes := []rune(line)
	return string(runes[:maxWidth-3]) + "..."
}
