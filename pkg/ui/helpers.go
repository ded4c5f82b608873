package ui

import (
	"github.com/mattn/go-runewidth"
)

// truncateCells truncates a string to a maximum visual width in terminal
// cells, appending an ellipsis when anything was cut. Uses go-runewidth so
// wide characters count correctly.
func truncateCells(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	const suffix = "…"
	if maxWidth <= runewidth.StringWidth(suffix) {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth-runewidth.StringWidth(suffix), "") + suffix
}

// padCells pads s with spaces up to width cells, truncating if necessary.
func padCells(s string, width int) string {
	s = truncateCells(s, width)
	for runewidth.StringWidth(s) < width {
		s += " "
	}
	return s
}
