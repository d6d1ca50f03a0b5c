package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// truncateRunesHelper truncates a string to max visual width (cells), adding suffix if needed.
// Uses go-runewidth to handle wide characters correctly.
func truncateRunesHelper(s string, maxWidth int, suffix string) string {
	if maxWidth <= 0 {
		return ""
	}

	width := runewidth.StringWidth(s)
	if width <= maxWidth {
		return s
	}

	suffixWidth := runewidth.StringWidth(suffix)
	if suffixWidth > maxWidth {
		return runewidth.Truncate(suffix, maxWidth, "")
	}

	return runewidth.Truncate(s, maxWidth-suffixWidth, "") + suffix
}

func truncate(s string, maxWidth int) string {
	return truncateRunesHelper(s, maxWidth, "…")
}

// padRight pads s with spaces to width visible cells. ANSI sequences are
// ignored when measuring.
func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// placeBlock indents every line of block by left cells and pads it to width.
func placeBlock(block string, left, width int) string {
	lines := strings.Split(block, "\n")
	indent := strings.Repeat(" ", max(left, 0))
	for i, line := range lines {
		lines[i] = padRight(indent+line, width)
	}
	return strings.Join(lines, "\n")
}

// blankBlock returns a block of spaces with the same shape as block.
func blankBlock(block string) string {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = strings.Repeat(" ", lipgloss.Width(line))
	}
	return strings.Join(lines, "\n")
}

// fadeBlock approximates opacity on a terminal: below a third the block is
// invisible, below two thirds it is redrawn in a single muted color.
func fadeBlock(block string, alpha float64, muted lipgloss.Style) string {
	switch {
	case alpha >= 2.0/3.0:
		return block
	case alpha < 1.0/3.0:
		return blankBlock(block)
	}
	lines := strings.Split(ansi.Strip(block), "\n")
	for i, line := range lines {
		lines[i] = muted.Render(line)
	}
	return strings.Join(lines, "\n")
}

// centerLine centers s within width cells.
func centerLine(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}
