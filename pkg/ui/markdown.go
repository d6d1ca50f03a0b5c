package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// MarkdownRenderer renders step text with Glamour, caching results per
// source string. Rendering falls back to wrapped plain text when Glamour
// fails.
type MarkdownRenderer struct {
	width int
	style string
	tr    *glamour.TermRenderer
	cache map[string]string
}

// NewMarkdownRenderer creates a renderer wrapping at width cells. dark
// selects the dark or light standard style.
func NewMarkdownRenderer(width int, dark bool) *MarkdownRenderer {
	style := "light"
	if dark {
		style = "dark"
	}
	m := &MarkdownRenderer{style: style, cache: make(map[string]string)}
	m.SetWidth(width)
	return m
}

// SetWidth rebuilds the underlying renderer for a new wrap width.
func (m *MarkdownRenderer) SetWidth(width int) {
	if width < 10 {
		width = 10
	}
	if width == m.width && m.tr != nil {
		return
	}
	m.width = width
	m.cache = make(map[string]string)
	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(m.style),
		glamour.WithWordWrap(width),
		glamour.WithEmoji(),
	)
	if err != nil {
		m.tr = nil
		return
	}
	m.tr = tr
}

// Width returns the wrap width.
func (m *MarkdownRenderer) Width() int {
	return m.width
}

// Render returns md rendered for the terminal, trimmed of Glamour's outer
// blank lines and margins.
func (m *MarkdownRenderer) Render(md string) string {
	if out, ok := m.cache[md]; ok {
		return out
	}
	out := m.render(md)
	m.cache[md] = out
	return out
}

func (m *MarkdownRenderer) render(md string) string {
	if m.tr != nil {
		if rendered, err := m.tr.Render(md); err == nil {
			return trimRendered(rendered)
		}
	}
	return lipgloss.NewStyle().Width(m.width).Render(md)
}

// trimRendered drops leading/trailing blank lines and the common left margin
// Glamour adds to every line.
func trimRendered(s string) string {
	lines := strings.Split(s, "\n")
	for len(lines) > 0 && strings.TrimSpace(ansi.Strip(lines[0])) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(ansi.Strip(lines[len(lines)-1])) == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}
