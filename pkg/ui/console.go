package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/walkthrough/pkg/config"
)

const consoleTitle = "System Console"

// consoleChromeRows is what the console adds around the log: two border
// rows, the title row and the blank line that separates it from the body.
const consoleChromeRows = 4

// consoleInnerWidth is the viewport width inside a console of width cells.
func consoleInnerWidth(width int) int {
	return max(width-4, 10)
}

// newConsoleViewport creates the log viewport. Mouse wheel scrolling is left
// to the model, which owns mouse handling.
func newConsoleViewport() viewport.Model {
	vp := viewport.New(0, 0)
	vp.MouseWheelEnabled = false
	return vp
}

// consoleRows is the viewport height for a log of n lines. The whole log
// shows unless console_height caps it or the terminal is too short, in
// which case the viewport scrolls.
func (m Model) consoleRows(n int) int {
	rows := n
	if h := m.cfg.UI.ConsoleHeight; h > 0 {
		rows = min(rows, h)
	}
	if m.height > 0 {
		d := m.dims()
		room := m.height - headerHeight - lipgloss.Height(m.renderBody(d)) -
			lipgloss.Height(m.renderFooter()) - consoleChromeRows
		rows = min(rows, max(room, config.ConsoleMinHeight))
	}
	return max(rows, 1)
}

// loadConsole fills the viewport with the current step's log and scrolls to
// the newest line.
func (m *Model) loadConsole() {
	step := m.steps[m.state.Current()-1]
	if !step.HasTerminal() {
		m.console.SetContent("")
		return
	}
	lines := step.TerminalLines()
	m.console.Height = m.consoleRows(len(lines))
	style := m.theme.Renderer.NewStyle().Foreground(m.theme.ConsoleText)
	styled := make([]string, len(lines))
	for i, line := range lines {
		styled[i] = style.Render(line)
	}
	m.console.SetContent(strings.Join(styled, "\n"))
	m.console.GotoBottom()
}

// renderConsole draws the console for the current step, or "" when the step
// has no log.
func (m Model) renderConsole(width int) string {
	step := m.steps[m.state.Current()-1]
	if !step.HasTerminal() || !m.entrance.mounted {
		return ""
	}
	t := m.theme
	r := t.Renderer
	inner := consoleInnerWidth(width)

	header := chromeDots(r) + "  " + r.NewStyle().Foreground(t.ConsoleTitle).Render(consoleTitle)
	if !m.console.AtTop() || !m.console.AtBottom() {
		pct := r.NewStyle().Foreground(t.Muted).Render(scrollPercent(m.console.ScrollPercent()))
		header = padRight(header, inner-4) + pct
	}

	panel := r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.ConsoleBorder).
		Padding(0, 1).
		Width(width - 2).
		Render(padRight(header, inner) + "\n" + m.console.View())

	panel = fadeBlock(panel, m.entrance.opacity(), r.NewStyle().Foreground(t.Muted))
	if m.entrance.lowered() {
		return "\n" + panel
	}
	return panel + "\n"
}

func scrollPercent(p float64) string {
	n := int(p*100 + 0.5)
	switch {
	case n >= 100:
		return " end"
	case n < 10:
		return "  " + strconv.Itoa(n) + "%"
	default:
		return " " + strconv.Itoa(n) + "%"
	}
}
