package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/walkthrough/pkg/walkthrough"
)

const (
	markerWidth    = 3
	connectorWidth = 6
	connectorGap   = 1
	connectorSpan  = connectorWidth + 2*connectorGap
)

type markerState int

const (
	markerPending markerState = iota
	markerActive
	markerCompleted
)

// markerStateFor resolves a marker's look. Completed wins over active, so the
// current step (always completed) shows a check.
func markerStateFor(st *walkthrough.State, id int) markerState {
	switch {
	case st.IsCompleted(id):
		return markerCompleted
	case st.Current() == id:
		return markerActive
	default:
		return markerPending
	}
}

// railWidth is the total width of a rail with n markers.
func railWidth(n int) int {
	if n <= 0 {
		return 0
	}
	return n*markerWidth + (n-1)*connectorSpan
}

// railLeft is the column of the first marker when the rail is centered in width.
func railLeft(width, n int) int {
	return max(0, (width-railWidth(n))/2)
}

// markerX is the first column of marker id.
func markerX(width, n, id int) int {
	return railLeft(width, n) + (id-1)*(markerWidth+connectorSpan)
}

// markerAt maps a column on the rail row to a step id, or 0 when x is not
// over a marker.
func markerAt(x, width, n int) int {
	left := railLeft(width, n)
	if x < left || x >= left+railWidth(n) {
		return 0
	}
	rel := x - left
	slot := markerWidth + connectorSpan
	if rel%slot >= markerWidth {
		return 0
	}
	return rel/slot + 1
}

func (m Model) renderMarker(id int) string {
	t := m.theme
	r := t.Renderer
	switch markerStateFor(m.state, id) {
	case markerCompleted:
		style := r.NewStyle().Bold(true).Foreground(t.OnFill).Background(t.Completed)
		if id == m.state.Current() {
			style = style.Underline(true)
		}
		return style.Render(" ✓ ")
	case markerActive:
		return r.NewStyle().Bold(true).Foreground(t.OnFill).Background(t.Active).
			Render(" " + strconv.Itoa(id) + " ")
	default:
		return r.NewStyle().Foreground(t.Pending).Background(t.Highlight).
			Render(" " + strconv.Itoa(id) + " ")
	}
}

// renderConnector draws a connector filled from the left by fill.
func (m Model) renderConnector(fill float64) string {
	t := m.theme
	filled := int(fill*float64(connectorWidth) + 0.5)
	filled = min(max(filled, 0), connectorWidth)
	on := t.Renderer.NewStyle().Foreground(t.Completed).Render(strings.Repeat("━", filled))
	off := t.Renderer.NewStyle().Foreground(t.Border).Render(strings.Repeat("─", connectorWidth-filled))
	gap := strings.Repeat(" ", connectorGap)
	return gap + on + off + gap
}

// renderRail draws the marker row centered in width.
func (m Model) renderRail(width int) string {
	n := len(m.steps)
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", railLeft(width, n)))
	for i := range m.steps {
		b.WriteString(m.renderMarker(i + 1))
		if i < n-1 {
			b.WriteString(m.renderConnector(m.fills.fraction(i)))
		}
	}
	return padRight(b.String(), width)
}

// renderHeader draws the title, rail and caption rows.
func (m Model) renderHeader(width int) string {
	t := m.theme
	step := m.steps[m.state.Current()-1]
	caption := t.Caption.Render(
		"Step " + strconv.Itoa(step.ID) + " of " + strconv.Itoa(len(m.steps)) + " · " + step.Title,
	)
	rows := []string{
		centerLine(t.Title.Render(m.title), width),
		"",
		m.renderRail(width),
		centerLine(caption, width),
		"",
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
