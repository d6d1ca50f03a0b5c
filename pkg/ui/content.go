package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// nextLabel and doneLabel are the forward control's two faces.
const (
	nextLabel = "Next →"
	doneLabel = "→ done"
)

// cardInnerWidth is the text width inside a card of the given outer width.
func cardInnerWidth(cardWidth int) int {
	// Rounded border (2) plus horizontal padding (2*2).
	return max(cardWidth-6, 10)
}

// nextEnabled reports whether the forward control on step id does anything.
func (m Model) nextEnabled(id int) bool {
	return id < len(m.steps)
}

func (m Model) renderNextControl(id, inner int) string {
	t := m.theme
	var label string
	if m.nextEnabled(id) {
		label = t.KeyHint.Render(nextLabel)
	} else {
		label = t.Renderer.NewStyle().Foreground(t.Muted).Faint(true).Render(doneLabel)
	}
	return lipgloss.PlaceHorizontal(inner, lipgloss.Right, label)
}

// contentCard renders the card for step id at cardWidth cells.
func (m Model) contentCard(id, cardWidth int) string {
	t := m.theme
	step := m.steps[id-1]
	inner := cardInnerWidth(cardWidth)

	title := t.Title.Foreground(t.Primary).Render(truncate(strconv.Itoa(step.ID)+" · "+step.Title, inner))
	body := m.md.Render(step.Content)

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")
	b.WriteString(body)
	b.WriteString("\n\n")
	b.WriteString(m.renderNextControl(id, inner))

	return t.Card.Width(cardWidth - 2).Render(b.String())
}

// renderContent draws the transitioning card inside a column of width cells.
// Odd steps sit one row lower than even steps.
func (m Model) renderContent(width, cardWidth int) string {
	id := m.content.shown
	card := m.contentCard(id, cardWidth)
	card = fadeBlock(card, m.content.opacity(), m.theme.Renderer.NewStyle().Foreground(m.theme.Muted))
	card = placeBlock(card, m.content.offset(), width)

	blank := strings.Repeat(" ", width)
	if id%2 == 1 {
		return blank + "\n" + card
	}
	return card + "\n" + blank
}
