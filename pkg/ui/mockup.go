package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/walkthrough/pkg/catalog"
	"github.com/vanderheijden86/walkthrough/pkg/mockup"
)

// chromeDots renders the three window buttons shared by the mockup and the
// console.
func chromeDots(r *lipgloss.Renderer) string {
	return r.NewStyle().Foreground(ColorDotRed).Render("●") + " " +
		r.NewStyle().Foreground(ColorDotYellow).Render("●") + " " +
		r.NewStyle().Foreground(ColorDotGreen).Render("●")
}

// mockupView draws the browser mockup for a template and URL at width cells.
// spin is the spinner frame shown by templates that have one.
func mockupView(t Theme, tpl mockup.Template, url string, width int, spin string) string {
	if url == "" {
		url = catalog.DefaultURL
	}
	inner := max(width-2, 10)
	r := t.Renderer

	dots := chromeDots(r)
	barWidth := max(inner-lipgloss.Width(dots)-3, 4)
	bar := r.NewStyle().
		Foreground(ColorURLText).
		Background(ColorURLBar).
		Width(barWidth).
		Render(" " + truncate(url, barWidth-2))
	chrome := padRight(" "+dots+" "+bar, inner)
	rule := r.NewStyle().Foreground(ColorCardEdge).Render(strings.Repeat("─", inner))

	body := mockupBody(t, tpl, inner, spin)
	return BrowserFrameStyle.Width(inner).Render(chrome + "\n" + rule + "\n" + body)
}

func mockupBody(t Theme, tpl mockup.Template, inner int, spin string) string {
	r := t.Renderer
	heading := r.NewStyle().Bold(true).Foreground(ColorHeading).Render(tpl.HeadingLine())
	sub := r.NewStyle().Foreground(ColorSubtle).Render(tpl.Subheading)

	rows := []string{"", centerLine(heading, inner), centerLine(sub, inner), ""}
	switch tpl.Layout {
	case mockup.LayoutHero:
		if tpl.Spinner && spin != "" {
			rows = append(rows, centerLine(r.NewStyle().Foreground(accentColor(mockup.Spinner)).Render(spin), inner), "")
		}
	case mockup.LayoutTiles:
		rows = append(rows, tileGrid(t, tpl, inner))
		rows = append(rows, "")
	case mockup.LayoutEndpoints:
		for _, ep := range tpl.Endpoints {
			method := r.NewStyle().Bold(true).Foreground(accentColor(ep.Color)).Width(5).Render(ep.Method)
			path := r.NewStyle().Foreground(ColorHeading).Render(ep.Path)
			row := TileStyle.Align(lipgloss.Left).Width(max(inner-6, 10)).Render(method + " " + path)
			rows = append(rows, placeBlock(row, 2, inner))
		}
		rows = append(rows, "")
	}
	return strings.Join(rows, "\n")
}

// tileGrid lays tiles out tpl.Columns per row, centered in inner cells.
func tileGrid(t Theme, tpl mockup.Template, inner int) string {
	cols := max(tpl.Columns, 1)
	gap := 1
	tileWidth := max((inner-4-(cols-1)*gap)/cols, 8)
	label := lipgloss.TerminalColor(ColorHeading)
	if tpl.LabelColor != "" {
		label = accentColor(tpl.LabelColor)
	}

	r := t.Renderer
	var gridRows []string
	for start := 0; start < len(tpl.Tiles); start += cols {
		end := min(start+cols, len(tpl.Tiles))
		var cells []string
		for i, tile := range tpl.Tiles[start:end] {
			var lines []string
			if tile.Icon != "" {
				lines = append(lines, tile.Icon)
			}
			lines = append(lines, r.NewStyle().Bold(tile.Value == "").Foreground(label).Render(tile.Label))
			if tile.Value != "" {
				vs := r.NewStyle().Foreground(ColorSubtle)
				if tpl.ValuesHighlighted() {
					vs = r.NewStyle().Bold(true).Foreground(ColorMetric)
				}
				lines = append(lines, vs.Render(tile.Value))
			}
			if i > 0 {
				cells = append(cells, strings.Repeat(" ", gap))
			}
			cells = append(cells, TileStyle.Width(tileWidth-2).Render(strings.Join(lines, "\n")))
		}
		gridRows = append(gridRows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	grid := lipgloss.JoinVertical(lipgloss.Left, gridRows...)
	lines := strings.Split(grid, "\n")
	for i, line := range lines {
		lines[i] = centerLine(line, inner)
	}
	return strings.Join(lines, "\n")
}

// renderMockup draws the mockup for the current step.
func (m Model) renderMockup(width int) string {
	step := m.steps[m.state.Current()-1]
	tpl := mockup.For(step.Interface)
	spin := ""
	if tpl.Spinner {
		spin = m.spinner.View()
	}
	return mockupView(m.theme, tpl, step.URL, width, spin)
}
