package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// ══════════════════════════════════════════════════════════════════════════════
// DESIGN TOKENS - Layout dimensions (in cells)
// ══════════════════════════════════════════════════════════════════════════════

const (
	SpaceSM = 2
	SpaceLG = 4
)

const (
	// Two columns (content | mockup) from this width up.
	columnsBreakpoint = 100

	contentCardWidth = 46 // Card including border
	mockupMinWidth   = 44
	mockupMaxWidth   = 64

	// Horizontal travel of the content card during transitions.
	slideCols = SpaceLG

	// Rail rows: title, blank, rail, caption, blank.
	railRow      = 2
	headerHeight = 5 // Rows above the body; sizes the console
)

// ══════════════════════════════════════════════════════════════════════════════
// MOCKUP PALETTE - Fixed colors from the browser mockup
// ══════════════════════════════════════════════════════════════════════════════

var (
	ColorDotRed    = lipgloss.AdaptiveColor{Light: "#EF4444", Dark: "#F87171"}
	ColorDotYellow = lipgloss.AdaptiveColor{Light: "#EAB308", Dark: "#FACC15"}
	ColorDotGreen  = lipgloss.AdaptiveColor{Light: "#22C55E", Dark: "#4ADE80"}

	ColorURLText  = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#D1D5DB"}
	ColorURLBar   = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1F2937"}
	ColorHeading  = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#F9FAFB"}
	ColorSubtle   = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#9CA3AF"}
	ColorCardEdge = lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#374151"}
	ColorMetric   = lipgloss.AdaptiveColor{Light: "#16A34A", Dark: "#4ADE80"}
)

// ══════════════════════════════════════════════════════════════════════════════
// PANEL STYLES
// ══════════════════════════════════════════════════════════════════════════════

var (
	// BrowserFrameStyle wraps the mockup panel.
	BrowserFrameStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorCardEdge)

	// TileStyle is a single card inside a mockup.
	TileStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorCardEdge).
			Padding(0, 1).
			Align(lipgloss.Center)
)

// accentColor turns a template hex color into a terminal color that degrades
// on limited palettes.
func accentColor(hex string) lipgloss.TerminalColor {
	if hex == "" {
		return ColorHeading
	}
	return ThemeFg(hex)
}
