package ui

import (
	"os"

	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/lipgloss"
)

// TermProfile holds the detected terminal color profile. Computed once at
// package init so every style helper can branch without re-detecting.
var TermProfile colorprofile.Profile

func init() {
	TermProfile = colorprofile.Detect(os.Stdout, os.Environ())
}

// ThemeBg returns the given hex color for TrueColor terminals and
// lipgloss.NoColor{} otherwise, so 16/256-color terminals keep their own
// background instead of a down-converted approximation.
func ThemeBg(hex string) lipgloss.TerminalColor {
	if TermProfile < colorprofile.TrueColor {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(hex)
}

// ThemeFg returns the given hex color for ANSI256+ terminals and a safe
// ANSI white (color 7) for 16-color or lower terminals.
func ThemeFg(hex string) lipgloss.TerminalColor {
	if TermProfile < colorprofile.ANSI256 {
		return lipgloss.ANSIColor(7)
	}
	return lipgloss.Color(hex)
}

type Theme struct {
	Renderer *lipgloss.Renderer

	// Colors
	Primary lipgloss.AdaptiveColor
	Text    lipgloss.AdaptiveColor
	Subtext lipgloss.AdaptiveColor
	Muted   lipgloss.AdaptiveColor
	OnFill  lipgloss.AdaptiveColor // Text drawn on a Primary background

	// Progress rail
	Completed lipgloss.AdaptiveColor
	Active    lipgloss.AdaptiveColor
	Pending   lipgloss.AdaptiveColor

	// UI Elements
	Border    lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor

	// Console
	ConsoleText   lipgloss.AdaptiveColor
	ConsoleTitle  lipgloss.AdaptiveColor
	ConsoleBorder lipgloss.AdaptiveColor

	// Styles
	Title    lipgloss.Style
	Card     lipgloss.Style
	Caption  lipgloss.Style
	Status   lipgloss.Style
	KeyHint  lipgloss.Style
	DescHint lipgloss.Style
}

// DefaultTheme returns the standard blue-accent theme (adaptive).
func DefaultTheme(r *lipgloss.Renderer) Theme {
	t := Theme{
		Renderer: r,

		Primary: lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#3B82F6"}, // Blue
		Text:    lipgloss.AdaptiveColor{Light: "#111827", Dark: "#F3F4F6"},
		Subtext: lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#9CA3AF"},
		Muted:   lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"},
		OnFill:  lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"},

		Completed: lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#3B82F6"},
		Active:    lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"},
		Pending:   lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"},

		Border:    lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#374151"},
		Highlight: lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#1F2937"},

		ConsoleText:   lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#4ADE80"}, // Green
		ConsoleTitle:  lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"},
		ConsoleBorder: lipgloss.AdaptiveColor{Light: "#374151", Dark: "#4B5563"},
	}

	t.Title = r.NewStyle().
		Bold(true).
		Foreground(t.Text)

	t.Card = r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)

	t.Caption = r.NewStyle().Foreground(t.Subtext)
	t.Status = r.NewStyle().Foreground(t.ConsoleText).Italic(true)
	t.KeyHint = r.NewStyle().Bold(true).Foreground(t.Primary)
	t.DescHint = r.NewStyle().Foreground(t.Subtext)

	return t
}

// TestTheme returns a theme suitable for use in tests.
func TestTheme() Theme {
	return DefaultTheme(lipgloss.NewRenderer(os.Stdout))
}
