package ui

import (
	"regexp"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

var ansiRe = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string { return ansiRe.ReplaceAllString(s, "") }

func TestTruncate_UTF8Safe(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{name: "zero max", input: "hello", maxWidth: 0, want: ""},
		{name: "fits", input: "hello", maxWidth: 10, want: "hello"},
		{name: "ellipsis", input: "localhost:3000/api/products", maxWidth: 10, want: "localhost…"},
		{name: "wide runes", input: "日本語タイトル", maxWidth: 5, want: "日本…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.input, tt.maxWidth)
			if got != tt.want {
				t.Fatalf("truncate(%q, %d) = %q; want %q", tt.input, tt.maxWidth, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Fatalf("truncate output is not valid UTF-8: %q", got)
			}
			if w := lipgloss.Width(got); w > tt.maxWidth {
				t.Fatalf("truncate output is %d cells wide; max %d", w, tt.maxWidth)
			}
		})
	}
}

func TestPlaceBlock(t *testing.T) {
	got := placeBlock("ab\nc", 2, 6)
	want := "  ab  \n  c   "
	if got != want {
		t.Fatalf("placeBlock = %q; want %q", got, want)
	}
}

func TestFadeBlock(t *testing.T) {
	muted := lipgloss.NewStyle()
	block := "hello\nworld"

	if got := fadeBlock(block, 1, muted); got != block {
		t.Errorf("full opacity changed the block: %q", got)
	}
	if got := fadeBlock(block, 0.1, muted); strings.TrimSpace(got) != "" {
		t.Errorf("low opacity should blank the block, got %q", got)
	}
	if got := fadeBlock(block, 0.1, muted); lipgloss.Width(got) != lipgloss.Width(block) {
		t.Errorf("blanked block changed width: %d vs %d", lipgloss.Width(got), lipgloss.Width(block))
	}
	if got := stripANSI(fadeBlock(block, 0.5, muted)); got != block {
		t.Errorf("half opacity should keep the text, got %q", got)
	}
}

func TestCenterLine(t *testing.T) {
	if got := centerLine("ab", 6); got != "  ab  " {
		t.Errorf("centerLine = %q", got)
	}
	if got := centerLine("toolong", 3); got != "toolong" {
		t.Errorf("centerLine should not cut, got %q", got)
	}
}
