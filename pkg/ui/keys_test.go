package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/google/go-cmp/cmp"

	"github.com/vanderheijden86/walkthrough/pkg/catalog"
)

func TestJumpBindingMatchesCatalog(t *testing.T) {
	km := DefaultKeyMap()
	want := []string{"1", "2", "3", "4", "5", "6"}
	if diff := cmp.Diff(want, km.Jump.Keys()); diff != "" {
		t.Errorf("jump keys (-want +got):\n%s", diff)
	}
	if got := km.Jump.Help().Key; got != "1-6" {
		t.Errorf("jump help = %q, want 1-6", got)
	}
	for _, k := range []string{"7", "8", "9"} {
		if key.Matches(keyMsg(k), km.Jump) {
			t.Errorf("%q should not be bound for a %d-step catalog", k, catalog.Len())
		}
	}
}

func TestJumpBindingBounds(t *testing.T) {
	tests := []struct {
		n    int
		keys int
		help string
	}{
		{0, 1, "1-1"},
		{3, 3, "1-3"},
		{12, 9, "1-9"},
	}
	for _, tt := range tests {
		b := jumpBinding(tt.n)
		if got := len(b.Keys()); got != tt.keys {
			t.Errorf("jumpBinding(%d) has %d keys, want %d", tt.n, got, tt.keys)
		}
		if got := b.Help().Key; got != tt.help {
			t.Errorf("jumpBinding(%d) help = %q, want %q", tt.n, got, tt.help)
		}
	}
}
