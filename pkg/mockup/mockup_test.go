package mockup

import (
	"testing"

	"github.com/vanderheijden86/walkthrough/pkg/catalog"
)

func TestEveryTagHasTemplate(t *testing.T) {
	headings := make(map[string]catalog.InterfaceTag)
	for _, tag := range catalog.InterfaceTags() {
		tpl := For(tag)
		if tpl.Tag != tag {
			t.Errorf("For(%s).Tag = %s", tag, tpl.Tag)
		}
		if tpl.Heading == "" || tpl.Subheading == "" {
			t.Errorf("template %s is missing text", tag)
		}
		if other, dup := headings[tpl.Heading]; dup {
			t.Errorf("templates %s and %s share heading %q", tag, other, tpl.Heading)
		}
		headings[tpl.Heading] = tag
		if tpl.Layout == LayoutTiles && (tpl.Columns < 1 || len(tpl.Tiles) == 0) {
			t.Errorf("tiles template %s has no grid", tag)
		}
	}
}

func TestForUnknownTagPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("For(unknown) should panic")
		}
	}()
	For(catalog.InterfaceTag(99))
}

func TestBackendEndpoints(t *testing.T) {
	tpl := For(catalog.Backend)
	if tpl.Layout != LayoutEndpoints {
		t.Fatalf("backend layout = %d, want endpoints", tpl.Layout)
	}
	want := []Endpoint{
		{"GET", "/api/products", MethodGet},
		{"POST", "/api/auth/login", MethodPost},
		{"PUT", "/api/users/:id", MethodPut},
	}
	if len(tpl.Endpoints) != len(want) {
		t.Fatalf("got %d endpoints, want %d", len(tpl.Endpoints), len(want))
	}
	for i, ep := range want {
		if tpl.Endpoints[i] != ep {
			t.Errorf("endpoint %d = %+v, want %+v", i, tpl.Endpoints[i], ep)
		}
	}
}

func TestSetupIsHeroWithSpinner(t *testing.T) {
	tpl := For(catalog.Setup)
	if tpl.Layout != LayoutHero || !tpl.Spinner {
		t.Errorf("setup should be a hero layout with a spinner, got %+v", tpl)
	}
	if got := tpl.HeadingLine(); got != "⚙️ Project Initialization" {
		t.Errorf("HeadingLine() = %q", got)
	}
}

func TestValuesHighlighted(t *testing.T) {
	tests := map[catalog.InterfaceTag]bool{
		catalog.Frontend:   false,
		catalog.Database:   false,
		catalog.Production: true,
		catalog.Optimized:  true,
	}
	for tag, want := range tests {
		if got := For(tag).ValuesHighlighted(); got != want {
			t.Errorf("%s ValuesHighlighted() = %v, want %v", tag, got, want)
		}
	}
}
