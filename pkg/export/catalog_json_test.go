package export

import (
	"bytes"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"

	"github.com/vanderheijden86/walkthrough/pkg/catalog"
)

func TestWriteCatalogJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCatalogJSON(&buf, catalog.Steps()); err != nil {
		t.Fatalf("WriteCatalogJSON: %v", err)
	}
	if !strings.Contains(buf.String(), `"interface": "backend"`) {
		t.Errorf("Expected interface tags as strings:\n%s", buf.String())
	}

	var doc CatalogDocument
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc.Title != catalog.Title {
		t.Errorf("title = %q", doc.Title)
	}
	if len(doc.Steps) != 6 {
		t.Fatalf("steps = %d, want 6", len(doc.Steps))
	}

	got := make([]catalog.Step, len(doc.Steps))
	for i, e := range doc.Steps {
		got[i] = e.Step
	}
	if diff := cmp.Diff(catalog.Steps(), got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	if doc.Steps[0].LogLines != 0 || doc.Steps[5].LogLines != 17 {
		t.Errorf("log line counts = %d, %d", doc.Steps[0].LogLines, doc.Steps[5].LogLines)
	}
	if doc.Steps[3].Mockup != "Database Schema" {
		t.Errorf("mockup = %q", doc.Steps[3].Mockup)
	}
}

func TestWriteCatalogJSON_OmitsEmptyTerminal(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCatalogJSON(&buf, catalog.Steps()[:1]); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), `"terminal"`) {
		t.Error("step 1 has no log; terminal should be omitted")
	}
}
