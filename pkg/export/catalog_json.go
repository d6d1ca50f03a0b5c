package export

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"

	"github.com/vanderheijden86/walkthrough/pkg/catalog"
	"github.com/vanderheijden86/walkthrough/pkg/mockup"
)

// CatalogEntry is one step as listed by `wt steps --json`.
type CatalogEntry struct {
	catalog.Step
	Mockup   string `json:"mockup"`
	LogLines int    `json:"log_lines"`
}

// CatalogDocument is the JSON form of the whole walkthrough.
type CatalogDocument struct {
	Title string         `json:"title"`
	Steps []CatalogEntry `json:"steps"`
}

// BuildCatalogDocument pairs each step with its mockup heading.
func BuildCatalogDocument(steps []catalog.Step) CatalogDocument {
	doc := CatalogDocument{Title: catalog.Title, Steps: make([]CatalogEntry, 0, len(steps))}
	for _, s := range steps {
		doc.Steps = append(doc.Steps, CatalogEntry{
			Step:     s,
			Mockup:   mockup.For(s.Interface).Heading,
			LogLines: len(s.TerminalLines()),
		})
	}
	return doc
}

// WriteCatalogJSON writes the catalog as indented JSON.
func WriteCatalogJSON(w io.Writer, steps []catalog.Step) error {
	data, err := json.MarshalIndent(BuildCatalogDocument(steps), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	return nil
}
