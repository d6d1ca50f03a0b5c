// Package mockup describes the six static browser mockups shown beside the
// tutorial text. Templates are plain data so both the terminal renderer and
// the SVG exporter draw the same thing.
package mockup

import (
	"fmt"

	"github.com/vanderheijden86/walkthrough/pkg/catalog"
)

// Layout is the arrangement of a template body.
type Layout int

const (
	LayoutHero      Layout = iota // Large icon, heading, spinner
	LayoutTiles                   // Grid of cards
	LayoutEndpoints               // Stacked monospace rows
)

// Palette colors shared by renderers (hex, Tailwind naming in comments).
const (
	DotRed    = "#F87171" // red-400
	DotYellow = "#FACC15" // yellow-400
	DotGreen  = "#4ADE80" // green-400

	ChromeBg  = "#F3F4F6" // gray-100
	URLBarBg  = "#FFFFFF"
	URLBarFg  = "#4B5563" // gray-600
	HeadingFg = "#1F2937" // gray-800
	SubtextFg = "#4B5563" // gray-600
	CardBg    = "#FFFFFF"
	MutedFg   = "#6B7280" // gray-500
	ValueFg   = "#16A34A" // green-600
	Spinner   = "#3B82F6" // blue-500

	MethodGet  = "#16A34A" // green-600
	MethodPost = "#2563EB" // blue-600
	MethodPut  = "#EA580C" // orange-600
)

// Tile is one card in a tiles layout.
type Tile struct {
	Icon  string
	Label string
	Value string
}

// Endpoint is one row in an endpoints layout.
type Endpoint struct {
	Method string
	Path   string
	Color  string
}

// Template is the body of a mockup.
type Template struct {
	Tag        catalog.InterfaceTag
	Icon       string
	Heading    string
	Subheading string
	// Gradient endpoints of the body background.
	BgFrom string
	BgTo   string
	// LabelColor tints tile labels; empty means the heading color.
	LabelColor string
	Layout     Layout
	Columns    int
	Tiles      []Tile
	Endpoints  []Endpoint
	Spinner    bool
}

// HeadingLine returns the icon and heading as one string.
func (t Template) HeadingLine() string {
	if t.Icon == "" {
		return t.Heading
	}
	return t.Icon + " " + t.Heading
}

// For returns the template for tag. Every InterfaceTag has exactly one.
func For(tag catalog.InterfaceTag) Template {
	switch tag {
	case catalog.Setup:
		return Template{
			Tag:        tag,
			Icon:       "⚙️",
			Heading:    "Project Initialization",
			Subheading: "Setting up development environment...",
			BgFrom:     "#F9FAFB",
			BgTo:       "#F3F4F6",
			Layout:     LayoutHero,
			Spinner:    true,
		}
	case catalog.Frontend:
		return Template{
			Tag:        tag,
			Icon:       "⚛️",
			Heading:    "React Dashboard",
			Subheading: "Modern e-commerce frontend",
			BgFrom:     "#EFF6FF",
			BgTo:       "#EEF2FF",
			Layout:     LayoutTiles,
			Columns:    3,
			Tiles: []Tile{
				{Icon: "🛍️", Label: "Products"},
				{Icon: "🛒", Label: "Cart"},
				{Icon: "👤", Label: "Profile"},
			},
		}
	case catalog.Backend:
		return Template{
			Tag:        tag,
			Icon:       "🔧",
			Heading:    "API Endpoints",
			Subheading: "RESTful backend services",
			BgFrom:     "#F0FDF4",
			BgTo:       "#ECFDF5",
			Layout:     LayoutEndpoints,
			Endpoints: []Endpoint{
				{Method: "GET", Path: "/api/products", Color: MethodGet},
				{Method: "POST", Path: "/api/auth/login", Color: MethodPost},
				{Method: "PUT", Path: "/api/users/:id", Color: MethodPut},
			},
		}
	case catalog.Database:
		return Template{
			Tag:        tag,
			Icon:       "🗄️",
			Heading:    "Database Schema",
			Subheading: "MongoDB collections",
			BgFrom:     "#FAF5FF",
			BgTo:       "#F5F3FF",
			LabelColor: "#9333EA", // purple-600
			Layout:     LayoutTiles,
			Columns:    2,
			Tiles: []Tile{
				{Label: "Users", Value: "1,247 docs"},
				{Label: "Products", Value: "856 docs"},
				{Label: "Orders", Value: "2,341 docs"},
				{Label: "Reviews", Value: "4,123 docs"},
			},
		}
	case catalog.Production:
		return Template{
			Tag:        tag,
			Icon:       "🌐",
			Heading:    "Production Dashboard",
			Subheading: "Live application metrics",
			BgFrom:     "#FEF2F2",
			BgTo:       "#FDF2F8",
			Layout:     LayoutTiles,
			Columns:    2,
			Tiles: []Tile{
				{Icon: "📈", Label: "Active Users", Value: "2,847"},
				{Icon: "💰", Label: "Revenue", Value: "$12.4K"},
			},
		}
	case catalog.Optimized:
		return Template{
			Tag:        tag,
			Icon:       "⚡",
			Heading:    "Performance Metrics",
			Subheading: "Optimized application stats",
			BgFrom:     "#FEFCE8",
			BgTo:       "#FFF7ED",
			Layout:     LayoutTiles,
			Columns:    2,
			Tiles: []Tile{
				{Icon: "🚀", Label: "Load Time", Value: "0.8s"},
				{Icon: "📊", Label: "Performance", Value: "98/100"},
			},
		}
	default:
		panic(fmt.Sprintf("mockup: no template for %s", tag))
	}
}

// ValuesHighlighted reports whether tile values are metrics (drawn bold in
// green) rather than captions.
func (t Template) ValuesHighlighted() bool {
	return t.Tag == catalog.Production || t.Tag == catalog.Optimized
}
