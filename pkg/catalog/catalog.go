// Package catalog holds the fixed list of tutorial steps.
//
// The catalog is defined once at package level and never mutated; Steps and
// Lookup hand out copies.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultURL is shown in the mockup URL bar when a step has no URL.
const DefaultURL = "localhost:3000"

// Title is the heading of the whole walkthrough.
const Title = "Full-Stack Development Tutorial"

// ErrUnknownStep is returned by Lookup for ids outside the catalog.
var ErrUnknownStep = errors.New("unknown step")

// Step is one unit of the tutorial.
type Step struct {
	ID        int          `json:"id"`
	Title     string       `json:"title"`
	Content   string       `json:"content"`
	Terminal  string       `json:"terminal,omitempty"` // Empty means no console
	URL       string       `json:"url"`
	Interface InterfaceTag `json:"interface"`
}

// HasTerminal reports whether the step carries a console log.
func (s Step) HasTerminal() bool {
	return s.Terminal != ""
}

// DisplayURL returns the URL for the mockup bar, falling back to DefaultURL.
func (s Step) DisplayURL() string {
	if s.URL == "" {
		return DefaultURL
	}
	return s.URL
}

// TerminalLines splits the console log into its lines.
func (s Step) TerminalLines() []string {
	if s.Terminal == "" {
		return nil
	}
	return strings.Split(s.Terminal, "\n")
}

// Console log lines, in the order they appear. Each step's log is a prefix
// of the next one.
var logLines = [...]string{
	"🚀 React development server starting...",
	"✅ TypeScript compiler initialized",
	"📦 Tailwind CSS configured",
	"🎨 Component library ready",
	"🔗 Express server running on port 5000",
	"🛡️ JWT authentication configured",
	"🗄️ MongoDB connection established",
	"📊 Database schemas created",
	"✨ CRUD operations implemented",
	"🧪 Test suites passing (95% coverage)",
	"🐳 Docker containers built",
	"🌐 Deployed to AWS ECS",
	"📈 Monitoring & logging active",
	"⚡ Code splitting implemented",
	"🚀 Lazy loading optimized",
	"💾 Redis caching active",
	"🌍 CloudFront CDN configured",
}

func logUpTo(n int) string {
	return strings.Join(logLines[:n], "\n")
}

var steps = [...]Step{
	{
		ID:        1,
		Title:     "Project Setup",
		Content:   "Welcome to our Full-Stack Development Tutorial. We'll build a complete e-commerce application using modern technologies and best practices.",
		URL:       "localhost:3000",
		Interface: Setup,
	},
	{
		ID:        2,
		Title:     "Frontend Development",
		Content:   "Let's start building our React frontend with TypeScript. We'll create responsive components using Tailwind CSS and implement state management.",
		Terminal:  logUpTo(4),
		URL:       "localhost:3000/dashboard",
		Interface: Frontend,
	},
	{
		ID:        3,
		Title:     "Backend API",
		Content:   "Now we'll develop our Node.js backend with Express. Setting up RESTful APIs, authentication middleware, and database connections.",
		Terminal:  logUpTo(7),
		URL:       "localhost:3000/api/products",
		Interface: Backend,
	},
	{
		ID:        4,
		Title:     "Database Integration",
		Content:   "Integrating MongoDB with Mongoose ODM. Creating schemas, implementing CRUD operations, and setting up data validation.",
		Terminal:  logUpTo(9),
		URL:       "localhost:3000/products",
		Interface: Database,
	},
	{
		ID:        5,
		Title:     "Testing & Deployment",
		Content:   "Writing unit tests with Jest, integration tests, and deploying to production using Docker containers and AWS services.",
		Terminal:  logUpTo(13),
		URL:       "myapp.com",
		Interface: Production,
	},
	{
		ID:        6,
		Title:     "Performance Optimization",
		Content:   "Optimizing application performance with code splitting, lazy loading, caching strategies, and CDN implementation.",
		Terminal:  logUpTo(17),
		URL:       "myapp.com/optimized",
		Interface: Optimized,
	},
}

// Steps returns a copy of the catalog in id order.
func Steps() []Step {
	out := make([]Step, len(steps))
	copy(out, steps[:])
	return out
}

// Len returns the number of steps.
func Len() int {
	return len(steps)
}

// FirstID returns the id of the first step.
func FirstID() int {
	return steps[0].ID
}

// LastID returns the id of the final step.
func LastID() int {
	return steps[len(steps)-1].ID
}

// Lookup returns the step with the given id.
func Lookup(id int) (Step, error) {
	if id < 1 || id > len(steps) {
		return Step{}, fmt.Errorf("%w: %d", ErrUnknownStep, id)
	}
	return steps[id-1], nil
}

// MustLookup is Lookup for ids already known to be valid.
func MustLookup(id int) Step {
	s, err := Lookup(id)
	if err != nil {
		panic(err)
	}
	return s
}

// Validate checks the catalog invariants: contiguous ids from 1, known
// interface tags, and a non-empty title on every step.
func Validate(list []Step) error {
	for i, s := range list {
		if s.ID != i+1 {
			return fmt.Errorf("step at index %d has id %d, want %d", i, s.ID, i+1)
		}
		if !s.Interface.Valid() {
			return fmt.Errorf("step %d: %w: %d", s.ID, ErrUnknownInterface, int(s.Interface))
		}
		if strings.TrimSpace(s.Title) == "" {
			return fmt.Errorf("step %d: empty title", s.ID)
		}
	}
	return nil
}
