package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// InterfaceTag selects which mockup template a step shows.
type InterfaceTag int

const (
	Setup InterfaceTag = iota
	Frontend
	Backend
	Database
	Production
	Optimized
)

// ErrUnknownInterface is returned when a tag name does not match any template.
var ErrUnknownInterface = errors.New("unknown interface tag")

// InterfaceTags lists every tag in catalog order.
func InterfaceTags() []InterfaceTag {
	return []InterfaceTag{Setup, Frontend, Backend, Database, Production, Optimized}
}

func (t InterfaceTag) String() string {
	switch t {
	case Setup:
		return "setup"
	case Frontend:
		return "frontend"
	case Backend:
		return "backend"
	case Database:
		return "database"
	case Production:
		return "production"
	case Optimized:
		return "optimized"
	default:
		return fmt.Sprintf("InterfaceTag(%d)", int(t))
	}
}

// Valid reports whether t is one of the six known tags.
func (t InterfaceTag) Valid() bool {
	return t >= Setup && t <= Optimized
}

// ParseInterfaceTag maps a tag name (case-insensitive) back to its value.
func ParseInterfaceTag(s string) (InterfaceTag, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, t := range InterfaceTags() {
		if t.String() == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownInterface, s)
}

// MarshalText implements encoding.TextMarshaler so tags serialize by name.
func (t InterfaceTag) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownInterface, int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *InterfaceTag) UnmarshalText(b []byte) error {
	parsed, err := ParseInterfaceTag(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
