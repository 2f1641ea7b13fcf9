package snapshot

import (
	"fmt"
	"math"
	"slices"
)

// Bundle is an ordered list of named sections saved and loaded together.
// Section names identify payloads across schema evolution, so they should
// stay stable once a snapshot format ships.
type Bundle struct {
	names    []string
	sections map[string]Section
}

// NewBundle creates an empty bundle.
func NewBundle() *Bundle {
	return &Bundle{
		sections: make(map[string]Section),
	}
}

// Add registers a named section and returns the bundle for chaining.
// Registering an empty or duplicate name is a programming error and
// panics.
func (b *Bundle) Add(name string, s Section) *Bundle {
	if name == "" {
		panic("snapshot: empty section name")
	}
	if len(name) > math.MaxUint16 {
		panic(fmt.Sprintf("snapshot: section name of %d bytes exceeds the frame limit", len(name)))
	}
	if s == nil {
		panic(fmt.Sprintf("snapshot: nil section %q", name))
	}
	if _, exists := b.sections[name]; exists {
		panic(fmt.Sprintf("snapshot: duplicate section %q", name))
	}
	b.names = append(b.names, name)
	b.sections[name] = s
	return b
}

// Len returns the number of registered sections.
func (b *Bundle) Len() int {
	return len(b.names)
}

// Names returns the section names in registration order.
func (b *Bundle) Names() []string {
	return slices.Clone(b.names)
}
