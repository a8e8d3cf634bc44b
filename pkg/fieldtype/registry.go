package fieldtype

import (
	"fmt"
	"sort"
	"sync"
)

// Constructor builds a variant instance from a display name and raw
// constraints.
type Constructor func(name string, constraints Constraints, opts ...Option) (FieldType, error)

// Descriptor pairs a type tag with the constructor registered for it.
type Descriptor struct {
	Tag string
	New Constructor
}

// Registry stores variant descriptors by tag, providing discovery and
// duplication safeguards. Lookups and registrations are safe for concurrent
// use, though the expected pattern is to populate a registry once at process
// start and treat it as read-only afterwards.
type Registry struct {
	mu    sync.RWMutex
	types map[string]Descriptor
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		types: make(map[string]Descriptor),
	}
}

// Register adds a descriptor by its tag. Duplicate tags return an error.
func (r *Registry) Register(desc Descriptor) error {
	if desc.Tag == "" {
		return fmt.Errorf("fieldtype: type tag is required")
	}
	if desc.New == nil {
		return fmt.Errorf("fieldtype: constructor for type %q is required", desc.Tag)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.types[desc.Tag]; exists {
		return fmt.Errorf("fieldtype: type %q already registered", desc.Tag)
	}

	r.types[desc.Tag] = desc
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(desc Descriptor) {
	if err := r.Register(desc); err != nil {
		panic(err)
	}
}

// Lookup retrieves the descriptor registered under tag. Unknown tags return
// an error wrapping ErrTypeNotFound.
func (r *Registry) Lookup(tag string) (Descriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	desc, ok := r.types[tag]
	if !ok {
		return Descriptor{}, fmt.Errorf("fieldtype: type %q: %w", tag, ErrTypeNotFound)
	}
	return desc, nil
}

// Types returns the registered descriptors sorted by tag so enumeration is
// stable across runs.
func (r *Registry) Types() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Descriptor, 0, len(r.types))
	for _, desc := range r.types {
		out = append(out, desc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Tag < out[j].Tag })
	return out
}

var defaultRegistry = func() *Registry {
	r := NewRegistry()
	r.MustRegister(Descriptor{Tag: TagText, New: NewText})
	r.MustRegister(Descriptor{Tag: TagNumber, New: NewNumber})
	r.MustRegister(Descriptor{Tag: TagDate, New: NewDate})
	r.MustRegister(Descriptor{Tag: TagEnum, New: NewEnum})
	return r
}()

// DefaultRegistry returns the registry pre-populated with the built-in
// variants. Callers extending the type set should register before any
// validation traffic begins.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// New constructs a field of the given tag through the default registry.
func New(tag, name string, constraints Constraints, opts ...Option) (FieldType, error) {
	desc, err := defaultRegistry.Lookup(tag)
	if err != nil {
		return nil, err
	}
	return desc.New(name, constraints, opts...)
}
