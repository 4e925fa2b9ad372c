package probe

import (
	"context"
	"fmt"
	"sync"
)

// Built-in section names.
const (
	SectionSync   = "sync"
	SectionMemory = "memory"
	SectionHost   = "host"
)

// ProbeFunc gathers the facts of one section.
type ProbeFunc func(ctx context.Context) ([]Fact, error)

// Registry holds named sections in registration order.
type Registry struct {
	mu     sync.Mutex
	order  []string
	probes map[string]ProbeFunc
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		probes: make(map[string]ProbeFunc, 8),
	}
}

// DefaultRegistry returns a registry with the built-in sections, in the
// order the report prints them: sync, memory, host.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	// Registration of built-ins cannot collide.
	_ = r.Register(SectionSync, syncFacts)
	_ = r.Register(SectionMemory, memoryFacts)
	_ = r.Register(SectionHost, hostFacts)
	return r
}

// Register adds a section probe under name. Registering a name twice
// returns ErrDuplicateSection.
func (r *Registry) Register(name string, fn ProbeFunc) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.probes[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateSection, name)
	}
	r.order = append(r.order, name)
	r.probes[name] = fn
	return nil
}

// Names returns the registered section names in registration order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Lookup returns the probe registered under name.
func (r *Registry) Lookup(name string) (ProbeFunc, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn, ok := r.probes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSection, name)
	}
	return fn, nil
}
