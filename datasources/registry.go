package datasources

import (
	"fmt"
	"sync"
)

// Registry holds the datasets of a server, indexed by name. Registration
// order is preserved for listing.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]*Dataset
	order  []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Dataset)}
}

// Register adds a dataset. A dataset with the same name must not already
// be registered.
func (r *Registry) Register(d *Dataset) error {
	if d.Name == "" {
		return fmt.Errorf("dataset has no name")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byName[d.Name]; ok {
		return fmt.Errorf("dataset %q already registered", d.Name)
	}
	r.byName[d.Name] = d
	r.order = append(r.order, d.Name)
	return nil
}

// Get returns the dataset registered under name.
func (r *Registry) Get(name string) (*Dataset, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.byName[name]
	return d, ok
}

// List returns all datasets in registration order.
func (r *Registry) List() []*Dataset {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Dataset, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name])
	}
	return out
}
