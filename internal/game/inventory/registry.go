package inventory

import (
	"fmt"
	"sort"
)

// Registry indexes item definitions by ID.
type Registry struct {
	items map[string]*ItemDef
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{items: make(map[string]*ItemDef)}
}

// Register adds d.
//
// Precondition: d must not be nil.
// Postcondition: returns an error if d.ID is already registered.
func (r *Registry) Register(d *ItemDef) error {
	if _, exists := r.items[d.ID]; exists {
		return fmt.Errorf("inventory: item %q already registered", d.ID)
	}
	r.items[d.ID] = d
	return nil
}

// Item returns the definition for id.
func (r *Registry) Item(id string) (*ItemDef, bool) {
	d, ok := r.items[id]
	return d, ok
}

// Name returns the display name of id, or id itself when it is unknown or unnamed.
func (r *Registry) Name(id string) string {
	if d, ok := r.items[id]; ok && d.Name != "" {
		return d.Name
	}
	return id
}

// All returns every definition sorted by ID.
func (r *Registry) All() []*ItemDef {
	out := make([]*ItemDef, 0, len(r.items))
	for _, d := range r.items {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
