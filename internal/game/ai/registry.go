package ai

import (
	"fmt"
	"sort"
)

// Registry maps domain IDs to their planners.
type Registry struct {
	planners map[string]*Planner
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{planners: make(map[string]*Planner)}
}

// Register validates domain and stores a planner for it.
//
// Precondition: domain and caller must not be nil.
// Postcondition: returns an error for an invalid domain or a repeated ID.
func (r *Registry) Register(domain *Domain, caller ScriptCaller, vm string) error {
	if err := domain.Validate(); err != nil {
		return err
	}
	if _, exists := r.planners[domain.ID]; exists {
		return fmt.Errorf("ai: domain %q already registered", domain.ID)
	}
	r.planners[domain.ID] = NewPlanner(domain, caller, vm)
	return nil
}

// PlannerFor returns the planner registered for domainID.
func (r *Registry) PlannerFor(domainID string) (*Planner, bool) {
	p, ok := r.planners[domainID]
	return p, ok
}

// IDs returns the registered domain IDs, sorted.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.planners))
	for id := range r.planners {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
