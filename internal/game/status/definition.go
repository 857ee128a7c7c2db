// Package status tracks the timed conditions attached to a character and
// advances them once per turn.
package status

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind identifies a status condition, e.g. "asleep".
type Kind string

// Built-in status kinds.
const (
	Asleep   Kind = "asleep"
	Poisoned Kind = "poisoned"
	Hungry   Kind = "hungry"
	Weak     Kind = "weak"
)

// Def is the static definition of a status kind, loaded from YAML.
type Def struct {
	ID          Kind   `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	// Incapacitating statuses prevent their bearer from acting.
	Incapacitating bool `yaml:"incapacitating"`
	// DamageDivisor > 0 makes the status deal max_hp / DamageDivisor damage every turn.
	DamageDivisor int `yaml:"damage_divisor"`
}

// Validate checks that the definition is usable.
func (d *Def) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("status id must not be empty")
	}
	if d.DamageDivisor < 0 {
		return fmt.Errorf("status %q: damage_divisor must be >= 0, got %d", d.ID, d.DamageDivisor)
	}
	return nil
}

// Registry holds all known Defs keyed by Kind.
type Registry struct {
	defs map[Kind]*Def
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[Kind]*Def)}
}

// DefaultRegistry returns a Registry holding the built-in kinds.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&Def{ID: Asleep, Name: "Asleep", Incapacitating: true})
	r.Register(&Def{ID: Poisoned, Name: "Poisoned", DamageDivisor: 20})
	r.Register(&Def{ID: Hungry, Name: "Hungry"})
	r.Register(&Def{ID: Weak, Name: "Weak"})
	return r
}

// Register adds def to the registry, overwriting any existing entry with the same ID.
// Precondition: def must not be nil and def.ID must not be empty.
func (r *Registry) Register(def *Def) {
	r.defs[def.ID] = def
}

// Get returns the Def for kind, or (nil, false) if not found.
func (r *Registry) Get(kind Kind) (*Def, bool) {
	d, ok := r.defs[kind]
	return d, ok
}

// Incapacitating reports whether kind is registered and prevents acting.
func (r *Registry) Incapacitating(kind Kind) bool {
	d, ok := r.defs[kind]
	return ok && d.Incapacitating
}

// All returns every registered Def sorted by ID.
func (r *Registry) All() []*Def {
	out := make([]*Def, 0, len(r.defs))
	for _, d := range r.defs {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// LoadDirectory reads every *.yaml file in dir on top of the built-in kinds.
//
// Precondition: dir must be a readable directory.
// Postcondition: Returns a non-nil Registry, or an error if any file fails to parse or validate.
func LoadDirectory(dir string) (*Registry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading status dir %q: %w", dir, err)
	}
	reg := DefaultRegistry()
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}
		var def Def
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&def); err != nil {
			return nil, fmt.Errorf("parsing %q: %w", path, err)
		}
		if err := def.Validate(); err != nil {
			return nil, fmt.Errorf("validating %q: %w", path, err)
		}
		reg.Register(&def)
	}
	return reg, nil
}
