package command

import (
	"errors"
	"fmt"
	"strings"
)

// Registry resolves canonical words and aliases to Defs.
type Registry struct {
	words map[string]*Def
	defs  []*Def
}

// NewRegistry indexes defs by name and alias. Words are matched in lower
// case.
//
// Postcondition: returns every collision between names and aliases, or a
// Registry listing defs in the given order.
func NewRegistry(defs []Def) (*Registry, error) {
	r := &Registry{words: make(map[string]*Def)}
	var errs []error
	for i := range defs {
		d := &defs[i]
		for _, w := range append([]string{d.Name}, d.Aliases...) {
			w = strings.ToLower(w)
			if w == "" {
				errs = append(errs, fmt.Errorf("command %q: empty word", d.Name))
				continue
			}
			if prev, ok := r.words[w]; ok {
				errs = append(errs, fmt.Errorf("word %q used by both %q and %q", w, prev.Name, d.Name))
				continue
			}
			r.words[w] = d
		}
		r.defs = append(r.defs, d)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return r, nil
}

// DefaultRegistry returns a Registry of BuiltinDefs.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(BuiltinDefs())
	if err != nil {
		panic("command: builtin words collide: " + err.Error())
	}
	return r
}

// Resolve looks up a lower-case word.
func (r *Registry) Resolve(word string) (*Def, bool) {
	d, ok := r.words[word]
	return d, ok
}

// Defs returns every def in registration order.
func (r *Registry) Defs() []*Def {
	return append([]*Def(nil), r.defs...)
}

// HelpLines lists the words under a heading per category, in registration
// order.
func (r *Registry) HelpLines() []string {
	var lines []string
	category := ""
	for _, d := range r.defs {
		if d.Category != category {
			category = d.Category
			lines = append(lines, category+":")
		}
		lines = append(lines, fmt.Sprintf("  %-18s %s", d.Usage(), d.Help))
	}
	return lines
}
