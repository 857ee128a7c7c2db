package character

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Stack is a starting inventory entry.
type Stack struct {
	Item string `yaml:"item"`
	N    int    `yaml:"n"`
}

// Template defines a reusable character archetype loaded from YAML.
type Template struct {
	ID        string            `yaml:"id"`
	Name      string            `yaml:"name"`
	Faction   Faction           `yaml:"faction"`
	Attrs     Attributes        `yaml:"attributes"`
	Skills    map[SkillKind]int `yaml:"skills"`
	MaxHP     int               `yaml:"max_hp"`
	MaxSP     int               `yaml:"max_sp"`
	MaxMP     int               `yaml:"max_mp"`
	Slots     int               `yaml:"slots"`
	MaxWeight float64           `yaml:"max_weight"`
	Items     []Stack           `yaml:"items"`
	// AI names the behaviour domain driving NPCs built from this template.
	AI string `yaml:"ai"`
}

// Validate checks that the template satisfies basic invariants.
//
// Precondition: t must not be nil.
// Postcondition: Returns nil iff ID and Name are non-empty, MaxHP >= 1, Spd >= 1,
// pools and carrying limits are non-negative; returns an error on the first violation otherwise.
func (t *Template) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("character template: id must not be empty")
	}
	if t.Name == "" {
		return fmt.Errorf("character template %q: name must not be empty", t.ID)
	}
	if t.MaxHP < 1 {
		return fmt.Errorf("character template %q: max_hp must be >= 1", t.ID)
	}
	if t.MaxSP < 0 || t.MaxMP < 0 {
		return fmt.Errorf("character template %q: max_sp and max_mp must be >= 0", t.ID)
	}
	if t.Attrs.Spd < 1 {
		return fmt.Errorf("character template %q: attributes.spd must be >= 1", t.ID)
	}
	if t.Slots < 0 || t.MaxWeight < 0 {
		return fmt.Errorf("character template %q: slots and max_weight must be >= 0", t.ID)
	}
	for _, s := range t.Items {
		if s.Item == "" || s.N < 1 {
			return fmt.Errorf("character template %q: item entries need an id and n >= 1", t.ID)
		}
	}
	return nil
}

// LoadTemplateFromBytes parses a single template from raw YAML bytes.
//
// Postcondition: Returns a validated *Template, or an error.
func LoadTemplateFromBytes(data []byte) (*Template, error) {
	var tmpl Template
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&tmpl); err != nil {
		return nil, fmt.Errorf("parsing template YAML: %w", err)
	}
	if err := tmpl.Validate(); err != nil {
		return nil, err
	}
	return &tmpl, nil
}

// LoadTemplates reads all *.yaml files in dir and returns the parsed templates.
//
// Precondition: dir must be a readable directory.
// Postcondition: Returns all templates or an error on the first parse or validate failure.
func LoadTemplates(dir string) ([]*Template, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading character dir %q: %w", dir, err)
	}

	var templates []*Template
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}
		tmpl, err := LoadTemplateFromBytes(data)
		if err != nil {
			return nil, fmt.Errorf("loading %q: %w", path, err)
		}
		templates = append(templates, tmpl)
	}
	return templates, nil
}
