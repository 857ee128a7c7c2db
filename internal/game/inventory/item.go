// Package inventory holds item definitions and the backpacks characters
// carry building materials and supplies in.
package inventory

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ItemKind groups items by how the game uses them.
type ItemKind string

// Item kinds.
const (
	// KindMaterial items are consumed by construction.
	KindMaterial   ItemKind = "material"
	KindConsumable ItemKind = "consumable"
	KindTool       ItemKind = "tool"
	KindJunk       ItemKind = "junk"
)

func (k ItemKind) valid() bool {
	switch k {
	case KindMaterial, KindConsumable, KindTool, KindJunk:
		return true
	}
	return false
}

// ItemDef is the static definition of an item.
type ItemDef struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Kind        ItemKind `yaml:"kind"`
	Weight      float64  `yaml:"weight"`
	// Stackable items share one backpack slot up to MaxStack units.
	// Every other item takes a slot per unit.
	Stackable bool `yaml:"stackable"`
	MaxStack  int  `yaml:"max_stack"`
	Value     int  `yaml:"value"`
}

// StackLimit returns how many units of d fit in one slot.
func (d *ItemDef) StackLimit() int {
	if !d.Stackable {
		return 1
	}
	return d.MaxStack
}

// Validate reports every problem with d.
func (d *ItemDef) Validate() error {
	var errs []string
	if d.ID == "" {
		errs = append(errs, "id must not be empty")
	}
	if d.Name == "" {
		errs = append(errs, "name must not be empty")
	}
	if !d.Kind.valid() {
		errs = append(errs, fmt.Sprintf("kind must be material, consumable, tool or junk, got %q", d.Kind))
	}
	if d.Kind == KindMaterial && !d.Stackable {
		errs = append(errs, "materials must be stackable")
	}
	switch {
	case d.Stackable && d.MaxStack < 2:
		errs = append(errs, fmt.Sprintf("stackable items need max_stack >= 2, got %d", d.MaxStack))
	case !d.Stackable && d.MaxStack > 1:
		errs = append(errs, fmt.Sprintf("max_stack %d on an item that does not stack", d.MaxStack))
	}
	if d.Weight < 0 {
		errs = append(errs, "weight must be >= 0")
	}
	if d.Value < 0 {
		errs = append(errs, "value must be >= 0")
	}
	if len(errs) > 0 {
		return fmt.Errorf("item %q: %s", d.ID, strings.Join(errs, "; "))
	}
	return nil
}

// LoadItems reads every *.yaml file in dir in file-name order. A file may
// hold several definitions as separate YAML documents.
//
// Postcondition: returns every definition, each validated, or the first error.
func LoadItems(dir string) ([]*ItemDef, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("inventory: listing %q: %w", dir, err)
	}
	sort.Strings(paths)

	var defs []*ItemDef
	for _, path := range paths {
		fileDefs, err := loadItemFile(path)
		if err != nil {
			return nil, err
		}
		defs = append(defs, fileDefs...)
	}
	return defs, nil
}

func loadItemFile(path string) ([]*ItemDef, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("inventory: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	var defs []*ItemDef
	for {
		var d ItemDef
		err := dec.Decode(&d)
		if errors.Is(err, io.EOF) {
			return defs, nil
		}
		if err != nil {
			return nil, fmt.Errorf("inventory: parsing %s: %w", path, err)
		}
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("inventory: %s: %w", path, err)
		}
		defs = append(defs, &d)
	}
}
