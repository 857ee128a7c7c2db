package character

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/cory-johannsen/ruins/internal/game/inventory"
	"github.com/cory-johannsen/ruins/internal/game/status"
	"github.com/cory-johannsen/ruins/internal/game/world"
)

const (
	defaultSlots     = 20
	defaultMaxWeight = 100.0
)

// Build creates a live Character from tmpl standing at pos, with full pools,
// an empty status ledger and the template's starting items.
//
// Precondition: tmpl must be valid; items must know every starting item.
// Postcondition: Returns a Character with a fresh uuid ID, or an error if a
// starting item cannot be placed.
func Build(tmpl *Template, pos world.Pos, items *inventory.Registry) (*Character, error) {
	slots, weight := tmpl.Slots, tmpl.MaxWeight
	if slots == 0 {
		slots = defaultSlots
	}
	if weight == 0 {
		weight = defaultMaxWeight
	}

	skills := make(map[SkillKind]int, len(tmpl.Skills))
	for k, v := range tmpl.Skills {
		skills[k] = v
	}

	c := &Character{
		ID:         uuid.New().String(),
		TemplateID: tmpl.ID,
		Name:       tmpl.Name,
		Faction:    tmpl.Faction,
		Attrs:      tmpl.Attrs,
		Skills:     skills,
		HP:         NewPool(tmpl.MaxHP),
		SP:         NewPool(tmpl.MaxSP),
		MP:         NewPool(tmpl.MaxMP),
		Status:     status.NewLedger(),
		Inventory:  inventory.NewBackpack(slots, weight),
		Pos:        pos,
		AI:         tmpl.AI,
	}
	for _, s := range tmpl.Items {
		if err := c.Inventory.Add(s.Item, s.N, items); err != nil {
			return nil, fmt.Errorf("building %q: starting item %q: %w", tmpl.ID, s.Item, err)
		}
	}
	return c, nil
}
