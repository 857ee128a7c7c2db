package world

import "fmt"

// Dungeon holds the ordered floors of a run and tracks the current one.
type Dungeon struct {
	floors  []*Floor
	current int
}

// NewDungeon creates a Dungeon positioned on the first floor.
//
// Precondition: floors must be non-empty and ordered by depth.
// Postcondition: Returns a Dungeon, or an error on duplicate floor IDs.
func NewDungeon(floors []*Floor) (*Dungeon, error) {
	if len(floors) == 0 {
		return nil, fmt.Errorf("dungeon requires at least one floor")
	}
	seen := make(map[string]bool, len(floors))
	for _, f := range floors {
		if seen[f.Map.ID] {
			return nil, fmt.Errorf("duplicate floor ID: %q", f.Map.ID)
		}
		seen[f.Map.ID] = true
	}
	return &Dungeon{floors: floors}, nil
}

// Current returns the floor the player is on.
func (d *Dungeon) Current() *Floor {
	return d.floors[d.current]
}

// Depth returns the zero-based index of the current floor.
func (d *Dungeon) Depth() int {
	return d.current
}

// Descend moves to the next floor.
//
// Postcondition: Returns (next, true), or (current, false) on the deepest floor.
func (d *Dungeon) Descend() (*Floor, bool) {
	if d.current+1 >= len(d.floors) {
		return d.Current(), false
	}
	d.current++
	return d.Current(), true
}

// FloorCount returns the number of floors.
func (d *Dungeon) FloorCount() int {
	return len(d.floors)
}
