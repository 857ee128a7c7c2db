package action

import (
	"github.com/cory-johannsen/ruins/internal/game/character"
	"github.com/cory-johannsen/ruins/internal/game/world"
)

// Move steps characters across the current map.
type Move struct {
	world World
	tiles world.TileLookup
}

// NewMove creates a Move resolver.
func NewMove(w World, tiles world.TileLookup) *Move {
	return &Move{world: w, tiles: tiles}
}

// Step moves actor one tile in dir when the destination is passable and
// unoccupied.
//
// Postcondition: Returns true iff actor.Pos changed.
func (m *Move) Step(actor *character.Character, dir world.Direction) bool {
	if !dir.IsStandard() {
		return false
	}
	dest := actor.Pos.Step(dir)
	if !m.world.CurrentMap().IsPassable(m.tiles, dest) {
		return false
	}
	if _, occupied := m.world.CharaAt(dest); occupied {
		return false
	}
	actor.Pos = dest
	return true
}
