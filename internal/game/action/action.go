// Package action resolves player-initiated actions against character,
// inventory and map state. Every resolver validates fully before mutating.
package action

import (
	"github.com/cory-johannsen/ruins/internal/game/character"
	"github.com/cory-johannsen/ruins/internal/game/world"
)

// World is the mutable map state resolvers act on.
type World interface {
	// CurrentMap returns the map the player is on.
	CurrentMap() *world.Map
	// CharaAt returns the living character standing at p.
	CharaAt(p world.Pos) (*character.Character, bool)
}

// Visibility answers whether actor can currently see target.
type Visibility interface {
	TargetVisible(actor, target *character.Character) bool
}

// VisibilityFunc adapts a function to Visibility.
type VisibilityFunc func(actor, target *character.Character) bool

// TargetVisible calls f(actor, target).
func (f VisibilityFunc) TargetVisible(actor, target *character.Character) bool {
	return f(actor, target)
}

// Cues plays fire-and-forget presentation cues such as sounds.
type Cues interface {
	Play(name string)
}
