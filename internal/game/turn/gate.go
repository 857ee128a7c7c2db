// Package turn advances game time: it schedules actors by speed, runs the
// per-character pre-turn bookkeeping and hands control back to the player.
package turn

import (
	"github.com/cory-johannsen/ruins/internal/game/character"
	"github.com/cory-johannsen/ruins/internal/game/gamelog"
	"github.com/cory-johannsen/ruins/internal/game/status"
)

// Gate decides whether a character may act this turn.
type Gate struct {
	defs *status.Registry
	log  gamelog.Sink
}

// NewGate creates a Gate reading incapacitation flags from defs.
//
// Precondition: defs and log must not be nil.
func NewGate(defs *status.Registry, log gamelog.Sink) *Gate {
	return &Gate{defs: defs, log: log}
}

// CanAct reports whether c may act. The first incapacitating status in
// ledger order wins and is reported as "cannot-act-<kind>".
//
// Postcondition: c is not mutated.
func (g *Gate) CanAct(c *character.Character) bool {
	if blocker, ok := g.Blocker(c); ok {
		g.log.Emit("cannot-act-"+string(blocker), gamelog.Chara(c.Name))
		return false
	}
	return true
}

// Blocker returns the first incapacitating status kind on c without logging.
func (g *Gate) Blocker(c *character.Character) (status.Kind, bool) {
	if c.Status == nil {
		return "", false
	}
	for _, s := range c.Status.All() {
		if g.defs.Incapacitating(s.Kind) {
			return s.Kind, true
		}
	}
	return "", false
}
