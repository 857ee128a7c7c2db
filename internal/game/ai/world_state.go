package ai

import "github.com/cory-johannsen/ruins/internal/game/world"

// CharaState captures a character's planning-relevant state.
type CharaState struct {
	ID      string
	Name    string
	Faction string
	HP      int
	MaxHP   int
	Pos     world.Pos
	Dead    bool
}

// HPPercent returns current HP as a percentage of MaxHP; 0 if MaxHP == 0.
func (c *CharaState) HPPercent() float64 {
	if c.MaxHP <= 0 {
		return 0
	}
	return float64(c.HP) / float64(c.MaxHP) * 100
}

// WorldState is the snapshot passed to the HTN planner for one NPC.
//
// Invariant: Self must not be nil and must not appear in Others.
type WorldState struct {
	Self   *CharaState
	Others []*CharaState
}

// Enemies returns all living characters of a different faction from Self.
//
// Postcondition: returned slice contains no dead characters and no allies.
func (ws *WorldState) Enemies() []*CharaState {
	var out []*CharaState
	for _, c := range ws.Others {
		if !c.Dead && c.Faction != ws.Self.Faction {
			out = append(out, c)
		}
	}
	return out
}

// Allies returns all living characters of Self's faction other than Self.
func (ws *WorldState) Allies() []*CharaState {
	var out []*CharaState
	for _, c := range ws.Others {
		if !c.Dead && c.Faction == ws.Self.Faction {
			out = append(out, c)
		}
	}
	return out
}

// NearestEnemy returns the living enemy closest to Self, or nil.
//
// Postcondition: ties are broken by order in Others.
func (ws *WorldState) NearestEnemy() *CharaState {
	var best *CharaState
	for _, e := range ws.Enemies() {
		if best == nil || ws.Self.Pos.Distance(e.Pos) < ws.Self.Pos.Distance(best.Pos) {
			best = e
		}
	}
	return best
}

// WeakestEnemy returns the living enemy with the lowest HP percentage, or nil.
//
// Postcondition: ties are broken by order in Others.
func (ws *WorldState) WeakestEnemy() *CharaState {
	var weakest *CharaState
	for _, e := range ws.Enemies() {
		if weakest == nil || e.HPPercent() < weakest.HPPercent() {
			weakest = e
		}
	}
	return weakest
}

// ResolveTarget returns the ID of the character t names, or "" when there is none.
func (ws *WorldState) ResolveTarget(t Target) string {
	var c *CharaState
	switch t {
	case NearestEnemy:
		c = ws.NearestEnemy()
	case WeakestEnemy:
		c = ws.WeakestEnemy()
	case Self:
		c = ws.Self
	}
	if c == nil {
		return ""
	}
	return c.ID
}
