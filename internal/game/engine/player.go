package engine

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/ruins/internal/game/character"
	"github.com/cory-johannsen/ruins/internal/game/content"
	"github.com/cory-johannsen/ruins/internal/game/gamelog"
	"github.com/cory-johannsen/ruins/internal/game/world"
)

// PlayerAction is the facade through which the frontend resolves the
// player's commands. Turn-ending methods hand the clock back to the
// schedule only when the action was performed.
//
// Every method except the read-only queries requires the player's turn.
type PlayerAction struct {
	g *Game
}

// PlayerAction returns the facade for g.
func (g *Game) PlayerAction() *PlayerAction {
	return &PlayerAction{g: g}
}

// Game returns the underlying aggregate.
func (pa *PlayerAction) Game() *Game { return pa.g }

// Player returns the player character.
func (pa *PlayerAction) Player() *character.Character { return pa.g.player }

func (pa *PlayerAction) finish(performed bool) bool {
	pa.g.reap()
	if performed {
		pa.g.clock.EndPlayerTurn()
	}
	return performed
}

// TryMove steps the player in dir. Walking into a hostile character attacks
// it with the configured melee skill instead.
//
// Postcondition: Returns true iff the player moved or attacked.
func (pa *PlayerAction) TryMove(dir world.Direction) bool {
	pa.g.clock.RequirePlayerTurn()
	p := pa.g.player
	if target, ok := pa.g.CharaAt(p.Pos.Step(dir)); ok && target.Faction != p.Faction {
		if pa.g.melee == "" {
			return false
		}
		return pa.finish(pa.g.skills.Use(p, target, pa.g.melee))
	}
	return pa.finish(pa.g.move.Step(p, dir))
}

// UseSkill makes the player use skillID on the character targetID.
//
// Postcondition: Returns true iff the skill was performed.
func (pa *PlayerAction) UseSkill(skillID, targetID string) bool {
	pa.g.clock.RequirePlayerTurn()
	target, ok := pa.g.charas[targetID]
	if !ok {
		return false
	}
	return pa.finish(pa.g.skills.Use(pa.g.player, target, skillID))
}

// NearestVisibleHostile returns the closest living character of another
// faction the player can see, or false.
func (pa *PlayerAction) NearestVisibleHostile() (*character.Character, bool) {
	p := pa.g.player
	var best *character.Character
	for _, c := range pa.g.Charas() {
		if c.Faction == p.Faction || !pa.g.TargetVisible(p, c) {
			continue
		}
		if best == nil || p.Pos.Distance(c.Pos) < p.Pos.Distance(best.Pos) {
			best = c
		}
	}
	return best, best != nil
}

// Build constructs obj on the tile next to the player in dir.
//
// Postcondition: Returns true iff the construction finished.
func (pa *PlayerAction) Build(dir world.Direction, obj content.BuildObj) bool {
	pa.g.clock.RequirePlayerTurn()
	if !dir.IsStandard() {
		return false
	}
	return pa.finish(pa.g.build.Start(pa.g.player, pa.g.player.Pos.Step(dir), obj))
}

// Buildable lists the build targets the player's construction skill allows.
func (pa *PlayerAction) Buildable() []content.BuildChoice {
	level := pa.g.player.SkillLevel(character.Construction)
	var out []content.BuildChoice
	for _, c := range pa.g.content.BuildObjList() {
		if c.SkillLevel <= level {
			out = append(out, c)
		}
	}
	return out
}

// UsableSkills lists the active skills the player can currently afford.
func (pa *PlayerAction) UsableSkills() []*content.ActiveSkill {
	var out []*content.ActiveSkill
	for _, s := range pa.g.content.Skills() {
		if pa.g.player.CanAfford(s.CostSP, s.CostMP) {
			out = append(out, s)
		}
	}
	return out
}

// Wait passes the player's turn.
func (pa *PlayerAction) Wait() {
	pa.finish(true)
}

// OnMapEntrance reports whether the player stands on a floor entrance.
func (pa *PlayerAction) OnMapEntrance() bool {
	return pa.g.CurrentMap().IsEntrance(pa.g.player.Pos)
}

// MoveNextFloor takes the player down the entrance it stands on.
//
// Postcondition: Returns true iff the player descended; the new floor's
// characters replace the old ones.
func (pa *PlayerAction) MoveNextFloor() bool {
	pa.g.clock.RequirePlayerTurn()
	if !pa.OnMapEntrance() {
		return false
	}
	floor, ok := pa.g.dungeon.Descend()
	if !ok {
		pa.g.log.Emit("no-deeper-floor", gamelog.Chara(pa.g.player.Name))
		return false
	}
	pa.g.enterFloor(floor)
	pa.g.log.Emit("descend", gamelog.Chara(pa.g.player.Name), gamelog.N(pa.g.dungeon.Depth()+1))
	return pa.finish(true)
}

// ItemLine is one backpack entry as shown to the player.
type ItemLine struct {
	Name string
	N    int
}

// Items lists the player's backpack in the order InspectItem indexes it.
func (pa *PlayerAction) Items() []ItemLine {
	items := pa.g.player.Inventory.Items()
	out := make([]ItemLine, len(items))
	for i, it := range items {
		out[i] = ItemLine{Name: pa.g.content.Items().Name(it.ItemDefID), N: it.Quantity}
	}
	return out
}

// InspectItem logs the name and count of the index-th backpack entry.
// It does not end the turn.
func (pa *PlayerAction) InspectItem(index int) bool {
	items := pa.g.player.Inventory.Items()
	if index < 0 || index >= len(items) {
		return false
	}
	it := items[index]
	pa.g.log.Emit("item-info", gamelog.Item(pa.g.content.Items().Name(it.ItemDefID)), gamelog.N(it.Quantity))
	pa.g.logger.Debug("inspect item", zap.String("item", it.ItemDefID), zap.String("instance", it.InstanceID))
	return true
}
