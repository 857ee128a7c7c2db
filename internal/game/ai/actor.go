package ai

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/ruins/internal/game/character"
	"github.com/cory-johannsen/ruins/internal/game/world"
)

// Population lists the characters sharing the acting NPC's map.
type Population interface {
	Charas() []*character.Character
	Chara(id string) (*character.Character, bool)
}

// SkillUser resolves active skill use.
type SkillUser interface {
	Use(actor, target *character.Character, skillID string) bool
}

// Stepper moves a character one tile.
type Stepper interface {
	Step(actor *character.Character, dir world.Direction) bool
}

// Actor drives NPC turns from their behaviour domains.
type Actor struct {
	reg    *Registry
	pop    Population
	skills SkillUser
	move   Stepper
	logger *zap.Logger
}

// NewActor creates an Actor.
//
// Precondition: all arguments must be non-nil.
func NewActor(reg *Registry, pop Population, skills SkillUser, move Stepper, logger *zap.Logger) *Actor {
	if reg == nil || pop == nil || skills == nil || move == nil || logger == nil {
		panic("ai.NewActor: all arguments must be non-nil")
	}
	return &Actor{reg: reg, pop: pop, skills: skills, move: move, logger: logger}
}

// Snapshot builds the planning state for self from the characters around it.
//
// Postcondition: Self is never included in Others.
func Snapshot(self *character.Character, charas []*character.Character) *WorldState {
	ws := &WorldState{Self: charaState(self)}
	for _, c := range charas {
		if c.ID == self.ID {
			continue
		}
		ws.Others = append(ws.Others, charaState(c))
	}
	return ws
}

func charaState(c *character.Character) *CharaState {
	return &CharaState{
		ID:      c.ID,
		Name:    c.Name,
		Faction: string(c.Faction),
		HP:      c.HP.Cur,
		MaxHP:   c.HP.Max,
		Pos:     c.Pos,
		Dead:    c.IsDead(),
	}
}

// Act plans c's turn and performs the first planned action that succeeds.
// An NPC without a registered domain, or whose plan yields nothing
// performable, waits.
func (a *Actor) Act(c *character.Character) {
	planner, ok := a.reg.PlannerFor(c.AI)
	if !ok {
		a.logger.Debug("no behaviour domain", zap.String("chara", c.Name), zap.String("ai", c.AI))
		return
	}
	plan, err := planner.Plan(Snapshot(c, a.pop.Charas()))
	if err != nil {
		a.logger.Warn("planning failed", zap.String("chara", c.Name), zap.Error(err))
		return
	}
	for _, step := range plan {
		if a.perform(c, step) {
			a.logger.Debug("npc acts",
				zap.String("chara", c.Name),
				zap.String("action", string(step.Action)),
				zap.String("target", step.Target),
			)
			return
		}
	}
}

func (a *Actor) perform(c *character.Character, step PlannedAction) bool {
	switch step.Action {
	case ActionWait:
		return true
	case ActionUseSkill:
		target, ok := a.pop.Chara(step.Target)
		if !ok {
			return false
		}
		return a.skills.Use(c, target, step.Skill)
	case ActionApproach:
		target, ok := a.pop.Chara(step.Target)
		if !ok || c.Pos.Distance(target.Pos) <= 1 {
			return false
		}
		return a.move.Step(c, world.Toward(c.Pos, target.Pos))
	default:
		return false
	}
}
