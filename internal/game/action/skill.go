package action

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/ruins/internal/game/character"
	"github.com/cory-johannsen/ruins/internal/game/content"
	"github.com/cory-johannsen/ruins/internal/game/effect"
	"github.com/cory-johannsen/ruins/internal/game/gamelog"
	"github.com/cory-johannsen/ruins/internal/game/power"
)

// SkillUse resolves active skill use.
type SkillUse struct {
	content *content.Repository
	power   *power.Resolver
	effects effect.Applier
	vis     Visibility
	log     gamelog.Sink
	logger  *zap.Logger
}

// NewSkillUse creates a SkillUse resolver.
//
// Precondition: all arguments must be non-nil.
func NewSkillUse(repo *content.Repository, pr *power.Resolver, effects effect.Applier, vis Visibility, log gamelog.Sink, logger *zap.Logger) *SkillUse {
	return &SkillUse{content: repo, power: pr, effects: effects, vis: vis, log: log, logger: logger}
}

// Use makes actor use skill skillID on target.
// It does nothing and returns false when the target is not visible, the
// skill is unknown, the target is out of the skill's range, or the actor
// cannot afford it. Costs gate the skill but are not deducted here.
//
// Postcondition: on true exactly one game log entry was emitted and the
// skill's effect was applied once; on false nothing changed.
func (s *SkillUse) Use(actor, target *character.Character, skillID string) bool {
	if !s.vis.TargetVisible(actor, target) {
		return false
	}
	skill, err := s.content.Skill(skillID)
	if err != nil {
		s.logger.Warn("unknown active skill", zap.String("skill", skillID), zap.Error(err))
		return false
	}
	if skill.Range > 0 && actor.Pos.Distance(target.Pos) > skill.Range {
		return false
	}
	if !actor.CanAfford(skill.CostSP, skill.CostMP) {
		return false
	}

	pw := s.power.CalcPower(skill.PowerCalc, actor) * skill.Power
	s.logger.Debug("uses active skill",
		zap.String("chara", actor.Name),
		zap.String("skill", skillID),
		zap.Float64("power", pw),
		zap.Float64("hit_power", skill.HitPower),
	)

	switch skill.Group {
	case content.Magic:
		s.log.Emit("use-active-skill-magic", gamelog.Chara(actor.Name), gamelog.Skill(skillID))
	case content.Special:
		s.log.Emit("use-active-skill-special", gamelog.Chara(actor.Name), gamelog.Skill(skillID))
	}

	s.effects.Apply(skill.Effect, actor, target, pw, skill.HitPower)
	return true
}
