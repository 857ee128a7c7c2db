// Package effect applies skill effects to characters: hit judgment, damage,
// healing and status application.
package effect

import (
	"math"

	"go.uber.org/zap"

	"github.com/cory-johannsen/ruins/internal/game/anim"
	"github.com/cory-johannsen/ruins/internal/game/character"
	"github.com/cory-johannsen/ruins/internal/game/content"
	"github.com/cory-johannsen/ruins/internal/game/dice"
	"github.com/cory-johannsen/ruins/internal/game/gamelog"
)

// Result describes the outcome of one effect application.
type Result struct {
	// SourceID is empty for effects without a source character.
	SourceID string
	TargetID string
	Kind     content.EffectKind
	// Hit is false when the target evaded.
	Hit bool
	// Amount is the damage dealt or hit points restored.
	Amount int
}

// Applier applies an effect to a target.
type Applier interface {
	// Apply resolves e against target. source may be nil.
	Apply(e content.Effect, source, target *character.Character, power, hitPower float64) Result
}

// AnimSink receives animations produced by effects.
type AnimSink interface {
	Push(a anim.Animation)
}

// Resolver is the default Applier.
type Resolver struct {
	src    dice.Source
	anims  AnimSink
	log    gamelog.Sink
	logger *zap.Logger
}

// NewResolver creates a Resolver.
//
// Precondition: src, anims, log and logger must not be nil.
func NewResolver(src dice.Source, anims AnimSink, log gamelog.Sink, logger *zap.Logger) *Resolver {
	return &Resolver{src: src, anims: anims, log: log, logger: logger}
}

// HitChance returns the probability in [0, 1] that an effect with hitPower
// lands on target. A non-positive hit power never misses.
func HitChance(hitPower float64, target *character.Character) float64 {
	if hitPower <= 0 {
		return 1
	}
	evade := float64(target.Attr(character.Dex) + 2*target.SkillLevel(character.Evasion))
	if evade <= 0 {
		return 1
	}
	return hitPower / (hitPower + evade)
}

// Apply implements Applier. Healing and self-targeted effects always land;
// other effects roll against HitChance.
func (r *Resolver) Apply(e content.Effect, source, target *character.Character, power, hitPower float64) Result {
	res := Result{TargetID: target.ID, Kind: e.Kind, Hit: true}
	if source != nil {
		res.SourceID = source.ID
	}

	if e.Kind != content.Heal && source != nil && source != target {
		chance := HitChance(hitPower, target)
		if chance < 1 && r.src.Float64() >= chance {
			res.Hit = false
			r.log.Emit("evaded", gamelog.Chara(target.Name))
			r.logger.Debug("effect evaded",
				zap.String("target", target.ID),
				zap.Float64("chance", chance),
			)
			return res
		}
	}

	r.playAnim(e.Anim, source, target)

	switch e.Kind {
	case content.Damage:
		amount := int(math.Round(e.Base.Sample(power, r.src)))
		res.Amount = target.Damage(amount)
		r.log.Emit("damaged-chara", gamelog.Chara(target.Name), gamelog.Damage(res.Amount))
		if target.IsDead() {
			r.log.Emit("killed", gamelog.Chara(target.Name))
		}
	case content.Heal:
		amount := int(math.Round(e.Base.Sample(power, r.src)))
		res.Amount = target.Heal(amount)
		r.log.Emit("healed", gamelog.Chara(target.Name), gamelog.N(res.Amount))
	case content.Status:
		if target.Status != nil {
			target.Status.Apply(e.Status, e.Duration)
			r.log.Emit("status-applied", gamelog.Chara(target.Name), gamelog.Status(string(e.Status)))
		}
	}
	r.logger.Debug("effect applied",
		zap.String("kind", string(e.Kind)),
		zap.String("element", string(e.Element)),
		zap.String("target", target.ID),
		zap.Float64("power", power),
		zap.Int("amount", res.Amount),
	)
	return res
}

func (r *Resolver) playAnim(def *content.AnimDef, source, target *character.Character) {
	if def == nil {
		return
	}
	a := anim.Animation{Kind: def.Kind, Name: def.Name, Frames: def.Frames, From: target.Pos, To: target.Pos}
	if def.Kind == anim.Shot && source != nil {
		a.From = source.Pos
	}
	r.anims.Push(a)
}
