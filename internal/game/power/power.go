// Package power computes effect magnitudes from actor attributes and skills,
// and samples randomized base-power ranges.
package power

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/ruins/internal/game/character"
	"github.com/cory-johannsen/ruins/internal/game/dice"
)

// Method selects how a skill's raw power is calculated.
type Method string

// Calculation methods.
const (
	// Num returns a fixed number.
	Num Method = "num"
	// Magic multiplies the magic device skill level by intelligence.
	Magic Method = "magic"
	// Custom delegates to a named hook.
	Custom Method = "custom"
	// Dice rolls a dice expression.
	Dice Method = "dice"
)

// Calc describes the power calculation of one skill.
type Calc struct {
	Method Method  `yaml:"method"`
	Num    float64 `yaml:"num"`
	Custom string  `yaml:"custom"`
	Dice   string  `yaml:"dice"`
}

// Validate checks that the fields required by Method are present.
func (c Calc) Validate() error {
	switch c.Method {
	case Num, Magic:
		return nil
	case Custom:
		if c.Custom == "" {
			return fmt.Errorf("power_calc custom requires a hook name")
		}
		return nil
	case Dice:
		if _, err := dice.Parse(c.Dice); err != nil {
			return fmt.Errorf("power_calc dice: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown power_calc method %q", c.Method)
	}
}

// HookSet resolves custom power routines by name.
type HookSet interface {
	// Power evaluates the named routine for actor.
	//
	// Postcondition: ok is false iff no routine is registered under name.
	Power(name string, actor *character.Character) (value float64, ok bool)
}

// Hooks is a HookSet backed by Go functions.
type Hooks map[string]func(actor *character.Character) float64

// Power implements HookSet.
func (h Hooks) Power(name string, actor *character.Character) (float64, bool) {
	fn, ok := h[name]
	if !ok {
		return 0, false
	}
	return fn(actor), true
}

// Resolver computes raw power values.
type Resolver struct {
	hooks  HookSet
	roller *dice.Roller
	logger *zap.Logger
}

// NewResolver creates a Resolver.
//
// Precondition: roller and logger must be non-nil. hooks may be nil when no
// content uses the custom method.
func NewResolver(hooks HookSet, roller *dice.Roller, logger *zap.Logger) *Resolver {
	return &Resolver{hooks: hooks, roller: roller, logger: logger}
}

// CalcPower returns the raw power of calc for actor, reading the actor's
// current attributes and skills.
//
// Precondition: calc.Validate() == nil. A custom hook that is not registered
// is a content error and panics.
func (r *Resolver) CalcPower(calc Calc, actor *character.Character) float64 {
	switch calc.Method {
	case Num:
		return calc.Num
	case Magic:
		return float64(actor.SkillLevel(character.MagicDevice) * actor.Attr(character.Int))
	case Custom:
		if r.hooks == nil {
			panic(fmt.Sprintf("power: custom routine %q requested with no hooks installed", calc.Custom))
		}
		v, ok := r.hooks.Power(calc.Custom, actor)
		if !ok {
			panic(fmt.Sprintf("power: unresolved custom routine %q", calc.Custom))
		}
		r.logger.Debug("custom power", zap.String("routine", calc.Custom), zap.Float64("power", v))
		return v
	case Dice:
		res, err := r.roller.RollExpr(calc.Dice)
		if err != nil {
			panic(fmt.Sprintf("power: invalid dice expression %q: %v", calc.Dice, err))
		}
		return float64(res.Total())
	default:
		panic(fmt.Sprintf("power: unknown calculation method %q", calc.Method))
	}
}

// Source returns the randomness source shared with sampling.
func (r *Resolver) Source() dice.Source {
	return r.roller.Source()
}
