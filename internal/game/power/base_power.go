package power

import "github.com/cory-johannsen/ruins/internal/game/dice"

// BasePower is a (base, variance) pair describing a randomized magnitude.
type BasePower struct {
	Base float64 `yaml:"base"`
	Var  float64 `yaml:"var"`
}

// Bounds returns the sampling range for factor, with the lower bound clamped at 0.
func (b BasePower) Bounds(factor float64) (lo, hi float64) {
	lo = max(b.Base*factor-b.Var*factor, 0)
	hi = b.Base*factor + b.Var*factor
	return lo, hi
}

// Sample draws a magnitude uniformly from [lo, hi) of Bounds(factor).
// A degenerate range (hi <= lo) returns lo without touching src.
//
// Postcondition: result >= 0.
func (b BasePower) Sample(factor float64, src dice.Source) float64 {
	lo, hi := b.Bounds(factor)
	if hi <= lo {
		return lo
	}
	return dice.FloatRange(src, lo, hi)
}

// WithoutVariance returns the magnitude for factor ignoring variance.
func (b BasePower) WithoutVariance(factor float64) float64 {
	return max(b.Base*factor, 0)
}
