// Package dice supplies the randomness behind power sampling, hit
// judgment and dice-expression power routines.
package dice

import "fmt"

// Source produces uniform random numbers. The game draws from one
// goroutine, so implementations need not be safe for concurrent use.
type Source interface {
	// Intn returns an int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
	// Float64 returns a float in [0, 1).
	Float64() float64
}

// FloatRange draws uniformly from [lo, hi).
//
// Precondition: hi > lo.
func FloatRange(src Source, lo, hi float64) float64 {
	if !(hi > lo) {
		panic(fmt.Sprintf("dice: FloatRange called with empty range [%v, %v)", lo, hi))
	}
	// lo + f*(hi-lo) can round up to hi.
	if v := lo + src.Float64()*(hi-lo); v < hi {
		return v
	}
	return lo
}
