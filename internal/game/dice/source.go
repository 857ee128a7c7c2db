package dice

import (
	crand "crypto/rand"
	"math/rand/v2"
)

// randSource adapts math/rand/v2.
type randSource struct {
	r *rand.Rand
}

func (s randSource) Intn(n int) int {
	if n <= 0 {
		panic("dice: Intn called with n <= 0")
	}
	return s.r.IntN(n)
}

func (s randSource) Float64() float64 { return s.r.Float64() }

// NewCryptoSource returns an unpredictable Source: a ChaCha8 stream keyed
// from crypto/rand.
func NewCryptoSource() Source {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		panic("dice: crypto/rand failure: " + err.Error())
	}
	return randSource{r: rand.New(rand.NewChaCha8(seed))}
}

// NewSeededSource returns a deterministic Source for replays and tests.
// Equal seeds yield equal sequences.
func NewSeededSource(seed uint64) Source {
	return randSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}
