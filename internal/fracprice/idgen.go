package fracprice

import "time"

const (
	lcgModulus     = 2147483647
	lcgMultiplier  = 39373
	idLength       = 12
	idAlphabetSize = 36
)

// idAlphabet matches the keyboard-row ordering of the original ID
// generator, not alphabetical order — preserved so generated IDs look
// like the ones the rest of the system has always produced.
const idAlphabet = "0123456789QWERTYUIOPASDFGHJKLZXCVBNM"

// IDGenerator produces 12-character order/inquiry IDs using a
// Park-Miller minimal-standard LCG seeded from the wall clock
// (spec.md §4.1). It is not safe for concurrent use; the fabric's
// single-threaded cooperative model means it never needs to be.
type IDGenerator struct {
	seed int64
}

// NewIDGenerator seeds the generator from the current wall-clock
// millisecond count mod 1000, matching GetMilliseconds() in the
// original implementation.
func NewIDGenerator() *IDGenerator {
	return NewIDGeneratorFromSeed(time.Now().UnixMilli() % 1000)
}

// NewIDGeneratorFromSeed seeds the generator explicitly, for
// deterministic tests.
func NewIDGeneratorFromSeed(seed int64) *IDGenerator {
	if seed == 0 {
		seed = 1
	}
	return &IDGenerator{seed: seed % lcgModulus}
}

// next advances the LCG and returns the next uniform value in [0, 1).
func (g *IDGenerator) next() float64 {
	const q = lcgModulus / lcgMultiplier
	const r = lcgModulus % lcgMultiplier

	k := g.seed / q
	g.seed = lcgMultiplier*(g.seed-k*q) - k*r
	if g.seed < 0 {
		g.seed += lcgModulus
	}
	return float64(g.seed) / float64(lcgModulus)
}

// NextID returns the next 12-character ID drawn from idAlphabet.
func (g *IDGenerator) NextID() string {
	buf := make([]byte, idLength)
	for i := range buf {
		u := g.next()
		idx := int(u * float64(idAlphabetSize))
		if idx >= idAlphabetSize {
			idx = idAlphabetSize - 1
		}
		buf[i] = idAlphabet[idx]
	}
	return string(buf)
}
