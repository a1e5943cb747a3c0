package sim

// Source is the deterministic pseudo-random stream that drives every
// generation stage. It advances a 32-bit linear congruential state,
// state = 1664525*state + 1013904223 (mod 2^32), and maps each new
// state into [0, 1). For a fixed seed the stream is identical across
// runs and processes, which is the basis for all downstream
// determinism.
//
// Each Generate call owns exactly one Source. Sharing a Source across
// independent runs would break reproducibility.
type Source struct {
	state uint32
}

// NewSource returns a fresh source seeded with the given value.
func NewSource(seed uint32) *Source {
	return &Source{state: seed}
}

// Float64 advances the state once and returns the next value in [0, 1).
func (s *Source) Float64() float64 {
	s.state = s.state*1664525 + 1013904223
	return float64(s.state) / (1 << 32)
}

// IntBetween returns a uniform integer in [min, max], consuming one
// draw. If the range is degenerate it returns min without drawing.
func (s *Source) IntBetween(min, max int) int {
	if min >= max {
		return min
	}
	return min + int(s.Float64()*float64(max-min+1))
}

// Chance reports true with probability p, consuming one draw.
func (s *Source) Chance(p float64) bool {
	return s.Float64() < p
}

// Pick returns a uniformly drawn element of pool, consuming one draw.
func (s *Source) Pick(pool []string) string {
	return pool[s.IntBetween(0, len(pool)-1)]
}
