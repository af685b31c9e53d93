package bench

// pseudoRand is a xorshift generator; the walk only needs a fast,
// reproducible stream.
type pseudoRand struct {
	s uint64
}

func newPseudoRand(seed int64) *pseudoRand {
	r := &pseudoRand{s: uint64(seed)}
	if r.s == 0 {
		r.s = 0x9E3779B97F4A7C15
	}
	return r
}

func (r *pseudoRand) Uint64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// Intn returns a value in [0, n). n must be positive.
func (r *pseudoRand) Intn(n int) int {
	return int(r.Uint64() % uint64(n))
}
