package engine

// Rand is a seedable xorshift64 source. It is a plain value so engines can
// copy it into search branches or snapshots without sharing state.
type Rand struct {
	state uint64
}

// NewRand returns a source seeded with seed. Seed 0 is corrected to 1
// because xorshift cannot leave the zero state.
func NewRand(seed uint64) *Rand {
	if seed == 0 {
		seed = 1
	}
	return &Rand{state: seed}
}

// Uint64 returns the next raw value.
func (r *Rand) Uint64() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	r.state = x
	return x
}

// Intn returns a value in [0, n). n <= 0 returns 0.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Uint64() % uint64(n))
}

// Float64 returns a value in [0, 1).
func (r *Rand) Float64() float64 {
	return float64(r.Uint64()>>11) / (1 << 53)
}

// Chance reports true with probability p.
func (r *Rand) Chance(p float64) bool {
	return r.Float64() < p
}

// Shuffle is a Fisher-Yates shuffle over n elements.
func (r *Rand) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		swap(i, j)
	}
}

// Clone returns an independent copy positioned at the same point in the stream.
func (r *Rand) Clone() *Rand {
	c := *r
	return &c
}

// Seed returns the current internal state; NewRand(r.Seed()) continues the stream.
func (r *Rand) Seed() uint64 { return r.state }
