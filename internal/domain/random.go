package domain

import (
	"math/rand/v2"
	"sync"
)

// Random is the source of bounded randomness for every generator.
type Random interface {
	// Uniform returns a value in [lo, hi).
	Uniform(lo, hi float64) float64
	// IntN returns a value in [0, n). It panics if n <= 0.
	IntN(n int) int
}

type pcgRandom struct {
	r *rand.Rand
}

// NewRandom returns a deterministic source for the given seed.
func NewRandom(seed uint64) Random {
	return &pcgRandom{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewTimeSeededRandom returns a source seeded from the runtime's entropy.
func NewTimeSeededRandom() Random {
	return &pcgRandom{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

func (p *pcgRandom) Uniform(lo, hi float64) float64 {
	return lo + p.r.Float64()*(hi-lo)
}

func (p *pcgRandom) IntN(n int) int {
	return p.r.IntN(n)
}

// LockedRandom serializes access to a shared source.
type LockedRandom struct {
	mu    sync.Mutex
	inner Random
}

// NewLockedRandom wraps r for use from multiple goroutines.
func NewLockedRandom(r Random) *LockedRandom {
	return &LockedRandom{inner: r}
}

func (l *LockedRandom) Uniform(lo, hi float64) float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.Uniform(lo, hi)
}

func (l *LockedRandom) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.IntN(n)
}
