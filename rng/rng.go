// Package rng implements the Mulberry32 pseudo random generator. Two generators created
// with the same seed produce identical sequences on every platform since all arithmetic
// is done with wrapping uint32 operations.
package rng

import "math"

const (
	increment = 0x6D2B79F5
	scale     = 4294967296.0

	// entropyMultiplier and entropyOffset disperse small entropy slider values across the
	// uint32 seed space, seed = entropySeed*7919 + 31.
	entropyMultiplier = 7919
	entropyOffset     = 31

	// MinUniform replaces a zero uniform draw in the Box-Muller transform to avoid log(0)
	MinUniform = 1e-10
)

// Mulberry32 holds the 32 bit state of the generator. It is not safe for concurrent use
// and should be owned by a single computation.
type Mulberry32 struct {
	state uint32
}

// New returns a generator initialized with the provided seed
func New(seed uint32) *Mulberry32 {
	return &Mulberry32{state: seed}
}

// EntropySeed maps an entropy value to the generator seed used by noisy projections.
func EntropySeed(entropySeed int) uint32 {
	return uint32(int64(entropySeed)*entropyMultiplier + entropyOffset)
}

// NewFromEntropy returns a generator seeded with EntropySeed(entropySeed)
func NewFromEntropy(entropySeed int) *Mulberry32 {
	return New(EntropySeed(entropySeed))
}

// State returns the current internal state
func (m *Mulberry32) State() uint32 {
	return m.state
}

// Uint32 advances the generator and returns the next raw 32 bit output
func (m *Mulberry32) Uint32() uint32 {
	m.state += increment
	t := m.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return t ^ (t >> 14)
}

// Next returns the next uniform value in [0, 1)
func (m *Mulberry32) Next() float64 {
	return float64(m.Uint32()) / scale
}

// Gaussian returns a standard normal sample using the Box-Muller transform over two
// consecutive uniform draws.
func (m *Mulberry32) Gaussian() float64 {
	u1 := m.Next()
	u2 := m.Next()
	if u1 == 0 {
		u1 = MinUniform
	}
	return math.Sqrt(-2.0*math.Log(u1)) * math.Cos(2.0*math.Pi*u2)
}

// Gaussians draws n standard normal samples in order
func (m *Mulberry32) Gaussians(n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = m.Gaussian()
	}
	return out
}
