// Package distribution generates particle sets for tests, benchmarks and the
// bh-forces command.
package distribution

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/suxatcode/barnes-hut/barneshut"
	"golang.org/x/exp/rand"
)

// Distribution draws a single coordinate.
type Distribution interface {
	Sample(rnd *rand.Rand) float64
}

// Uniform samples from [Min, Max). The zero value samples from [0, 1).
type Uniform struct {
	Min, Max float64
}

func (u Uniform) Sample(rnd *rand.Rand) float64 {
	if u.Min == 0 && u.Max == 0 {
		return rnd.Float64()
	}
	return u.Min + rnd.Float64()*(u.Max-u.Min)
}

type Normal struct {
	Mean, StdDev float64
}

func (n Normal) Sample(rnd *rand.Rand) float64 {
	return n.Mean + rnd.NormFloat64()*n.StdDev
}

func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Generate returns n particles of unit mass. All x coordinates are drawn
// before the y coordinates.
func Generate(n int, d Distribution, rnd *rand.Rand) []barneshut.Particle {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = d.Sample(rnd)
	}
	particles := make([]barneshut.Particle, n)
	for i := range particles {
		particles[i] = barneshut.NewParticle(xs[i], d.Sample(rnd), 1.0)
	}
	return particles
}

// Parse maps a distribution name to a Distribution. mean and stddev are
// only used by "normal".
func Parse(name string, mean, stddev float64) (Distribution, error) {
	switch strings.ToLower(name) {
	case "", "uniform":
		return Uniform{}, nil
	case "normal":
		if stddev <= 0 {
			return nil, errors.Errorf("normal distribution needs a positive standard deviation, got %v", stddev)
		}
		return Normal{Mean: mean, StdDev: stddev}, nil
	}
	return nil, errors.Errorf("unknown distribution '%s'", name)
}
