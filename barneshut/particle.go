package barneshut

import (
	"math"

	"github.com/quartercastle/vector"
)

// DefaultGravitationalConstant is the G used by ForceMagnitude.
const DefaultGravitationalConstant = 1.0

// Particle is a point mass in two dimensions.
type Particle struct {
	Pos  vector.Vector `json:"pos"`
	Mass float64       `json:"mass"`
}

func NewParticle(x, y, mass float64) Particle {
	return Particle{Pos: vector.Vector{x, y}, Mass: mass}
}

// Equal reports structural equality of position and mass.
func (p Particle) Equal(other Particle) bool {
	return p.Mass == other.Mass && samePosition(p.Pos, other.Pos)
}

// Force returns the scalar force magnitude g*m1*m2/r between p and other.
// The force of a particle on itself is exactly zero. Distinct particles at
// the same position yield +Inf.
func (p Particle) Force(other Particle, g float64) float64 {
	if p.Equal(other) {
		return 0.0
	}
	return g * p.Mass * other.Mass / Distance(p.Pos, other.Pos)
}

// ForceMagnitude is Force with DefaultGravitationalConstant.
func ForceMagnitude(p, q Particle) float64 {
	return p.Force(q, DefaultGravitationalConstant)
}

// Distance is the euclidean distance between two positions.
func Distance(a, b vector.Vector) float64 {
	return a.Sub(b).Magnitude()
}

func samePosition(a, b vector.Vector) bool {
	return a.X() == b.X() && a.Y() == b.Y()
}

func (p Particle) valid() bool {
	if len(p.Pos) < 2 {
		return false
	}
	for _, f := range []float64{p.Pos.X(), p.Pos.Y(), p.Mass} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return p.Mass > 0
}

// clone detaches the position from the caller's backing array.
func (p Particle) clone() Particle {
	return NewParticle(p.Pos.X(), p.Pos.Y(), p.Mass)
}
