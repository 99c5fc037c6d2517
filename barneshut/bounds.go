package barneshut

import (
	"github.com/pkg/errors"
	"github.com/quartercastle/vector"
	"golang.org/x/exp/constraints"
)

var ErrNoParticles = errors.New("no particles")

func min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// BoundingCell returns a square cell enclosing all particles. padding
// enlarges the cell by that fraction of its side on every border, so
// that no particle sits exactly on the outer boundary.
func BoundingCell(particles []Particle, padding float64) (Cell, error) {
	if len(particles) == 0 {
		return Cell{}, ErrNoParticles
	}
	minX, maxX := particles[0].Pos.X(), particles[0].Pos.X()
	minY, maxY := particles[0].Pos.Y(), particles[0].Pos.Y()
	for _, p := range particles[1:] {
		minX, maxX = min(minX, p.Pos.X()), max(maxX, p.Pos.X())
		minY, maxY = min(minY, p.Pos.Y()), max(maxY, p.Pos.Y())
	}
	side := max(maxX-minX, maxY-minY)
	if side == 0 {
		side = 1.0
	}
	side += 2 * side * padding
	center := vector.Vector{(minX + maxX) / 2, (minY + maxY) / 2}
	return Cell{Center: center, Size: side / 2}, nil
}
