package barneshut

import "github.com/quartercastle/vector"

type Quadrant int

const (
	NW Quadrant = iota
	NE
	SW
	SE
)

func (q Quadrant) String() string {
	switch q {
	case NW:
		return "NW"
	case NE:
		return "NE"
	case SW:
		return "SW"
	case SE:
		return "SE"
	}
	return "Quadrant(?)"
}

// Cell is a square region spanning Center ± Size on both axes, i.e. Size is
// half the side length.
type Cell struct {
	Center vector.Vector `json:"center"`
	Size   float64       `json:"size"`
}

func (c Cell) Contains(pos vector.Vector) bool {
	return pos.X() >= c.Center.X()-c.Size && pos.X() <= c.Center.X()+c.Size &&
		pos.Y() >= c.Center.Y()-c.Size && pos.Y() <= c.Center.Y()+c.Size
}

// Quadrant classifies p against the center of c. Coordinates equal to the
// center fall to the east resp. north side.
func (c Cell) Quadrant(p Particle) Quadrant {
	if p.Pos.X() < c.Center.X() {
		if p.Pos.Y() < c.Center.Y() {
			return SW
		}
		return NW
	}
	if p.Pos.Y() < c.Center.Y() {
		return SE
	}
	return NE
}

// Child returns the sub-cell covering quadrant q.
func (c Cell) Child(q Quadrant) Cell {
	size := c.Size / 2
	offset := vector.Vector{size, size}
	switch q {
	case NW:
		offset = vector.Vector{-size, size}
	case SW:
		offset = vector.Vector{-size, -size}
	case SE:
		offset = vector.Vector{size, -size}
	}
	return Cell{Center: c.Center.Add(offset), Size: size}
}
