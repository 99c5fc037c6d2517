// Barnes-Hut quadtree holding at most one particle per leaf, see
// https://en.wikipedia.org/wiki/Barnes%E2%80%93Hut_simulation
package barneshut

import (
	"context"

	"github.com/pkg/errors"
	"github.com/quartercastle/vector"
	"golang.org/x/sync/errgroup"
)

// DefaultTheta is the multipole-acceptance threshold used by
// QUADTREE_DEFAULT_CONFIG.
const DefaultTheta = 0.5

var (
	ErrInvalidParticle     = errors.New("particle needs finite coordinates and a positive, finite mass")
	ErrCoincidentParticles = errors.New("particle position already occupied")
)

type QuadTreeConfig struct {
	// Theta trades accuracy for speed: a subtree is treated as a single body
	// once Cell.Size / distance < Theta. Theta == 0 never aggregates.
	Theta float64
	// G is the gravitational constant, 0 means DefaultGravitationalConstant.
	G float64
}

var QUADTREE_DEFAULT_CONFIG = QuadTreeConfig{Theta: DefaultTheta, G: DefaultGravitationalConstant}

// QuadTree is a node of the Barnes-Hut tree. It is built once through
// Insert and queried many times afterwards. Queries do not mutate the tree,
// so they may run concurrently once all insertions are done.
type QuadTree struct {
	Cell         Cell
	NumParticles int
	// Particle is set iff NumParticles == 1.
	Particle     *Particle
	TotalMass    float64
	CenterOfMass vector.Vector
	// Children are indexed by Quadrant and created on first use.
	Children [4]*QuadTree
	config   *QuadTreeConfig
}

func NewQuadTree(config *QuadTreeConfig, cell Cell) *QuadTree {
	if config == nil {
		config = &QUADTREE_DEFAULT_CONFIG
	}
	if config.G == 0.0 {
		conf := *config
		conf.G = DefaultGravitationalConstant
		config = &conf
	}
	return &QuadTree{
		Cell:         Cell{Center: vector.Vector{cell.Center.X(), cell.Center.Y()}, Size: cell.Size},
		CenterOfMass: vector.Vector{0, 0},
		config:       config,
	}
}

// NewRoot creates an empty tree with the default config. The cell must
// enclose every particle that will be inserted.
func NewRoot(center vector.Vector, size float64) *QuadTree {
	return NewQuadTree(nil, Cell{Center: center, Size: size})
}

func (qt *QuadTree) Config() QuadTreeConfig {
	return *qt.config
}

// Quadrant classifies p against this node's cell.
func (qt *QuadTree) Quadrant(p Particle) Quadrant {
	return qt.Cell.Quadrant(p)
}

// Insert adds p to the tree. Particles outside of the root cell are not
// rejected, but the resulting tree no longer matches the geometry.
// On error the tree is left unchanged.
func (qt *QuadTree) Insert(p Particle) error {
	if !p.valid() {
		return errors.Wrapf(ErrInvalidParticle, "insert %v", p)
	}
	if other := qt.occupant(p.Pos); other != nil {
		return errors.Wrapf(ErrCoincidentParticles, "insert %v: occupied by %v", p, *other)
	}
	qt.insert(p.clone())
	return nil
}

// occupant follows the insertion path of pos and returns the particle that
// is already stored at exactly that position, if any. Two such particles
// could never be separated by splitting.
func (qt *QuadTree) occupant(pos vector.Vector) *Particle {
	node := qt
	probe := Particle{Pos: pos}
	for node != nil {
		switch node.NumParticles {
		case 0:
			return nil
		case 1:
			if samePosition(node.Particle.Pos, pos) {
				return node.Particle
			}
			return nil
		}
		node = node.Children[node.Quadrant(probe)]
	}
	return nil
}

func (qt *QuadTree) insert(p Particle) {
	switch qt.NumParticles {
	case 0:
		qt.Particle = &p
	case 1:
		// split: both particles move one level down, the child splits again
		// if they share a quadrant
		existing := *qt.Particle
		qt.insertIntoQuadrant(p)
		qt.insertIntoQuadrant(existing)
		qt.Particle = nil
	default:
		qt.insertIntoQuadrant(p)
	}
	weighted := qt.CenterOfMass.Scale(qt.TotalMass).Add(p.Pos.Scale(p.Mass))
	qt.TotalMass += p.Mass
	qt.CenterOfMass = weighted.Scale(1 / qt.TotalMass)
	qt.NumParticles++
}

func (qt *QuadTree) insertIntoQuadrant(p Particle) {
	q := qt.Quadrant(p)
	if qt.Children[q] == nil {
		qt.Children[q] = NewQuadTree(qt.config, qt.Cell.Child(q))
	}
	qt.Children[q].insert(p)
}

// CalculateForce calculates the scalar force acting on target.
// theta defines the accuracy, see https://en.wikipedia.org/wiki/Barnes%E2%80%93Hut_simulation#Calculating_the_force_acting_on_a_body
func (qt *QuadTree) CalculateForce(target Particle, theta float64) float64 {
	switch qt.NumParticles {
	case 0:
		return 0.0
	case 1:
		return qt.Particle.Force(target, qt.config.G)
	}
	r := Distance(qt.CenterOfMass, target.Pos)
	if qt.Cell.Size/r < theta {
		pseudo := Particle{Pos: qt.CenterOfMass, Mass: qt.TotalMass}
		return target.Force(pseudo, qt.config.G)
	}
	force := 0.0
	for _, child := range qt.Children {
		if child != nil {
			force += child.CalculateForce(target, theta)
		}
	}
	return force
}

// ForceOn is CalculateForce with the configured theta.
func (qt *QuadTree) ForceOn(target Particle) float64 {
	return qt.CalculateForce(target, qt.config.Theta)
}

// ForcesOn evaluates ForceOn for all targets. The targets are split into
// parallelization contiguous chunks, each handled by its own goroutine.
// Must not be called concurrently with Insert.
func (qt *QuadTree) ForcesOn(ctx context.Context, targets []Particle, parallelization int) ([]float64, error) {
	forces := make([]float64, len(targets))
	if parallelization <= 1 {
		for i := range targets {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			forces[i] = qt.ForceOn(targets[i])
		}
		return forces, nil
	}
	total := len(targets)
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < parallelization; i++ {
		lo, hi := i*total/parallelization, (i+1)*total/parallelization
		g.Go(func() error {
			for j := lo; j < hi; j++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				forces[j] = qt.ForceOn(targets[j])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return forces, nil
}
