package controller

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"github.com/suxatcode/barnes-hut/barneshut"
)

// Solver computes the scalar force on a set of target particles.
//
//go:generate mockgen -destination solver_mock.go -package controller . Solver
type Solver interface {
	Name() string
	// Build prepares the solver for the given particles. It must be called
	// before Forces.
	Build(context.Context, []barneshut.Particle) error
	// Forces returns the force acting on each target.
	Forces(context.Context, []barneshut.Particle) ([]float64, error)
}

var ErrNotBuilt = errors.New("solver used before Build()")

// BarnesHutSolver builds a quadtree over a padded bounding cell and
// evaluates forces in parallel.
type BarnesHutSolver struct {
	Config barneshut.QuadTreeConfig
	// Padding of the root cell, as fraction of the bounding box side.
	Padding float64
	// Parallelization is the number of goroutines used in Forces.
	Parallelization int
	tree            *barneshut.QuadTree
}

func NewBarnesHutSolver(config barneshut.QuadTreeConfig, parallelization int) *BarnesHutSolver {
	if parallelization == 0 {
		parallelization = runtime.NumCPU()
	}
	return &BarnesHutSolver{Config: config, Padding: 0.1, Parallelization: parallelization}
}

func (s *BarnesHutSolver) Name() string {
	return "barnes-hut"
}

func (s *BarnesHutSolver) Build(ctx context.Context, particles []barneshut.Particle) error {
	cell, err := barneshut.BoundingCell(particles, s.Padding)
	if err != nil {
		return errors.Wrap(err, "failed to compute root cell")
	}
	tree := barneshut.NewQuadTree(&s.Config, cell)
	for i, p := range particles {
		if err := tree.Insert(p); err != nil {
			return errors.Wrapf(err, "failed to insert particle #%d", i)
		}
	}
	s.tree = tree
	return nil
}

func (s *BarnesHutSolver) Forces(ctx context.Context, targets []barneshut.Particle) ([]float64, error) {
	if s.tree == nil {
		return nil, ErrNotBuilt
	}
	return s.tree.ForcesOn(ctx, targets, s.Parallelization)
}

// Tree returns the tree of the last Build().
func (s *BarnesHutSolver) Tree() *barneshut.QuadTree {
	return s.tree
}

// NaiveSolver sums all pairwise forces, it serves as reference.
type NaiveSolver struct {
	G         float64
	particles []barneshut.Particle
	built     bool
}

func NewNaiveSolver(g float64) *NaiveSolver {
	if g == 0.0 {
		g = barneshut.DefaultGravitationalConstant
	}
	return &NaiveSolver{G: g}
}

func (s *NaiveSolver) Name() string {
	return "naive"
}

func (s *NaiveSolver) Build(ctx context.Context, particles []barneshut.Particle) error {
	s.particles = particles
	s.built = true
	return nil
}

func (s *NaiveSolver) Forces(ctx context.Context, targets []barneshut.Particle) ([]float64, error) {
	if !s.built {
		return nil, ErrNotBuilt
	}
	forces := make([]float64, len(targets))
	for i, target := range targets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		forces[i] = barneshut.NaiveForce(s.particles, target, s.G)
	}
	return forces, nil
}
