package controller

import (
	"context"
	"math"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/suxatcode/barnes-hut/barneshut"
)

type Stats struct {
	BuildTime time.Duration
	ForceTime time.Duration
	// Tree is only set for a *BarnesHutSolver.
	Tree *barneshut.TreeStats
}

type Result struct {
	Solver string    `json:"solver"`
	Forces []float64 `json:"forces"`
	// MaxRelativeDeviation against the oracle, if one was configured.
	MaxRelativeDeviation *float64 `json:"maxRelativeDeviation,omitempty"`
	Stats                Stats    `json:"-"`
}

// Controller runs a snapshot force computation: build the solver once, then
// evaluate the force on every particle.
type Controller struct {
	solver Solver
	// oracle is optional, it is run on the same input for comparison
	oracle Solver
}

func NewController(solver Solver, oracle Solver) *Controller {
	return &Controller{solver: solver, oracle: oracle}
}

func (c *Controller) Run(ctx context.Context, particles []barneshut.Particle) (*Result, error) {
	forces, stats, err := run(ctx, c.solver, particles)
	if err != nil {
		log.Ctx(ctx).Error().Msgf("%v", err)
		return nil, err
	}
	res := &Result{Solver: c.solver.Name(), Forces: forces, Stats: stats}
	log.Ctx(ctx).Info().Msgf(
		"%s forces computed: stats{particles: %d, build: %d ms, forces: %d ms}",
		res.Solver, len(particles), stats.BuildTime.Milliseconds(), stats.ForceTime.Milliseconds(),
	)
	if stats.Tree != nil {
		log.Ctx(ctx).Debug().Msgf("tree: %#v", *stats.Tree)
	}
	if c.oracle == nil {
		return res, nil
	}
	want, oracleStats, err := run(ctx, c.oracle, particles)
	if err != nil {
		err = errors.Wrapf(err, "oracle '%s' failed", c.oracle.Name())
		log.Ctx(ctx).Error().Msgf("%v", err)
		return nil, err
	}
	deviation := MaxRelativeDeviation(forces, want)
	res.MaxRelativeDeviation = &deviation
	log.Ctx(ctx).Info().Msgf(
		"compared against %s (%d ms): max relative deviation %.3g",
		c.oracle.Name(), oracleStats.ForceTime.Milliseconds(), deviation,
	)
	return res, nil
}

func run(ctx context.Context, solver Solver, particles []barneshut.Particle) ([]float64, Stats, error) {
	stats := Stats{}
	start := time.Now()
	if err := solver.Build(ctx, particles); err != nil {
		return nil, stats, errors.Wrapf(err, "%s: build failed", solver.Name())
	}
	stats.BuildTime = time.Since(start)
	start = time.Now()
	forces, err := solver.Forces(ctx, particles)
	if err != nil {
		return nil, stats, errors.Wrapf(err, "%s: force evaluation failed", solver.Name())
	}
	stats.ForceTime = time.Since(start)
	if len(forces) != len(particles) {
		return nil, stats, errors.Errorf("%s: got %d forces for %d particles", solver.Name(), len(forces), len(particles))
	}
	if bh, ok := solver.(*BarnesHutSolver); ok && bh.Tree() != nil {
		treeStats := bh.Tree().Stats()
		stats.Tree = &treeStats
	}
	return forces, stats, nil
}

// RelativeDeviation returns |got-want|/|want|, and 0 if both are 0.
func RelativeDeviation(got, want float64) float64 {
	if got == want {
		return 0.0
	}
	return math.Abs(got-want) / math.Abs(want)
}

// MaxRelativeDeviation over pairwise entries of got and want, which must
// have the same length.
func MaxRelativeDeviation(got, want []float64) float64 {
	maxDeviation := 0.0
	for i := range got {
		maxDeviation = math.Max(maxDeviation, RelativeDeviation(got[i], want[i]))
	}
	return maxDeviation
}
