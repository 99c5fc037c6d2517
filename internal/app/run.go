package app

import (
	"context"
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/suxatcode/barnes-hut/barneshut"
	"github.com/suxatcode/barnes-hut/distribution"
	"github.com/suxatcode/barnes-hut/internal/controller"
	"github.com/suxatcode/barnes-hut/internal/render"
)

// Snapshot is the json format read from stdin and written to stdout.
type Snapshot struct {
	Particles            []barneshut.Particle `json:"particles"`
	Forces               []float64            `json:"forces,omitempty"`
	MaxRelativeDeviation *float64             `json:"maxRelativeDeviation,omitempty"`
}

// Run computes the forces of a single snapshot according to conf. The
// particles are either generated or read from in, the result is written to
// out.
func Run(ctx context.Context, conf Config, in io.Reader, out io.Writer) error {
	ctx = log.Logger.WithContext(ctx)
	if conf.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, conf.Timeout)
		defer cancel()
	}
	particles, err := loadParticles(conf, in)
	if err != nil {
		return err
	}
	log.Ctx(ctx).Debug().Msgf("loaded %d particles", len(particles))

	solver := controller.NewBarnesHutSolver(barneshut.QuadTreeConfig{Theta: conf.Theta, G: conf.G}, conf.Parallelization)
	solver.Padding = conf.Padding
	var oracle controller.Solver
	if conf.Compare {
		oracle = controller.NewNaiveSolver(conf.G)
	}
	res, err := controller.NewController(solver, oracle).Run(ctx, particles)
	if err != nil {
		return err
	}
	if conf.PNGOutput != "" {
		if err := render.SnapshotFile(conf.PNGOutput, particles, res.Forces, false); err != nil {
			return err
		}
		log.Ctx(ctx).Info().Msgf("snapshot written to '%s'", conf.PNGOutput)
	}
	err = json.NewEncoder(out).Encode(&Snapshot{
		Particles:            particles,
		Forces:               res.Forces,
		MaxRelativeDeviation: res.MaxRelativeDeviation,
	})
	return errors.Wrap(err, "failed to write result")
}

func loadParticles(conf Config, in io.Reader) ([]barneshut.Particle, error) {
	if conf.Particles > 0 {
		d, err := distribution.Parse(conf.Distribution, conf.DistMean, conf.DistStdDev)
		if err != nil {
			return nil, err
		}
		return distribution.Generate(conf.Particles, d, distribution.NewRand(conf.Seed)), nil
	}
	snapshot := Snapshot{}
	if err := json.NewDecoder(in).Decode(&snapshot); err != nil {
		return nil, errors.Wrap(err, "failed to read particles")
	}
	if len(snapshot.Particles) == 0 {
		return nil, barneshut.ErrNoParticles
	}
	return snapshot.Particles, nil
}
