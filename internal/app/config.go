package app

import (
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Production bool `env:"PRODUCTION" envDefault:"false"`
	// Levels are {trace, debug, info, warn, error, fatal, panic}.
	// See github.com/rs/zerolog@v1.19.0/log.go for possible values.
	LogLevel string `env:"LOGLEVEL" envDefault:"info"`
	// Timeout bounds the whole computation, 0 disables it.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"0s"`

	Theta float64 `env:"THETA" envDefault:"0.5"`
	G     float64 `env:"GRAVITY" envDefault:"1.0"`
	// Parallelization is the number of goroutines evaluating forces, 0 means
	// one per CPU.
	Parallelization int `env:"PARALLELIZATION" envDefault:"0"`
	// Padding of the root cell around the particles' bounding box.
	Padding float64 `env:"PADDING" envDefault:"0.1"`

	// Particles > 0 generates that many particles instead of reading them
	// from stdin.
	Particles    int     `env:"PARTICLES" envDefault:"0"`
	Distribution string  `env:"DISTRIBUTION" envDefault:"uniform"`
	DistMean     float64 `env:"DIST_MEAN" envDefault:"0.0"`
	DistStdDev   float64 `env:"DIST_STDDEV" envDefault:"0.3"`
	Seed         uint64  `env:"SEED" envDefault:"1"`

	// Compare additionally runs the naive O(N²) computation and reports the
	// maximum relative deviation.
	Compare bool `env:"COMPARE" envDefault:"false"`
	// PNGOutput is the path of a rendered snapshot, empty disables it.
	PNGOutput string `env:"PNG_OUTPUT" envDefault:""`
}

func GetEnvConfig() (Config, error) {
	conf := Config{}
	if err := env.Parse(&conf); err != nil {
		return conf, errors.Wrap(err, "failed to parse environment")
	}
	if conf.Theta < 0 {
		return conf, errors.Errorf("THETA must not be negative, got %v", conf.Theta)
	}
	if conf.Particles < 0 {
		return conf, errors.Errorf("PARTICLES must not be negative, got %d", conf.Particles)
	}
	return conf, nil
}

func SetupLogging(conf Config) {
	level, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		println("failed to parse LogLevel: '" + conf.LogLevel + "', setting to debug")
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	if !conf.Production {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
