/*
 * bh-forces computes the Barnes-Hut force acting on each particle of a
 * snapshot. Particles are read as json from stdin, unless PARTICLES > 0 is
 * set, then they are generated. The result is written as json to stdout.
 * See internal/app.Config for all environment variables.
 */
package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/suxatcode/barnes-hut/internal/app"
)

func main() {
	conf, err := app.GetEnvConfig()
	if err != nil {
		log.Fatal().Msgf("%v", err)
	}
	app.SetupLogging(conf)
	log.Debug().Msgf("Config: %#v", conf)
	if err := app.Run(context.Background(), conf, os.Stdin, os.Stdout); err != nil {
		log.Fatal().Msgf("%v", err)
	}
}
