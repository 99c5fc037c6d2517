package app

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suxatcode/barnes-hut/barneshut"
)

func testConfig() Config {
	return Config{Theta: 0.5, G: 1, Parallelization: 2, Padding: 0.1, Distribution: "uniform", Seed: 1}
}

func TestRun_generated(t *testing.T) {
	conf := testConfig()
	conf.Particles = 200
	conf.Distribution = "normal"
	conf.DistStdDev = 0.3
	conf.Compare = true
	conf.PNGOutput = filepath.Join(t.TempDir(), "out.png")
	out := bytes.Buffer{}
	require.NoError(t, Run(context.Background(), conf, strings.NewReader(""), &out))
	snapshot := Snapshot{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &snapshot))
	assert := assert.New(t)
	assert.Len(snapshot.Particles, 200)
	assert.Len(snapshot.Forces, 200)
	require.NotNil(t, snapshot.MaxRelativeDeviation)
	assert.Less(*snapshot.MaxRelativeDeviation, 0.5)
	_, err := os.Stat(conf.PNGOutput)
	assert.NoError(err)
}

func TestRun_stdin(t *testing.T) {
	in := `{"particles": [{"pos": [0, 0], "mass": 1}, {"pos": [3, 4], "mass": 2}]}`
	out := bytes.Buffer{}
	require.NoError(t, Run(context.Background(), testConfig(), strings.NewReader(in), &out))
	snapshot := Snapshot{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &snapshot))
	assert := assert.New(t)
	assert.Equal([]barneshut.Particle{barneshut.NewParticle(0, 0, 1), barneshut.NewParticle(3, 4, 2)}, snapshot.Particles)
	assert.Equal([]float64{0.4, 0.4}, snapshot.Forces)
	assert.Nil(snapshot.MaxRelativeDeviation)
}

func TestRun_errors(t *testing.T) {
	for _, test := range []struct {
		Name  string
		Input string
		Conf  func(*Config)
		Err   error
	}{
		{Name: "invalid json", Input: `{"particles": [`},
		{Name: "no particles", Input: `{"particles": []}`, Err: barneshut.ErrNoParticles},
		{
			Name:  "coincident particles",
			Input: `{"particles": [{"pos": [1, 1], "mass": 1}, {"pos": [1, 1], "mass": 3}]}`,
			Err:   barneshut.ErrCoincidentParticles,
		},
		{
			Name:  "invalid mass",
			Input: `{"particles": [{"pos": [1, 1], "mass": 0}, {"pos": [2, 1], "mass": 3}]}`,
			Err:   barneshut.ErrInvalidParticle,
		},
		{Name: "unknown distribution", Conf: func(c *Config) { c.Particles = 10; c.Distribution = "cauchy" }},
	} {
		t.Run(test.Name, func(t *testing.T) {
			conf := testConfig()
			if test.Conf != nil {
				test.Conf(&conf)
			}
			out := bytes.Buffer{}
			err := Run(context.Background(), conf, strings.NewReader(test.Input), &out)
			assert.Error(t, err)
			if test.Err != nil {
				assert.True(t, errors.Is(err, test.Err), "got %v", err)
			}
			assert.Zero(t, out.Len())
		})
	}
}
