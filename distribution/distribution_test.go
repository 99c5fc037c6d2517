package distribution

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	assert := assert.New(t)
	particles := Generate(50, Uniform{}, NewRand(1))
	assert.Len(particles, 50)
	for _, p := range particles {
		assert.Equal(1.0, p.Mass)
		assert.GreaterOrEqual(p.Pos.X(), 0.0)
		assert.Less(p.Pos.X(), 1.0)
		assert.GreaterOrEqual(p.Pos.Y(), 0.0)
		assert.Less(p.Pos.Y(), 1.0)
	}
}

func TestGenerate_seeded(t *testing.T) {
	d := Normal{Mean: 0, StdDev: 0.3}
	assert.Equal(t, Generate(20, d, NewRand(7)), Generate(20, d, NewRand(7)))
	assert.NotEqual(t, Generate(20, d, NewRand(7)), Generate(20, d, NewRand(8)))
}

func TestUniform_Sample(t *testing.T) {
	rnd := NewRand(3)
	u := Uniform{Min: -2, Max: -1}
	for i := 0; i < 100; i++ {
		v := u.Sample(rnd)
		assert.GreaterOrEqual(t, v, -2.0)
		assert.Less(t, v, -1.0)
	}
}

func TestParse(t *testing.T) {
	for _, test := range []struct {
		Name      string
		Input     string
		StdDev    float64
		Expect    Distribution
		ExpectErr bool
	}{
		{Name: "default", Input: "", Expect: Uniform{}},
		{Name: "uniform", Input: "Uniform", Expect: Uniform{}},
		{Name: "normal", Input: "normal", StdDev: 0.1, Expect: Normal{StdDev: 0.1}},
		{Name: "normal without stddev", Input: "normal", ExpectErr: true},
		{Name: "unknown", Input: "poisson", ExpectErr: true},
	} {
		t.Run(test.Name, func(t *testing.T) {
			d, err := Parse(test.Input, 0, test.StdDev)
			if test.ExpectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, test.Expect, d)
		})
	}
}
