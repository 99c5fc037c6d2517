package render

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suxatcode/barnes-hut/barneshut"
)

func TestSnapshot(t *testing.T) {
	particles := []barneshut.Particle{
		barneshut.NewParticle(-1, -1, 1), barneshut.NewParticle(1, 1, 1), barneshut.NewParticle(0, 0, 1),
	}
	buf := bytes.Buffer{}
	require.NoError(t, Snapshot(&buf, particles, []float64{1, 2, 4}, false))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert := assert.New(t)
	assert.Equal(width, img.Bounds().Dx())
	assert.Equal(height, img.Bounds().Dy())
	gray := func(x, y int) uint8 { return color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y }
	assert.Equal(uint8(0), gray(width/2, height/2), "strongest force is black")
	assert.Equal(uint8(255), gray(0, 0), "background")
	assert.Less(gray(width/2+290, height/2-290), uint8(255), "upper right particle is drawn")
}

func TestSnapshot_forcesMismatch(t *testing.T) {
	err := Snapshot(&bytes.Buffer{}, []barneshut.Particle{barneshut.NewParticle(0, 0, 1)}, []float64{1, 2}, false)
	assert.Error(t, err)
}

func TestSnapshotFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "snapshot.png")
	require.NoError(t, SnapshotFile(filename, []barneshut.Particle{barneshut.NewParticle(0, 0, 1)}, nil, true))
	file, err := os.Open(filename)
	require.NoError(t, err)
	defer file.Close()
	img, err := png.Decode(file)
	require.NoError(t, err)
	assert.Equal(t, color.Gray{Y: 255}, color.GrayModel.Convert(img.At(width/2, height/2)))
	assert.Equal(t, color.Gray{Y: 0}, color.GrayModel.Convert(img.At(1, 1)))
}
