package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/pkg/errors"
	"github.com/suxatcode/barnes-hut/barneshut"
)

const (
	width  = 800
	height = 600
	margin = 10
)

// Snapshot draws every particle as a single pixel. Positions are scaled to
// fit into the image, brightness grows with the force acting on the particle.
// forces may be nil, then all particles are drawn at full brightness.
func Snapshot(w io.Writer, particles []barneshut.Particle, forces []float64, invertColor bool) error {
	if forces != nil && len(forces) != len(particles) {
		return errors.Errorf("got %d forces for %d particles", len(forces), len(particles))
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	background := color.White
	if invertColor {
		background = color.Black
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, background)
		}
	}
	if len(particles) == 0 {
		return png.Encode(w, img)
	}
	cell, err := barneshut.BoundingCell(particles, 0)
	if err != nil {
		return err
	}
	scale := float64(min(width, height)-2*margin) / (2 * cell.Size)
	maxForce := 0.0
	for _, f := range forces {
		if !math.IsInf(f, 0) && f > maxForce {
			maxForce = f
		}
	}
	for i, p := range particles {
		intensity := 1.0
		if forces != nil && maxForce > 0 {
			intensity = math.Min(forces[i]/maxForce, 1.0)
		}
		x := width/2 + int((p.Pos.X()-cell.Center.X())*scale)
		// image y axis points down
		y := height/2 - int((p.Pos.Y()-cell.Center.Y())*scale)
		img.Set(x, y, shade(intensity, invertColor))
	}
	return png.Encode(w, img)
}

func shade(intensity float64, invertColor bool) color.Gray {
	level := uint8(math.Round(255 * intensity))
	if invertColor {
		return color.Gray{Y: level}
	}
	return color.Gray{Y: 255 - level}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func SnapshotFile(filename string, particles []barneshut.Particle, forces []float64, invertColor bool) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	if err := Snapshot(file, particles, forces, invertColor); err != nil {
		return errors.Wrapf(err, "failed to render '%s'", filename)
	}
	return file.Close()
}
