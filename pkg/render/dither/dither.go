// Package dither renders the halftone avatar: an ordered Bayer dither
// over a gradient field swept at a seeded angle through the canvas
// center. The output is strictly two-tone; all apparent shading comes
// from the threshold pattern.
package dither

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/matzehuels/hashvatar/pkg/colorspace"
	"github.com/matzehuels/hashvatar/pkg/render"
)

// SeedCount is the number of seed values the renderer consumes: sweep
// angle, falloff width, and the two per-cell noise seeds.
const SeedCount = 4

// MinColors is the palette size this renderer expects: background plus
// accent.
const MinColors = 2

const (
	// sweepRate advances the sweep angle with animation phase, in
	// radians per second.
	sweepRate = 0.25
	// cellRate drives the per-cell oscillation frequency.
	cellRate = 2.1
	// cellAmpBase and cellAmpSpan bound the per-cell oscillation
	// amplitude, in cell sizes.
	cellAmpBase = 0.5
	cellAmpSpan = 1.1
)

// bayer is the standard 8×8 Bayer ordered-dither matrix: 64 distinct
// levels arranged to minimize visible repeating artifacts.
var bayer = [8][8]uint8{
	{0, 32, 8, 40, 2, 34, 10, 42},
	{48, 16, 56, 24, 50, 18, 58, 26},
	{12, 44, 4, 36, 14, 46, 6, 38},
	{60, 28, 52, 20, 62, 30, 54, 22},
	{3, 35, 11, 43, 1, 33, 9, 41},
	{51, 19, 59, 27, 49, 17, 57, 25},
	{15, 47, 7, 39, 13, 45, 5, 37},
	{63, 31, 55, 23, 61, 29, 53, 21},
}

// DefaultCellSize derives the dot grid pitch from the canvas size so
// pattern density scales with resolution: max(2, round(size/35)).
func DefaultCellSize(size int) int {
	c := int(math.Round(float64(size) / 35))
	if c < 2 {
		c = 2
	}
	return c
}

// Renderer draws dither frames for one palette and seed stream.
type Renderer struct {
	colors   []colorspace.Color
	angle    float64 // seeded sweep angle, radians
	falloff  float64 // falloff width as a fraction of canvas size
	noiseA   float64 // per-cell phase seed
	noiseB   float64 // per-cell amplitude seed
	cell     int
	animated bool
}

// New builds a renderer with the given cell size (use DefaultCellSize
// when the caller did not specify one). It returns nil when the palette
// has fewer than two colors or the seed stream is too short.
func New(colors []colorspace.Color, seeds []float64, cell int) *Renderer {
	if len(colors) < MinColors || len(seeds) < SeedCount {
		return nil
	}
	if cell < 1 {
		cell = 1
	}
	return &Renderer{
		colors:  colors,
		angle:   seeds[0] * 2 * math.Pi,
		falloff: 0.55 + seeds[1]*0.65,
		noiseA:  seeds[2],
		noiseB:  seeds[3],
		cell:    cell,
	}
}

// Render draws a single static frame onto s.
func Render(s render.Surface, colors []colorspace.Color, seeds []float64, cell int) {
	if r := New(colors, seeds, cell); r != nil {
		r.Draw(s, 0)
	}
}

// Animate draws the first frame and keeps animating on sched until the
// returned handle is destroyed. Guard cases return the nil inert
// handle.
func Animate(s render.Surface, sched render.Scheduler, colors []colorspace.Color, seeds []float64, cell int) *render.Handle {
	r := New(colors, seeds, cell)
	if r == nil {
		return nil
	}
	r.animated = true
	return render.Animate(sched, func(phase float64) {
		r.Draw(s, phase)
	})
}

// Draw renders one frame at the given animation phase. Every grid cell
// projects its center onto the sweep axis, eases the normalized
// distance with a smoothstep, and compares it against the Bayer
// threshold for its matrix slot: below paints the accent, otherwise the
// background shows through.
func (r *Renderer) Draw(s render.Surface, phase float64) {
	size := s.Size()
	img := s.Image()

	bg := r.colors[0].NRGBA()
	fg := r.colors[1].NRGBA()
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	angle := r.angle + phase*sweepRate
	sin, cos := math.Sincos(angle)
	falloff := r.falloff * float64(size)
	half := float64(size) / 2
	cellF := float64(r.cell)
	cells := (size + r.cell - 1) / r.cell

	for cy := 0; cy < cells; cy++ {
		for cx := 0; cx < cells; cx++ {
			px := (float64(cx)+0.5)*cellF - half
			py := (float64(cy)+0.5)*cellF - half
			proj := px*cos + py*sin
			if r.animated {
				// Fixed per-cell phase and amplitude keep the motion
				// organic without re-seeding between frames.
				cp := cellNoise(cx, cy, r.noiseA) * 2 * math.Pi
				amp := (cellAmpBase + cellAmpSpan*cellNoise(cx, cy, r.noiseB)) * cellF
				proj += amp * math.Sin(phase*cellRate+cp)
			}
			t := proj/falloff + 0.5
			if t < 0 {
				t = 0
			} else if t > 1 {
				t = 1
			}
			eased := t * t * (3 - 2*t)
			threshold := (float64(bayer[cy&7][cx&7]) + 0.5) / 64
			if eased < threshold {
				fillCell(img, cx*r.cell, cy*r.cell, r.cell, size, fg)
			}
		}
	}
}

// fillCell paints one grid cell, clipped to the canvas edge.
func fillCell(img *image.RGBA, x0, y0, cell, size int, c color.NRGBA) {
	x1 := x0 + cell
	y1 := y0 + cell
	if x1 > size {
		x1 = size
	}
	if y1 > size {
		y1 = size
	}
	draw.Draw(img, image.Rect(x0, y0, x1, y1), image.NewUniform(c), image.Point{}, draw.Src)
}

// cellNoise hashes integer cell coordinates and a seed into [0,1).
// It is a pure function, so a cell's offset never changes across
// frames.
func cellNoise(cx, cy int, seedVal float64) float64 {
	v := math.Sin(float64(cx)*127.1+float64(cy)*311.7+seedVal*74.7) * 43758.5453
	return v - math.Floor(v)
}
