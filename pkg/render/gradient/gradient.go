// Package gradient renders the layered blurred-polygon avatar: six
// irregular polygons, each seeded with its own transform, blurred and
// composited over the base color with alternating blend modes so the
// accents melt into a diffuse multi-color blend.
package gradient

import (
	"image"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/matzehuels/hashvatar/pkg/colorspace"
	"github.com/matzehuels/hashvatar/pkg/render"
)

// layerCount is fixed: six polygons, cycling through three accents.
const layerCount = 6

// seedsPerLayer covers translation (x, y), rotation, and scale.
const seedsPerLayer = 4

// SeedCount is the number of seed values the renderer consumes.
const SeedCount = layerCount * seedsPerLayer

// MinColors is the palette size this renderer expects: one base color
// plus three accents. Anything smaller is a guarded no-op.
const MinColors = 4

const (
	// phaseRate scales accumulated seconds into animation phase.
	phaseRate = 1.2
	// driftAmplitude is the positional drift, as a fraction of canvas size.
	driftAmplitude = 0.18
	// scalePulse is the sinusoidal scale excursion around the seeded base.
	scalePulse = 0.15
	// blurFraction sets the blur radius relative to the buffer size.
	blurFraction = 0.16
	// polygonExtent scales unit-polygon coordinates to the canvas.
	polygonExtent = 0.58
)

type vec struct{ x, y float64 }

// polygons are the six fixed outlines, centered on the origin in
// roughly [-0.55, 0.55] coordinates.
var polygons = [layerCount][]vec{
	{{0.02, -0.52}, {0.46, -0.28}, {0.50, 0.18}, {0.08, 0.54}, {-0.40, 0.36}, {-0.48, -0.20}},
	{{-0.06, -0.48}, {0.38, -0.36}, {0.54, 0.06}, {0.20, 0.46}, {-0.28, 0.50}, {-0.52, 0.02}},
	{{0.10, -0.56}, {0.48, -0.10}, {0.36, 0.38}, {-0.04, 0.52}, {-0.44, 0.28}, {-0.36, -0.34}},
	{{-0.14, -0.50}, {0.30, -0.44}, {0.52, -0.02}, {0.34, 0.42}, {-0.16, 0.54}, {-0.50, 0.12}},
	{{0.06, -0.46}, {0.44, -0.22}, {0.46, 0.26}, {0.02, 0.50}, {-0.46, 0.30}, {-0.42, -0.26}},
	{{-0.02, -0.54}, {0.40, -0.32}, {0.50, 0.14}, {0.12, 0.48}, {-0.36, 0.44}, {-0.54, -0.08}},
}

// Per-layer compositing and motion constants. Alphas are tuned so each
// layer stays visible under the one above it.
var (
	blendModes = [layerCount]render.BlendMode{
		render.BlendNormal, render.BlendOverlay, render.BlendSoftLight,
		render.BlendNormal, render.BlendOverlay, render.BlendSoftLight,
	}
	alphas      = [layerCount]float64{0.88, 0.70, 0.80, 0.62, 0.66, 0.76}
	rotSpeeds   = [layerCount]float64{0.31, -0.22, 0.17, -0.35, 0.26, -0.14}
	driftFreqs  = [layerCount]float64{0.9, 1.3, 0.7, 1.1, 1.5, 0.5}
	driftPhases = [layerCount]float64{0, 1.05, 2.17, 3.32, 4.41, 5.58}
	scaleFreqs  = [layerCount]float64{0.8, 1.15, 0.65, 1.3, 0.95, 0.55}
)

// Layer is the seeded per-polygon transform, derived once and immutable
// for the life of a render call. Positions are in unit-square
// coordinates.
type Layer struct {
	X        float64
	Y        float64
	Rotation float64
	Scale    float64
}

// NewLayers derives one Layer per polygon from the seed stream. It
// needs SeedCount values; short streams yield nil.
func NewLayers(seeds []float64) []Layer {
	if len(seeds) < SeedCount {
		return nil
	}
	layers := make([]Layer, layerCount)
	for i := range layers {
		s := seeds[i*seedsPerLayer:]
		layers[i] = Layer{
			X:        0.15 + s[0]*0.70,
			Y:        0.15 + s[1]*0.70,
			Rotation: s[2] * 2 * math.Pi,
			Scale:    0.55 + s[3]*0.70,
		}
	}
	return layers
}

// Renderer draws gradient frames for one palette and seed stream.
type Renderer struct {
	layers []Layer
	colors []colorspace.Color
	blur   func(*image.RGBA, float64) *image.RGBA
	// halfRes renders offscreen layers at half resolution and upscales
	// on composite; used on the fallback blur path while animating to
	// bound per-frame cost.
	halfRes bool
}

// New builds a renderer. It returns nil when the palette has fewer than
// MinColors entries or the seed stream is too short; callers treat nil
// as "draw nothing".
func New(colors []colorspace.Color, seeds []float64) *Renderer {
	if len(colors) < MinColors {
		return nil
	}
	layers := NewLayers(seeds)
	if layers == nil {
		return nil
	}
	return &Renderer{layers: layers, colors: colors}
}

// bind resolves the blur path for the target surface.
func (r *Renderer) bind(s render.Surface, animated bool) {
	if render.NativeBlurSupported(s) {
		r.blur = s.(render.Blurrer).Blur
		return
	}
	r.blur = render.BoxBlur
	r.halfRes = animated
}

// Render draws a single static frame onto s. With fewer than four
// palette colors it draws nothing.
func Render(s render.Surface, colors []colorspace.Color, seeds []float64) {
	r := New(colors, seeds)
	if r == nil {
		return
	}
	r.bind(s, false)
	r.Draw(s, 0)
}

// Animate draws the first frame and keeps animating on sched until the
// returned handle is destroyed. The guard cases return nil, which is an
// inert handle.
func Animate(s render.Surface, sched render.Scheduler, colors []colorspace.Color, seeds []float64) *render.Handle {
	r := New(colors, seeds)
	if r == nil {
		return nil
	}
	r.bind(s, true)
	return render.Animate(sched, func(phase float64) {
		r.Draw(s, phase*phaseRate)
	})
}

// Draw renders one frame at the given animation phase onto s: base fill
// first, then each polygon layer rendered offscreen, blurred, and
// composited with its blend mode and alpha. Accents cycle as palette
// index 1 + layer mod 3.
func (r *Renderer) Draw(s render.Surface, phase float64) {
	size := s.Size()
	dst := s.Image()
	draw.Draw(dst, dst.Bounds(), image.NewUniform(r.colors[0].NRGBA()), image.Point{}, draw.Src)

	off := size
	if r.halfRes && size > 1 {
		off = size / 2
	}

	for i := 0; i < layerCount; i++ {
		buf := r.renderLayer(i, off, phase)
		buf = r.blur(buf, float64(off)*blurFraction)
		if off != size {
			up := imaging.Resize(buf, size, size, imaging.Linear)
			buf = image.NewRGBA(dst.Bounds())
			draw.Draw(buf, buf.Bounds(), up, image.Point{}, draw.Src)
		}
		render.Composite(dst, buf, blendModes[i], alphas[i])
	}
}

// renderLayer rasterizes one transformed polygon into a transparent
// offscreen buffer of side px.
func (r *Renderer) renderLayer(i, px int, phase float64) *image.RGBA {
	l := r.layers[i]
	fp := float64(px)

	x := l.X*fp + driftAmplitude*fp*math.Sin(phase*driftFreqs[i]+driftPhases[i])
	y := l.Y*fp + driftAmplitude*fp*math.Cos(phase*driftFreqs[i]+driftPhases[i])
	rot := l.Rotation + phase*rotSpeeds[i]
	scale := l.Scale * (1 + scalePulse*math.Sin(phase*scaleFreqs[i]+driftPhases[i]))

	dc := gg.NewContext(px, px)
	dc.Translate(x, y)
	dc.Rotate(rot)
	dc.Scale(scale*fp*polygonExtent, scale*fp*polygonExtent)

	poly := polygons[i]
	dc.MoveTo(poly[0].x, poly[0].y)
	for _, p := range poly[1:] {
		dc.LineTo(p.x, p.y)
	}
	dc.ClosePath()
	dc.SetColor(r.colors[1+i%3].NRGBA())
	dc.Fill()

	img, ok := dc.Image().(*image.RGBA)
	if !ok {
		img = image.NewRGBA(image.Rect(0, 0, px, px))
		draw.Draw(img, img.Bounds(), dc.Image(), image.Point{}, draw.Src)
	}
	return img
}
