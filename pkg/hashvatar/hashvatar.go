// Package hashvatar is the public entry point: it turns an arbitrary
// input string into a deterministic avatar image.
//
// The pipeline is seed stream → palette → renderer. Identical inputs
// always render identical pixels; inputs differing by one character
// normally look entirely unrelated. Two renderers are available: a
// layered blurred-polygon gradient and an ordered-dither halftone.
//
// Everything degrades instead of failing: malformed tones are dropped,
// an undersized palette renders nothing, and a missing blur filter
// falls back to a software approximation. The hash can be any string
// and must always yield some deterministic image, so no option
// combination returns an error.
//
//	av := hashvatar.New(hashvatar.Options{Hash: "vitalik.eth"})
//	defer av.Destroy()
//	pngBytes, _ := av.Canvas.PNG()
package hashvatar

import (
	"math"

	"github.com/matzehuels/hashvatar/pkg/colorspace"
	"github.com/matzehuels/hashvatar/pkg/palette"
	"github.com/matzehuels/hashvatar/pkg/render"
	"github.com/matzehuels/hashvatar/pkg/render/dither"
	"github.com/matzehuels/hashvatar/pkg/render/gradient"
	"github.com/matzehuels/hashvatar/pkg/render/software"
	"github.com/matzehuels/hashvatar/pkg/seed"
)

// Mode selects the rendering algorithm.
type Mode string

const (
	// ModeGradient renders layered blurred polygons over a base color.
	ModeGradient Mode = "gradient"
	// ModeDither renders a two-tone ordered-dither halftone.
	ModeDither Mode = "dither"
)

// Valid reports whether m names a known renderer.
func (m Mode) Valid() bool {
	return m == ModeGradient || m == ModeDither
}

const (
	// DefaultSize is the default square side in device-independent units.
	DefaultSize = 64
	// MaxPixelRatio caps the backing-resolution multiplier.
	MaxPixelRatio = 3.0
	// defaultFPS drives TickScheduler-based animation in New.
	defaultFPS = 30
)

// Options configures one render call. Only Hash is required; every
// other field has a usable zero value.
type Options struct {
	// Hash is the input string the avatar is derived from.
	Hash string

	// Size is the square side in device-independent units (default 64).
	Size int

	// PixelRatio scales Size to the backing resolution, matching the
	// display's pixel density. Defaults to 1 and is capped at 3.
	PixelRatio float64

	// Mode picks the renderer (default gradient).
	Mode Mode

	// Animated starts a frame loop instead of a single static draw.
	Animated bool

	// DotScale is the dither cell size in pixels; zero derives it from
	// the canvas size. Ignored by the gradient renderer.
	DotScale int

	// Tones biases generated hues. Entries are parsed as named colors,
	// hex, or oklch() literals; unparsable entries are dropped.
	Tones []string
}

// withDefaults returns a copy with zero values resolved.
func (o Options) withDefaults() Options {
	if o.Size <= 0 {
		o.Size = DefaultSize
	}
	if o.PixelRatio <= 0 {
		o.PixelRatio = 1
	}
	if o.PixelRatio > MaxPixelRatio {
		o.PixelRatio = MaxPixelRatio
	}
	if !o.Mode.Valid() {
		o.Mode = ModeGradient
	}
	return o
}

// pixels returns the backing resolution in pixels.
func (o Options) pixels() int {
	return int(math.Round(float64(o.Size) * o.PixelRatio))
}

// paletteSize returns the palette length the selected renderer expects.
func (o Options) paletteSize() int {
	if o.Mode == ModeDither {
		return dither.MinColors
	}
	return gradient.MinColors
}

// rendererSeeds returns how many seed values the selected renderer
// consumes beyond the palette's.
func (o Options) rendererSeeds() int {
	if o.Mode == ModeDither {
		return dither.SeedCount
	}
	return gradient.SeedCount
}

// Avatar couples an allocated canvas with the palette it was drawn
// with and, when animated, the running frame loop.
type Avatar struct {
	// Canvas holds the rendered pixels.
	Canvas *software.Canvas
	// Colors is the derived palette; index 0 is the base color.
	Colors []colorspace.Color

	handle *render.Handle
}

// Destroy stops the avatar's animation. It is idempotent and a no-op
// for static avatars.
func (a *Avatar) Destroy() {
	if a != nil {
		a.handle.Destroy()
	}
}

// New allocates a canvas sized per opts and renders into it. Animated
// avatars run on a wall-clock scheduler until Destroy is called.
func New(opts Options) *Avatar {
	opts = opts.withDefaults()
	canvas := software.NewCanvas(opts.pixels())
	var sched render.Scheduler
	if opts.Animated {
		sched = software.NewTickScheduler(defaultFPS)
	}
	colors, handle := Render(canvas, sched, opts)
	return &Avatar{Canvas: canvas, Colors: colors, handle: handle}
}

// Render draws an avatar into a caller-supplied surface. It returns the
// derived palette and, for animated renders, a handle that stops the
// frame loop; static renders and guarded no-ops return a nil (inert)
// handle. A nil scheduler downgrades an animated request to a static
// draw.
func Render(surface render.Surface, sched render.Scheduler, opts Options) ([]colorspace.Color, *render.Handle) {
	opts = opts.withDefaults()
	tones := palette.ParseTones(opts.Tones)

	n := opts.paletteSize()
	seeds := seedStream(opts, n)
	colors := palette.FromSeeds(seeds[:palette.SeedsPerColor*n], tones)
	rest := seeds[palette.SeedsPerColor*n:]
	animated := opts.Animated && sched != nil

	switch opts.Mode {
	case ModeDither:
		cell := opts.DotScale
		if cell <= 0 {
			cell = dither.DefaultCellSize(surface.Size())
		}
		if animated {
			return colors, dither.Animate(surface, sched, colors, rest, cell)
		}
		dither.Render(surface, colors, rest, cell)
		return colors, nil
	default:
		if animated {
			return colors, gradient.Animate(surface, sched, colors, rest)
		}
		gradient.Render(surface, colors, rest)
		return colors, nil
	}
}

// seedStream draws the one seed stream a render call consumes: palette
// values first, renderer values after.
func seedStream(opts Options, paletteLen int) []float64 {
	return seed.Values(opts.Hash, palette.SeedsPerColor*paletteLen+opts.rendererSeeds())
}
