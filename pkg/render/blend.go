package render

import (
	"image"
	"image/color"
	"math"
)

// BlendMode selects the compositing rule used when a layer is drawn
// over existing canvas content.
type BlendMode int

const (
	// BlendNormal is plain source-over alpha compositing.
	BlendNormal BlendMode = iota
	// BlendOverlay multiplies dark backdrop regions and screens light ones.
	BlendOverlay
	// BlendSoftLight darkens or lightens the backdrop depending on the
	// source, like a diffused spotlight.
	BlendSoftLight
)

// String returns the CSS name of the blend mode.
func (m BlendMode) String() string {
	switch m {
	case BlendOverlay:
		return "overlay"
	case BlendSoftLight:
		return "soft-light"
	default:
		return "normal"
	}
}

// Composite draws src over dst using the given blend mode, scaling the
// source's own alpha by the layer alpha in [0,1]. The two images must
// share bounds. dst is assumed opaque (surfaces are pre-filled with the
// base color before layers are composited) and stays opaque.
func Composite(dst, src *image.RGBA, mode BlendMode, alpha float64) {
	b := dst.Bounds()
	if src.Bounds() != b {
		return
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			sp := src.RGBAAt(x, y)
			if sp.A == 0 {
				continue
			}
			a := float64(sp.A) / 255 * alpha
			if a <= 0 {
				continue
			}
			// Un-premultiply the source layer.
			cs := [3]float64{
				float64(sp.R) / float64(sp.A),
				float64(sp.G) / float64(sp.A),
				float64(sp.B) / float64(sp.A),
			}
			dp := dst.RGBAAt(x, y)
			cb := [3]float64{
				float64(dp.R) / 255,
				float64(dp.G) / 255,
				float64(dp.B) / 255,
			}
			var out [3]uint8
			for i := 0; i < 3; i++ {
				bl := blendChannel(mode, cb[i], math.Min(cs[i], 1))
				out[i] = uint8(math.Round((cb[i] + a*(bl-cb[i])) * 255))
			}
			dst.SetRGBA(x, y, color.RGBA{R: out[0], G: out[1], B: out[2], A: 255})
		}
	}
}

// blendChannel applies the W3C compositing formula for one channel;
// cb is the backdrop, cs the source, both in [0,1].
func blendChannel(mode BlendMode, cb, cs float64) float64 {
	switch mode {
	case BlendOverlay:
		if cb <= 0.5 {
			return 2 * cb * cs
		}
		return 1 - 2*(1-cb)*(1-cs)
	case BlendSoftLight:
		if cs <= 0.5 {
			return cb - (1-2*cs)*cb*(1-cb)
		}
		var d float64
		if cb <= 0.25 {
			d = ((16*cb-12)*cb + 4) * cb
		} else {
			d = math.Sqrt(cb)
		}
		return cb + (2*cs-1)*(d-cb)
	default:
		return cs
	}
}
