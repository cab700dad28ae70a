package render

import (
	"image"
	"image/color"
	"math"
	"sync"
)

// blurProbe caches the native-blur capability check for the process
// lifetime. The probe is pure, so concurrent first calls all compute
// the same value.
var blurProbe struct {
	once sync.Once
	ok   bool
}

// NativeBlurSupported reports whether s provides a working native blur
// filter. Support is detected once per process by blurring a known
// pattern and checking that the output actually changed; the result is
// cached thereafter.
func NativeBlurSupported(s Surface) bool {
	b, ok := s.(Blurrer)
	if !ok {
		return false
	}
	blurProbe.once.Do(func() {
		blurProbe.ok = probeBlur(b)
	})
	return blurProbe.ok
}

// probeBlur blurs a single bright pixel on an opaque black field and
// checks that energy spread to a neighbor.
func probeBlur(b Blurrer) bool {
	const side = 8
	img := image.NewRGBA(image.Rect(0, 0, side, side))
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			img.SetRGBA(x, y, color.RGBA{A: 255})
		}
	}
	img.SetRGBA(3, 3, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	out := b.Blur(img, 2)
	if out == nil || out.Bounds() != img.Bounds() {
		return false
	}
	spread := out.RGBAAt(2, 3).R > 0 || out.RGBAAt(4, 3).R > 0
	dimmed := out.RGBAAt(3, 3).R < 255
	return spread && dimmed
}

// boxRadius converts a Gaussian radius into the per-pass box radius for
// the three-pass approximation.
func boxRadius(radius float64) int {
	return int(math.Round((math.Sqrt(4*radius*radius+1) - 1) / 2))
}

// BoxBlur approximates a Gaussian blur with three separable box-blur
// passes (horizontal then vertical sliding-window averages). It returns
// a new image; src is left untouched. A radius that rounds to zero
// returns src unchanged.
func BoxBlur(src *image.RGBA, radius float64) *image.RGBA {
	r := boxRadius(radius)
	if r <= 0 {
		return src
	}
	cur := cloneRGBA(src)
	tmp := image.NewRGBA(src.Bounds())
	for pass := 0; pass < 3; pass++ {
		boxPassH(cur, tmp, r)
		boxPassV(tmp, cur, r)
	}
	return cur
}

func cloneRGBA(src *image.RGBA) *image.RGBA {
	out := image.NewRGBA(src.Bounds())
	copy(out.Pix, src.Pix)
	return out
}

// boxPassH averages each pixel over a horizontal window of width 2r+1,
// clamping at the edges.
func boxPassH(src, dst *image.RGBA, r int) {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	div := 2*r + 1
	for y := 0; y < h; y++ {
		var sr, sg, sb, sa int
		for i := -r; i <= r; i++ {
			p := src.RGBAAt(clampInt(i, 0, w-1), y)
			sr += int(p.R)
			sg += int(p.G)
			sb += int(p.B)
			sa += int(p.A)
		}
		for x := 0; x < w; x++ {
			dst.SetRGBA(x, y, color.RGBA{
				R: uint8(sr / div),
				G: uint8(sg / div),
				B: uint8(sb / div),
				A: uint8(sa / div),
			})
			add := src.RGBAAt(clampInt(x+r+1, 0, w-1), y)
			sub := src.RGBAAt(clampInt(x-r, 0, w-1), y)
			sr += int(add.R) - int(sub.R)
			sg += int(add.G) - int(sub.G)
			sb += int(add.B) - int(sub.B)
			sa += int(add.A) - int(sub.A)
		}
	}
}

// boxPassV is boxPassH along the vertical axis.
func boxPassV(src, dst *image.RGBA, r int) {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	div := 2*r + 1
	for x := 0; x < w; x++ {
		var sr, sg, sb, sa int
		for i := -r; i <= r; i++ {
			p := src.RGBAAt(x, clampInt(i, 0, h-1))
			sr += int(p.R)
			sg += int(p.G)
			sb += int(p.B)
			sa += int(p.A)
		}
		for y := 0; y < h; y++ {
			dst.SetRGBA(x, y, color.RGBA{
				R: uint8(sr / div),
				G: uint8(sg / div),
				B: uint8(sb / div),
				A: uint8(sa / div),
			})
			add := src.RGBAAt(x, clampInt(y+r+1, 0, h-1))
			sub := src.RGBAAt(x, clampInt(y-r, 0, h-1))
			sr += int(add.R) - int(sub.R)
			sg += int(add.G) - int(sub.G)
			sb += int(add.B) - int(sub.B)
			sa += int(add.A) - int(sub.A)
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
