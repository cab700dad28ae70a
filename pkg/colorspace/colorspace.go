// Package colorspace implements the OKLCH perceptual color type used
// throughout hashvatar, along with conversion to and from sRGB.
//
// OKLCH is the cylindrical form of OKLab: lightness, chroma, and hue.
// Equal numeric distances correspond to roughly equal perceived
// differences, which is what makes seed-driven palette derivation
// behave predictably. sRGB appears only at the edges, as an input
// encoding for parsed tones and an output encoding for pixels.
package colorspace

import (
	"fmt"
	"image/color"
	"math"
)

// MaxChroma caps chroma so every derived color stays inside a
// displayable and printable gamut.
const MaxChroma = 0.37

// Color is a color in OKLCH: lightness L in [0,1], chroma C in
// [0, MaxChroma], hue H in degrees [0,360).
type Color struct {
	L float64
	C float64
	H float64
}

// New returns a Color with each component clamped to its valid range.
// Hue wraps modulo 360, including negative inputs.
func New(l, c, h float64) Color {
	return Color{
		L: clamp01(l),
		C: math.Min(math.Max(c, 0), MaxChroma),
		H: wrapHue(h),
	}
}

// FromRGB converts an 8-bit sRGB triple to OKLCH.
func FromRGB(r, g, b uint8) Color {
	lr := linearize(float64(r) / 255)
	lg := linearize(float64(g) / 255)
	lb := linearize(float64(b) / 255)
	l, a, bb := oklabFromLinear(lr, lg, lb)
	return Color{
		L: clamp01(l),
		C: math.Min(math.Hypot(a, bb), MaxChroma),
		H: wrapHue(math.Atan2(bb, a) * 180 / math.Pi),
	}
}

// FromColor converts any color.Color to OKLCH via its 8-bit sRGB encoding.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return FromRGB(n.R, n.G, n.B)
}

// RGB returns the 8-bit sRGB encoding of c, clamped to gamut.
func (c Color) RGB() (r, g, b uint8) {
	a := c.C * math.Cos(c.H*math.Pi/180)
	bb := c.C * math.Sin(c.H*math.Pi/180)
	lr, lg, lb := linearFromOklab(c.L, a, bb)
	r = encode(lr)
	g = encode(lg)
	b = encode(lb)
	return r, g, b
}

// NRGBA returns the opaque sRGB encoding of c.
func (c Color) NRGBA() color.NRGBA {
	r, g, b := c.RGB()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// RGBA implements color.Color; the result is always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// Hex returns the lowercase #rrggbb encoding of c.
func (c Color) Hex() string {
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}

func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// linearize removes the sRGB transfer curve (gamma 2.4 with a linear
// segment below 0.04045).
func linearize(u float64) float64 {
	if u <= 0.04045 {
		return u / 12.92
	}
	return math.Pow((u+0.055)/1.055, 2.4)
}

// delinearize applies the sRGB transfer curve.
func delinearize(u float64) float64 {
	if u <= 0.0031308 {
		return 12.92 * u
	}
	return 1.055*math.Pow(u, 1/2.4) - 0.055
}

// encode clamps a linear channel into gamut and returns its 8-bit
// sRGB value.
func encode(u float64) uint8 {
	return uint8(math.Round(clamp01(delinearize(clamp01(u))) * 255))
}

// oklabFromLinear maps linear sRGB through the LMS cone response to
// OKLab using the standard matrices.
func oklabFromLinear(r, g, b float64) (l, a, bb float64) {
	lm := 0.4122214708*r + 0.5363325363*g + 0.0514459929*b
	mm := 0.2119034982*r + 0.6806995451*g + 0.1073969566*b
	sm := 0.0883024619*r + 0.2817188376*g + 0.6299787005*b

	lc := math.Cbrt(lm)
	mc := math.Cbrt(mm)
	sc := math.Cbrt(sm)

	l = 0.2104542553*lc + 0.7936177850*mc - 0.0040720468*sc
	a = 1.9779984951*lc - 2.4285922050*mc + 0.4505937099*sc
	bb = 0.0259040371*lc + 0.7827717662*mc - 0.8086757660*sc
	return l, a, bb
}

// linearFromOklab is the inverse of oklabFromLinear.
func linearFromOklab(l, a, bb float64) (r, g, b float64) {
	lc := l + 0.3963377774*a + 0.2158037573*bb
	mc := l - 0.1055613458*a - 0.0638541728*bb
	sc := l - 0.0894841775*a - 1.2914855480*bb

	lm := lc * lc * lc
	mm := mc * mc * mc
	sm := sc * sc * sc

	r = 4.0767416621*lm - 3.3077115913*mm + 0.2309699292*sm
	g = -1.2684380046*lm + 2.6097574011*mm - 0.3413193965*sm
	b = -0.0041960863*lm - 0.7034186147*mm + 1.7076147010*sm
	return r, g, b
}
