// Package software provides the in-process implementation of the
// render contracts: an image.RGBA-backed canvas whose native blur
// filter is imaging's Gaussian, plus wall-clock and manually-stepped
// frame schedulers.
package software

import (
	"bytes"
	"image"
	"image/draw"
	"image/png"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/hashvatar/pkg/render"
)

// Canvas is a square in-memory render surface. Each render call owns
// its canvas exclusively; nothing here is safe for concurrent use.
type Canvas struct {
	side int
	img  *image.RGBA
}

// NewCanvas allocates a canvas of the given side length in pixels.
func NewCanvas(side int) *Canvas {
	if side < 1 {
		side = 1
	}
	return &Canvas{
		side: side,
		img:  image.NewRGBA(image.Rect(0, 0, side, side)),
	}
}

// Size returns the side length in pixels.
func (c *Canvas) Size() int { return c.side }

// Image exposes the backing pixel buffer.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Blur implements render.Blurrer with imaging's separable Gaussian
// filter. src is left untouched.
func (c *Canvas) Blur(src *image.RGBA, radius float64) *image.RGBA {
	if radius <= 0 {
		return src
	}
	// imaging expresses blur strength as sigma; half the radius is a
	// close match for the three-pass box approximation.
	blurred := imaging.Blur(src, radius*0.5)
	out := image.NewRGBA(src.Bounds())
	draw.Draw(out, out.Bounds(), blurred, image.Point{}, draw.Src)
	return out
}

// PNG encodes the current canvas content.
func (c *Canvas) PNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, c.img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var (
	_ render.Surface = (*Canvas)(nil)
	_ render.Blurrer = (*Canvas)(nil)
)
