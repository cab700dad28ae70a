package hashvatar

import (
	"bytes"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"time"

	"github.com/matzehuels/hashvatar/pkg/render/software"
)

// RenderGIF renders an animated avatar to GIF bytes using a manually
// stepped scheduler at a fixed timestep, so the output depends only on
// the options, frame count, and frame rate. The Animated option is
// implied.
func RenderGIF(opts Options, frames, fps int) ([]byte, error) {
	if frames < 1 {
		return nil, fmt.Errorf("render gif: frame count %d out of range", frames)
	}
	if fps < 1 || fps > 50 {
		return nil, fmt.Errorf("render gif: fps %d out of range [1,50]", fps)
	}
	opts = opts.withDefaults()
	opts.Animated = true

	canvas := software.NewCanvas(opts.pixels())
	sched := &software.StepScheduler{}
	_, handle := Render(canvas, sched, opts)
	defer handle.Destroy()

	step := time.Second / time.Duration(fps)
	// Centiseconds, the GIF delay unit.
	delay := int(step / (10 * time.Millisecond))
	if delay < 2 {
		delay = 2
	}

	// The first scheduled frame only records its timestamp; step once
	// so the exported frames advance from phase zero.
	now := time.Unix(0, 0)
	sched.Step(now)

	out := &gif.GIF{LoopCount: 0}
	for i := 0; i < frames; i++ {
		appendFrame(out, canvas.Image(), delay)
		now = now.Add(step)
		sched.Step(now)
	}

	var buf bytes.Buffer
	if err := gif.EncodeAll(&buf, out); err != nil {
		return nil, fmt.Errorf("render gif: %w", err)
	}
	return buf.Bytes(), nil
}

// appendFrame quantizes the current canvas into the GIF's frame list.
func appendFrame(g *gif.GIF, img *image.RGBA, delay int) {
	b := img.Bounds()
	pm := image.NewPaletted(b, palette.Plan9)
	draw.FloydSteinberg.Draw(pm, b, img, image.Point{})
	g.Image = append(g.Image, pm)
	g.Delay = append(g.Delay, delay)
}
