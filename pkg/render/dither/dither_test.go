package dither_test

import (
	"bytes"
	"image/color"
	"testing"
	"time"

	"github.com/matzehuels/hashvatar/pkg/palette"
	"github.com/matzehuels/hashvatar/pkg/render/dither"
	"github.com/matzehuels/hashvatar/pkg/render/software"
	"github.com/matzehuels/hashvatar/pkg/seed"
)

func ditherInputs(t *testing.T, input string) ([]float64, []float64) {
	t.Helper()
	seeds := seed.Values(input, palette.SeedsPerColor*2+dither.SeedCount)
	return seeds[:palette.SeedsPerColor*2], seeds[palette.SeedsPerColor*2:]
}

func TestDefaultCellSize(t *testing.T) {
	tests := []struct {
		size, want int
	}{
		{16, 2},
		{64, 2},
		{128, 4},
		{350, 10},
		{700, 20},
	}
	for _, tt := range tests {
		if got := dither.DefaultCellSize(tt.size); got != tt.want {
			t.Errorf("DefaultCellSize(%d) = %d, want %d", tt.size, got, tt.want)
		}
	}
}

func TestRenderTwoTone(t *testing.T) {
	colorSeeds, renderSeeds := ditherInputs(t, "satoshi")
	colors := palette.FromSeeds(colorSeeds, nil)

	c := software.NewCanvas(64)
	dither.Render(c, colors, renderSeeds, 0)

	bg := color.RGBAModel.Convert(colors[0].NRGBA()).(color.RGBA)
	fg := color.RGBAModel.Convert(colors[1].NRGBA()).(color.RGBA)

	img := c.Image()
	seen := map[color.RGBA]bool{}
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			seen[img.RGBAAt(x, y)] = true
		}
	}
	if len(seen) != 2 {
		t.Fatalf("static dither must be exactly two-tone, saw %d colors", len(seen))
	}
	if !seen[bg] || !seen[fg] {
		t.Errorf("output colors should match palette entries 0 and 1: %v", seen)
	}
}

func TestRenderDeterministic(t *testing.T) {
	colorSeeds, renderSeeds := ditherInputs(t, "satoshi")
	colors := palette.FromSeeds(colorSeeds, nil)

	a := software.NewCanvas(48)
	b := software.NewCanvas(48)
	dither.Render(a, colors, renderSeeds, 3)
	dither.Render(b, colors, renderSeeds, 3)
	if !bytes.Equal(a.Image().Pix, b.Image().Pix) {
		t.Error("two renders of the same seeds should be pixel-identical")
	}
}

func TestRenderGuards(t *testing.T) {
	colorSeeds, renderSeeds := ditherInputs(t, "satoshi")
	colors := palette.FromSeeds(colorSeeds, nil)

	c := software.NewCanvas(16)
	dither.Render(c, colors[:1], renderSeeds, 2)
	for _, px := range c.Image().Pix {
		if px != 0 {
			t.Fatal("single-color palette should draw nothing")
		}
	}

	dither.Render(c, colors, renderSeeds[:2], 2)
	for _, px := range c.Image().Pix {
		if px != 0 {
			t.Fatal("short seed stream should draw nothing")
		}
	}

	if h := dither.Animate(c, &software.StepScheduler{}, colors[:1], renderSeeds, 2); h != nil {
		t.Error("guarded animate should return the nil inert handle")
	}
}

func TestAnimateMovesCells(t *testing.T) {
	colorSeeds, renderSeeds := ditherInputs(t, "satoshi")
	colors := palette.FromSeeds(colorSeeds, nil)

	c := software.NewCanvas(64)
	sched := &software.StepScheduler{}
	h := dither.Animate(c, sched, colors, renderSeeds, 0)
	if h == nil {
		t.Fatal("animate should return a live handle")
	}
	defer h.Destroy()

	first := append([]uint8(nil), c.Image().Pix...)
	base := time.Unix(0, 0)
	sched.Step(base)
	sched.Step(base.Add(700 * time.Millisecond))

	if bytes.Equal(first, c.Image().Pix) {
		t.Error("animated frames should differ as phase advances")
	}
}

func TestAnimatedFramesStayTwoTone(t *testing.T) {
	colorSeeds, renderSeeds := ditherInputs(t, "vitalik.eth")
	colors := palette.FromSeeds(colorSeeds, nil)

	c := software.NewCanvas(32)
	sched := &software.StepScheduler{}
	h := dither.Animate(c, sched, colors, renderSeeds, 0)
	defer h.Destroy()

	base := time.Unix(0, 0)
	for i := 0; i < 4; i++ {
		sched.Step(base.Add(time.Duration(i) * 300 * time.Millisecond))
		img := c.Image()
		seen := map[color.RGBA]bool{}
		for y := 0; y < 32; y++ {
			for x := 0; x < 32; x++ {
				seen[img.RGBAAt(x, y)] = true
			}
		}
		if len(seen) > 2 {
			t.Fatalf("frame %d has %d colors, want at most 2", i, len(seen))
		}
	}
}
