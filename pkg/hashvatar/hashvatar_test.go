package hashvatar_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/matzehuels/hashvatar/pkg/hashvatar"
	"github.com/matzehuels/hashvatar/pkg/render/gradient"
	"github.com/matzehuels/hashvatar/pkg/render/software"
)

func TestStaticGradientAvatar(t *testing.T) {
	av := hashvatar.New(hashvatar.Options{Hash: "vitalik.eth"})
	if av.Canvas.Size() != hashvatar.DefaultSize {
		t.Errorf("canvas size = %d, want %d", av.Canvas.Size(), hashvatar.DefaultSize)
	}
	if len(av.Colors) != gradient.MinColors {
		t.Errorf("palette size = %d, want %d", len(av.Colors), gradient.MinColors)
	}

	opaque := false
	for _, px := range av.Canvas.Image().Pix {
		if px != 0 {
			opaque = true
			break
		}
	}
	if !opaque {
		t.Error("static render produced an empty canvas")
	}

	// Destroying a static avatar is a safe no-op, repeatedly.
	av.Destroy()
	av.Destroy()
}

func TestSameHashSamePixels(t *testing.T) {
	a := hashvatar.New(hashvatar.Options{Hash: "vitalik.eth"})
	b := hashvatar.New(hashvatar.Options{Hash: "vitalik.eth"})
	if !bytes.Equal(a.Canvas.Image().Pix, b.Canvas.Image().Pix) {
		t.Error("identical options rendered different pixels")
	}

	c := hashvatar.New(hashvatar.Options{Hash: "vitalik.eth2"})
	if bytes.Equal(a.Canvas.Image().Pix, c.Canvas.Image().Pix) {
		t.Error("different hashes rendered identical pixels")
	}
}

func TestAnimatedDitherHandle(t *testing.T) {
	canvas := software.NewCanvas(64)
	sched := &software.StepScheduler{}
	_, handle := hashvatar.Render(canvas, sched, hashvatar.Options{
		Hash:     "satoshi",
		Mode:     hashvatar.ModeDither,
		Animated: true,
	})
	if handle == nil {
		t.Fatal("animated render returned no handle")
	}
	if sched.Pending() != 1 {
		t.Fatalf("pending = %d after animated render, want 1", sched.Pending())
	}

	sched.Step(time.Unix(0, 0))
	if sched.Pending() != 1 {
		t.Fatal("frame loop did not reschedule")
	}

	handle.Destroy()
	sched.Step(time.Unix(1, 0))
	if sched.Pending() != 0 {
		t.Errorf("pending = %d after destroy, want 0", sched.Pending())
	}
	handle.Destroy() // idempotent
}

func TestNilSchedulerDowngradesToStatic(t *testing.T) {
	canvas := software.NewCanvas(64)
	colors, handle := hashvatar.Render(canvas, nil, hashvatar.Options{
		Hash:     "satoshi",
		Animated: true,
	})
	if handle != nil {
		t.Error("nil scheduler should yield a static render with no handle")
	}
	if len(colors) != gradient.MinColors {
		t.Errorf("palette size = %d, want %d", len(colors), gradient.MinColors)
	}
	handle.Destroy() // nil handle is inert
}

func TestPixelRatioCapped(t *testing.T) {
	av := hashvatar.New(hashvatar.Options{Hash: "x", PixelRatio: 5})
	if got, want := av.Canvas.Size(), int(hashvatar.DefaultSize*hashvatar.MaxPixelRatio); got != want {
		t.Errorf("canvas size = %d, want %d (ratio capped at %v)", got, want, hashvatar.MaxPixelRatio)
	}
}

func TestPixelRatioScales(t *testing.T) {
	av := hashvatar.New(hashvatar.Options{Hash: "x", Size: 100, PixelRatio: 2})
	if av.Canvas.Size() != 200 {
		t.Errorf("canvas size = %d, want 200", av.Canvas.Size())
	}
}

func TestInvalidModeFallsBackToGradient(t *testing.T) {
	a := hashvatar.New(hashvatar.Options{Hash: "x", Mode: "sparkle"})
	b := hashvatar.New(hashvatar.Options{Hash: "x", Mode: hashvatar.ModeGradient})
	if !bytes.Equal(a.Canvas.Image().Pix, b.Canvas.Image().Pix) {
		t.Error("unknown mode should render as gradient")
	}
}

func TestTonesChangePalette(t *testing.T) {
	plain := hashvatar.New(hashvatar.Options{Hash: "vitalik.eth"})
	toned := hashvatar.New(hashvatar.Options{Hash: "vitalik.eth", Tones: []string{"hotpink"}})
	if plain.Colors[0] == toned.Colors[0] {
		t.Error("tone constraint did not affect the palette")
	}

	// Unparsable tones are dropped, leaving the unconstrained palette.
	junk := hashvatar.New(hashvatar.Options{Hash: "vitalik.eth", Tones: []string{"not a tone!!"}})
	if plain.Colors[0] != junk.Colors[0] {
		t.Error("malformed tone should be ignored")
	}
}

func TestModeValid(t *testing.T) {
	if !hashvatar.ModeGradient.Valid() || !hashvatar.ModeDither.Valid() {
		t.Error("built-in modes must be valid")
	}
	if hashvatar.Mode("").Valid() || hashvatar.Mode("sparkle").Valid() {
		t.Error("unknown modes must be invalid")
	}
}
