package software

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/hashvatar/pkg/render"
)

func TestCanvasSize(t *testing.T) {
	c := NewCanvas(48)
	if c.Size() != 48 {
		t.Errorf("Size() = %d, want 48", c.Size())
	}
	if b := c.Image().Bounds(); b.Dx() != 48 || b.Dy() != 48 {
		t.Errorf("bounds = %v, want 48x48", b)
	}
	// Degenerate sizes clamp to one pixel rather than panicking.
	if NewCanvas(0).Size() != 1 || NewCanvas(-5).Size() != 1 {
		t.Error("non-positive sizes should clamp to 1")
	}
}

func TestCanvasBlurIsNative(t *testing.T) {
	c := NewCanvas(8)
	if !render.NativeBlurSupported(c) {
		t.Error("software canvas should pass the native blur probe")
	}
}

func TestCanvasBlurPreservesInput(t *testing.T) {
	c := NewCanvas(8)
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	src.SetRGBA(4, 4, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	out := c.Blur(src, 2)
	if out == src {
		t.Fatal("Blur should return a new image")
	}
	if src.RGBAAt(3, 4).R != 0 {
		t.Error("Blur modified its input")
	}
	if out.RGBAAt(3, 4).R == 0 && out.RGBAAt(5, 4).R == 0 {
		t.Error("Blur did not spread energy")
	}
}

func TestCanvasPNG(t *testing.T) {
	c := NewCanvas(16)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			c.Image().SetRGBA(x, y, color.RGBA{R: uint8(x * 16), G: uint8(y * 16), A: 255})
		}
	}
	data, err := c.PNG()
	if err != nil {
		t.Fatalf("PNG() error: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not decodable PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 16 {
		t.Errorf("decoded bounds = %v, want 16x16", b)
	}
}

func TestStepSchedulerOrderAndCancel(t *testing.T) {
	s := &StepScheduler{}
	var got []int
	s.Schedule(func(time.Time) { got = append(got, 1) })
	cancel := s.Schedule(func(time.Time) { got = append(got, 2) })
	s.Schedule(func(time.Time) { got = append(got, 3) })
	cancel()

	s.Step(time.Unix(0, 0))
	if len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Errorf("expected [1 3], got %v", got)
	}
	if s.Pending() != 0 {
		t.Errorf("pending = %d after step, want 0", s.Pending())
	}
}

func TestStepSchedulerReschedulingWaits(t *testing.T) {
	s := &StepScheduler{}
	runs := 0
	var fn func(time.Time)
	fn = func(time.Time) {
		runs++
		s.Schedule(fn)
	}
	s.Schedule(fn)

	s.Step(time.Unix(0, 0))
	if runs != 1 {
		t.Fatalf("callback scheduled during Step must wait, runs = %d", runs)
	}
	s.Step(time.Unix(1, 0))
	if runs != 2 {
		t.Fatalf("runs = %d after second step, want 2", runs)
	}
}

func TestStepSchedulerConcurrentCancel(t *testing.T) {
	s := &StepScheduler{}
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		cancel := s.Schedule(func(time.Time) {})
		wg.Add(1)
		go func() {
			defer wg.Done()
			cancel()
		}()
	}
	wg.Wait()
	if s.Pending() != 0 {
		t.Errorf("pending = %d, want 0", s.Pending())
	}
}

func TestTickSchedulerFires(t *testing.T) {
	s := &TickScheduler{Interval: 5 * time.Millisecond}
	done := make(chan time.Time, 1)
	s.Schedule(func(now time.Time) { done <- now })
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduled frame never fired")
	}
}

func TestTickSchedulerCancel(t *testing.T) {
	s := &TickScheduler{Interval: 20 * time.Millisecond}
	fired := make(chan struct{}, 1)
	cancel := s.Schedule(func(time.Time) { fired <- struct{}{} })
	cancel()
	cancel() // cancel must be safe to call twice

	select {
	case <-fired:
		t.Error("cancelled frame should not fire")
	case <-time.After(60 * time.Millisecond):
	}
}

func TestNewTickSchedulerDefaults(t *testing.T) {
	if NewTickScheduler(0).Interval != time.Second/30 {
		t.Error("non-positive fps should default to 30")
	}
	if NewTickScheduler(60).Interval != time.Second/60 {
		t.Error("unexpected interval for 60fps")
	}
}
