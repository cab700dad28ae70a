// Package render defines the contracts between hashvatar's procedural
// renderers and the raster surface they draw on, plus the shared
// machinery both renderers use: the animation frame loop with its
// cancellation handle, blend-mode compositing, and the blur pipeline
// (native filter probe with a box-blur fallback).
//
// The concrete renderers live in the gradient and dither subpackages;
// an in-process Surface implementation lives in the software
// subpackage.
package render

import (
	"image"
	"time"
)

// Surface is a square raster drawing target. Implementations expose
// their backing pixels directly; renderers write into Image() and, for
// layered work, composite offscreen buffers onto it.
//
// A Surface may additionally implement Blurrer to advertise a native
// blur filter.
type Surface interface {
	// Size returns the side length of the square backing store, in pixels.
	Size() int

	// Image exposes the surface's pixel buffer for reading and writing.
	Image() *image.RGBA
}

// Blurrer is an optional Surface capability: a native separable blur
// filter. Blur returns a blurred copy of src; it must not modify src.
type Blurrer interface {
	Blur(src *image.RGBA, radius float64) *image.RGBA
}

// Scheduler is the host's frame-scheduling primitive, the moral
// equivalent of requestAnimationFrame: Schedule arranges for fn to run
// once at the next frame tick and returns a cancel function that
// prevents the callback from firing. Cancel must be safe to call more
// than once; a callback already running is allowed to complete.
type Scheduler interface {
	Schedule(fn func(now time.Time)) (cancel func())
}
