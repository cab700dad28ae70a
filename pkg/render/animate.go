package render

import (
	"sync"
	"time"
)

// Handle cancels an animated render. A nil *Handle is valid and inert:
// static renders and guarded no-op renders return nil, and Destroy on
// it does nothing, so callers can always call Destroy exactly once (or
// more) without caring which case they got.
type Handle struct {
	mu      sync.Mutex
	stopped bool
	cancel  func()
}

// Destroy stops the frame loop. No further frames are scheduled; a
// frame already in flight completes. Destroy is idempotent and safe on
// a nil handle.
func (h *Handle) Destroy() {
	if h == nil {
		return
	}
	h.mu.Lock()
	cancel := h.cancel
	h.stopped = true
	h.cancel = nil
	h.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Stopped reports whether Destroy has been called.
func (h *Handle) Stopped() bool {
	if h == nil {
		return true
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.stopped
}

// arm records the cancel function for the next scheduled frame, unless
// the handle was already destroyed, in which case the freshly scheduled
// frame is cancelled immediately.
func (h *Handle) arm(schedule func(func(time.Time)) func(), tick func(time.Time)) {
	h.mu.Lock()
	if h.stopped {
		h.mu.Unlock()
		return
	}
	h.cancel = schedule(tick)
	h.mu.Unlock()
}

// Animate draws the first frame synchronously at phase zero, then keeps
// scheduling frames on s until the returned handle is destroyed. The
// phase passed to draw is the wall-clock time in seconds accumulated
// across frames; it starts at zero for every render call and only the
// loop started here ever advances it, so frames are strictly
// sequential and deterministic for a given draw function and tick
// times.
func Animate(s Scheduler, draw func(phase float64)) *Handle {
	h := &Handle{}
	var last time.Time
	var phase float64

	var tick func(now time.Time)
	tick = func(now time.Time) {
		if h.Stopped() {
			return
		}
		if !last.IsZero() {
			phase += now.Sub(last).Seconds()
		}
		last = now
		draw(phase)
		h.arm(s.Schedule, tick)
	}

	draw(0)
	h.arm(s.Schedule, tick)
	return h
}
