package software

import (
	"sort"
	"sync"
	"time"

	"github.com/matzehuels/hashvatar/pkg/render"
)

// TickScheduler schedules frame callbacks on wall-clock timers at a
// fixed frame interval. It is the scheduler behind live animated
// avatars.
type TickScheduler struct {
	// Interval between scheduled frames.
	Interval time.Duration
}

// NewTickScheduler returns a scheduler ticking at the given frames per
// second (30 when fps is not positive).
func NewTickScheduler(fps int) *TickScheduler {
	if fps <= 0 {
		fps = 30
	}
	return &TickScheduler{Interval: time.Second / time.Duration(fps)}
}

// Schedule arms a timer for the next frame. The returned cancel stops
// the timer; a callback that already fired completes.
func (s *TickScheduler) Schedule(fn func(now time.Time)) (cancel func()) {
	t := time.AfterFunc(s.Interval, func() {
		fn(time.Now())
	})
	return func() { t.Stop() }
}

// StepScheduler runs frame callbacks only when stepped, with
// caller-controlled time. It makes animation fully deterministic, which
// is what GIF export and tests need.
type StepScheduler struct {
	mu      sync.Mutex
	nextID  int
	pending map[int]func(time.Time)
}

// Schedule queues fn for the next Step call.
func (s *StepScheduler) Schedule(fn func(now time.Time)) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		s.pending = make(map[int]func(time.Time))
	}
	id := s.nextID
	s.nextID++
	s.pending[id] = fn
	return func() {
		s.mu.Lock()
		delete(s.pending, id)
		s.mu.Unlock()
	}
}

// Step fires every callback queued before the call, in scheduling
// order, passing now as the frame time. Callbacks scheduled during Step
// wait for the next Step.
func (s *StepScheduler) Step(now time.Time) {
	s.mu.Lock()
	ids := make([]int, 0, len(s.pending))
	for id := range s.pending {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]func(time.Time), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, s.pending[id])
		delete(s.pending, id)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(now)
	}
}

// Pending reports how many callbacks await the next Step.
func (s *StepScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

var (
	_ render.Scheduler = (*TickScheduler)(nil)
	_ render.Scheduler = (*StepScheduler)(nil)
)
