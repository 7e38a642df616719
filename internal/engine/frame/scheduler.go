// Package frame drives per-frame callbacks in lockstep with the render loop.
//
// The Scheduler is a registry of callbacks keyed by Handle. Each Tick reads
// the Clock once and hands that single value to every live callback, so all
// objects animated in one frame agree on the time. Invocation follows
// registration order, but callers must not depend on it.
//
// The scheduler is not safe for concurrent use; it belongs to the render
// goroutine like everything else touched inside a frame.
package frame

import (
	"go.uber.org/zap"

	"github.com/Faultbox/scene-gallery/internal/logger"
)

// Func is a per-frame callback receiving elapsed seconds.
type Func func(elapsed float64)

// Handle identifies a registration. The zero Handle is never issued.
type Handle uint64

type entry struct {
	handle Handle
	fn     Func
	live   bool
}

// Scheduler invokes registered callbacks once per Tick.
type Scheduler struct {
	clock   Clock
	entries []entry
	index   map[Handle]int
	next    Handle
	ticks   uint64
	last    float64
	dirty   bool
	inTick  bool
}

// NewScheduler creates a scheduler reading the given clock.
func NewScheduler(clock Clock) *Scheduler {
	return &Scheduler{
		clock: clock,
		index: make(map[Handle]int),
	}
}

// Clock returns the scheduler's clock.
func (s *Scheduler) Clock() Clock {
	return s.clock
}

// Register adds fn and returns its handle. A callback registered while a
// tick is dispatching first runs on the following tick.
func (s *Scheduler) Register(fn Func) Handle {
	s.next++
	h := s.next
	s.index[h] = len(s.entries)
	s.entries = append(s.entries, entry{handle: h, fn: fn, live: true})
	return h
}

// Unregister removes a callback. It is never invoked again, including later
// in a tick that is currently dispatching. Unknown or already removed handles
// are ignored and report false.
func (s *Scheduler) Unregister(h Handle) bool {
	i, ok := s.index[h]
	if !ok {
		return false
	}
	delete(s.index, h)
	s.entries[i].live = false
	s.entries[i].fn = nil
	s.dirty = true
	return true
}

// Len returns the number of live registrations.
func (s *Scheduler) Len() int {
	return len(s.index)
}

// Ticks returns how many ticks have run.
func (s *Scheduler) Ticks() uint64 {
	return s.ticks
}

// LastElapsed returns the elapsed value handed out by the latest tick.
func (s *Scheduler) LastElapsed() float64 {
	return s.last
}

// Tick reads the clock once and invokes every live callback with that value.
// It returns the elapsed time used.
func (s *Scheduler) Tick() float64 {
	elapsed := s.clock.Elapsed()
	s.ticks++
	s.last = elapsed

	// Entries appended during dispatch wait for the next tick. The slice is
	// re-read each step because Register may reallocate it.
	s.inTick = true
	n := len(s.entries)
	for i := 0; i < n; i++ {
		e := s.entries[i]
		if !e.live {
			continue
		}
		e.fn(elapsed)
	}
	s.inTick = false

	if s.dirty {
		s.compact()
	}
	return elapsed
}

// Reset drops every registration and rewinds the clock, as on a full remount.
// Called from inside a callback, the remaining callbacks of that tick are
// skipped and the storage is reclaimed once dispatch ends.
func (s *Scheduler) Reset() {
	if n := len(s.index); n > 0 {
		logger.Debug("scheduler reset with live callbacks", zap.Int("count", n))
	}
	if s.inTick {
		for i := range s.entries {
			s.entries[i].live = false
			s.entries[i].fn = nil
		}
		s.dirty = true
	} else {
		s.entries = s.entries[:0]
		s.dirty = false
	}
	clear(s.index)
	s.ticks = 0
	s.last = 0
	s.clock.Reset()
}

func (s *Scheduler) compact() {
	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.live {
			s.index[e.handle] = len(kept)
			kept = append(kept, e)
		}
	}
	// Release references held in the tail.
	for i := len(kept); i < len(s.entries); i++ {
		s.entries[i] = entry{}
	}
	s.entries = kept
	s.dirty = false
}
