package service

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Resolver tracks one pending resolution timer per booking request.
// Scheduling and canceling race against the timer firing, the map entry is
// the single source of truth: whoever removes it first owns the outcome, so
// a request is resolved exactly once or not at all.
type Resolver struct {
	mu     sync.Mutex
	timers map[string]*time.Timer
	delay  time.Duration
	closed bool
}

func NewResolver(delay time.Duration) *Resolver {
	return &Resolver{
		timers: map[string]*time.Timer{},
		delay:  delay,
	}
}

// Schedule arms a resolution timer for the request. A second Schedule for
// the same request replaces the earlier timer.
func (r *Resolver) Schedule(id string, fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		log.Warn().Str("requestID", id).Msg("resolver is shut down, dropping resolution")

		return
	}

	if timer, ok := r.timers[id]; ok {
		timer.Stop()
	}

	r.timers[id] = time.AfterFunc(r.delay, func() {
		r.mu.Lock()
		_, armed := r.timers[id]
		delete(r.timers, id)
		r.mu.Unlock()

		// Lost the race against Cancel or Shutdown.
		if !armed {
			return
		}

		fn()
	})
}

// Cancel disarms the timer for the request. It reports whether a timer was
// still armed, false means the resolution already ran or none was scheduled.
func (r *Resolver) Cancel(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	timer, ok := r.timers[id]
	if !ok {
		return false
	}

	delete(r.timers, id)
	timer.Stop()

	return true
}

// Shutdown disarms all timers and rejects further scheduling. Pending
// requests stay pending and are picked up as drafts on restart.
func (r *Resolver) Shutdown() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.closed = true

	for id, timer := range r.timers {
		timer.Stop()
		delete(r.timers, id)
	}
}
