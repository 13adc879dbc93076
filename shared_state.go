package await

import (
	"sync"
	"sync/atomic"
)

// sharedState is a reference-counted completion handshake: the last
// participant to finish wakes the caller, which is simply the goroutine
// blocked on <-sharedState.Done(). Closing that channel exactly once is
// guarded by sync.Once the same way a one-shot Close sequence is.
type sharedState struct {
	count atomic.Int64
	done  chan struct{}
	once  sync.Once
}

// newSharedState creates a state with an initial refcount of 1: Core itself
// holds that reference for the duration of the arming pass, which is what
// keeps the race from completing before arming has finished walking every
// participant.
func newSharedState() *sharedState {
	s := &sharedState{done: make(chan struct{})}
	s.count.Store(1)
	return s
}

// retain adds a reference, to be released exactly once by whoever acquired
// it (one retain per armed participant's completion callback).
func (s *sharedState) retain() { s.count.Add(1) }

// release drops a reference. When the count reaches zero, done is closed
// exactly once, waking whatever goroutine is blocked on it.
func (s *sharedState) release() {
	if s.count.Add(-1) == 0 {
		s.once.Do(func() { close(s.done) })
	}
}

// Done returns the channel that closes once every reference has been
// released.
func (s *sharedState) Done() <-chan struct{} { return s.done }
