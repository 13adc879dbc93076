package await

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ygrebnov/await/metrics"
)

// SelectResult is the value a nested Core reports through Finalize when used
// as a Participant of an outer select (select(a, select(b, c))). Index is
// the inner select's own winner index; Value is that winner's result (nil
// for void winners). The outer select's own index is the position of the
// nested Core among the outer participants — nesting therefore nests the
// index tag rather than flattening it.
type SelectResult struct {
	Index int
	Value any
}

// Core is the heart of the package: the race state and the
// arming/commit/cancellation/resume algorithm. It races participants
// []Participant and guarantees exactly one of them is the winner, that
// every other live participant is cancelled or absorbed, and that the
// caller is woken exactly once.
//
// Core itself implements Participant, so a Core can be raced inside a
// larger Core, letting a select compose inside a larger select.
type Core struct {
	participants []Participant
	ready        []bool
	cancels      []*CancelSignal
	fired        []bool
	mu           sync.Mutex

	index   atomic.Int64 // -1 until a winner commits
	spawned int
	kind    CancelKind

	shared  *sharedState
	exec    Executor
	metrics *metrics.RaceInstruments
	start   time.Time
}

func newCore(participants []Participant, kind CancelKind, exec Executor, m *metrics.RaceInstruments) *Core {
	n := len(participants)
	c := &Core{
		participants: participants,
		ready:        make([]bool, n),
		cancels:      make([]*CancelSignal, n),
		fired:        make([]bool, n),
		kind:         kind,
		exec:         exec,
		metrics:      m,
		shared:       newSharedState(),
	}
	c.index.Store(-1)
	return c
}

func (c *Core) hasResult() bool { return c.index.Load() != -1 }

// tryCommit is the transactional commit: exactly one participant index can
// ever win the CAS below, which is what makes "exactly one winner" hold
// even though participants run on real concurrent goroutines rather than a
// single cooperative scheduler.
func (c *Core) tryCommit(i int) bool {
	return c.index.CompareAndSwap(-1, int64(i))
}

// probe runs the probe pass: once any ready flag is observed,
// later interruptible participants are skipped (their readiness is assumed
// false without calling Probe), while later non-interruptible ones are
// still probed since their readiness may carry state that must later be
// captured and discarded.
func (c *Core) probe() bool {
	found := false
	for i, p := range c.participants {
		if found && p.Interruptible() {
			c.ready[i] = false
			continue
		}
		if p.Probe() {
			c.ready[i] = true
			found = true
		}
	}
	return found
}

// emitLocked emits through signal and nulls Core's reference to it. A
// non-interruptible participant receives kind. An interruptible participant
// is sent the internal interrupt-await kind first and kind after it; since a
// CancelSignal keeps only its first emission, its context records
// interrupt-await and the emission of kind has no effect. Must be called
// with c.mu held.
func (c *Core) emitLocked(i int, signal *CancelSignal) {
	if c.participants[i].Interruptible() {
		signal.Emit(cancelInterruptAwait)
	}
	signal.Emit(c.kind)
	c.cancels[i] = nil
	if c.metrics != nil {
		c.metrics.Cancellations.Add(1)
	}
}

// cancelAll emits cancellation to every still-live signal. Any goroutine
// that observes work left to cancel does the whole sweep; emission's own
// idempotency means two sweeps racing each other is harmless.
func (c *Core) cancelAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, cs := range c.cancels {
		if cs != nil {
			c.emitLocked(i, cs)
		}
	}
}

// watchCaller forwards the caller's own cancellation into the race: since a
// Go caller is just a blocked goroutine, forwarding its cancellation into
// every live participant just means racing ctx.Done() against the race's
// own completion and sweeping on whichever side fires first.
func (c *Core) watchCaller(ctx context.Context) {
	select {
	case <-ctx.Done():
		c.cancelAll()
	case <-c.shared.Done():
	}
}

// onComplete is the unified completion callback bound to participant idx,
// covering both the synchronous-commit case (a participant resolving
// inside its own Arm call) and the ordinary asynchronous completion case.
// Firing for the same idx twice means the Participant adapter invoked
// complete more than once, which is the ErrDoubleCommit protocol violation.
func (c *Core) onComplete(idx int) {
	c.mu.Lock()
	if c.fired[idx] {
		c.mu.Unlock()
		panic(ErrDoubleCommit)
	}
	c.fired[idx] = true
	cs := c.cancels[idx]
	c.cancels[idx] = nil
	c.mu.Unlock()
	_ = cs // already completed; nothing further to emit through its own signal

	c.tryCommit(idx)
	c.cancelAll()
	if c.metrics != nil {
		c.metrics.Inflight.Add(-1)
	}
	c.shared.release()
}

// arm runs the arming pass. ctx is the frame's own cancellation
// source (the caller's context for a top-level Select/SelectSlice, or the
// per-participant CancelSignal context an outer Core assigned this Core
// when nested).
func (c *Core) arm(ctx context.Context) {
	c.start = time.Now()
	defer c.shared.release() // drop the initial reference newSharedState() grants

	for i, p := range c.participants {
		if c.hasResult() && p.Interruptible() {
			continue // skip arming only this interruptible participant; the loop still visits the rest
		}
		if !c.hasResult() {
			c.spawned = i
		}

		if c.ready[i] {
			if !c.hasResult() && c.tryCommit(i) {
				c.cancelAll()
			}
			continue
		}

		signal := newCancelSignal(context.Background())
		c.mu.Lock()
		c.cancels[i] = signal
		c.mu.Unlock()

		c.shared.retain()
		if c.metrics != nil {
			c.metrics.Inflight.Add(1)
		}
		idx := i
		p.Arm(signal.Context(), c.exec, func() { c.onComplete(idx) })

		if c.hasResult() {
			c.mu.Lock()
			live := c.cancels[idx]
			if live != nil {
				c.emitLocked(idx, live)
			}
			c.mu.Unlock()
		}
	}

	// Started only once every participant armed in this pass has its
	// CancelSignal registered, so a caller context already (or concurrently)
	// cancelled always finds every live signal in one sweep.
	go c.watchCaller(ctx)
}

// resume picks the winner (a probe short-circuit leaves index unset until
// now), finalize-and-discards every loser whose state must be absorbed,
// then finalizes the winner.
func (c *Core) resume() (int, any, error) {
	if c.start.IsZero() {
		// arm never ran (an outer Core finalizes a probe-ready nested Core
		// without arming it), so drop the initial reference here instead.
		c.start = time.Now()
		c.shared.release()
	}
	<-c.shared.Done()

	idx := int(c.index.Load())
	if idx < 0 {
		for i, r := range c.ready {
			if r {
				idx = i
				break
			}
		}
	}

	for i, p := range c.participants {
		if i == idx {
			continue
		}
		if i <= c.spawned || !p.Interruptible() || c.ready[i] {
			absorb(p)
		}
	}

	val, err := c.participants[idx].Finalize()
	if c.metrics != nil {
		c.metrics.WinnerLatency.Record(time.Since(c.start).Seconds())
	}
	return idx, val, err
}

// absorb finalizes a losing participant and silently discards whatever it
// returns, so a loser's failure never surfaces to the caller.
// A panicking Finalize is likewise swallowed — losers never affect the
// caller.
func absorb(p Participant) {
	defer func() { _ = recover() }()
	_, _ = p.Finalize()
}

// Probe implements Participant, so a Core can be raced as a participant of
// an outer select.
func (c *Core) Probe() bool { return c.probe() }

// Interruptible reports true when every participant of this Core is
// interruptible: only then can a nested select be abandoned cleanly before
// it has committed a winner.
func (c *Core) Interruptible() bool {
	for _, p := range c.participants {
		if !p.Interruptible() {
			return false
		}
	}
	return true
}

// Arm implements Participant for nesting: it runs the arming pass using
// ctx/exec from the outer Core, then arranges for complete to fire once
// this Core's own race resolves — synchronously if it already has by the
// time Arm returns, otherwise from a goroutine that waits on it.
func (c *Core) Arm(ctx context.Context, exec Executor, complete func()) {
	c.exec = exec
	c.arm(ctx)
	if c.shared.count.Load() == 0 {
		complete()
		return
	}
	go func() {
		<-c.shared.Done()
		complete()
	}()
}

// Finalize implements Participant for nesting: it aggregates this Core's
// own result and reports it as a SelectResult so the outer
// select's caller can recover the inner winner's index.
func (c *Core) Finalize() (any, error) {
	idx, val, err := c.resume()
	return SelectResult{Index: idx, Value: val}, err
}
