package await

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCore_ProbeSkipsLaterInterruptibleOnceFound(t *testing.T) {
	ready := NewTimerParticipant(0)
	probed := false

	// wrap a channel participant to observe whether Probe is actually invoked
	ch := make(chan int, 1)
	tracker := &trackingParticipant{inner: NewChanParticipant(ch), onProbe: func() { probed = true }}

	c := newCore([]Participant{ready, tracker}, CancelTerminal, DefaultExecutor{}, nil)
	c.probe()

	require.True(t, c.ready[0])
	require.False(t, probed, "Probe should be skipped for a later interruptible participant once a winner is known")
}

func TestCore_ProbeStillRunsLaterNonInterruptible(t *testing.T) {
	ready := NewTimerParticipant(0)
	probed := false
	tracker := &trackingFuncParticipant{onProbe: func() { probed = true }}

	c := newCore([]Participant{ready, tracker}, CancelTerminal, DefaultExecutor{}, nil)
	c.probe()

	require.True(t, probed, "Probe must still run for a later non-interruptible participant")
}

func TestCore_TryCommitIsExclusive(t *testing.T) {
	c := newCore(make([]Participant, 3), CancelTerminal, DefaultExecutor{}, nil)

	require.True(t, c.tryCommit(0))
	require.False(t, c.tryCommit(1))
	require.False(t, c.tryCommit(2))
	require.Equal(t, int64(0), c.index.Load())
}

func TestCore_OnCompleteTwiceForSameIndexPanics(t *testing.T) {
	p := NewTimerParticipant(time.Hour)
	c := newCore([]Participant{p}, CancelTerminal, DefaultExecutor{}, nil)
	c.cancels[0] = newCancelSignal(context.Background())
	c.shared.retain()

	c.onComplete(0)

	require.Panics(t, func() { c.onComplete(0) })
}

func TestCore_CancelAllEmitsToEveryLiveSignal(t *testing.T) {
	p1 := NewTimerParticipant(time.Hour)
	p2 := NewTimerParticipant(time.Hour)
	c := newCore([]Participant{p1, p2}, CancelPartial, DefaultExecutor{}, nil)
	c.cancels[0] = newCancelSignal(context.Background())
	c.cancels[1] = newCancelSignal(context.Background())

	c.cancelAll()

	require.Nil(t, c.cancels[0])
	require.Nil(t, c.cancels[1])
}

// trackingParticipant wraps a ChanParticipant to record Probe invocations.
type trackingParticipant struct {
	inner   *ChanParticipant[int]
	onProbe func()
}

func (t *trackingParticipant) Probe() bool {
	t.onProbe()
	return t.inner.Probe()
}
func (t *trackingParticipant) Interruptible() bool { return true }
func (t *trackingParticipant) Arm(ctx context.Context, exec Executor, complete func()) {
	t.inner.Arm(ctx, exec, complete)
}
func (t *trackingParticipant) Finalize() (any, error) { return t.inner.Finalize() }

// trackingFuncParticipant is a non-interruptible participant that records
// whether Probe was invoked.
type trackingFuncParticipant struct {
	onProbe func()
}

func (t *trackingFuncParticipant) Probe() bool {
	t.onProbe()
	return false
}
func (t *trackingFuncParticipant) Interruptible() bool { return false }
func (t *trackingFuncParticipant) Arm(_ context.Context, exec Executor, complete func()) {
	exec.Go(complete)
}
func (t *trackingFuncParticipant) Finalize() (any, error) { return nil, nil }
