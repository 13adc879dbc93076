package await

import (
	"context"

	"github.com/ygrebnov/await/metrics"
)

// race builds the Core shared by every entry point: validates options,
// wires instrumentation, and runs the probe pass so ready[] is populated
// before anyone arms.
func race(participants []Participant, opts []Option) (*Core, error) {
	for _, p := range participants {
		if p == nil {
			return nil, ErrNilParticipant
		}
	}
	cfg, err := buildConfig(opts)
	if err != nil {
		return nil, err
	}
	inst := metrics.NewRaceInstruments(cfg.Metrics)
	if inst != nil {
		inst.Races.Add(1)
	}
	c := newCore(participants, cfg.CancelKind, cfg.Executor, inst)
	c.probe()
	return c, nil
}

// Select races heterogeneous participants and returns the winner's index,
// its value (nil for a void winner), and the winner's Finalize error. This
// is the variadic entry point — Go has no variadic generics, so it takes a
// []Participant of boxed, erased participants instead of a typed tuple.
func Select(ctx context.Context, participants []Participant, opts ...Option) (int, any, error) {
	if len(participants) == 0 {
		return 0, nil, ErrEmptyParticipants
	}
	c, err := race(participants, opts)
	if err != nil {
		return 0, nil, err
	}
	c.arm(ctx)
	return c.resume()
}

// SelectSlice races a homogeneous slice of participants and returns the
// winner's index and its typed value (the zero value of T for a void
// winner). This is the range entry point: it rejects an empty slice with
// ErrEmptyParticipants before constructing a Core — no suspension happens.
func SelectSlice[T any](ctx context.Context, participants []Participant, opts ...Option) (int, T, error) {
	var zero T
	if len(participants) == 0 {
		return 0, zero, ErrEmptyParticipants
	}

	idx, val, err := Select(ctx, participants, opts...)
	if val == nil {
		return idx, zero, err
	}
	typed, ok := val.(T)
	if !ok {
		return idx, zero, err
	}
	return idx, typed, err
}

// NewCore constructs a Participant that races participants the same way
// Select would, for use as one participant of an outer select:
// select(a, select(b, c)). Call Select or SelectSlice directly for a
// top-level race; reach for NewCore only when nesting one select inside
// another.
func NewCore(participants []Participant, opts ...Option) (Participant, error) {
	return race(participants, opts)
}
