// Package await races a set of concurrently-pending operations — a
// select — and completes as soon as any one of them yields a result,
// cancelling the rest.
//
// Entry points
//   - Select(ctx, participants, opts...): races a heterogeneous slice of
//     Participant values, returning the winner's index, its value as any,
//     and its error.
//   - SelectSlice[T](ctx, participants, opts...): the same race, for callers
//     that know every participant resolves to the same type T.
//   - NewCore(participants, opts...): builds a select as a Participant
//     itself, for nesting one select inside another.
//
// Participants
// A Participant is probed for synchronous readiness, armed to start its
// work, and finalized once to extract its result. FuncParticipant,
// ValueParticipant, and ErrParticipant adapt plain functions; ChanParticipant
// and TimerParticipant adapt channel receives and timers and are
// interruptible, meaning an abandoned wait leaves no observable effect.
//
// Defaults
// Unless overridden via Option, a race uses:
//   - CancelKind: CancelTerminal (losing participants are told to abandon,
//     not to unwind cooperatively)
//   - Executor: DefaultExecutor{} (one goroutine per armed participant)
//   - Metrics: a no-op metrics.Provider
//
// Cancellation
// Losing participants observe cancellation through the context passed to
// their Arm method; Kind(ctx) recovers which CancelKind was emitted
// (interruptible participants observe the internal interrupt-await kind,
// not the configured one). Cancelling the caller's ctx before a winner
// commits cancels every live participant; the race then finishes as usual:
// the first participant to complete wins and Select returns that winner's
// result and error. Select still waits for every armed participant to
// complete, including non-interruptible ones that ignore cancellation.
//
// Nesting
// Because Core implements Participant, a select can be one of the
// participants of an outer select (NewCore). The outer winner's value is a
// SelectResult carrying the inner select's own winner index and value.
package await
