package await

import "errors"

const Namespace = "await"

var (
	// ErrEmptyParticipants is returned by SelectSlice when given a zero-length
	// participant slice. The facade rejects this before constructing a Core —
	// no suspension happens.
	ErrEmptyParticipants = errors.New(Namespace + ": select requires at least one participant")

	// ErrNilParticipant is returned when a nil Participant is passed to Select
	// or SelectSlice.
	ErrNilParticipant = errors.New(Namespace + ": participant must not be nil")

	// ErrDoubleCommit marks a protocol violation: a participant signalled
	// completion more than once. Core panics with this error rather than
	// returning it, since it indicates a broken Participant adapter, not a
	// runtime condition callers can recover from.
	ErrDoubleCommit = errors.New(Namespace + ": participant committed twice")
)
