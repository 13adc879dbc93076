package await

import "github.com/ygrebnov/await/metrics"

// Config holds Select/SelectSlice configuration, assembled by Option
// functions (see options.go) over a plain config struct.
type Config struct {
	// CancelKind is the cancellation kind emitted to losing participants.
	// Default: CancelTerminal.
	CancelKind CancelKind

	// Executor runs every participant's Arm work.
	// Default: DefaultExecutor{} (one goroutine per armed participant).
	Executor Executor

	// Metrics receives select/race instrumentation (race counts, in-flight
	// participants, winner latency, cancellations).
	// Default: a no-op provider.
	Metrics metrics.Provider
}
