package metrics

// Provider constructs instruments used to record metrics.
// Implementations must be safe for concurrent use.
//
// Keep this interface minimal and stable. If you need new capabilities later,
// introduce separate optional interfaces rather than expanding this surface.
type Provider interface {
	Counter(name string, opts ...InstrumentOption) Counter
	UpDownCounter(name string, opts ...InstrumentOption) UpDownCounter
	Histogram(name string, opts ...InstrumentOption) Histogram
}

// Counter records monotonic counts.
// Methods must be safe for concurrent use.
type Counter interface {
	Add(n int64)
}

// UpDownCounter records values that can move up or down (e.g., current in-flight).
// Methods must be safe for concurrent use.
type UpDownCounter interface {
	Add(n int64)
}

// Histogram records distribution of float64 measurements (e.g., durations in seconds).
// Methods must be safe for concurrent use.
type Histogram interface {
	Record(v float64)
}

// InstrumentConfig carries optional instrument metadata. It's advisory only.
type InstrumentConfig struct {
	Description string
	Unit        string
}

// InstrumentOption mutates InstrumentConfig.
type InstrumentOption func(*InstrumentConfig)

// WithDescription sets an advisory description for the instrument.
func WithDescription(desc string) InstrumentOption {
	return func(c *InstrumentConfig) { c.Description = desc }
}

// WithUnit sets an advisory unit for the instrument (e.g., "1", "seconds").
func WithUnit(unit string) InstrumentOption {
	return func(c *InstrumentConfig) { c.Unit = unit }
}

// Instrument names a select race reports through. Unexported: callers only
// ever see the *RaceInstruments handle NewRaceInstruments returns.
const (
	instrumentRaces         = "select.races"
	instrumentInflight      = "select.inflight"
	instrumentWinnerLatency = "select.winner_latency_seconds"
	instrumentCancellations = "select.cancellations"
)

// RaceInstruments bundles the instruments a single select race reports
// through: one counter of races started, an up/down counter of participants
// currently armed and awaiting completion, a histogram of the time from the
// start of arming until the race resolves and its winner is finalized, and a
// counter of cancellation signals
// emitted to losing participants.
type RaceInstruments struct {
	Races         Counter
	Inflight      UpDownCounter
	WinnerLatency Histogram
	Cancellations Counter
}

// NewRaceInstruments wires the named instruments a select race reports
// through against p. Returns nil if p is nil, so a Core can skip
// instrumentation entirely rather than carry a set of no-op instruments.
func NewRaceInstruments(p Provider) *RaceInstruments {
	if p == nil {
		return nil
	}
	return &RaceInstruments{
		Races: p.Counter(
			instrumentRaces,
			WithDescription("number of select races started"),
			WithUnit("1"),
		),
		Inflight: p.UpDownCounter(
			instrumentInflight,
			WithDescription("participants currently armed and awaiting completion"),
			WithUnit("1"),
		),
		WinnerLatency: p.Histogram(
			instrumentWinnerLatency,
			WithDescription("time from the start of arming until the race resolves and its winner is finalized"),
			WithUnit("seconds"),
		),
		Cancellations: p.Counter(
			instrumentCancellations,
			WithDescription("cancellation signals emitted to losing participants"),
			WithUnit("1"),
		),
	}
}
