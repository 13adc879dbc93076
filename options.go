package await

import "github.com/ygrebnov/await/metrics"

// Option configures a Select/SelectSlice/NewCore invocation.
type Option func(*Config)

// WithCancelKind sets the cancellation kind emitted to losing participants.
// Default: CancelTerminal.
func WithCancelKind(kind CancelKind) Option {
	return func(c *Config) { c.CancelKind = kind }
}

// WithExecutor overrides the Executor used to run every participant's Arm
// work. Default: DefaultExecutor{}.
func WithExecutor(exec Executor) Option {
	return func(c *Config) {
		if exec == nil {
			panic(Namespace + ": WithExecutor requires a non-nil Executor")
		}
		c.Executor = exec
	}
}

// WithMetrics wires a metrics.Provider to receive select/race
// instrumentation. Default: a no-op provider.
func WithMetrics(provider metrics.Provider) Option {
	return func(c *Config) {
		if provider == nil {
			panic(Namespace + ": WithMetrics requires a non-nil Provider")
		}
		c.Metrics = provider
	}
}

// buildConfig assembles a Config from defaultConfig() and opts, then
// validates the result.
func buildConfig(opts []Option) (Config, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			panic(Namespace + ": nil option")
		}
		opt(&cfg)
	}
	if err := validateConfig(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
