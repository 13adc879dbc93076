package await

import (
	"fmt"

	"github.com/ygrebnov/await/metrics"
)

// defaultConfig centralizes default values for Config, applied by
// buildConfig as the base every Option is layered onto.
func defaultConfig() Config {
	return Config{
		CancelKind: CancelTerminal,
		Executor:   DefaultExecutor{},
		Metrics:    metrics.NewNoopProvider(),
	}
}

// validateConfig performs lightweight invariant checks on an assembled
// Config.
func validateConfig(cfg *Config) error {
	if cfg.Executor == nil {
		return fmt.Errorf("%s: invalid configuration: executor must not be nil", Namespace)
	}
	if cfg.Metrics == nil {
		return fmt.Errorf("%s: invalid configuration: metrics provider must not be nil", Namespace)
	}
	return nil
}
