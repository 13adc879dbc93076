package await

import "testing"

func TestDefaultConfig_Values(t *testing.T) {
	cfg := defaultConfig()
	if cfg.CancelKind != CancelTerminal {
		t.Fatalf("CancelKind default = %v; want %v", cfg.CancelKind, CancelTerminal)
	}
	if cfg.Executor == nil {
		t.Fatalf("Executor default is nil")
	}
	if cfg.Metrics == nil {
		t.Fatalf("Metrics default is nil")
	}
}

func TestValidateConfig_Defaults(t *testing.T) {
	cfg := defaultConfig()
	if err := validateConfig(&cfg); err != nil {
		t.Fatalf("validateConfig returned error for defaults: %v", err)
	}
}

func TestValidateConfig_NilExecutor(t *testing.T) {
	cfg := defaultConfig()
	cfg.Executor = nil
	if err := validateConfig(&cfg); err == nil {
		t.Fatalf("validateConfig: expected error for a nil Executor")
	}
}

func TestValidateConfig_NilMetrics(t *testing.T) {
	cfg := defaultConfig()
	cfg.Metrics = nil
	if err := validateConfig(&cfg); err == nil {
		t.Fatalf("validateConfig: expected error for a nil Metrics provider")
	}
}

func TestBuildConfig_AppliesOptionsInOrder(t *testing.T) {
	cfg, err := buildConfig([]Option{WithCancelKind(CancelTerminal), WithCancelKind(CancelPartial)})
	if err != nil {
		t.Fatalf("buildConfig: unexpected error: %v", err)
	}
	if cfg.CancelKind != CancelPartial {
		t.Fatalf("CancelKind = %v; want %v", cfg.CancelKind, CancelPartial)
	}
}

func TestBuildConfig_NilOptionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("buildConfig: expected a panic for a nil Option")
		}
	}()
	_, _ = buildConfig([]Option{nil})
}

func TestWithExecutor_NilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("WithExecutor: expected a panic for a nil Executor")
		}
	}()
	WithExecutor(nil)(&Config{})
}

func TestWithMetrics_NilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("WithMetrics: expected a panic for a nil Provider")
		}
	}()
	WithMetrics(nil)(&Config{})
}
