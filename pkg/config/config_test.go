package config

import (
	"os"
	"testing"

	"github.com/ricardoalmeida/vendaflow-backend/pkg/enums"
)

func TestLoad_Success(t *testing.T) {
	setMinimalEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Env != "production" {
		t.Fatalf("expected App.Env to be production, got %q", cfg.App.Env)
	}
	if cfg.App.LogLevel != "info" {
		t.Fatalf("expected default log level info, got %q", cfg.App.LogLevel)
	}
	if got := cfg.Calc.AllocationBasis(); got != enums.AllocationBasisByValue {
		t.Fatalf("expected default by_value basis, got %s", got)
	}
	if cfg.Tax.BracketTableJSON != "" {
		t.Fatalf("expected empty bracket override, got %q", cfg.Tax.BracketTableJSON)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	setMinimalEnv(t)
	if err := os.Unsetenv(EnvAppEnv); err != nil {
		t.Fatalf("failed to unset %s: %v", EnvAppEnv, err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected missing required env to return an error")
	}
}

func TestLoad_InvalidAllocationBasis(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvAllocationBasis, "by_vibes")

	if _, err := Load(); err == nil {
		t.Fatal("expected invalid allocation basis to return an error")
	}
}

func TestLoad_ExplicitBasis(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvAllocationBasis, "by_weight")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if got := cfg.Calc.AllocationBasis(); got != enums.AllocationBasisByWeight {
		t.Fatalf("expected by_weight basis, got %s", got)
	}
}

func setMinimalEnv(t *testing.T) {
	t.Helper()

	t.Setenv(EnvAppEnv, "production")
}

func TestAppConfigEnvHelpers(t *testing.T) {
	devConfig := AppConfig{Env: "DEV"}
	if !devConfig.IsDev() {
		t.Fatalf("expected IsDev true for %q", devConfig.Env)
	}
	if devConfig.IsProd() {
		t.Fatalf("expected IsProd false for %q", devConfig.Env)
	}

	prodConfig := AppConfig{Env: "PRODUCTION"}
	if !prodConfig.IsProd() {
		t.Fatalf("expected IsProd true for %q", prodConfig.Env)
	}
}
