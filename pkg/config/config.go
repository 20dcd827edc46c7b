package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/ricardoalmeida/vendaflow-backend/pkg/enums"
)

const EnvPrefix = "VENDAFLOW"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

// Env var names referenced by tests and composition roots.
const (
	EnvAppEnv          = "VENDAFLOW_APP_ENV"
	EnvLogLevel        = "VENDAFLOW_LOG_LEVEL"
	EnvAllocationBasis = "VENDAFLOW_CALC_ALLOCATION_BASIS"
	EnvTaxBracketJSON  = "VENDAFLOW_TAX_BRACKET_TABLE_JSON"
)

type Config struct {
	App  AppConfig
	Calc CalcConfig
	Tax  TaxConfig
}

// Load reads configuration from the environment. A .env file is honored when
// present. The allocation basis is validated here; the tax bracket table JSON
// is validated by the tax package when the resolver is built at process start.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Calc.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"VENDAFLOW_APP_ENV" required:"true"`
	LogLevel     string `envconfig:"VENDAFLOW_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"VENDAFLOW_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type CalcConfig struct {
	// DefaultAllocationBasis picks how landed cost is split across product
	// lines when the simulation does not say otherwise.
	DefaultAllocationBasis string `envconfig:"VENDAFLOW_CALC_ALLOCATION_BASIS" default:"by_value"`
}

func (c CalcConfig) validate() error {
	if _, err := enums.ParseAllocationBasis(c.DefaultAllocationBasis); err != nil {
		return fmt.Errorf("invalid %s: %w", EnvAllocationBasis, err)
	}
	return nil
}

// AllocationBasis returns the configured basis as its enum value.
func (c CalcConfig) AllocationBasis() enums.AllocationBasis {
	basis, err := enums.ParseAllocationBasis(c.DefaultAllocationBasis)
	if err != nil {
		return enums.AllocationBasisByValue
	}
	return basis
}

type TaxConfig struct {
	// BracketTableJSON optionally overrides the built-in turnover bracket
	// table. Empty means the default Simples Nacional table is used.
	BracketTableJSON string `envconfig:"VENDAFLOW_TAX_BRACKET_TABLE_JSON"`
}
