package infra

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Config holds every tunable of the fabric: the market-data book depth,
// the algo execution spread threshold, the ingest file paths, and
// logging. LoadConfig reads it from YAML and overlays environment
// variables; the run command then layers its own CLI flags on top.
type Config struct {
	App struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
	} `yaml:"app"`

	MarketData struct {
		BookDepth int `yaml:"book_depth"`
	} `yaml:"market_data"`

	AlgoExecution struct {
		SpreadThreshold decimal.Decimal `yaml:"spread_threshold"`
	} `yaml:"algo_execution"`

	Streams struct {
		Prices     string `yaml:"prices"`
		MarketData string `yaml:"market_data"`
		Inquiries  string `yaml:"inquiries"`
	} `yaml:"streams"`

	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`
}

// LoadConfig reads and parses the YAML configuration file at path, then
// applies environment-variable overrides and validates the result.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewConfigError("path", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, NewConfigError("yaml", err)
	}

	overrideWithEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks configuration validity.
func (c *Config) Validate() error {
	if c.MarketData.BookDepth <= 0 {
		return NewConfigError("market_data.book_depth", fmt.Errorf("must be positive"))
	}
	if c.AlgoExecution.SpreadThreshold.IsNegative() {
		return NewConfigError("algo_execution.spread_threshold", fmt.Errorf("must not be negative"))
	}
	if c.Streams.Prices == "" {
		return NewConfigError("streams.prices", fmt.Errorf("is required"))
	}
	if c.Streams.MarketData == "" {
		return NewConfigError("streams.market_data", fmt.Errorf("is required"))
	}
	if c.Streams.Inquiries == "" {
		return NewConfigError("streams.inquiries", fmt.Errorf("is required"))
	}
	return nil
}

// overrideWithEnv lets deployment environments override stream paths
// without editing the checked-in YAML.
func overrideWithEnv(cfg *Config) {
	if v := os.Getenv("TREASURYSOA_PRICES_STREAM"); v != "" {
		cfg.Streams.Prices = v
	}
	if v := os.Getenv("TREASURYSOA_MARKET_DATA_STREAM"); v != "" {
		cfg.Streams.MarketData = v
	}
	if v := os.Getenv("TREASURYSOA_INQUIRIES_STREAM"); v != "" {
		cfg.Streams.Inquiries = v
	}
	if v := os.Getenv("TREASURYSOA_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}
