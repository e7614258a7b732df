package config

import (
	"errors"
	"fmt"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"io/fs"
	"time"
)

// Config settings of one converter run, read from the environment
type Config struct {
	// RatesURL base url of the coinbase compatible rates API
	RatesURL string `env:"CONVERTER_RATES_URL" env-default:"https://api.coinbase.com/v2" env-description:"base url of the exchange rates API"`

	// HTTPTimeout bounds each request to the rates API
	HTTPTimeout time.Duration `env:"CONVERTER_HTTP_TIMEOUT" env-default:"5s" env-description:"timeout of a single rates request"`

	LogLevel  string `env:"CONVERTER_LOG_LEVEL" env-default:"warn" env-description:"debug, info, warn or error"`
	LogFormat string `env:"CONVERTER_LOG_FORMAT" env-default:"logfmt" env-description:"logfmt or json"`

	// SymbolLocale BCP 47 locale whose currency symbols are recognised
	SymbolLocale string `env:"CONVERTER_SYMBOL_LOCALE" env-default:"en-US" env-description:"locale of recognised currency symbols"`
}

// Load reads envFile into the environment when it exists, without overriding
// variables already set, then builds a Config from the environment.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading [%v]: %w", envFile, err)
		}
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("CONVERTER_LOG_LEVEL: unknown level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "logfmt", "json":
	default:
		return fmt.Errorf("CONVERTER_LOG_FORMAT: unknown format %q", c.LogFormat)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("CONVERTER_HTTP_TIMEOUT: must be positive, got %v", c.HTTPTimeout)
	}
	return nil
}

// Usage describes the environment variables Config reads
func Usage() string {
	var cfg Config
	text, err := cleanenv.GetDescription(&cfg, nil)
	if err != nil {
		return ""
	}
	return text
}
