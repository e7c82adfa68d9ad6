// Package server exposes evaluations over a JSON API.
package server

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the API server, read from
// PROFORMA_* environment variables.
type Config struct {
	Addr            string        `envconfig:"ADDR" default:":8660"`
	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"15s"`
	RequestTimeout  time.Duration `envconfig:"REQUEST_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`

	RateLimit  int           `envconfig:"RATE_LIMIT" default:"60"`
	RatePeriod time.Duration `envconfig:"RATE_PERIOD" default:"1m"`

	// Tolerance bounds the balance identity check.
	Tolerance float64 `envconfig:"TOLERANCE" default:"0.01"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("proforma", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
