// Package config loads the process configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/pysyun/etherscan-transfers/internal/pkg/validator"
)

type Config struct {
	LogLevel         string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error dpanic panic fatal"`
	ServiceName      string `envconfig:"SERVICE_NAME" default:"etherscan-transfers" validate:"required"`
	TelemetryEnabled bool   `envconfig:"TELEMETRY_ENABLED" default:"false"`

	Etherscan Etherscan `envconfig:"ETHERSCAN"`
	Redis     Redis     `envconfig:"REDIS"`
	NATS      NATS      `envconfig:"NATS"`
}

type Etherscan struct {
	BaseURL            string        `envconfig:"BASE_URL" default:"https://api.etherscan.io/api" validate:"required,url"`
	APIKey             string        `envconfig:"API_KEY"`
	ChainID            string        `envconfig:"CHAIN_ID" validate:"omitempty,numeric"`
	MinRequestInterval time.Duration `envconfig:"MIN_REQUEST_INTERVAL" default:"200ms" validate:"gte=0"`
	RequestTimeout     time.Duration `envconfig:"REQUEST_TIMEOUT" default:"10s" validate:"gt=0"`
	RetryMax           int           `envconfig:"RETRY_MAX" default:"2" validate:"gte=0"`
	RateLimitAttempts  uint          `envconfig:"RATE_LIMIT_ATTEMPTS" default:"3" validate:"gte=1"`
}

// Redis enables the shared request throttle when Addr is set.
type Redis struct {
	Addr     string `envconfig:"ADDR" validate:"omitempty,hostname_port"`
	Username string `envconfig:"USERNAME"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB" default:"0" validate:"gte=0"`
}

func (r Redis) Enabled() bool {
	return r.Addr != ""
}

// NATS enables timeline publishing when URL is set.
type NATS struct {
	URL           string `envconfig:"URL" validate:"omitempty,url"`
	SubjectPrefix string `envconfig:"SUBJECT_PREFIX" default:"transfers" validate:"required"`
}

func (n NATS) Enabled() bool {
	return n.URL != ""
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read configuration: %w", err)
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
