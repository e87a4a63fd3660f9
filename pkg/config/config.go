package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment" default:"development" validate:"required"`
	Server      struct {
		Port            int           `yaml:"port" default:"3000" validate:"gt=0,lte=65535"`
		ReadTimeout     time.Duration `yaml:"read_timeout" default:"10s"`
		WriteTimeout    time.Duration `yaml:"write_timeout" default:"15s"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"10s"`
		RateLimit       float64       `yaml:"rate_limit" default:"50"` // req/s per IP, 0 disables
		RateBurst       float64       `yaml:"rate_burst" default:"100"`
	} `yaml:"server"`
	Log struct {
		Level  string `yaml:"level" default:"info" validate:"oneof=debug info warn error"`
		Format string `yaml:"format" default:"console" validate:"oneof=console json"`
		Output string `yaml:"output" default:"stdout"`
	} `yaml:"log"`
	Metrics struct {
		Enabled bool   `yaml:"enabled" default:"true"`
		Path    string `yaml:"path" default:"/metrics"`
	} `yaml:"metrics"`
	Producer struct {
		Mode    string        `yaml:"mode" default:"mock" validate:"oneof=script mock"`
		Command string        `yaml:"command" default:"python3"`
		Args    []string      `yaml:"args"`
		Timeout time.Duration `yaml:"timeout" default:"10s"`
	} `yaml:"producer"`
	Signals struct {
		TTL          time.Duration `yaml:"ttl" default:"5m"`
		HistoryLimit int           `yaml:"history_limit" default:"100" validate:"gt=0"`
		HitRate      float64       `yaml:"hit_rate" default:"0.85" validate:"gt=0,lte=1"`
		Pairs        []string      `yaml:"pairs" validate:"min=1,dive,required"`
		Seed         int64         `yaml:"seed"` // 0 means time-seeded
	} `yaml:"signals"`
	Dashboard struct {
		APIBaseURL     string        `yaml:"api_base_url" default:"http://localhost:3000"`
		PollInterval   time.Duration `yaml:"poll_interval" default:"5m"`
		RequestTimeout time.Duration `yaml:"request_timeout" default:"10s"`
		Pair           string        `yaml:"pair" default:"all"`
		Timeframe      string        `yaml:"timeframe" default:"D1"`
	} `yaml:"dashboard"`
}

var validate = validator.New()

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("apply defaults: %w", err)
	}
	if len(c.Signals.Pairs) == 0 {
		c.Signals.Pairs = defaultPairs()
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("ENVIRONMENT"); v != "" {
		c.Environment = v
	}
	if v := os.Getenv("PRODUCER_MODE"); v != "" {
		c.Producer.Mode = v
	}
	if v := os.Getenv("PRODUCER_COMMAND"); v != "" {
		c.Producer.Command = v
	}
	if v := os.Getenv("PAIRS"); v != "" {
		c.Signals.Pairs = strings.Split(v, ",")
	}
	if v := os.Getenv("SIGNALS_SEED"); v != "" {
		if s, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Signals.Seed = s
		}
	}
	if v := os.Getenv("API_BASE_URL"); v != "" {
		c.Dashboard.APIBaseURL = v
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.Producer.Mode == "script" && c.Producer.Command == "" {
		return fmt.Errorf("producer.command is required in script mode")
	}
	return nil
}

func defaultPairs() []string {
	return []string{
		"EUR/USD", "USD/JPY", "GBP/USD", "USD/CHF",
		"AUD/USD", "USD/CAD", "NZD/USD", "USD/BRL",
	}
}
