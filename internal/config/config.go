// Package config loads runtime settings for the beiform binaries: defaults,
// then an optional YAML file, then environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-beiform/pkg/service"
)

// Environment variables read by Load.
const (
	EnvAPIBase      = "BEIFORM_API_BASE"
	EnvTimeout      = "BEIFORM_TIMEOUT"
	EnvAddr         = "BEIFORM_ADDR"
	EnvEnvironment  = "BEIFORM_ENV"
	EnvLogLevel     = "LOG_LEVEL"
	EnvLogFormat    = "LOG_FORMAT"
	EnvDebug        = "DEBUG"
	EnvOTLPEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	EnvServiceName  = "OTEL_SERVICE_NAME"
)

// Config holds the application configuration.
type Config struct {
	Env       string          `yaml:"env" json:"env"`
	Service   ServiceConfig   `yaml:"service" json:"service"`
	Log       LogConfig       `yaml:"log" json:"log"`
	HTTP      HTTPConfig      `yaml:"http" json:"http"`
	Telemetry TelemetryConfig `yaml:"telemetry" json:"telemetry"`
	Contract  ContractConfig  `yaml:"contract" json:"contract"`
}

// ServiceConfig locates the external calculation service.
type ServiceConfig struct {
	BaseURL string        `yaml:"base_url" json:"base_url"`
	Timeout time.Duration `yaml:"timeout" json:"timeout"`
}

// LogConfig selects the log handler.
type LogConfig struct {
	Level  string `yaml:"level" json:"level"`   // debug, info, warn, error
	Format string `yaml:"format" json:"format"` // json or text
}

// HTTPConfig configures the serve command.
type HTTPConfig struct {
	Addr string `yaml:"addr" json:"addr"`
}

// TelemetryConfig configures trace export. An empty endpoint disables it.
type TelemetryConfig struct {
	Endpoint    string `yaml:"endpoint" json:"endpoint"`
	ServiceName string `yaml:"service_name" json:"service_name"`
}

// ContractConfig toggles the pre-send payload contract check.
type ContractConfig struct {
	Enabled bool `yaml:"enabled" json:"enabled"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Env: "development",
		Service: ServiceConfig{
			BaseURL: service.DefaultBaseURL,
			Timeout: service.DefaultTimeout,
		},
		Log:       LogConfig{Level: "info", Format: "json"},
		HTTP:      HTTPConfig{Addr: ":8080"},
		Telemetry: TelemetryConfig{ServiceName: "beiform"},
		Contract:  ContractConfig{Enabled: true},
	}
}

// LoadOption customises Load.
type LoadOption func(*loader)

type loader struct {
	getenv func(string) string
}

// WithEnv replaces os.Getenv, mainly for tests.
func WithEnv(getenv func(string) string) LoadOption {
	return func(l *loader) {
		if getenv != nil {
			l.getenv = getenv
		}
	}
}

// Load builds the configuration. path may be empty to skip the file.
func Load(path string, opts ...LoadOption) (*Config, error) {
	l := &loader{getenv: os.Getenv}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := decode(data, &cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if err := l.applyEnv(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (l *loader) applyEnv(cfg *Config) error {
	if v := l.env(EnvEnvironment); v != "" {
		cfg.Env = v
	}
	if v := l.env(EnvAPIBase); v != "" {
		cfg.Service.BaseURL = v
	}
	if v := l.env(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvTimeout, err)
		}
		cfg.Service.Timeout = d
	}
	if v := l.env(EnvAddr); v != "" {
		cfg.HTTP.Addr = v
	}
	if v := l.env(EnvLogLevel); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
	// DEBUG flag overrides log level
	if l.env(EnvDebug) == "1" {
		cfg.Log.Level = "debug"
	}
	if v := l.env(EnvLogFormat); v != "" {
		cfg.Log.Format = strings.ToLower(v)
	}
	if v := l.env(EnvOTLPEndpoint); v != "" {
		cfg.Telemetry.Endpoint = v
	}
	if v := l.env(EnvServiceName); v != "" {
		cfg.Telemetry.ServiceName = v
	}
	return nil
}

func (l *loader) env(key string) string {
	return strings.TrimSpace(l.getenv(key))
}

// Validate checks the settings Load cannot repair.
func (c Config) Validate() error {
	if _, err := service.ParseBaseURL(c.Service.BaseURL); err != nil {
		return fmt.Errorf("config: service.base_url: %w", err)
	}
	if c.Service.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.Log.Format)
	}
	return nil
}
