// Package config loads the settings of one tab process: the tab API
// listener, the OCC client, the snapshot medium, consent templates and
// cross-tab sync. See Load for how sources are layered.
package config

import "time"

// Config is the validated result of Load.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Client    ClientConfig    `koanf:"client"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Storage   StorageConfig   `koanf:"storage"`
	Consents  ConsentsConfig  `koanf:"consents"`
	Sync      SyncConfig      `koanf:"sync"`
}

// ServerConfig is the tab API listener.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig selects the slog level and handler.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClientConfig holds commerce backend client settings. BaseURL is the OCC
// root; requests go to {BaseURL}/{Prefix}/{Site}/...
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Prefix         string               `koanf:"prefix"`
	Site           string               `koanf:"site"`
	Language       string               `koanf:"language"`
	Currency       string               `koanf:"currency"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RateLimitConfig throttles outbound requests. A zero RequestsPerSecond
// disables the limiter.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// RetryConfig bounds OCC retries. Intervals grow by Multiplier with jitter
// and a Retry-After header may stretch one wait up to MaxInterval.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig trips the OCC breaker after MaxFailures consecutive
// failures and probes again after Timeout.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// StorageConfig selects the medium the persisted snapshot lives in.
type StorageConfig struct {
	// Driver is "memory" (single process) or "bolt" (shared file).
	Driver string `koanf:"driver"`
	Path   string `koanf:"path"`
	// Key is the medium key the snapshot is stored under.
	Key string `koanf:"key"`
	// Features lists the state slices written to the snapshot.
	Features []string `koanf:"features"`
	// OpenTimeout bounds how long a bolt open waits for the file lock.
	OpenTimeout time.Duration `koanf:"open_timeout"`
}

// ConsentsConfig holds the anonymous consent settings.
type ConsentsConfig struct {
	Required []string `koanf:"required"`
	Hidden   []string `koanf:"hidden"`
}

// SyncConfig controls cross-tab synchronization.
type SyncConfig struct {
	Enabled bool `koanf:"enabled"`
	// TabID names this process in storage events. Empty generates one.
	TabID string `koanf:"tab_id"`
}
