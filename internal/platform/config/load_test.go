package config_test

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/go-storefront-state/internal/platform/config"
)

func TestLoad_Profiles(t *testing.T) {
	t.Chdir("../../..")

	tests := []struct {
		profile string
		check   func(t *testing.T, cfg *config.Config)
	}{
		{
			profile: "local",
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Log.Level != "debug" || cfg.Log.Format != "text" {
					t.Errorf("Log = %+v, want debug/text", cfg.Log)
				}
				if cfg.Storage.Driver != "bolt" || cfg.Storage.Path == "" {
					t.Errorf("Storage = %+v, want bolt with a path", cfg.Storage)
				}
				if cfg.Telemetry.Enabled {
					t.Error("Telemetry.Enabled = true, want false")
				}
				// base.yaml values the profile leaves alone.
				if cfg.Server.Host != "0.0.0.0" || cfg.Client.Retry.MaxAttempts != 3 {
					t.Errorf("Server.Host = %q, Retry.MaxAttempts = %d; want base.yaml values",
						cfg.Server.Host, cfg.Client.Retry.MaxAttempts)
				}
				if !slices.Equal(cfg.Consents.Required, []string{"STORE_USER_INFORMATION"}) {
					t.Errorf("Consents.Required = %v", cfg.Consents.Required)
				}
			},
		},
		{
			profile: "prod",
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
					t.Errorf("Log = %+v, want info/json", cfg.Log)
				}
				if !cfg.Telemetry.Enabled || cfg.Telemetry.Exporter != "otlp" || cfg.Telemetry.Endpoint == "" {
					t.Errorf("Telemetry = %+v, want otlp with an endpoint", cfg.Telemetry)
				}
				if !slices.Equal(cfg.Storage.Features, []string{"anonymous-consents", "cart"}) {
					t.Errorf("Storage.Features = %v, want anonymous-consents and cart", cfg.Storage.Features)
				}
				if cfg.Client.Timeout != 10*time.Second {
					t.Errorf("Client.Timeout = %v, want 10s", cfg.Client.Timeout)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.profile, func(t *testing.T) {
			cfg, err := config.Load(tt.profile)
			if err != nil {
				t.Fatalf("Load(%q) error = %v", tt.profile, err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		check func(t *testing.T, cfg *config.Config)
	}{
		{
			name: "top level key",
			env:  map[string]string{"APP_SERVER_PORT": "9090"},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Server.Port != 9090 {
					t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
				}
			},
		},
		{
			name: "underscore inside key",
			env:  map[string]string{"APP_SERVER_READ_TIMEOUT": "15s"},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Server.ReadTimeout != 15*time.Second {
					t.Errorf("Server.ReadTimeout = %v, want 15s", cfg.Server.ReadTimeout)
				}
			},
		},
		{
			name: "nested key",
			env:  map[string]string{"APP_CLIENT_RETRY_MAX_ATTEMPTS": "7"},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Client.Retry.MaxAttempts != 7 {
					t.Errorf("Client.Retry.MaxAttempts = %d, want 7", cfg.Client.Retry.MaxAttempts)
				}
			},
		},
		{
			name: "list key",
			env:  map[string]string{"APP_CONSENTS_REQUIRED": "STORE_USER_INFORMATION, MARKETING,"},
			check: func(t *testing.T, cfg *config.Config) {
				want := []string{"STORE_USER_INFORMATION", "MARKETING"}
				if !slices.Equal(cfg.Consents.Required, want) {
					t.Errorf("Consents.Required = %v, want %v", cfg.Consents.Required, want)
				}
			},
		},
		{
			name: "key only defaults set",
			env:  map[string]string{"APP_SYNC_TAB_ID": "tab-7", "APP_STORAGE_KEY": "spa-local"},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Sync.TabID != "tab-7" || cfg.Storage.Key != "spa-local" {
					t.Errorf("Sync.TabID = %q, Storage.Key = %q", cfg.Sync.TabID, cfg.Storage.Key)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir("../../..")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := config.Load("local")
			if err != nil {
				t.Fatalf("Load error = %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoad_DefaultsFillUnsetKeys(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.yaml", "log:\n  level: warn\n")
	writeFile(t, dir, "ci.yaml", "{}\n")

	cfg, err := config.Load("ci", config.WithConfigDir(dir))
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}

	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn from base.yaml", cfg.Log.Level)
	}
	if cfg.Storage.Driver != "memory" || cfg.Storage.Key != "storefront-local-data" {
		t.Errorf("Storage = %+v, want the memory default", cfg.Storage)
	}
	if cfg.Storage.OpenTimeout != time.Second {
		t.Errorf("Storage.OpenTimeout = %v, want 1s", cfg.Storage.OpenTimeout)
	}
	if !cfg.Sync.Enabled {
		t.Error("Sync.Enabled = false, want the default true")
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		profile string
		files   map[string]string
		wantMsg string
	}{
		{name: "empty profile", profile: " ", wantMsg: "profile must not be empty"},
		{name: "path in profile", profile: "../etc/passwd", wantMsg: "plain name"},
		{name: "missing base", profile: "ci", files: map[string]string{"ci.yaml": "{}\n"}, wantMsg: "base.yaml"},
		{name: "missing profile", profile: "ci", files: map[string]string{"base.yaml": "{}\n"}, wantMsg: "ci.yaml"},
		{
			name:    "invalid values",
			profile: "ci",
			files:   map[string]string{"base.yaml": "storage:\n  driver: redis\n", "ci.yaml": "{}\n"},
			wantMsg: "storage.driver",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for name, body := range tt.files {
				writeFile(t, dir, name, body)
			}

			_, err := config.Load(tt.profile, config.WithConfigDir(dir))
			if err == nil {
				t.Fatalf("Load(%q) error = nil, want %q", tt.profile, tt.wantMsg)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Load(%q) error = %v, want it to mention %q", tt.profile, err, tt.wantMsg)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantMsg string
	}{
		{name: "valid", mutate: func(*config.Config) {}},
		{name: "port zero", mutate: func(c *config.Config) { c.Server.Port = 0 }, wantMsg: "server.port"},
		{name: "log level", mutate: func(c *config.Config) { c.Log.Level = "verbose" }, wantMsg: "log.level"},
		{name: "relative base url", mutate: func(c *config.Config) { c.Client.BaseURL = "localhost:9002" }, wantMsg: "client.base_url"},
		{name: "empty site", mutate: func(c *config.Config) { c.Client.Site = "" }, wantMsg: "client.site"},
		{
			name:    "retry intervals inverted",
			mutate:  func(c *config.Config) { c.Client.Retry.MaxInterval = time.Millisecond },
			wantMsg: "client.retry.max_interval",
		},
		{
			name:    "rate limit without burst",
			mutate:  func(c *config.Config) { c.Client.RateLimit = config.RateLimitConfig{RequestsPerSecond: 5} },
			wantMsg: "client.rate_limit.burst_size",
		},
		{
			name: "otlp without endpoint",
			mutate: func(c *config.Config) {
				c.Telemetry = config.TelemetryConfig{Enabled: true, Exporter: "otlp", ServiceName: "storefront-state"}
			},
			wantMsg: "telemetry.endpoint",
		},
		{
			name:   "disabled telemetry is not checked",
			mutate: func(c *config.Config) { c.Telemetry = config.TelemetryConfig{Exporter: "zipkin"} },
		},
		{
			name:   "bolt with path",
			mutate: func(c *config.Config) { c.Storage.Driver = "bolt"; c.Storage.Path = "/tmp/state.db" },
		},
		{name: "bolt without path", mutate: func(c *config.Config) { c.Storage.Driver = "bolt" }, wantMsg: "storage.path"},
		{name: "unknown driver", mutate: func(c *config.Config) { c.Storage.Driver = "redis" }, wantMsg: "storage.driver"},
		{
			name:    "unknown feature",
			mutate:  func(c *config.Config) { c.Storage.Features = []string{"wishlist"} },
			wantMsg: "wishlist",
		},
		{name: "empty storage key", mutate: func(c *config.Config) { c.Storage.Key = "" }, wantMsg: "storage.key"},
		{
			name:    "empty consent id",
			mutate:  func(c *config.Config) { c.Consents.Hidden = []string{""} },
			wantMsg: "consents.hidden",
		},
		{name: "tab id with space", mutate: func(c *config.Config) { c.Sync.TabID = "tab a" }, wantMsg: "sync.tab_id"},
		{
			name:    "tab id too long",
			mutate:  func(c *config.Config) { c.Sync.TabID = strings.Repeat("t", 65) },
			wantMsg: "sync.tab_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantMsg == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantMsg) {
				t.Fatalf("Validate() error = %v, want it to mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Server.Port = 0
	cfg.Storage.Key = ""
	cfg.Sync.TabID = "tab a"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() error = nil, want three problems")
	}
	for _, key := range []string{"server.port", "storage.key", "sync.tab_id"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("Validate() error = %v, want it to mention %q", err, key)
		}
	}
}

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}

func validConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		Log: config.LogConfig{Level: "info", Format: "json"},
		Client: config.ClientConfig{
			BaseURL: "http://localhost:9002",
			Prefix:  "occ/v2",
			Site:    "electronics-spa",
			Timeout: 30 * time.Second,
			Retry: config.RetryConfig{
				MaxAttempts:     3,
				InitialInterval: 100 * time.Millisecond,
				MaxInterval:     10 * time.Second,
				Multiplier:      2.0,
			},
			CircuitBreaker: config.CircuitBreakerConfig{MaxFailures: 5, Timeout: 30 * time.Second, HalfOpenLimit: 1},
		},
		Telemetry: config.TelemetryConfig{Exporter: "stdout", ServiceName: "storefront-state"},
		Storage: config.StorageConfig{
			Driver:      "memory",
			Key:         "storefront-local-data",
			Features:    []string{"anonymous-consents"},
			OpenTimeout: time.Second,
		},
		Consents: config.ConsentsConfig{Required: []string{"STORE_USER_INFORMATION"}},
		Sync:     config.SyncConfig{Enabled: true, TabID: "tab-a"},
	}
}
