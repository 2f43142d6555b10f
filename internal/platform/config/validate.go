package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// maxTabIDLen leaves room for the "-<seq>" suffix of outbound request ids,
// which the request id middleware caps at 128 characters.
const maxTabIDLen = 64

// problems collects every invalid key so one Load reports them all.
type problems []error

func (p *problems) add(cond bool, format string, args ...any) {
	if cond {
		*p = append(*p, fmt.Errorf(format, args...))
	}
}

func (p problems) err() error { return errors.Join(p...) }

// Validate reports every invalid setting, joined.
func (c *Config) Validate() error {
	var p problems
	c.Server.check(&p)
	c.Log.check(&p)
	c.Client.check(&p)
	c.Telemetry.check(&p)
	c.Storage.check(&p)
	c.Consents.check(&p)
	c.Sync.check(&p)
	return p.err()
}

func (s *ServerConfig) check(p *problems) {
	p.add(s.Port < 1 || s.Port > 65535, "server.port must be between 1 and 65535, got %d", s.Port)
	p.add(s.ReadTimeout <= 0, "server.read_timeout must be positive")
	p.add(s.WriteTimeout <= 0, "server.write_timeout must be positive")
}

func (l *LogConfig) check(p *problems) {
	p.add(!slices.Contains([]string{"debug", "info", "warn", "error"}, l.Level),
		"log.level must be one of debug, info, warn, error; got %q", l.Level)
	p.add(l.Format != "json" && l.Format != "text",
		"log.format must be json or text; got %q", l.Format)
}

func (cl *ClientConfig) check(p *problems) {
	u, err := url.Parse(cl.BaseURL)
	absolute := err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
	p.add(!absolute, "client.base_url must be an absolute http(s) URL, got %q", cl.BaseURL)
	p.add(cl.Site == "", "client.site must not be empty")
	p.add(cl.Timeout <= 0, "client.timeout must be positive")

	p.add(cl.Retry.MaxAttempts < 1, "client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts)
	p.add(cl.Retry.Multiplier <= 0, "client.retry.multiplier must be positive, got %g", cl.Retry.Multiplier)
	p.add(cl.Retry.MaxInterval < cl.Retry.InitialInterval,
		"client.retry.max_interval %s is below initial_interval %s", cl.Retry.MaxInterval, cl.Retry.InitialInterval)

	p.add(cl.CircuitBreaker.MaxFailures < 1,
		"client.circuit_breaker.max_failures must be >= 1, got %d", cl.CircuitBreaker.MaxFailures)

	rl := cl.RateLimit
	p.add(rl.RequestsPerSecond < 0, "client.rate_limit.requests_per_second must be >= 0, got %g", rl.RequestsPerSecond)
	p.add(rl.RequestsPerSecond > 0 && rl.BurstSize < 1, "client.rate_limit.burst_size must be >= 1, got %d", rl.BurstSize)
}

func (t *TelemetryConfig) check(p *problems) {
	if !t.Enabled {
		return
	}
	p.add(t.Exporter != "stdout" && t.Exporter != "otlp",
		"telemetry.exporter must be stdout or otlp; got %q", t.Exporter)
	p.add(t.Exporter == "otlp" && t.Endpoint == "", "telemetry.endpoint is required for the otlp exporter")
	p.add(t.ServiceName == "", "telemetry.service_name must not be empty")
}

func (s *StorageConfig) check(p *problems) {
	switch s.Driver {
	case "memory":
	case "bolt":
		p.add(s.Path == "", "storage.path is required for the bolt driver")
		p.add(s.OpenTimeout <= 0, "storage.open_timeout must be positive")
	default:
		p.add(true, "storage.driver must be memory or bolt; got %q", s.Driver)
	}

	p.add(s.Key == "", "storage.key must not be empty")
	for _, f := range s.Features {
		p.add(f != "anonymous-consents" && f != "cart", "storage.features: unknown feature %q", f)
	}
}

func (c *ConsentsConfig) check(p *problems) {
	for key, ids := range map[string][]string{"consents.required": c.Required, "consents.hidden": c.Hidden} {
		p.add(slices.Contains(ids, ""), "%s must not contain an empty template id", key)
	}
}

func (s *SyncConfig) check(p *problems) {
	p.add(len(s.TabID) > maxTabIDLen, "sync.tab_id must be at most %d characters", maxTabIDLen)
	p.add(strings.ContainsFunc(s.TabID, func(r rune) bool { return r <= ' ' || r == 0x7f }),
		"sync.tab_id must not contain spaces or control characters")
}
