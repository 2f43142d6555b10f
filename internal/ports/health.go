package ports

import "context"

// HealthChecker reports on one dependency of the tab. The OCC client and the
// bolt snapshot medium implement it.
type HealthChecker interface {
	// Name keys the result in the readiness response ("occ",
	// "snapshot-store").
	Name() string

	// HealthCheck returns nil when the dependency is usable. It must give up
	// when ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry runs the registered checks for the readiness probe.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll returns each checker's error by name; nil means healthy.
	CheckAll(ctx context.Context) map[string]error
}
