package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/go-storefront-state/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusDegraded = "degraded"
	statusNotReady = "not_ready"
)

type readinessResponse struct {
	Status   string            `json:"status"`
	Checks   map[string]string `json:"checks"`
	Degraded []string          `json:"degraded,omitempty"`
}

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	registry ports.HealthRegistry
	soft     map[string]bool
}

// NewHealthHandler reports on the checks in registry. A failing check named
// in soft only degrades the tab: with OCC down the store still reduces,
// persists and syncs, and every OCC effect fails into its loader slot.
// Any other failing check, such as the snapshot store, makes the tab
// not ready.
func NewHealthHandler(registry ports.HealthRegistry, soft ...string) *HealthHandler {
	h := &HealthHandler{registry: registry, soft: make(map[string]bool, len(soft))}
	for _, name := range soft {
		h.soft[name] = true
	}
	return h
}

// Liveness handles GET /health/live.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": statusOK})
}

// Readiness handles GET /health/ready: 200 "ready" when every check passes,
// 200 "degraded" when only soft checks fail, 503 "not_ready" otherwise.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	resp := readinessResponse{Status: statusReady, Checks: make(map[string]string, len(results))}
	hard := false
	for name, err := range results {
		if err == nil {
			resp.Checks[name] = statusOK
			continue
		}
		resp.Checks[name] = err.Error()
		if h.soft[name] {
			resp.Degraded = append(resp.Degraded, name)
		} else {
			hard = true
		}
	}

	code := http.StatusOK
	switch {
	case hard:
		resp.Status = statusNotReady
		code = http.StatusServiceUnavailable
	case len(resp.Degraded) > 0:
		resp.Status = statusDegraded
	}

	writeJSON(w, code, resp)
}
