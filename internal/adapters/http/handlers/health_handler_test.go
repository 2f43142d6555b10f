package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/go-storefront-state/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-storefront-state/mocks"
)

func TestLiveness_AlwaysOK(t *testing.T) {
	t.Parallel()

	h := handlers.NewHealthHandler(mocks.NewMockHealthRegistry(t))

	rec := httptest.NewRecorder()
	h.Liveness(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	requireStatus(t, rec, http.StatusOK)
	if resp := decodeJSON[map[string]string](t, rec); resp["status"] != "ok" {
		t.Errorf("status = %q, want %q", resp["status"], "ok")
	}
}

func TestReadiness(t *testing.T) {
	t.Parallel()

	errBreaker := errors.New("occ: failing (circuit breaker open)")
	errBolt := errors.New("snapshot-store: timeout")

	tests := []struct {
		name         string
		results      map[string]error
		wantCode     int
		wantStatus   string
		wantChecks   map[string]string
		wantDegraded int
	}{
		{
			name:       "all healthy",
			results:    map[string]error{"occ": nil, "snapshot-store": nil},
			wantCode:   http.StatusOK,
			wantStatus: "ready",
			wantChecks: map[string]string{"occ": "ok", "snapshot-store": "ok"},
		},
		{
			name:         "occ down degrades",
			results:      map[string]error{"occ": errBreaker, "snapshot-store": nil},
			wantCode:     http.StatusOK,
			wantStatus:   "degraded",
			wantChecks:   map[string]string{"occ": errBreaker.Error(), "snapshot-store": "ok"},
			wantDegraded: 1,
		},
		{
			name:       "snapshot store down is not ready",
			results:    map[string]error{"occ": nil, "snapshot-store": errBolt},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "not_ready",
			wantChecks: map[string]string{"occ": "ok", "snapshot-store": errBolt.Error()},
		},
		{
			name:         "hard failure wins over soft",
			results:      map[string]error{"occ": errBreaker, "snapshot-store": errBolt},
			wantCode:     http.StatusServiceUnavailable,
			wantStatus:   "not_ready",
			wantChecks:   map[string]string{"occ": errBreaker.Error(), "snapshot-store": errBolt.Error()},
			wantDegraded: 1,
		},
		{
			name:       "no checkers",
			results:    map[string]error{},
			wantCode:   http.StatusOK,
			wantStatus: "ready",
			wantChecks: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			registry := mocks.NewMockHealthRegistry(t)
			registry.EXPECT().CheckAll(mock.Anything).Return(tt.results)

			rec := httptest.NewRecorder()
			handlers.NewHealthHandler(registry, "occ").Readiness(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

			requireStatus(t, rec, tt.wantCode)

			resp := decodeJSON[struct {
				Status   string            `json:"status"`
				Checks   map[string]string `json:"checks"`
				Degraded []string          `json:"degraded"`
			}](t, rec)
			if resp.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", resp.Status, tt.wantStatus)
			}
			if len(resp.Checks) != len(tt.wantChecks) {
				t.Errorf("checks = %v, want %v", resp.Checks, tt.wantChecks)
			}
			for name, want := range tt.wantChecks {
				if resp.Checks[name] != want {
					t.Errorf("check %s = %q, want %q", name, resp.Checks[name], want)
				}
			}
			if len(resp.Degraded) != tt.wantDegraded {
				t.Errorf("degraded = %v, want %d entries", resp.Degraded, tt.wantDegraded)
			}
		})
	}
}
