package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	adapthttp "github.com/jsamuelsen11/go-storefront-state/internal/adapters/http"
	"github.com/jsamuelsen11/go-storefront-state/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-storefront-state/internal/domain"
	"github.com/jsamuelsen11/go-storefront-state/internal/state/store"
	"github.com/jsamuelsen11/go-storefront-state/mocks"
)

type testServices struct {
	consents *mocks.MockConsentService
	cart     *mocks.MockCartService
	session  *mocks.MockSessionService
	registry *mocks.MockHealthRegistry
}

func newTestRouter(t *testing.T, middlewares ...func(http.Handler) http.Handler) (http.Handler, testServices) {
	t.Helper()
	svc := testServices{
		consents: mocks.NewMockConsentService(t),
		cart:     mocks.NewMockCartService(t),
		session:  mocks.NewMockSessionService(t),
		registry: mocks.NewMockHealthRegistry(t),
	}

	router := adapthttp.NewRouter(adapthttp.Handlers{
		Consents: handlers.NewConsentHandler(svc.consents),
		Cart:     handlers.NewCartHandler(svc.cart),
		Session:  handlers.NewSessionHandler(svc.session),
		State:    handlers.NewStateHandler(store.New(store.WithTabID("tab-a"))),
		Health:   handlers.NewHealthHandler(svc.registry, "occ"),
	}, middlewares...)
	return router, svc
}

func TestRouter_Routes(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	want := []string{
		"GET /health/live",
		"GET /health/ready",
		"GET /state",
		"GET /consents/",
		"POST /consents/give-all",
		"POST /consents/withdraw-all",
		"POST /consents/banner",
		"POST /consents/{code}/give",
		"POST /consents/{code}/withdraw",
		"DELETE /consents/user/processes/{process}",
		"GET /cart/",
		"POST /cart/entries",
		"PATCH /cart/entries/{entryNumber}",
		"DELETE /cart/entries/{entryNumber}",
		"POST /cart/vouchers",
		"DELETE /cart/vouchers/{voucherId}",
		"DELETE /cart/processes/{process}",
		"PUT /cart/email",
		"POST /session/login",
		"POST /session/register",
		"POST /session/logout",
		"POST /session/language",
	}

	mux, ok := router.(chi.Routes)
	if !ok {
		t.Fatalf("router is %T, want chi.Routes", router)
	}

	registered := make(map[string]bool)
	if err := chi.Walk(mux, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	}); err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}

	for _, route := range want {
		if !registered[route] {
			t.Errorf("route %s not registered", route)
		}
	}
}

func TestRouter_Dispatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		method   string
		path     string
		body     string
		setup    func(svc testServices)
		wantCode int
		wantBody string
	}{
		{
			name:     "give consent",
			method:   http.MethodPost,
			path:     "/consents/MARKETING/give",
			setup:    func(svc testServices) { svc.consents.EXPECT().Give("MARKETING").Return() },
			wantCode: http.StatusAccepted,
		},
		{
			name:     "update entry",
			method:   http.MethodPatch,
			path:     "/cart/entries/2",
			body:     `{"quantity":5}`,
			setup:    func(svc testServices) { svc.cart.EXPECT().UpdateEntry(mock.Anything, 2, 5).Return(nil) },
			wantCode: http.StatusAccepted,
		},
		{
			name:     "remove voucher",
			method:   http.MethodDelete,
			path:     "/cart/vouchers/SUMMER10",
			setup:    func(svc testServices) { svc.cart.EXPECT().RemoveVoucher(mock.Anything, "SUMMER10").Return(nil) },
			wantCode: http.StatusAccepted,
		},
		{
			name:   "logout while OCC is down",
			method: http.MethodPost,
			path:   "/session/logout",
			setup: func(svc testServices) {
				svc.session.EXPECT().Logout(mock.Anything).Return(domain.ErrUnavailable)
			},
			wantCode: http.StatusBadGateway,
			wantBody: `"status":502`,
		},
		{
			name:     "reset voucher process",
			method:   http.MethodDelete,
			path:     "/cart/processes/add-voucher?id=SUMMER10",
			setup:    func(svc testServices) { svc.cart.EXPECT().ResetAddVoucherProcess("SUMMER10").Return() },
			wantCode: http.StatusAccepted,
		},
		{
			name:     "reset user consent give process",
			method:   http.MethodDelete,
			path:     "/consents/user/processes/give",
			setup:    func(svc testServices) { svc.consents.EXPECT().ResetGiveUserConsentProcess("").Return() },
			wantCode: http.StatusAccepted,
		},
		{
			name:     "state snapshot",
			method:   http.MethodGet,
			path:     "/state",
			wantCode: http.StatusOK,
			wantBody: `"tabId":"tab-a"`,
		},
		{
			name:     "unknown path",
			method:   http.MethodGet,
			path:     "/wishlist",
			wantCode: http.StatusNotFound,
			wantBody: `"instance":"/wishlist"`,
		},
		{
			name:     "wrong method",
			method:   http.MethodPut,
			path:     "/cart/entries",
			wantCode: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router, svc := newTestRouter(t)
			if tt.setup != nil {
				tt.setup(svc)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body)))

			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d; body = %s", rec.Code, tt.wantCode, rec.Body.String())
			}
			if tt.wantBody != "" && !strings.Contains(rec.Body.String(), tt.wantBody) {
				t.Errorf("body = %s, want it to contain %s", rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestRouter_MiddlewareOrder(t *testing.T) {
	t.Parallel()

	var order []string
	mark := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	router, svc := newTestRouter(t, mark("outer"), mark("inner"))
	svc.registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	if strings.Join(order, ",") != "outer,inner" {
		t.Errorf("middleware order = %v, want [outer inner]", order)
	}
}
