package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/go-storefront-state/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-storefront-state/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-storefront-state/internal/domain"
	"github.com/jsamuelsen11/go-storefront-state/internal/state/loader"
	"github.com/jsamuelsen11/go-storefront-state/internal/state/store"
	"github.com/jsamuelsen11/go-storefront-state/mocks"
)

func newSessionHandler(t *testing.T) (*handlers.SessionHandler, *mocks.MockSessionService) {
	t.Helper()
	svc := mocks.NewMockSessionService(t)
	return handlers.NewSessionHandler(svc), svc
}

func TestLogin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		userID     string
		wantCall   string
		wantStatus int
	}{
		{name: "concrete user", userID: "current", wantCall: "current", wantStatus: http.StatusAccepted},
		{name: "trims user id", userID: " jane@example.com ", wantCall: "jane@example.com", wantStatus: http.StatusAccepted},
		{name: "anonymous rejected", userID: "anonymous", wantStatus: http.StatusBadRequest},
		{name: "missing user", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newSessionHandler(t)
			if tt.wantCall != "" {
				svc.EXPECT().Login(mock.Anything, tt.wantCall).Return(nil)
			}

			rec := httptest.NewRecorder()
			body := jsonBody(t, map[string]string{"userId": tt.userID})
			h.Login(rec, httptest.NewRequest(http.MethodPost, "/session/login", body))

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}

func TestRegister_WhileLoggedIn(t *testing.T) {
	t.Parallel()
	h, svc := newSessionHandler(t)

	svc.EXPECT().Register(mock.Anything).Return(domain.ErrConflict)

	rec := httptest.NewRecorder()
	h.Register(rec, httptest.NewRequest(http.MethodPost, "/session/register", nil))

	requireStatus(t, rec, http.StatusConflict)
}

func TestLogout_Accepted(t *testing.T) {
	t.Parallel()
	h, svc := newSessionHandler(t)

	svc.EXPECT().Logout(mock.Anything).Return(nil)

	rec := httptest.NewRecorder()
	h.Logout(rec, httptest.NewRequest(http.MethodPost, "/session/logout", nil))

	requireStatus(t, rec, http.StatusAccepted)
	resp := decodeJSON[map[string]string](t, rec)
	if resp["status"] != "accepted" {
		t.Errorf("status = %q, want %q", resp["status"], "accepted")
	}
}

func TestChangeLanguage(t *testing.T) {
	t.Parallel()
	h, svc := newSessionHandler(t)

	svc.EXPECT().ChangeLanguage(mock.Anything, "de").Return(nil)

	rec := httptest.NewRecorder()
	body := jsonBody(t, map[string]string{"language": "de"})
	h.ChangeLanguage(rec, httptest.NewRequest(http.MethodPost, "/session/language", body))

	requireStatus(t, rec, http.StatusAccepted)
}

func TestGetState(t *testing.T) {
	t.Parallel()

	initial := store.Initial()
	initial.Auth.UserID = domain.UserAnonymous
	initial.Cart.Active = loader.State[domain.Cart]{Value: validCart(), Success: true}
	s := store.New(store.WithTabID("tab-a"), store.WithInitialState(initial))

	h := handlers.NewStateHandler(s)

	rec := httptest.NewRecorder()
	h.GetState(rec, httptest.NewRequest(http.MethodGet, "/state", nil))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.StateResponse](t, rec)
	if resp.TabID != "tab-a" {
		t.Errorf("TabID = %q, want %q", resp.TabID, "tab-a")
	}
	if resp.LoggedIn {
		t.Error("LoggedIn = true for anonymous session")
	}
	if !resp.BannerVisible {
		t.Error("BannerVisible = false, want true")
	}
	if resp.CartPhase != dto.PhaseSuccess || !resp.CartStable {
		t.Errorf("cart = %q stable=%v", resp.CartPhase, resp.CartStable)
	}
	if resp.Cart.GUID != validCart().GUID {
		t.Errorf("Cart.GUID = %q, want %q", resp.Cart.GUID, validCart().GUID)
	}
}
