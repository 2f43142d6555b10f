package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/go-storefront-state/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-storefront-state/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-storefront-state/internal/domain"
	"github.com/jsamuelsen11/go-storefront-state/mocks"
)

func newConsentHandler(t *testing.T) (*handlers.ConsentHandler, *mocks.MockConsentService) {
	t.Helper()
	svc := mocks.NewMockConsentService(t)
	return handlers.NewConsentHandler(svc), svc
}

// --- ListConsents ---

func TestListConsents_Success(t *testing.T) {
	t.Parallel()
	h, svc := newConsentHandler(t)

	svc.EXPECT().Templates(mock.Anything).Return([]domain.ConsentTemplate{
		{ID: "MARKETING", Name: "Marketing"},
		{ID: "PERSONALIZATION"},
	}, nil)
	svc.EXPECT().Consents().Return([]domain.AnonymousConsent{
		{TemplateCode: "MARKETING", ConsentState: domain.ConsentGiven},
	})
	svc.EXPECT().IsBannerVisible().Return(true)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/consents", nil)
	h.ListConsents(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.ConsentListResponse](t, rec)
	if !resp.BannerVisible {
		t.Error("BannerVisible = false, want true")
	}
	if len(resp.Consents) != 2 {
		t.Fatalf("len(Consents) = %d, want 2", len(resp.Consents))
	}
	if resp.Consents[0].State != "GIVEN" {
		t.Errorf("Consents[0].State = %q, want GIVEN", resp.Consents[0].State)
	}
}

func TestListConsents_TemplatesUnavailable(t *testing.T) {
	t.Parallel()
	h, svc := newConsentHandler(t)

	svc.EXPECT().Templates(mock.Anything).Return(nil, domain.ErrUnavailable)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/consents", nil)
	h.ListConsents(rec, req)

	requireStatus(t, rec, http.StatusBadGateway)
}

// --- Give / Withdraw ---

func TestGiveConsent_Accepted(t *testing.T) {
	t.Parallel()
	h, svc := newConsentHandler(t)

	svc.EXPECT().Give("MARKETING").Return()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/consents/MARKETING/give", nil)
	req = withChiParams(req, map[string]string{"code": "MARKETING"})
	h.GiveConsent(rec, req)

	requireStatus(t, rec, http.StatusAccepted)
}

func TestWithdrawConsent_Accepted(t *testing.T) {
	t.Parallel()
	h, svc := newConsentHandler(t)

	svc.EXPECT().Withdraw("PERSONALIZATION").Return()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/consents/PERSONALIZATION/withdraw", nil)
	req = withChiParams(req, map[string]string{"code": "PERSONALIZATION"})
	h.WithdrawConsent(rec, req)

	requireStatus(t, rec, http.StatusAccepted)
}

func TestGiveConsent_MissingCode(t *testing.T) {
	t.Parallel()
	h, _ := newConsentHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/consents//give", nil)
	h.GiveConsent(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- GiveAll / WithdrawAll ---

func TestBulkConsents(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		withdraw   bool
		err        error
		wantStatus int
	}{
		{name: "give all", wantStatus: http.StatusAccepted},
		{name: "withdraw all", withdraw: true, wantStatus: http.StatusAccepted},
		{name: "give all without templates", err: domain.ErrUnavailable, wantStatus: http.StatusBadGateway},
		{name: "withdraw all without templates", withdraw: true, err: domain.ErrUnavailable, wantStatus: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newConsentHandler(t)

			rec := httptest.NewRecorder()
			if tt.withdraw {
				svc.EXPECT().WithdrawAll(mock.Anything).Return(tt.err)
				h.WithdrawAll(rec, httptest.NewRequest(http.MethodPost, "/consents/withdraw-all", nil))
			} else {
				svc.EXPECT().GiveAll(mock.Anything).Return(tt.err)
				h.GiveAll(rec, httptest.NewRequest(http.MethodPost, "/consents/give-all", nil))
			}

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}

// --- ToggleBanner ---

func TestToggleBanner_Dismiss(t *testing.T) {
	t.Parallel()
	h, svc := newConsentHandler(t)

	svc.EXPECT().ToggleBannerDismissed(true).Return()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/consents/banner", jsonBody(t, map[string]bool{"dismissed": true}))
	h.ToggleBanner(rec, req)

	requireStatus(t, rec, http.StatusAccepted)
}

func TestToggleBanner_MissingFlag(t *testing.T) {
	t.Parallel()
	h, _ := newConsentHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/consents/banner", jsonBody(t, map[string]any{}))
	h.ToggleBanner(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if len(resp.Errors) != 1 || resp.Errors[0].Location != "body.dismissed" {
		t.Errorf("Errors = %+v, want body.dismissed", resp.Errors)
	}
}

func TestToggleBanner_InvalidJSON(t *testing.T) {
	t.Parallel()
	h, _ := newConsentHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/consents/banner", bytes.NewBufferString("{"))
	h.ToggleBanner(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- ResetUserProcess ---

func TestResetUserProcess(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		process    string
		query      string
		setup      func(svc *mocks.MockConsentService)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "loaded consents",
			process:    "load",
			setup:      func(svc *mocks.MockConsentService) { svc.EXPECT().ResetUserConsents().Return() },
			wantStatus: http.StatusAccepted,
		},
		{
			name:       "one give",
			process:    "give",
			query:      "?id=MARKETING",
			setup:      func(svc *mocks.MockConsentService) { svc.EXPECT().ResetGiveUserConsentProcess("MARKETING").Return() },
			wantStatus: http.StatusAccepted,
		},
		{
			name:       "every withdraw",
			process:    "withdraw",
			setup:      func(svc *mocks.MockConsentService) { svc.EXPECT().ResetWithdrawUserConsentProcess("").Return() },
			wantStatus: http.StatusAccepted,
		},
		{
			name:       "unknown process",
			process:    "transfer",
			wantStatus: http.StatusBadRequest,
			wantBody:   "must be one of give, load, withdraw",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newConsentHandler(t)
			if tt.setup != nil {
				tt.setup(svc)
			}

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodDelete, "/consents/user/processes/"+tt.process+tt.query, nil)
			req = withChiParams(req, map[string]string{"process": tt.process})
			h.ResetUserProcess(rec, req)

			requireStatus(t, rec, tt.wantStatus)
			if tt.wantBody != "" && !bytes.Contains(rec.Body.Bytes(), []byte(tt.wantBody)) {
				t.Errorf("body = %s, want it to contain %q", rec.Body.String(), tt.wantBody)
			}
		})
	}
}
