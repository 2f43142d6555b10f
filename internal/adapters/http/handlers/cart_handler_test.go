package handlers_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/go-storefront-state/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-storefront-state/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-storefront-state/internal/domain"
	"github.com/jsamuelsen11/go-storefront-state/mocks"
)

func newCartHandler(t *testing.T) (*handlers.CartHandler, *mocks.MockCartService) {
	t.Helper()
	svc := mocks.NewMockCartService(t)
	return handlers.NewCartHandler(svc), svc
}

// --- GetCart ---

func TestGetCart_Success(t *testing.T) {
	t.Parallel()
	h, svc := newCartHandler(t)

	svc.EXPECT().Active(mock.Anything).Return(validCart(), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	h.GetCart(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.CartResponse](t, rec)
	if resp.Code != "00001234" {
		t.Errorf("Code = %q, want %q", resp.Code, "00001234")
	}
	if resp.TotalItems != 2 {
		t.Errorf("TotalItems = %d, want 2", resp.TotalItems)
	}
}

func TestGetCart_Timeout(t *testing.T) {
	t.Parallel()
	h, svc := newCartHandler(t)

	svc.EXPECT().Active(mock.Anything).Return(domain.Cart{}, fmt.Errorf("loading active cart: %w", context.DeadlineExceeded))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	h.GetCart(rec, req)

	requireStatus(t, rec, http.StatusGatewayTimeout)
}

// --- AddEntry ---

func TestAddEntry_Accepted(t *testing.T) {
	t.Parallel()
	h, svc := newCartHandler(t)

	svc.EXPECT().AddEntry(mock.Anything, "300938", 2).Return(nil)

	rec := httptest.NewRecorder()
	body := jsonBody(t, map[string]any{"productCode": " 300938 ", "quantity": 2})
	h.AddEntry(rec, httptest.NewRequest(http.MethodPost, "/cart/entries", body))

	requireStatus(t, rec, http.StatusAccepted)
}

func TestAddEntry_ValidationError(t *testing.T) {
	t.Parallel()
	h, _ := newCartHandler(t)

	rec := httptest.NewRecorder()
	body := jsonBody(t, map[string]any{"quantity": 0})
	h.AddEntry(rec, httptest.NewRequest(http.MethodPost, "/cart/entries", body))

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if len(resp.Errors) != 2 {
		t.Errorf("len(Errors) = %d, want 2", len(resp.Errors))
	}
}

func TestAddEntry_NoCart(t *testing.T) {
	t.Parallel()
	h, svc := newCartHandler(t)

	svc.EXPECT().AddEntry(mock.Anything, "300938", 1).
		Return(&domain.BackendError{Status: 503, Message: "maintenance", Kind: domain.ErrUnavailable})

	rec := httptest.NewRecorder()
	body := jsonBody(t, map[string]any{"productCode": "300938", "quantity": 1})
	h.AddEntry(rec, httptest.NewRequest(http.MethodPost, "/cart/entries", body))

	requireStatus(t, rec, http.StatusBadGateway)
}

// --- UpdateEntry / RemoveEntry ---

func TestUpdateEntry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		param      string
		body       any
		setup      func(svc *mocks.MockCartService)
		wantStatus int
	}{
		{
			name:  "sets quantity",
			param: "1",
			body:  map[string]int{"quantity": 4},
			setup: func(svc *mocks.MockCartService) {
				svc.EXPECT().UpdateEntry(mock.Anything, 1, 4).Return(nil)
			},
			wantStatus: http.StatusAccepted,
		},
		{
			name:  "zero is passed through",
			param: "0",
			body:  map[string]int{"quantity": 0},
			setup: func(svc *mocks.MockCartService) {
				svc.EXPECT().UpdateEntry(mock.Anything, 0, 0).Return(nil)
			},
			wantStatus: http.StatusAccepted,
		},
		{
			name:       "invalid entry number",
			param:      "abc",
			body:       map[string]int{"quantity": 1},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "negative entry number",
			param:      "-1",
			body:       map[string]int{"quantity": 1},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing quantity",
			param:      "1",
			body:       map[string]int{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:  "login in progress",
			param: "1",
			body:  map[string]int{"quantity": 2},
			setup: func(svc *mocks.MockCartService) {
				svc.EXPECT().UpdateEntry(mock.Anything, 1, 2).Return(domain.ErrConflict)
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newCartHandler(t)
			if tt.setup != nil {
				tt.setup(svc)
			}

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPatch, "/cart/entries/"+tt.param, jsonBody(t, tt.body))
			req = withChiParams(req, map[string]string{"entryNumber": tt.param})
			h.UpdateEntry(rec, req)

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}

func TestRemoveEntry_Accepted(t *testing.T) {
	t.Parallel()
	h, svc := newCartHandler(t)

	svc.EXPECT().RemoveEntry(mock.Anything, 3).Return(nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/cart/entries/3", nil)
	req = withChiParams(req, map[string]string{"entryNumber": "3"})
	h.RemoveEntry(rec, req)

	requireStatus(t, rec, http.StatusAccepted)
}

// --- Vouchers ---

func TestAddVoucher_Accepted(t *testing.T) {
	t.Parallel()
	h, svc := newCartHandler(t)

	svc.EXPECT().AddVoucher(mock.Anything, "SUMMER10").Return(nil)

	rec := httptest.NewRecorder()
	body := jsonBody(t, map[string]string{"voucherId": "SUMMER10"})
	h.AddVoucher(rec, httptest.NewRequest(http.MethodPost, "/cart/vouchers", body))

	requireStatus(t, rec, http.StatusAccepted)
}

func TestAddVoucher_Missing(t *testing.T) {
	t.Parallel()
	h, _ := newCartHandler(t)

	rec := httptest.NewRecorder()
	body := jsonBody(t, map[string]string{})
	h.AddVoucher(rec, httptest.NewRequest(http.MethodPost, "/cart/vouchers", body))

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestRemoveVoucher_Accepted(t *testing.T) {
	t.Parallel()
	h, svc := newCartHandler(t)

	svc.EXPECT().RemoveVoucher(mock.Anything, "SUMMER10").Return(nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/cart/vouchers/SUMMER10", nil)
	req = withChiParams(req, map[string]string{"voucherId": "SUMMER10"})
	h.RemoveVoucher(rec, req)

	requireStatus(t, rec, http.StatusAccepted)
}

// --- AddEmail ---

func TestAddEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		email      string
		err        error
		wantCall   bool
		wantStatus int
	}{
		{name: "guest cart", email: "jane@example.com", wantCall: true, wantStatus: http.StatusAccepted},
		{name: "user cart", email: "jane@example.com", err: domain.ErrConflict, wantCall: true, wantStatus: http.StatusConflict},
		{name: "malformed address", email: "jane", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newCartHandler(t)
			if tt.wantCall {
				svc.EXPECT().AddEmail(mock.Anything, tt.email).Return(tt.err)
			}

			rec := httptest.NewRecorder()
			body := jsonBody(t, map[string]string{"email": tt.email})
			h.AddEmail(rec, httptest.NewRequest(http.MethodPut, "/cart/email", body))

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}

// --- ResetProcess ---

func TestResetProcess(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		process    string
		query      string
		setup      func(svc *mocks.MockCartService)
		wantStatus int
	}{
		{
			name:       "one added voucher",
			process:    "add-voucher",
			query:      "?id=SUMMER10",
			setup:      func(svc *mocks.MockCartService) { svc.EXPECT().ResetAddVoucherProcess("SUMMER10").Return() },
			wantStatus: http.StatusAccepted,
		},
		{
			name:       "every removed voucher",
			process:    "remove-voucher",
			setup:      func(svc *mocks.MockCartService) { svc.EXPECT().ResetRemoveVoucherProcess("").Return() },
			wantStatus: http.StatusAccepted,
		},
		{
			name:       "unknown process",
			process:    "add-entry",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newCartHandler(t)
			if tt.setup != nil {
				tt.setup(svc)
			}

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodDelete, "/cart/processes/"+tt.process+tt.query, nil)
			req = withChiParams(req, map[string]string{"process": tt.process})
			h.ResetProcess(rec, req)

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}
