package handlers

import (
	"net/http"
	"strings"

	"github.com/jsamuelsen11/go-storefront-state/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-storefront-state/internal/ports"
)

// CartHandler handles HTTP requests for the active cart.
type CartHandler struct {
	svc ports.CartService
}

// NewCartHandler creates a new CartHandler with the given service port.
func NewCartHandler(svc ports.CartService) *CartHandler {
	return &CartHandler{svc: svc}
}

// GetCart handles GET /cart.
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.svc.Active(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToCartResponse(&cart))
}

// AddEntry handles POST /cart/entries.
func (h *CartHandler) AddEntry(w http.ResponseWriter, r *http.Request) {
	var req dto.AddEntryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.svc.AddEntry(r.Context(), strings.TrimSpace(req.ProductCode), req.Quantity); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	accepted(w)
}

// UpdateEntry handles PATCH /cart/entries/{entryNumber}.
func (h *CartHandler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	n, err := parseEntryNumber(r, "entryNumber")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateEntryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.svc.UpdateEntry(r.Context(), n, *req.Quantity); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	accepted(w)
}

// RemoveEntry handles DELETE /cart/entries/{entryNumber}.
func (h *CartHandler) RemoveEntry(w http.ResponseWriter, r *http.Request) {
	n, err := parseEntryNumber(r, "entryNumber")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.RemoveEntry(r.Context(), n); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	accepted(w)
}

// AddVoucher handles POST /cart/vouchers.
func (h *CartHandler) AddVoucher(w http.ResponseWriter, r *http.Request) {
	var req dto.VoucherRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.svc.AddVoucher(r.Context(), strings.TrimSpace(req.VoucherID)); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	accepted(w)
}

// RemoveVoucher handles DELETE /cart/vouchers/{voucherId}.
func (h *CartHandler) RemoveVoucher(w http.ResponseWriter, r *http.Request) {
	id, err := requireParam(r, "voucherId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.RemoveVoucher(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	accepted(w)
}

// ResetProcess handles DELETE /cart/processes/{process}. The optional id
// query parameter limits the reset to one voucher.
func (h *CartHandler) ResetProcess(w http.ResponseWriter, r *http.Request) {
	reset, err := processReset(r, map[string]func(string){
		"add-voucher":    h.svc.ResetAddVoucherProcess,
		"remove-voucher": h.svc.ResetRemoveVoucherProcess,
	})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	reset(r.URL.Query().Get("id"))
	accepted(w)
}

// AddEmail handles PUT /cart/email.
func (h *CartHandler) AddEmail(w http.ResponseWriter, r *http.Request) {
	var req dto.EmailRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.svc.AddEmail(r.Context(), req.Email); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	accepted(w)
}
