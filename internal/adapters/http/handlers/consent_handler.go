package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/go-storefront-state/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-storefront-state/internal/ports"
)

// ConsentHandler handles HTTP requests for the anonymous consent banner.
type ConsentHandler struct {
	svc ports.ConsentService
}

// NewConsentHandler creates a new ConsentHandler with the given service port.
func NewConsentHandler(svc ports.ConsentService) *ConsentHandler {
	return &ConsentHandler{svc: svc}
}

// ListConsents handles GET /consents.
func (h *ConsentHandler) ListConsents(w http.ResponseWriter, r *http.Request) {
	templates, err := h.svc.Templates(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToConsentListResponse(templates, h.svc.Consents(), h.svc.IsBannerVisible()))
}

// GiveConsent handles POST /consents/{code}/give.
func (h *ConsentHandler) GiveConsent(w http.ResponseWriter, r *http.Request) {
	code, err := requireParam(r, "code")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	h.svc.Give(code)
	accepted(w)
}

// WithdrawConsent handles POST /consents/{code}/withdraw.
func (h *ConsentHandler) WithdrawConsent(w http.ResponseWriter, r *http.Request) {
	code, err := requireParam(r, "code")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	h.svc.Withdraw(code)
	accepted(w)
}

// GiveAll handles POST /consents/give-all.
func (h *ConsentHandler) GiveAll(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.GiveAll(r.Context()); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	accepted(w)
}

// WithdrawAll handles POST /consents/withdraw-all.
func (h *ConsentHandler) WithdrawAll(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.WithdrawAll(r.Context()); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	accepted(w)
}

// ToggleBanner handles POST /consents/banner.
func (h *ConsentHandler) ToggleBanner(w http.ResponseWriter, r *http.Request) {
	var req dto.BannerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	h.svc.ToggleBannerDismissed(*req.Dismissed)
	accepted(w)
}

// ResetUserProcess handles DELETE /consents/user/processes/{process}: load
// forgets the loaded user consents, give and withdraw clear a command outcome,
// limited to one template or consent by the optional id query parameter.
func (h *ConsentHandler) ResetUserProcess(w http.ResponseWriter, r *http.Request) {
	reset, err := processReset(r, map[string]func(string){
		"load":     func(string) { h.svc.ResetUserConsents() },
		"give":     h.svc.ResetGiveUserConsentProcess,
		"withdraw": h.svc.ResetWithdrawUserConsentProcess,
	})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	reset(r.URL.Query().Get("id"))
	accepted(w)
}
