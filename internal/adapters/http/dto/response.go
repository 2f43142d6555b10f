// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/jsamuelsen11/go-storefront-state/internal/domain"
	"github.com/jsamuelsen11/go-storefront-state/internal/state/loader"
	"github.com/jsamuelsen11/go-storefront-state/internal/state/store"
)

// Loader phases as rendered to clients.
const (
	PhaseIdle    = "idle"
	PhaseLoading = "loading"
	PhaseSuccess = "success"
	PhaseError   = "error"
)

// EntryResponse represents a single cart line in HTTP responses.
type EntryResponse struct {
	EntryNumber int    `json:"entryNumber"`
	ProductCode string `json:"productCode"`
	ProductName string `json:"productName,omitempty"`
	Quantity    int    `json:"quantity"`
}

// CartResponse represents the active cart in HTTP responses.
type CartResponse struct {
	Code       string          `json:"code,omitempty"`
	GUID       string          `json:"guid,omitempty"`
	Owner      string          `json:"owner,omitempty"`
	Entries    []EntryResponse `json:"entries"`
	TotalItems int             `json:"totalItems"`
	TotalPrice string          `json:"totalPrice,omitempty"`
	Vouchers   []string        `json:"vouchers"`
}

// ToCartResponse converts a domain Cart to an HTTP response DTO.
func ToCartResponse(c *domain.Cart) CartResponse {
	resp := CartResponse{
		Code:     c.Code,
		GUID:     c.GUID,
		Entries:  make([]EntryResponse, len(c.Entries)),
		Vouchers: make([]string, 0, len(c.AppliedVouchers)),
	}
	if c.User != nil {
		resp.Owner = c.User.UID
	}
	for i, e := range c.Entries {
		resp.Entries[i] = EntryResponse{
			EntryNumber: e.EntryNumber,
			ProductCode: e.Product.Code,
			ProductName: e.Product.Name,
			Quantity:    e.Quantity,
		}
	}
	if c.TotalItems != nil {
		resp.TotalItems = *c.TotalItems
	} else {
		for _, e := range c.Entries {
			resp.TotalItems += e.Quantity
		}
	}
	if c.TotalPrice != nil {
		resp.TotalPrice = c.TotalPrice.FormattedValue
	}
	for _, v := range c.AppliedVouchers {
		resp.Vouchers = append(resp.Vouchers, v.Code)
	}
	return resp
}

// ConsentResponse represents one anonymous consent template together with
// the visitor's decision for it.
type ConsentResponse struct {
	TemplateCode string `json:"templateCode"`
	Name         string `json:"name,omitempty"`
	Description  string `json:"description,omitempty"`
	Version      int    `json:"version"`
	State        string `json:"state,omitempty"`
}

// ConsentListResponse represents the consent banner contents.
type ConsentListResponse struct {
	Consents      []ConsentResponse `json:"consents"`
	BannerVisible bool              `json:"bannerVisible"`
}

// ToConsentListResponse joins templates with the visitor's decisions.
// Templates without a decision are listed as undecided.
func ToConsentListResponse(
	templates []domain.ConsentTemplate,
	consents []domain.AnonymousConsent,
	bannerVisible bool,
) ConsentListResponse {
	items := make([]ConsentResponse, len(templates))
	for i, t := range templates {
		items[i] = ConsentResponse{
			TemplateCode: t.ID,
			Name:         t.Name,
			Description:  t.Description,
			Version:      t.Version,
		}
		if c, ok := domain.FindConsent(consents, t.ID); ok {
			items[i].State = string(c.ConsentState)
		}
	}
	return ConsentListResponse{Consents: items, BannerVisible: bannerVisible}
}

// ProcessResponse represents one in-flight or settled command.
type ProcessResponse struct {
	ID    string `json:"id"`
	Phase string `json:"phase"`
}

// StateResponse is the tab's state as rendered by GET /state.
type StateResponse struct {
	TabID         string            `json:"tabId"`
	UserID        string            `json:"userId"`
	LoggedIn      bool              `json:"loggedIn"`
	BannerVisible bool              `json:"bannerVisible"`
	Templates     string            `json:"templates"`
	Consents      []ConsentResponse `json:"consents"`
	Cart          CartResponse      `json:"cart"`
	CartPhase     string            `json:"cartPhase"`
	CartStable    bool              `json:"cartStable"`
	MergeComplete bool              `json:"mergeComplete"`
	Processes     []ProcessResponse `json:"processes"`
}

// ToStateResponse renders st for the tab identified by tabID.
func ToStateResponse(tabID string, st store.State) StateResponse {
	cart := store.ActiveCart(st)
	resp := StateResponse{
		TabID:         tabID,
		UserID:        store.UserID(st),
		LoggedIn:      store.IsUserLoggedIn(st),
		BannerVisible: store.BannerVisible(st),
		Templates:     phase(st.AnonymousConsents.Templates),
		Consents:      ToConsentListResponse(st.AnonymousConsents.Templates.Value, st.AnonymousConsents.Consents, false).Consents,
		Cart:          ToCartResponse(&cart),
		CartPhase:     phase(st.Cart.Active),
		CartStable:    store.CartStable(st),
		MergeComplete: st.Cart.MergeComplete,
	}

	keys := st.Process.Keys()
	resp.Processes = make([]ProcessResponse, len(keys))
	for i, k := range keys {
		resp.Processes[i] = ProcessResponse{ID: k, Phase: phase(st.Process.Get(k))}
	}
	return resp
}

func phase[T any](s loader.State[T]) string {
	switch {
	case s.Loading:
		return PhaseLoading
	case s.Failed():
		return PhaseError
	case s.Success:
		return PhaseSuccess
	default:
		return PhaseIdle
	}
}
