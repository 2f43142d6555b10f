package store

import (
	"github.com/jsamuelsen11/go-storefront-state/internal/domain"
	"github.com/jsamuelsen11/go-storefront-state/internal/state/loader"
)

// Feature names, also the top-level keys of the persisted snapshot.
const (
	FeatureAnonymousConsents = "anonymous-consents"
	FeatureCart              = "cart"
)

// State is the full state tree of one tab. It is a value: reducers return a
// new State and never mutate slices or maps reachable from the previous one.
type State struct {
	AnonymousConsents AnonymousConsentsState    `json:"anonymous-consents"`
	Cart              CartState                 `json:"cart"`
	User              UserState                 `json:"user"`
	Process           loader.Registry[struct{}] `json:"process"`
	Auth              AuthState                 `json:"auth"`
}

type AnonymousConsentsState struct {
	Templates loader.State[[]domain.ConsentTemplate] `json:"templates"`
	Consents  []domain.AnonymousConsent             `json:"consents"`
	UI        ConsentsUI                             `json:"ui"`
}

type ConsentsUI struct {
	BannerVisible bool `json:"bannerVisible"`
	Updated       bool `json:"updated"`
}

type CartState struct {
	Active loader.State[domain.Cart] `json:"active"`
	// Refresh is set by entry, voucher and e-mail changes and cleared when a
	// new cart load starts. A load that settles with Refresh still set is
	// stale and gets re-issued.
	Refresh       bool                 `json:"refresh"`
	MergeComplete bool                 `json:"cartMergeComplete"`
	LastError     *domain.ErrorPayload `json:"lastError,omitempty"`
}

type UserState struct {
	Consents loader.State[[]domain.ConsentTemplate] `json:"consents"`
}

type AuthState struct {
	// UserID is empty until the session starts, then "anonymous" or a
	// concrete identity.
	UserID     string `json:"userId"`
	Registered bool   `json:"registered"`
}

// Initial returns the state a tab starts from.
func Initial() State {
	return State{
		AnonymousConsents: AnonymousConsentsState{
			UI: ConsentsUI{BannerVisible: true},
		},
	}
}

// IsLoading reports whether the loader slot m addresses is loading.
func (s State) IsLoading(m loader.Meta) bool {
	switch m.Entity {
	case EntityAnonymousTemplates:
		return s.AnonymousConsents.Templates.Loading
	case EntityUserConsents:
		return s.User.Consents.Loading
	case EntityCart:
		return s.Cart.Active.Loading
	case EntityProcess:
		return s.Process.Get(m.ID).Loading
	default:
		return false
	}
}
