package store

import (
	"slices"

	"github.com/jsamuelsen11/go-storefront-state/internal/domain"
)

// Derived queries over State. They are pure and safe to use with Select.

// BannerVisible reports whether the consent banner should be shown: either it
// was never dismissed or the templates changed since it was.
func BannerVisible(st State) bool {
	ui := st.AnonymousConsents.UI
	return ui.BannerVisible || ui.Updated
}

// AnonymousConsent returns the visitor's entry for templateCode.
func AnonymousConsent(st State, templateCode string) (domain.AnonymousConsent, bool) {
	return domain.FindConsent(st.AnonymousConsents.Consents, templateCode)
}

// AnonymousTemplate returns the anonymous consent template with id.
func AnonymousTemplate(st State, id string) (domain.ConsentTemplate, bool) {
	templates := st.AnonymousConsents.Templates.Value
	i := slices.IndexFunc(templates, func(t domain.ConsentTemplate) bool { return t.ID == id })
	if i < 0 {
		return domain.ConsentTemplate{}, false
	}
	return templates[i], true
}

// ActiveCart returns the active cart value.
func ActiveCart(st State) domain.Cart {
	return st.Cart.Active.Value
}

// CartStable reports whether the cart is loaded and no change is pending.
func CartStable(st State) bool {
	c := st.Cart
	return !c.Active.Loading && !c.Refresh
}

// UserID returns the session identity.
func UserID(st State) string {
	return st.Auth.UserID
}

// IsUserLoggedIn reports whether the session belongs to a concrete user.
func IsUserLoggedIn(st State) bool {
	return domain.IsConcreteUser(st.Auth.UserID)
}

// ProcessLoading, ProcessSuccess and ProcessError expose one process slot.
// id is a bare kind or a ProcessKey.
func ProcessLoading(st State, id string) bool { return st.Process.Get(id).Loading }
func ProcessSuccess(st State, id string) bool { return st.Process.Get(id).Success }
func ProcessError(st State, id string) bool   { return st.Process.Get(id).Failed() }

// CartUserID returns the backend user id cart calls are made for: the
// session identity once logged in, anonymous otherwise.
func CartUserID(st State) string {
	if IsUserLoggedIn(st) {
		return st.Auth.UserID
	}
	return domain.UserAnonymous
}

// ActiveCartID returns the id of the active cart for the current owner,
// domain.CartCurrent when the cart has not been created.
func ActiveCartID(st State) string {
	c := st.Cart.Active.Value
	if !c.IsCreated() {
		return domain.CartCurrent
	}
	if id := c.ID(CartUserID(st)); id != "" {
		return id
	}
	return domain.CartCurrent
}
