package store

import (
	"slices"

	"github.com/jsamuelsen11/go-storefront-state/internal/domain"
	"github.com/jsamuelsen11/go-storefront-state/internal/state/loader"
)

// Reduce folds a into s. seq is the dispatch sequence number and becomes the
// flight of any LOAD that a starts. Reduce performs no I/O.
func Reduce(s State, a Action, seq uint64) State {
	s.AnonymousConsents = reduceAnonymousConsents(s.AnonymousConsents, a, seq)
	s.User = reduceUser(s.User, a, seq)
	s.Cart = reduceCart(s.Cart, a, seq)
	s.Process = reduceProcess(s.Process, a, seq)
	s.Auth = reduceAuth(s.Auth, a)
	return s
}

// target returns the loader meta of a when it addresses entity.
func target(a Action, entity string, seq uint64) (loader.Meta, bool) {
	t, ok := a.(Targeted)
	if !ok {
		return loader.Meta{}, false
	}
	m := t.Target()
	if m.Entity != entity {
		return loader.Meta{}, false
	}
	if m.Phase == loader.PhaseLoad {
		m.Flight = seq
	}
	return m, true
}

func reduceAnonymousConsents(st AnonymousConsentsState, a Action, seq uint64) AnonymousConsentsState {
	wasLoading := st.Templates.Loading
	if m, ok := target(a, EntityAnonymousTemplates, seq); ok {
		var value []domain.ConsentTemplate
		if s, ok := a.(LoadAnonymousTemplatesSuccess); ok {
			value = s.Templates
		}
		st.Templates = loader.Reduce(st.Templates, m, value)
	}

	switch act := a.(type) {
	case LoadAnonymousTemplatesSuccess:
		if wasLoading && st.Templates.Success {
			st.Consents = withTemplateConsents(st.Consents, act.Templates)
		}
	case SetAnonymousConsents:
		st.Consents = slices.Clone(act.Consents)
	case GiveAnonymousConsent:
		st.Consents = withConsentState(st.Consents, act.TemplateCode, domain.ConsentGiven)
	case WithdrawAnonymousConsent:
		st.Consents = withConsentState(st.Consents, act.TemplateCode, domain.ConsentWithdrawn)
	case ToggleBannerVisibility:
		st.UI.BannerVisible = act.Visible
	case ToggleTemplatesUpdated:
		st.UI.Updated = act.Updated
	}

	return st
}

// withConsentState returns a copy of consents with templateCode set to
// status, appending an entry when none exists.
func withConsentState(consents []domain.AnonymousConsent, templateCode string, status domain.ConsentStatus) []domain.AnonymousConsent {
	next := make([]domain.AnonymousConsent, len(consents), len(consents)+1)
	copy(next, consents)

	for i := range next {
		if next[i].TemplateCode == templateCode {
			next[i].ConsentState = status
			return next
		}
	}

	return append(next, domain.AnonymousConsent{TemplateCode: templateCode, ConsentState: status})
}

// withTemplateConsents appends an undecided entry for every template that
// has none.
func withTemplateConsents(consents []domain.AnonymousConsent, templates []domain.ConsentTemplate) []domain.AnonymousConsent {
	var missing []domain.AnonymousConsent
	for _, t := range templates {
		if _, ok := domain.FindConsent(consents, t.ID); !ok {
			missing = append(missing, domain.AnonymousConsent{TemplateCode: t.ID, Version: t.Version})
		}
	}
	if len(missing) == 0 {
		return consents
	}
	return append(slices.Clone(consents), missing...)
}

func reduceUser(st UserState, a Action, seq uint64) UserState {
	if m, ok := target(a, EntityUserConsents, seq); ok {
		var value []domain.ConsentTemplate
		if s, ok := a.(LoadUserConsentsSuccess); ok {
			value = s.Consents
		}
		st.Consents = loader.Reduce(st.Consents, m, value)
	}

	switch act := a.(type) {
	case GiveUserConsentSuccess:
		st.Consents.Value = withTemplate(st.Consents.Value, act.Template)
	case Logout:
		return UserState{}
	}

	return st
}

// withTemplate returns a copy of templates with the entry matching t.ID
// replaced. Unknown templates are ignored.
func withTemplate(templates []domain.ConsentTemplate, t domain.ConsentTemplate) []domain.ConsentTemplate {
	i := slices.IndexFunc(templates, func(c domain.ConsentTemplate) bool { return c.ID == t.ID })
	if i < 0 {
		return templates
	}
	next := slices.Clone(templates)
	next[i] = t
	return next
}

func reduceCart(st CartState, a Action, seq uint64) CartState {
	if m, ok := target(a, EntityCart, seq); ok {
		var value domain.Cart
		switch s := a.(type) {
		case LoadCartSuccess:
			value = s.Cart
		case CreateCartSuccess:
			value = s.Cart
		}
		started := m.Phase == loader.PhaseLoad && !st.Active.Loading
		st.Active = loader.Reduce(st.Active, m, value)
		if started {
			st.Refresh = false
		}
	}

	switch act := a.(type) {
	case MergeCart:
		st.MergeComplete = false
	case MergeCartSuccess:
		st.MergeComplete = true
	case DeleteCart:
		st.Active = loader.State[domain.Cart]{}
	case AddEntrySuccess, UpdateEntrySuccess, RemoveEntrySuccess,
		AddVoucherSuccess, RemoveVoucherSuccess, AddEmailSuccess:
		st.Refresh = true
		st.LastError = nil
	case AddEntryFail:
		st.Refresh, st.LastError = true, act.Error
	case UpdateEntryFail:
		st.Refresh, st.LastError = true, act.Error
	case RemoveEntryFail:
		st.Refresh, st.LastError = true, act.Error
	case ClearCart, Logout:
		return CartState{}
	}

	return st
}

func reduceProcess(r loader.Registry[struct{}], a Action, seq uint64) loader.Registry[struct{}] {
	if _, ok := a.(Logout); ok {
		return loader.Registry[struct{}]{}
	}
	if m, ok := target(a, EntityProcess, seq); ok {
		if m.Phase == loader.PhaseReset && processKind(m.ID) == m.ID {
			return r.DeleteFunc(func(key string) bool { return processKind(key) == m.ID })
		}
		return r.Apply(m, struct{}{})
	}
	return r
}

func reduceAuth(st AuthState, a Action) AuthState {
	switch act := a.(type) {
	case SessionStarted:
		st.UserID = act.UserID
	case LoginSuccess:
		st.UserID = act.UserID
		st.Registered = false
	case RegisterUserSuccess:
		st.Registered = true
	case Logout:
		return AuthState{UserID: domain.UserAnonymous}
	}
	return st
}
