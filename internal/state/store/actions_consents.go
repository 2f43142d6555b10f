package store

import (
	"github.com/jsamuelsen11/go-storefront-state/internal/domain"
	"github.com/jsamuelsen11/go-storefront-state/internal/state/loader"
)

// Anonymous consent actions.
type (
	LoadAnonymousTemplates        struct{}
	LoadAnonymousTemplatesSuccess struct {
		Templates []domain.ConsentTemplate
		Flight    uint64
	}
	LoadAnonymousTemplatesFail struct {
		Error  *domain.ErrorPayload
		Flight uint64
	}
	ResetLoadAnonymousTemplates struct{}

	SetAnonymousConsents     struct{ Consents []domain.AnonymousConsent }
	GiveAnonymousConsent     struct{ TemplateCode string }
	WithdrawAnonymousConsent struct{ TemplateCode string }
	ToggleBannerVisibility   struct{ Visible bool }
	ToggleTemplatesUpdated   struct{ Updated bool }

	// TransferAnonymousConsent gives a registered user the consent the
	// visitor had given before registering.
	TransferAnonymousConsent struct {
		UserID     string
		TemplateID string
		Version    int
	}
)

func (LoadAnonymousTemplates) Kind() Kind {
	return "[Anonymous Consents] Load Anonymous Consent Templates"
}

func (LoadAnonymousTemplatesSuccess) Kind() Kind {
	return "[Anonymous Consents] Load Anonymous Consent Templates Success"
}

func (LoadAnonymousTemplatesFail) Kind() Kind {
	return "[Anonymous Consents] Load Anonymous Consent Templates Fail"
}

func (ResetLoadAnonymousTemplates) Kind() Kind {
	return "[Anonymous Consents] Reset Load Anonymous Consent Templates"
}

func (SetAnonymousConsents) Kind() Kind     { return "[Anonymous Consents] Set Anonymous Consents" }
func (GiveAnonymousConsent) Kind() Kind     { return "[Anonymous Consents] Give Anonymous Consent" }
func (WithdrawAnonymousConsent) Kind() Kind { return "[Anonymous Consents] Withdraw Anonymous Consent" }
func (ToggleBannerVisibility) Kind() Kind {
	return "[Anonymous Consents] Toggle Anonymous Consents Banner Visibility"
}

func (ToggleTemplatesUpdated) Kind() Kind {
	return "[Anonymous Consents] Anonymous Consent Templates Updated"
}
func (TransferAnonymousConsent) Kind() Kind { return "[Anonymous Consents] Transfer Anonymous Consent" }

func (LoadAnonymousTemplates) Target() loader.Meta {
	return slot(EntityAnonymousTemplates, loader.PhaseLoad)
}

func (a LoadAnonymousTemplatesSuccess) Target() loader.Meta {
	m := slot(EntityAnonymousTemplates, loader.PhaseSuccess)
	m.Flight = a.Flight
	return m
}

func (a LoadAnonymousTemplatesFail) Target() loader.Meta {
	m := slot(EntityAnonymousTemplates, loader.PhaseFail)
	m.Error, m.Flight = a.Error, a.Flight
	return m
}

func (ResetLoadAnonymousTemplates) Target() loader.Meta {
	return slot(EntityAnonymousTemplates, loader.PhaseReset)
}

// User consent actions.
type (
	LoadUserConsents        struct{ UserID string }
	LoadUserConsentsSuccess struct {
		Consents []domain.ConsentTemplate
		Flight   uint64
	}
	LoadUserConsentsFail struct {
		Error  *domain.ErrorPayload
		Flight uint64
	}
	ResetLoadUserConsents struct{}

	GiveUserConsent struct {
		UserID     string
		TemplateID string
		Version    int
	}
	GiveUserConsentSuccess struct {
		TemplateID string
		Template   domain.ConsentTemplate
		Flight     uint64
	}
	GiveUserConsentFail struct {
		TemplateID string
		Error      *domain.ErrorPayload
		Flight     uint64
	}
	// ResetGiveUserConsentProcess clears the give process of TemplateID, or
	// of every template when TemplateID is empty.
	ResetGiveUserConsentProcess struct{ TemplateID string }

	WithdrawUserConsent struct {
		UserID      string
		ConsentCode string
	}
	WithdrawUserConsentSuccess struct {
		ConsentCode string
		Flight      uint64
	}
	WithdrawUserConsentFail struct {
		ConsentCode string
		Error       *domain.ErrorPayload
		Flight      uint64
	}
	// ResetWithdrawUserConsentProcess clears the withdraw process of
	// ConsentCode, or of every consent when ConsentCode is empty.
	ResetWithdrawUserConsentProcess struct{ ConsentCode string }
)

func (LoadUserConsents) Kind() Kind                { return "[User] Load User Consents" }
func (LoadUserConsentsSuccess) Kind() Kind         { return "[User] Load User Consents Success" }
func (LoadUserConsentsFail) Kind() Kind            { return "[User] Load User Consents Fail" }
func (ResetLoadUserConsents) Kind() Kind           { return "[User] Reset Load User Consents" }
func (GiveUserConsent) Kind() Kind                 { return "[User] Give User Consent" }
func (GiveUserConsentSuccess) Kind() Kind          { return "[User] Give User Consent Success" }
func (GiveUserConsentFail) Kind() Kind             { return "[User] Give User Consent Fail" }
func (ResetGiveUserConsentProcess) Kind() Kind     { return "[User] Reset Give User Consent Process" }
func (WithdrawUserConsent) Kind() Kind             { return "[User] Withdraw User Consent" }
func (WithdrawUserConsentSuccess) Kind() Kind      { return "[User] Withdraw User Consent Success" }
func (WithdrawUserConsentFail) Kind() Kind         { return "[User] Withdraw User Consent Fail" }
func (ResetWithdrawUserConsentProcess) Kind() Kind { return "[User] Reset Withdraw User Consent Process" }

func (LoadUserConsents) Target() loader.Meta { return slot(EntityUserConsents, loader.PhaseLoad) }

func (a LoadUserConsentsSuccess) Target() loader.Meta {
	m := slot(EntityUserConsents, loader.PhaseSuccess)
	m.Flight = a.Flight
	return m
}

func (a LoadUserConsentsFail) Target() loader.Meta {
	m := slot(EntityUserConsents, loader.PhaseFail)
	m.Error, m.Flight = a.Error, a.Flight
	return m
}

func (ResetLoadUserConsents) Target() loader.Meta { return slot(EntityUserConsents, loader.PhaseReset) }

func (a GiveUserConsent) Target() loader.Meta {
	return process(ProcessKey(ProcessGiveConsent, a.TemplateID), loader.PhaseLoad)
}

func (a GiveUserConsentSuccess) Target() loader.Meta {
	m := process(ProcessKey(ProcessGiveConsent, a.TemplateID), loader.PhaseSuccess)
	m.Flight = a.Flight
	return m
}

func (a GiveUserConsentFail) Target() loader.Meta {
	m := process(ProcessKey(ProcessGiveConsent, a.TemplateID), loader.PhaseFail)
	m.Error, m.Flight = a.Error, a.Flight
	return m
}

func (a ResetGiveUserConsentProcess) Target() loader.Meta {
	return process(ProcessKey(ProcessGiveConsent, a.TemplateID), loader.PhaseReset)
}

func (a WithdrawUserConsent) Target() loader.Meta {
	return process(ProcessKey(ProcessWithdrawConsent, a.ConsentCode), loader.PhaseLoad)
}

func (a WithdrawUserConsentSuccess) Target() loader.Meta {
	m := process(ProcessKey(ProcessWithdrawConsent, a.ConsentCode), loader.PhaseSuccess)
	m.Flight = a.Flight
	return m
}

func (a WithdrawUserConsentFail) Target() loader.Meta {
	m := process(ProcessKey(ProcessWithdrawConsent, a.ConsentCode), loader.PhaseFail)
	m.Error, m.Flight = a.Error, a.Flight
	return m
}

func (a ResetWithdrawUserConsentProcess) Target() loader.Meta {
	return process(ProcessKey(ProcessWithdrawConsent, a.ConsentCode), loader.PhaseReset)
}
