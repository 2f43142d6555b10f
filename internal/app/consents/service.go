// Package consents provides the anonymous consent facade: the commands a
// consent banner or management dialog issues and the queries it renders
// from. Commands are dispatched to the store; queries read its state.
package consents

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/jsamuelsen11/go-storefront-state/internal/domain"
	"github.com/jsamuelsen11/go-storefront-state/internal/ports"
	"github.com/jsamuelsen11/go-storefront-state/internal/state/store"
)

// Compile-time check that Service implements ports.ConsentService.
var _ ports.ConsentService = (*Service)(nil)

// Config lists the templates the facade treats specially.
type Config struct {
	// Required templates are given on the user's behalf and never withdrawn
	// by WithdrawAll.
	Required []string
	// Hidden templates are left out of Templates and Consents.
	Hidden []string
}

// Service implements ports.ConsentService on top of a store.
type Service struct {
	store  *store.Store
	cfg    Config
	logger *slog.Logger
}

// NewService creates a Service dispatching to s.
func NewService(s *store.Store, cfg Config, logger *slog.Logger) *Service {
	return &Service{store: s, cfg: cfg, logger: logger}
}

// Templates returns the visible anonymous consent templates, loading them
// first when they have not been loaded.
func (s *Service) Templates(ctx context.Context) ([]domain.ConsentTemplate, error) {
	templates, err := s.loadTemplates(ctx)
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(slices.Clone(templates), func(t domain.ConsentTemplate) bool {
		return s.hidden(t.ID)
	}), nil
}

// Consents returns the visitor's decisions for the visible templates.
func (s *Service) Consents() []domain.AnonymousConsent {
	consents := slices.Clone(s.store.State().AnonymousConsents.Consents)
	return slices.DeleteFunc(consents, func(c domain.AnonymousConsent) bool {
		return s.hidden(c.TemplateCode)
	})
}

// Consent returns the visitor's decision for templateCode.
func (s *Service) Consent(templateCode string) (domain.AnonymousConsent, bool) {
	return store.AnonymousConsent(s.store.State(), templateCode)
}

// IsConsentGiven reports whether the visitor gave templateCode.
func (s *Service) IsConsentGiven(templateCode string) bool {
	c, ok := s.Consent(templateCode)
	return ok && c.IsGiven()
}

// IsConsentWithdrawn reports whether the visitor withdrew templateCode.
func (s *Service) IsConsentWithdrawn(templateCode string) bool {
	c, ok := s.Consent(templateCode)
	return ok && c.IsWithdrawn()
}

// IsRequired reports whether templateCode is a required consent.
func (s *Service) IsRequired(templateCode string) bool {
	return slices.Contains(s.cfg.Required, templateCode)
}

func (s *Service) Give(templateCode string) {
	s.store.Dispatch(store.GiveAnonymousConsent{TemplateCode: templateCode})
}

func (s *Service) Withdraw(templateCode string) {
	s.store.Dispatch(store.WithdrawAnonymousConsent{TemplateCode: templateCode})
}

// GiveAll gives every template the visitor has not given yet.
func (s *Service) GiveAll(ctx context.Context) error {
	templates, err := s.loadTemplates(ctx)
	if err != nil {
		return err
	}

	var out []store.Action
	for _, t := range templates {
		if s.IsConsentGiven(t.ID) {
			continue
		}
		out = append(out, store.GiveAnonymousConsent{TemplateCode: t.ID})
	}

	s.logger.InfoContext(ctx, "giving all anonymous consents", slog.Int("count", len(out)))
	s.store.Dispatch(out...)
	return nil
}

// WithdrawAll withdraws every given template except the required ones.
func (s *Service) WithdrawAll(ctx context.Context) error {
	templates, err := s.loadTemplates(ctx)
	if err != nil {
		return err
	}

	var out []store.Action
	for _, t := range templates {
		if s.IsRequired(t.ID) || !s.IsConsentGiven(t.ID) {
			continue
		}
		out = append(out, store.WithdrawAnonymousConsent{TemplateCode: t.ID})
	}

	s.logger.InfoContext(ctx, "withdrawing all anonymous consents", slog.Int("count", len(out)))
	s.store.Dispatch(out...)
	return nil
}

// IsBannerVisible reports whether the consent banner should be shown.
func (s *Service) IsBannerVisible() bool {
	return store.BannerVisible(s.store.State())
}

// ToggleBannerDismissed hides or shows the banner. Dismissing it also
// acknowledges any template update.
func (s *Service) ToggleBannerDismissed(dismissed bool) {
	s.store.Dispatch(store.ToggleBannerVisibility{Visible: !dismissed})
	if dismissed {
		s.store.Dispatch(store.ToggleTemplatesUpdated{Updated: false})
	}
}

// UserConsents returns the logged in user's consent templates, loading them
// when needed.
func (s *Service) UserConsents(ctx context.Context) ([]domain.ConsentTemplate, error) {
	st := s.store.State()
	userID := st.Auth.UserID
	if !store.IsUserLoggedIn(st) {
		return nil, fmt.Errorf("loading user consents: %w", domain.ErrForbidden)
	}

	if st.User.Consents.NotLoaded() {
		s.store.Dispatch(store.LoadUserConsents{UserID: userID})
	}

	st, err := s.store.WaitFor(ctx, func(st store.State) bool {
		c := st.User.Consents
		return !c.Loading && (c.Success || c.Failed())
	})
	if err != nil {
		return nil, fmt.Errorf("loading user consents: %w", err)
	}
	if c := st.User.Consents; c.Failed() {
		return nil, fmt.Errorf("loading user consents: %w", failure(c.Error.Payload))
	}
	return st.User.Consents.Value, nil
}

// GiveUserConsent gives templateID on behalf of the logged in user.
func (s *Service) GiveUserConsent(templateID string, version int) {
	st := s.store.State()
	if !store.IsUserLoggedIn(st) {
		return
	}
	s.store.Dispatch(store.GiveUserConsent{UserID: st.Auth.UserID, TemplateID: templateID, Version: version})
}

// WithdrawUserConsent withdraws the user consent identified by consentCode.
func (s *Service) WithdrawUserConsent(consentCode string) {
	st := s.store.State()
	if !store.IsUserLoggedIn(st) {
		return
	}
	s.store.Dispatch(store.WithdrawUserConsent{UserID: st.Auth.UserID, ConsentCode: consentCode})
}

func (s *Service) ResetUserConsents() {
	s.store.Dispatch(store.ResetLoadUserConsents{})
}

func (s *Service) ResetGiveUserConsentProcess(templateID string) {
	s.store.Dispatch(store.ResetGiveUserConsentProcess{TemplateID: templateID})
}

func (s *Service) ResetWithdrawUserConsentProcess(consentCode string) {
	s.store.Dispatch(store.ResetWithdrawUserConsentProcess{ConsentCode: consentCode})
}

func (s *Service) loadTemplates(ctx context.Context) ([]domain.ConsentTemplate, error) {
	if s.store.State().AnonymousConsents.Templates.NotLoaded() {
		s.store.Dispatch(store.LoadAnonymousTemplates{})
	}

	st, err := s.store.WaitFor(ctx, func(st store.State) bool {
		t := st.AnonymousConsents.Templates
		return !t.Loading && (t.Success || t.Failed())
	})
	if err != nil {
		return nil, fmt.Errorf("loading consent templates: %w", err)
	}

	t := st.AnonymousConsents.Templates
	if t.Failed() {
		s.logger.WarnContext(ctx, "consent templates unavailable",
			slog.String("operation", "load_anonymous_templates"),
		)
		return nil, fmt.Errorf("loading consent templates: %w", failure(t.Error.Payload))
	}
	return t.Value, nil
}

func (s *Service) hidden(templateCode string) bool {
	return slices.Contains(s.cfg.Hidden, templateCode)
}

// failure converts a stored error slot into an error. Slots restored from a
// snapshot may carry no payload.
func failure(p *domain.ErrorPayload) error {
	if p == nil {
		return domain.ErrUnavailable
	}
	return p.Err()
}
