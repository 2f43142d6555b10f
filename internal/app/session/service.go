// Package session turns authentication and site-context changes into store
// events. The effects and the cart orchestrator react to those events.
package session

import (
	"context"
	"log/slog"
	"strings"

	"github.com/jsamuelsen11/go-storefront-state/internal/domain"
	"github.com/jsamuelsen11/go-storefront-state/internal/ports"
	"github.com/jsamuelsen11/go-storefront-state/internal/state/store"
)

// Compile-time check that Service implements ports.SessionService.
var _ ports.SessionService = (*Service)(nil)

// Service implements ports.SessionService.
type Service struct {
	store  *store.Store
	logger *slog.Logger
}

func NewService(s *store.Store, logger *slog.Logger) *Service {
	return &Service{store: s, logger: logger}
}

// Start records the identity the tab starts with. An empty id starts an
// anonymous session.
func (s *Service) Start(userID string) {
	if userID == "" {
		userID = domain.UserAnonymous
	}
	s.store.Dispatch(store.SessionStarted{UserID: userID})
}

// Login switches the session to userID.
func (s *Service) Login(ctx context.Context, userID string) error {
	if !domain.IsConcreteUser(userID) {
		return &domain.ValidationError{Fields: map[string]string{"userId": "must name a user"}}
	}

	s.logger.InfoContext(ctx, "user logged in", slog.String("user_id", userID))
	s.store.Dispatch(store.LoginSuccess{UserID: userID})
	return nil
}

// Register marks the next login as the first one of a new user, so the
// visitor's consents are transferred to the account.
func (s *Service) Register(ctx context.Context) error {
	if store.IsUserLoggedIn(s.store.State()) {
		return domain.ErrConflict
	}

	s.logger.InfoContext(ctx, "user registered")
	s.store.Dispatch(store.RegisterUserSuccess{})
	return nil
}

func (s *Service) Logout(ctx context.Context) error {
	s.logger.InfoContext(ctx, "user logged out", slog.String("user_id", store.UserID(s.store.State())))
	s.store.Dispatch(store.Logout{})
	return nil
}

func (s *Service) ChangeLanguage(ctx context.Context, language string) error {
	language = strings.TrimSpace(language)
	if language == "" {
		return &domain.ValidationError{Fields: map[string]string{"language": "is required"}}
	}

	s.logger.DebugContext(ctx, "language changed", slog.String("language", language))
	s.store.Dispatch(store.LanguageChange{Language: language})
	return nil
}
