package ports

import (
	"context"

	"github.com/jsamuelsen11/go-storefront-state/internal/domain"
)

// ConsentService is the command and query surface for anonymous consents.
// Implemented by the application layer; called by inbound adapters.
type ConsentService interface {
	// Templates returns the anonymous consent templates, loading them first
	// if they have not been loaded. Hidden templates are filtered out.
	Templates(ctx context.Context) ([]domain.ConsentTemplate, error)

	// Consents returns the visitor's current decisions.
	Consents() []domain.AnonymousConsent

	Give(templateCode string)
	Withdraw(templateCode string)

	// GiveAll gives every template not given yet. WithdrawAll withdraws
	// every given template except the required ones.
	GiveAll(ctx context.Context) error
	WithdrawAll(ctx context.Context) error

	IsBannerVisible() bool
	ToggleBannerDismissed(dismissed bool)

	// ResetUserConsents forgets the loaded user consents so the next read
	// fetches them again. The process resets clear the outcome of a give or
	// withdraw; an empty id clears every template or consent.
	ResetUserConsents()
	ResetGiveUserConsentProcess(templateID string)
	ResetWithdrawUserConsentProcess(consentCode string)
}

// CartService is the command surface for the active cart. Every command
// waits until the cart exists, creating it when needed.
type CartService interface {
	Active(ctx context.Context) (domain.Cart, error)
	AddEntry(ctx context.Context, productCode string, quantity int) error
	UpdateEntry(ctx context.Context, entryNumber, quantity int) error
	RemoveEntry(ctx context.Context, entryNumber int) error
	AddVoucher(ctx context.Context, voucherID string) error
	RemoveVoucher(ctx context.Context, voucherID string) error
	AddEmail(ctx context.Context, email string) error

	// ResetAddVoucherProcess and ResetRemoveVoucherProcess clear the outcome
	// of a voucher command; an empty voucherID clears every voucher.
	ResetAddVoucherProcess(voucherID string)
	ResetRemoveVoucherProcess(voucherID string)
}

// SessionService drives authentication and site-context events.
type SessionService interface {
	Login(ctx context.Context, userID string) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	ChangeLanguage(ctx context.Context, language string) error
}
