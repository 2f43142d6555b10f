package ports

import (
	"context"

	"github.com/jsamuelsen11/go-storefront-state/internal/domain"
)

// CartAdapter is the client port for cart lifecycle calls against the
// commerce backend. userID is a concrete id, domain.UserCurrent or
// domain.UserAnonymous; cartID is a cart code, a guid or domain.CartCurrent.
type CartAdapter interface {
	// Load returns the cart. Returns domain.ErrNotFound if the user has no
	// such cart.
	Load(ctx context.Context, userID, cartID string) (*domain.Cart, error)

	// Create creates a cart for userID. When oldCartID is set the backend
	// merges that anonymous cart into the new one; toMergeCartGUID names an
	// existing user cart to merge into instead of creating a fresh one.
	Create(ctx context.Context, userID, oldCartID, toMergeCartGUID string) (*domain.Cart, error)

	// Delete removes the cart.
	Delete(ctx context.Context, userID, cartID string) error
}

// CartEntryAdapter is the client port for cart line changes.
type CartEntryAdapter interface {
	Add(ctx context.Context, userID, cartID, productCode string, quantity int) error
	Update(ctx context.Context, userID, cartID string, entryNumber, quantity int) error
	Remove(ctx context.Context, userID, cartID string, entryNumber int) error
}

// CartVoucherAdapter is the client port for voucher changes.
type CartVoucherAdapter interface {
	Add(ctx context.Context, userID, cartID, voucherID string) error
	Remove(ctx context.Context, userID, cartID, voucherID string) error
}

// CartEmailAdapter attaches a guest checkout e-mail to an anonymous cart.
type CartEmailAdapter interface {
	AddEmail(ctx context.Context, userID, cartID, email string) error
}

// ConsentTemplatesAdapter loads the consent templates offered to anonymous
// visitors.
type ConsentTemplatesAdapter interface {
	LoadAnonymousTemplates(ctx context.Context) ([]domain.ConsentTemplate, error)
}

// UserConsentAdapter manages the consents of a registered user.
type UserConsentAdapter interface {
	// Load returns every template with the user's current consent attached.
	Load(ctx context.Context, userID string) ([]domain.ConsentTemplate, error)

	// Give records consent for the template version and returns the template
	// with the new consent attached.
	Give(ctx context.Context, userID, templateID string, version int) (*domain.ConsentTemplate, error)

	// Withdraw withdraws the consent identified by consentCode.
	Withdraw(ctx context.Context, userID, consentCode string) error
}
