package occ

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/go-storefront-state/internal/adapters/clients/occ/cart"
	"github.com/jsamuelsen11/go-storefront-state/internal/domain"
	"github.com/jsamuelsen11/go-storefront-state/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.CartAdapter      = (*CartClient)(nil)
	_ ports.CartEmailAdapter = (*CartClient)(nil)
)

// cartFields selects the cart representation the storefront keeps.
const cartFields = "DEFAULT,entries(DEFAULT),totalItems,totalPrice(formattedValue),appliedVouchers,user,saveTime"

// CartClient is the outbound adapter for cart lifecycle calls. It implements
// [ports.CartAdapter] and [ports.CartEmailAdapter].
type CartClient struct {
	req    *Requester
	logger *slog.Logger
}

// NewCartClient creates a CartClient sending requests through req.
func NewCartClient(req *Requester, logger *slog.Logger) *CartClient {
	return &CartClient{req: req, logger: logger}
}

func cartPath(userID, cartID string) string {
	return "users/" + segment(userID) + "/carts/" + segment(cartID)
}

// Load fetches a cart. For a concrete user and domain.CartCurrent it lists
// the user's carts and picks the one that is not saved, returning
// domain.ErrNotFound when there is none.
func (c *CartClient) Load(ctx context.Context, userID, cartID string) (*domain.Cart, error) {
	fields := url.Values{"fields": {cartFields}}

	if cartID == domain.CartCurrent && userID != domain.UserAnonymous {
		var list cart.CartListDTO
		if err := c.req.Do(ctx, http.MethodGet, "users/"+segment(userID)+"/carts", fields, nil, &list); err != nil {
			return nil, err
		}
		current, ok := cart.CurrentCart(list)
		if !ok {
			return nil, fmt.Errorf("current cart of %s: %w", userID, domain.ErrNotFound)
		}
		return &current, nil
	}

	var dto cart.CartDTO
	if err := c.req.Do(ctx, http.MethodGet, cartPath(userID, cartID), fields, nil, &dto); err != nil {
		return nil, err
	}
	result := cart.ToDomainCart(&dto)
	return &result, nil
}

// Create sends POST users/{userID}/carts. oldCartID names an anonymous cart
// the backend merges into the new one; toMergeCartGUID names an existing
// user cart to merge into.
func (c *CartClient) Create(ctx context.Context, userID, oldCartID, toMergeCartGUID string) (*domain.Cart, error) {
	q := url.Values{"fields": {cartFields}}
	if oldCartID != "" {
		q.Set("oldCartId", oldCartID)
	}
	if toMergeCartGUID != "" {
		q.Set("toMergeCartGuid", toMergeCartGUID)
	}

	var dto cart.CartDTO
	if err := c.req.Do(ctx, http.MethodPost, "users/"+segment(userID)+"/carts", q, nil, &dto); err != nil {
		return nil, err
	}
	result := cart.ToDomainCart(&dto)
	return &result, nil
}

func (c *CartClient) Delete(ctx context.Context, userID, cartID string) error {
	return c.req.Do(ctx, http.MethodDelete, cartPath(userID, cartID), nil, nil, nil)
}

// AddEmail sends PUT .../email to attach a guest checkout address.
func (c *CartClient) AddEmail(ctx context.Context, userID, cartID, email string) error {
	q := url.Values{"email": {email}}
	return c.req.Do(ctx, http.MethodPut, cartPath(userID, cartID)+"/email", q, nil, nil)
}
