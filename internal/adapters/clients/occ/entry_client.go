package occ

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/jsamuelsen11/go-storefront-state/internal/adapters/clients/occ/cart"
	"github.com/jsamuelsen11/go-storefront-state/internal/ports"
)

var _ ports.CartEntryAdapter = (*EntryClient)(nil)

// EntryClient implements [ports.CartEntryAdapter].
type EntryClient struct {
	req    *Requester
	logger *slog.Logger
}

func NewEntryClient(req *Requester, logger *slog.Logger) *EntryClient {
	return &EntryClient{req: req, logger: logger}
}

func entryPath(userID, cartID string, entryNumber int) string {
	return cartPath(userID, cartID) + "/entries/" + strconv.Itoa(entryNumber)
}

// Add sends POST .../entries. A modification the backend reports as anything
// but a full success (for example a stock shortage) is logged; the cart reload
// that follows shows the actual quantity.
func (c *EntryClient) Add(ctx context.Context, userID, cartID, productCode string, quantity int) error {
	var mod cart.CartModificationDTO
	body := cart.ToAddEntryRequest(productCode, quantity)
	if err := c.req.Do(ctx, http.MethodPost, cartPath(userID, cartID)+"/entries", nil, body, &mod); err != nil {
		return err
	}
	if mod.StatusCode != "" && mod.StatusCode != "success" {
		c.logger.InfoContext(ctx, "entry added partially",
			slog.String("cart_id", cartID),
			slog.String("product_code", productCode),
			slog.String("status_code", mod.StatusCode),
			slog.Int("quantity_added", mod.QuantityAdded),
		)
	}
	return nil
}

func (c *EntryClient) Update(ctx context.Context, userID, cartID string, entryNumber, quantity int) error {
	body := cart.UpdateEntryRequestDTO{Quantity: quantity}
	return c.req.Do(ctx, http.MethodPatch, entryPath(userID, cartID, entryNumber), nil, body, nil)
}

func (c *EntryClient) Remove(ctx context.Context, userID, cartID string, entryNumber int) error {
	return c.req.Do(ctx, http.MethodDelete, entryPath(userID, cartID, entryNumber), nil, nil, nil)
}
