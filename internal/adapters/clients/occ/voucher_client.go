package occ

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/go-storefront-state/internal/ports"
)

var _ ports.CartVoucherAdapter = (*VoucherClient)(nil)

// VoucherClient implements [ports.CartVoucherAdapter].
type VoucherClient struct {
	req *Requester
}

func NewVoucherClient(req *Requester) *VoucherClient {
	return &VoucherClient{req: req}
}

func (c *VoucherClient) Add(ctx context.Context, userID, cartID, voucherID string) error {
	q := url.Values{"voucherId": {voucherID}}
	return c.req.Do(ctx, http.MethodPost, cartPath(userID, cartID)+"/vouchers", q, nil, nil)
}

func (c *VoucherClient) Remove(ctx context.Context, userID, cartID, voucherID string) error {
	path := cartPath(userID, cartID) + "/vouchers/" + segment(voucherID)
	return c.req.Do(ctx, http.MethodDelete, path, nil, nil, nil)
}
