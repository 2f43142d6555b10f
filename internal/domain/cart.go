package domain

import "strings"

// Cart is the storefront cart as returned by the commerce backend.
//
// A cart is "created" once it has a GUID and "complete" once it additionally
// carries a code, an item total and an owning user.
type Cart struct {
	Code            string       `json:"code,omitempty"`
	GUID            string       `json:"guid,omitempty"`
	User            *Principal   `json:"user,omitempty"`
	Entries         []OrderEntry `json:"entries"`
	TotalItems      *int         `json:"totalItems,omitempty"`
	TotalPrice      *Price       `json:"totalPrice,omitempty"`
	AppliedVouchers []Voucher    `json:"appliedVouchers"`
}

// Principal identifies the owner of a cart.
type Principal struct {
	UID  string `json:"uid"`
	Name string `json:"name,omitempty"`
}

// Product is the subset of product data carried on an order entry.
type Product struct {
	Code string `json:"code"`
	Name string `json:"name,omitempty"`
}

// OrderEntry is one cart line.
type OrderEntry struct {
	EntryNumber int     `json:"entryNumber"`
	Product     Product `json:"product"`
	Quantity    int     `json:"quantity"`
}

// Price is a formatted monetary amount.
type Price struct {
	Value          float64 `json:"value"`
	CurrencyISO    string  `json:"currencyIso,omitempty"`
	FormattedValue string  `json:"formattedValue,omitempty"`
}

// Voucher is a voucher applied to a cart.
type Voucher struct {
	Code        string `json:"code"`
	VoucherCode string `json:"voucherCode,omitempty"`
}

// EntryRequest asks for a product quantity to be added to a cart.
type EntryRequest struct {
	ProductCode string
	Quantity    int
}

// IsCreated reports whether the backend has issued a GUID for the cart.
func (c Cart) IsCreated() bool {
	return c.GUID != ""
}

// IsIncomplete reports whether the cart still lacks any of the fields a full
// load provides.
func (c Cart) IsIncomplete() bool {
	return c.GUID == "" || c.Code == "" || c.TotalItems == nil || c.User == nil
}

// IsGuest reports whether the cart belongs to an anonymous or guest-checkout
// session. Guest checkout carts carry a "<guid>|<email>" uid.
func (c Cart) IsGuest() bool {
	if c.User == nil {
		return true
	}
	if c.User.UID == UserAnonymous || c.User.Name == UserGuest {
		return true
	}
	_, email, ok := strings.Cut(c.User.UID, "|")
	return ok && strings.Contains(email, "@")
}

// ID returns the identifier the backend expects for this cart: the GUID for
// the anonymous user, the code otherwise.
func (c Cart) ID(userID string) string {
	if userID == UserAnonymous {
		return c.GUID
	}
	return c.Code
}

// EntryRequests maps the cart's lines to add requests, preserving order.
func (c Cart) EntryRequests() []EntryRequest {
	reqs := make([]EntryRequest, 0, len(c.Entries))
	for _, e := range c.Entries {
		reqs = append(reqs, EntryRequest{ProductCode: e.Product.Code, Quantity: e.Quantity})
	}
	return reqs
}
