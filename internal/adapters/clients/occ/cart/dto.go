// Package cart implements the OCC translators for cart resources.
package cart

// CartDTO matches the OCC Cart schema, limited to the fields the storefront
// keeps.
type CartDTO struct {
	Code            string        `json:"code"`
	GUID            string        `json:"guid"`
	Entries         []EntryDTO    `json:"entries"`
	TotalItems      *int          `json:"totalItems,omitempty"`
	TotalPrice      *PriceDTO     `json:"totalPrice,omitempty"`
	AppliedVouchers []VoucherDTO  `json:"appliedVouchers"`
	User            *PrincipalDTO `json:"user,omitempty"`
	SaveTime        string        `json:"saveTime,omitempty"`
}

// CartListDTO matches the OCC CartList schema.
type CartListDTO struct {
	Carts []CartDTO `json:"carts"`
}

// EntryDTO matches the OCC OrderEntry schema.
type EntryDTO struct {
	EntryNumber int        `json:"entryNumber"`
	Product     ProductDTO `json:"product"`
	Quantity    int        `json:"quantity"`
}

// ProductDTO is the product reference carried on an entry.
type ProductDTO struct {
	Code string `json:"code"`
	Name string `json:"name,omitempty"`
}

// PriceDTO matches the OCC Price schema.
type PriceDTO struct {
	Value          float64 `json:"value"`
	CurrencyISO    string  `json:"currencyIso,omitempty"`
	FormattedValue string  `json:"formattedValue,omitempty"`
}

// VoucherDTO matches the OCC Voucher schema.
type VoucherDTO struct {
	Code        string `json:"code"`
	VoucherCode string `json:"voucherCode,omitempty"`
}

// PrincipalDTO matches the OCC Principal schema.
type PrincipalDTO struct {
	UID  string `json:"uid"`
	Name string `json:"name,omitempty"`
}

// AddEntryRequestDTO is the body of POST .../entries.
type AddEntryRequestDTO struct {
	Product  ProductDTO `json:"product"`
	Quantity int        `json:"quantity"`
}

// UpdateEntryRequestDTO is the body of PATCH .../entries/{entryNumber}.
type UpdateEntryRequestDTO struct {
	Quantity int `json:"quantity"`
}

// CartModificationDTO matches the OCC CartModification schema returned by
// entry changes.
type CartModificationDTO struct {
	StatusCode    string   `json:"statusCode"`
	StatusMessage string   `json:"statusMessage,omitempty"`
	QuantityAdded int      `json:"quantityAdded"`
	Quantity      int      `json:"quantity"`
	Entry         EntryDTO `json:"entry"`
}
