package cart

import (
	"slices"

	"github.com/jsamuelsen11/go-storefront-state/internal/domain"
)

// ToDomainCart converts an OCC cart to a domain Cart. Entries and vouchers
// are never nil so an empty cart encodes as empty lists.
func ToDomainCart(dto *CartDTO) domain.Cart {
	c := domain.Cart{
		Code:            dto.Code,
		GUID:            dto.GUID,
		Entries:         make([]domain.OrderEntry, 0, len(dto.Entries)),
		TotalItems:      dto.TotalItems,
		AppliedVouchers: make([]domain.Voucher, 0, len(dto.AppliedVouchers)),
	}

	for _, e := range dto.Entries {
		c.Entries = append(c.Entries, domain.OrderEntry{
			EntryNumber: e.EntryNumber,
			Product:     domain.Product{Code: e.Product.Code, Name: e.Product.Name},
			Quantity:    e.Quantity,
		})
	}
	for _, v := range dto.AppliedVouchers {
		c.AppliedVouchers = append(c.AppliedVouchers, domain.Voucher{Code: v.Code, VoucherCode: v.VoucherCode})
	}
	if p := dto.TotalPrice; p != nil {
		c.TotalPrice = &domain.Price{Value: p.Value, CurrencyISO: p.CurrencyISO, FormattedValue: p.FormattedValue}
	}
	if u := dto.User; u != nil {
		c.User = &domain.Principal{UID: u.UID, Name: u.Name}
	}

	return c
}

// CurrentCart picks the user's current cart from a cart list: the first one
// that is not a saved cart. ok is false when there is none.
func CurrentCart(list CartListDTO) (cart domain.Cart, ok bool) {
	i := slices.IndexFunc(list.Carts, func(c CartDTO) bool {
		return c.SaveTime == ""
	})
	if i < 0 {
		return domain.Cart{}, false
	}
	return ToDomainCart(&list.Carts[i]), true
}

// ToAddEntryRequest builds the body of an add-entry call.
func ToAddEntryRequest(productCode string, quantity int) AddEntryRequestDTO {
	return AddEntryRequestDTO{Product: ProductDTO{Code: productCode}, Quantity: quantity}
}
