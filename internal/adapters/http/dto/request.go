package dto

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/jsamuelsen11/go-storefront-state/internal/domain"
)

const (
	msgRequired     = "is required"
	msgMustPositive = "must be positive"
)

// AddEntryRequest represents the JSON body for adding a product to the cart.
type AddEntryRequest struct {
	ProductCode string `json:"productCode"`
	Quantity    int    `json:"quantity"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *AddEntryRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.ProductCode) == "" {
		fields["productCode"] = msgRequired
	}
	if r.Quantity <= 0 {
		fields["quantity"] = msgMustPositive
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// UpdateEntryRequest represents the JSON body for changing an entry's
// quantity. A quantity of zero removes the entry.
type UpdateEntryRequest struct {
	Quantity *int `json:"quantity"`
}

func (r *UpdateEntryRequest) Validate() error {
	switch {
	case r.Quantity == nil:
		return &domain.ValidationError{Fields: map[string]string{"quantity": msgRequired}}
	case *r.Quantity < 0:
		return &domain.ValidationError{Fields: map[string]string{
			"quantity": fmt.Sprintf("must not be negative, got %d", *r.Quantity),
		}}
	}
	return nil
}

// VoucherRequest represents the JSON body for applying a voucher.
type VoucherRequest struct {
	VoucherID string `json:"voucherId"`
}

func (r *VoucherRequest) Validate() error {
	if strings.TrimSpace(r.VoucherID) == "" {
		return &domain.ValidationError{Fields: map[string]string{"voucherId": msgRequired}}
	}
	return nil
}

// EmailRequest represents the JSON body for attaching a guest checkout
// e-mail to the cart.
type EmailRequest struct {
	Email string `json:"email"`
}

func (r *EmailRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return &domain.ValidationError{Fields: map[string]string{"email": msgRequired}}
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return &domain.ValidationError{Fields: map[string]string{"email": "must be a valid address"}}
	}
	return nil
}

// BannerRequest represents the JSON body for dismissing or restoring the
// consent banner.
type BannerRequest struct {
	Dismissed *bool `json:"dismissed"`
}

func (r *BannerRequest) Validate() error {
	if r.Dismissed == nil {
		return &domain.ValidationError{Fields: map[string]string{"dismissed": msgRequired}}
	}
	return nil
}

// LoginRequest represents the JSON body for a login event.
type LoginRequest struct {
	UserID string `json:"userId"`
}

// Validate rejects the reserved pseudo-identities.
func (r *LoginRequest) Validate() error {
	id := strings.TrimSpace(r.UserID)
	switch {
	case id == "":
		return &domain.ValidationError{Fields: map[string]string{"userId": msgRequired}}
	case !domain.IsConcreteUser(id):
		return &domain.ValidationError{Fields: map[string]string{"userId": fmt.Sprintf("reserved: %q", id)}}
	}
	return nil
}

// LanguageRequest represents the JSON body for a site language change.
type LanguageRequest struct {
	Language string `json:"language"`
}

func (r *LanguageRequest) Validate() error {
	if strings.TrimSpace(r.Language) == "" {
		return &domain.ValidationError{Fields: map[string]string{"language": msgRequired}}
	}
	return nil
}
