package occ

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jsamuelsen11/go-storefront-state/internal/adapters/clients/occ/consent"
	"github.com/jsamuelsen11/go-storefront-state/internal/domain"
	"github.com/jsamuelsen11/go-storefront-state/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.ConsentTemplatesAdapter = (*ConsentClient)(nil)
	_ ports.UserConsentAdapter      = (*ConsentClient)(nil)
)

// ConsentClient implements [ports.ConsentTemplatesAdapter] and
// [ports.UserConsentAdapter] against the OCC consent endpoints.
type ConsentClient struct {
	req *Requester
}

func NewConsentClient(req *Requester) *ConsentClient {
	return &ConsentClient{req: req}
}

// LoadAnonymousTemplates fetches GET users/anonymous/consenttemplates.
func (c *ConsentClient) LoadAnonymousTemplates(ctx context.Context) ([]domain.ConsentTemplate, error) {
	return c.Load(ctx, domain.UserAnonymous)
}

// Load fetches GET users/{userID}/consenttemplates. For a registered user
// every template carries the user's current consent, if any.
func (c *ConsentClient) Load(ctx context.Context, userID string) ([]domain.ConsentTemplate, error) {
	var dto consent.TemplateListDTO
	if err := c.req.Do(ctx, http.MethodGet, "users/"+segment(userID)+"/consenttemplates", nil, nil, &dto); err != nil {
		return nil, err
	}
	return consent.ToDomainTemplateList(dto), nil
}

// Give sends POST users/{userID}/consents for the template version.
func (c *ConsentClient) Give(ctx context.Context, userID, templateID string, version int) (*domain.ConsentTemplate, error) {
	q := url.Values{
		"consentTemplateId":      {templateID},
		"consentTemplateVersion": {strconv.Itoa(version)},
	}

	var dto consent.TemplateDTO
	if err := c.req.Do(ctx, http.MethodPost, "users/"+segment(userID)+"/consents", q, nil, &dto); err != nil {
		return nil, err
	}
	result := consent.ToDomainTemplate(&dto)
	return &result, nil
}

func (c *ConsentClient) Withdraw(ctx context.Context, userID, consentCode string) error {
	path := "users/" + segment(userID) + "/consents/" + segment(consentCode)
	return c.req.Do(ctx, http.MethodDelete, path, nil, nil, nil)
}
