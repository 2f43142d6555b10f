package consent

import (
	"time"

	"github.com/jsamuelsen11/go-storefront-state/internal/domain"
)

// occTimeLayout is the timestamp layout OCC uses for consent dates.
const occTimeLayout = "2006-01-02T15:04:05-0700"

// ToDomainTemplate converts an OCC consent template to a domain
// ConsentTemplate.
func ToDomainTemplate(dto *TemplateDTO) domain.ConsentTemplate {
	t := domain.ConsentTemplate{
		ID:          dto.ID,
		Name:        dto.Name,
		Description: dto.Description,
		Version:     dto.Version,
	}
	if c := dto.CurrentConsent; c != nil {
		t.CurrentConsent = &domain.Consent{
			Code:                 c.Code,
			ConsentGivenDate:     parseTime(c.ConsentGivenDate),
			ConsentWithdrawnDate: parseTime(c.ConsentWithdrawnDate),
		}
	}
	return t
}

// ToDomainTemplateList converts an OCC template list, preserving order.
func ToDomainTemplateList(dto TemplateListDTO) []domain.ConsentTemplate {
	templates := make([]domain.ConsentTemplate, len(dto.ConsentTemplates))
	for i := range dto.ConsentTemplates {
		templates[i] = ToDomainTemplate(&dto.ConsentTemplates[i])
	}
	return templates
}

// parseTime accepts the OCC layout and RFC 3339. Unparseable or empty values
// yield nil.
func parseTime(v string) *time.Time {
	if v == "" {
		return nil
	}
	for _, layout := range []string{occTimeLayout, time.RFC3339} {
		if t, err := time.Parse(layout, v); err == nil {
			return &t
		}
	}
	return nil
}
