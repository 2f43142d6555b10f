// Package consent implements the OCC translators for consent templates.
package consent

// TemplateDTO matches the OCC ConsentTemplate schema.
type TemplateDTO struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Description    string      `json:"description"`
	Version        int         `json:"version"`
	CurrentConsent *ConsentDTO `json:"currentConsent,omitempty"`
}

// ConsentDTO matches the OCC Consent schema. Dates use the backend's
// "2006-01-02T15:04:05-0700" layout.
type ConsentDTO struct {
	Code                 string `json:"code"`
	ConsentGivenDate     string `json:"consentGivenDate,omitempty"`
	ConsentWithdrawnDate string `json:"consentWithdrawnDate,omitempty"`
}

// TemplateListDTO matches the OCC ConsentTemplateList schema.
type TemplateListDTO struct {
	ConsentTemplates []TemplateDTO `json:"consentTemplates"`
}
