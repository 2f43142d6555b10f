package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// ConsentStatus is the decision an anonymous visitor made for a template.
// The zero value means undecided and is encoded as JSON null.
type ConsentStatus string

const (
	ConsentGiven     ConsentStatus = "GIVEN"
	ConsentWithdrawn ConsentStatus = "WITHDRAWN"
)

func (s ConsentStatus) MarshalJSON() ([]byte, error) {
	if s == "" {
		return []byte("null"), nil
	}
	return json.Marshal(string(s))
}

func (s *ConsentStatus) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = ""
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("consent status: %w", err)
	}
	*s = ConsentStatus(raw)
	return nil
}

// Consent is a registered user's decision on a template.
type Consent struct {
	Code                 string     `json:"code,omitempty"`
	ConsentGivenDate     *time.Time `json:"consentGivenDate,omitempty"`
	ConsentWithdrawnDate *time.Time `json:"consentWithdrawnDate,omitempty"`
}

// ConsentTemplate describes a consent a user may grant.
type ConsentTemplate struct {
	ID             string   `json:"id"`
	Name           string   `json:"name,omitempty"`
	Description    string   `json:"description,omitempty"`
	Version        int      `json:"version"`
	CurrentConsent *Consent `json:"currentConsent,omitempty"`
}

// IsGiven reports whether the user currently holds the consent.
func (t ConsentTemplate) IsGiven() bool {
	cc := t.CurrentConsent
	return cc != nil && cc.ConsentGivenDate != nil && cc.ConsentWithdrawnDate == nil
}

// AnonymousConsent is a visitor's decision for one template before login.
type AnonymousConsent struct {
	TemplateCode string        `json:"templateCode"`
	ConsentState ConsentStatus `json:"consentState"`
	Version      int           `json:"version"`
}

func (c AnonymousConsent) IsGiven() bool     { return c.ConsentState == ConsentGiven }
func (c AnonymousConsent) IsWithdrawn() bool { return c.ConsentState == ConsentWithdrawn }

// FindConsent returns the entry for templateCode.
func FindConsent(consents []AnonymousConsent, templateCode string) (AnonymousConsent, bool) {
	for _, c := range consents {
		if c.TemplateCode == templateCode {
			return c, true
		}
	}
	return AnonymousConsent{}, false
}

// TemplatesChanged compares two template lists by content.
func TemplatesChanged(current, next []ConsentTemplate) bool {
	return !cmp.Equal(current, next, cmpopts.EquateEmpty())
}
