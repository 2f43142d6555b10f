package store

import (
	"strings"

	"github.com/jsamuelsen11/go-storefront-state/internal/state/loader"
)

// Kind tags an action. Reducers and effects switch on the concrete action
// type; Kind is what gets logged and counted.
type Kind string

// Action is a command or event folded into State.
type Action interface {
	Kind() Kind
}

// Targeted is implemented by actions that drive a loader slot. For LOAD
// targets the store stamps the flight with the dispatch sequence number.
type Targeted interface {
	Action
	Target() loader.Meta
}

// Loader entities.
const (
	EntityAnonymousTemplates = "anonymous-consent-templates"
	EntityUserConsents       = "user-consents"
	EntityCart               = "cart"
	EntityProcess            = "process"
)

// Process kinds tracked in State.Process. Give, withdraw and voucher
// processes hold one slot per subject, see ProcessKey.
const (
	ProcessGiveConsent     = "giveConsent"
	ProcessWithdrawConsent = "withdrawConsent"
	ProcessAddVoucher      = "addVoucher"
	ProcessRemoveVoucher   = "removeVoucher"
	ProcessDeleteCart      = "deleteCart"
	ProcessAddEmail        = "addEmail"
)

// ProcessKey addresses the slot of kind for one subject, such as a consent
// template or a voucher code. An empty subject addresses the bare kind.
func ProcessKey(kind, subject string) string {
	if subject == "" {
		return kind
	}
	return kind + ":" + subject
}

// processKind returns the kind part of a process key.
func processKind(key string) string {
	kind, _, _ := strings.Cut(key, ":")
	return kind
}

func process(id string, phase loader.Phase) loader.Meta {
	return loader.Meta{Entity: EntityProcess, ID: id, Phase: phase}
}

func slot(entity string, phase loader.Phase) loader.Meta {
	return loader.Meta{Entity: entity, Phase: phase}
}

// Session and authentication events.
type (
	// SessionStarted records the identity a tab starts with.
	SessionStarted struct{ UserID string }
	// LoginSuccess is emitted once a user token has been obtained.
	LoginSuccess struct{ UserID string }
	// RegisterUserSuccess precedes the login of a freshly registered user.
	RegisterUserSuccess struct{}
	Logout              struct{}
	// LanguageChange is emitted when the storefront language switches.
	LanguageChange struct{ Language string }
)

func (SessionStarted) Kind() Kind      { return "[Auth] Session Started" }
func (LoginSuccess) Kind() Kind        { return "[Auth] Login Success" }
func (RegisterUserSuccess) Kind() Kind { return "[User] Register User Success" }
func (Logout) Kind() Kind              { return "[Auth] Logout" }
func (LanguageChange) Kind() Kind      { return "[Site-context] Language Change" }
