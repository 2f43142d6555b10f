// Package domain contains the storefront entities shared by every layer:
// carts, consent templates and anonymous consents, backend identities, and
// the error taxonomy (sentinels, ValidationError, BackendError and the
// serializable ErrorPayload kept in state).
package domain
