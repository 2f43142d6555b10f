package domain

import (
	"errors"
	"fmt"
	"maps"
	"net/http"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("unavailable")
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// BackendError is a failed commerce backend call. Kind is one of the sentinel
// errors above (nil when the status has no mapping) so callers can keep using
// errors.Is.
type BackendError struct {
	Status  int
	Message string
	Kind    error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend status %d: %s", e.Status, e.Message)
}

func (e *BackendError) Unwrap() error {
	return e.Kind
}

// ErrorPayload is the serializable form of an adapter failure. It is what
// loader and process slots store, so it only holds plain comparable data.
type ErrorPayload struct {
	Message string            `json:"message"`
	Status  int               `json:"status,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// NormalizeError converts err into an ErrorPayload. It returns nil for a nil
// error. Status is taken from a wrapped *BackendError; field-level details from
// a wrapped *ValidationError.
func NormalizeError(err error) *ErrorPayload {
	if err == nil {
		return nil
	}

	p := &ErrorPayload{Message: err.Error()}

	var be *BackendError
	if errors.As(err, &be) {
		p.Status = be.Status
		if be.Message != "" {
			p.Message = be.Message
		}
	}

	var ve *ValidationError
	if errors.As(err, &ve) && len(ve.Fields) > 0 {
		p.Fields = maps.Clone(ve.Fields)
		if p.Status == 0 {
			p.Status = http.StatusBadRequest
		}
	}

	if p.Status == 0 {
		p.Status = statusFor(err)
	}

	return p
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return 0
	}
}

// Err returns p as an error, or nil for a nil payload. The error unwraps to
// the sentinel matching p.Status.
func (p *ErrorPayload) Err() error {
	if p == nil {
		return nil
	}
	return &payloadError{p: p}
}

type payloadError struct {
	p *ErrorPayload
}

func (e *payloadError) Error() string {
	if e.p.Status != 0 {
		return fmt.Sprintf("status %d: %s", e.p.Status, e.p.Message)
	}
	return e.p.Message
}

func (e *payloadError) Unwrap() error {
	switch e.p.Status {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusBadRequest:
		return ErrValidation
	case http.StatusConflict:
		return ErrConflict
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrForbidden
	case http.StatusServiceUnavailable, http.StatusBadGateway, http.StatusGatewayTimeout:
		return ErrUnavailable
	default:
		return nil
	}
}
