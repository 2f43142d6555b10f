package dto

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/jsamuelsen11/go-storefront-state/internal/domain"
)

// ErrorResponse is an RFC 9457 problem document. BackendStatus is an
// extension member holding OCC's status when OCC rejected the call.
type ErrorResponse struct {
	Type          string        `json:"type"`
	Title         string        `json:"title"`
	Status        int           `json:"status"`
	Detail        string        `json:"detail,omitempty"`
	Instance      string        `json:"instance,omitempty"`
	BackendStatus int           `json:"backendStatus,omitempty"`
	Errors        []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail is one field failure. Location is "body.<field>" for request
// body fields, "path.<param>" for URL parameters and "occ.<subject>" for
// fields OCC rejected.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// NewErrorResponse maps err onto a problem document for r. Unmapped errors
// become a 500 with no detail so internal messages stay in the logs.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := domainErrorToStatus(err)

	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Instance: r.RequestURI,
	}

	var be *domain.BackendError
	switch {
	case errors.As(err, &be):
		resp.Detail = be.Message
		resp.BackendStatus = be.Status
	case status != http.StatusInternalServerError:
		resp.Detail = err.Error()
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		prefix := "body."
		if be != nil {
			prefix = "occ."
		}
		resp.Errors = validationFieldsToDetails(verr.Fields, prefix)
	}

	return resp
}

// WriteErrorResponse writes err as application/problem+json.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response",
			slog.Any("error", encErr),
		)
	}
}

// domainErrorToStatus maps domain sentinels to tab API statuses. An OCC
// outage is a 502; a command that outlived its wait is a 504.
func domainErrorToStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnavailable):
		return http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// validationFieldsToDetails sorts fields by location. Keys that already name
// their location ("path.entryNumber") are kept, the empty key stands for the
// whole body, and the rest get prefix.
func validationFieldsToDetails(fields map[string]string, prefix string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		var loc string
		switch {
		case field == "":
			loc = strings.TrimSuffix(prefix, ".")
		case strings.Contains(field, "."):
			loc = field
		default:
			loc = prefix + field
		}
		details = append(details, ErrorDetail{Location: loc, Message: msg})
	}
	sort.Slice(details, func(i, j int) bool {
		return details[i].Location < details[j].Location
	})
	return details
}
