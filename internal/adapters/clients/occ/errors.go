// Package occ implements the client ports against the commerce backend's
// OCC REST API. Resource translators live in subpackages (occ/cart,
// occ/consent); request handling and error mapping live here.
package occ

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/go-storefront-state/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// errorList is the OCC error envelope.
type errorList struct {
	Errors []errorDetail `json:"errors"`
}

// errorDetail is one OCC error entry.
type errorDetail struct {
	Message     string `json:"message"`
	Reason      string `json:"reason"`
	Subject     string `json:"subject"`
	SubjectType string `json:"subjectType"`
	Type        string `json:"type"`
}

// TranslateHTTPError maps an OCC error response to a *domain.BackendError.
// The Kind follows the status code, refined by the error types in the body:
// OCC reports a missing cart as a 400 CartError with reason "notFound", and
// field failures as ValidationError entries whose subject names the field.
func TranslateHTTPError(resp *http.Response) error {
	list := parseErrorList(resp)

	msg := list.message()
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}

	return &domain.BackendError{
		Status:  resp.StatusCode,
		Message: msg,
		Kind:    kindFor(resp.StatusCode, list),
	}
}

func kindFor(status int, list errorList) error {
	for _, e := range list.Errors {
		switch {
		case e.Type == "CartError" && e.Reason == "notFound":
			return domain.ErrNotFound
		case e.Type == "InvalidTokenError", e.Type == "UnauthorizedError", e.Type == "AccessDeniedError":
			return domain.ErrForbidden
		}
	}

	if fields := list.fields(); len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}

	switch {
	case status == http.StatusNotFound:
		return domain.ErrNotFound
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return domain.ErrValidation
	case status == http.StatusConflict:
		return domain.ErrConflict
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return domain.ErrForbidden
	case status >= http.StatusInternalServerError:
		return domain.ErrUnavailable
	default:
		return nil
	}
}

// parseErrorList reads the OCC error envelope. Returns an empty list if the
// body is missing or not JSON.
func parseErrorList(resp *http.Response) errorList {
	if resp.Body == nil {
		return errorList{}
	}
	if ct := resp.Header.Get("Content-Type"); ct != "" && !strings.Contains(ct, "json") {
		return errorList{}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return errorList{}
	}

	var list errorList
	if err := json.Unmarshal(body, &list); err != nil {
		return errorList{}
	}
	return list
}

func (l errorList) message() string {
	msgs := make([]string, 0, len(l.Errors))
	for _, e := range l.Errors {
		if e.Message != "" {
			msgs = append(msgs, e.Message)
		}
	}
	return strings.Join(msgs, "; ")
}

// fields collects ValidationError and voucher failures keyed by subject.
func (l errorList) fields() map[string]string {
	var fields map[string]string
	for _, e := range l.Errors {
		if e.Type != "ValidationError" && e.Type != "VoucherOperationError" {
			continue
		}
		field := e.Subject
		if field == "" {
			field = e.SubjectType
		}
		if fields == nil {
			fields = make(map[string]string)
		}
		fields[field] = e.Message
	}
	return fields
}
