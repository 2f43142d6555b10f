package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-storefront-state/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-storefront-state/internal/domain"
)

// parseEntryNumber reads a non-negative integer URL parameter.
func parseEntryNumber(r *http.Request, param string) (int, error) {
	raw := chi.URLParam(r, param)
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, &domain.ValidationError{
			Fields: map[string]string{"path." + param: "must be a non-negative integer"},
		}
	}
	return n, nil
}

// requireParam reads a non-empty URL parameter.
func requireParam(r *http.Request, param string) (string, error) {
	v := chi.URLParam(r, param)
	if v == "" {
		return "", &domain.ValidationError{Fields: map[string]string{"path." + param: "is required"}}
	}
	return v, nil
}

// processReset picks the reset named by the {process} URL parameter.
func processReset(r *http.Request, resets map[string]func(id string)) (func(id string), error) {
	reset, ok := resets[chi.URLParam(r, "process")]
	if !ok {
		names := slices.Sorted(maps.Keys(resets))
		return nil, &domain.ValidationError{
			Fields: map[string]string{"path.process": "must be one of " + strings.Join(names, ", ")},
		}
	}
	return reset, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding tab API response", slog.Any("error", err))
	}
}

// Command bodies are a handful of fields.
const maxJSONBodyBytes = 64 << 10

// decodeJSONBody writes a 400 and returns false when the body is not a
// single JSON object of at most maxJSONBodyBytes. A wrongly typed field is
// reported under its own name, anything else against the whole body.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)

	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return true
	}

	field, msg := "", "invalid JSON"
	var (
		tooLarge *http.MaxBytesError
		typeErr  *json.UnmarshalTypeError
	)
	switch {
	case errors.As(err, &tooLarge):
		msg = fmt.Sprintf("exceeds %d bytes", tooLarge.Limit)
	case errors.As(err, &typeErr) && typeErr.Field != "":
		field, msg = typeErr.Field, "must be a "+typeErr.Type.String()
	}
	dto.WriteErrorResponse(w, r, &domain.ValidationError{Fields: map[string]string{field: msg}})
	return false
}

type validatable interface {
	Validate() error
}

// decodeAndValidate is decodeJSONBody followed by dst.Validate.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}

// accepted acknowledges a command that was dispatched to the store. Its
// effects settle asynchronously; clients observe them through GET /state.
func accepted(w http.ResponseWriter) {
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}
