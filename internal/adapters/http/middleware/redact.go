package middleware

import (
	"cmp"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/go-storefront-state/internal/platform/logging"
)

const redacted = "[REDACTED]"

// RedactHeaders renders headers as log attributes sorted by name. Values of
// the headers in logging.SensitiveHeaders are replaced; repeated values are
// comma-joined.
func RedactHeaders(headers http.Header) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(headers))
	for key, vals := range headers {
		v := strings.Join(vals, ",")
		if logging.SensitiveHeaders[strings.ToLower(key)] {
			v = redacted
		}
		attrs = append(attrs, slog.String(key, v))
	}
	slices.SortFunc(attrs, func(a, b slog.Attr) int { return cmp.Compare(a.Key, b.Key) })
	return attrs
}
