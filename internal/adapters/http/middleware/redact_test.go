package middleware_test

import (
	"net/http"
	"testing"

	"github.com/jsamuelsen11/go-storefront-state/internal/adapters/http/middleware"
)

func TestRedactHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers http.Header
		want    [][2]string
	}{
		{name: "empty", headers: http.Header{}},
		{
			name:    "credentials",
			headers: http.Header{"Authorization": {"Bearer secret-token"}, "X-Api-Key": {"k-123"}, "Cookie": {"JSESSIONID=abc123"}},
			want:    [][2]string{{"Authorization", "[REDACTED]"}, {"Cookie", "[REDACTED]"}, {"X-Api-Key", "[REDACTED]"}},
		},
		{
			name:    "anonymous consents",
			headers: http.Header{"X-Anonymous-Consents": {`[{"templateCode":"MARKETING","consentState":"GIVEN"}]`}},
			want:    [][2]string{{"X-Anonymous-Consents", "[REDACTED]"}},
		},
		{
			name:    "ordinary headers sorted and joined",
			headers: http.Header{"X-Tab-Id": {"tab-a"}, "Accept": {"text/html", "application/json"}},
			want:    [][2]string{{"Accept", "text/html,application/json"}, {"X-Tab-Id", "tab-a"}},
		},
		{
			name:    "mixed",
			headers: http.Header{"Authorization": {"Bearer secret"}, "Content-Type": {"application/json"}},
			want:    [][2]string{{"Authorization", "[REDACTED]"}, {"Content-Type", "application/json"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			attrs := middleware.RedactHeaders(tt.headers)
			if len(attrs) != len(tt.want) {
				t.Fatalf("len(attrs) = %d, want %d", len(attrs), len(tt.want))
			}
			for i, w := range tt.want {
				if attrs[i].Key != w[0] || attrs[i].Value.String() != w[1] {
					t.Errorf("attrs[%d] = %s=%q, want %s=%q", i, attrs[i].Key, attrs[i].Value.String(), w[0], w[1])
				}
			}
		})
	}
}
