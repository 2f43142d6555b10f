package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStatusRecorder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		write     func(w http.ResponseWriter)
		want      int
		wantWrote bool
	}{
		{name: "nothing written", write: func(http.ResponseWriter) {}, want: http.StatusOK},
		{
			name:      "explicit status",
			write:     func(w http.ResponseWriter) { w.WriteHeader(http.StatusAccepted) },
			want:      http.StatusAccepted,
			wantWrote: true,
		},
		{
			name:      "implicit status from body",
			write:     func(w http.ResponseWriter) { _, _ = w.Write([]byte("{}")) },
			want:      http.StatusOK,
			wantWrote: true,
		},
		{
			name: "first status wins",
			write: func(w http.ResponseWriter) {
				w.WriteHeader(http.StatusConflict)
				w.WriteHeader(http.StatusInternalServerError)
			},
			want:      http.StatusConflict,
			wantWrote: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			under := httptest.NewRecorder()
			rec := record(under)
			tt.write(rec)

			if rec.status != tt.want {
				t.Errorf("status = %d, want %d", rec.status, tt.want)
			}
			if rec.wrote != tt.wantWrote {
				t.Errorf("wrote = %v, want %v", rec.wrote, tt.wantWrote)
			}
			if rec.Unwrap() != under {
				t.Error("Unwrap did not return the wrapped writer")
			}
		})
	}
}

func TestRoute_WithoutRouter(t *testing.T) {
	t.Parallel()

	if got := route(httptest.NewRequest(http.MethodGet, "/state", http.NoBody)); got != unmatchedRoute {
		t.Errorf("route = %q, want %q", got, unmatchedRoute)
	}
}
