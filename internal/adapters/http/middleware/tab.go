package middleware

import (
	"context"
	"net/http"
)

// HeaderTabID names the tab that served a response. OCC calls made on the
// tab's behalf carry the same header.
const HeaderTabID = "X-Tab-ID"

type tabIDKey struct{}

// TabIDFromContext returns the id Tab stored, or "".
func TabIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(tabIDKey{}).(string)
	return id
}

// Tab stamps every response with tabID and stores it in the request context.
// Commands are answered before their effects settle, so clients correlate a
// command with later state and backend traffic through this id.
func Tab(tabID string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(HeaderTabID, tabID)
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), tabIDKey{}, tabID)))
		})
	}
}
