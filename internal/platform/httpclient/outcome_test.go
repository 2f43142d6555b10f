package httpclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/sony/gobreaker/v2"
)

func TestOutcome(t *testing.T) {
	t.Parallel()

	ok := &http.Response{StatusCode: http.StatusOK}
	unavailable := &http.Response{StatusCode: http.StatusServiceUnavailable}

	tests := []struct {
		name string
		resp *http.Response
		err  error
		want string
	}{
		{name: "2xx", resp: ok, want: "success"},
		{name: "304", resp: &http.Response{StatusCode: http.StatusNotModified}, want: "success"},
		{name: "4xx", resp: &http.Response{StatusCode: http.StatusBadRequest}, want: "error"},
		{name: "5xx after retries", resp: unavailable, err: errors.New("giving up after 3 attempts"), want: "error"},
		{name: "transport error", err: errors.New("connection refused"), want: "error"},
		{name: "breaker open", err: gobreaker.ErrOpenState, want: "circuit_open"},
		{name: "half-open probe busy", err: gobreaker.ErrTooManyRequests, want: "circuit_open"},
		{name: "tab closing", err: fmt.Errorf("waiting: %w", context.Canceled), want: "canceled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := outcome(tt.resp, tt.err); got != tt.want {
				t.Errorf("outcome() = %q, want %q", got, tt.want)
			}
		})
	}
}
