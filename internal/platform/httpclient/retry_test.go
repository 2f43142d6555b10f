package httpclient

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net"
	"net/http"
	"testing"
	"time"
)

func testPolicy() retryPolicy {
	return retryPolicy{
		maxAttempts:     4,
		initialInterval: 100 * time.Millisecond,
		maxInterval:     500 * time.Millisecond,
		multiplier:      2.0,
	}
}

func TestRetryPolicy_Attempts(t *testing.T) {
	t.Parallel()

	p := testPolicy()
	tests := []struct {
		method string
		want   int
	}{
		{http.MethodGet, 4},
		{http.MethodHead, 4},
		{http.MethodPut, 4},
		{http.MethodPatch, 4},
		{http.MethodDelete, 4},
		{http.MethodPost, 1},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			t.Parallel()

			if got := p.attempts(tt.method); got != tt.want {
				t.Errorf("attempts(%s) = %d, want %d", tt.method, got, tt.want)
			}
		})
	}
}

func TestRetryPolicy_BackoffBounds(t *testing.T) {
	t.Parallel()

	p := testPolicy()
	for attempt := 1; attempt <= 6; attempt++ {
		base := min(float64(p.initialInterval)*math.Pow(p.multiplier, float64(attempt-1)), float64(p.maxInterval))
		lo := time.Duration(base * (1 - jitterFraction))
		hi := time.Duration(base * (1 + jitterFraction))

		for range 200 {
			if d := p.backoff(attempt); d < lo || d > hi {
				t.Fatalf("attempt %d: backoff %v not in [%v, %v]", attempt, d, lo, hi)
			}
		}
	}
}

func TestRetryPolicy_Delay(t *testing.T) {
	t.Parallel()

	p := testPolicy()
	withHeader := func(v string) *http.Response {
		return &http.Response{Header: http.Header{"Retry-After": []string{v}}}
	}

	tests := []struct {
		name string
		prev *http.Response
		want time.Duration // zero means "backoff range for attempt 1"
	}{
		{name: "no response", prev: nil},
		{name: "no header", prev: &http.Response{Header: http.Header{}}},
		{name: "retry-after below cap", prev: withHeader("0"), want: 0},
		{name: "retry-after capped", prev: withHeader("30"), want: p.maxInterval},
		{name: "http-date ignored", prev: withHeader("Wed, 21 Oct 2015 07:28:00 GMT")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := p.delay(1, tt.prev)
			if _, ok := retryAfter(tt.prev); ok {
				if got != tt.want {
					t.Errorf("delay = %v, want %v", got, tt.want)
				}
				return
			}
			lo := time.Duration(float64(p.initialInterval) * (1 - jitterFraction))
			hi := time.Duration(float64(p.initialInterval) * (1 + jitterFraction))
			if got < lo || got > hi {
				t.Errorf("delay = %v, want backoff in [%v, %v]", got, lo, hi)
			}
		})
	}
}

func TestRetryAfter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value  string
		want   time.Duration
		wantOK bool
	}{
		{value: "", wantOK: false},
		{value: "2", want: 2 * time.Second, wantOK: true},
		{value: "-1", wantOK: false},
		{value: "soon", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.value), func(t *testing.T) {
			t.Parallel()

			resp := &http.Response{Header: http.Header{}}
			if tt.value != "" {
				resp.Header.Set("Retry-After", tt.value)
			}
			got, ok := retryAfter(resp)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("retryAfter(%q) = %v, %v; want %v, %v", tt.value, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "canceled", err: context.Canceled, want: false},
		{name: "deadline", err: context.DeadlineExceeded, want: false},
		{name: "wrapped canceled", err: fmt.Errorf("get cart: %w", context.Canceled), want: false},
		{name: "dial error", err: &net.OpError{Op: "dial", Err: errors.New("connection refused")}, want: true},
		{name: "generic", err: errors.New("connection reset"), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := isRetryable(tt.err); got != tt.want {
				t.Errorf("isRetryable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsRetryableStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		want   bool
	}{
		{http.StatusOK, false},
		{http.StatusCreated, false},
		{http.StatusBadRequest, false},
		{http.StatusNotFound, false},
		{http.StatusTooManyRequests, true},
		{http.StatusInternalServerError, true},
		{http.StatusBadGateway, true},
		{http.StatusServiceUnavailable, true},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			t.Parallel()

			if got := isRetryableStatus(tt.status); got != tt.want {
				t.Errorf("isRetryableStatus(%d) = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}
