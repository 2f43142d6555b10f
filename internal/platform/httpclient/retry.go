package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/go-storefront-state/internal/platform/logging"
)

// jitterFraction is the maximum jitter as a fraction of the delay (±25%).
const jitterFraction = 0.25

// retryPolicy holds the values extracted from config.RetryConfig.
type retryPolicy struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

// attempts returns how many times a request with the given method may be
// sent. OCC creates carts and adds entries with POST, so a POST is sent
// once: a retry after a lost response would create a second cart or add the
// product twice.
func (p retryPolicy) attempts(method string) int {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions,
		http.MethodPut, http.MethodPatch, http.MethodDelete:
		return p.maxAttempts
	default:
		return 1
	}
}

// delay returns the wait before retry number attempt (1 is the first retry).
// A Retry-After header on the previous response wins over the backoff curve
// but is still capped at maxInterval.
func (p retryPolicy) delay(attempt int, prev *http.Response) time.Duration {
	if d, ok := retryAfter(prev); ok {
		return min(d, p.maxInterval)
	}
	return p.backoff(attempt)
}

// backoff is exponential with ±25% jitter, capped at maxInterval before the
// jitter is applied.
func (p retryPolicy) backoff(attempt int) time.Duration {
	d := float64(p.initialInterval) * math.Pow(p.multiplier, float64(attempt-1))
	d = min(d, float64(p.maxInterval))
	d += d * jitterFraction * (2*rand.Float64() - 1) //nolint:gosec // jitter, not security
	return time.Duration(max(d, 0))
}

// retryAfter parses a Retry-After header given in seconds.
func retryAfter(resp *http.Response) (time.Duration, bool) {
	if resp == nil {
		return 0, false
	}
	v := resp.Header.Get("Retry-After")
	if v == "" {
		return 0, false
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs < 0 {
		return 0, false
	}
	return time.Duration(secs) * time.Second, true
}

// doWithRetry sends req until it gets a non-retryable outcome or runs out of
// attempts. The result is written to resp rather than returned to keep the
// bodyclose linter quiet; the caller closes resp.Body.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, resp **http.Response) error {
	attempts := c.retry.attempts(req.Method)
	if attempts <= 0 {
		return fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", attempts)
	}

	body, err := bufferBody(req)
	if err != nil {
		return err
	}

	var (
		lastErr  error
		lastResp *http.Response
	)
	for attempt := range attempts {
		if attempt > 0 {
			if err := c.wait(ctx, req, attempt, lastResp, lastErr); err != nil {
				return err
			}
		}
		if body != nil {
			req.Body = io.NopCloser(bytes.NewReader(body))
			req.ContentLength = int64(len(body))
		}

		r, err := c.httpClient.Do(req)
		if err != nil {
			lastErr, lastResp = err, nil
			if !isRetryable(err) {
				return err
			}
			continue
		}

		if !isRetryableStatus(r.StatusCode) {
			*resp = r
			return nil
		}

		lastErr = fmt.Errorf("HTTP %d from %s", r.StatusCode, c.serviceName)
		if attempt == attempts-1 {
			// The caller still reads the OCC error list from the body.
			*resp = r
			return lastErr
		}

		_, _ = io.Copy(io.Discard, r.Body)
		_ = r.Body.Close()
		lastResp = r
	}

	return lastErr
}

func bufferBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	defer func() { _ = req.Body.Close() }()

	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	return b, nil
}

func (c *Client) wait(ctx context.Context, req *http.Request, attempt int, prev *http.Response, lastErr error) error {
	d := c.retry.delay(attempt, prev)

	logging.FromContext(ctx).WarnContext(ctx, "retrying OCC request",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.String("peer_service", c.serviceName),
		slog.Int("attempt", attempt+1),
		slog.Duration("backoff", d),
		slog.Any("error", lastErr),
	)

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// isRetryable reports whether a transport error is worth another attempt.
// Cancellation and deadlines are final; everything else, network errors
// included, is retried.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// isRetryableStatus reports 429 and 5xx. OCC business errors are 4xx and
// are final.
func isRetryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}
