package occ

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/go-storefront-state/internal/platform/httpclient"
)

// Requester centralizes the HTTP request lifecycle for OCC clients: URL
// building under the site prefix, JSON marshaling, execution via
// httpclient.Client, response body cleanup, status validation, error
// translation, and JSON decoding.
type Requester struct {
	client *httpclient.Client
	site   Site
	logger *slog.Logger
}

// NewRequester creates a Requester backed by the given HTTP client.
func NewRequester(client *httpclient.Client, site Site, logger *slog.Logger) *Requester {
	return &Requester{client: client, site: site, logger: logger}
}

// Do executes an OCC call. path is relative to the site root (for example
// "users/anonymous/carts"). query is merged with the site's language and
// currency parameters.
//
// reqBody is marshaled to JSON when non-nil. respBody, when non-nil, receives
// the decoded response. Any 2xx status is a success; anything else is passed
// to TranslateHTTPError.
func (r *Requester) Do(ctx context.Context, method, path string, query url.Values, reqBody, respBody any) error {
	u := r.site.URL(r.client.BaseURL(), path, query)

	var body io.Reader = http.NoBody
	if reqBody != nil {
		data, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("marshaling %s body for %s: %w", method, path, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("creating %s request for %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return r.execute(req, respBody)
}

// closeBody closes an HTTP response body and logs on failure.
func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}

func success(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

// execute sends the request, checks the status code, and optionally decodes
// the response body. It ensures resp.Body is always closed.
func (r *Requester) execute(req *http.Request, respBody any) error {
	ctx := req.Context()

	resp, err := r.client.Do(ctx, req)
	if err != nil {
		// httpclient.Do returns both resp and err once retries are exhausted
		// on a retryable status; the body still carries the OCC error list.
		if resp != nil {
			defer r.closeBody(ctx, resp)
			if !success(resp.StatusCode) {
				return TranslateHTTPError(resp)
			}
		}
		r.logger.ErrorContext(ctx, "request failed",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer r.closeBody(ctx, resp)

	if !success(resp.StatusCode) {
		translateErr := TranslateHTTPError(resp)
		r.logger.WarnContext(ctx, "unexpected status",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Int("status", resp.StatusCode),
		)
		return translateErr
	}

	if respBody != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
			return fmt.Errorf("decoding response from %s %s: %w", req.Method, req.URL.Path, err)
		}
	}

	return nil
}
