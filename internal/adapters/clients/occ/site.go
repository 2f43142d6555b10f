package occ

import (
	"net/url"
	"strings"

	"github.com/jsamuelsen11/go-storefront-state/internal/platform/config"
)

// Site identifies the OCC base site and the context parameters sent with
// every call.
type Site struct {
	Prefix   string
	ID       string
	Language string
	Currency string
}

// SiteFromConfig extracts the site settings from the client configuration.
func SiteFromConfig(cfg *config.ClientConfig) Site {
	return Site{
		Prefix:   cfg.Prefix,
		ID:       cfg.Site,
		Language: cfg.Language,
		Currency: cfg.Currency,
	}
}

// URL joins baseURL, the prefix, the site id and path, and appends query
// together with the lang and curr parameters. Explicit query values win.
func (s Site) URL(baseURL, path string, query url.Values) string {
	parts := []string{strings.TrimRight(baseURL, "/")}
	for _, p := range []string{s.Prefix, s.ID, path} {
		if p = strings.Trim(p, "/"); p != "" {
			parts = append(parts, p)
		}
	}

	q := url.Values{}
	if s.Language != "" {
		q.Set("lang", s.Language)
	}
	if s.Currency != "" {
		q.Set("curr", s.Currency)
	}
	for k, v := range query {
		q[k] = v
	}

	u := strings.Join(parts, "/")
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	return u
}

// segment escapes one path segment.
func segment(v string) string {
	return url.PathEscape(v)
}
