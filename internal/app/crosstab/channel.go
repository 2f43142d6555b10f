// Package crosstab replays consent and banner changes written by other tabs
// into the local store.
//
// Every tab persists its snapshot to one shared medium key. When another tab
// writes it, the channel diffs the old and new snapshots and dispatches the
// same actions a local user would have, marked as remote so the local
// persist sync does not write them back.
package crosstab

import (
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/go-storefront-state/internal/domain"
	"github.com/jsamuelsen11/go-storefront-state/internal/ports"
	"github.com/jsamuelsen11/go-storefront-state/internal/state/persist"
	"github.com/jsamuelsen11/go-storefront-state/internal/state/store"
)

// Channel subscribes a store to snapshot writes of other tabs.
type Channel struct {
	store  *store.Store
	medium ports.SnapshotMedium
	key    string
	logger *slog.Logger
}

// Option configures a Channel.
type Option func(*Channel)

// WithKey overrides persist.DefaultKey.
func WithKey(key string) Option {
	return func(c *Channel) { c.key = key }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Channel) { c.logger = logger }
}

func New(s *store.Store, medium ports.SnapshotMedium, opts ...Option) *Channel {
	c := &Channel{
		store:  s,
		medium: medium,
		key:    persist.DefaultKey,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Open starts watching the medium. Closing the returned subscription stops
// it.
func (c *Channel) Open() (ports.Subscription, error) {
	sub, err := c.medium.Watch(c.handle)
	if err != nil {
		return nil, fmt.Errorf("watching snapshot %q: %w", c.key, err)
	}
	return sub, nil
}

func (c *Channel) handle(ev ports.StorageEvent) {
	if ev.Key != c.key || ev.NewValue == nil || ev.OldValue == nil {
		return
	}
	if ev.Origin == c.store.TabID() {
		return
	}

	prev, err := persist.Decode(ev.OldValue)
	if err != nil {
		c.logger.Debug("skipping snapshot change, old value malformed", slog.Any("error", err))
		return
	}
	next, err := persist.Decode(ev.NewValue)
	if err != nil {
		c.logger.Debug("skipping snapshot change, new value malformed", slog.Any("error", err))
		return
	}

	actions := Diff(prev, next)
	if len(actions) == 0 {
		return
	}

	c.logger.Debug("applying snapshot change from another tab",
		slog.String("origin", ev.Origin),
		slog.Int("actions", len(actions)),
	)
	c.store.DispatchRemote(actions...)
}

// Diff returns the actions that turn the anonymous consent state of prev into
// that of next: a banner toggle when visibility changed, then one give or
// withdraw per template whose decision changed, in next's order. Entries are
// matched by template code. Snapshots without the consent feature yield
// nothing.
func Diff(prev, next persist.Snapshot) []store.Action {
	if prev.AnonymousConsents == nil || next.AnonymousConsents == nil {
		return nil
	}
	before, after := prev.AnonymousConsents, next.AnonymousConsents

	var out []store.Action
	if before.UI.BannerVisible != after.UI.BannerVisible {
		out = append(out, store.ToggleBannerVisibility{Visible: after.UI.BannerVisible})
	}

	for _, c := range after.Consents {
		old, ok := domain.FindConsent(before.Consents, c.TemplateCode)
		if ok && old.ConsentState == c.ConsentState {
			continue
		}
		switch {
		case c.IsGiven():
			out = append(out, store.GiveAnonymousConsent{TemplateCode: c.TemplateCode})
		case c.IsWithdrawn():
			out = append(out, store.WithdrawAnonymousConsent{TemplateCode: c.TemplateCode})
		}
	}
	return out
}
