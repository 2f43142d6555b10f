// Package persist mirrors selected state features into a shared
// SnapshotMedium and restores them when a tab starts.
//
// The snapshot is one JSON object keyed by feature name:
//
//	{"anonymous-consents": {"templates": {...}, "consents": [...], "ui": {...}}}
package persist

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/jsamuelsen11/go-storefront-state/internal/state/store"
)

// DefaultFeatures are persisted when no features are configured.
var DefaultFeatures = []string{store.FeatureAnonymousConsents}

// Snapshot is the decoded form of a persisted snapshot. Absent features are
// nil.
type Snapshot struct {
	AnonymousConsents *store.AnonymousConsentsState `json:"anonymous-consents,omitempty"`
	Cart              *store.CartState              `json:"cart,omitempty"`
}

// Encode serializes the listed features of st. Unknown feature names are an
// error.
func Encode(st store.State, features []string) ([]byte, error) {
	var snap Snapshot
	for _, f := range features {
		switch f {
		case store.FeatureAnonymousConsents:
			ac := st.AnonymousConsents
			snap.AnonymousConsents = &ac
		case store.FeatureCart:
			c := st.Cart
			snap.Cart = &c
		default:
			return nil, fmt.Errorf("encoding snapshot: unknown feature %q", f)
		}
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return data, nil
}

// Decode parses a persisted snapshot.
func Decode(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("decoding snapshot: %w", err)
	}
	return snap, nil
}

// Rehydrate merges the listed features of snap into st. Loaders restored
// from the snapshot are settled: a LOAD that was outstanding in the writing
// tab can never complete in this one.
func Rehydrate(st store.State, snap Snapshot, features []string) store.State {
	if snap.AnonymousConsents != nil && slices.Contains(features, store.FeatureAnonymousConsents) {
		ac := *snap.AnonymousConsents
		ac.Templates = ac.Templates.Settle()
		ac.Consents = slices.Clone(ac.Consents)
		st.AnonymousConsents = ac
	}
	if snap.Cart != nil && slices.Contains(features, store.FeatureCart) {
		c := *snap.Cart
		c.Active = c.Active.Settle()
		c.Refresh = false
		st.Cart = c
	}
	return st
}
