package persist

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-storefront-state/internal/domain"
	"github.com/jsamuelsen11/go-storefront-state/internal/state/loader"
	"github.com/jsamuelsen11/go-storefront-state/internal/state/store"
)

func consentState() store.State {
	st := store.Initial()
	st.AnonymousConsents = store.AnonymousConsentsState{
		Templates: loader.State[[]domain.ConsentTemplate]{
			Value: []domain.ConsentTemplate{
				{ID: "MARKETING", Name: "Marketing", Version: 0},
				{ID: "PERSONALIZATION", Version: 1},
			},
			Success: true,
		},
		Consents: []domain.AnonymousConsent{
			{TemplateCode: "MARKETING", ConsentState: domain.ConsentGiven, Version: 0},
			{TemplateCode: "PERSONALIZATION", Version: 1},
		},
		UI: store.ConsentsUI{BannerVisible: false},
	}
	st.Auth.UserID = "current"
	return st
}

func TestEncode_Golden(t *testing.T) {
	t.Parallel()

	data, err := Encode(consentState(), DefaultFeatures)
	require.NoError(t, err)

	var pretty bytes.Buffer
	require.NoError(t, json.Indent(&pretty, data, "", "  "))
	pretty.WriteByte('\n')

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "anonymous_consents", pretty.Bytes())
}

func TestEncode_UnknownFeature(t *testing.T) {
	t.Parallel()

	_, err := Encode(store.Initial(), []string{"wishlist"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wishlist")
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	features := []string{store.FeatureAnonymousConsents, store.FeatureCart}

	st := consentState()
	st.Cart.Active = loader.State[domain.Cart]{
		Value:   domain.Cart{Code: "0001", GUID: "g1", Entries: []domain.OrderEntry{{Product: domain.Product{Code: "P1"}, Quantity: 2}}},
		Success: true,
	}
	st.Cart.LastError = &domain.ErrorPayload{Message: "out of stock", Status: 400}

	data, err := Encode(st, features)
	require.NoError(t, err)

	snap, err := Decode(data)
	require.NoError(t, err)

	got := Rehydrate(store.Initial(), snap, features)

	assert.Equal(t, st.AnonymousConsents, got.AnonymousConsents)
	assert.Equal(t, st.Cart, got.Cart)
	// Non-persisted slices come from the base state.
	assert.Empty(t, got.Auth.UserID)
}

func TestRehydrate(t *testing.T) {
	t.Parallel()

	loading := consentState()
	loading.AnonymousConsents.Templates.Loading = true
	loading.AnonymousConsents.Templates.Success = false
	loading.Cart.Active.Loading = true
	loading.Cart.Refresh = true

	snap := Snapshot{AnonymousConsents: &loading.AnonymousConsents, Cart: &loading.Cart}

	tests := []struct {
		name     string
		features []string
		check    func(t *testing.T, got store.State)
	}{
		{
			name:     "loaders are settled",
			features: []string{store.FeatureAnonymousConsents, store.FeatureCart},
			check: func(t *testing.T, got store.State) {
				assert.False(t, got.AnonymousConsents.Templates.Loading)
				assert.Len(t, got.AnonymousConsents.Templates.Value, 2)
				assert.False(t, got.Cart.Active.Loading)
				assert.False(t, got.Cart.Refresh)
			},
		},
		{
			name:     "features not listed are ignored",
			features: DefaultFeatures,
			check: func(t *testing.T, got store.State) {
				assert.Len(t, got.AnonymousConsents.Consents, 2)
				assert.Equal(t, store.CartState{}, got.Cart)
			},
		},
		{
			name:     "nothing listed keeps base",
			features: nil,
			check: func(t *testing.T, got store.State) {
				assert.Equal(t, store.Initial(), got)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tt.check(t, Rehydrate(store.Initial(), snap, tt.features))
		})
	}
}

func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		wantErr bool
		wantAC  bool
	}{
		{name: "empty object", data: `{}`},
		{name: "consents only", data: `{"anonymous-consents":{"consents":[],"ui":{"bannerVisible":true}}}`, wantAC: true},
		{name: "loader error payload", data: `{"anonymous-consents":{"templates":{"error":{"message":"boom","status":500}}}}`, wantAC: true},
		{name: "truncated", data: `{"anonymous-consents":`, wantErr: true},
		{name: "wrong shape", data: `{"anonymous-consents":[]}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			snap, err := Decode([]byte(tt.data))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAC, snap.AnonymousConsents != nil)
		})
	}
}
