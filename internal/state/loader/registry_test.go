package loader_test

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-storefront-state/internal/domain"
	"github.com/jsamuelsen11/go-storefront-state/internal/state/loader"
)

func TestRegistry_LazyKeys(t *testing.T) {
	t.Parallel()

	var r loader.Registry[struct{}]
	assert.True(t, r.Get("addVoucher").NotLoaded())
	assert.False(t, r.Has("addVoucher"))

	// A completion for an unknown key does not create it.
	r = r.Apply(loader.Meta{ID: "addVoucher", Phase: loader.PhaseSuccess}, struct{}{})
	assert.False(t, r.Has("addVoucher"))

	r = r.Apply(loader.Meta{ID: "addVoucher", Phase: loader.PhaseLoad, Flight: 5}, struct{}{})
	require.True(t, r.Has("addVoucher"))
	assert.True(t, r.Get("addVoucher").Loading)
	assert.Equal(t, []string{"addVoucher"}, r.Keys())
}

func TestRegistry_ApplyDoesNotMutateReceiver(t *testing.T) {
	t.Parallel()

	var r0 loader.Registry[int]
	r1 := r0.Apply(loader.Meta{ID: "a", Phase: loader.PhaseLoad, Flight: 1}, 0)
	r2 := r1.Apply(loader.Meta{ID: "a", Phase: loader.PhaseSuccess, Flight: 1}, 42)

	assert.Equal(t, 0, r0.Len())
	assert.True(t, r1.Get("a").Loading)
	assert.Equal(t, 42, r2.Get("a").Value)
}

func TestRegistry_KeysAreIndependent(t *testing.T) {
	t.Parallel()

	var r loader.Registry[int]
	r = r.Apply(loader.Meta{ID: "a", Phase: loader.PhaseLoad, Flight: 1}, 0)
	r = r.Apply(loader.Meta{ID: "b", Phase: loader.PhaseLoad, Flight: 2}, 0)
	r = r.Apply(loader.Meta{ID: "b", Phase: loader.PhaseFail, Flight: 2, Error: &domain.ErrorPayload{Message: "x"}}, 0)

	assert.True(t, r.Get("a").Loading)
	assert.True(t, r.Get("b").Failed())
}

func TestRegistry_ResetRemovesKeyAndIsIdempotent(t *testing.T) {
	t.Parallel()

	var r loader.Registry[int]
	r = r.Apply(loader.Meta{ID: "a", Phase: loader.PhaseLoad, Flight: 1}, 0)

	reset := loader.Meta{ID: "a", Phase: loader.PhaseReset}
	once := r.Apply(reset, 0)
	twice := once.Apply(reset, 0)

	assert.False(t, once.Has("a"))
	assert.True(t, reflect.DeepEqual(once, twice))

	// A late completion after RESET is dropped.
	late := once.Apply(loader.Meta{ID: "a", Phase: loader.PhaseSuccess, Flight: 1}, 9)
	assert.False(t, late.Has("a"))
}

func TestRegistry_DeleteFunc(t *testing.T) {
	t.Parallel()

	var r loader.Registry[int]
	for i, key := range []string{"give:A", "give:B", "withdraw:A"} {
		r = r.Apply(loader.Meta{ID: key, Phase: loader.PhaseLoad, Flight: uint64(i + 1)}, 0)
	}

	gives := func(key string) bool { return strings.HasPrefix(key, "give:") }
	next := r.DeleteFunc(gives)

	assert.Equal(t, []string{"withdraw:A"}, next.Keys())
	assert.Equal(t, 3, r.Len(), "receiver mutated")
	assert.True(t, reflect.DeepEqual(next, next.DeleteFunc(gives)))
	assert.Zero(t, next.DeleteFunc(func(string) bool { return true }).Len())
}

func TestRegistry_JSONRoundTrip(t *testing.T) {
	t.Parallel()

	var empty loader.Registry[struct{}]
	data, err := json.Marshal(empty)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(data))

	var back loader.Registry[struct{}]
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, reflect.DeepEqual(empty, back))

	populated := empty.
		Apply(loader.Meta{ID: "giveConsent", Phase: loader.PhaseLoad, Flight: 1}, struct{}{}).
		Apply(loader.Meta{ID: "giveConsent", Phase: loader.PhaseSuccess, Flight: 1}, struct{}{})
	data, err = json.Marshal(populated)
	require.NoError(t, err)
	assert.JSONEq(t, `{"giveConsent":{"value":{},"loading":false,"success":true,"error":false}}`, string(data))

	back = loader.Registry[struct{}]{}
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, reflect.DeepEqual(populated, back))
}

func TestRegistry_Settle(t *testing.T) {
	t.Parallel()

	var r loader.Registry[int]
	r = r.Apply(loader.Meta{ID: "a", Phase: loader.PhaseLoad, Flight: 3}, 0).Settle()
	assert.False(t, r.Get("a").Loading)
	assert.Zero(t, r.Get("a").Flight)
}
