package effects

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-storefront-state/internal/domain"
	"github.com/jsamuelsen11/go-storefront-state/internal/state/loader"
	"github.com/jsamuelsen11/go-storefront-state/internal/state/store"
)

func intPtr(n int) *int { return &n }

func anonymousCart(guid string, entries ...domain.OrderEntry) *domain.Cart {
	return &domain.Cart{
		Code:       "0000" + guid,
		GUID:       guid,
		User:       &domain.Principal{UID: domain.UserAnonymous},
		Entries:    entries,
		TotalItems: intPtr(len(entries)),
	}
}

func withCart(c *domain.Cart) store.State {
	st := store.Initial()
	st.Auth.UserID = domain.UserAnonymous
	st.Cart.Active = loader.State[domain.Cart]{Value: *c, Success: true}
	return st
}

func TestLoadCart(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cart    *domain.Cart
		err     error
		success bool
		status  int
	}{
		{name: "success", cart: anonymousCart("g1"), success: true},
		{name: "not found", err: domain.ErrNotFound, status: 404},
		{name: "backend failure", err: &domain.BackendError{Status: 500, Message: "boom"}, status: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := newHarness(t, store.Initial())
			h.carts.EXPECT().Load(mock.Anything, domain.UserAnonymous, "g1").Return(tt.cart, tt.err)
			h.start(t)

			h.store.Dispatch(store.LoadCart{UserID: domain.UserAnonymous, CartID: "g1"})
			st := h.idle(t)

			active := st.Cart.Active
			assert.False(t, active.Loading)
			assert.Equal(t, tt.success, active.Success)
			if tt.success {
				assert.Equal(t, *tt.cart, active.Value)
				return
			}
			require.True(t, active.Failed())
			assert.Equal(t, tt.status, active.Error.Payload.Status)
		})
	}
}

func TestAddEntry_ReloadsCart(t *testing.T) {
	t.Parallel()

	entry := domain.OrderEntry{EntryNumber: 0, Product: domain.Product{Code: "300938"}, Quantity: 2}
	h := newHarness(t, withCart(anonymousCart("g1")))
	h.entries.EXPECT().Add(mock.Anything, domain.UserAnonymous, "g1", "300938", 2).Return(nil)
	h.carts.EXPECT().Load(mock.Anything, domain.UserAnonymous, "g1").Return(anonymousCart("g1", entry), nil).Once()
	h.start(t)

	h.store.Dispatch(store.AddEntry{UserID: domain.UserAnonymous, CartID: "g1", ProductCode: "300938", Quantity: 2})
	st := h.idle(t)

	assert.True(t, store.CartStable(st))
	assert.Equal(t, []domain.OrderEntry{entry}, st.Cart.Active.Value.Entries)
	assert.Nil(t, st.Cart.LastError)
}

func TestAddEntry_FailureStillReloads(t *testing.T) {
	t.Parallel()

	h := newHarness(t, withCart(anonymousCart("g1")))
	h.entries.EXPECT().Add(mock.Anything, domain.UserAnonymous, "g1", "300938", 200).
		Return(&domain.BackendError{Status: 400, Message: "maxOrderQuantityExceeded", Kind: domain.ErrValidation})
	h.carts.EXPECT().Load(mock.Anything, domain.UserAnonymous, "g1").Return(anonymousCart("g1"), nil).Once()
	h.start(t)

	h.store.Dispatch(store.AddEntry{UserID: domain.UserAnonymous, CartID: "g1", ProductCode: "300938", Quantity: 200})
	st := h.idle(t)

	require.NotNil(t, st.Cart.LastError)
	assert.Equal(t, "maxOrderQuantityExceeded", st.Cart.LastError.Message)
	assert.True(t, store.CartStable(st))
}

func TestCartLoad_StaleResultIsReloaded(t *testing.T) {
	t.Parallel()

	entry := domain.OrderEntry{Product: domain.Product{Code: "p1"}, Quantity: 1}
	release := make(chan struct{})

	h := newHarness(t, withCart(anonymousCart("g1")))
	h.carts.EXPECT().Load(mock.Anything, domain.UserAnonymous, "g1").
		Run(func(context.Context, string, string) { <-release }).
		Return(anonymousCart("g1"), nil).Once()
	h.carts.EXPECT().Load(mock.Anything, domain.UserAnonymous, "g1").
		Return(anonymousCart("g1", entry), nil).Once()
	h.entries.EXPECT().Add(mock.Anything, domain.UserAnonymous, "g1", "p1", 1).Return(nil)
	h.start(t)

	h.store.Dispatch(store.LoadCart{UserID: domain.UserAnonymous, CartID: "g1"})
	h.waitFor(t, func(st store.State) bool { return st.Cart.Active.Loading })

	h.store.Dispatch(store.AddEntry{UserID: domain.UserAnonymous, CartID: "g1", ProductCode: "p1", Quantity: 1})
	h.waitFor(t, func(st store.State) bool { return st.Cart.Refresh })
	close(release)

	st := h.idle(t)

	h.carts.AssertNumberOfCalls(t, "Load", 2)
	assert.Equal(t, []domain.OrderEntry{entry}, st.Cart.Active.Value.Entries)
	assert.True(t, store.CartStable(st))
}

func TestMergeCart(t *testing.T) {
	t.Parallel()

	merged := &domain.Cart{Code: "00001", GUID: "g-user", User: &domain.Principal{UID: "jane@example.com"}, TotalItems: intPtr(3)}

	tests := []struct {
		name      string
		current   *domain.Cart
		loadErr   error
		wantMerge string
	}{
		{name: "into the user's current cart", current: &domain.Cart{Code: "00001", GUID: "g-user"}, wantMerge: "g-user"},
		{name: "into a new cart", loadErr: domain.ErrNotFound},
		{name: "lookup failure creates a new cart", loadErr: domain.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			initial := withCart(anonymousCart("g-anon"))
			initial.Auth.UserID = "current"

			h := newHarness(t, initial)
			h.carts.EXPECT().Load(mock.Anything, "current", domain.CartCurrent).Return(tt.current, tt.loadErr)
			h.carts.EXPECT().Create(mock.Anything, "current", "g-anon", tt.wantMerge).Return(merged, nil)
			h.start(t)

			h.store.Dispatch(store.MergeCart{UserID: "current", CartID: "g-anon"})
			st := h.idle(t)

			assert.True(t, st.Cart.MergeComplete)
			assert.Equal(t, *merged, st.Cart.Active.Value)
			assert.Equal(t, []store.MergeCartSuccess{{UserID: "current", CartID: "g-anon"}},
				actionsOf[store.MergeCartSuccess](h))
		})
	}
}

func TestCreateCart_Fail(t *testing.T) {
	t.Parallel()

	h := newHarness(t, store.Initial())
	h.carts.EXPECT().Create(mock.Anything, domain.UserAnonymous, "", "").Return(nil, domain.ErrUnavailable)
	h.start(t)

	h.store.Dispatch(store.CreateCart{UserID: domain.UserAnonymous})
	st := h.idle(t)

	assert.True(t, st.Cart.Active.Failed())
	assert.False(t, st.Cart.MergeComplete)
	assert.Empty(t, actionsOf[store.MergeCartSuccess](h))
}

func TestDeleteCart(t *testing.T) {
	t.Parallel()

	h := newHarness(t, withCart(anonymousCart("g1")))
	h.carts.EXPECT().Delete(mock.Anything, domain.UserAnonymous, "g1").Return(nil)
	h.start(t)

	h.store.Dispatch(store.DeleteCart{UserID: domain.UserAnonymous, CartID: "g1"})
	st := h.idle(t)

	assert.True(t, store.ProcessSuccess(st, store.ProcessDeleteCart))
	assert.False(t, st.Cart.Active.Value.IsCreated())
}

func TestVoucher(t *testing.T) {
	t.Parallel()

	t.Run("add success reloads the cart", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t, withCart(anonymousCart("g1")))
		h.vouchers.EXPECT().Add(mock.Anything, domain.UserAnonymous, "g1", "SUMMER").Return(nil)
		h.carts.EXPECT().Load(mock.Anything, domain.UserAnonymous, "g1").Return(anonymousCart("g1"), nil)
		h.start(t)

		h.store.Dispatch(store.AddVoucher{UserID: domain.UserAnonymous, CartID: "g1", VoucherID: "SUMMER"})
		st := h.idle(t)

		assert.True(t, store.ProcessSuccess(st, store.ProcessKey(store.ProcessAddVoucher, "SUMMER")))
		assert.True(t, store.CartStable(st))
	})

	t.Run("add failure does not reload", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t, withCart(anonymousCart("g1")))
		h.vouchers.EXPECT().Add(mock.Anything, domain.UserAnonymous, "g1", "EXPIRED").
			Return(&domain.BackendError{Status: 400, Message: "voucher expired"})
		h.start(t)

		h.store.Dispatch(store.AddVoucher{UserID: domain.UserAnonymous, CartID: "g1", VoucherID: "EXPIRED"})
		st := h.idle(t)

		assert.True(t, store.ProcessError(st, store.ProcessKey(store.ProcessAddVoucher, "EXPIRED")))
		assert.Empty(t, actionsOf[store.LoadCart](h))
	})

	t.Run("remove success reloads the cart", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t, withCart(anonymousCart("g1")))
		h.vouchers.EXPECT().Remove(mock.Anything, domain.UserAnonymous, "g1", "SUMMER").Return(nil)
		h.carts.EXPECT().Load(mock.Anything, domain.UserAnonymous, "g1").Return(anonymousCart("g1"), nil)
		h.start(t)

		h.store.Dispatch(store.RemoveVoucher{UserID: domain.UserAnonymous, CartID: "g1", VoucherID: "SUMMER"})
		st := h.idle(t)

		assert.True(t, store.ProcessSuccess(st, store.ProcessKey(store.ProcessRemoveVoucher, "SUMMER")))
	})
}

func TestVoucher_ConcurrentCodesKeepTheirOutcomes(t *testing.T) {
	t.Parallel()

	h := newHarness(t, withCart(anonymousCart("g1")))
	h.vouchers.EXPECT().Add(mock.Anything, domain.UserAnonymous, "g1", "SUMMER").Return(nil)
	h.vouchers.EXPECT().Add(mock.Anything, domain.UserAnonymous, "g1", "EXPIRED").
		Return(&domain.BackendError{Status: 400, Message: "voucher expired"})
	h.carts.EXPECT().Load(mock.Anything, domain.UserAnonymous, "g1").Return(anonymousCart("g1"), nil)
	h.start(t)

	h.store.Dispatch(
		store.AddVoucher{UserID: domain.UserAnonymous, CartID: "g1", VoucherID: "SUMMER"},
		store.AddVoucher{UserID: domain.UserAnonymous, CartID: "g1", VoucherID: "EXPIRED"},
	)
	st := h.idle(t)

	assert.True(t, store.ProcessSuccess(st, store.ProcessKey(store.ProcessAddVoucher, "SUMMER")))
	assert.True(t, store.ProcessError(st, store.ProcessKey(store.ProcessAddVoucher, "EXPIRED")))
}

func TestAddEmail(t *testing.T) {
	t.Parallel()

	h := newHarness(t, withCart(anonymousCart("g1")))
	h.email.EXPECT().AddEmail(mock.Anything, domain.UserAnonymous, "g1", "guest@example.com").Return(nil)
	h.carts.EXPECT().Load(mock.Anything, domain.UserAnonymous, "g1").Return(anonymousCart("g1"), nil)
	h.start(t)

	h.store.Dispatch(store.AddEmail{UserID: domain.UserAnonymous, CartID: "g1", Email: "guest@example.com"})
	st := h.idle(t)

	assert.True(t, store.ProcessSuccess(st, store.ProcessAddEmail))
	assert.Len(t, actionsOf[store.LoadCartSuccess](h), 1)
}
