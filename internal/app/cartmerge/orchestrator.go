// Package cartmerge owns the active cart: it decides what happens to the
// visitor's cart when a user logs in and exposes the cart commands.
//
// On the transition from the anonymous (or uninitialized) identity to a
// concrete one, loadOrMerge picks exactly one path:
//
//   - no cart yet: load the user's current cart;
//   - guest cart: delete it, then replay its entries onto the user's cart,
//     creating that cart first when the user has none;
//   - cart of an authenticated session: merge it into the user's cart.
package cartmerge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/go-storefront-state/internal/domain"
	"github.com/jsamuelsen11/go-storefront-state/internal/ports"
	"github.com/jsamuelsen11/go-storefront-state/internal/state/store"
)

// Compile-time check that Orchestrator implements ports.CartService.
var _ ports.CartService = (*Orchestrator)(nil)

// ErrNoCart is returned by commands that need a cart none could be obtained
// for.
var ErrNoCart = errors.New("no active cart")

// Orchestrator implements ports.CartService and the login merge.
type Orchestrator struct {
	store  *store.Store
	carts  ports.CartAdapter
	logger *slog.Logger
}

// New creates an Orchestrator. carts is used to look up the user's cart
// during a merge; every other backend call goes through the store's effects.
func New(s *store.Store, carts ports.CartAdapter, logger *slog.Logger) *Orchestrator {
	return &Orchestrator{store: s, carts: carts, logger: logger}
}

// Attach starts watching for logins and returns the function that stops it.
func (o *Orchestrator) Attach() func() {
	return o.store.Subscribe(o.observe)
}

func (o *Orchestrator) observe(_ context.Context, ev store.Event) {
	if !JustLoggedIn(ev.Prev.Auth.UserID, ev.Next.Auth.UserID) {
		return
	}
	st := ev.Next
	o.store.Go(func(ctx context.Context) {
		o.loadOrMerge(ctx, st)
	})
}

// JustLoggedIn reports whether the identity changed from anonymous or
// uninitialized to a concrete user.
func JustLoggedIn(prev, next string) bool {
	return !domain.IsConcreteUser(prev) && domain.IsConcreteUser(next)
}

func (o *Orchestrator) loadOrMerge(ctx context.Context, st store.State) {
	userID := st.Auth.UserID
	cart := st.Cart.Active.Value

	switch {
	case !cart.IsCreated():
		o.logger.InfoContext(ctx, "loading user cart", slog.String("user_id", userID))
		o.store.Dispatch(store.LoadCart{UserID: userID, CartID: domain.CartCurrent})

	case cart.IsGuest():
		o.logger.InfoContext(ctx, "moving guest cart to user",
			slog.String("user_id", userID),
			slog.String("guest_cart", cart.GUID),
			slog.Int("entries", len(cart.Entries)),
		)
		o.store.Dispatch(store.DeleteCart{UserID: domain.UserAnonymous, CartID: cart.GUID})
		o.replayGuestCart(ctx, userID, cart)

	default:
		o.logger.InfoContext(ctx, "merging cart into user cart",
			slog.String("user_id", userID),
			slog.String("cart_guid", cart.GUID),
		)
		o.store.Dispatch(store.MergeCart{UserID: userID, CartID: cart.GUID})
	}
}

// replayGuestCart re-adds the guest entries one by one so per-entry backend
// rules apply to each of them.
func (o *Orchestrator) replayGuestCart(ctx context.Context, userID string, guest domain.Cart) {
	entries := guest.EntryRequests()

	userCart, err := o.carts.Load(ctx, userID, domain.CartCurrent)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		o.logger.WarnContext(ctx, "user cart lookup failed, creating a new cart",
			slog.String("operation", "replay_guest_cart"),
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
	}

	if err != nil || userCart == nil || !userCart.IsCreated() {
		st, err := o.settle(ctx, store.CreateCart{UserID: userID})
		if err != nil {
			o.logger.WarnContext(ctx, "waiting for new user cart",
				slog.String("operation", "replay_guest_cart"),
				slog.String("user_id", userID),
				slog.Any("error", err),
			)
			return
		}
		created := st.Cart.Active
		if !created.Success || !created.Value.IsCreated() {
			o.logger.WarnContext(ctx, "user cart not created, guest entries dropped",
				slog.String("operation", "replay_guest_cart"),
				slog.String("user_id", userID),
				slog.Int("entries", len(entries)),
			)
			return
		}
		o.addEntries(userID, cartID(created.Value, userID), entries)
		return
	}

	if len(entries) == 0 {
		o.store.Dispatch(store.LoadCart{UserID: userID, CartID: cartID(*userCart, userID)})
		return
	}
	o.addEntries(userID, cartID(*userCart, userID), entries)
}

func (o *Orchestrator) addEntries(userID, cart string, entries []domain.EntryRequest) {
	out := make([]store.Action, 0, len(entries))
	for _, e := range entries {
		out = append(out, store.AddEntry{
			UserID:      userID,
			CartID:      cart,
			ProductCode: e.ProductCode,
			Quantity:    e.Quantity,
		})
	}
	o.store.Dispatch(out...)
}

// Active returns the active cart, loading it first when it is incomplete.
// An anonymous visitor without a cart gets an empty cart.
func (o *Orchestrator) Active(ctx context.Context) (domain.Cart, error) {
	st := o.store.State()
	cart := st.Cart.Active

	if !cart.Loading && !cart.Value.IsIncomplete() {
		return cart.Value, nil
	}

	var load store.Action
	switch {
	case cart.Loading:
	case cart.Value.IsCreated():
		load = store.LoadCart{UserID: store.CartUserID(st), CartID: store.ActiveCartID(st)}
	case store.IsUserLoggedIn(st):
		load = store.LoadCart{UserID: st.Auth.UserID, CartID: domain.CartCurrent}
	default:
		return cart.Value, nil
	}

	st, err := o.settle(ctx, load)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("loading active cart: %w", err)
	}
	if active := st.Cart.Active; active.Failed() {
		err := failure(active.Error.Payload)
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Cart{}, nil
		}
		return domain.Cart{}, fmt.Errorf("loading active cart: %w", err)
	}
	return st.Cart.Active.Value, nil
}

// requireCart returns a created cart, loading or creating one as needed.
func (o *Orchestrator) requireCart(ctx context.Context) (store.State, error) {
	st := o.store.State()
	cart := st.Cart.Active

	if !cart.Loading && !cart.Value.IsIncomplete() {
		return st, nil
	}

	var err error
	switch {
	case cart.Loading:
		st, err = o.settle(ctx, nil)
	case cart.Value.IsCreated():
		st, err = o.settle(ctx, store.LoadCart{UserID: store.CartUserID(st), CartID: store.ActiveCartID(st)})
	case store.IsUserLoggedIn(st):
		st, err = o.settle(ctx, store.LoadCart{UserID: st.Auth.UserID, CartID: domain.CartCurrent})
		if err == nil && !st.Cart.Active.Value.IsCreated() {
			st, err = o.settle(ctx, store.CreateCart{UserID: st.Auth.UserID})
		}
	default:
		st, err = o.settle(ctx, store.CreateCart{UserID: domain.UserAnonymous})
	}
	if err != nil {
		return st, fmt.Errorf("waiting for cart: %w", err)
	}

	if !st.Cart.Active.Value.IsCreated() {
		if p := st.Cart.Active.Error.Payload; p != nil {
			return st, fmt.Errorf("%w: %w", ErrNoCart, p.Err())
		}
		return st, ErrNoCart
	}
	return st, nil
}

// settle dispatches load and waits until a cart load or create completion
// is applied. A nil load waits for the outstanding one.
func (o *Orchestrator) settle(ctx context.Context, load store.Action) (store.State, error) {
	settled := make(chan store.State, 1)
	unsubscribe := o.store.Subscribe(func(_ context.Context, ev store.Event) {
		switch ev.Action.(type) {
		case store.LoadCartSuccess, store.LoadCartFail, store.CreateCartSuccess, store.CreateCartFail:
		default:
			return
		}
		if !ev.Prev.Cart.Active.Loading || ev.Next.Cart.Active.Loading {
			return
		}
		select {
		case settled <- ev.Next:
		default:
		}
	})
	defer unsubscribe()

	if load != nil {
		o.store.Dispatch(load)
	} else if st := o.store.State(); !st.Cart.Active.Loading {
		return st, nil
	}

	select {
	case st := <-settled:
		return st, nil
	case <-ctx.Done():
		return o.store.State(), ctx.Err()
	}
}

func (o *Orchestrator) AddEntry(ctx context.Context, productCode string, quantity int) error {
	if quantity <= 0 {
		return &domain.ValidationError{Fields: map[string]string{"quantity": "must be positive"}}
	}
	st, err := o.requireCart(ctx)
	if err != nil {
		return err
	}
	user, cart := target(st)
	o.store.Dispatch(store.AddEntry{UserID: user, CartID: cart, ProductCode: productCode, Quantity: quantity})
	return nil
}

// UpdateEntry sets the quantity of an entry. A quantity of zero or less
// removes it.
func (o *Orchestrator) UpdateEntry(ctx context.Context, entryNumber, quantity int) error {
	if quantity <= 0 {
		return o.RemoveEntry(ctx, entryNumber)
	}
	st, err := o.requireCart(ctx)
	if err != nil {
		return err
	}
	user, cart := target(st)
	o.store.Dispatch(store.UpdateEntry{UserID: user, CartID: cart, EntryNumber: entryNumber, Quantity: quantity})
	return nil
}

func (o *Orchestrator) RemoveEntry(ctx context.Context, entryNumber int) error {
	st, err := o.requireCart(ctx)
	if err != nil {
		return err
	}
	user, cart := target(st)
	o.store.Dispatch(store.RemoveEntry{UserID: user, CartID: cart, EntryNumber: entryNumber})
	return nil
}

func (o *Orchestrator) AddVoucher(ctx context.Context, voucherID string) error {
	st, err := o.requireCart(ctx)
	if err != nil {
		return err
	}
	user, cart := target(st)
	o.store.Dispatch(store.AddVoucher{UserID: user, CartID: cart, VoucherID: voucherID})
	return nil
}

func (o *Orchestrator) RemoveVoucher(ctx context.Context, voucherID string) error {
	st, err := o.requireCart(ctx)
	if err != nil {
		return err
	}
	user, cart := target(st)
	o.store.Dispatch(store.RemoveVoucher{UserID: user, CartID: cart, VoucherID: voucherID})
	return nil
}

// ResetAddVoucherProcess clears the add outcome of voucherID, or of every
// voucher when voucherID is empty.
func (o *Orchestrator) ResetAddVoucherProcess(voucherID string) {
	o.store.Dispatch(store.ResetAddVoucher{VoucherID: voucherID})
}

func (o *Orchestrator) ResetRemoveVoucherProcess(voucherID string) {
	o.store.Dispatch(store.ResetRemoveVoucher{VoucherID: voucherID})
}

// AddEmail attaches a guest checkout e-mail to the anonymous cart.
func (o *Orchestrator) AddEmail(ctx context.Context, email string) error {
	if store.IsUserLoggedIn(o.store.State()) {
		return fmt.Errorf("adding email to a user cart: %w", domain.ErrConflict)
	}
	st, err := o.requireCart(ctx)
	if err != nil {
		return err
	}
	user, cart := target(st)
	o.store.Dispatch(store.AddEmail{UserID: user, CartID: cart, Email: email})
	return nil
}

func target(st store.State) (userID, cartID string) {
	return store.CartUserID(st), store.ActiveCartID(st)
}

func cartID(c domain.Cart, userID string) string {
	if id := c.ID(userID); id != "" {
		return id
	}
	return domain.CartCurrent
}

func failure(p *domain.ErrorPayload) error {
	if p == nil {
		return domain.ErrUnavailable
	}
	return p.Err()
}
