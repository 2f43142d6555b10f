package effects

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jsamuelsen11/go-storefront-state/internal/domain"
	"github.com/jsamuelsen11/go-storefront-state/internal/state/store"
)

func loadCart(d Deps) Effect {
	return Effect{
		Name:         "loadCart",
		On:           kinds(store.LoadCart{}),
		SingleFlight: true,
		Run: func(ctx context.Context, ev store.Event) []store.Action {
			a := ev.Action.(store.LoadCart)

			cart, err := d.Carts.Load(ctx, a.UserID, a.CartID)
			if err != nil {
				return actions(store.LoadCartFail{
					Error: d.fail(ctx, "load_cart", err,
						slog.String("user_id", a.UserID),
						slog.String("cart_id", a.CartID),
					),
					Flight: ev.Seq,
				})
			}
			return actions(store.LoadCartSuccess{Cart: *cart, Flight: ev.Seq})
		},
	}
}

// reloadStaleCart re-issues a cart load that settled after an entry, voucher
// or e-mail change it did not include.
func reloadStaleCart() Effect {
	return Effect{
		Name: "reloadStaleCart",
		On:   kinds(store.LoadCartSuccess{}, store.LoadCartFail{}, store.CreateCartSuccess{}),
		Gate: func(prev, next store.State) bool {
			return prev.Cart.Active.Loading && !next.Cart.Active.Loading && next.Cart.Refresh
		},
		Run: func(_ context.Context, ev store.Event) []store.Action {
			return actions(store.LoadCart{
				UserID: store.CartUserID(ev.Next),
				CartID: store.ActiveCartID(ev.Next),
			})
		},
	}
}

// createCart creates a cart. When an anonymous cart is merged the success
// is followed by MergeCartSuccess.
func createCart(d Deps) Effect {
	return Effect{
		Name:         "createCart",
		On:           kinds(store.CreateCart{}),
		SingleFlight: true,
		Run: func(ctx context.Context, ev store.Event) []store.Action {
			a := ev.Action.(store.CreateCart)

			cart, err := d.Carts.Create(ctx, a.UserID, a.OldCartID, a.ToMergeCartGUID)
			if err != nil {
				return actions(store.CreateCartFail{
					Error:  d.fail(ctx, "create_cart", err, slog.String("user_id", a.UserID)),
					Flight: ev.Seq,
				})
			}

			out := actions(store.CreateCartSuccess{Cart: *cart, OldCartID: a.OldCartID, Flight: ev.Seq})
			if a.OldCartID != "" {
				out = append(out, store.MergeCartSuccess{UserID: a.UserID, CartID: a.OldCartID})
			}
			return out
		},
	}
}

// mergeCart merges the anonymous cart into the user's current cart, or into
// a new one when the user has none.
func mergeCart(d Deps) Effect {
	return Effect{
		Name: "mergeCart",
		On:   kinds(store.MergeCart{}),
		Run: func(ctx context.Context, ev store.Event) []store.Action {
			a := ev.Action.(store.MergeCart)

			var toMerge string
			current, err := d.Carts.Load(ctx, a.UserID, domain.CartCurrent)
			switch {
			case err == nil:
				toMerge = current.GUID
			case errors.Is(err, domain.ErrNotFound):
			default:
				d.Logger.WarnContext(ctx, "loading user cart for merge",
					slog.String("operation", "merge_cart"),
					slog.String("user_id", a.UserID),
					slog.Any("error", err),
				)
			}

			return actions(store.CreateCart{UserID: a.UserID, OldCartID: a.CartID, ToMergeCartGUID: toMerge})
		},
	}
}

func deleteCart(d Deps) Effect {
	return Effect{
		Name: "deleteCart",
		On:   kinds(store.DeleteCart{}),
		Run: func(ctx context.Context, ev store.Event) []store.Action {
			a := ev.Action.(store.DeleteCart)

			if err := d.Carts.Delete(ctx, a.UserID, a.CartID); err != nil {
				return actions(store.DeleteCartFail{
					Error: d.fail(ctx, "delete_cart", err,
						slog.String("user_id", a.UserID),
						slog.String("cart_id", a.CartID),
					),
					Flight: ev.Seq,
				})
			}
			return actions(store.DeleteCartSuccess{Flight: ev.Seq})
		},
	}
}
