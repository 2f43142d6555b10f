package effects

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/go-storefront-state/internal/state/store"
)

// Entry changes reload the cart whether they succeed or not: a rejected
// change may still have adjusted quantities.

func addEntry(d Deps) Effect {
	return Effect{
		Name: "addEntry",
		On:   kinds(store.AddEntry{}),
		Run: func(ctx context.Context, ev store.Event) []store.Action {
			a := ev.Action.(store.AddEntry)
			reload := store.LoadCart{UserID: a.UserID, CartID: a.CartID}

			if err := d.Entries.Add(ctx, a.UserID, a.CartID, a.ProductCode, a.Quantity); err != nil {
				return actions(store.AddEntryFail{
					UserID: a.UserID,
					CartID: a.CartID,
					Error: d.fail(ctx, "add_entry", err,
						slog.String("cart_id", a.CartID),
						slog.String("product_code", a.ProductCode),
					),
				}, reload)
			}
			return actions(store.AddEntrySuccess{
				UserID:      a.UserID,
				CartID:      a.CartID,
				ProductCode: a.ProductCode,
				Quantity:    a.Quantity,
			}, reload)
		},
	}
}

func updateEntry(d Deps) Effect {
	return Effect{
		Name: "updateEntry",
		On:   kinds(store.UpdateEntry{}),
		Run: func(ctx context.Context, ev store.Event) []store.Action {
			a := ev.Action.(store.UpdateEntry)
			reload := store.LoadCart{UserID: a.UserID, CartID: a.CartID}

			if err := d.Entries.Update(ctx, a.UserID, a.CartID, a.EntryNumber, a.Quantity); err != nil {
				return actions(store.UpdateEntryFail{
					UserID: a.UserID,
					CartID: a.CartID,
					Error: d.fail(ctx, "update_entry", err,
						slog.String("cart_id", a.CartID),
						slog.Int("entry_number", a.EntryNumber),
					),
				}, reload)
			}
			return actions(store.UpdateEntrySuccess{UserID: a.UserID, CartID: a.CartID}, reload)
		},
	}
}

func removeEntry(d Deps) Effect {
	return Effect{
		Name: "removeEntry",
		On:   kinds(store.RemoveEntry{}),
		Run: func(ctx context.Context, ev store.Event) []store.Action {
			a := ev.Action.(store.RemoveEntry)
			reload := store.LoadCart{UserID: a.UserID, CartID: a.CartID}

			if err := d.Entries.Remove(ctx, a.UserID, a.CartID, a.EntryNumber); err != nil {
				return actions(store.RemoveEntryFail{
					UserID: a.UserID,
					CartID: a.CartID,
					Error: d.fail(ctx, "remove_entry", err,
						slog.String("cart_id", a.CartID),
						slog.Int("entry_number", a.EntryNumber),
					),
				}, reload)
			}
			return actions(store.RemoveEntrySuccess{UserID: a.UserID, CartID: a.CartID}, reload)
		},
	}
}

func addVoucher(d Deps) Effect {
	return Effect{
		Name:         "addVoucher",
		On:           kinds(store.AddVoucher{}),
		SingleFlight: true,
		Run: func(ctx context.Context, ev store.Event) []store.Action {
			a := ev.Action.(store.AddVoucher)

			if err := d.Vouchers.Add(ctx, a.UserID, a.CartID, a.VoucherID); err != nil {
				return actions(store.AddVoucherFail{
					UserID:    a.UserID,
					CartID:    a.CartID,
					VoucherID: a.VoucherID,
					Error: d.fail(ctx, "add_voucher", err,
						slog.String("cart_id", a.CartID),
						slog.String("voucher_id", a.VoucherID),
					),
					Flight: ev.Seq,
				})
			}
			return actions(
				store.AddVoucherSuccess{UserID: a.UserID, CartID: a.CartID, VoucherID: a.VoucherID, Flight: ev.Seq},
				store.LoadCart{UserID: a.UserID, CartID: a.CartID},
			)
		},
	}
}

func removeVoucher(d Deps) Effect {
	return Effect{
		Name:         "removeVoucher",
		On:           kinds(store.RemoveVoucher{}),
		SingleFlight: true,
		Run: func(ctx context.Context, ev store.Event) []store.Action {
			a := ev.Action.(store.RemoveVoucher)

			if err := d.Vouchers.Remove(ctx, a.UserID, a.CartID, a.VoucherID); err != nil {
				return actions(store.RemoveVoucherFail{
					UserID:    a.UserID,
					CartID:    a.CartID,
					VoucherID: a.VoucherID,
					Error: d.fail(ctx, "remove_voucher", err,
						slog.String("cart_id", a.CartID),
						slog.String("voucher_id", a.VoucherID),
					),
					Flight: ev.Seq,
				})
			}
			return actions(
				store.RemoveVoucherSuccess{UserID: a.UserID, CartID: a.CartID, VoucherID: a.VoucherID, Flight: ev.Seq},
				store.LoadCart{UserID: a.UserID, CartID: a.CartID},
			)
		},
	}
}

func addEmail(d Deps) Effect {
	return Effect{
		Name: "addEmail",
		On:   kinds(store.AddEmail{}),
		Run: func(ctx context.Context, ev store.Event) []store.Action {
			a := ev.Action.(store.AddEmail)

			if err := d.Email.AddEmail(ctx, a.UserID, a.CartID, a.Email); err != nil {
				return actions(store.AddEmailFail{
					Error:  d.fail(ctx, "add_email", err, slog.String("cart_id", a.CartID)),
					Flight: ev.Seq,
				})
			}
			return actions(
				store.AddEmailSuccess{UserID: a.UserID, CartID: a.CartID, Flight: ev.Seq},
				store.LoadCart{UserID: a.UserID, CartID: a.CartID},
			)
		},
	}
}
