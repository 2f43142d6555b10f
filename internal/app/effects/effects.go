package effects

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/go-storefront-state/internal/domain"
	"github.com/jsamuelsen11/go-storefront-state/internal/ports"
	"github.com/jsamuelsen11/go-storefront-state/internal/state/store"
)

// Deps are the collaborators of the default effects.
type Deps struct {
	Store *store.Store

	Carts        ports.CartAdapter
	Entries      ports.CartEntryAdapter
	Vouchers     ports.CartVoucherAdapter
	Email        ports.CartEmailAdapter
	Templates    ports.ConsentTemplatesAdapter
	UserConsents ports.UserConsentAdapter

	// RequiredConsents are template ids given on the user's behalf after
	// login and never transferred or bulk-withdrawn.
	RequiredConsents []string

	Logger *slog.Logger
}

// Default returns the storefront effects.
func Default(d Deps) []Effect {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	return []Effect{
		// anonymous consents
		initialTemplates(),
		reloadTemplates(),
		loadTemplates(d),
		transferConsents(d),
		giveRequiredConsents(d),

		// user consents
		loadUserConsents(d),
		giveUserConsent(d),
		transferUserConsent(d),
		withdrawUserConsent(d),

		// cart
		loadCart(d),
		reloadStaleCart(),
		createCart(d),
		mergeCart(d),
		deleteCart(d),
		addEntry(d),
		updateEntry(d),
		removeEntry(d),
		addVoucher(d),
		removeVoucher(d),
		addEmail(d),
	}
}

func kinds(actions ...store.Action) []store.Kind {
	ks := make([]store.Kind, 0, len(actions))
	for _, a := range actions {
		ks = append(ks, a.Kind())
	}
	return ks
}

// fail normalizes err and logs it with the failing operation.
func (d Deps) fail(ctx context.Context, operation string, err error, attrs ...any) *domain.ErrorPayload {
	p := domain.NormalizeError(err)
	d.Logger.WarnContext(ctx, "effect failed",
		append([]any{
			slog.String("operation", operation),
			slog.Int("status", p.Status),
			slog.Any("error", err),
		}, attrs...)...,
	)
	return p
}

func actions(a ...store.Action) []store.Action {
	return a
}
