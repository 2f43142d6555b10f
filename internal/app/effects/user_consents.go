package effects

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/go-storefront-state/internal/domain"
	"github.com/jsamuelsen11/go-storefront-state/internal/state/store"
)

func loadUserConsents(d Deps) Effect {
	return Effect{
		Name:         "loadUserConsents",
		On:           kinds(store.LoadUserConsents{}),
		SingleFlight: true,
		Run: func(ctx context.Context, ev store.Event) []store.Action {
			a := ev.Action.(store.LoadUserConsents)

			consents, err := d.UserConsents.Load(ctx, a.UserID)
			if err != nil {
				return actions(store.LoadUserConsentsFail{
					Error:  d.fail(ctx, "load_user_consents", err, slog.String("user_id", a.UserID)),
					Flight: ev.Seq,
				})
			}
			return actions(store.LoadUserConsentsSuccess{Consents: consents, Flight: ev.Seq})
		},
	}
}

// giveUserConsent tracks each template in its own process slot; a repeated
// give for a template already in flight is answered by the first one.
func giveUserConsent(d Deps) Effect {
	return Effect{
		Name:         "giveUserConsent",
		On:           kinds(store.GiveUserConsent{}),
		SingleFlight: true,
		Run: func(ctx context.Context, ev store.Event) []store.Action {
			a := ev.Action.(store.GiveUserConsent)

			t, err := d.UserConsents.Give(ctx, a.UserID, a.TemplateID, a.Version)
			if err != nil {
				return actions(store.GiveUserConsentFail{
					TemplateID: a.TemplateID,
					Error: d.fail(ctx, "give_user_consent", err,
						slog.String("user_id", a.UserID),
						slog.String("template_id", a.TemplateID),
					),
					Flight: ev.Seq,
				})
			}
			if t == nil {
				t = &domain.ConsentTemplate{ID: a.TemplateID, Version: a.Version}
			}
			return actions(store.GiveUserConsentSuccess{TemplateID: a.TemplateID, Template: *t, Flight: ev.Seq})
		},
	}
}

// transferUserConsent gives a transferred consent without touching the
// give process slot.
func transferUserConsent(d Deps) Effect {
	return Effect{
		Name: "transferUserConsent",
		On:   kinds(store.TransferAnonymousConsent{}),
		Run: func(ctx context.Context, ev store.Event) []store.Action {
			a := ev.Action.(store.TransferAnonymousConsent)

			if _, err := d.UserConsents.Give(ctx, a.UserID, a.TemplateID, a.Version); err != nil {
				d.fail(ctx, "transfer_anonymous_consent", err,
					slog.String("user_id", a.UserID),
					slog.String("template_id", a.TemplateID),
				)
			}
			return nil
		},
	}
}

func withdrawUserConsent(d Deps) Effect {
	return Effect{
		Name:         "withdrawUserConsent",
		On:           kinds(store.WithdrawUserConsent{}),
		SingleFlight: true,
		Run: func(ctx context.Context, ev store.Event) []store.Action {
			a := ev.Action.(store.WithdrawUserConsent)

			if err := d.UserConsents.Withdraw(ctx, a.UserID, a.ConsentCode); err != nil {
				return actions(store.WithdrawUserConsentFail{
					ConsentCode: a.ConsentCode,
					Error: d.fail(ctx, "withdraw_user_consent", err,
						slog.String("user_id", a.UserID),
						slog.String("consent_code", a.ConsentCode),
					),
					Flight: ev.Seq,
				})
			}
			return actions(
				store.WithdrawUserConsentSuccess{ConsentCode: a.ConsentCode, Flight: ev.Seq},
				store.LoadUserConsents{UserID: a.UserID},
			)
		},
	}
}
