package effects

import (
	"context"
	"log/slog"
	"slices"

	"github.com/jsamuelsen11/go-storefront-state/internal/domain"
	"github.com/jsamuelsen11/go-storefront-state/internal/state/store"
)

// initialTemplates loads the templates once a session starts.
func initialTemplates() Effect {
	return Effect{
		Name: "initialAnonymousTemplates",
		On:   kinds(store.SessionStarted{}),
		Gate: func(_, next store.State) bool {
			return next.AnonymousConsents.Templates.NotLoaded()
		},
		Run: func(context.Context, store.Event) []store.Action {
			return actions(store.LoadAnonymousTemplates{})
		},
	}
}

// reloadTemplates reloads the templates when the visitor logs out or
// switches language while anonymous.
func reloadTemplates() Effect {
	return Effect{
		Name: "reloadAnonymousTemplates",
		On:   kinds(store.Logout{}, store.LanguageChange{}),
		Gate: func(_, next store.State) bool {
			return !store.IsUserLoggedIn(next)
		},
		Run: func(context.Context, store.Event) []store.Action {
			return actions(store.LoadAnonymousTemplates{})
		},
	}
}

// loadTemplates fetches the templates and flags an update when previously
// loaded templates differ from the new ones.
func loadTemplates(d Deps) Effect {
	return Effect{
		Name:         "loadAnonymousTemplates",
		On:           kinds(store.LoadAnonymousTemplates{}),
		SingleFlight: true,
		Run: func(ctx context.Context, ev store.Event) []store.Action {
			templates, err := d.Templates.LoadAnonymousTemplates(ctx)
			if err != nil {
				return actions(store.LoadAnonymousTemplatesFail{
					Error:  d.fail(ctx, "load_anonymous_templates", err),
					Flight: ev.Seq,
				})
			}

			current := ev.Next.AnonymousConsents.Templates.Value
			updated := len(current) > 0 && domain.TemplatesChanged(current, templates)

			return actions(
				store.LoadAnonymousTemplatesSuccess{Templates: templates, Flight: ev.Seq},
				store.ToggleTemplatesUpdated{Updated: updated},
			)
		},
	}
}

// transferConsents hands the consents a visitor gave before registering to
// the newly logged in user. Required consents are given separately.
func transferConsents(d Deps) Effect {
	return Effect{
		Name: "transferAnonymousConsents",
		On:   kinds(store.LoginSuccess{}),
		Gate: func(prev, next store.State) bool {
			return prev.Auth.Registered && store.IsUserLoggedIn(next)
		},
		Run: func(_ context.Context, ev store.Event) []store.Action {
			st := ev.Next
			var out []store.Action
			for _, c := range st.AnonymousConsents.Consents {
				if !c.IsGiven() || slices.Contains(d.RequiredConsents, c.TemplateCode) {
					continue
				}
				if _, ok := store.AnonymousTemplate(st, c.TemplateCode); !ok {
					continue
				}
				out = append(out, store.TransferAnonymousConsent{
					UserID:     st.Auth.UserID,
					TemplateID: c.TemplateCode,
					Version:    c.Version,
				})
			}
			return out
		},
	}
}

// giveRequiredConsents gives every required consent the user has not given
// yet, loading the user's consents first when needed.
func giveRequiredConsents(d Deps) Effect {
	return Effect{
		Name: "giveRequiredConsents",
		On:   kinds(store.LoginSuccess{}),
		Gate: func(_, next store.State) bool {
			return len(d.RequiredConsents) > 0 && store.IsUserLoggedIn(next)
		},
		Run: func(ctx context.Context, ev store.Event) []store.Action {
			userID := ev.Next.Auth.UserID
			st := ev.Next

			if !st.User.Consents.Success {
				if !st.User.Consents.Loading {
					d.Store.DispatchAs(ev.Origin, store.LoadUserConsents{UserID: userID})
				}

				var err error
				st, err = d.Store.WaitFor(ctx, func(s store.State) bool {
					c := s.User.Consents
					return c.Success || c.Failed() || s.Auth.UserID != userID
				})
				if err != nil || !st.User.Consents.Success || st.Auth.UserID != userID {
					d.Logger.DebugContext(ctx, "required consents not given, user consents unavailable",
						slog.String("user_id", userID),
					)
					return nil
				}
			}

			var out []store.Action
			for _, t := range st.User.Consents.Value {
				if !slices.Contains(d.RequiredConsents, t.ID) || t.IsGiven() {
					continue
				}
				out = append(out, store.GiveUserConsent{UserID: userID, TemplateID: t.ID, Version: t.Version})
			}
			return out
		},
	}
}
