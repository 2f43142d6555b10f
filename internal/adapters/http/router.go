// Package http is the tab API: the routes a storefront page calls to read
// the tab's state and dispatch commands into it, and the listener serving
// them.
package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-storefront-state/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-storefront-state/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-storefront-state/internal/domain"
)

// Handlers groups the route handlers served by NewRouter.
type Handlers struct {
	Consents *handlers.ConsentHandler
	Cart     *handlers.CartHandler
	Session  *handlers.SessionHandler
	State    *handlers.StateHandler
	Health   *handlers.HealthHandler
}

// NewRouter mounts the tab API behind middlewares, outermost first. Reads
// answer 200; commands answer 202 once dispatched. Unknown paths get a
// problem document like any other error.
func NewRouter(h Handlers, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteErrorResponse(w, req, fmt.Errorf("%w: %s", domain.ErrNotFound, req.URL.Path))
	})

	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	r.Get("/state", h.State.GetState)

	r.Route("/consents", func(r chi.Router) {
		r.Get("/", h.Consents.ListConsents)
		r.Post("/give-all", h.Consents.GiveAll)
		r.Post("/withdraw-all", h.Consents.WithdrawAll)
		r.Post("/banner", h.Consents.ToggleBanner)
		r.Post("/{code}/give", h.Consents.GiveConsent)
		r.Post("/{code}/withdraw", h.Consents.WithdrawConsent)
		r.Delete("/user/processes/{process}", h.Consents.ResetUserProcess)
	})

	r.Route("/cart", func(r chi.Router) {
		r.Get("/", h.Cart.GetCart)
		r.Post("/entries", h.Cart.AddEntry)
		r.Patch("/entries/{entryNumber}", h.Cart.UpdateEntry)
		r.Delete("/entries/{entryNumber}", h.Cart.RemoveEntry)
		r.Post("/vouchers", h.Cart.AddVoucher)
		r.Delete("/vouchers/{voucherId}", h.Cart.RemoveVoucher)
		r.Delete("/processes/{process}", h.Cart.ResetProcess)
		r.Put("/email", h.Cart.AddEmail)
	})

	r.Route("/session", func(r chi.Router) {
		r.Post("/login", h.Session.Login)
		r.Post("/register", h.Session.Register)
		r.Post("/logout", h.Session.Logout)
		r.Post("/language", h.Session.ChangeLanguage)
	})

	return r
}
