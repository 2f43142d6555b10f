package handlers

import (
	"net/http"
	"strings"

	"github.com/jsamuelsen11/go-storefront-state/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-storefront-state/internal/ports"
)

// SessionHandler turns authentication and site-context requests into
// session events.
type SessionHandler struct {
	svc ports.SessionService
}

// NewSessionHandler creates a new SessionHandler with the given service port.
func NewSessionHandler(svc ports.SessionService) *SessionHandler {
	return &SessionHandler{svc: svc}
}

// Login handles POST /session/login.
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.svc.Login(r.Context(), strings.TrimSpace(req.UserID)); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	accepted(w)
}

// Register handles POST /session/register.
func (h *SessionHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Register(r.Context()); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	accepted(w)
}

// Logout handles POST /session/logout.
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Logout(r.Context()); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	accepted(w)
}

// ChangeLanguage handles POST /session/language.
func (h *SessionHandler) ChangeLanguage(w http.ResponseWriter, r *http.Request) {
	var req dto.LanguageRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.svc.ChangeLanguage(r.Context(), req.Language); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	accepted(w)
}
