package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/go-storefront-state/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-storefront-state/internal/state/store"
)

// StateReader exposes the tab's current state. *store.Store implements it.
type StateReader interface {
	TabID() string
	State() store.State
}

// StateHandler renders the tab's state.
type StateHandler struct {
	reader StateReader
}

func NewStateHandler(reader StateReader) *StateHandler {
	return &StateHandler{reader: reader}
}

// GetState handles GET /state.
func (h *StateHandler) GetState(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.ToStateResponse(h.reader.TabID(), h.reader.State()))
}
