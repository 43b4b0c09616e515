package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/swtya/meshlint/internal/service/lint"
)

// CheckHandler exposes the check registry for UI listings.
type CheckHandler struct {
	reg *lint.Registry
}

func NewCheckHandler(reg *lint.Registry) *CheckHandler {
	return &CheckHandler{reg: reg}
}

func (h *CheckHandler) RegisterRoutes(r chi.Router) {
	r.Get("/checks", h.List)
}

func (h *CheckHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"checks": h.reg.Checks()})
}
