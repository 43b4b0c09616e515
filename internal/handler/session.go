package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/swtya/meshlint/internal/mesh"
	"github.com/swtya/meshlint/internal/service/meshio"
	"github.com/swtya/meshlint/internal/session"
)

// SessionHandler manages edit sessions: creation, mesh replacement (which
// doubles as the change notification), mode switches and check toggles.
type SessionHandler struct {
	hub *session.Hub
}

func NewSessionHandler(hub *session.Hub) *SessionHandler {
	return &SessionHandler{hub: hub}
}

func (h *SessionHandler) RegisterRoutes(r chi.Router) {
	r.Get("/sessions", h.List)
	r.Post("/sessions", h.Create)
	r.Get("/sessions/{id}", h.Get)
	r.Delete("/sessions/{id}", h.Delete)
	r.Put("/sessions/{id}/mesh", h.ReplaceMesh)
	r.Put("/sessions/{id}/mode", h.SetMode)
	r.Put("/sessions/{id}/scale", h.SetScale)
	r.Put("/sessions/{id}/checks", h.SetChecks)
}

type sessionView struct {
	ID            string          `json:"id"`
	ObjectName    string          `json:"object_name"`
	Mode          session.Mode    `json:"mode"`
	Scale         [3]float64      `json:"scale"`
	Topology      topologyView    `json:"topology"`
	EnabledChecks map[string]bool `json:"enabled_checks"`
}

type topologyView struct {
	Verts int `json:"verts"`
	Edges int `json:"edges"`
	Faces int `json:"faces"`
}

func viewOf(s *session.Session) sessionView {
	v := sessionView{
		ID:            s.ID,
		ObjectName:    s.ObjectName,
		Mode:          s.Mode(),
		Scale:         s.Scale(),
		EnabledChecks: s.EnabledChecks(),
	}
	if m := s.Mesh(); m != nil {
		v.Topology = topologyView{
			Verts: m.VertCount(),
			Edges: m.EdgeCount(),
			Faces: m.FaceCount(),
		}
	}
	return v
}

func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	sessions := h.hub.List()
	views := make([]sessionView, 0, len(sessions))
	for _, s := range sessions {
		views = append(views, viewOf(s))
	}
	writeJSON(w, http.StatusOK, map[string]any{"sessions": views})
}

func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 16<<20) // 16 MB

	var req struct {
		ObjectName string          `json:"object_name"`
		Mesh       *meshio.Payload `json:"mesh"`
		Scale      *[3]float64     `json:"scale"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ObjectName == "" {
		writeError(w, http.StatusBadRequest, "object_name is required")
		return
	}

	var m *mesh.Mesh
	if req.Mesh != nil {
		built, err := req.Mesh.Build()
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid mesh: "+err.Error())
			return
		}
		m = built
	}

	s := h.hub.Create(req.ObjectName, m)
	if req.Scale != nil {
		s.SetScale(*req.Scale)
	}
	writeJSON(w, http.StatusCreated, viewOf(s))
}

func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.hub.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	writeJSON(w, http.StatusOK, viewOf(s))
}

func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.hub.Delete(chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete session")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ReplaceMesh swaps in new geometry and fires a change notification, just
// as the host does after an edit.
func (h *SessionHandler) ReplaceMesh(w http.ResponseWriter, r *http.Request) {
	s, err := h.hub.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 16<<20)
	var payload meshio.Payload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	m, err := payload.Build()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid mesh: "+err.Error())
		return
	}

	s.SetMesh(m)
	h.hub.Notify(s)
	writeJSON(w, http.StatusOK, viewOf(s))
}

func (h *SessionHandler) SetMode(w http.ResponseWriter, r *http.Request) {
	s, err := h.hub.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}

	var req struct {
		Mode session.Mode `json:"mode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Mode != session.ModeEdit && req.Mode != session.ModeObject {
		writeError(w, http.StatusBadRequest, "mode must be \"edit\" or \"object\"")
		return
	}

	s.SetMode(req.Mode)
	h.hub.Notify(s)
	writeJSON(w, http.StatusOK, viewOf(s))
}

func (h *SessionHandler) SetScale(w http.ResponseWriter, r *http.Request) {
	s, err := h.hub.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}

	var req struct {
		Scale *[3]float64 `json:"scale"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Scale == nil {
		writeError(w, http.StatusBadRequest, "scale is required")
		return
	}

	s.SetScale(*req.Scale)
	writeJSON(w, http.StatusOK, viewOf(s))
}

func (h *SessionHandler) SetChecks(w http.ResponseWriter, r *http.Request) {
	s, err := h.hub.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}

	var req struct {
		Checks map[string]bool `json:"checks"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Checks) == 0 {
		writeError(w, http.StatusBadRequest, "checks map cannot be empty")
		return
	}

	s.SetEnabled(req.Checks)
	writeJSON(w, http.StatusOK, viewOf(s))
}
