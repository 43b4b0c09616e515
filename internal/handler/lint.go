package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/swtya/meshlint/internal/model"
	"github.com/swtya/meshlint/internal/service/lint"
	"github.com/swtya/meshlint/internal/service/selector"
	"github.com/swtya/meshlint/internal/session"
)

type runCreator interface {
	Create(ctx context.Context, sessionID, objectName string, totalProblems int, report json.RawMessage) (*model.Run, error)
}

// LintHandler runs the analyzer on demand: full analysis, analysis plus
// selection, and the all-sessions sweep.
type LintHandler struct {
	hub      *session.Hub
	analyzer *lint.Analyzer
	runs     runCreator
}

func NewLintHandler(hub *session.Hub, analyzer *lint.Analyzer, runs runCreator) *LintHandler {
	return &LintHandler{hub: hub, analyzer: analyzer, runs: runs}
}

func (h *LintHandler) RegisterRoutes(r chi.Router) {
	r.Post("/sessions/{id}/analyze", h.Analyze)
	r.Post("/sessions/{id}/select", h.Select)
	r.Post("/lint/sweep", h.Sweep)
}

// Analyze requires an edit-mode session on a mesh; anything else is the
// caller's error to fix before asking again.
func (h *LintHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	s, err := h.hub.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	m := s.EditingMesh()
	if m == nil {
		writeError(w, http.StatusConflict, "session is not editing a mesh")
		return
	}

	analysis := h.analyzer.Analyze(m, s.EnabledChecks())
	h.record(r.Context(), s, analysis)
	writeJSON(w, http.StatusOK, analysis)
}

// Select forces the session into edit mode, analyzes and replaces the mesh
// selection with the flagged elements.
func (h *LintHandler) Select(w http.ResponseWriter, r *http.Request) {
	s, err := h.hub.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	m := s.Mesh()
	if m == nil {
		writeError(w, http.StatusConflict, "session has no mesh")
		return
	}

	s.SetMode(session.ModeEdit)
	result := selector.Examine(h.analyzer, m, s.EnabledChecks())
	h.record(r.Context(), s, result.Analysis)
	writeJSON(w, http.StatusOK, result)
}

type sweepEntry struct {
	SessionID     string `json:"session_id"`
	ObjectName    string `json:"object_name"`
	Clean         bool   `json:"clean"`
	TotalProblems int    `json:"total_problems"`
}

// Sweep examines every session that has a mesh, so a modeller can find the
// troubled objects in one pass. Name and unapplied-scale criticisms ride
// along after the per-object results.
func (h *LintHandler) Sweep(w http.ResponseWriter, r *http.Request) {
	var (
		entries []sweepEntry
		objects []lint.ObjectStatus
		total   int
	)
	for _, s := range h.hub.List() {
		m := s.Mesh()
		if m == nil {
			continue
		}
		analysis := h.analyzer.Analyze(m, s.EnabledChecks())
		entries = append(entries, sweepEntry{
			SessionID:     s.ID,
			ObjectName:    s.ObjectName,
			Clean:         analysis.Clean(),
			TotalProblems: analysis.TotalProblems,
		})
		objects = append(objects, lint.ObjectStatus{Name: s.ObjectName, Scale: s.Scale()})
		total += analysis.TotalProblems
	}
	if entries == nil {
		entries = []sweepEntry{}
	}
	criticisms := lint.BuildObjectCriticisms(objects, total)
	if criticisms == nil {
		criticisms = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"results":    entries,
		"criticisms": criticisms,
	})
}

// record persists the run; storage failure is logged, not surfaced, the
// analysis itself already succeeded.
func (h *LintHandler) record(ctx context.Context, s *session.Session, analysis lint.Analysis) {
	report, err := json.Marshal(analysis)
	if err != nil {
		slog.Error("failed to encode analysis report", "error", err, "session", s.ID)
		return
	}
	if _, err := h.runs.Create(ctx, s.ID, s.ObjectName, analysis.TotalProblems, report); err != nil {
		slog.Error("failed to store lint run", "error", err, "session", s.ID)
	}
}
