package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/swtya/meshlint/internal/model"
	"github.com/swtya/meshlint/internal/repository"
)

type runLister interface {
	Get(ctx context.Context, id int) (*model.Run, error)
	List(ctx context.Context, limit int) ([]model.Run, error)
	ListBySession(ctx context.Context, sessionID string, limit int) ([]model.Run, error)
}

// RunHandler serves the persisted lint-run history.
type RunHandler struct {
	repo         runLister
	defaultLimit int
}

func NewRunHandler(repo runLister, defaultLimit int) *RunHandler {
	return &RunHandler{repo: repo, defaultLimit: defaultLimit}
}

func (h *RunHandler) RegisterRoutes(r chi.Router) {
	r.Get("/runs", h.List)
	r.Get("/runs/{id}", h.Get)
}

func (h *RunHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid run id")
		return
	}

	run, err := h.repo.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "run not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load run")
		return
	}
	writeJSON(w, http.StatusOK, run)
}

func (h *RunHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := h.defaultLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	var (
		runs []model.Run
		err  error
	)
	if sid := r.URL.Query().Get("session_id"); sid != "" {
		runs, err = h.repo.ListBySession(r.Context(), sid, limit)
	} else {
		runs, err = h.repo.List(r.Context(), limit)
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list runs")
		return
	}
	if runs == nil {
		runs = []model.Run{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"runs": runs})
}
