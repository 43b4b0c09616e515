package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/swtya/meshlint/internal/service/watch"
)

type watchService interface {
	Start() error
	Stop() error
	IsActive() bool
}

type announcementBoard interface {
	Message() string
}

// WatchHandler toggles the continuous checker and reports its state plus
// the current announcement.
type WatchHandler struct {
	watcher watchService
	board   announcementBoard
}

func NewWatchHandler(watcher watchService, board announcementBoard) *WatchHandler {
	return &WatchHandler{watcher: watcher, board: board}
}

func (h *WatchHandler) RegisterRoutes(r chi.Router) {
	r.Get("/watch/status", h.Status)
	r.Post("/watch/start", h.Start)
	r.Post("/watch/stop", h.Stop)
}

func (h *WatchHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"active":  h.watcher.IsActive(),
		"message": h.board.Message(),
	})
}

func (h *WatchHandler) Start(w http.ResponseWriter, r *http.Request) {
	if err := h.watcher.Start(); err != nil {
		if errors.Is(err, watch.ErrAlreadyWatching) {
			writeError(w, http.StatusConflict, "continuous check is already active")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to start continuous check")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Continuous check started"})
}

func (h *WatchHandler) Stop(w http.ResponseWriter, r *http.Request) {
	if err := h.watcher.Stop(); err != nil {
		if errors.Is(err, watch.ErrNotWatching) {
			writeError(w, http.StatusConflict, "continuous check is not active")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to stop continuous check")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Continuous check stopped"})
}
