package session

import (
	"errors"
	"sync"

	"github.com/swtya/meshlint/internal/mesh"
)

var ErrSessionNotFound = errors.New("session not found")

// Handler receives synchronous change notifications for a session.
type Handler func(*Session)

// Hub owns the live sessions and the change-notification stream. At most
// one handler is attached at a time (the continuous checker); notifications
// are dispatched synchronously on the caller's goroutine.
type Hub struct {
	mu       sync.Mutex
	sessions map[string]*Session
	order    []string
	defaults map[string]bool
	handler  Handler
}

// NewHub creates a hub whose new sessions start with the given enabled-check
// defaults.
func NewHub(defaultEnabled map[string]bool) *Hub {
	return &Hub{
		sessions: make(map[string]*Session),
		defaults: copyEnabled(defaultEnabled),
	}
}

func (h *Hub) Create(objectName string, m *mesh.Mesh) *Session {
	s := newSession(objectName, m, h.defaults)
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sessions[s.ID] = s
	h.order = append(h.order, s.ID)
	return s
}

func (h *Hub) Get(id string) (*Session, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	s, ok := h.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// List returns sessions in creation order.
func (h *Hub) List() []*Session {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]*Session, 0, len(h.sessions))
	for _, id := range h.order {
		if s, ok := h.sessions[id]; ok {
			out = append(out, s)
		}
	}
	return out
}

func (h *Hub) Delete(id string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(h.sessions, id)
	for i := range h.order {
		if h.order[i] == id {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}
	return nil
}

// Attach registers the change handler, replacing any previous one.
func (h *Hub) Attach(fn Handler) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handler = fn
}

// Detach removes the change handler.
func (h *Hub) Detach() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handler = nil
}

// Notify dispatches a change notification for s to the attached handler, if
// any. Synchronous: the handler runs before Notify returns.
func (h *Hub) Notify(s *Session) {
	h.mu.Lock()
	fn := h.handler
	h.mu.Unlock()
	if fn != nil {
		fn(s)
	}
}
