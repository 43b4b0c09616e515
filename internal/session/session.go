// Package session models the host application's per-object edit state: a
// named session holds the current mesh, the object/edit mode and the
// enabled-check set, and the hub dispatches change notifications to the
// continuous checker.
package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/swtya/meshlint/internal/mesh"
)

// Mode is the host's selection/mode state for one object.
type Mode string

const (
	ModeObject Mode = "object"
	ModeEdit   Mode = "edit"
)

// Session is one editable object. All mutation goes through its methods;
// the zero value is not usable.
type Session struct {
	ID         string
	ObjectName string

	mu      sync.Mutex
	mode    Mode
	mesh    *mesh.Mesh
	scale   [3]float64
	enabled map[string]bool
}

func newSession(objectName string, m *mesh.Mesh, enabled map[string]bool) *Session {
	return &Session{
		ID:         uuid.NewString(),
		ObjectName: objectName,
		mode:       ModeObject,
		mesh:       m,
		scale:      [3]float64{1, 1, 1},
		enabled:    copyEnabled(enabled),
	}
}

func copyEnabled(in map[string]bool) map[string]bool {
	out := make(map[string]bool, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// Mesh returns the session's current mesh regardless of mode.
func (s *Session) Mesh() *mesh.Mesh {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mesh
}

// EditingMesh returns the mesh only while the session is a live edit-mode
// session on one, nil otherwise. The continuous checker keys off this.
func (s *Session) EditingMesh() *mesh.Mesh {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode != ModeEdit {
		return nil
	}
	return s.mesh
}

func (s *Session) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

func (s *Session) SetMode(m Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = m
}

// Scale is the object's transform scale. Fresh sessions start applied,
// all components 1.0.
func (s *Session) Scale() [3]float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scale
}

func (s *Session) SetScale(scale [3]float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scale = scale
}

func (s *Session) SetMesh(m *mesh.Mesh) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mesh = m
}

// EnabledChecks returns a copy of the session's check-symbol toggles.
func (s *Session) EnabledChecks() map[string]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyEnabled(s.enabled)
}

// SetEnabled overrides individual check toggles, leaving the rest alone.
func (s *Session) SetEnabled(overrides map[string]bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for sym, on := range overrides {
		s.enabled[sym] = on
	}
}
