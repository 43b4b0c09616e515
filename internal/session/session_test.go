package session

import (
	"testing"

	"github.com/swtya/meshlint/internal/mesh"
)

func defaults() map[string]bool {
	return map[string]bool{"tris": true, "three_poles": false}
}

func TestSession_StartsInObjectMode(t *testing.T) {
	hub := NewHub(defaults())
	s := hub.Create("Cube", mesh.Cube())

	if s.Mode() != ModeObject {
		t.Errorf("mode = %q, want %q", s.Mode(), ModeObject)
	}
	if s.EditingMesh() != nil {
		t.Error("EditingMesh should be nil outside edit mode")
	}
	if s.Mesh() == nil {
		t.Error("Mesh should be set regardless of mode")
	}

	s.SetMode(ModeEdit)
	if s.EditingMesh() == nil {
		t.Error("EditingMesh should be set in edit mode")
	}
}

func TestSession_ScaleStartsApplied(t *testing.T) {
	hub := NewHub(defaults())
	s := hub.Create("Cube", nil)

	if s.Scale() != [3]float64{1, 1, 1} {
		t.Errorf("scale = %v, want [1 1 1]", s.Scale())
	}

	s.SetScale([3]float64{1, 1, 1.1})
	if s.Scale() != [3]float64{1, 1, 1.1} {
		t.Errorf("scale = %v after SetScale", s.Scale())
	}
}

func TestSession_EnabledChecksIsolated(t *testing.T) {
	hub := NewHub(defaults())
	a := hub.Create("A", nil)
	b := hub.Create("B", nil)

	a.SetEnabled(map[string]bool{"three_poles": true})

	if !a.EnabledChecks()["three_poles"] {
		t.Error("override lost on session A")
	}
	if b.EnabledChecks()["three_poles"] {
		t.Error("override leaked into session B")
	}

	// mutating the returned copy must not touch the session
	got := a.EnabledChecks()
	got["tris"] = false
	if !a.EnabledChecks()["tris"] {
		t.Error("caller mutation reached session state")
	}
}

func TestHub_GetListDelete(t *testing.T) {
	hub := NewHub(defaults())
	first := hub.Create("First", nil)
	second := hub.Create("Second", nil)

	got, err := hub.Get(first.ID)
	if err != nil || got != first {
		t.Fatalf("Get(%q) = %v, %v", first.ID, got, err)
	}

	list := hub.List()
	if len(list) != 2 || list[0] != first || list[1] != second {
		t.Errorf("List out of creation order: %v", list)
	}

	if err := hub.Delete(first.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := hub.Get(first.ID); err != ErrSessionNotFound {
		t.Errorf("Get after delete = %v, want ErrSessionNotFound", err)
	}
	if err := hub.Delete(first.ID); err != ErrSessionNotFound {
		t.Errorf("second Delete = %v, want ErrSessionNotFound", err)
	}

	list = hub.List()
	if len(list) != 1 || list[0] != second {
		t.Errorf("List after delete = %v", list)
	}
}

func TestHub_NotifyDispatch(t *testing.T) {
	hub := NewHub(defaults())
	s := hub.Create("Cube", mesh.Cube())

	// no handler attached: nothing happens
	hub.Notify(s)

	var got *Session
	hub.Attach(func(in *Session) { got = in })
	hub.Notify(s)
	if got != s {
		t.Errorf("handler got %v, want the notified session", got)
	}

	got = nil
	hub.Detach()
	hub.Notify(s)
	if got != nil {
		t.Error("detached handler still invoked")
	}
}
