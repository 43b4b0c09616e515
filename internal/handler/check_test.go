package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/swtya/meshlint/internal/service/lint"
)

func TestCheckList(t *testing.T) {
	h := NewCheckHandler(lint.Builtin())

	req := httptest.NewRequest(http.MethodGet, "/checks", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var body map[string]json.RawMessage
	json.NewDecoder(rec.Body).Decode(&body)
	var checks []lint.Check
	json.Unmarshal(body["checks"], &checks)

	if len(checks) != 7 {
		t.Fatalf("got %d checks, want 7", len(checks))
	}
	if checks[0].Symbol != "tris" {
		t.Errorf("first check = %q, want %q", checks[0].Symbol, "tris")
	}
	if checks[2].Label != "Nonmanifold Elements" {
		t.Errorf("third label = %q, want %q", checks[2].Label, "Nonmanifold Elements")
	}
	if checks[4].DefaultEnabled {
		t.Error("five_poles should default off")
	}
}
