package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/swtya/meshlint/internal/model"
	"github.com/swtya/meshlint/internal/repository"
)

type mockRunLister struct {
	getFn           func(ctx context.Context, id int) (*model.Run, error)
	listFn          func(ctx context.Context, limit int) ([]model.Run, error)
	listBySessionFn func(ctx context.Context, sessionID string, limit int) ([]model.Run, error)
}

func (m *mockRunLister) Get(ctx context.Context, id int) (*model.Run, error) {
	return m.getFn(ctx, id)
}
func (m *mockRunLister) List(ctx context.Context, limit int) ([]model.Run, error) {
	return m.listFn(ctx, limit)
}
func (m *mockRunLister) ListBySession(ctx context.Context, sessionID string, limit int) ([]model.Run, error) {
	return m.listBySessionFn(ctx, sessionID, limit)
}

func TestRunList_Success(t *testing.T) {
	h := NewRunHandler(&mockRunLister{
		listFn: func(ctx context.Context, limit int) ([]model.Run, error) {
			if limit != 50 {
				t.Errorf("limit = %d, want default 50", limit)
			}
			return []model.Run{
				{ID: 1, SessionID: "s1", ObjectName: "Cube", TotalProblems: 0, CreatedAt: time.Now()},
			}, nil
		},
	}, 50)

	req := httptest.NewRequest(http.MethodGet, "/runs", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var body map[string]json.RawMessage
	json.NewDecoder(rec.Body).Decode(&body)
	var runs []model.Run
	json.Unmarshal(body["runs"], &runs)
	if len(runs) != 1 {
		t.Errorf("got %d runs, want 1", len(runs))
	}
}

func TestRunList_Empty(t *testing.T) {
	h := NewRunHandler(&mockRunLister{
		listFn: func(ctx context.Context, limit int) ([]model.Run, error) {
			return nil, nil
		},
	}, 50)

	req := httptest.NewRequest(http.MethodGet, "/runs", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var body map[string]json.RawMessage
	json.NewDecoder(rec.Body).Decode(&body)
	if string(body["runs"]) != "[]" {
		t.Errorf("runs = %s, want empty array", body["runs"])
	}
}

func TestRunList_CustomLimit(t *testing.T) {
	h := NewRunHandler(&mockRunLister{
		listFn: func(ctx context.Context, limit int) ([]model.Run, error) {
			if limit != 5 {
				t.Errorf("limit = %d, want 5", limit)
			}
			return nil, nil
		},
	}, 50)

	req := httptest.NewRequest(http.MethodGet, "/runs?limit=5", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRunList_InvalidLimit(t *testing.T) {
	h := NewRunHandler(&mockRunLister{}, 50)

	for _, limit := range []string{"abc", "0", "-3"} {
		req := httptest.NewRequest(http.MethodGet, "/runs?limit="+limit, nil)
		rec := httptest.NewRecorder()
		h.List(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("limit=%s: status = %d, want %d", limit, rec.Code, http.StatusBadRequest)
		}
	}
}

func TestRunList_BySession(t *testing.T) {
	h := NewRunHandler(&mockRunLister{
		listBySessionFn: func(ctx context.Context, sessionID string, limit int) ([]model.Run, error) {
			if sessionID != "s42" {
				t.Errorf("sessionID = %q, want %q", sessionID, "s42")
			}
			return []model.Run{{ID: 2, SessionID: "s42"}}, nil
		},
	}, 50)

	req := httptest.NewRequest(http.MethodGet, "/runs?session_id=s42", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRunGet_Success(t *testing.T) {
	h := NewRunHandler(&mockRunLister{
		getFn: func(ctx context.Context, id int) (*model.Run, error) {
			if id != 7 {
				t.Errorf("id = %d, want 7", id)
			}
			return &model.Run{ID: 7, SessionID: "s1", ObjectName: "Cube"}, nil
		},
	}, 50)

	req := chiRequest(http.MethodGet, "/runs/7", "", map[string]string{"id": "7"})
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var run model.Run
	json.NewDecoder(rec.Body).Decode(&run)
	if run.ID != 7 || run.ObjectName != "Cube" {
		t.Errorf("run = %+v", run)
	}
}

func TestRunGet_NotFound(t *testing.T) {
	h := NewRunHandler(&mockRunLister{
		getFn: func(ctx context.Context, id int) (*model.Run, error) {
			return nil, repository.ErrNotFound
		},
	}, 50)

	req := chiRequest(http.MethodGet, "/runs/99", "", map[string]string{"id": "99"})
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRunGet_InvalidID(t *testing.T) {
	h := NewRunHandler(&mockRunLister{}, 50)

	req := chiRequest(http.MethodGet, "/runs/abc", "", map[string]string{"id": "abc"})
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestRunGet_Error(t *testing.T) {
	h := NewRunHandler(&mockRunLister{
		getFn: func(ctx context.Context, id int) (*model.Run, error) {
			return nil, errors.New("db error")
		},
	}, 50)

	req := chiRequest(http.MethodGet, "/runs/1", "", map[string]string{"id": "1"})
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
}

func TestRunList_Error(t *testing.T) {
	h := NewRunHandler(&mockRunLister{
		listFn: func(ctx context.Context, limit int) ([]model.Run, error) {
			return nil, errors.New("db error")
		},
	}, 50)

	req := httptest.NewRequest(http.MethodGet, "/runs", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
}
