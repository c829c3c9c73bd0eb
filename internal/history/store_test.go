package history

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/kspace-org/kspace/internal/db"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return NewStore(database)
}

func TestRecordAndGetByID(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	id, err := store.Record(ctx, Revision{
		Action:   ActionSave,
		OK:       true,
		DataFile: "data/learning-path.json",
		Sections: 2,
		Items:    5,
		Pending:  1,
		Summary:  "saved 2 sections",
		Snapshot: `{"meta":{},"sections":[]}`,
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if id == "" {
		t.Fatal("Record should generate an id")
	}

	got, err := store.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Action != ActionSave || !got.OK || got.Items != 5 || got.Pending != 1 {
		t.Errorf("revision = %+v", got)
	}
	if got.Snapshot == "" {
		t.Error("snapshot lost")
	}
	if got.Timestamp.IsZero() {
		t.Error("timestamp not parsed")
	}
}

func TestQuery(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	for _, rev := range []Revision{
		{ID: "r1", Action: ActionSave, OK: true, Snapshot: "{}"},
		{ID: "r2", Action: ActionPublish, OK: false, Detail: "push rejected"},
		{ID: "r3", Action: ActionSave, OK: true},
	} {
		if _, err := store.Record(ctx, rev); err != nil {
			t.Fatalf("Record %s: %v", rev.ID, err)
		}
	}

	all, err := store.Query(ctx, QueryFilter{})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(all) != 3 || all[0].ID != "r3" || all[2].ID != "r1" {
		t.Errorf("Query order = %+v, want newest first", all)
	}
	for _, r := range all {
		if r.Snapshot != "" {
			t.Errorf("Query should not load snapshots (%s)", r.ID)
		}
	}

	saves, err := store.Query(ctx, QueryFilter{Action: ActionSave, Limit: 1})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(saves) != 1 || saves[0].ID != "r3" {
		t.Errorf("filtered = %+v", saves)
	}

	failed, err := store.GetByID(ctx, "r2")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if failed.OK || failed.Detail != "push rejected" {
		t.Errorf("failed publish = %+v", failed)
	}
}

func TestRoutes(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	if _, err := store.Record(ctx, Revision{ID: "r1", Action: ActionPublish, OK: true, Summary: "published"}); err != nil {
		t.Fatal(err)
	}

	r := chi.NewRouter()
	RegisterRoutes(r, store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/history?limit=10", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	var revs []Revision
	if err := json.Unmarshal(w.Body.Bytes(), &revs); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if len(revs) != 1 || revs[0].Summary != "published" {
		t.Errorf("revisions = %+v", revs)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/history/r1", nil))
	if w.Code != http.StatusOK {
		t.Errorf("get status = %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/history/missing", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("missing status = %d, want 404", w.Code)
	}
}
