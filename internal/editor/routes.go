package editor

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/kspace-org/kspace/internal/curriculum"
	"github.com/kspace-org/kspace/internal/history"
	"github.com/kspace-org/kspace/internal/publish"
)

// maxBodyBytes caps the size of a saved document.
const maxBodyBytes = 10 << 20

// Editor serves the editing and publishing API for one data file.
type Editor struct {
	DataFile  string
	Publisher publish.Publisher
	// History is optional; when nil nothing is recorded.
	History *history.Store
	// OnChange is called after a successful save.
	OnChange func()
}

// RegisterRoutes mounts the editing endpoints on the given router.
func RegisterRoutes(r chi.Router, e *Editor) {
	r.Get("/api/topics", e.handleTopics)
	r.Post("/api/save-topics", e.handleSave)
	r.Post("/api/git-push", e.handlePush)
}

// handleTopics returns the current document, or an empty one when the data
// file does not exist yet.
func (e *Editor) handleTopics(w http.ResponseWriter, r *http.Request) {
	doc, err := curriculum.Load(e.DataFile)
	if err != nil {
		if _, statErr := os.Stat(e.DataFile); !errors.Is(statErr, fs.ErrNotExist) {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		doc = curriculum.Empty()
	}
	writeJSON(w, http.StatusOK, doc)
}

func (e *Editor) handleSave(w http.ResponseWriter, r *http.Request) {
	doc, err := curriculum.Decode(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, result{OK: false, Error: err.Error()})
		return
	}
	if err := curriculum.Save(e.DataFile, doc); err != nil {
		writeJSON(w, http.StatusInternalServerError, result{OK: false, Error: err.Error()})
		return
	}

	snapshot, _ := json.Marshal(doc)
	e.record(r.Context(), history.Revision{
		Action:   history.ActionSave,
		OK:       true,
		DataFile: e.DataFile,
		Sections: len(doc.Sections),
		Items:    doc.ItemCount(),
		Pending:  doc.PendingCount(),
		Summary:  fmt.Sprintf("saved %d sections, %d items", len(doc.Sections), doc.ItemCount()),
		Snapshot: string(snapshot),
	})
	if e.OnChange != nil {
		e.OnChange()
	}
	writeJSON(w, http.StatusOK, result{OK: true})
}

func (e *Editor) handlePush(w http.ResponseWriter, r *http.Request) {
	if e.Publisher == nil {
		writeJSON(w, http.StatusInternalServerError, result{OK: false, Error: "publishing is disabled"})
		return
	}
	out, err := e.Publisher.Publish(r.Context(), e.DataFile)

	rev := history.Revision{
		Action:   history.ActionPublish,
		OK:       err == nil,
		DataFile: e.DataFile,
		Summary:  "published " + e.DataFile,
		Detail:   out,
	}
	if err != nil {
		rev.Summary = "publish failed"
		rev.Detail = err.Error()
	}
	e.record(r.Context(), rev)

	if err != nil {
		log.Printf("editor: publish: %v", err)
		writeJSON(w, http.StatusInternalServerError, result{OK: false, Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, result{OK: true})
}

func (e *Editor) record(ctx context.Context, rev history.Revision) {
	if e.History == nil {
		return
	}
	if _, err := e.History.Record(ctx, rev); err != nil {
		log.Printf("editor: recording %s: %v", rev.Action, err)
	}
}

// result is the response body of the mutating endpoints.
type result struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
