package site

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/kspace-org/kspace/internal/config"
	"github.com/kspace-org/kspace/internal/curriculum"
	"github.com/kspace-org/kspace/internal/walker"
)

// Handler serves the site dynamically. The data file is read on every
// request, so edits show up on the next page load.
type Handler struct {
	cfg      *config.Config
	renderer *Renderer
}

// NewHandler creates a Handler for cfg.
func NewHandler(cfg *config.Config, liveReload bool) *Handler {
	g := NewGenerator(cfg)
	g.LiveReload = liveReload
	return &Handler{cfg: cfg, renderer: g.Renderer()}
}

// RegisterRoutes mounts the site on r.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.handleIndex)
	r.Get("/"+h.cfg.IndexPage, h.handleIndex)
	r.Get("/assets/style.css", asset("text/css; charset=utf-8", cssContent))
	r.Get("/assets/script.js", asset("text/javascript; charset=utf-8", jsContent))
	r.Get("/"+DataPath, h.handleData)
	r.Get("/api/search", h.handleSearch)
	r.Get("/*", h.handleTopic)
}

func asset(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Write([]byte(body))
	}
}

// handleIndex renders the index, pre-filtered by ?q=. A data failure is
// reported in the page itself, so the response is still 200.
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	doc, err := curriculum.Open(r.Context(), h.cfg.DataFile)
	if err != nil {
		log.Printf("site: loading %s: %v", h.cfg.DataFile, err)
		err = h.renderer.RenderIndexError(&buf, err)
	} else {
		err = h.renderer.RenderIndex(&buf, BuildIndexView(doc, r.URL.Query().Get("q")))
	}
	if err != nil {
		http.Error(w, "rendering index: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func (h *Handler) handleData(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	doc, err := curriculum.Open(r.Context(), h.cfg.DataFile)
	if err != nil {
		writeJSONError(w, dataErrorStatus(err), err.Error())
		return
	}
	json.NewEncoder(w).Encode(doc)
}

// handleSearch answers GET /api/search?q= with the Visibility of every
// section and card.
func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	doc, err := curriculum.Open(r.Context(), h.cfg.DataFile)
	if err != nil {
		writeJSONError(w, dataErrorStatus(err), err.Error())
		return
	}
	view := BuildIndexView(doc, "")
	json.NewEncoder(w).Encode(Filter(view, r.URL.Query().Get("q")))
}

// handleTopic renders the Markdown source behind a requested .html page.
func (h *Handler) handleTopic(w http.ResponseWriter, r *http.Request) {
	pagePath := strings.TrimPrefix(path.Clean("/"+chi.URLParam(r, "*")), "/")
	if !strings.HasSuffix(pagePath, curriculum.PageExtension) {
		http.NotFound(w, r)
		return
	}
	relPath := walker.SourcePath(pagePath)
	if !walker.MatchesInclude(relPath, h.cfg.Include) || walker.MatchesExclude(relPath, h.cfg.Exclude) {
		http.NotFound(w, r)
		return
	}
	src, err := os.ReadFile(filepath.Join(h.cfg.ContentDir, filepath.FromSlash(relPath)))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	topic, err := ParseTopic(NewMarkdown(), src, relPath, pagePath)
	if err != nil {
		http.Error(w, "rendering topic: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var entries []curriculum.FlatEntry
	doc, err := curriculum.Open(r.Context(), h.cfg.DataFile)
	if err != nil {
		log.Printf("site: loading %s for %s: %v", h.cfg.DataFile, pagePath, err)
	} else {
		entries = curriculum.Flatten(doc)
	}
	nav, found := NewNavigation(entries, pagePath, basePath(pagePath), h.cfg.IndexPage)
	if !found && err == nil {
		log.Printf("site: %s is not in the learning path, rendering without prev/next", pagePath)
	}

	var buf bytes.Buffer
	if err := h.renderer.RenderTopic(&buf, topic, nav); err != nil {
		http.Error(w, "rendering topic: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func dataErrorStatus(err error) int {
	if errors.Is(err, curriculum.ErrDataUnavailable) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func writeJSONError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
