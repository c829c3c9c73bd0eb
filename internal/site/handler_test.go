package site

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/kspace-org/kspace/internal/config"
)

func newTestRouter(cfg *config.Config) chi.Router {
	r := chi.NewRouter()
	NewHandler(cfg, false).RegisterRoutes(r)
	return r
}

func get(t *testing.T, r http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", target, nil))
	return w
}

func TestHandlerIndex(t *testing.T) {
	cfg := newTestSite(t, siteJSON)
	r := newTestRouter(cfg)

	for _, target := range []string{"/", "/index.html"} {
		w := get(t, r, target)
		if w.Code != http.StatusOK {
			t.Fatalf("GET %s = %d", target, w.Code)
		}
		if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
			t.Errorf("Content-Type = %q", ct)
		}
		if !strings.Contains(w.Body.String(), `<section class="level-section" id="basics">`) {
			t.Errorf("GET %s missing section", target)
		}
	}
}

func TestHandlerIndexReadsDataPerRequest(t *testing.T) {
	cfg := newTestSite(t, siteJSON)
	r := newTestRouter(cfg)

	if !strings.Contains(get(t, r, "/").Body.String(), "Intro") {
		t.Fatal("first render missing Intro")
	}
	updated := strings.Replace(siteJSON, `"title": "Intro"`, `"title": "Welcome"`, 1)
	if err := os.WriteFile(cfg.DataFile, []byte(updated), 0o644); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(get(t, r, "/").Body.String(), "Welcome") {
		t.Error("edit not visible on the next request")
	}
}

func TestHandlerIndexQuery(t *testing.T) {
	r := newTestRouter(newTestSite(t, siteJSON))
	body := get(t, r, "/?q=zzz").Body.String()
	if !strings.Contains(body, `id="basics" hidden`) {
		t.Error("?q= should pre-filter the index")
	}
}

func TestHandlerIndexDiagnostic(t *testing.T) {
	r := newTestRouter(newTestSite(t, ""))
	w := get(t, r, "/")
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Failed to load the learning path") {
		t.Error("diagnostic panel missing")
	}
}

func TestHandlerSearch(t *testing.T) {
	r := newTestRouter(newTestSite(t, siteJSON))

	w := get(t, r, "/api/search?q=START")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	var v Visibility
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if v.Query != "start" {
		t.Errorf("Query = %q", v.Query)
	}
	if len(v.Sections) != 1 || !v.Sections[0].Visible {
		t.Fatalf("sections = %+v", v.Sections)
	}
	if got := v.Sections[0].Cards; len(got) != 3 || !got[0] || got[1] || got[2] {
		t.Errorf("cards = %v, want [true false false]", got)
	}
}

func TestHandlerSearchMissingData(t *testing.T) {
	r := newTestRouter(newTestSite(t, ""))
	w := get(t, r, "/api/search?q=x")
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"error"`) {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestHandlerTopic(t *testing.T) {
	r := newTestRouter(newTestSite(t, siteJSON))

	w := get(t, r, "/topics/a.html")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "First page.") || !strings.Contains(body, "Next: Next Step →") {
		t.Errorf("topic page = %s", body)
	}

	for _, target := range []string{"/topics/missing.html", "/topics/_draft.html", "/topics/a.md", "/../data/learning-path.json.html"} {
		if w := get(t, r, target); w.Code != http.StatusNotFound {
			t.Errorf("GET %s = %d, want 404", target, w.Code)
		}
	}
}

func TestHandlerAssetsAndData(t *testing.T) {
	r := newTestRouter(newTestSite(t, siteJSON))

	if w := get(t, r, "/assets/style.css"); w.Code != http.StatusOK || !strings.Contains(w.Body.String(), ".nav-buttons") {
		t.Errorf("style.css = %d", w.Code)
	}
	if w := get(t, r, "/assets/script.js"); w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "searchInput") {
		t.Errorf("script.js = %d", w.Code)
	}
	w := get(t, r, "/"+DataPath)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"sections"`) {
		t.Errorf("data = %d %s", w.Code, w.Body.String())
	}
}
