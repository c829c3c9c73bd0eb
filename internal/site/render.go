package site

import (
	"errors"
	"html/template"
	"io"

	"github.com/kspace-org/kspace/internal/curriculum"
)

var pages = template.Must(template.New("pages").Parse(pageTemplates))

// Renderer writes the index and topic pages.
type Renderer struct {
	SiteTitle string
	IndexPage string
	// DataFile is the data file path as it is reported in diagnostics.
	DataFile string
	// LiveReload adds the reload websocket client to every page.
	LiveReload bool
}

// pageMeta carries the fields the shared head and foot templates use.
type pageMeta struct {
	Title      string
	SiteTitle  string
	IndexPage  string
	BasePath   string
	LiveReload bool
}

type indexPage struct {
	pageMeta
	View  IndexView
	Error *diagnostic
}

type topicPage struct {
	pageMeta
	Topic Topic
	Nav   template.HTML
}

type diagnostic struct {
	Message string
	Causes  []cause
}

type cause struct {
	Text   string
	Likely bool
}

func (r *Renderer) meta(title, base string) pageMeta {
	return pageMeta{
		Title:      title,
		SiteTitle:  r.SiteTitle,
		IndexPage:  r.IndexPage,
		BasePath:   base,
		LiveReload: r.LiveReload,
	}
}

// RenderIndex writes the index page for view.
func (r *Renderer) RenderIndex(w io.Writer, view IndexView) error {
	title := r.SiteTitle
	if view.Meta.Title != "" {
		title = view.Meta.Title + " · " + r.SiteTitle
	}
	return pages.ExecuteTemplate(w, "index", indexPage{pageMeta: r.meta(title, ""), View: view})
}

// RenderIndexError writes the index page with the content region replaced
// by a diagnostic panel describing err. The search box is disabled.
func (r *Renderer) RenderIndexError(w io.Writer, err error) error {
	return pages.ExecuteTemplate(w, "index", indexPage{
		pageMeta: r.meta(r.SiteTitle, ""),
		Error:    r.diagnose(err),
	})
}

func (r *Renderer) diagnose(err error) *diagnostic {
	dataFile := r.DataFile
	if dataFile == "" {
		dataFile = "data/learning-path.json"
	}
	unavailable := errors.Is(err, curriculum.ErrDataUnavailable)
	malformed := errors.Is(err, curriculum.ErrDataMalformed)

	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return &diagnostic{
		Message: msg,
		Causes: []cause{
			{Text: "Does the file " + dataFile + " exist?", Likely: unavailable},
			{Text: "Is the file content valid JSON in the learning path format?", Likely: malformed},
			{Text: "Is the site served over HTTP rather than opened directly from disk?", Likely: unavailable},
		},
	}
}

// RenderTopic writes a topic page with its navigation controls.
func (r *Renderer) RenderTopic(w io.Writer, t Topic, nav Navigation) error {
	return pages.ExecuteTemplate(w, "topic", topicPage{
		pageMeta: r.meta(t.Title+" · "+r.SiteTitle, basePath(t.PagePath)),
		Topic:    t,
		Nav:      RenderNav(nav, Breakpoint),
	})
}
