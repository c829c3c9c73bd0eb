package site

import (
	"bytes"
	"html/template"
	"net/url"
	"strings"

	"github.com/goccy/go-json"

	"github.com/kspace-org/kspace/internal/curriculum"
)

// Breakpoint is the narrowest viewport, in CSS pixels, that gets the
// single-row navigation layout. Narrower viewports put the previous and next
// controls on rows of their own.
const Breakpoint = 769

// Navigation control labels.
const (
	LabelBack  = "← Back to learning path"
	prevPrefix = "← Previous: "
	nextPrefix = "Next: "
	nextSuffix = " →"
)

// NavKind identifies a navigation control.
type NavKind string

const (
	NavBack NavKind = "back"
	NavPrev NavKind = "prev"
	NavNext NavKind = "next"
)

// Navigation holds the entries resolved when a topic page is rendered.
// Layout is always recomputed from these, never from rendered labels.
type Navigation struct {
	Prev      *curriculum.FlatEntry
	Next      *curriculum.FlatEntry
	IndexHref string
	// BasePath is the relative prefix from the page back to the site root.
	BasePath string
}

// NavControl is one rendered toggle-btn. A pending control has no Href and
// shows the coming soon notice instead of navigating.
type NavControl struct {
	Kind    NavKind
	Label   string
	Href    string
	Pending bool
}

// NavRow groups controls laid out on one line.
type NavRow struct {
	FullWidth bool
	Controls  []NavControl
}

// NavLayout is the arrangement of controls for a viewport width.
type NavLayout struct {
	Rows []NavRow
}

// Controls returns every control in display order.
func (l NavLayout) Controls() []NavControl {
	var out []NavControl
	for _, r := range l.Rows {
		out = append(out, r.Controls...)
	}
	return out
}

// NewNavigation locates pagePath among entries. When the page is not part
// of the learning path the returned Navigation only has the back control
// and found is false.
func NewNavigation(entries []curriculum.FlatEntry, pagePath, basePath, indexPage string) (nav Navigation, found bool) {
	nav = Navigation{IndexHref: basePath + indexPage, BasePath: basePath}
	nav.Prev, nav.Next, found = curriculum.Neighbors(entries, pagePath)
	return nav, found
}

// Layout arranges the controls for a viewport of the given width.
func (n Navigation) Layout(viewportWidth int) NavLayout {
	back := NavControl{Kind: NavBack, Label: LabelBack, Href: n.IndexHref}
	var extra []NavControl
	if n.Prev != nil {
		extra = append(extra, n.control(NavPrev, prevPrefix+n.Prev.Title, *n.Prev))
	}
	if n.Next != nil {
		extra = append(extra, n.control(NavNext, nextPrefix+n.Next.Title+nextSuffix, *n.Next))
	}

	if viewportWidth >= Breakpoint {
		return NavLayout{Rows: []NavRow{{Controls: append([]NavControl{back}, extra...)}}}
	}
	layout := NavLayout{Rows: []NavRow{{Controls: []NavControl{back}}}}
	for _, c := range extra {
		layout.Rows = append(layout.Rows, NavRow{FullWidth: true, Controls: []NavControl{c}})
	}
	return layout
}

func (n Navigation) control(kind NavKind, label string, e curriculum.FlatEntry) NavControl {
	if e.IsPending() {
		return NavControl{Kind: kind, Label: label, Pending: true}
	}
	return NavControl{Kind: kind, Label: label, Href: n.href(e.Link)}
}

// href resolves an item link, written relative to the site root, against
// the page's base path. Absolute URLs are returned unchanged.
func (n Navigation) href(link string) string {
	if u, err := url.Parse(link); err == nil && (u.IsAbs() || strings.HasPrefix(link, "/")) {
		return link
	}
	return n.BasePath + curriculum.TrimRelative(link)
}

// navEntry is the client-side form of a resolved neighbor.
type navEntry struct {
	Title   string `json:"title"`
	Label   string `json:"label"`
	Href    string `json:"href,omitempty"`
	Pending bool   `json:"pending,omitempty"`
}

type navData struct {
	IndexHref  string    `json:"indexHref"`
	BackLabel  string    `json:"backLabel"`
	Breakpoint int       `json:"breakpoint"`
	Prev       *navEntry `json:"prev"`
	Next       *navEntry `json:"next"`
}

// JSON encodes the retained entries for the data-nav attribute that
// script.js lays out again on resize.
func (n Navigation) JSON() string {
	d := navData{IndexHref: n.IndexHref, BackLabel: LabelBack, Breakpoint: Breakpoint}
	for _, c := range n.Layout(Breakpoint).Controls() {
		switch c.Kind {
		case NavPrev:
			d.Prev = &navEntry{Title: n.Prev.Title, Label: c.Label, Href: c.Href, Pending: c.Pending}
		case NavNext:
			d.Next = &navEntry{Title: n.Next.Title, Label: c.Label, Href: c.Href, Pending: c.Pending}
		}
	}
	b, err := json.Marshal(d)
	if err != nil {
		return "{}"
	}
	return string(b)
}

var navTmpl = template.Must(template.New("nav").Parse(navTemplate))

// RenderNav emits the .nav-buttons container laid out for viewportWidth.
func RenderNav(n Navigation, viewportWidth int) template.HTML {
	var buf bytes.Buffer
	data := struct {
		JSON   string
		Layout NavLayout
	}{n.JSON(), n.Layout(viewportWidth)}
	if err := navTmpl.Execute(&buf, data); err != nil {
		return ""
	}
	return template.HTML(buf.String())
}
