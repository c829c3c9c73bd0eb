package site

import (
	"strings"

	"github.com/kspace-org/kspace/internal/curriculum"
)

// Card status labels.
const (
	StatusAvailable = "Start learning"
	StatusPending   = "Coming soon"
)

// IndexView is everything the index template needs. It is rebuilt from the
// document on every render.
type IndexView struct {
	Meta     curriculum.Meta
	Sections []SectionView
	TOC      []TOCEntry
	Query    string
}

// SectionView is one rendered .level-section.
type SectionView struct {
	ID          string
	Title       string
	Description string
	Cards       []CardView
	Hidden      bool
}

// CardView is one rendered .topic-card-wrapper.
type CardView struct {
	ID          string
	Title       string
	Description string
	Tags        []string
	Href        string
	Available   bool
	Status      string
	Hidden      bool
}

// TOCEntry is one link in #toc-list.
type TOCEntry struct {
	Title string
	Href  string
}

// BuildIndexView maps doc onto the index layout. A non-empty query is
// applied with Filter so the page is served pre-filtered.
func BuildIndexView(doc *curriculum.Document, query string) IndexView {
	view := IndexView{Query: strings.TrimSpace(query)}
	if doc == nil {
		return view
	}
	view.Meta = doc.Meta

	for _, s := range doc.Sections {
		sv := SectionView{
			ID:          s.ID,
			Title:       s.Title,
			Description: s.Description,
			Cards:       make([]CardView, 0, len(s.Items)),
		}
		for _, it := range s.Items {
			sv.Cards = append(sv.Cards, newCardView(it))
		}
		view.Sections = append(view.Sections, sv)
		view.TOC = append(view.TOC, TOCEntry{Title: s.Title, Href: "#" + s.ID})
	}

	if view.Query != "" {
		view.Apply(Filter(view, view.Query))
	}
	return view
}

func newCardView(it curriculum.Item) CardView {
	c := CardView{
		ID:          it.ID,
		Title:       it.Title,
		Description: it.Description,
		Tags:        it.Tags,
	}
	if it.IsPending() {
		c.Href = curriculum.PendingLink
		c.Status = StatusPending
	} else {
		c.Href = it.Link
		c.Available = true
		c.Status = StatusAvailable
	}
	return c
}

// Apply sets the Hidden flags of every section and card from v. Entries v
// does not cover stay visible.
func (view *IndexView) Apply(v Visibility) {
	for i := range view.Sections {
		s := &view.Sections[i]
		s.Hidden = false
		var sv *SectionVisibility
		if i < len(v.Sections) {
			sv = &v.Sections[i]
			s.Hidden = !sv.Visible
		}
		for j := range s.Cards {
			s.Cards[j].Hidden = sv != nil && j < len(sv.Cards) && !sv.Cards[j]
		}
	}
}

// VisibleCards counts cards not hidden by the last Apply.
func (view IndexView) VisibleCards() int {
	n := 0
	for _, s := range view.Sections {
		if s.Hidden {
			continue
		}
		for _, c := range s.Cards {
			if !c.Hidden {
				n++
			}
		}
	}
	return n
}
