package site

import "strings"

// Visibility is the outcome of a search: one entry per section in view
// order, each with one flag per card.
type Visibility struct {
	Query    string              `json:"query"`
	Sections []SectionVisibility `json:"sections"`
}

// SectionVisibility reports whether a section and each of its cards is shown.
type SectionVisibility struct {
	ID      string `json:"id"`
	Visible bool   `json:"visible"`
	Cards   []bool `json:"cards"`
}

// Filter decides which sections and cards match query. The query is
// trimmed and compared case-insensitively. A card matches when its title,
// description or one of its tags contains the query. A section is shown
// when one of its cards matches, or when its own title or description
// matches, in which case all of its cards are shown. An empty query shows
// everything.
func Filter(view IndexView, query string) Visibility {
	q := strings.ToLower(strings.TrimSpace(query))
	v := Visibility{Query: q, Sections: make([]SectionVisibility, len(view.Sections))}

	for i, s := range view.Sections {
		sv := SectionVisibility{ID: s.ID, Cards: make([]bool, len(s.Cards))}
		sectionMatch := q == "" || contains(s.Title, q) || contains(s.Description, q)
		for j, c := range s.Cards {
			match := sectionMatch || cardMatches(c, q)
			sv.Cards[j] = match
			if match {
				sv.Visible = true
			}
		}
		if sectionMatch {
			sv.Visible = true
		}
		v.Sections[i] = sv
	}
	return v
}

func cardMatches(c CardView, q string) bool {
	if contains(c.Title, q) || contains(c.Description, q) {
		return true
	}
	for _, tag := range c.Tags {
		if contains(tag, q) {
			return true
		}
	}
	return false
}

// contains reports whether s contains the already lowercased q.
func contains(s, q string) bool {
	return strings.Contains(strings.ToLower(s), q)
}

// VisibleCards counts the cards v shows.
func (v Visibility) VisibleCards() int {
	n := 0
	for _, s := range v.Sections {
		if !s.Visible {
			continue
		}
		for _, shown := range s.Cards {
			if shown {
				n++
			}
		}
	}
	return n
}
