package curriculum

import (
	"fmt"
	"testing"

	"pgregory.net/rapid"
)

// genDocument draws a document whose published links are unique.
func genDocument(t *rapid.T) *Document {
	nSections := rapid.IntRange(0, 5).Draw(t, "sections")
	doc := &Document{Meta: Meta{Title: "Path"}}
	for si := 0; si < nSections; si++ {
		sec := Section{
			ID:    fmt.Sprintf("s%d", si),
			Title: rapid.StringMatching(`[A-Za-z ]{1,12}`).Draw(t, "sectionTitle"),
		}
		nItems := rapid.IntRange(0, 6).Draw(t, "items")
		for ii := 0; ii < nItems; ii++ {
			sec.Items = append(sec.Items, Item{
				ID:    fmt.Sprintf("s%d-i%d", si, ii),
				Title: rapid.StringMatching(`[A-Za-z ]{1,16}`).Draw(t, "itemTitle"),
				Link:  fmt.Sprintf("./topics/s%d/i%d.html", si, ii),
			})
		}
		doc.Sections = append(doc.Sections, sec)
	}
	return doc
}

func TestFlattenPreservesOrder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		doc := genDocument(t)
		entries := Flatten(doc)

		type pair struct{ section, item string }
		var want []pair
		for _, s := range doc.Sections {
			for _, it := range s.Items {
				want = append(want, pair{s.Title, it.Title})
			}
		}
		if len(entries) != len(want) {
			t.Fatalf("len = %d, want %d", len(entries), len(want))
		}
		for i, e := range entries {
			if got := (pair{e.SectionTitle, e.Title}); got != want[i] {
				t.Fatalf("entry %d = %+v, want %+v", i, got, want[i])
			}
		}
	})
}

func TestFlattenIsStable(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		doc := genDocument(t)
		a, b := Flatten(doc), Flatten(doc)
		if len(a) != len(b) {
			t.Fatalf("repeated flatten lengths differ: %d vs %d", len(a), len(b))
		}
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("entry %d differs: %+v vs %+v", i, a[i], b[i])
			}
		}
	})
}

func TestLocateFindsEveryEntry(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		entries := Flatten(genDocument(t))
		for i, e := range entries {
			if got := Locate(entries, Normalize(e.Link)); got != i {
				t.Fatalf("Locate(%q) = %d, want %d", e.Link, got, i)
			}
			// The page's own path, as seen from a nested page folder.
			if got := Locate(entries, "../../"+Normalize(e.Link)+".html"); got != i {
				t.Fatalf("Locate(nested %q) = %d, want %d", e.Link, got, i)
			}
		}
	})
}

func TestFlattenNil(t *testing.T) {
	if got := Flatten(nil); len(got) != 0 {
		t.Errorf("Flatten(nil) = %v, want empty", got)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"./a.html", "a"},
		{"../../a.html", "a"},
		{"a.html", "a"},
		{"/topics/array.html", "topics/array"},
		{"./topics/array.html", "topics/array"},
		{"../../topics/array.html", "topics/array"},
		{"topics/array", "topics/array"},
		{"topics/page.html.bak", "topics/page.html.bak"},
		{"#", "#"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.input); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func basicsDocument() *Document {
	return &Document{
		Meta: Meta{Title: "Path", Version: "1.0", Updated: "2024-01-01"},
		Sections: []Section{{
			ID:    "basics",
			Title: "Basics",
			Items: []Item{
				{ID: "intro", Title: "Intro", Link: "./a.html"},
				{ID: "next", Title: "Next Step", Link: "./b.html"},
			},
		}},
	}
}

func TestNeighborsEndToEnd(t *testing.T) {
	entries := Flatten(basicsDocument())

	prev, next, ok := Neighbors(entries, "b.html")
	if !ok {
		t.Fatal("b.html should be located")
	}
	if prev == nil || prev.Title != "Intro" || prev.Link != "./a.html" {
		t.Errorf("prev = %+v, want Intro ./a.html", prev)
	}
	if next != nil {
		t.Errorf("next = %+v, want nil", next)
	}
}

func TestNeighborsBoundaries(t *testing.T) {
	entries := Flatten(basicsDocument())

	prev, next, ok := Neighbors(entries, "../../a.html")
	if !ok {
		t.Fatal("a.html should be located")
	}
	if prev != nil {
		t.Errorf("first entry prev = %+v, want nil", prev)
	}
	if next == nil || next.Title != "Next Step" {
		t.Errorf("first entry next = %+v, want Next Step", next)
	}

	prev, next, ok = Neighbors(entries, "missing.html")
	if ok || prev != nil || next != nil {
		t.Errorf("unmatched path = (%v, %v, %v), want (nil, nil, false)", prev, next, ok)
	}

	prev, next, ok = Neighbors(nil, "a.html")
	if ok || prev != nil || next != nil {
		t.Errorf("empty document = (%v, %v, %v), want (nil, nil, false)", prev, next, ok)
	}
}

func TestNeighborsReturnAdjacentPending(t *testing.T) {
	doc := &Document{Sections: []Section{{
		ID:    "basics",
		Title: "Basics",
		Items: []Item{
			{Title: "Intro", Link: "./a.html"},
			{Title: "Draft", Link: PendingLink},
			{Title: "Next Step", Link: "./b.html"},
			{Title: "Trie", Link: ""},
		},
	}}}
	entries := Flatten(doc)

	prev, next, ok := Neighbors(entries, "b.html")
	if !ok {
		t.Fatal("b.html should be located")
	}
	if prev == nil || prev.Title != "Draft" || !prev.IsPending() {
		t.Errorf("prev = %+v, want pending Draft", prev)
	}
	if next == nil || next.Title != "Trie" || !next.IsPending() {
		t.Errorf("next = %+v, want pending Trie", next)
	}

	_, next, _ = Neighbors(entries, "a.html")
	if next == nil || next.Title != "Draft" {
		t.Errorf("next of a.html = %+v, want Draft", next)
	}
	if got := Locate(entries, PendingLink); got != -1 {
		t.Errorf("Locate(%q) = %d, want -1", PendingLink, got)
	}
	if got := Locate(entries, ""); got != -1 {
		t.Errorf("Locate(\"\") = %d, want -1", got)
	}
}
