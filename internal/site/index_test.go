package site

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/kspace-org/kspace/internal/curriculum"
)

func testRenderer() *Renderer {
	return &Renderer{SiteTitle: "KSpace", IndexPage: "index.html", DataFile: "data/learning-path.json"}
}

func TestBuildIndexView(t *testing.T) {
	view := BuildIndexView(treesDocument(), "")

	if view.Meta.Title != "Algorithms" {
		t.Errorf("meta title = %q", view.Meta.Title)
	}
	if len(view.TOC) != 2 || view.TOC[0].Href != "#trees" || view.TOC[1].Title != "Sorting" {
		t.Errorf("toc = %+v", view.TOC)
	}

	bst := view.Sections[0].Cards[0]
	if !bst.Available || bst.Href != "./topics/bst.html" || bst.Status != StatusAvailable {
		t.Errorf("bst card = %+v", bst)
	}
	avl := view.Sections[0].Cards[1]
	if avl.Available || avl.Href != curriculum.PendingLink || avl.Status != StatusPending {
		t.Errorf("avl card = %+v", avl)
	}
}

func TestBuildIndexViewWithQuery(t *testing.T) {
	view := BuildIndexView(treesDocument(), " Merge ")
	if view.Query != "Merge" {
		t.Errorf("Query = %q, want trimmed", view.Query)
	}
	if !view.Sections[0].Hidden || view.Sections[1].Hidden {
		t.Errorf("section flags = %v/%v", view.Sections[0].Hidden, view.Sections[1].Hidden)
	}
	if view.VisibleCards() != 1 {
		t.Errorf("VisibleCards() = %d, want 1", view.VisibleCards())
	}
}

func TestRenderIndex(t *testing.T) {
	var buf bytes.Buffer
	if err := testRenderer().RenderIndex(&buf, BuildIndexView(treesDocument(), "")); err != nil {
		t.Fatalf("RenderIndex: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		`id="content"`,
		`id="toc-list"`,
		`id="searchInput"`,
		`<a href="#trees">Trees</a>`,
		`<section class="level-section" id="trees">`,
		`<h2 class="level-title">Trees</h2>`,
		`<p class="details">Hierarchical structures</p>`,
		`class="topic-grid"`,
		`<a class="topic-card-wrapper" href="./topics/bst.html">`,
		`class="topic-card interactive"`,
		`<span class="tag">tree</span>`,
		`<span class="status-text">Start learning</span>`,
		`<a class="topic-card-wrapper" href="#" data-pending="true">`,
		`<span class="status-text pending">Coming soon</span>`,
		`id="pending-notice"`,
		`Version: 1.2`,
		`assets/style.css`,
		`assets/script.js`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("index missing %q", want)
		}
	}
	if strings.Contains(out, `id="searchInput" placeholder="Search topics..." autocomplete="off" value="" disabled`) {
		t.Error("search box should be enabled")
	}
	if strings.Contains(out, "/ws/reload") {
		t.Error("live reload client should be off by default")
	}
	// The sorting section has no description.
	if strings.Count(out, `class="details"`) != 1 {
		t.Errorf("expected exactly one details paragraph")
	}
}

func TestRenderIndexHidden(t *testing.T) {
	var buf bytes.Buffer
	if err := testRenderer().RenderIndex(&buf, BuildIndexView(treesDocument(), "hashmap")); err != nil {
		t.Fatalf("RenderIndex: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `<section class="level-section" id="trees" hidden>`) {
		t.Error("unmatched section should be rendered hidden")
	}
	if !strings.Contains(out, `value="hashmap"`) {
		t.Error("search box should carry the query")
	}
}

func TestRenderIndexError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		likely string
	}{
		{"unavailable", fmt.Errorf("%w: open data/learning-path.json: no such file", curriculum.ErrDataUnavailable), "Does the file data/learning-path.json exist?"},
		{"malformed", fmt.Errorf("%w: unexpected end of JSON input", curriculum.ErrDataMalformed), "Is the file content valid JSON"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := testRenderer().RenderIndexError(&buf, tt.err); err != nil {
				t.Fatalf("RenderIndexError: %v", err)
			}
			out := buf.String()
			for _, want := range []string{
				`id="content"`,
				"Failed to load the learning path",
				"data/learning-path.json exist?",
				"valid JSON",
				"served over HTTP",
				`<li class="likely">` + tt.likely,
				"Error: " + tt.err.Error(),
				" disabled>",
			} {
				if !strings.Contains(out, want) {
					t.Errorf("diagnostic page missing %q", want)
				}
			}
			if strings.Contains(out, "level-section") {
				t.Error("diagnostic page should not render sections")
			}
		})
	}
}

func TestRenderIndexLiveReload(t *testing.T) {
	r := testRenderer()
	r.LiveReload = true
	var buf bytes.Buffer
	if err := r.RenderIndexError(&buf, errors.New("boom")); err != nil {
		t.Fatalf("RenderIndexError: %v", err)
	}
	if !strings.Contains(buf.String(), "/ws/reload") {
		t.Error("live reload client missing")
	}
}

func TestPendingCardsNeverLinkAnywhere(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		view := genView(t)
		var buf bytes.Buffer
		if err := testRenderer().RenderIndex(&buf, view); err != nil {
			t.Fatalf("RenderIndex: %v", err)
		}
		out := buf.String()

		for _, s := range view.Sections {
			for _, c := range s.Cards {
				if c.Available {
					continue
				}
				if c.Href != "#" || c.Status != StatusPending {
					t.Fatalf("pending card %+v has a target", c)
				}
			}
		}
		pending := strings.Count(out, `data-pending="true"`)
		hashLinks := strings.Count(out, `<a class="topic-card-wrapper" href="#" data-pending="true"`)
		if pending != hashLinks {
			t.Fatalf("%d pending cards, %d rendered with href=#", pending, hashLinks)
		}
	})
}
