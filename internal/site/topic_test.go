package site

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseTopic(t *testing.T) {
	md := NewMarkdown()
	tests := []struct {
		name      string
		source    string
		relPath   string
		wantTitle string
	}{
		{"front matter", "---\ntitle: Arrays in Depth\n---\n# Arrays\n\nBody.\n", "topics/array.md", "Arrays in Depth"},
		{"heading", "Intro text.\n\n# Linked Lists\n\nBody.\n", "topics/list.md", "Linked Lists"},
		{"file name", "No heading here.\n", "topics/heap.md", "heap"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			topic, err := ParseTopic(md, []byte(tt.source), tt.relPath, "topics/x.html")
			if err != nil {
				t.Fatalf("ParseTopic: %v", err)
			}
			if topic.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", topic.Title, tt.wantTitle)
			}
			if strings.Contains(string(topic.Body), "title:") {
				t.Error("front matter leaked into the body")
			}
		})
	}
}

func TestTopicTags(t *testing.T) {
	src := "---\ntitle: Heaps\ntags: [tree, priority]\n---\nBody.\n"
	topic, err := ParseTopic(NewMarkdown(), []byte(src), "topics/heap.md", "topics/heap.html")
	if err != nil {
		t.Fatalf("ParseTopic: %v", err)
	}
	if len(topic.Tags) != 2 || topic.Tags[0] != "tree" || topic.Tags[1] != "priority" {
		t.Fatalf("Tags = %v", topic.Tags)
	}

	var buf bytes.Buffer
	if err := testRenderer().RenderTopic(&buf, topic, Navigation{IndexHref: "../index.html"}); err != nil {
		t.Fatalf("RenderTopic: %v", err)
	}
	if !strings.Contains(buf.String(), `<div class="tags"><span class="tag">tree</span><span class="tag">priority</span></div>`) {
		t.Errorf("topic page does not show its tags:\n%s", buf.String())
	}
}

func TestParseTopicMarkdown(t *testing.T) {
	src := "# Binary Search\n\nSee [the tree page](tree.md) or [a section](tree.md#insert).\n\n" +
		"```go\nfunc search() {}\n```\n\n| a | b |\n|---|---|\n| 1 | 2 |\n"
	topic, err := ParseTopic(NewMarkdown(), []byte(src), "topics/bs.md", "topics/bs.html")
	if err != nil {
		t.Fatalf("ParseTopic: %v", err)
	}
	body := string(topic.Body)
	for _, want := range []string{`<h1 id="binary-search">`, `href="tree.html"`, `href="tree.html#insert"`, "<pre", "<table>"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q:\n%s", want, body)
		}
	}
}

func TestRenderTopic(t *testing.T) {
	topic := Topic{Title: "Next Step", PagePath: "topics/b.html", Body: "<p>hello</p>"}
	nav, _ := NewNavigation(navDocument(), topic.PagePath, basePath(topic.PagePath), "index.html")

	var buf bytes.Buffer
	if err := testRenderer().RenderTopic(&buf, topic, nav); err != nil {
		t.Fatalf("RenderTopic: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"<title>Next Step · KSpace</title>",
		`href="../assets/style.css"`,
		`src="../assets/script.js"`,
		"<p>hello</p>",
		`<div class="nav-buttons"`,
		"← Previous: Intro",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("topic page missing %q", want)
		}
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct{ page, want string }{
		{"index.html", ""},
		{"topics/a.html", "../"},
		{"topics/trees/bst.html", "../../"},
	}
	for _, tt := range tests {
		if got := basePath(tt.page); got != tt.want {
			t.Errorf("basePath(%q) = %q, want %q", tt.page, got, tt.want)
		}
	}
}
