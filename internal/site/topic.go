package site

import (
	"bytes"
	"fmt"
	"html/template"
	"path"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Topic is a rendered Markdown topic page body.
type Topic struct {
	Title    string
	PagePath string // e.g. "topics/array.html"
	Tags     []string
	Body     template.HTML
}

// topicMatter is the optional YAML front matter of a topic source.
type topicMatter struct {
	Title string   `yaml:"title"`
	Tags  []string `yaml:"tags"`
}

// NewMarkdown returns the goldmark converter used for topic pages.
func NewMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
}

// ParseTopic converts a Markdown source into a Topic. relPath is the source
// path relative to the content root.
func ParseTopic(md goldmark.Markdown, source []byte, relPath, pagePath string) (Topic, error) {
	var matter topicMatter
	body, err := frontmatter.Parse(bytes.NewReader(source), &matter)
	if err != nil {
		return Topic{}, fmt.Errorf("front matter: %w", err)
	}

	var buf bytes.Buffer
	if err := md.Convert(body, &buf); err != nil {
		return Topic{}, fmt.Errorf("converting markdown: %w", err)
	}

	title := matter.Title
	if title == "" {
		title = extractTitle(string(body), relPath)
	}
	return Topic{
		Title:    title,
		PagePath: pagePath,
		Tags:     matter.Tags,
		Body:     template.HTML(rewriteMDLinks(buf.String())),
	}, nil
}

// extractTitle pulls the first # heading from markdown content, or falls back to the filename.
func extractTitle(content, relPath string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimPrefix(line, "# ")
		}
	}
	return strings.TrimSuffix(path.Base(relPath), ".md")
}

// rewriteMDLinks changes .md links in HTML content to .html links.
func rewriteMDLinks(content string) string {
	content = strings.ReplaceAll(content, `.md"`, `.html"`)
	return strings.ReplaceAll(content, `.md#`, `.html#`)
}

// basePath returns the "../" prefix leading from pagePath back to the root.
func basePath(pagePath string) string {
	return strings.Repeat("../", strings.Count(pagePath, "/"))
}
