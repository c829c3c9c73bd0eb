package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/kspace-org/kspace/internal/curriculum"
	"github.com/kspace-org/kspace/internal/site"
)

func (s *Server) load(ctx context.Context) (*curriculum.Document, *mcp.CallToolResult) {
	doc, err := curriculum.Open(ctx, s.dataFile)
	if err != nil {
		return nil, mcp.NewToolResultError(fmt.Sprintf("failed to load learning path: %v", err))
	}
	return doc, nil
}

// handleListSections returns the whole learning path as an outline.
func (s *Server) handleListSections(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	doc, errResult := s.load(ctx)
	if errResult != nil {
		return errResult, nil
	}
	if len(doc.Sections) == 0 {
		return mcp.NewToolResultText("The learning path has no sections yet."), nil
	}

	view := site.BuildIndexView(doc, "")
	return mcp.NewToolResultText(formatView(view)), nil
}

// handleSearchTopics applies the index search filter.
func (s *Server) handleSearchTopics(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}
	doc, errResult := s.load(ctx)
	if errResult != nil {
		return errResult, nil
	}

	view := site.BuildIndexView(doc, query)
	if view.VisibleCards() == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No topics match %q.", query)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Found %d topic(s) matching %q:\n\n%s", view.VisibleCards(), query, formatView(view))), nil
}

// handleTopicNeighbors locates a page and reports its prev/next topics.
func (s *Server) handleTopicNeighbors(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pagePath, err := request.RequireString("page_path")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: page_path"), nil
	}
	doc, errResult := s.load(ctx)
	if errResult != nil {
		return errResult, nil
	}

	entries := curriculum.Flatten(doc)
	i := curriculum.Locate(entries, pagePath)
	if i < 0 {
		return mcp.NewToolResultError(fmt.Sprintf("%q is not a published topic of the learning path", pagePath)), nil
	}
	prev, next, _ := curriculum.Neighbors(entries, pagePath)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Topic: %s (%s)\n", entries[i].Title, entries[i].SectionTitle))
	sb.WriteString("Previous: " + describe(prev) + "\n")
	sb.WriteString("Next: " + describe(next) + "\n")
	return mcp.NewToolResultText(sb.String()), nil
}

func describe(e *curriculum.FlatEntry) string {
	if e == nil {
		return "none"
	}
	if e.IsPending() {
		return fmt.Sprintf("%s (coming soon)", e.Title)
	}
	return fmt.Sprintf("%s -> %s (%s)", e.Title, e.Link, e.SectionTitle)
}

// formatView renders the visible part of an index view as plain text.
func formatView(view site.IndexView) string {
	var sb strings.Builder
	if view.Meta.Title != "" {
		sb.WriteString(fmt.Sprintf("# %s (version %s, updated %s)\n", view.Meta.Title, view.Meta.Version, view.Meta.Updated))
	}
	for _, sec := range view.Sections {
		if sec.Hidden {
			continue
		}
		sb.WriteString(fmt.Sprintf("\n## %s [%s]\n", sec.Title, sec.ID))
		if sec.Description != "" {
			sb.WriteString(sec.Description + "\n")
		}
		for _, c := range sec.Cards {
			if c.Hidden {
				continue
			}
			line := "- " + c.Title
			if c.Available {
				line += " -> " + c.Href
			} else {
				line += " (coming soon)"
			}
			if len(c.Tags) > 0 {
				line += " [" + strings.Join(c.Tags, ", ") + "]"
			}
			sb.WriteString(line + "\n")
			if c.Description != "" {
				sb.WriteString("  " + c.Description + "\n")
			}
		}
	}
	return sb.String()
}
