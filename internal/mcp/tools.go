package mcp

import "github.com/mark3labs/mcp-go/mcp"

// listSectionsTool defines the list_sections MCP tool.
var listSectionsTool = mcp.NewTool("list_sections",
	mcp.WithDescription("List the sections of the learning path with their topics, in reading order. Unpublished topics are marked as coming soon."),
)

// searchTopicsTool defines the search_topics MCP tool.
var searchTopicsTool = mcp.NewTool("search_topics",
	mcp.WithDescription("Find learning path topics whose title, description or tags contain the query (case-insensitive). A matching section returns all of its topics."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Text to look for"),
	),
)

// topicNeighborsTool defines the topic_neighbors MCP tool.
var topicNeighborsTool = mcp.NewTool("topic_neighbors",
	mcp.WithDescription("Get the topics directly before and after a topic page. Unpublished neighbors are marked as coming soon."),
	mcp.WithString("page_path",
		mcp.Required(),
		mcp.Description("Page path or item link, e.g. topics/array.html or ./topics/array.html"),
	),
)
