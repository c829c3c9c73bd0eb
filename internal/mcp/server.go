package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the learning path to assistants.
type Server struct {
	dataFile string
	mcp      *server.MCPServer
}

// NewServer creates a new MCP server reading the given data file (a path
// or an http(s) URL) on every call.
func NewServer(dataFile string) *Server {
	s := &Server{dataFile: dataFile}

	s.mcp = server.NewMCPServer(
		"kspace",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(listSectionsTool, s.handleListSections)
	s.mcp.AddTool(searchTopicsTool, s.handleSearchTopics)
	s.mcp.AddTool(topicNeighborsTool, s.handleTopicNeighbors)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
