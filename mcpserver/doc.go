// Package mcpserver exposes the search engine as an MCP tool server
// using github.com/modelcontextprotocol/go-sdk/mcp: search_api and
// search_builder tools let an MCP client ask "which library API has
// this shape" over stdio or HTTP.
package mcpserver
