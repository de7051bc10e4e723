package mcpserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/typesig/apisearch/api"
	"github.com/typesig/apisearch/engine"
	"github.com/typesig/apisearch/query"
)

// Version is the MCP server version this package reports in its
// Implementation metadata.
const Version = "0.1.0"

// Server exposes engine.Search over MCP. Dictionaries and the default
// options are fixed at construction; a long-running server process is
// expected to rebuild a Server when its catalogs change rather than
// mutate one in place, matching api.Dictionary's own immutability
// contract.
type Server struct {
	dicts    []*api.Dictionary
	opts     query.Options
	strategy engine.Strategy
	server   *mcp.Server
}

// NewServer builds an MCP server that searches dicts under opts using
// strategy. strategy is typically engine.PrimaryStrategy{}.
func NewServer(dicts []*api.Dictionary, opts query.Options, strategy engine.Strategy) *Server {
	impl := &mcp.Implementation{
		Name:    "apisearch",
		Version: Version,
	}
	s := &Server{
		dicts:    dicts,
		opts:     opts,
		strategy: strategy,
		server:   mcp.NewServer(impl, nil),
	}
	s.registerTools()
	return s
}

// Run starts the MCP server over stdio. It blocks until ctx is
// cancelled or an error occurs.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP starts the MCP server over HTTP on addr. It blocks until ctx
// is cancelled or an error occurs.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background()) //nolint:errcheck
	}()

	err := httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return fmt.Errorf("apisearch/mcpserver: serve %s: %w", addr, err)
}
