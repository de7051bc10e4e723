package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/typesig/apisearch/engine"
	"github.com/typesig/apisearch/printer"
	"github.com/typesig/apisearch/query"
	"github.com/typesig/apisearch/queryparse"
)

// SearchAPIInput is the input schema for the search_api tool: any query
// text queryparse.Parse accepts (a name, a signature, "pattern: ...",
// or "cexpr<...>{...}").
type SearchAPIInput struct {
	Query string `json:"query" jsonschema:"the query text: a name, a signature like 'a list -> int', 'pattern: ...', or 'cexpr<...>{...}'"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 20)"`
}

// SearchBuilderInput is the input schema for the search_builder tool: a
// computation-expression type plus the syntactic forms it must
// support, without requiring the caller to know queryparse's cexpr
// text syntax.
type SearchBuilderInput struct {
	Type     string   `json:"type" jsonschema:"the computation type the builder must support, e.g. 'Async<'a>'"`
	Syntaxes []string `json:"syntaxes,omitempty" jsonschema:"required syntactic forms, e.g. ['let!','for']"`
	Limit    int      `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 20)"`
}

// SearchOutput is the shared output schema for both tools.
type SearchOutput struct {
	Results []ResultOutput `json:"results"`
	Count   int            `json:"count"`
}

// ResultOutput is one matched catalog entry.
type ResultOutput struct {
	Assembly  string `json:"assembly"`
	Distance  int    `json:"distance"`
	Signature string `json:"signature"`
}

const defaultLimit = 20

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_api",
		Description: "Search library APIs by name, type signature, active-pattern shape, or computation-expression builder",
	}, s.handleSearchAPI)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_builder",
		Description: "Search for a computation-expression builder supporting a given computation type and syntactic forms",
	}, s.handleSearchBuilder)
}

func (s *Server) handleSearchAPI(ctx context.Context, _ *mcp.CallToolRequest, input SearchAPIInput) (*mcp.CallToolResult, SearchOutput, error) {
	q, err := queryparse.Parse(input.Query)
	if err != nil {
		return nil, SearchOutput{}, fmt.Errorf("apisearch/mcpserver: parse query: %w", err)
	}
	return nil, s.runSearch(ctx, q, input.Limit), nil
}

func (s *Server) handleSearchBuilder(ctx context.Context, _ *mcp.CallToolRequest, input SearchBuilderInput) (*mcp.CallToolResult, SearchOutput, error) {
	text := "cexpr<" + input.Type + ">"
	if len(input.Syntaxes) > 0 {
		text += "{" + strings.Join(input.Syntaxes, ",") + "}"
	}
	q, err := queryparse.Parse(text)
	if err != nil {
		return nil, SearchOutput{}, fmt.Errorf("apisearch/mcpserver: parse builder query: %w", err)
	}
	return nil, s.runSearch(ctx, q, input.Limit), nil
}

func (s *Server) runSearch(ctx context.Context, q query.Query, limit int) SearchOutput {
	if limit <= 0 {
		limit = defaultLimit
	}
	seq, err := engine.Search(ctx, s.dicts, s.opts, s.strategy, q)
	if err != nil {
		engine.Logger.Warn("apisearch/mcpserver: search failed", "error", err)
		return SearchOutput{}
	}

	out := SearchOutput{}
	for r := range seq {
		if out.Count >= limit {
			break
		}
		out.Results = append(out.Results, ResultOutput{
			Assembly:  r.AssemblyName,
			Distance:  r.Distance,
			Signature: printer.SignatureText(r.Api),
		})
		out.Count++
	}
	return out
}
