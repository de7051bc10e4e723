package mcpserver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/typesig/apisearch/api"
	"github.com/typesig/apisearch/engine"
	"github.com/typesig/apisearch/query"
	"github.com/typesig/apisearch/types"
)

func sampleDictionary() *api.Dictionary {
	listOfA := types.NewGeneric(
		types.NewIdentityType(types.NewPartialIdentity(types.NewDisplayName("list"), 0)),
		types.NewVariable(types.TargetSource, types.TypeVariable{Name: "a"}),
	)
	length := api.Api{
		Name: types.NewDisplayName("length", "List"),
		Signature: api.Signature{
			Kind: api.ModuleFunctionSignature,
			Function: types.Member{
				Name:            "length",
				Parameters:      types.ParameterGroups{{{Type: listOfA}}},
				ReturnParameter: types.Parameter{Type: types.NewIdentityType(types.NewPartialIdentity(types.NewDisplayName("int"), 0))},
			},
		},
	}
	return api.NewDictionary("Core", []api.Api{length}, nil, nil)
}

func newTestServer() *Server {
	return NewServer([]*api.Dictionary{sampleDictionary()}, query.DefaultOptions(), engine.PrimaryStrategy{})
}

func TestHandleSearchAPIFindsByName(t *testing.T) {
	s := newTestServer()
	_, out, err := s.handleSearchAPI(context.Background(), nil, SearchAPIInput{Query: "List.length"})
	require.NoError(t, err)
	require.Equal(t, 1, out.Count)
	require.Equal(t, "Core", out.Results[0].Assembly)
}

func TestHandleSearchAPIRejectsBadQuery(t *testing.T) {
	s := newTestServer()
	_, _, err := s.handleSearchAPI(context.Background(), nil, SearchAPIInput{Query: "'a list ->"})
	require.Error(t, err)
}

func TestHandleSearchAPIBySignature(t *testing.T) {
	s := newTestServer()
	_, out, err := s.handleSearchAPI(context.Background(), nil, SearchAPIInput{Query: "'a list -> int"})
	require.NoError(t, err)
	require.Equal(t, 1, out.Count)
}

func TestHandleSearchBuilderBuildsCexprQuery(t *testing.T) {
	s := newTestServer()
	_, out, err := s.handleSearchBuilder(context.Background(), nil, SearchBuilderInput{Type: "Async<'a>", Syntaxes: []string{"let!"}})
	require.NoError(t, err)
	require.Equal(t, 0, out.Count)
}

func TestRunSearchDefaultsLimit(t *testing.T) {
	s := newTestServer()
	q := query.Query{Method: query.Method{Kind: query.ByName, Names: []query.NameQuery{{Expected: "length", MatchMethod: query.StringCompareMethod}, {Expected: "List", MatchMethod: query.StringCompareMethod}}}}
	out := s.runSearch(context.Background(), q, 0)
	require.Equal(t, 1, out.Count)
}
