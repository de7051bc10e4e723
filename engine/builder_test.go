package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/typesig/apisearch/api"
	"github.com/typesig/apisearch/query"
	"github.com/typesig/apisearch/types"
)

// TestS6BuilderSearch: a builder whose
// ComputationExpressionTypes=[async<'a>] and Syntaxes={for,let!,return}
// matched by a query for type=async<'a>, syntaxes={let!,return} returns
// the builder itself plus every API whose extracted target unifies
// with async<'a>.
func TestS6BuilderSearch(t *testing.T) {
	asyncOfA := func(source types.VariableSource) types.LowType {
		return types.NewGeneric(identityOf("async"), variable(source, "a"))
	}

	builder := api.Api{
		Name: types.NewDisplayName("AsyncBuilder"),
		Signature: api.Signature{
			Kind: api.ComputationExpressionBuilderSignature,
			Builder: api.ComputationExpressionBuilder{
				BuilderType:                identityOf("AsyncBuilder"),
				ComputationExpressionTypes: []types.LowType{asyncOfA(types.TargetSource)},
				Syntaxes:                   map[string]bool{"for": true, "let!": true, "return": true},
			},
		},
	}

	// bind : ('a -> async<'a>) -> async<'a> -> async<'a>. Its final
	// curried segment's first parameter is async<'a>, so it is usable.
	bind := api.Api{
		Name: types.NewDisplayName("bind", "Async"),
		Signature: api.Signature{
			Kind: api.ModuleFunctionSignature,
			Function: types.Member{
				Name: "bind",
				Parameters: types.ParameterGroups{
					{{Type: types.NewArrow(variable(types.TargetSource, "a"), asyncOfA(types.TargetSource))}},
					{{Type: asyncOfA(types.TargetSource)}},
				},
				ReturnParameter: types.Parameter{Type: asyncOfA(types.TargetSource)},
			},
		},
	}

	// unrelated is a plain function that never mentions async<'a> and
	// must not appear in the phase-2 result.
	unrelated := api.Api{
		Name: types.NewDisplayName("length", "List"),
		Signature: api.Signature{
			Kind: api.ModuleFunctionSignature,
			Function: types.Member{
				Parameters:      types.ParameterGroups{{{Type: types.NewGeneric(identityOf("list"), variable(types.TargetSource, "a"))}}},
				ReturnParameter: types.Parameter{Type: identityOf("int")},
			},
		},
	}

	// syntaxMismatch supports fewer syntaxes than the query requires and
	// must be excluded from phase 1 entirely.
	syntaxMismatch := api.Api{
		Name: types.NewDisplayName("SeqBuilder"),
		Signature: api.Signature{
			Kind: api.ComputationExpressionBuilderSignature,
			Builder: api.ComputationExpressionBuilder{
				BuilderType:                identityOf("SeqBuilder"),
				ComputationExpressionTypes: []types.LowType{types.NewGeneric(identityOf("seq"), variable(types.TargetSource, "a"))},
				Syntaxes:                   map[string]bool{"for": true},
			},
		},
	}

	dict := api.NewDictionary("Core", []api.Api{builder, bind, unrelated, syntaxMismatch}, nil, nil)

	q := query.Query{Method: query.Method{
		Kind: query.ByComputationExpression,
		ComputationExpression: query.ComputationExpressionQuery{
			Type:     asyncOfA(types.QuerySource),
			Syntaxes: map[string]bool{"let!": true, "return": true},
		},
	}}

	results := collect(t, []*api.Dictionary{dict}, query.DefaultOptions(), PrimaryStrategy{}, q)

	var names []string
	for _, r := range results {
		names = append(names, r.Api.Name.String())
	}
	require.ElementsMatch(t, []string{"AsyncBuilder", "Async.bind"}, names)
}

// TestS6BuilderSearchLossyMatchIsStillDistanceZero: a builder whose
// ComputationExpressionTypes is only reachable from the query's type
// through a single-sided TypeAbbreviation unwrap (a lossy, nonzero-
// distance phase-1 unification) is still reported at distance 0, per
// searchComputationExpression's phase-1/phase-2 distance split.
func TestS6BuilderSearchLossyMatchIsStillDistanceZero(t *testing.T) {
	asyncOfA := func(source types.VariableSource) types.LowType {
		return types.NewGeneric(identityOf("async"), variable(source, "a"))
	}
	abbrOfAsyncA := types.NewTypeAbbreviation(
		types.NewGeneric(identityOf("asyncAbbr"), variable(types.TargetSource, "a")),
		asyncOfA(types.TargetSource),
	)

	builder := api.Api{
		Name: types.NewDisplayName("AsyncBuilder"),
		Signature: api.Signature{
			Kind: api.ComputationExpressionBuilderSignature,
			Builder: api.ComputationExpressionBuilder{
				BuilderType:                identityOf("AsyncBuilder"),
				ComputationExpressionTypes: []types.LowType{abbrOfAsyncA},
				Syntaxes:                   map[string]bool{"let!": true, "return": true},
			},
		},
	}
	dict := api.NewDictionary("Core", []api.Api{builder}, nil, nil)

	q := query.Query{Method: query.Method{
		Kind: query.ByComputationExpression,
		ComputationExpression: query.ComputationExpressionQuery{
			Type:     asyncOfA(types.QuerySource),
			Syntaxes: map[string]bool{"let!": true, "return": true},
		},
	}}

	opts := query.DefaultOptions()
	opts.IgnoreParameterStyle = query.Enabled
	results := collect(t, []*api.Dictionary{dict}, opts, PrimaryStrategy{}, q)

	require.Len(t, results, 1)
	require.Equal(t, "AsyncBuilder", results[0].Api.Name.String())
	require.Equal(t, 0, results[0].Distance)
}

// TestS6BuilderSearchNoMatch confirms that when no builder's
// computation type unifies with the query, the search reports no
// results at all: phase 2 never runs against an empty phase-1 set.
func TestS6BuilderSearchNoMatch(t *testing.T) {
	builder := api.Api{
		Name: types.NewDisplayName("SeqBuilder"),
		Signature: api.Signature{
			Kind: api.ComputationExpressionBuilderSignature,
			Builder: api.ComputationExpressionBuilder{
				BuilderType:                identityOf("SeqBuilder"),
				ComputationExpressionTypes: []types.LowType{types.NewGeneric(identityOf("seq"), variable(types.TargetSource, "a"))},
				Syntaxes:                   map[string]bool{"for": true, "let!": true, "return": true},
			},
		},
	}
	dict := api.NewDictionary("Core", []api.Api{builder}, nil, nil)

	q := query.Query{Method: query.Method{
		Kind: query.ByComputationExpression,
		ComputationExpression: query.ComputationExpressionQuery{
			Type:     types.NewGeneric(identityOf("async"), variable(types.QuerySource, "a")),
			Syntaxes: map[string]bool{"let!": true},
		},
	}}

	seq, err := Search(context.Background(), []*api.Dictionary{dict}, query.DefaultOptions(), PrimaryStrategy{}, q)
	require.NoError(t, err)
	for range seq {
		t.Fatal("expected no results")
	}
}
