package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/typesig/apisearch/api"
	"github.com/typesig/apisearch/query"
	"github.com/typesig/apisearch/types"
)

func identityOf(name string) types.LowType {
	return types.NewIdentityType(types.NewPartialIdentity(types.NewDisplayName(name), 0))
}

func variable(source types.VariableSource, name string) types.LowType {
	return types.NewVariable(source, types.TypeVariable{Name: name})
}

func collect(t *testing.T, dicts []*api.Dictionary, opts query.Options, strategy Strategy, q query.Query) []Result {
	t.Helper()
	seq, err := Search(context.Background(), dicts, opts, strategy, q)
	require.NoError(t, err)
	var out []Result
	for r := range seq {
		out = append(out, r)
	}
	return out
}

// TestS1IdentityMatch: List.length : 'a list -> int matched by the
// identical query, expecting one result at distance 0.
func TestS1IdentityMatch(t *testing.T) {
	listOfA := types.NewGeneric(identityOf("list"), variable(types.TargetSource, "a"))
	length := api.Api{
		Name: types.NewDisplayName("length", "List"),
		Signature: api.Signature{
			Kind: api.ModuleFunctionSignature,
			Function: types.Member{
				Name:            "length",
				Parameters:      types.ParameterGroups{{{Type: listOfA}}},
				ReturnParameter: types.Parameter{Type: identityOf("int")},
			},
		},
	}
	dict := api.NewDictionary("Core", []api.Api{length}, nil, nil)

	q := query.Query{Method: query.Method{
		Kind: query.BySignature,
		Signature: query.SignatureQuery{Signature: types.NewArrow(
			types.NewGeneric(identityOf("list"), variable(types.QuerySource, "a")),
			identityOf("int"),
		)},
	}}

	results := collect(t, []*api.Dictionary{dict}, query.DefaultOptions(), PrimaryStrategy{}, q)
	require.Len(t, results, 1)
	require.Equal(t, 0, results[0].Distance)
}

// TestS2VariableGeneralization mirrors S2: id : 'a -> 'a matched by a
// concrete int -> int query, expecting distance 0 and a recorded
// binding for 'a.
func TestS2VariableGeneralization(t *testing.T) {
	id := api.Api{
		Name: types.NewDisplayName("id"),
		Signature: api.Signature{
			Kind: api.ModuleFunctionSignature,
			Function: types.Member{
				Name:            "id",
				Parameters:      types.ParameterGroups{{{Type: variable(types.TargetSource, "a")}}},
				ReturnParameter: types.Parameter{Type: variable(types.TargetSource, "a")},
			},
		},
	}
	dict := api.NewDictionary("Core", []api.Api{id}, nil, nil)

	q := query.Query{Method: query.Method{
		Kind:      query.BySignature,
		Signature: query.SignatureQuery{Signature: types.NewArrow(identityOf("int"), identityOf("int"))},
	}}

	results := collect(t, []*api.Dictionary{dict}, query.DefaultOptions(), PrimaryStrategy{}, q)
	require.Len(t, results, 1)
	require.Equal(t, 0, results[0].Distance)
}

// TestS3TupleSwapBudget mirrors S3: a two-argument swap only matches
// once SwapOrderDepth >= 1. K and V are concrete (non-variable)
// identities so that position actually matters to the match; two bare
// type variables would unify in either order for free and could never
// exercise the swap budget at all.
func TestS3TupleSwapBudget(t *testing.T) {
	kv := types.NewGeneric(identityOf("Map"), identityOf("K"), identityOf("V"))
	add := api.Api{
		Name: types.NewDisplayName("add", "Map"),
		Signature: api.Signature{
			Kind: api.ModuleFunctionSignature,
			Function: types.Member{
				Name: "add",
				Parameters: types.ParameterGroups{
					{{Type: identityOf("K")}},
					{{Type: identityOf("V")}},
					{{Type: kv}},
				},
				ReturnParameter: types.Parameter{Type: kv},
			},
		},
	}
	dict := api.NewDictionary("Core", []api.Api{add}, nil, nil)

	q := query.Query{Method: query.Method{
		Kind: query.BySignature,
		Signature: query.SignatureQuery{Signature: types.NewArrow(
			identityOf("V"),
			identityOf("K"),
			kv,
			kv,
		)},
	}}

	loose := query.DefaultOptions()
	loose.SwapOrderDepth = 1
	results := collect(t, []*api.Dictionary{dict}, loose, PrimaryStrategy{}, q)
	require.Len(t, results, 1)
	require.Equal(t, 1, results[0].Distance)

	strict := query.DefaultOptions()
	strict.SwapOrderDepth = 0
	require.Empty(t, collect(t, []*api.Dictionary{dict}, strict, PrimaryStrategy{}, q))
}

// TestParallelEquivalence checks that the multiset of results is equal
// between Parallel Enabled and Disabled.
func TestParallelEquivalence(t *testing.T) {
	listOfA := types.NewGeneric(identityOf("list"), variable(types.TargetSource, "a"))
	length := api.Api{
		Name: types.NewDisplayName("length", "List"),
		Signature: api.Signature{
			Kind: api.ModuleFunctionSignature,
			Function: types.Member{
				Parameters:      types.ParameterGroups{{{Type: listOfA}}},
				ReturnParameter: types.Parameter{Type: identityOf("int")},
			},
		},
	}
	count := api.Api{
		Name: types.NewDisplayName("count", "Seq"),
		Signature: api.Signature{
			Kind: api.ModuleFunctionSignature,
			Function: types.Member{
				Parameters:      types.ParameterGroups{{{Type: listOfA}}},
				ReturnParameter: types.Parameter{Type: identityOf("int")},
			},
		},
	}
	dict := api.NewDictionary("Core", []api.Api{length, count}, nil, nil)

	q := query.Query{Method: query.Method{
		Kind: query.BySignature,
		Signature: query.SignatureQuery{Signature: types.NewArrow(
			types.NewGeneric(identityOf("list"), variable(types.QuerySource, "a")),
			identityOf("int"),
		)},
	}}

	seq := query.DefaultOptions()
	par := query.DefaultOptions()
	par.Parallel = query.Enabled

	seqResults := collect(t, []*api.Dictionary{dict}, seq, PrimaryStrategy{}, q)
	parResults := collect(t, []*api.Dictionary{dict}, par, PrimaryStrategy{}, q)
	require.ElementsMatch(t, namesOf(seqResults), namesOf(parResults))
}

func namesOf(rs []Result) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Api.Name.String()
	}
	return out
}

// TestWildcardDominance: a query of bare wildcards matches every arrow
// of the same arity.
func TestWildcardDominance(t *testing.T) {
	f := api.Api{
		Name: types.NewDisplayName("f"),
		Signature: api.Signature{
			Kind: api.ModuleFunctionSignature,
			Function: types.Member{
				Parameters:      types.ParameterGroups{{{Type: identityOf("int")}}},
				ReturnParameter: types.Parameter{Type: identityOf("string")},
			},
		},
	}
	dict := api.NewDictionary("Core", []api.Api{f}, nil, nil)

	q := query.Query{Method: query.Method{
		Kind:      query.BySignature,
		Signature: query.SignatureQuery{Signature: types.NewArrow(types.Wildcard(), types.Wildcard())},
	}}
	results := collect(t, []*api.Dictionary{dict}, query.DefaultOptions(), PrimaryStrategy{}, q)
	require.Len(t, results, 1)
}

func TestFatalErrorAbortsSearch(t *testing.T) {
	bad := api.Api{
		Name: types.NewDisplayName("broken"),
		Signature: api.Signature{
			Kind:      api.ModuleValueSignature,
			ValueType: types.LowType{Kind: types.ArrowKind, Elements: []types.LowType{identityOf("int")}},
		},
	}
	dict := api.NewDictionary("Core", []api.Api{bad}, nil, nil)
	q := query.Query{Method: query.Method{Kind: query.BySignature, Signature: query.SignatureQuery{IsWildcard: true}}}

	_, err := Search(context.Background(), []*api.Dictionary{dict}, query.DefaultOptions(), PrimaryStrategy{}, q)
	require.Error(t, err)
}
