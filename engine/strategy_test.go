package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/typesig/apisearch/api"
	"github.com/typesig/apisearch/query"
	"github.com/typesig/apisearch/types"
)

func typeDef(name string, arity int) types.FullTypeDefinition {
	params := make([]types.TypeVariable, arity)
	for i := range params {
		params[i] = types.TypeVariable{Name: string(rune('a' + i))}
	}
	return types.FullTypeDefinition{Name: types.NewDisplayName(name), GenericParameters: params}
}

func TestBindKnownAritiesResolvesUnambiguousName(t *testing.T) {
	dict := api.NewDictionary("Core", nil, []types.FullTypeDefinition{typeDef("list", 1)}, nil)
	bound := bindKnownArities(identityOf("list"), []*api.Dictionary{dict})
	require.Equal(t, types.IdentityKind_, bound.Kind)
	require.Equal(t, 1, bound.Identity.GenericParameterCount)
}

func TestBindKnownAritiesLeavesAmbiguousNameUntouched(t *testing.T) {
	one := api.NewDictionary("A", nil, []types.FullTypeDefinition{typeDef("map", 1)}, nil)
	two := api.NewDictionary("B", nil, []types.FullTypeDefinition{typeDef("map", 2)}, nil)
	bound := bindKnownArities(identityOf("map"), []*api.Dictionary{one, two})
	require.Equal(t, 0, bound.Identity.GenericParameterCount)
}

func TestBindKnownAritiesLeavesUnknownNameUntouched(t *testing.T) {
	bound := bindKnownArities(identityOf("nowhere"), nil)
	require.Equal(t, 0, bound.Identity.GenericParameterCount)
}

func TestBindKnownAritiesRecursesThroughArrow(t *testing.T) {
	dict := api.NewDictionary("Core", nil, []types.FullTypeDefinition{typeDef("list", 1)}, nil)
	lt := types.NewArrow(identityOf("list"), identityOf("int"))
	bound := bindKnownArities(lt, []*api.Dictionary{dict})
	require.Equal(t, 1, bound.Elements[0].Identity.GenericParameterCount)
	require.Equal(t, 0, bound.Elements[1].Identity.GenericParameterCount)
}

func TestNormalizeSecondaryDialectRewritesBuiltinAlias(t *testing.T) {
	normalized := normalizeSecondaryDialect(identityOf("int"))
	head, ok := normalized.Identity.Name.Head()
	require.True(t, ok)
	require.Equal(t, "Int32", head.Part.Display)
}

func TestNormalizeSecondaryDialectLeavesUnknownNameUntouched(t *testing.T) {
	normalized := normalizeSecondaryDialect(identityOf("MyType"))
	head, ok := normalized.Identity.Name.Head()
	require.True(t, ok)
	require.Equal(t, "MyType", head.Part.Display)
}

func TestNormalizeSecondaryDialectFlattensLeadingTupleSegment(t *testing.T) {
	tupled := types.NewArrow(types.NewTuple(false, identityOf("int"), identityOf("string")), identityOf("bool"))
	flattened := normalizeSecondaryDialect(tupled)
	require.Equal(t, types.ArrowKind, flattened.Kind)
	require.Len(t, flattened.Elements, 3)
	require.Equal(t, types.IdentityKind_, flattened.Elements[0].Kind)
	require.Equal(t, types.IdentityKind_, flattened.Elements[1].Kind)
}

func TestNormalizeSecondaryDialectRewritesNestedAliasInsideGeneric(t *testing.T) {
	generic := types.NewGeneric(identityOf("list"), identityOf("int"))
	normalized := normalizeSecondaryDialect(generic)
	require.Equal(t, "Int32", normalized.Elements[0].Identity.Name[0].Part.Display)
}

func TestSeedContextAddsAntiMatchForDistinctTaggedWildcards(t *testing.T) {
	q := query.Query{Method: query.Method{
		Kind: query.BySignature,
		Signature: query.SignatureQuery{Signature: types.NewArrow(
			types.TaggedWildcard("x"),
			types.TaggedWildcard("y"),
		)},
	}}
	ctx := seedContext(q, nil, query.DefaultOptions())
	require.Len(t, ctx.Equations.Inequalities(), 1)
}

func TestSeedContextSkipsAntiMatchesWhenGreedyMatchingEnabled(t *testing.T) {
	q := query.Query{Method: query.Method{
		Kind: query.BySignature,
		Signature: query.SignatureQuery{Signature: types.NewArrow(
			types.TaggedWildcard("x"),
			types.TaggedWildcard("y"),
		)},
	}}
	opts := query.DefaultOptions()
	opts.GreedyMatching = query.Enabled
	ctx := seedContext(q, nil, opts)
	require.Empty(t, ctx.Equations.Inequalities())
}

func TestSeedContextIgnoresUntaggedWildcards(t *testing.T) {
	q := query.Query{Method: query.Method{
		Kind:      query.BySignature,
		Signature: query.SignatureQuery{Signature: types.NewArrow(types.Wildcard(), types.Wildcard())},
	}}
	ctx := seedContext(q, nil, query.DefaultOptions())
	require.Empty(t, ctx.Equations.Inequalities())
}
