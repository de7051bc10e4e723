package queryparse

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/typesig/apisearch/query"
	"github.com/typesig/apisearch/types"
)

func TestParseByNameWithSignature(t *testing.T) {
	q, err := Parse("List.map : ('a -> 'b) -> 'a list -> 'b list")
	require.NoError(t, err)
	require.Equal(t, query.ByName, q.Method.Kind)
	require.Len(t, q.Method.Names, 2)
	require.Equal(t, "map", q.Method.Names[0].Expected)
	require.Equal(t, "List", q.Method.Names[1].Expected)
	require.True(t, q.Method.HasSignature)
}

func TestParseBareSignature(t *testing.T) {
	q, err := Parse("int -> int -> int")
	require.NoError(t, err)
	require.Equal(t, query.BySignature, q.Method.Kind)
	require.False(t, q.Method.Signature.IsWildcard)
	require.Equal(t, types.ArrowKind, q.Method.Signature.Signature.Kind)
	require.Len(t, q.Method.Signature.Signature.Elements, 3)
}

func TestParseWildcardSignature(t *testing.T) {
	q, err := Parse("?")
	require.NoError(t, err)
	require.Equal(t, query.BySignature, q.Method.Kind)
	require.True(t, q.Method.Signature.IsWildcard)
}

func TestParseGenericApplication(t *testing.T) {
	q, err := Parse("List<int> -> int")
	require.NoError(t, err)
	sig := q.Method.Signature.Signature
	require.Equal(t, types.ArrowKind, sig.Kind)
	list := sig.Elements[0]
	require.Equal(t, types.GenericKind, list.Kind)
	require.Len(t, list.Elements, 1)
}

func TestParseTupleAndNestedArrow(t *testing.T) {
	q, err := Parse("(int * string) -> bool")
	require.NoError(t, err)
	sig := q.Method.Signature.Signature
	require.Equal(t, types.ArrowKind, sig.Kind)
	tuple := sig.Elements[0]
	require.Equal(t, types.TupleKind, tuple.Kind)
	require.Len(t, tuple.Elements, 2)
}

func TestParseGlobNameSegment(t *testing.T) {
	q, err := Parse("get*")
	require.NoError(t, err)
	require.Equal(t, query.ByName, q.Method.Kind)
	require.Equal(t, query.RegexMethod, q.Method.Names[0].MatchMethod)
	require.True(t, q.Method.Names[0].CompiledRegex.MatchString("getValue"))
	require.False(t, q.Method.Names[0].CompiledRegex.MatchString("setValue"))
}

func TestParseActivePatternWithAnyPrefix(t *testing.T) {
	q, err := Parse("pattern: _ -> int -> bool")
	require.NoError(t, err)
	require.Equal(t, query.ByActivePattern, q.Method.Kind)
	require.True(t, q.Method.ActivePattern.AnyParameterPrefix)
}

func TestParseComputationExpression(t *testing.T) {
	q, err := Parse("cexpr<Async<'a>> {let!,return}")
	require.NoError(t, err)
	require.Equal(t, query.ByComputationExpression, q.Method.Kind)
	require.True(t, q.Method.ComputationExpression.Syntaxes["let!"])
	require.True(t, q.Method.ComputationExpression.Syntaxes["return"])
	require.Len(t, q.Method.ComputationExpression.Syntaxes, 2)
}

func TestParseGenericArityOnName(t *testing.T) {
	q, err := Parse("List<1>.map")
	require.NoError(t, err)
	require.True(t, q.Method.Names[1].HasGenericArity)
	require.Len(t, q.Method.Names[1].GenericParameters, 1)
}
