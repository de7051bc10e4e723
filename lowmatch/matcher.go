package lowmatch

import (
	"github.com/typesig/apisearch/equation"
	"github.com/typesig/apisearch/query"
	"github.com/typesig/apisearch/types"
)

// Test decides whether a and b match under ctx.Options, threading and
// returning an extended equation.Context on success. It tries the
// dispatch rules below in order; the first applicable rule wins.
func Test(a, b types.LowType, ctx equation.Context) equation.MatchingResult {
	switch {
	case a.Kind == types.IdentityKind_ && b.Kind == types.IdentityKind_:
		return testIdentity(a, b, ctx)

	case a.Kind == types.WildcardKind || b.Kind == types.WildcardKind:
		return testWildcard(a, b, ctx)

	case a.Kind == types.VariableKind || b.Kind == types.VariableKind:
		return testVariable(a, b, ctx)

	case (a.Kind == types.TypeAbbreviationKind || b.Kind == types.TypeAbbreviationKind) && ctx.Options.IgnoreParameterStyle == query.Enabled:
		return testAbbreviation(a, b, ctx)

	case a.Kind == types.ArrowKind && b.Kind == types.ArrowKind:
		return testArrowArrow(a, b, ctx)

	case (a.Kind == types.ArrowKind) != (b.Kind == types.ArrowKind):
		return testArrowReshape(a, b, ctx)

	case a.Kind == types.TupleKind && b.Kind == types.TupleKind:
		return testTupleTuple(a, b, ctx)

	case a.Kind == types.GenericKind || b.Kind == types.GenericKind:
		return testGeneric(a, b, ctx)

	case a.Kind == types.ChoiceKind || b.Kind == types.ChoiceKind:
		return testChoice(a, b, ctx)

	case a.Kind == types.DelegateKind || b.Kind == types.DelegateKind:
		return testDelegate(a, b, ctx)
	}

	return equation.Failure()
}
