package lowmatch

import (
	"github.com/typesig/apisearch/equation"
	"github.com/typesig/apisearch/types"
)

// testGeneric implements dispatch rule 8. Two applied generics match
// when their constructors match and their arguments zip pairwise. A
// Generic matched against a bare Identity is the cross-style case: the
// Identity is treated as the same constructor referenced with
// unconstrained arguments, a looser comparison charged the same +1
// relaxation distance as the other documented style crossings.
func testGeneric(a, b types.LowType, ctx equation.Context) equation.MatchingResult {
	switch {
	case a.Kind == types.GenericKind && b.Kind == types.GenericKind:
		return testGenericGeneric(a, b, ctx)
	case a.Kind == types.GenericKind:
		return testGenericIdentity(a, b, ctx)
	default:
		return testGenericIdentity(b, a, ctx)
	}
}

func testGenericGeneric(a, b types.LowType, ctx equation.Context) equation.MatchingResult {
	if len(a.Elements) != len(b.Elements) || a.Ctor == nil || b.Ctor == nil {
		return equation.Failure()
	}
	result := Test(*a.Ctor, *b.Ctor, ctx)
	return result.Then(func(c equation.Context) equation.MatchingResult {
		return zipArrow(a.Elements, b.Elements, c)
	})
}

func testGenericIdentity(generic, identity types.LowType, ctx equation.Context) equation.MatchingResult {
	if generic.Ctor == nil || identity.Kind != types.IdentityKind_ {
		return equation.Failure()
	}
	result := Test(*generic.Ctor, identity, ctx)
	return result.Then(func(c equation.Context) equation.MatchingResult {
		return equation.Matched(c.WithDistance(1))
	})
}
