package lowmatch

import (
	"github.com/typesig/apisearch/equation"
	"github.com/typesig/apisearch/query"
	"github.com/typesig/apisearch/types"
)

// testWildcard implements dispatch rule 2: a Wildcard matches any
// LowType, including another Wildcard. An untagged wildcard carries no
// further obligation. A tagged wildcard records its correlation as an
// equality in the equation store, so a later occurrence of the same tag
// is held to the same resolved type.
//
// When GreedyMatching is Disabled, a Wildcard may only stand in for an
// atomic type (Identity or Variable), not a composite subtree (Arrow,
// Tuple, Generic, Choice, Delegate, TypeAbbreviation): the query author
// wrote a single "don't care" hole, not a hole that swallows an entire
// unrelated shape.
func testWildcard(a, b types.LowType, ctx equation.Context) equation.MatchingResult {
	wildcard, other := a, b
	if a.Kind != types.WildcardKind {
		wildcard, other = b, a
	}

	if ctx.Options.GreedyMatching == query.Disabled && isComposite(other) {
		return equation.Failure()
	}

	if wildcard.WildcardTag == "" {
		return equation.Matched(ctx)
	}

	next := ctx
	for _, p := range ctx.Equations.FindEqualities(wildcard) {
		bound := p.A
		if bound.Equal(wildcard) {
			bound = p.B
		}
		if bound.Kind == types.VariableKind || bound.Kind == types.WildcardKind {
			continue
		}
		res := Test(other, bound, next)
		if !res.IsMatched() {
			return equation.Failure()
		}
		next, _ = res.Context()
	}
	eq, ok := next.Equations.TryAddEquality(wildcard, other)
	if !ok {
		return equation.Failure()
	}
	return equation.Matched(next.WithEquations(eq))
}

func isComposite(t types.LowType) bool {
	switch t.Kind {
	case types.ArrowKind, types.TupleKind, types.GenericKind, types.ChoiceKind, types.DelegateKind, types.TypeAbbreviationKind:
		return true
	}
	return false
}
